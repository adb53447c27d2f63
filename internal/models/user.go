package models

import (
	"time"

	"gorm.io/gorm"
)

// User is the local profile, upserted keyed by email on every authenticated
// request. At most one User per email.
type User struct {
	gorm.Model

	UID       string `gorm:"index;not null"`
	Email     string `gorm:"uniqueIndex;not null"`
	Name      string `gorm:"not null"`
	PhotoURL  string
	Role      string `gorm:"not null;default:student"`
	LastLogin time.Time
}
