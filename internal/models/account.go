package models

import "gorm.io/gorm"

// Account is an identity-provider credential record. Registering only
// provisions an Account; the User profile is synchronized lazily on the
// first authenticated request.
type Account struct {
	gorm.Model

	UID          string `gorm:"uniqueIndex;not null"` // stable subject id, assigned at registration
	Email        string `gorm:"uniqueIndex;not null"`
	Name         string `gorm:"not null"`
	PhotoURL     string
	PasswordHash string `gorm:"not null"`
}
