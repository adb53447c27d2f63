package models

import "gorm.io/gorm"

// Category is static reference data, seeded once when the table is empty.
type Category struct {
	gorm.Model

	Name        string `gorm:"uniqueIndex;not null"`
	Logo        string `gorm:"not null"`
	Description string
}
