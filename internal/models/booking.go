package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// BookingStatus is the only status a booking ever has. Cancellation and
// rescheduling are not implemented server-side.
const BookingStatus = "Booked"

type Booking struct {
	gorm.Model

	TutorialID   uint   `gorm:"not null;index"`
	StudentUID   string `gorm:"not null;index"`
	StudentEmail string `gorm:"not null"`

	// Copied from the tutorial at booking time.
	TutorUID   string `gorm:"not null"`
	TutorEmail string `gorm:"not null"`

	// Frozen tutorial snapshot (image, language, price). Does not track
	// later tutorial edits.
	Snapshot datatypes.JSON `gorm:"type:jsonb"`

	BookingDate time.Time `gorm:"not null"`
	Status      string    `gorm:"not null"`
}

// BookingSnapshot is the shape stored in Booking.Snapshot.
type BookingSnapshot struct {
	Image    string  `json:"image"`
	Language string  `json:"language"`
	Price    float64 `json:"price"`
}
