package models

import "gorm.io/gorm"

type Tutorial struct {
	gorm.Model

	TutorUID      string `gorm:"not null;index"` // owning tutor's subject id
	TutorEmail    string `gorm:"not null"`
	TutorName     string `gorm:"not null"`
	TutorPhotoURL string

	Image       string  `gorm:"not null"`
	Language    string  `gorm:"not null;index"`
	Price       float64 `gorm:"not null"`
	Description string  `gorm:"not null"`
	ReviewCount int     `gorm:"not null;default:0"` // server-maintained only

	// Relationships
	Bookings []Booking `gorm:"foreignKey:TutorialID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

// OwnedBy reports whether the given subject id owns this tutorial. Every
// mutating handler goes through this check, there is no cached permission
// state.
func (t *Tutorial) OwnedBy(uid string) bool {
	return t.TutorUID == uid
}
