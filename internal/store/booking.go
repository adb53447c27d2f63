package store

import (
	"context"

	"github.com/learnify-dev/learnify/internal/models"
)

func (s *Store) CreateBooking(ctx context.Context, booking *models.Booking) error {
	return s.db.WithContext(ctx).Create(booking).Error
}

func (s *Store) BookingsByStudent(ctx context.Context, uid string) ([]models.Booking, error) {
	var bookings []models.Booking

	if err := s.db.WithContext(ctx).Where("student_uid = ?", uid).Order("booking_date DESC").Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

// TutorialsByIDs fetches the tutorials that still exist for a set of ids.
// Deleted tutorials are simply missing from the map; the booking listing
// joins display fields best-effort.
func (s *Store) TutorialsByIDs(ctx context.Context, ids []uint) (map[uint]models.Tutorial, error) {
	tutorials := make(map[uint]models.Tutorial, len(ids))

	if len(ids) == 0 {
		return tutorials, nil
	}

	var rows []models.Tutorial

	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}

	for _, tutorial := range rows {
		tutorials[tutorial.ID] = tutorial
	}

	return tutorials, nil
}
