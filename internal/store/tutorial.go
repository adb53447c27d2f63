package store

import (
	"context"

	"github.com/learnify-dev/learnify/internal/models"
	"gorm.io/gorm"
)

// TutorialQuery narrows a listing. Search wins over Language wins over
// Category; the filters are mutually exclusive.
type TutorialQuery struct {
	Search   string
	Language string
	Category string
}

func (s *Store) ListTutorials(ctx context.Context, query TutorialQuery) ([]models.Tutorial, error) {
	tx := s.db.WithContext(ctx)

	switch {
	case query.Search != "":
		pattern := "%" + query.Search + "%"
		tx = tx.Where("language ILIKE ? OR description ILIKE ? OR tutor_name ILIKE ?", pattern, pattern, pattern)
	case query.Language != "":
		tx = tx.Where("LOWER(language) = LOWER(?)", query.Language)
	case query.Category != "":
		tx = tx.Where("LOWER(language) = LOWER(?)", query.Category)
	}

	var tutorials []models.Tutorial

	if err := tx.Order("created_at DESC").Find(&tutorials).Error; err != nil {
		return nil, err
	}

	return tutorials, nil
}

func (s *Store) GetTutorial(ctx context.Context, id uint) (*models.Tutorial, error) {
	var tutorial models.Tutorial

	if err := s.db.WithContext(ctx).First(&tutorial, id).Error; err != nil {
		return nil, err
	}

	return &tutorial, nil
}

func (s *Store) TutorialsByOwner(ctx context.Context, uid string) ([]models.Tutorial, error) {
	var tutorials []models.Tutorial

	if err := s.db.WithContext(ctx).Where("tutor_uid = ?", uid).Order("created_at DESC").Find(&tutorials).Error; err != nil {
		return nil, err
	}

	return tutorials, nil
}

func (s *Store) CreateTutorial(ctx context.Context, tutorial *models.Tutorial) error {
	return s.db.WithContext(ctx).Create(tutorial).Error
}

func (s *Store) SaveTutorial(ctx context.Context, tutorial *models.Tutorial) error {
	return s.db.WithContext(ctx).Save(tutorial).Error
}

// DeleteTutorialCascade removes the tutorial and every booking referencing
// it in one transaction, and reports both deletion counts.
func (s *Store) DeleteTutorialCascade(ctx context.Context, id uint) (deletedTutorials, deletedBookings int64, err error) {
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("tutorial_id = ?", id).Delete(&models.Booking{})
		if result.Error != nil {
			return result.Error
		}
		deletedBookings = result.RowsAffected

		result = tx.Delete(&models.Tutorial{}, id)
		if result.Error != nil {
			return result.Error
		}
		deletedTutorials = result.RowsAffected

		return nil
	})

	if err != nil {
		return 0, 0, err
	}

	return deletedTutorials, deletedBookings, nil
}

// IncrementReviewCount bumps the counter by one as a single atomic update
// and returns the updated record.
func (s *Store) IncrementReviewCount(ctx context.Context, id uint) (*models.Tutorial, error) {
	result := s.db.WithContext(ctx).Model(&models.Tutorial{}).
		Where("id = ?", id).
		UpdateColumn("review_count", gorm.Expr("review_count + ?", 1))

	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return s.GetTutorial(ctx, id)
}
