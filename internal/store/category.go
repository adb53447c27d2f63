package store

import (
	"context"

	"github.com/learnify-dev/learnify/internal/models"
)

// seedCategories is the fixed reference set written once when the table is
// empty. Concurrent first-time seeding can race; acceptable for a
// low-traffic bootstrap, the unique index on name keeps duplicates out.
var seedCategories = []models.Category{
	{Name: "Arabic", Logo: "logos/arabic.png", Description: "Learn Modern Standard Arabic and regional dialects."},
	{Name: "Chinese", Logo: "logos/chinese.png", Description: "Mandarin Chinese from tones to full conversations."},
	{Name: "English", Logo: "logos/english.png", Description: "English for conversation, business and exams."},
	{Name: "French", Logo: "logos/french.png", Description: "French grammar, pronunciation and culture."},
	{Name: "German", Logo: "logos/german.png", Description: "German from beginner level to fluency."},
	{Name: "Italian", Logo: "logos/italian.png", Description: "Italian for travel, study and everyday life."},
	{Name: "Japanese", Logo: "logos/japanese.png", Description: "Japanese writing systems, grammar and speaking."},
	{Name: "Portuguese", Logo: "logos/portuguese.png", Description: "Portuguese for Brazil and Portugal."},
	{Name: "Spanish", Logo: "logos/spanish.png", Description: "Spanish with native tutors at your own pace."},
}

// ListCategories returns the full reference set sorted by name, seeding the
// fixed set first if the table is empty.
func (s *Store) ListCategories(ctx context.Context) ([]models.Category, error) {
	var count int64

	if err := s.db.WithContext(ctx).Model(&models.Category{}).Count(&count).Error; err != nil {
		return nil, err
	}

	if count == 0 {
		seed := make([]models.Category, len(seedCategories))
		copy(seed, seedCategories)

		if err := s.db.WithContext(ctx).Create(&seed).Error; err != nil {
			return nil, err
		}
	}

	var categories []models.Category

	if err := s.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}

	return categories, nil
}
