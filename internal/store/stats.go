package store

import (
	"context"

	"github.com/learnify-dev/learnify/internal/models"
)

// PlatformStats are the platform-wide counters. Every branch is zero on an
// empty database, never null.
type PlatformStats struct {
	Users     int64 `json:"users"`
	Tutors    int64 `json:"tutors"`
	Languages int64 `json:"languages"`
	Reviews   int64 `json:"reviews"`
}

func (s *Store) GetPlatformStats(ctx context.Context) (PlatformStats, error) {
	var stats PlatformStats

	if err := s.db.WithContext(ctx).Model(&models.User{}).Count(&stats.Users).Error; err != nil {
		return PlatformStats{}, err
	}

	if err := s.db.WithContext(ctx).Model(&models.Tutorial{}).
		Select("COALESCE(SUM(review_count), 0)").
		Scan(&stats.Reviews).Error; err != nil {
		return PlatformStats{}, err
	}

	if err := s.db.WithContext(ctx).Model(&models.Tutorial{}).
		Distinct("tutor_uid").
		Count(&stats.Tutors).Error; err != nil {
		return PlatformStats{}, err
	}

	if err := s.db.WithContext(ctx).Model(&models.Tutorial{}).
		Distinct("language").
		Count(&stats.Languages).Error; err != nil {
		return PlatformStats{}, err
	}

	return stats, nil
}
