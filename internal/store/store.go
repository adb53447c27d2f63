// Package store owns the database handle and all data operations. Handlers
// receive it as an injected dependency rather than reaching for package
// state, and surface Ready() as 503 when the connection was never
// established.
package store

import (
	"context"
	"time"

	"github.com/learnify-dev/learnify/internal/auth"
	"github.com/learnify-dev/learnify/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Store struct {
	db *gorm.DB
}

func New(database *gorm.DB) *Store {
	return &Store{db: database}
}

func (s *Store) Ready() bool {
	return s != nil && s.db != nil
}

// SyncUser upserts the local profile keyed by email: subject id, email and
// role are written only on first insert, name, photo and last login are
// refreshed on every authenticated request.
func (s *Store) SyncUser(ctx context.Context, ident auth.Identity) error {
	name := ident.Name
	if name == "" {
		name = "N/A"
	}

	now := time.Now()

	user := models.User{
		UID:       ident.UID,
		Email:     ident.Email,
		Name:      name,
		PhotoURL:  ident.Picture,
		Role:      "student",
		LastLogin: now,
	}

	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "email"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"name":       name,
			"photo_url":  ident.Picture,
			"last_login": now,
			"updated_at": now,
		}),
	}).Create(&user).Error
}

func (s *Store) CreateAccount(ctx context.Context, account *models.Account) error {
	return s.db.WithContext(ctx).Create(account).Error
}

func (s *Store) AccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	var account models.Account

	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&account).Error; err != nil {
		return nil, err
	}

	return &account, nil
}
