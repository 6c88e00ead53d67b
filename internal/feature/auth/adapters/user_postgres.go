// Package adapters provides the storage implementations for the auth feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"learning_backend/internal/feature/auth/domain/entity"
	"learning_backend/internal/feature/auth/usecase"
	"learning_backend/internal/shared/apperror"
)

// userPostgres is the gorm-backed credential store.
type userPostgres struct {
	db *gorm.DB
}

var _ usecase.UserRepository = (*userPostgres)(nil)

// NewUserPostgres creates a credential store over db.
// db must be opened with gorm.Config{TranslateError: true} for duplicate detection.
func NewUserPostgres(db *gorm.DB) *userPostgres {
	return &userPostgres{db: db}
}

// Create inserts u. A unique-index violation on email yields usecase.ErrUserAlreadyExists,
// which closes the race between two concurrent registrations of the same email.
func (r *userPostgres) Create(ctx context.Context, u *entity.User) error {
	if u == nil {
		return errors.New("nil user")
	}
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrUserAlreadyExists
		}
		return apperror.Store(err)
	}
	return nil
}

// FindByEmail returns usecase.ErrUserNotFound when no user has email.
func (r *userPostgres) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, apperror.Store(err)
	}
	return &u, nil
}
