package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/qct/user-management/internal/domain"
	"gorm.io/gorm"
)

// ActiveUsers is the shared soft-delete predicate. Every user read path goes
// through this scope so deactivated accounts are invisible everywhere.
func ActiveUsers(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

// UserRepo provides typed access to the users table.
type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create inserts the user and fills in its assigned id and timestamps.
// A username or email collision returns domain.ErrConflict.
func (r *UserRepo) Create(ctx context.Context, u *domain.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("username or email already registered: %w", domain.ErrConflict)
		}
		return err
	}
	return nil
}

// GetActiveByEmail returns the active user with the given email, or
// domain.ErrNotFound. Deactivated users are indistinguishable from absent
// ones on purpose.
func (r *UserRepo) GetActiveByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).Scopes(ActiveUsers).Where("email = ?", email).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %q: %w", email, domain.ErrNotFound)
		}
		return nil, err
	}
	return &u, nil
}

// GetActive returns the active user with the given id, or domain.ErrNotFound.
func (r *UserRepo) GetActive(ctx context.Context, userID uint) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).Scopes(ActiveUsers).First(&u, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d: %w", userID, domain.ErrNotFound)
		}
		return nil, err
	}
	return &u, nil
}

// ListActive returns all active users.
func (r *UserRepo) ListActive(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := r.db.WithContext(ctx).Scopes(ActiveUsers).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
