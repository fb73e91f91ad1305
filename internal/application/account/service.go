package account

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/qct/user-management/internal/domain"
	pkgtoken "github.com/qct/user-management/internal/pkg/token"
	"golang.org/x/crypto/bcrypt"
)

type Service interface {
	Register(ctx context.Context, req domain.RegisterRequest) (*domain.UserProfile, error)
	Authenticate(ctx context.Context, req domain.AuthRequest) (*domain.AuthResult, error)
	GetUser(ctx context.Context, userID uint) (*domain.UserProfile, error)
	ListActiveUsers(ctx context.Context) ([]domain.UserProfile, error)
}

type userStore interface {
	Create(ctx context.Context, u *domain.User) error
	GetActiveByEmail(ctx context.Context, email string) (*domain.User, error)
	GetActive(ctx context.Context, userID uint) (*domain.User, error)
	ListActive(ctx context.Context) ([]domain.User, error)
}

type service struct {
	repo userStore
}

func NewService(repo userStore) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, req domain.RegisterRequest) (*domain.UserProfile, error) {
	log.Printf("registering new user: %s", req.Email)

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	u := &domain.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	// Uniqueness is enforced by the store's unique indexes; a violation
	// comes back as domain.ErrConflict.
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u.Profile(), nil
}

func (s *service) Authenticate(ctx context.Context, req domain.AuthRequest) (*domain.AuthResult, error) {
	log.Printf("authenticating user: %s", req.Email)

	u, err := s.repo.GetActiveByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Same error for unknown, inactive, and wrong-password cases
			// so responses cannot be used to enumerate accounts.
			return nil, fmt.Errorf("invalid credentials: %w", domain.ErrUnauthorized)
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("invalid credentials: %w", domain.ErrUnauthorized)
	}

	now := time.Now().UTC()
	return &domain.AuthResult{
		UserID:    u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Token:     pkgtoken.Issue(u.ID, u.Email, now),
		ExpiresAt: now.Add(pkgtoken.TTL),
	}, nil
}

func (s *service) GetUser(ctx context.Context, userID uint) (*domain.UserProfile, error) {
	u, err := s.repo.GetActive(ctx, userID)
	if err != nil {
		return nil, err
	}
	return u.Profile(), nil
}

func (s *service) ListActiveUsers(ctx context.Context) ([]domain.UserProfile, error) {
	users, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	profiles := make([]domain.UserProfile, len(users))
	for i := range users {
		profiles[i] = *users[i].Profile()
	}
	return profiles, nil
}
