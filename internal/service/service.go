package service

import (
	"context"
	"errors"

	"github.com/bloodlink/auth-service/internal/domain"
)

type AuthService struct {
	repo   domain.UserRepository
	hasher domain.PasswordHasher
}

// NewAuthService builds the service. repo may be nil when no database is
// configured; every operation then fails with ErrStoreUnavailable.
func NewAuthService(repo domain.UserRepository, hasher domain.PasswordHasher) *AuthService {
	return &AuthService{repo: repo, hasher: hasher}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string

	Phone      *string
	City       *string
	BloodGroup *string
}

// Register creates a user with role "user" and is_active true. The email is
// stored lowercase and must be unique; the pre-insert lookup catches the
// common case and the store's unique index closes the concurrent window,
// both surfacing as ErrEmailTaken.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	if s.repo == nil {
		return nil, domain.ErrStoreUnavailable
	}

	email := domain.NormalizeEmail(in.Email)

	_, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		return nil, domain.ErrEmailTaken
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         in.Name,
		Email:        email,
		Phone:        in.Phone,
		City:         in.City,
		BloodGroup:   in.BloodGroup,
		Role:         "user",
		PasswordHash: hash,
		IsActive:     true,
	}

	id, err := s.repo.Insert(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id

	return user, nil
}

// Login verifies credentials. Unknown email and wrong password both return
// ErrInvalidCredentials so callers cannot enumerate accounts. The active
// check happens after verification; see DESIGN.md for why the ordering is
// kept as-is.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	if s.repo == nil {
		return nil, domain.ErrStoreUnavailable
	}

	user, err := s.repo.FindByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, domain.ErrAccountInactive
	}

	return user, nil
}
