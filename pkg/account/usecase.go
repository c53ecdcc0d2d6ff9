package account

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UseCase describes account lifecycle behavior: creation with hashing and
// policy enforcement, lookup, and owner-restricted profile updates.
type UseCase interface {
	Create(ctx context.Context, email, password, name string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	Update(ctx context.Context, callerID, targetID uuid.UUID, patch Patch) (User, error)
	List(ctx context.Context, limit, offset int) ([]User, error)
}

// Patch carries optional profile changes; nil fields are left untouched.
type Patch struct {
	Name     *string
	Password *string
}

type service struct {
	repo Repository
}

// NewService returns default implementation of UseCase.
func NewService(repo Repository) UseCase {
	return &service{repo: repo}
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// NormalizeEmail lowercases and trims an email so lookups and the uniqueness
// constraint are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *service) Create(ctx context.Context, email, password, name string) (User, error) {
	email = NormalizeEmail(email)
	if !emailRegex.MatchString(email) {
		return User{}, ErrInvalidEmail
	}
	if len(password) < MinPasswordLen {
		return User{}, ErrWeakPassword
	}

	passwordHash, err := HashPassword(password)
	if err != nil {
		return User{}, err
	}

	user := User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		IsActive:     true,
		IsStaff:      false,
		CreatedAt:    time.Now().UTC(),
	}
	// Duplicate emails surface as ErrEmailTaken from the repository's
	// uniqueness constraint; no check-then-act here.
	if err := s.repo.Create(ctx, user); err != nil {
		return User{}, err
	}
	return user, nil
}

func (s *service) GetByEmail(ctx context.Context, email string) (User, error) {
	return s.repo.GetByEmail(ctx, NormalizeEmail(email))
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Update(ctx context.Context, callerID, targetID uuid.UUID, patch Patch) (User, error) {
	if callerID != targetID {
		return User{}, ErrForbidden
	}

	user, err := s.repo.GetByID(ctx, targetID)
	if err != nil {
		return User{}, err
	}
	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Password != nil {
		if len(*patch.Password) < MinPasswordLen {
			return User{}, ErrWeakPassword
		}
		passwordHash, err := HashPassword(*patch.Password)
		if err != nil {
			return User{}, err
		}
		user.PasswordHash = passwordHash
	}
	if err := s.repo.Update(ctx, user); err != nil {
		return User{}, err
	}
	return user, nil
}

func (s *service) List(ctx context.Context, limit, offset int) ([]User, error) {
	return s.repo.List(ctx, limit, offset)
}
