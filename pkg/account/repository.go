package account

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Common errors used by repository/use cases
var (
	ErrNotFound     = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
	ErrInvalidEmail = errors.New("invalid email")
	ErrWeakPassword = errors.New("password below minimum length")
	ErrForbidden    = errors.New("cannot modify another user's record")
)

// Repository abstracts persistence concerns from the domain layer.
// Implementations may be in-memory, SQL, NoSQL, etc. The backing store is
// responsible for email uniqueness (constraint, not check-then-act).
type Repository interface {
	Create(ctx context.Context, user User) error
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	Update(ctx context.Context, user User) error
	List(ctx context.Context, limit, offset int) ([]User, error)
}
