package credential

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common errors used by repository/use cases
var (
	// ErrMissingCredentials is returned before any lookup when email or
	// password is absent from the request.
	ErrMissingCredentials = errors.New("email and password are required")
	// ErrInvalidCredentials covers unknown email, wrong password, inactive
	// account and bad tokens alike, so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionNotFound    = errors.New("session not found")
)

// Session is the server-side record behind an issued bearer token. Revocation
// is terminal: a revoked session never resolves again.
type Session struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	CreatedAt time.Time
	Revoked   bool
}

// SessionRepository abstracts session persistence from the domain layer.
type SessionRepository interface {
	Create(ctx context.Context, session Session) error
	GetByID(ctx context.Context, id uuid.UUID) (Session, error)
	Revoke(ctx context.Context, id uuid.UUID) error
}
