package credential

import (
	"context"

	"github.com/google/uuid"

	"github.com/artem13815/accounts/pkg/account"
)

// TokenCodec abstracts bearer token signing and parsing (e.g., JWT).
// It allows use cases to stay framework-agnostic.
type TokenCodec interface {
	Sign(ctx context.Context, user account.User, sessionID uuid.UUID) (string, error)
	Parse(token string) (userID, sessionID uuid.UUID, err error)
}
