package credential

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/accounts/pkg/account"
)

// UseCase describes credential verification and bearer token lifecycle.
type UseCase interface {
	Authenticate(ctx context.Context, email, password string) (string, error)
	Resolve(ctx context.Context, token string) (account.User, error)
	Revoke(ctx context.Context, token string) error
}

type service struct {
	users    account.Repository
	sessions SessionRepository
	tokens   TokenCodec
}

// NewService returns default implementation of UseCase.
func NewService(users account.Repository, sessions SessionRepository, tokens TokenCodec) UseCase {
	return &service{users: users, sessions: sessions, tokens: tokens}
}

func (s *service) Authenticate(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", ErrMissingCredentials
	}

	user, err := s.users.GetByEmail(ctx, account.NormalizeEmail(email))
	if err != nil {
		// Unknown email fails exactly like a wrong password.
		return "", ErrInvalidCredentials
	}
	if !user.IsActive {
		return "", ErrInvalidCredentials
	}
	if !account.CheckPassword(password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	session := Session{
		ID:        uuid.New(),
		UserID:    user.ID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return "", err
	}
	return s.tokens.Sign(ctx, user, session.ID)
}

func (s *service) Resolve(ctx context.Context, token string) (account.User, error) {
	userID, sessionID, err := s.tokens.Parse(token)
	if err != nil {
		return account.User{}, ErrInvalidCredentials
	}

	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil || session.Revoked || session.UserID != userID {
		return account.User{}, ErrInvalidCredentials
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil || !user.IsActive {
		return account.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (s *service) Revoke(ctx context.Context, token string) error {
	_, sessionID, err := s.tokens.Parse(token)
	if err != nil {
		return ErrInvalidCredentials
	}
	return s.sessions.Revoke(ctx, sessionID)
}
