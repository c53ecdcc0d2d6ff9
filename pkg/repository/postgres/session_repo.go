package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/accounts/pkg/credential"
)

// SessionRepository implements credential.SessionRepository backed by
// PostgreSQL (pgx).
type SessionRepository struct {
	pool *pgxpool.Pool
}

func NewSessionRepository(pool *pgxpool.Pool) (*SessionRepository, error) {
	repo := &SessionRepository{pool: pool}
	if err := repo.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *SessionRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS sessions (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users (id) ON DELETE CASCADE,
			created_at TIMESTAMPTZ NOT NULL,
			revoked BOOLEAN NOT NULL DEFAULT FALSE
		);
		CREATE INDEX IF NOT EXISTS sessions_user_id_idx ON sessions (user_id);
	`)
	return err
}

func (r *SessionRepository) Create(ctx context.Context, session credential.Session) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO sessions (id, user_id, created_at, revoked)
		VALUES ($1, $2, $3, $4)
	`, session.ID, session.UserID, session.CreatedAt, session.Revoked)
	return err
}

func (r *SessionRepository) GetByID(ctx context.Context, id uuid.UUID) (credential.Session, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, created_at, revoked
		FROM sessions WHERE id = $1
	`, id)
	var session credential.Session
	var createdAt time.Time
	if err := row.Scan(&session.ID, &session.UserID, &createdAt, &session.Revoked); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return credential.Session{}, credential.ErrSessionNotFound
		}
		return credential.Session{}, err
	}
	session.CreatedAt = createdAt.UTC()
	return session, nil
}

func (r *SessionRepository) Revoke(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE sessions SET revoked = TRUE WHERE id = $1
	`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return credential.ErrSessionNotFound
	}
	return nil
}
