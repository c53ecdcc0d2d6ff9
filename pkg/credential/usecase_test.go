package credential

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/accounts/pkg/account"
)

// --- fakes ---

type fakeUserRepo struct {
	byEmail map[string]account.User
	byID    map[uuid.UUID]account.User
}

func newFakeUserRepo(users ...account.User) *fakeUserRepo {
	r := &fakeUserRepo{
		byEmail: make(map[string]account.User),
		byID:    make(map[uuid.UUID]account.User),
	}
	for _, u := range users {
		r.byEmail[u.Email] = u
		r.byID[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(ctx context.Context, user account.User) error {
	r.byEmail[user.Email] = user
	r.byID[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (account.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return account.User{}, account.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (account.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return account.User{}, account.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user account.User) error {
	r.byEmail[user.Email] = user
	r.byID[user.ID] = user
	return nil
}

func (r *fakeUserRepo) List(ctx context.Context, limit, offset int) ([]account.User, error) {
	return nil, nil
}

type memSessionRepo struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]Session
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{sessions: make(map[uuid.UUID]Session)}
}

func (r *memSessionRepo) Create(ctx context.Context, session Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = session
	return nil
}

func (r *memSessionRepo) GetByID(ctx context.Context, id uuid.UUID) (Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	return s, nil
}

func (r *memSessionRepo) Revoke(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	s.Revoked = true
	r.sessions[id] = s
	return nil
}

// fakeCodec encodes tokens as a lookup into its own map; the real JWT codec
// is covered in pkg/security/jwt.
type fakeCodec struct {
	issued map[string][2]uuid.UUID
}

func newFakeCodec() *fakeCodec {
	return &fakeCodec{issued: make(map[string][2]uuid.UUID)}
}

func (f *fakeCodec) Sign(ctx context.Context, user account.User, sessionID uuid.UUID) (string, error) {
	token := "tok-" + uuid.NewString()
	f.issued[token] = [2]uuid.UUID{user.ID, sessionID}
	return token, nil
}

func (f *fakeCodec) Parse(token string) (uuid.UUID, uuid.UUID, error) {
	ids, ok := f.issued[token]
	if !ok {
		return uuid.Nil, uuid.Nil, errors.New("unknown token")
	}
	return ids[0], ids[1], nil
}

// --- helpers ---

func testUser(t *testing.T, email, password string, active bool) account.User {
	t.Helper()
	hash, err := account.HashPassword(password)
	require.NoError(t, err)
	return account.User{
		ID:           uuid.New(),
		Email:        email,
		Name:         "Test",
		PasswordHash: hash,
		IsActive:     active,
	}
}

// --- tests ---

func TestAuthenticateAndResolve(t *testing.T) {
	user := testUser(t, "test@example.com", "password123", true)
	svc := NewService(newFakeUserRepo(user), newMemSessionRepo(), newFakeCodec())

	token, err := svc.Authenticate(context.Background(), "test@example.com", "password123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	resolved, err := svc.Resolve(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, resolved.ID)
	assert.Equal(t, "test@example.com", resolved.Email)
}

func TestAuthenticateMissingFields(t *testing.T) {
	user := testUser(t, "test@example.com", "password123", true)
	svc := NewService(newFakeUserRepo(user), newMemSessionRepo(), newFakeCodec())

	_, err := svc.Authenticate(context.Background(), "", "password123")
	assert.ErrorIs(t, err, ErrMissingCredentials)

	_, err = svc.Authenticate(context.Background(), "test@example.com", "")
	assert.ErrorIs(t, err, ErrMissingCredentials)
}

func TestAuthenticateFailuresAreIndistinguishable(t *testing.T) {
	user := testUser(t, "test@example.com", "password123", true)
	svc := NewService(newFakeUserRepo(user), newMemSessionRepo(), newFakeCodec())

	_, wrongPassword := svc.Authenticate(context.Background(), "test@example.com", "wrong")
	_, unknownEmail := svc.Authenticate(context.Background(), "nobody@example.com", "password123")

	// wrong password and unknown email must fail with the same error kind
	require.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	require.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestAuthenticateInactiveUser(t *testing.T) {
	user := testUser(t, "test@example.com", "password123", false)
	svc := NewService(newFakeUserRepo(user), newMemSessionRepo(), newFakeCodec())

	_, err := svc.Authenticate(context.Background(), "test@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateUppercaseEmail(t *testing.T) {
	user := testUser(t, "test@example.com", "password123", true)
	svc := NewService(newFakeUserRepo(user), newMemSessionRepo(), newFakeCodec())

	_, err := svc.Authenticate(context.Background(), "TEST@Example.com", "password123")
	assert.NoError(t, err)
}

func TestResolveUnknownToken(t *testing.T) {
	svc := NewService(newFakeUserRepo(), newMemSessionRepo(), newFakeCodec())

	_, err := svc.Resolve(context.Background(), "garbage")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRevokeIsTerminal(t *testing.T) {
	user := testUser(t, "test@example.com", "password123", true)
	svc := NewService(newFakeUserRepo(user), newMemSessionRepo(), newFakeCodec())

	token, err := svc.Authenticate(context.Background(), "test@example.com", "password123")
	require.NoError(t, err)

	require.NoError(t, svc.Revoke(context.Background(), token))

	_, err = svc.Resolve(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestResolveDeactivatedUser(t *testing.T) {
	user := testUser(t, "test@example.com", "password123", true)
	users := newFakeUserRepo(user)
	svc := NewService(users, newMemSessionRepo(), newFakeCodec())

	token, err := svc.Authenticate(context.Background(), "test@example.com", "password123")
	require.NoError(t, err)

	// deactivate after the token was issued
	user.IsActive = false
	require.NoError(t, users.Update(context.Background(), user))

	_, err = svc.Resolve(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
