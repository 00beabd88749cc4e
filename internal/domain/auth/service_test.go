package auth

import (
	"context"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type mockUsers struct {
	byEmail map[string]*User
	err     error
}

func (m *mockUsers) FindByEmail(_ context.Context, email string) (*User, error) {
	if m.err != nil {
		return nil, m.err
	}
	u, ok := m.byEmail[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (m *mockUsers) FindByID(_ context.Context, id int64) (*User, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, u := range m.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, ErrUserNotFound
}

func newUsers(t *testing.T) *mockUsers {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("rahasia123"), bcrypt.MinCost)
	require.NoError(t, err)
	return &mockUsers{byEmail: map[string]*User{
		"admin@etalasekita.id": {ID: 1, Email: "admin@etalasekita.id", PasswordHash: string(hash)},
	}}
}

type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

var secret = []byte("test-secret")

func TestLoginAndVerify(t *testing.T) {
	c := &clock{now: time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)}
	svc := NewService(newUsers(t), secret, WithClock(c.Now), WithTTL(time.Hour))
	ctx := context.Background()

	s, err := svc.Login(ctx, "  Admin@Etalasekita.id ", "rahasia123")
	require.NoError(t, err)
	assert.Equal(t, "bearer", s.TokenType)
	assert.Equal(t, c.now.Add(time.Hour), s.ExpiresAt)

	id, err := svc.Verify(ctx, s.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, Identity{UserID: 1, Email: "admin@etalasekita.id"}, *id)

	c.now = c.now.Add(2 * time.Hour)
	_, err = svc.Verify(ctx, s.AccessToken)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogin_Failures(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		err      error
	}{
		{name: "wrong password", email: "admin@etalasekita.id", password: "salah", err: ErrInvalidCredentials},
		{name: "unknown email", email: "siapa@etalasekita.id", password: "rahasia123", err: ErrInvalidCredentials},
		{name: "empty email", email: " ", password: "rahasia123", err: ErrInvalidCredentials},
		{name: "empty password", email: "admin@etalasekita.id", password: "", err: ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(newUsers(t), secret)
			_, err := svc.Login(context.Background(), tt.email, tt.password)
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestLogin_StoreError(t *testing.T) {
	storeErr := errors.New("connection reset")
	svc := NewService(&mockUsers{err: storeErr}, secret)

	_, err := svc.Login(context.Background(), "admin@etalasekita.id", "rahasia123")
	require.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_Throttled(t *testing.T) {
	c := &clock{now: time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)}
	svc := NewService(newUsers(t), secret, WithClock(c.Now), WithLoginRate(time.Minute, 2))
	ctx := context.Background()

	for range 2 {
		_, err := svc.Login(ctx, "admin@etalasekita.id", "salah")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	}
	_, err := svc.Login(ctx, "ADMIN@etalasekita.id", "rahasia123")
	require.ErrorIs(t, err, ErrTooManyAttempts, "the limit applies per normalized email")

	_, err = svc.Login(ctx, "lain@etalasekita.id", "salah")
	require.ErrorIs(t, err, ErrInvalidCredentials, "other emails are unaffected")

	c.now = c.now.Add(time.Minute)
	_, err = svc.Login(ctx, "admin@etalasekita.id", "rahasia123")
	require.NoError(t, err)
}

func TestVerify_Rejects(t *testing.T) {
	users := newUsers(t)
	svc := NewService(users, secret)
	ctx := context.Background()

	s, err := svc.Login(ctx, "admin@etalasekita.id", "rahasia123")
	require.NoError(t, err)

	other := NewService(users, []byte("another-secret"))
	forged, err := other.Login(ctx, "admin@etalasekita.id", "rahasia123")
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:  issuer,
		Subject: "1",
	}).SignedString(secret)
	require.NoError(t, err)

	for name, token := range map[string]string{
		"garbage":      "not-a-token",
		"other secret": forged.AccessToken,
		"alg none":     unsigned,
		"no expiry":    noExpiry,
		"truncated":    s.AccessToken[:len(s.AccessToken)-4],
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Verify(ctx, token)
			require.ErrorIs(t, err, ErrInvalidToken)
		})
	}

	t.Run("deleted user", func(t *testing.T) {
		delete(users.byEmail, "admin@etalasekita.id")
		_, err := svc.Verify(ctx, s.AccessToken)
		require.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestHashPassword(t *testing.T) {
	h, err := HashPassword("rahasia123")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(h), []byte("rahasia123")))
}

func TestIdentityContext(t *testing.T) {
	_, ok := IdentityFromContext(context.Background())
	assert.False(t, ok)

	ctx := WithIdentity(context.Background(), Identity{UserID: 3, Email: "a@b.id"})
	id, ok := IdentityFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, int64(3), id.UserID)
}
