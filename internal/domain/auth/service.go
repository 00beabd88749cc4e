package auth

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-faster/errors"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"
)

const (
	issuer    = "etalase"
	tokenType = "bearer"

	// Limiter map size at which full limiters get dropped.
	pruneThreshold = 1024
)

// dummyHash is compared against when the email is unknown so that both
// failure paths cost one bcrypt comparison.
var dummyHash = sync.OnceValue(func() []byte {
	h, _ := bcrypt.GenerateFromPassword([]byte("etalase"), bcrypt.DefaultCost)
	return h
})

type claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Option configures a Service.
type Option func(s *Service)

// WithTTL sets the token lifetime. Default is 24 hours.
func WithTTL(ttl time.Duration) Option {
	return func(s *Service) { s.ttl = ttl }
}

// WithLoginRate limits login attempts per email address. Default is a burst
// of 5 refilled at one attempt per 12 seconds.
func WithLoginRate(every time.Duration, burst int) Option {
	return func(s *Service) {
		s.every = rate.Every(every)
		s.burst = burst
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// Service authenticates admins and verifies their tokens.
type Service struct {
	users  UserRepository
	secret []byte
	ttl    time.Duration
	now    func() time.Time

	every rate.Limit
	burst int

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewService creates a Service signing tokens with secret.
func NewService(users UserRepository, secret []byte, opts ...Option) *Service {
	s := &Service{
		users:    users,
		secret:   secret,
		ttl:      24 * time.Hour,
		now:      time.Now,
		every:    rate.Every(12 * time.Second),
		burst:    5,
		limiters: map[string]*rate.Limiter{},
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// HashPassword returns the bcrypt hash stored for a password.
func HashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.Wrap(err, "hash password")
	}
	return string(h), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *Service) allow(email string) bool {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.limiters) >= pruneThreshold {
		for k, l := range s.limiters {
			if l.TokensAt(now) >= float64(s.burst) {
				delete(s.limiters, k)
			}
		}
	}
	l, ok := s.limiters[email]
	if !ok {
		l = rate.NewLimiter(s.every, s.burst)
		s.limiters[email] = l
	}
	return l.AllowN(now, 1)
}

// Login checks the password of the admin with the given email and issues a
// session token.
func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	if !s.allow(email) {
		return nil, ErrTooManyAttempts
	}

	u, err := s.users.FindByEmail(ctx, email)
	switch {
	case errors.Is(err, ErrUserNotFound):
		_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(password))
		return nil, ErrInvalidCredentials
	case err != nil:
		return nil, errors.Wrap(err, "find user")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issue(u)
}

func (s *Service) issue(u *User) (*Session, error) {
	now := s.now()
	expires := now.Add(s.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Email: u.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(u.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return nil, errors.Wrap(err, "sign token")
	}

	return &Session{
		AccessToken: signed,
		TokenType:   tokenType,
		ExpiresAt:   expires.Truncate(time.Second),
	}, nil
}

// Verify checks the token signature and expiry, then confirms the account
// still exists.
func (s *Service) Verify(ctx context.Context, token string) (*Identity, error) {
	var c claims
	_, err := jwt.ParseWithClaims(token, &c,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidToken, err.Error())
	}

	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidToken, "subject")
	}

	u, err := s.users.FindByID(ctx, id)
	switch {
	case errors.Is(err, ErrUserNotFound):
		return nil, errors.Wrap(ErrInvalidToken, "user deleted")
	case err != nil:
		return nil, errors.Wrap(err, "find user")
	}

	return &Identity{UserID: u.ID, Email: u.Email}, nil
}
