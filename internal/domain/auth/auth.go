// Package auth is the identity provider of the admin surface: password login
// against admin accounts, signed bearer tokens, and the verified identity
// carried through request contexts.
//
// Authentication is all it does. Any admin account may perform every write;
// there are no roles.
package auth

import (
	"context"
	"time"

	"github.com/go-faster/errors"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTooManyAttempts    = errors.New("too many login attempts")
)

// User is an admin account.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Identity is the verified holder of a bearer token.
type Identity struct {
	UserID int64
	Email  string
}

// Session is the result of a successful login.
type Session struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
}

// UserRepository looks up admin accounts. Both methods return
// ErrUserNotFound for unknown users.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id int64) (*User, error)
}
