package postgres

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/etalasekita/etalase/internal/domain/auth"
)

const (
	userByEmailSQL = `SELECT id, email, password_hash, created_at FROM admin_users WHERE email = lower($1)`
	userByIDSQL    = `SELECT id, email, password_hash, created_at FROM admin_users WHERE id = $1`

	upsertUserSQL = `INSERT INTO admin_users (email, password_hash) VALUES (lower($1), $2)
		ON CONFLICT (email) DO UPDATE SET password_hash = EXCLUDED.password_hash
		RETURNING id, email, password_hash, created_at`
)

var _ auth.UserRepository = (*UserRepository)(nil)

// UserRepository stores admin accounts. Emails are stored lowercased.
type UserRepository struct {
	base
}

func NewUserRepository(pool *pgxpool.Pool, opts ...Option) *UserRepository {
	return &UserRepository{base: newBase(pool, opts)}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*auth.User, error) {
	return r.one(ctx, userByEmailSQL, email)
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*auth.User, error) {
	return r.one(ctx, userByIDSQL, id)
}

// Upsert creates the account or replaces its password hash.
func (r *UserRepository) Upsert(ctx context.Context, email, passwordHash string) (*auth.User, error) {
	return r.one(ctx, upsertUserSQL, email, passwordHash)
}

func (r *UserRepository) one(ctx context.Context, sql string, args ...any) (_ *auth.User, rerr error) {
	ctx, span := r.start(ctx, "query", "admin_users")
	defer func() { end(span, rerr) }()

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, errors.Wrap(err, "query admin user")
	}
	u, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByPos[auth.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, auth.ErrUserNotFound
		}
		return nil, errors.Wrap(err, "query admin user")
	}
	return &u, nil
}
