// Package postgres implements the catalog and admin repositories on
// PostgreSQL with pgx.
package postgres

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/etalasekita/etalase/db"
)

// NewPool connects to databaseURL and verifies the connection.
func NewPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "parse database url")
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, "ping")
	}
	return pool, nil
}

// RunMigrations applies the embedded schema.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, db.Schema); err != nil {
		return errors.Wrap(err, "apply schema")
	}
	return nil
}

// Option configures a repository.
type Option func(b *base)

// WithTracerProvider traces every query.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(b *base) { b.tracer = tp.Tracer("github.com/etalasekita/etalase/internal/storage/postgres") }
}

type base struct {
	pool   *pgxpool.Pool
	tracer trace.Tracer
}

func newBase(pool *pgxpool.Pool, opts []Option) base {
	b := base{
		pool:   pool,
		tracer: noop.NewTracerProvider().Tracer(""),
	}
	for _, o := range opts {
		o(&b)
	}
	return b
}

func (b base) start(ctx context.Context, op, table string) (context.Context, trace.Span) {
	return b.tracer.Start(ctx, "db."+table+"."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", "postgresql"),
			attribute.String("db.operation", op),
			attribute.String("db.sql.table", table),
		),
	)
}

// end records err on span unless it is a not-found result.
func end(span trace.Span, err error) {
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// StoreError returns the server message of a PostgreSQL error, which admin
// writes report verbatim.
func StoreError(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Message, true
	}
	return "", false
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
