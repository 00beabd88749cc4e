package postgres

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/etalasekita/etalase/internal/domain/catalog"
)

const (
	listCategoriesSQL    = `SELECT id, name, slug FROM categories ORDER BY id`
	getCategorySQL       = `SELECT id, name, slug FROM categories WHERE id = $1`
	getCategoryBySlugSQL = `SELECT id, name, slug FROM categories WHERE slug = $1`
)

var _ catalog.CategoryRepository = (*CategoryRepository)(nil)

// CategoryRepository reads the category lookup table.
type CategoryRepository struct {
	base
}

func NewCategoryRepository(pool *pgxpool.Pool, opts ...Option) *CategoryRepository {
	return &CategoryRepository{base: newBase(pool, opts)}
}

func (r *CategoryRepository) List(ctx context.Context) (_ []catalog.Category, rerr error) {
	ctx, span := r.start(ctx, "select", "categories")
	defer func() { end(span, rerr) }()

	rows, err := r.pool.Query(ctx, listCategoriesSQL)
	if err != nil {
		return nil, errors.Wrap(err, "list categories")
	}
	categories, err := pgx.CollectRows(rows, pgx.RowToStructByPos[catalog.Category])
	if err != nil {
		return nil, errors.Wrap(err, "list categories")
	}
	return categories, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*catalog.Category, error) {
	return r.one(ctx, getCategorySQL, id)
}

func (r *CategoryRepository) GetBySlug(ctx context.Context, slug string) (*catalog.Category, error) {
	return r.one(ctx, getCategoryBySlugSQL, slug)
}

func (r *CategoryRepository) one(ctx context.Context, sql string, arg any) (_ *catalog.Category, rerr error) {
	ctx, span := r.start(ctx, "select", "categories")
	defer func() { end(span, rerr) }()

	rows, err := r.pool.Query(ctx, sql, arg)
	if err != nil {
		return nil, errors.Wrapf(err, "get category %v", arg)
	}
	c, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByPos[catalog.Category])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, catalog.ErrNotFound
		}
		return nil, errors.Wrapf(err, "get category %v", arg)
	}
	return &c, nil
}
