package postgres

import (
	"context"
	"strings"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/etalasekita/etalase/internal/domain/catalog"
)

const productColumns = `id, name, description, long_description, price, image, category_slug, sme_id, featured, created_at`

const (
	listProductsSQL = `SELECT ` + productColumns + ` FROM products
		WHERE (coalesce(cardinality($1::text[]), 0) = 0 OR category_slug = ANY($1))
		  AND (coalesce(cardinality($2::bigint[]), 0) = 0 OR sme_id = ANY($2))
		  AND (NOT $3 OR featured)
		ORDER BY id`

	getProductSQL = `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	relatedProductsSQL = `SELECT ` + productColumns + ` FROM products
		WHERE category_slug = (SELECT category_slug FROM products WHERE id = $1) AND id <> $1
		ORDER BY featured DESC, id
		LIMIT $2`

	insertProductSQL = `INSERT INTO products
		(name, description, long_description, price, image, category_slug, sme_id, featured)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + productColumns

	productExistsSQL = `SELECT EXISTS (SELECT 1 FROM products WHERE sme_id = $1 AND lower(name) = lower($2))`

	productKeysSQL = `SELECT sme_id, name FROM products`
)

var _ catalog.ProductRepository = (*ProductRepository)(nil)

// ProductRepository stores products.
type ProductRepository struct {
	base
}

func NewProductRepository(pool *pgxpool.Pool, opts ...Option) *ProductRepository {
	return &ProductRepository{base: newBase(pool, opts)}
}

// List returns products matching q in id order.
func (r *ProductRepository) List(ctx context.Context, q catalog.ProductQuery) (_ []catalog.Product, rerr error) {
	ctx, span := r.start(ctx, "select", "products")
	defer func() { end(span, rerr) }()

	rows, err := r.pool.Query(ctx, listProductsSQL, orEmpty(q.Categories), orEmpty(q.Vendors), q.FeaturedOnly)
	if err != nil {
		return nil, errors.Wrap(err, "list products")
	}
	products, err := pgx.CollectRows(rows, scanProduct)
	if err != nil {
		return nil, errors.Wrap(err, "list products")
	}
	return products, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (_ *catalog.Product, rerr error) {
	ctx, span := r.start(ctx, "select", "products")
	defer func() { end(span, rerr) }()

	rows, err := r.pool.Query(ctx, getProductSQL, id)
	if err != nil {
		return nil, errors.Wrapf(err, "get product %d", id)
	}
	p, err := pgx.CollectExactlyOneRow(rows, scanProduct)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, catalog.ErrNotFound
		}
		return nil, errors.Wrapf(err, "get product %d", id)
	}
	return &p, nil
}

// Related returns up to limit other products in the category of product id,
// featured first. An unknown id yields no products.
func (r *ProductRepository) Related(ctx context.Context, id int64, limit int) (_ []catalog.Product, rerr error) {
	ctx, span := r.start(ctx, "select", "products")
	defer func() { end(span, rerr) }()

	rows, err := r.pool.Query(ctx, relatedProductsSQL, id, limit)
	if err != nil {
		return nil, errors.Wrapf(err, "related products %d", id)
	}
	products, err := pgx.CollectRows(rows, scanProduct)
	if err != nil {
		return nil, errors.Wrapf(err, "related products %d", id)
	}
	return products, nil
}

// Create inserts p and returns the stored row. Unknown category or vendor
// references fail with the store's foreign key error.
func (r *ProductRepository) Create(ctx context.Context, p catalog.NewProduct) (_ *catalog.Product, rerr error) {
	ctx, span := r.start(ctx, "insert", "products")
	defer func() { end(span, rerr) }()

	rows, err := r.pool.Query(ctx, insertProductSQL,
		p.Name, p.Description, p.LongDescription, p.Price, p.Image, p.CategorySlug, p.VendorID, p.Featured,
	)
	if err != nil {
		return nil, errors.Wrap(err, "insert product")
	}
	created, err := pgx.CollectExactlyOneRow(rows, scanProduct)
	if err != nil {
		return nil, errors.Wrap(err, "insert product")
	}
	return &created, nil
}

// Exists reports whether the vendor already sells a product with this name,
// ignoring case.
func (r *ProductRepository) Exists(ctx context.Context, vendorID int64, name string) (_ bool, rerr error) {
	ctx, span := r.start(ctx, "select", "products")
	defer func() { end(span, rerr) }()

	var ok bool
	if err := r.pool.QueryRow(ctx, productExistsSQL, vendorID, name).Scan(&ok); err != nil {
		return false, errors.Wrap(err, "product exists")
	}
	return ok, nil
}

// Keys calls fn with the vendor id and lowercased name of every product.
func (r *ProductRepository) Keys(ctx context.Context, fn func(vendorID int64, name string)) (rerr error) {
	ctx, span := r.start(ctx, "select", "products")
	defer func() { end(span, rerr) }()

	rows, err := r.pool.Query(ctx, productKeysSQL)
	if err != nil {
		return errors.Wrap(err, "product keys")
	}
	var (
		vendorID int64
		name     string
	)
	_, err = pgx.ForEachRow(rows, []any{&vendorID, &name}, func() error {
		fn(vendorID, strings.ToLower(name))
		return nil
	})
	if err != nil {
		return errors.Wrap(err, "product keys")
	}
	return nil
}

// CopyFrom bulk-inserts products with the COPY protocol.
func (r *ProductRepository) CopyFrom(ctx context.Context, products []catalog.NewProduct) (_ int64, rerr error) {
	ctx, span := r.start(ctx, "copy", "products")
	defer func() { end(span, rerr) }()

	n, err := r.pool.CopyFrom(ctx,
		pgx.Identifier{"products"},
		[]string{"name", "description", "long_description", "price", "image", "category_slug", "sme_id", "featured"},
		pgx.CopyFromSlice(len(products), func(i int) ([]any, error) {
			p := products[i]
			return []any{p.Name, p.Description, p.LongDescription, p.Price, p.Image, p.CategorySlug, p.VendorID, p.Featured}, nil
		}),
	)
	if err != nil {
		return 0, errors.Wrap(err, "copy products")
	}
	return n, nil
}

func scanProduct(row pgx.CollectableRow) (catalog.Product, error) {
	var p catalog.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.LongDescription, &p.Price, &p.Image,
		&p.CategorySlug, &p.VendorID, &p.Featured, &p.CreatedAt,
	)
	return p, err
}
