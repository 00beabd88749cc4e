package postgres

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/etalasekita/etalase/internal/domain/catalog"
)

const vendorColumns = `s.id, s.name, s.short_description, s.description, s.story, s.city, s.province,
	s.address, s.phone, s.email, s.website, s.instagram, s.facebook, s.established_date, s.category,
	s.featured, s.logo, s.cover_image, s.latitude, s.longitude, s.created_at,
	(SELECT count(*) FROM products p WHERE p.sme_id = s.id)`

const (
	listVendorsSQL = `SELECT ` + vendorColumns + ` FROM smes s ORDER BY s.created_at DESC, s.id DESC`

	getVendorSQL = `SELECT ` + vendorColumns + ` FROM smes s WHERE s.id = $1`

	insertVendorSQL = `WITH s AS (
		INSERT INTO smes (name, short_description, description, story, city, province, address, phone,
			email, website, instagram, facebook, established_date, category, featured, logo, cover_image,
			latitude, longitude)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING *
	) SELECT ` + vendorColumns + ` FROM s`
)

var _ catalog.VendorRepository = (*VendorRepository)(nil)

// VendorRepository stores SME profiles.
type VendorRepository struct {
	base
}

func NewVendorRepository(pool *pgxpool.Pool, opts ...Option) *VendorRepository {
	return &VendorRepository{base: newBase(pool, opts)}
}

// List returns every vendor, newest first, with its product count.
func (r *VendorRepository) List(ctx context.Context) (_ []catalog.Vendor, rerr error) {
	ctx, span := r.start(ctx, "select", "smes")
	defer func() { end(span, rerr) }()

	rows, err := r.pool.Query(ctx, listVendorsSQL)
	if err != nil {
		return nil, errors.Wrap(err, "list vendors")
	}
	vendors, err := pgx.CollectRows(rows, scanVendor)
	if err != nil {
		return nil, errors.Wrap(err, "list vendors")
	}
	return vendors, nil
}

func (r *VendorRepository) GetByID(ctx context.Context, id int64) (_ *catalog.Vendor, rerr error) {
	ctx, span := r.start(ctx, "select", "smes")
	defer func() { end(span, rerr) }()

	rows, err := r.pool.Query(ctx, getVendorSQL, id)
	if err != nil {
		return nil, errors.Wrapf(err, "get vendor %d", id)
	}
	v, err := pgx.CollectExactlyOneRow(rows, scanVendor)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, catalog.ErrNotFound
		}
		return nil, errors.Wrapf(err, "get vendor %d", id)
	}
	return &v, nil
}

func (r *VendorRepository) Create(ctx context.Context, v catalog.NewVendor) (_ *catalog.Vendor, rerr error) {
	ctx, span := r.start(ctx, "insert", "smes")
	defer func() { end(span, rerr) }()

	var (
		established *time.Time
		lat, lng    *float64
	)
	if !v.EstablishedDate.IsZero() {
		established = &v.EstablishedDate
	}
	if v.Location != nil {
		lat, lng = &v.Location.Lat, &v.Location.Lng
	}

	rows, err := r.pool.Query(ctx, insertVendorSQL,
		v.Name, v.ShortDescription, v.Description, v.Story, v.City, v.Province, v.Address, v.Phone,
		v.Email, v.Website, v.Instagram, v.Facebook, established, v.Category, v.Featured, v.Logo, v.CoverImage,
		lat, lng,
	)
	if err != nil {
		return nil, errors.Wrap(err, "insert vendor")
	}
	created, err := pgx.CollectExactlyOneRow(rows, scanVendor)
	if err != nil {
		return nil, errors.Wrap(err, "insert vendor")
	}
	return &created, nil
}

func scanVendor(row pgx.CollectableRow) (catalog.Vendor, error) {
	var (
		v           catalog.Vendor
		established *time.Time
		lat, lng    *float64
		count       int64
	)
	err := row.Scan(
		&v.ID, &v.Name, &v.ShortDescription, &v.Description, &v.Story, &v.City, &v.Province,
		&v.Address, &v.Phone, &v.Email, &v.Website, &v.Instagram, &v.Facebook, &established, &v.Category,
		&v.Featured, &v.Logo, &v.CoverImage, &lat, &lng, &v.CreatedAt,
		&count,
	)
	if err != nil {
		return v, err
	}
	if established != nil {
		v.EstablishedDate = *established
	}
	if lat != nil && lng != nil {
		v.Location = &catalog.Location{Lat: *lat, Lng: *lng}
	}
	v.ProductCount = int(count)
	return v, nil
}
