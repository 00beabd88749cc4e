package postgres

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/etalasekita/etalase/internal/domain/catalog"
)

const (
	seedCategorySQL = `INSERT INTO categories (id, name, slug) VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, slug = EXCLUDED.slug`

	seedVendorSQL = `INSERT INTO smes (id, name, short_description, description, story, city, province,
			address, phone, email, website, instagram, facebook, established_date, category, featured,
			logo, cover_image, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, short_description = EXCLUDED.short_description,
			description = EXCLUDED.description, story = EXCLUDED.story, city = EXCLUDED.city,
			province = EXCLUDED.province, address = EXCLUDED.address, phone = EXCLUDED.phone,
			email = EXCLUDED.email, website = EXCLUDED.website, instagram = EXCLUDED.instagram,
			facebook = EXCLUDED.facebook, established_date = EXCLUDED.established_date,
			category = EXCLUDED.category, featured = EXCLUDED.featured, logo = EXCLUDED.logo,
			cover_image = EXCLUDED.cover_image, latitude = EXCLUDED.latitude, longitude = EXCLUDED.longitude`

	seedProductSQL = `INSERT INTO products (id, name, description, long_description, price, image,
			category_slug, sme_id, featured, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, coalesce($10, now()))
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, description = EXCLUDED.description,
			long_description = EXCLUDED.long_description, price = EXCLUDED.price, image = EXCLUDED.image,
			category_slug = EXCLUDED.category_slug, sme_id = EXCLUDED.sme_id, featured = EXCLUDED.featured,
			created_at = EXCLUDED.created_at`
)

// SeedData is a catalog with explicit ids.
type SeedData struct {
	Categories []catalog.Category
	Vendors    []catalog.Vendor
	Products   []catalog.Product
}

// Seed upserts data by id in one transaction and moves the id sequences past
// the seeded rows.
func Seed(ctx context.Context, pool *pgxpool.Pool, data SeedData) error {
	return pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		b := &pgx.Batch{}
		for _, c := range data.Categories {
			b.Queue(seedCategorySQL, c.ID, c.Name, c.Slug)
		}
		for _, v := range data.Vendors {
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
			b.Queue(seedVendorSQL,
				v.ID, v.Name, v.ShortDescription, v.Description, v.Story, v.City, v.Province,
				v.Address, v.Phone, v.Email, v.Website, v.Instagram, v.Facebook, established, v.Category,
				v.Featured, v.Logo, v.CoverImage, lat, lng,
			)
		}
		for _, p := range data.Products {
			var created *time.Time
			if !p.CreatedAt.IsZero() {
				created = &p.CreatedAt
			}
			b.Queue(seedProductSQL,
				p.ID, p.Name, p.Description, p.LongDescription, p.Price, p.Image,
				p.CategorySlug, p.VendorID, p.Featured, created,
			)
		}
		for _, table := range []string{"categories", "smes", "products"} {
			b.Queue(`SELECT setval(pg_get_serial_sequence($1, 'id'), coalesce((SELECT max(id) FROM `+table+`), 0) + 1, false)`, table)
		}

		if err := tx.SendBatch(ctx, b).Close(); err != nil {
			return errors.Wrap(err, "seed batch")
		}
		return nil
	})
}
