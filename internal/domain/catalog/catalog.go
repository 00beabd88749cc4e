// Package catalog defines the storefront catalog: products, categories and
// the small businesses (SMEs) that sell them.
package catalog

import (
	"context"
	"time"

	"github.com/go-faster/errors"
)

// ErrNotFound is returned when a requested catalog entity does not exist.
var ErrNotFound = errors.New("not found")

// Product is a normalized catalog item. Optional fields are always present
// with their zero value, never null.
type Product struct {
	ID              int64
	Name            string
	Description     string
	LongDescription string
	// Price is in rupiah, the smallest currency unit used by the store.
	Price        int64
	Image        string
	CategorySlug string
	VendorID     int64
	Featured     bool
	CreatedAt    time.Time
}

// Category groups products. Slug is the key products reference.
type Category struct {
	ID   int64
	Name string
	Slug string
}

// Vendor is an SME profile.
type Vendor struct {
	ID               int64
	Name             string
	ShortDescription string
	Description      string
	Story            string
	City             string
	Province         string
	Address          string
	Phone            string
	Email            string
	Website          string
	Instagram        string
	Facebook         string
	// EstablishedDate is the zero time when unknown.
	EstablishedDate time.Time
	Category        string
	Featured        bool
	Logo            string
	CoverImage      string
	Location        *Location
	ProductCount    int
	CreatedAt       time.Time
}

// Location is a stored geographic position of a vendor.
type Location struct {
	Lat float64
	Lng float64
}

// ProductQuery selects products. Within a dimension values are OR-ed, across
// dimensions they are AND-ed. An empty slice places no constraint.
type ProductQuery struct {
	Categories   []string
	Vendors      []int64
	FeaturedOnly bool
}

// ProductRepository provides access to stored products.
type ProductRepository interface {
	List(ctx context.Context, q ProductQuery) ([]Product, error)
	GetByID(ctx context.Context, id int64) (*Product, error)
	Related(ctx context.Context, id int64, limit int) ([]Product, error)
	Create(ctx context.Context, p NewProduct) (*Product, error)
}

// VendorRepository provides access to stored vendors.
type VendorRepository interface {
	List(ctx context.Context) ([]Vendor, error)
	GetByID(ctx context.Context, id int64) (*Vendor, error)
	Create(ctx context.Context, v NewVendor) (*Vendor, error)
}

// CategoryRepository provides access to the category lookup table.
type CategoryRepository interface {
	List(ctx context.Context) ([]Category, error)
	GetByID(ctx context.Context, id int64) (*Category, error)
	GetBySlug(ctx context.Context, slug string) (*Category, error)
}
