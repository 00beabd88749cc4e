package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"golang.org/x/sync/errgroup"

	"github.com/etalasekita/etalase/internal/domain/catalog"
	"github.com/etalasekita/etalase/internal/storefront"
	"github.com/etalasekita/etalase/internal/wire"
)

// Products lists products matching the fetch parameters. A category or
// vendor set that is empty is left out of the query entirely.
func (c *Client) Products(ctx context.Context, p storefront.FetchParams) ([]catalog.Product, error) {
	q := url.Values{}
	for _, slug := range p.Categories {
		q.Add("category", slug)
	}
	for _, id := range p.Vendors {
		q.Add("smeId", strconv.FormatInt(id, 10))
	}
	if p.FeaturedOnly {
		q.Set("featured", "true")
	}

	var products []catalog.Product
	err := c.get(ctx, "/api/products", q, func(d *jx.Decoder) (err error) {
		products, err = wire.DecodeProducts(d)
		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "list products")
	}
	return products, nil
}

// Fetch runs Products and packs the outcome for ProductList.Apply.
func (c *Client) Fetch(ctx context.Context, p storefront.FetchParams) storefront.FetchResult {
	products, err := c.Products(ctx, p)
	return storefront.FetchResult{Generation: p.Generation, Products: products, Err: err}
}

func (c *Client) Product(ctx context.Context, id int64) (*catalog.Product, error) {
	var p catalog.Product
	err := c.get(ctx, idPath("/api/products", id), nil, func(d *jx.Decoder) (err error) {
		p, err = wire.DecodeProduct(d)
		return err
	})
	if err != nil {
		return nil, errors.Wrapf(err, "get product %d", id)
	}
	return &p, nil
}

// Related lists up to limit other products of the product's category.
func (c *Client) Related(ctx context.Context, id int64, limit int) ([]catalog.Product, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var products []catalog.Product
	err := c.get(ctx, idPath("/api/products", id)+"/related", q, func(d *jx.Decoder) (err error) {
		products, err = wire.DecodeProducts(d)
		return err
	})
	if err != nil {
		return nil, errors.Wrapf(err, "related products %d", id)
	}
	return products, nil
}

func (c *Client) Categories(ctx context.Context) ([]catalog.Category, error) {
	return c.categories(ctx, nil)
}

// CategoryBySlug returns catalog.ErrNotFound when no category has slug.
func (c *Client) CategoryBySlug(ctx context.Context, slug string) (*catalog.Category, error) {
	categories, err := c.categories(ctx, url.Values{"slug": {slug}})
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, errors.Wrapf(catalog.ErrNotFound, "category %q", slug)
	}
	return &categories[0], nil
}

func (c *Client) categories(ctx context.Context, q url.Values) ([]catalog.Category, error) {
	var categories []catalog.Category
	err := c.get(ctx, "/api/categories", q, func(d *jx.Decoder) (err error) {
		categories, err = wire.DecodeCategories(d)
		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "list categories")
	}
	return categories, nil
}

// Vendors lists every vendor, newest first.
func (c *Client) Vendors(ctx context.Context) ([]catalog.Vendor, error) {
	var vendors []catalog.Vendor
	err := c.get(ctx, "/api/smes", nil, func(d *jx.Decoder) (err error) {
		vendors, err = wire.DecodeVendors(d)
		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "list smes")
	}
	return vendors, nil
}

func (c *Client) Vendor(ctx context.Context, id int64) (*catalog.Vendor, error) {
	var v catalog.Vendor
	err := c.get(ctx, idPath("/api/smes", id), nil, func(d *jx.Decoder) (err error) {
		v, err = wire.DecodeVendor(d)
		return err
	})
	if err != nil {
		return nil, errors.Wrapf(err, "get sme %d", id)
	}
	return &v, nil
}

// Detail is everything the product page shows.
type Detail struct {
	Product catalog.Product
	// Vendor and Category are nil when the referenced row is gone.
	Vendor   *catalog.Vendor
	Category *catalog.Category
	Related  []catalog.Product
}

const detailRelated = 4

// Detail loads a product and then its vendor, category and related products
// in parallel.
func (c *Client) Detail(ctx context.Context, id int64) (*Detail, error) {
	p, err := c.Product(ctx, id)
	if err != nil {
		return nil, err
	}
	out := &Detail{Product: *p}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := c.Vendor(gctx, p.VendorID)
		if errors.Is(err, catalog.ErrNotFound) {
			return nil
		}
		out.Vendor = v
		return err
	})
	g.Go(func() error {
		cat, err := c.CategoryBySlug(gctx, p.CategorySlug)
		if errors.Is(err, catalog.ErrNotFound) {
			return nil
		}
		out.Category = cat
		return err
	})
	g.Go(func() error {
		related, err := c.Related(gctx, id, detailRelated)
		out.Related = related
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, errors.Wrapf(err, "product detail %d", id)
	}
	return out, nil
}
