package wire

import (
	"github.com/go-faster/errors"
	"github.com/go-faster/jx"

	"github.com/etalasekita/etalase/internal/domain/catalog"
)

// DecodeProduct reads a product row.
func DecodeProduct(d *jx.Decoder) (catalog.Product, error) {
	var p catalog.Product
	err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "id":
			p.ID, err = optInt64(d)
		case "name":
			p.Name, err = optStr(d)
		case "description":
			p.Description, err = optStr(d)
		case "long_description":
			p.LongDescription, err = optStr(d)
		case "price":
			p.Price, err = optInt64(d)
		case "image":
			p.Image, err = optStr(d)
		case "category_slug":
			p.CategorySlug, err = optStr(d)
		case "sme_id":
			p.VendorID, err = optInt64(d)
		case "featured":
			p.Featured, err = optBool(d)
		case "created_at":
			p.CreatedAt, err = optTime(d)
		default:
			return d.Skip()
		}
		if err != nil {
			return errors.Wrap(err, key)
		}
		return nil
	})
	return p, err
}

// DecodeProducts reads an array of product rows.
func DecodeProducts(d *jx.Decoder) ([]catalog.Product, error) {
	products := []catalog.Product{}
	err := d.Arr(func(d *jx.Decoder) error {
		p, err := DecodeProduct(d)
		if err != nil {
			return err
		}
		products = append(products, p)
		return nil
	})
	return products, err
}

// DecodeCategory reads a category row.
func DecodeCategory(d *jx.Decoder) (catalog.Category, error) {
	var c catalog.Category
	err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "id":
			c.ID, err = optInt64(d)
		case "name":
			c.Name, err = optStr(d)
		case "slug":
			c.Slug, err = optStr(d)
		default:
			return d.Skip()
		}
		if err != nil {
			return errors.Wrap(err, key)
		}
		return nil
	})
	return c, err
}

// DecodeCategories reads an array of category rows.
func DecodeCategories(d *jx.Decoder) ([]catalog.Category, error) {
	categories := []catalog.Category{}
	err := d.Arr(func(d *jx.Decoder) error {
		c, err := DecodeCategory(d)
		if err != nil {
			return err
		}
		categories = append(categories, c)
		return nil
	})
	return categories, err
}

// DecodeVendor reads a vendor row. A location is set only when both
// coordinates are present.
func DecodeVendor(d *jx.Decoder) (catalog.Vendor, error) {
	var (
		v        catalog.Vendor
		lat, lng *float64
	)
	strs := map[string]*string{
		"name":              &v.Name,
		"short_description": &v.ShortDescription,
		"description":       &v.Description,
		"story":             &v.Story,
		"city":              &v.City,
		"province":          &v.Province,
		"address":           &v.Address,
		"phone":             &v.Phone,
		"email":             &v.Email,
		"website":           &v.Website,
		"instagram":         &v.Instagram,
		"facebook":          &v.Facebook,
		"category":          &v.Category,
		"logo":              &v.Logo,
		"cover_image":       &v.CoverImage,
	}

	err := d.Obj(func(d *jx.Decoder, key string) error {
		if dst, ok := strs[key]; ok {
			s, err := optStr(d)
			*dst = s
			if err != nil {
				return errors.Wrap(err, key)
			}
			return nil
		}

		var err error
		switch key {
		case "id":
			v.ID, err = optInt64(d)
		case "established_date":
			v.EstablishedDate, err = optTime(d)
		case "featured":
			v.Featured, err = optBool(d)
		case "latitude":
			lat, err = optFloat(d)
		case "longitude":
			lng, err = optFloat(d)
		case "product_count":
			var n int64
			n, err = optInt64(d)
			v.ProductCount = int(n)
		case "created_at":
			v.CreatedAt, err = optTime(d)
		default:
			return d.Skip()
		}
		if err != nil {
			return errors.Wrap(err, key)
		}
		return nil
	})
	if err != nil {
		return v, err
	}

	if lat != nil && lng != nil {
		v.Location = &catalog.Location{Lat: *lat, Lng: *lng}
	}
	return v, nil
}

// DecodeVendors reads an array of vendor rows.
func DecodeVendors(d *jx.Decoder) ([]catalog.Vendor, error) {
	vendors := []catalog.Vendor{}
	err := d.Arr(func(d *jx.Decoder) error {
		v, err := DecodeVendor(d)
		if err != nil {
			return err
		}
		vendors = append(vendors, v)
		return nil
	})
	return vendors, err
}

// Catalog is a complete catalog dump as read by the seeder.
type Catalog struct {
	Categories []catalog.Category
	Vendors    []catalog.Vendor
	Products   []catalog.Product
}

// DecodeCatalog reads {"categories": [...], "smes": [...], "products": [...]}.
func DecodeCatalog(d *jx.Decoder) (Catalog, error) {
	var c Catalog
	err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "categories":
			c.Categories, err = DecodeCategories(d)
		case "smes":
			c.Vendors, err = DecodeVendors(d)
		case "products":
			c.Products, err = DecodeProducts(d)
		default:
			return d.Skip()
		}
		if err != nil {
			return errors.Wrap(err, key)
		}
		return nil
	})
	return c, err
}
