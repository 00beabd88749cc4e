package catalog

import (
	"fmt"
	"strings"
	"time"
)

// FieldError reports a missing or malformed input field.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func missing(field string) error {
	return &FieldError{Field: field, Reason: "required"}
}

// NewProduct holds the fields of a product to be inserted.
type NewProduct struct {
	Name            string
	Description     string
	LongDescription string
	Price           int64
	Image           string
	CategorySlug    string
	VendorID        int64
	Featured        bool
}

// Validate checks required fields. Existence of the referenced category and
// vendor is enforced by the store.
func (p *NewProduct) Validate() error {
	p.Name = strings.TrimSpace(p.Name)
	p.CategorySlug = strings.TrimSpace(p.CategorySlug)

	switch {
	case p.Name == "":
		return missing("name")
	case p.Price < 0:
		return &FieldError{Field: "price", Reason: "must not be negative"}
	case p.CategorySlug == "":
		return missing("category_slug")
	case p.VendorID <= 0:
		return missing("sme_id")
	}
	return nil
}

// NewVendor holds the fields of a vendor profile to be inserted.
type NewVendor struct {
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
	EstablishedDate  time.Time
	Category         string
	Featured         bool
	Logo             string
	CoverImage       string
	Location         *Location
}

// Validate checks required fields and coordinate bounds.
func (v *NewVendor) Validate() error {
	v.Name = strings.TrimSpace(v.Name)
	if v.Name == "" {
		return missing("name")
	}
	if l := v.Location; l != nil {
		if l.Lat < -90 || l.Lat > 90 {
			return &FieldError{Field: "latitude", Reason: "out of range"}
		}
		if l.Lng < -180 || l.Lng > 180 {
			return &FieldError{Field: "longitude", Reason: "out of range"}
		}
	}
	return nil
}
