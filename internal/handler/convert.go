package handler

import (
	"time"

	"github.com/etalasekita/etalase/internal/domain/auth"
	"github.com/etalasekita/etalase/internal/domain/catalog"
	"github.com/etalasekita/etalase/internal/oas"
	"github.com/etalasekita/etalase/internal/storefront"
)

func toProduct(p catalog.Product) oas.Product {
	return oas.Product{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		LongDescription: p.LongDescription,
		Price:           p.Price,
		Image:           p.Image,
		CategorySlug:    p.CategorySlug,
		SmeID:           p.VendorID,
		Featured:        p.Featured,
		CreatedAt:       nilDateTime(p.CreatedAt),
	}
}

func toProducts(products []catalog.Product) []oas.Product {
	out := make([]oas.Product, len(products))
	for i, p := range products {
		out[i] = toProduct(p)
	}
	return out
}

func toSme(v catalog.Vendor) oas.Sme {
	s := oas.Sme{
		ID:               v.ID,
		Name:             v.Name,
		ShortDescription: v.ShortDescription,
		Description:      v.Description,
		Story:            v.Story,
		City:             v.City,
		Province:         v.Province,
		Address:          v.Address,
		Phone:            v.Phone,
		Email:            v.Email,
		Website:          v.Website,
		Instagram:        v.Instagram,
		Facebook:         v.Facebook,
		Category:         v.Category,
		Featured:         v.Featured,
		Logo:             v.Logo,
		CoverImage:       v.CoverImage,
		ProductCount:     v.ProductCount,
		CreatedAt:        nilDateTime(v.CreatedAt),
	}
	if v.EstablishedDate.IsZero() {
		s.EstablishedDate.SetToNull()
	} else {
		s.EstablishedDate.SetTo(v.EstablishedDate)
	}
	if v.Location != nil {
		s.Latitude.SetTo(v.Location.Lat)
		s.Longitude.SetTo(v.Location.Lng)
	} else {
		s.Latitude.SetToNull()
		s.Longitude.SetToNull()
	}
	return s
}

func toSmes(vendors []catalog.Vendor) []oas.Sme {
	out := make([]oas.Sme, len(vendors))
	for i, v := range vendors {
		out[i] = toSme(v)
	}
	return out
}

func toCategory(c catalog.Category) oas.Category {
	return oas.Category{ID: c.ID, Name: c.Name, Slug: c.Slug}
}

func toCategories(categories []catalog.Category) []oas.Category {
	out := make([]oas.Category, len(categories))
	for i, c := range categories {
		out[i] = toCategory(c)
	}
	return out
}

func toMarkers(markers []storefront.Marker) []oas.Marker {
	out := make([]oas.Marker, len(markers))
	for i, m := range markers {
		out[i] = oas.Marker{
			SmeID:            m.VendorID,
			Name:             m.Name,
			City:             m.City,
			Province:         m.Province,
			ShortDescription: m.ShortDescription,
			Logo:             m.Logo,
			Latitude:         m.Lat,
			Longitude:        m.Lng,
			Approximate:      m.Approximate,
		}
	}
	return out
}

func toSession(s auth.Session) *oas.Session {
	return &oas.Session{
		AccessToken: s.AccessToken,
		TokenType:   s.TokenType,
		ExpiresAt:   s.ExpiresAt,
	}
}

// nilDateTime encodes the zero time as null.
func nilDateTime(t time.Time) oas.NilDateTime {
	var v oas.NilDateTime
	if t.IsZero() {
		v.SetToNull()
	} else {
		v.SetTo(t)
	}
	return v
}
