package handler

import (
	"context"
	"strings"

	"github.com/go-faster/errors"

	"github.com/etalasekita/etalase/internal/domain/catalog"
	"github.com/etalasekita/etalase/internal/oas"
)

func (h *Handler) ListProducts(ctx context.Context, params oas.ListProductsParams) ([]oas.Product, error) {
	products, err := h.products.List(ctx, catalog.ProductQuery{
		Categories:   nonEmpty(params.Category),
		Vendors:      params.SmeId,
		FeaturedOnly: params.Featured.Or(false),
	})
	if err != nil {
		return nil, errors.Wrap(err, "list products")
	}
	return toProducts(products), nil
}

func (h *Handler) GetProduct(ctx context.Context, params oas.GetProductParams) (*oas.Product, error) {
	p, err := h.products.GetByID(ctx, params.ID)
	if err != nil {
		return nil, notFound(err, msgProductNotFound)
	}
	out := toProduct(*p)
	return &out, nil
}

// ListRelatedProducts lists other products of the same category.
func (h *Handler) ListRelatedProducts(ctx context.Context, params oas.ListRelatedProductsParams) ([]oas.Product, error) {
	limit := min(max(params.Limit.Or(defaultRelatedLimit), 1), maxRelatedLimit)

	products, err := h.products.Related(ctx, params.ID, limit)
	if err != nil {
		return nil, notFound(err, msgProductNotFound)
	}
	return toProducts(products), nil
}

func (h *Handler) ListSmes(ctx context.Context) ([]oas.Sme, error) {
	vendors, err := h.vendors.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list smes")
	}
	return toSmes(vendors), nil
}

func (h *Handler) GetSme(ctx context.Context, params oas.GetSmeParams) (*oas.Sme, error) {
	v, err := h.vendors.GetByID(ctx, params.ID)
	if err != nil {
		return nil, notFound(err, msgVendorNotFound)
	}
	out := toSme(*v)
	return &out, nil
}

// ListCategories returns the lookup list, or the single category matching
// slug (an empty list when nothing matches).
func (h *Handler) ListCategories(ctx context.Context, params oas.ListCategoriesParams) ([]oas.Category, error) {
	slug := strings.TrimSpace(params.Slug.Or(""))
	if slug == "" {
		categories, err := h.categories.List(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "list categories")
		}
		return toCategories(categories), nil
	}

	c, err := h.categories.GetBySlug(ctx, slug)
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		return []oas.Category{}, nil
	case err != nil:
		return nil, errors.Wrap(err, "get category")
	}
	return []oas.Category{toCategory(*c)}, nil
}

func (h *Handler) GetCategory(ctx context.Context, params oas.GetCategoryParams) (*oas.Category, error) {
	c, err := h.categories.GetByID(ctx, params.ID)
	if err != nil {
		return nil, notFound(err, msgCategoryNotFound)
	}
	out := toCategory(*c)
	return &out, nil
}

// nonEmpty trims values and drops the empty ones.
func nonEmpty(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
