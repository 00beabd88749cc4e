// Code generated by ogen, DO NOT EDIT.

package oas

import (
	"context"

	ht "github.com/ogen-go/ogen/http"
)

// UnimplementedHandler is no-op Handler which returns http.ErrNotImplemented.
type UnimplementedHandler struct{}

var _ Handler = UnimplementedHandler{}

// CreateProduct implements createProduct operation.
//
// Create a product.
//
// POST /products
func (UnimplementedHandler) CreateProduct(ctx context.Context, req *ProductFormMultipart) (r *Product, _ error) {
	return r, ht.ErrNotImplemented
}

// CreateSme implements createSme operation.
//
// Create an SME.
//
// POST /smes
func (UnimplementedHandler) CreateSme(ctx context.Context, req *SmeFormMultipart) (r *Sme, _ error) {
	return r, ht.ErrNotImplemented
}

// GetCategory implements getCategory operation.
//
// Get a category.
//
// GET /categories/{id}
func (UnimplementedHandler) GetCategory(ctx context.Context, params GetCategoryParams) (r *Category, _ error) {
	return r, ht.ErrNotImplemented
}

// GetProduct implements getProduct operation.
//
// Get a product.
//
// GET /products/{id}
func (UnimplementedHandler) GetProduct(ctx context.Context, params GetProductParams) (r *Product, _ error) {
	return r, ht.ErrNotImplemented
}

// GetSme implements getSme operation.
//
// Get an SME.
//
// GET /smes/{id}
func (UnimplementedHandler) GetSme(ctx context.Context, params GetSmeParams) (r *Sme, _ error) {
	return r, ht.ErrNotImplemented
}

// ListCategories implements listCategories operation.
//
// List categories.
//
// GET /categories
func (UnimplementedHandler) ListCategories(ctx context.Context, params ListCategoriesParams) (r []Category, _ error) {
	return r, ht.ErrNotImplemented
}

// ListMapMarkers implements listMapMarkers operation.
//
// Map markers of the visible SMEs.
//
// GET /map/markers
func (UnimplementedHandler) ListMapMarkers(ctx context.Context, params ListMapMarkersParams) (r []Marker, _ error) {
	return r, ht.ErrNotImplemented
}

// ListProducts implements listProducts operation.
//
// List products.
//
// GET /products
func (UnimplementedHandler) ListProducts(ctx context.Context, params ListProductsParams) (r []Product, _ error) {
	return r, ht.ErrNotImplemented
}

// ListRelatedProducts implements listRelatedProducts operation.
//
// List products of the same category.
//
// GET /products/{id}/related
func (UnimplementedHandler) ListRelatedProducts(ctx context.Context, params ListRelatedProductsParams) (r []Product, _ error) {
	return r, ht.ErrNotImplemented
}

// ListSmes implements listSmes operation.
//
// List SMEs.
//
// GET /smes
func (UnimplementedHandler) ListSmes(ctx context.Context) (r []Sme, _ error) {
	return r, ht.ErrNotImplemented
}

// ListStorefrontProducts implements listStorefrontProducts operation.
//
// Filtered and sorted product listing.
//
// GET /storefront/products
func (UnimplementedHandler) ListStorefrontProducts(ctx context.Context, params ListStorefrontProductsParams) (r []Product, _ error) {
	return r, ht.ErrNotImplemented
}

// ListStorefrontSmes implements listStorefrontSmes operation.
//
// Searched and sorted SME listing.
//
// GET /storefront/smes
func (UnimplementedHandler) ListStorefrontSmes(ctx context.Context, params ListStorefrontSmesParams) (r []Sme, _ error) {
	return r, ht.ErrNotImplemented
}

// Login implements login operation.
//
// Log an admin in.
//
// POST /auth/login
func (UnimplementedHandler) Login(ctx context.Context, req *LoginRequest) (r *Session, _ error) {
	return r, ht.ErrNotImplemented
}

// NewError creates *ErrorStatusCode from error returned by handler.
//
// Used for common default response.
func (UnimplementedHandler) NewError(ctx context.Context, err error) (r *ErrorStatusCode) {
	r = new(ErrorStatusCode)
	return r
}
