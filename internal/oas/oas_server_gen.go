// Code generated by ogen, DO NOT EDIT.

package oas

import (
	"context"
)

// Handler handles operations described by OpenAPI v3 specification.
type Handler interface {
	// CreateProduct implements createProduct operation.
	//
	// Create a product.
	//
	// POST /products
	CreateProduct(ctx context.Context, req *ProductFormMultipart) (*Product, error)
	// CreateSme implements createSme operation.
	//
	// Create an SME.
	//
	// POST /smes
	CreateSme(ctx context.Context, req *SmeFormMultipart) (*Sme, error)
	// GetCategory implements getCategory operation.
	//
	// Get a category.
	//
	// GET /categories/{id}
	GetCategory(ctx context.Context, params GetCategoryParams) (*Category, error)
	// GetProduct implements getProduct operation.
	//
	// Get a product.
	//
	// GET /products/{id}
	GetProduct(ctx context.Context, params GetProductParams) (*Product, error)
	// GetSme implements getSme operation.
	//
	// Get an SME.
	//
	// GET /smes/{id}
	GetSme(ctx context.Context, params GetSmeParams) (*Sme, error)
	// ListCategories implements listCategories operation.
	//
	// List categories.
	//
	// GET /categories
	ListCategories(ctx context.Context, params ListCategoriesParams) ([]Category, error)
	// ListMapMarkers implements listMapMarkers operation.
	//
	// Map markers of the visible SMEs.
	//
	// GET /map/markers
	ListMapMarkers(ctx context.Context, params ListMapMarkersParams) ([]Marker, error)
	// ListProducts implements listProducts operation.
	//
	// List products.
	//
	// GET /products
	ListProducts(ctx context.Context, params ListProductsParams) ([]Product, error)
	// ListRelatedProducts implements listRelatedProducts operation.
	//
	// List products of the same category.
	//
	// GET /products/{id}/related
	ListRelatedProducts(ctx context.Context, params ListRelatedProductsParams) ([]Product, error)
	// ListSmes implements listSmes operation.
	//
	// List SMEs.
	//
	// GET /smes
	ListSmes(ctx context.Context) ([]Sme, error)
	// ListStorefrontProducts implements listStorefrontProducts operation.
	//
	// Filtered and sorted product listing.
	//
	// GET /storefront/products
	ListStorefrontProducts(ctx context.Context, params ListStorefrontProductsParams) ([]Product, error)
	// ListStorefrontSmes implements listStorefrontSmes operation.
	//
	// Searched and sorted SME listing.
	//
	// GET /storefront/smes
	ListStorefrontSmes(ctx context.Context, params ListStorefrontSmesParams) ([]Sme, error)
	// Login implements login operation.
	//
	// Log an admin in.
	//
	// POST /auth/login
	Login(ctx context.Context, req *LoginRequest) (*Session, error)
	// NewError creates *ErrorStatusCode from error returned by handler.
	//
	// Used for common default response.
	NewError(ctx context.Context, err error) *ErrorStatusCode
}

// Server implements http server based on OpenAPI v3 specification and
// calls Handler to handle requests.
type Server struct {
	h   Handler
	sec SecurityHandler
	baseServer
}

// NewServer creates new Server.
func NewServer(h Handler, sec SecurityHandler, opts ...ServerOption) (*Server, error) {
	s, err := newServerConfig(opts...).baseServer()
	if err != nil {
		return nil, err
	}
	return &Server{
		h:          h,
		sec:        sec,
		baseServer: s,
	}, nil
}
