package handler

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/etalasekita/etalase/internal/oas"
	"github.com/etalasekita/etalase/internal/storefront"
)

// ListStorefrontProducts runs the product list view model once: the
// selection parameters go to the store, the rest is filtered and sorted in
// memory.
func (h *Handler) ListStorefrontProducts(ctx context.Context, params oas.ListStorefrontProductsParams) ([]oas.Product, error) {
	sort, err := storefront.ParseSortKey(params.Sort.Or(""), storefront.SortNewest)
	if err != nil {
		zctx.From(ctx).Debug("Unknown sort key", zap.Error(err))
	}

	list := storefront.NewProductList()
	list.SetSelectedCategories(params.Category)
	list.SetSelectedVendors(params.SmeId)
	list.SetFeaturedOnly(params.Featured.Or(false))
	list.SetSearchQuery(params.Q.Or(""))
	list.SetPriceRange(params.Min.Or(0), params.Max.Or(storefront.MaxPrice))
	list.SetSortKey(sort)

	fetch := list.FetchParams()
	products, err := h.products.List(ctx, fetch.Query())
	if err := list.Apply(storefront.FetchResult{Generation: fetch.Generation, Products: products, Err: err}); err != nil {
		return nil, errors.Wrap(err, "list products")
	}
	h.recordQuery(ctx, "products")

	return toProducts(list.VisibleProducts()), nil
}

func (h *Handler) ListStorefrontSmes(ctx context.Context, params oas.ListStorefrontSmesParams) ([]oas.Sme, error) {
	list, err := h.vendorList(ctx, params.Q.Or(""), params.Sort.Or(""))
	if err != nil {
		return nil, err
	}
	h.recordQuery(ctx, "smes")

	return toSmes(list.Visible()), nil
}

func (h *Handler) ListMapMarkers(ctx context.Context, params oas.ListMapMarkersParams) ([]oas.Marker, error) {
	list, err := h.vendorList(ctx, params.Q.Or(""), params.Sort.Or(""))
	if err != nil {
		return nil, err
	}
	h.recordQuery(ctx, "map")

	return toMarkers(storefront.Markers(list.Visible())), nil
}

func (h *Handler) vendorList(ctx context.Context, q, sort string) (*storefront.VendorList, error) {
	vendors, err := h.vendors.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list smes")
	}

	list := storefront.NewVendorList()
	list.SetVendors(vendors)
	list.SetSearchQuery(q)
	list.SetSortKey(storefront.SortKey(sort))
	return list, nil
}

func (h *Handler) recordQuery(ctx context.Context, view string) {
	h.queries.Add(ctx, 1, metric.WithAttributes(attribute.String("view", view)))
}
