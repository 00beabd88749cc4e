// Package handler implements the generated catalog API server.
package handler

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/etalasekita/etalase/internal/domain/auth"
	"github.com/etalasekita/etalase/internal/domain/catalog"
	"github.com/etalasekita/etalase/internal/domain/media"
	"github.com/etalasekita/etalase/internal/oas"
)

// Compile-time checks ensuring Handler satisfies the ogen interfaces.
var (
	_ oas.Handler         = (*Handler)(nil)
	_ oas.SecurityHandler = (*Handler)(nil)
)

const (
	defaultRelatedLimit = 4
	maxRelatedLimit     = 20
)

// Authenticator logs admins in and verifies their bearer tokens.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*auth.Session, error)
	Verify(ctx context.Context, token string) (*auth.Identity, error)
}

// StoreErrorFunc extracts the message of a storage error that may be shown
// to the caller.
type StoreErrorFunc func(err error) (string, bool)

// Config holds non-dependency configuration for the Handler.
type Config struct {
	// StoreError exposes raw storage messages on 500 responses. When nil,
	// a generic message is returned.
	StoreError StoreErrorFunc
	// MeterProvider records request counters. Defaults to a no-op provider.
	MeterProvider metric.MeterProvider
	// Now replaces time.Now when naming uploaded objects.
	Now func() time.Time
}

// Handler serves the catalog, admin and storefront operations and
// authenticates admin requests.
type Handler struct {
	oas.UnimplementedHandler

	products   catalog.ProductRepository
	vendors    catalog.VendorRepository
	categories catalog.CategoryRepository
	auth       Authenticator
	media      media.Store

	storeError StoreErrorFunc
	now        func() time.Time

	writes  metric.Int64Counter
	queries metric.Int64Counter
}

// New constructs a Handler with the required domain dependencies.
func New(
	cfg Config,
	products catalog.ProductRepository,
	vendors catalog.VendorRepository,
	categories catalog.CategoryRepository,
	authn Authenticator,
	store media.Store,
) (*Handler, error) {
	h := &Handler{
		products:   products,
		vendors:    vendors,
		categories: categories,
		auth:       authn,
		media:      store,
		storeError: cfg.StoreError,
		now:        cfg.Now,
	}
	if h.now == nil {
		h.now = time.Now
	}

	mp := cfg.MeterProvider
	if mp == nil {
		mp = noop.NewMeterProvider()
	}
	meter := mp.Meter("github.com/etalasekita/etalase/internal/handler")

	var err error
	if h.writes, err = meter.Int64Counter("etalase.admin.writes",
		metric.WithDescription("Admin create requests by entity and outcome"),
	); err != nil {
		return nil, errors.Wrap(err, "create writes counter")
	}
	if h.queries, err = meter.Int64Counter("etalase.storefront.queries",
		metric.WithDescription("Storefront list queries by view"),
	); err != nil {
		return nil, errors.Wrap(err, "create queries counter")
	}

	return h, nil
}
