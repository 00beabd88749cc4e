package handler

import (
	"context"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/etalasekita/etalase/internal/domain/catalog"
	"github.com/etalasekita/etalase/internal/domain/media"
	"github.com/etalasekita/etalase/internal/oas"
)

type keyFunc func(now time.Time, filename string) string

// CreateProduct validates the form, stores the image and inserts the
// product. The image is removed again when the insert fails.
func (h *Handler) CreateProduct(ctx context.Context, req *oas.ProductFormMultipart) (_ *oas.Product, rerr error) {
	defer func() { h.recordWrite(ctx, "product", rerr) }()

	p := catalog.NewProduct{
		Name:            strings.TrimSpace(req.Name),
		Description:     optString(req.Description),
		LongDescription: optString(req.LongDescription),
		Price:           req.Price,
		CategorySlug:    strings.TrimSpace(req.CategorySlug),
		VendorID:        req.SmeID,
		Featured:        req.Featured.Or(false),
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	up := h.uploads()
	defer func() {
		if rerr != nil {
			up.discard(ctx)
		}
	}()

	var err error
	if p.Image, err = up.put(ctx, "image", req.Image, media.ProductImageKey); err != nil {
		return nil, err
	}
	created, err := h.products.Create(ctx, p)
	if err != nil {
		return nil, errors.Wrap(err, "create product")
	}

	zctx.From(ctx).Info("Product created", zap.Int64("product_id", created.ID))
	out := toProduct(*created)
	return &out, nil
}

// CreateSme validates the form, stores the logo and cover image and inserts
// the vendor. Stored images are removed again when a later step fails.
func (h *Handler) CreateSme(ctx context.Context, req *oas.SmeFormMultipart) (_ *oas.Sme, rerr error) {
	defer func() { h.recordWrite(ctx, "sme", rerr) }()

	v, err := vendorForm(req)
	if err != nil {
		return nil, err
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}

	up := h.uploads()
	defer func() {
		if rerr != nil {
			up.discard(ctx)
		}
	}()

	if v.Logo, err = up.put(ctx, "logo", req.Logo, media.VendorLogoKey); err != nil {
		return nil, err
	}
	if v.CoverImage, err = up.put(ctx, "cover_image", req.CoverImage, media.VendorCoverKey); err != nil {
		return nil, err
	}
	created, err := h.vendors.Create(ctx, v)
	if err != nil {
		return nil, errors.Wrap(err, "create sme")
	}

	zctx.From(ctx).Info("SME created", zap.Int64("sme_id", created.ID))
	out := toSme(*created)
	return &out, nil
}

func vendorForm(req *oas.SmeFormMultipart) (catalog.NewVendor, error) {
	v := catalog.NewVendor{
		Name:             strings.TrimSpace(req.Name),
		ShortDescription: optString(req.ShortDescription),
		Description:      optString(req.Description),
		Story:            optString(req.Story),
		City:             optString(req.City),
		Province:         optString(req.Province),
		Address:          optString(req.Address),
		Phone:            optString(req.Phone),
		Email:            optString(req.Email),
		Website:          optString(req.Website),
		Instagram:        optString(req.Instagram),
		Facebook:         optString(req.Facebook),
		Category:         optString(req.Category),
		EstablishedDate:  req.EstablishedDate.Or(time.Time{}),
		Featured:         req.Featured.Or(false),
	}

	lat, hasLat := req.Latitude.Get()
	lng, hasLng := req.Longitude.Get()
	switch {
	case hasLat && hasLng:
		v.Location = &catalog.Location{Lat: lat, Lng: lng}
	case hasLat || hasLng:
		return v, &catalog.FieldError{Field: "location", Reason: "latitude and longitude must be set together"}
	}
	return v, nil
}

func optString(s oas.OptString) string {
	return strings.TrimSpace(s.Or(""))
}

// uploadSet tracks the objects stored for one request.
type uploadSet struct {
	h    *Handler
	keys []string
}

func (h *Handler) uploads() *uploadSet {
	return &uploadSet{h: h}
}

// put stores the file of the given form field and returns its public URL.
// A missing file yields an empty URL.
func (u *uploadSet) put(ctx context.Context, field string, file oas.OptMultipartFile, name keyFunc) (string, error) {
	f, ok := file.Get()
	if !ok {
		return "", nil
	}

	key := name(u.h.now(), f.Name)
	url, err := u.h.media.Put(ctx, key, f.File, f.Header.Get("Content-Type"))
	if err != nil {
		return "", errors.Wrapf(err, "upload %s", field)
	}
	u.keys = append(u.keys, key)
	return url, nil
}

// discard deletes every stored object. Objects that cannot be deleted are
// logged so they can be removed by hand.
func (u *uploadSet) discard(ctx context.Context) {
	lg := zctx.From(ctx)
	for _, key := range u.keys {
		if err := u.h.media.Delete(context.WithoutCancel(ctx), key); err != nil {
			lg.Warn("Orphaned upload", zap.String("key", key), zap.Error(err))
			continue
		}
		lg.Info("Upload discarded", zap.String("key", key))
	}
}

func (h *Handler) recordWrite(ctx context.Context, entity string, err error) {
	outcome := "created"
	var fieldErr *catalog.FieldError
	switch {
	case errors.As(err, &fieldErr):
		outcome = "rejected"
	case err != nil:
		outcome = "failed"
	}
	h.writes.Add(ctx, 1, metric.WithAttributes(
		attribute.String("entity", entity),
		attribute.String("outcome", outcome),
	))
}
