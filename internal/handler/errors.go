package handler

import (
	"context"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/go-faster/sdk/zctx"
	"github.com/ogen-go/ogen/ogenerrors"
	"go.uber.org/zap"

	"github.com/etalasekita/etalase/internal/domain/auth"
	"github.com/etalasekita/etalase/internal/domain/catalog"
	"github.com/etalasekita/etalase/internal/oas"
)

// Not-found messages shown to storefront users.
const (
	msgProductNotFound  = "Produk tidak ditemukan"
	msgVendorNotFound   = "UMKM tidak ditemukan"
	msgCategoryNotFound = "Kategori tidak ditemukan"
)

func errorStatus(code int, msg string) *oas.ErrorStatusCode {
	return &oas.ErrorStatusCode{
		StatusCode: code,
		Response:   oas.Error{Error: msg},
	}
}

// notFound turns catalog.ErrNotFound into a 404 carrying msg.
func notFound(err error, msg string) error {
	if errors.Is(err, catalog.ErrNotFound) {
		return errorStatus(http.StatusNotFound, msg)
	}
	return err
}

// NewError maps an operation error to the error envelope. Server errors are
// logged; their message is only exposed when Config.StoreError allows it.
func (h *Handler) NewError(ctx context.Context, err error) *oas.ErrorStatusCode {
	code, msg, ok := classify(err)
	if ok {
		return errorStatus(code, msg)
	}

	zctx.From(ctx).Error("Request failed", zap.Error(err))

	msg = "internal server error"
	if h.storeError != nil {
		if m, exposed := h.storeError(err); exposed {
			msg = m
		}
	}
	return errorStatus(http.StatusInternalServerError, msg)
}

// classify maps errors the client is responsible for.
func classify(err error) (int, string, bool) {
	var (
		status   *oas.ErrorStatusCode
		fieldErr *catalog.FieldError
		tooLarge *http.MaxBytesError
		secErr   *ogenerrors.SecurityError
		ogenErr  ogenerrors.Error
	)
	switch {
	case errors.As(err, &status):
		return status.StatusCode, status.Response.Error, true
	case errors.As(err, &fieldErr):
		return http.StatusBadRequest, fieldErr.Error(), true
	case errors.As(err, &tooLarge):
		return http.StatusBadRequest, "body: too large", true
	case errors.Is(err, auth.ErrTooManyAttempts):
		return http.StatusTooManyRequests, "Too many login attempts", true
	case errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid login credentials", true
	case errors.Is(err, ogenerrors.ErrSecurityRequirementIsNotSatisfied):
		return http.StatusUnauthorized, "Unauthorized: No token", true
	case errors.Is(err, auth.ErrInvalidToken):
		return http.StatusUnauthorized, "Invalid token", true
	case errors.As(err, &secErr):
		// Verification failed for a reason other than the token.
		return 0, "", false
	case errors.As(err, &ogenErr):
		return ogenErr.Code(), err.Error(), true
	}
	return 0, "", false
}

// HandleError writes errors raised outside the operations, such as request
// decoding and authentication failures, in the same envelope.
func (h *Handler) HandleError(ctx context.Context, w http.ResponseWriter, _ *http.Request, err error) {
	writeError(w, h.NewError(ctx, err))
}

// NotFound answers API paths that match no operation.
func (h *Handler) NotFound(w http.ResponseWriter, _ *http.Request) {
	writeError(w, errorStatus(http.StatusNotFound, "not found"))
}

func writeError(w http.ResponseWriter, status *oas.ErrorStatusCode) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	status.Response.Encode(e)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status.StatusCode)
	_, _ = w.Write(e.Bytes())
}
