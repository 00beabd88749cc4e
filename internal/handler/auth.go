package handler

import (
	"context"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"github.com/ogen-go/ogen/ogenerrors"
	"go.uber.org/zap"

	"github.com/etalasekita/etalase/internal/domain/auth"
	"github.com/etalasekita/etalase/internal/oas"
)

func (h *Handler) Login(ctx context.Context, req *oas.LoginRequest) (*oas.Session, error) {
	session, err := h.auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, errors.Wrap(err, "login")
	}
	return toSession(*session), nil
}

// HandleBearerAuth verifies the admin token of a protected operation and
// stores the identity in the context. Any authenticated admin passes.
func (h *Handler) HandleBearerAuth(ctx context.Context, _ oas.OperationName, t oas.BearerAuth) (context.Context, error) {
	if strings.TrimSpace(t.Token) == "" {
		return ctx, ogenerrors.ErrSecurityRequirementIsNotSatisfied
	}

	id, err := h.auth.Verify(ctx, t.Token)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidToken) {
			zctx.From(ctx).Info("Token rejected", zap.Error(err))
		}
		return ctx, err
	}

	ctx = auth.WithIdentity(ctx, *id)
	return zctx.With(ctx, zap.Int64("user_id", id.UserID)), nil
}
