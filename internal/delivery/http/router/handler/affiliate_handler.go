package handler

import (
	"log/slog"
	"net/http"

	"portal/internal/delivery/http/response"
	"portal/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AffiliateHandler holds dependencies for admin affiliate management.
type AffiliateHandler struct {
	uc     usecase.AffiliateUsecase
	logger *slog.Logger
}

// NewAffiliateHandler is the constructor for AffiliateHandler, injected by Fx.
func NewAffiliateHandler(uc usecase.AffiliateUsecase, logger *slog.Logger) *AffiliateHandler {
	return &AffiliateHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListAffiliates returns all affiliates for the admin list screen.
func (h *AffiliateHandler) ListAffiliates(c echo.Context) error {
	affiliates, err := h.uc.ListAffiliates(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, affiliates, "")
}

// GetAffiliate returns one affiliate with its overrides.
func (h *AffiliateHandler) GetAffiliate(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Affiliate ID must be a UUID")
	}

	detail, err := h.uc.GetAffiliate(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, detail, "")
}

// CreateAffiliate creates a shell affiliate with a fresh invite token.
func (h *AffiliateHandler) CreateAffiliate(c echo.Context) error {
	var input *usecase.CreateAffiliateInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid affiliate input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.uc.CreateAffiliate(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Affiliate created successfully")
}

// ResolveInvite redeems an invite token so the onboarding landing page can
// greet the collaborator before they sign in.
func (h *AffiliateHandler) ResolveInvite(c echo.Context) error {
	info, err := h.uc.ResolveInvite(c.Request().Context(), c.Param("token"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, info, "")
}

// InviteQR renders the affiliate's onboarding invite link as a QR PNG.
func (h *AffiliateHandler) InviteQR(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Affiliate ID must be a UUID")
	}

	png, err := h.uc.InviteQR(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
