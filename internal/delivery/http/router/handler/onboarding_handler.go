// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"portal/internal/delivery/http/middleware"
	"portal/internal/delivery/http/response"
	"portal/internal/domain/entity"
	"portal/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// w9FormField is the multipart form field carrying the W-9 document.
const w9FormField = "file"

// OnboardingHandler holds dependencies for the collaborator onboarding flow.
type OnboardingHandler struct {
	uc     usecase.OnboardingUsecase
	logger *slog.Logger
}

// NewOnboardingHandler is the constructor for OnboardingHandler, injected by Fx.
func NewOnboardingHandler(uc usecase.OnboardingUsecase, logger *slog.Logger) *OnboardingHandler {
	return &OnboardingHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetSection returns the stored answer (or schema defaults) for one section.
func (h *OnboardingHandler) GetSection(c echo.Context) error {
	affiliateID := middleware.AffiliateIDFromContext(c)
	if affiliateID == nil {
		return response.Forbidden(c, "FORBIDDEN", "No affiliate binding on this account")
	}

	view, err := h.uc.GetSection(c.Request().Context(), *affiliateID, entity.SectionID(c.Param("id")))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// SaveSection validates and stores raw form input for one section.
// The body is bound as a raw map so the section schema, not echo, decides
// which fields and types are acceptable.
func (h *OnboardingHandler) SaveSection(c echo.Context) error {
	affiliateID := middleware.AffiliateIDFromContext(c)
	if affiliateID == nil {
		return response.Forbidden(c, "FORBIDDEN", "No affiliate binding on this account")
	}

	var raw map[string]any
	if err := c.Bind(&raw); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Request body must be a JSON object")
	}

	output, err := h.uc.SaveSection(c.Request().Context(), *affiliateID, entity.SectionID(c.Param("id")), raw)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Section saved successfully")
}

// Progress reports per-section completion and the derived session state.
func (h *OnboardingHandler) Progress(c echo.Context) error {
	affiliateID := middleware.AffiliateIDFromContext(c)
	if affiliateID == nil {
		return response.Forbidden(c, "FORBIDDEN", "No affiliate binding on this account")
	}

	output, err := h.uc.Progress(c.Request().Context(), *affiliateID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// UploadW9 stores an uploaded W-9 document and returns its blob key.
func (h *OnboardingHandler) UploadW9(c echo.Context) error {
	affiliateID := middleware.AffiliateIDFromContext(c)
	if affiliateID == nil {
		return response.Forbidden(c, "FORBIDDEN", "No affiliate binding on this account")
	}

	fileHeader, err := c.FormFile(w9FormField)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Multipart field 'file' is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "open uploaded file")
	}
	defer file.Close()

	key, err := h.uc.SaveW9(c.Request().Context(), *affiliateID, fileHeader.Filename, file)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"w9_file_key": key}, "Document uploaded successfully")
}

// Finalize re-validates the whole session and confirms the affiliate.
func (h *OnboardingHandler) Finalize(c echo.Context) error {
	affiliateID := middleware.AffiliateIDFromContext(c)
	if affiliateID == nil {
		return response.Forbidden(c, "FORBIDDEN", "No affiliate binding on this account")
	}

	output, err := h.uc.Finalize(c.Request().Context(), *affiliateID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Onboarding confirmed")
}
