package middleware

import (
	"log/slog"
	"net/http"

	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/form"
	"portal/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	// Section schema failures carry the full per-field breakdown.
	var fieldErrs form.FieldErrors
	if errors.As(err, &fieldErrs) {
		c.JSON(http.StatusBadRequest, domainerrors.Response{
			Success: false,
			Code:    http.StatusBadRequest,
			Message: domainerrors.ErrValidationFailed.Message(),
			Error: &domainerrors.ErrorInfo{
				Code:    domainerrors.ErrValidationFailed.ErrorCode(),
				Details: fieldErrs,
			},
		})

		return
	}

	// Finalize refusals list the sections still blocking confirmation.
	var incompleteErr *usecase.IncompleteError
	if errors.As(err, &incompleteErr) {
		c.JSON(http.StatusUnprocessableEntity, domainerrors.Response{
			Success: false,
			Code:    http.StatusUnprocessableEntity,
			Message: domainerrors.ErrOnboardingIncomplete.Message(),
			Error: &domainerrors.ErrorInfo{
				Code:    domainerrors.ErrOnboardingIncomplete.ErrorCode(),
				Details: map[string]any{"incomplete_sections": incompleteErr.Sections},
			},
		})

		return
	}

	// Try to parse as AppError
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		// Use AppError information
		c.JSON(appErr.HTTPCode(), domainerrors.Response{
			Success: false,
			Code:    appErr.HTTPCode(),
			Message: appErr.Message(),
			Error: &domainerrors.ErrorInfo{
				Code:    appErr.ErrorCode(),
				Details: appErr.Details(),
			},
		})

		return
	}

	// Check if it's Echo's HTTPError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message, _ := httpErr.Message.(string)
		if message == "" {
			message = http.StatusText(httpErr.Code)
		}
		c.JSON(httpErr.Code, domainerrors.Response{
			Success: false,
			Code:    httpErr.Code,
			Message: message,
			Error: &domainerrors.ErrorInfo{
				Code:    "HTTP_ERROR",
				Details: message,
			},
		})

		return
	}

	// Default to internal error: log the real cause, return a generic body.
	// Driver and ORM error text never reaches the client.
	m.logger.Error("Unhandled error",
		"error", err.Error(),
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
	)

	c.JSON(http.StatusInternalServerError, domainerrors.Response{
		Success: false,
		Code:    http.StatusInternalServerError,
		Message: "Internal server error",
		Error: &domainerrors.ErrorInfo{
			Code: "INTERNAL_ERROR",
		},
	})
}
