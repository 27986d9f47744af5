package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/form"
	"portal/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newErrorTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/onboarding/finalize", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestHandleHTTPError_AppErrorUsesItsCodes(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.DiscardHandler))
	c, rec := newErrorTestContext(t)

	m.HandleHTTPError(errors.Wrap(domainerrors.ErrOnboardingConfirmed, "finalize"), c)

	assert.Equal(t, domainerrors.ErrOnboardingConfirmed.HTTPCode(), rec.Code)
	assert.Contains(t, rec.Body.String(), domainerrors.ErrOnboardingConfirmed.ErrorCode())
}

func TestHandleHTTPError_FieldErrorsReturnBreakdown(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.DiscardHandler))
	c, rec := newErrorTestContext(t)

	ferrs := form.FieldErrors{{Field: "contactEmail", Reason: form.ReasonInvalidFormat}}
	m.HandleHTTPError(ferrs, c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "contactEmail")
	assert.Contains(t, rec.Body.String(), form.ReasonInvalidFormat)
}

func TestHandleHTTPError_IncompleteErrorListsSections(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.DiscardHandler))
	c, rec := newErrorTestContext(t)

	m.HandleHTTPError(&usecase.IncompleteError{Sections: []entity.SectionID{entity.SectionSellerBilling}}, c)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "sellerBilling")
}

func TestHandleHTTPError_UnhandledErrorHidesInternalDetail(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.DiscardHandler))
	c, rec := newErrorTestContext(t)

	// A storage failure surfaced through the transaction layer is not an
	// AppError. The client gets a generic body, never the driver text.
	cause := errors.New("failed to commit transaction: pq: deadlock detected")
	m.HandleHTTPError(cause, c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
	assert.NotContains(t, rec.Body.String(), "deadlock")
	assert.NotContains(t, rec.Body.String(), "pq:")
}
