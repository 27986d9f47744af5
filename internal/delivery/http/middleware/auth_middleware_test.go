package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"portal/internal/domain/entity"
	"portal/internal/domain/service"
	mockService "portal/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(t *testing.T, authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_Authenticate_SetsClaims(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	userID := uuid.New()
	affiliateID := uuid.New()
	tokenSvc.EXPECT().
		ValidateAccessToken("valid-token").
		Return(&service.Claims{
			UserID:      userID,
			Role:        entity.RoleCollaborator,
			AffiliateID: &affiliateID,
			Type:        "access",
		}, nil)

	c, rec := newAuthTestContext(t, "Bearer valid-token")

	err := m.Authenticate(okHandler)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, UserIDFromContext(c))
	assert.Equal(t, entity.RoleCollaborator, RoleFromContext(c))
	require.NotNil(t, AffiliateIDFromContext(c))
	assert.Equal(t, affiliateID, *AffiliateIDFromContext(c))
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c, rec := newAuthTestContext(t, "")

	err := m.Authenticate(okHandler)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c, rec := newAuthTestContext(t, "Basic dXNlcjpwdw==")

	err := m.Authenticate(okHandler)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	tokenSvc.EXPECT().
		ValidateAccessToken("expired").
		Return(nil, errors.New("token is expired"))

	c, rec := newAuthTestContext(t, "Bearer expired")

	err := m.Authenticate(okHandler)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RequireAdmin(t *testing.T) {
	tests := []struct {
		name     string
		role     entity.Role
		wantCode int
	}{
		{name: "super admin allowed", role: entity.RoleSuperAdmin, wantCode: http.StatusOK},
		{name: "admin allowed", role: entity.RoleAdmin, wantCode: http.StatusOK},
		{name: "collaborator forbidden", role: entity.RoleCollaborator, wantCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewAuthMiddleware(mockService.NewMockTokenService(t))
			c, rec := newAuthTestContext(t, "")
			c.Set(ContextKeyUserID, uuid.New())
			c.Set(ContextKeyRole, tt.role)

			err := m.RequireAdmin(okHandler)(c)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestAuthMiddleware_RequireAdmin_NoRoleOnContext(t *testing.T) {
	m := NewAuthMiddleware(mockService.NewMockTokenService(t))
	c, rec := newAuthTestContext(t, "")

	err := m.RequireAdmin(okHandler)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthMiddleware_RequireCollaborator(t *testing.T) {
	affiliateID := uuid.New()

	tests := []struct {
		name        string
		role        entity.Role
		affiliateID *uuid.UUID
		wantCode    int
	}{
		{name: "bound collaborator allowed", role: entity.RoleCollaborator, affiliateID: &affiliateID, wantCode: http.StatusOK},
		{name: "admin forbidden", role: entity.RoleAdmin, affiliateID: nil, wantCode: http.StatusForbidden},
		{name: "super admin forbidden", role: entity.RoleSuperAdmin, affiliateID: nil, wantCode: http.StatusForbidden},
		{name: "unbound collaborator forbidden", role: entity.RoleCollaborator, affiliateID: nil, wantCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewAuthMiddleware(mockService.NewMockTokenService(t))
			c, rec := newAuthTestContext(t, "")
			c.Set(ContextKeyUserID, uuid.New())
			c.Set(ContextKeyRole, tt.role)
			c.Set(ContextKeyAffiliateID, tt.affiliateID)

			err := m.RequireCollaborator(okHandler)(c)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
