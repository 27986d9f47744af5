package middleware

import (
	"net/http"
	"strings"

	"portal/internal/domain/entity"
	"portal/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate for downstream handlers.
const (
	ContextKeyUserID      = "userID"
	ContextKeyRole        = "role"
	ContextKeyAffiliateID = "affiliateID"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		// Set user info on the context for handlers to use
		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyRole, claims.Role)
		c.Set(ContextKeyAffiliateID, claims.AffiliateID)

		return next(c)
	}
}

// RequireAdmin allows only admin-family users (super_admin or admin).
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		role, ok := c.Get(ContextKeyRole).(entity.Role)
		if !ok {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: role information missing"})
		}

		if !role.IsAdmin() {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: administrator role required"})
		}

		return next(c)
	}
}

// RequireCollaborator allows only collaborators, who always carry an
// affiliate binding. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireCollaborator(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		role, ok := c.Get(ContextKeyRole).(entity.Role)
		if !ok {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: role information missing"})
		}

		if role != entity.RoleCollaborator {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: collaborator role required"})
		}

		if AffiliateIDFromContext(c) == nil {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: affiliate binding missing"})
		}

		return next(c)
	}
}

// UserIDFromContext returns the authenticated user's ID, or uuid.Nil when
// the request is unauthenticated.
func UserIDFromContext(c echo.Context) uuid.UUID {
	if userID, ok := c.Get(ContextKeyUserID).(uuid.UUID); ok {
		return userID
	}

	return uuid.Nil
}

// RoleFromContext returns the authenticated user's role, or the zero Role.
func RoleFromContext(c echo.Context) entity.Role {
	if role, ok := c.Get(ContextKeyRole).(entity.Role); ok {
		return role
	}

	return ""
}

// AffiliateIDFromContext returns the collaborator's affiliate binding, nil
// for admin-family users.
func AffiliateIDFromContext(c echo.Context) *uuid.UUID {
	if affiliateID, ok := c.Get(ContextKeyAffiliateID).(*uuid.UUID); ok {
		return affiliateID
	}

	return nil
}
