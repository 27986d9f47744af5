package service

import (
	"time"

	"portal/internal/domain/entity"

	"github.com/google/uuid"
)

// Claims is the authenticated identity carried by an access token.
type Claims struct {
	UserID      uuid.UUID
	Role        entity.Role
	AffiliateID *uuid.UUID // Set only for collaborator tokens.
	Type        string     // "access" or "refresh".
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a given user.
	GenerateTokens(userID uuid.UUID, role entity.Role, affiliateID *uuid.UUID) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken checks an access token and returns its claims.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// ValidateRefreshToken checks a refresh token and returns its claims.
	ValidateRefreshToken(tokenString string) (*Claims, error)

	// GetRefreshTokenDuration returns the configured duration for refresh tokens.
	GetRefreshTokenDuration() time.Duration
}
