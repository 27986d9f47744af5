// Package google verifies Google-issued ID tokens for SSO login.
package google

import (
	"context"
	"log/slog"

	"portal/config"
	"portal/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"
)

// AuthServiceImpl implements service.OAuthService for Google sign-in.
type AuthServiceImpl struct {
	clientID string
	logger   *slog.Logger
}

// NewAuthService creates a new Google AuthService
func NewAuthService(cfg *config.Config, logger *slog.Logger) service.OAuthService {
	clientID := ""
	if cfg.GoogleOAuth != nil {
		clientID = cfg.GoogleOAuth.ClientID
	}

	return &AuthServiceImpl{
		clientID: clientID,
		logger:   logger,
	}
}

// VerifyIDToken validates a Google ID token against Google's public keys and
// returns the verified identity.
func (s *AuthServiceImpl) VerifyIDToken(ctx context.Context, idTokenString string) (*service.OAuthUser, error) {
	if s.clientID == "" {
		return nil, errors.New("google oauth is not configured")
	}

	payload, err := idtoken.Validate(ctx, idTokenString, s.clientID)
	if err != nil {
		s.logger.Error("Google ID token validation failed", "error", err)

		return nil, errors.Wrap(err, "validate google id token")
	}

	oauthUser := &service.OAuthUser{
		ID:            payload.Subject,
		Email:         claimString(payload, "email"),
		Name:          claimString(payload, "name"),
		EmailVerified: claimBool(payload, "email_verified"),
	}

	s.logger.Info("Google ID token verified successfully",
		slog.String("userID", oauthUser.ID),
		slog.String("email", oauthUser.Email))

	return oauthUser, nil
}

func claimString(payload *idtoken.Payload, key string) string {
	value, _ := payload.Claims[key].(string)

	return value
}

func claimBool(payload *idtoken.Payload, key string) bool {
	// Google encodes email_verified as a JSON bool, but some proxies
	// re-serialize it as a string.
	switch value := payload.Claims[key].(type) {
	case bool:
		return value
	case string:
		return value == "true"
	default:
		return false
	}
}
