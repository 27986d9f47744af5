package service

import "context"

// OAuthUser is the verified identity returned by an external SSO provider.
type OAuthUser struct {
	ID            string // The provider's stable subject identifier.
	Email         string
	Name          string
	EmailVerified bool
}

// OAuthService verifies provider-issued ID tokens for SSO login.
type OAuthService interface {
	// VerifyIDToken validates an ID token and returns the verified identity.
	VerifyIDToken(ctx context.Context, idToken string) (*OAuthUser, error)
}
