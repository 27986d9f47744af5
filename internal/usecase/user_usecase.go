package usecase

import (
	"context"

	"portal/internal/domain/entity"

	"github.com/google/uuid"
)

// UserUsecase defines authentication and user administration operations.
type UserUsecase interface {
	// Login authenticates with email and password.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// GoogleLogin authenticates with a verified Google ID token. The account
	// must already exist; SSO never provisions users.
	GoogleLogin(ctx context.Context, input *GoogleLoginInput) (*AuthOutput, error)

	// RefreshToken exchanges a valid refresh token for a new token pair.
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*AuthOutput, error)

	// CreateUser creates a portal user. Collaborators must reference an
	// affiliate; admin roles must not be bound to one.
	CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error)

	// ListUsers returns all users for the admin list screen.
	ListUsers(ctx context.Context) ([]*entity.User, error)
}

// --- Input DTOs ---

// LoginInput defines the data required for a password login.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// GoogleLoginInput defines the data required for a Google SSO login.
type GoogleLoginInput struct {
	IDToken string `json:"id_token" validate:"required"`
}

// RefreshTokenInput defines the data required to refresh a session.
type RefreshTokenInput struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// CreateUserInput defines the data required to create a portal user.
type CreateUserInput struct {
	Email       string     `json:"email" validate:"required,email"`
	Name        string     `json:"name" validate:"required"`
	Password    string     `json:"password" validate:"required,min=12"`
	Role        string     `json:"role" validate:"required,oneof=super_admin admin collaborator"`
	AffiliateID *uuid.UUID `json:"affiliate_id,omitempty"`
}

// AuthOutput carries a fresh token pair and the authenticated user.
// RefreshExpiresIn tells the client how long, in seconds, the refresh
// token stays exchangeable.
type AuthOutput struct {
	AccessToken      string       `json:"access_token"`
	RefreshToken     string       `json:"refresh_token"`
	RefreshExpiresIn int64        `json:"refresh_expires_in"`
	User             *entity.User `json:"user"`
}
