package usecase

import (
	"context"

	"portal/internal/domain/entity"

	"github.com/google/uuid"
)

// AffiliateUsecase defines the admin-facing affiliate operations.
type AffiliateUsecase interface {
	// ListAffiliates returns all affiliates for the admin list screen.
	ListAffiliates(ctx context.Context) ([]*entity.Affiliate, error)

	// GetAffiliate returns one affiliate together with its overrides.
	GetAffiliate(ctx context.Context, id uuid.UUID) (*AffiliateDetail, error)

	// CreateAffiliate creates a shell affiliate record with a fresh invite
	// token; the affiliate's collaborators fill in the rest via onboarding.
	CreateAffiliate(ctx context.Context, input *CreateAffiliateInput) (*CreateAffiliateOutput, error)

	// InviteQR renders the affiliate's onboarding invite link as a QR PNG.
	InviteQR(ctx context.Context, id uuid.UUID) ([]byte, error)

	// ResolveInvite redeems an invite token from an onboarding link and
	// returns what the landing page needs to greet the collaborator.
	ResolveInvite(ctx context.Context, token string) (*InviteInfo, error)
}

// AffiliateDetail is an affiliate with its location-service overrides.
type AffiliateDetail struct {
	Affiliate *entity.Affiliate                `json:"affiliate"`
	Overrides []entity.LocationServiceOverride `json:"overrides"`
}

// CreateAffiliateInput defines the data required to create an affiliate shell.
type CreateAffiliateInput struct {
	LegalName    string `json:"legal_name" validate:"required"`
	ContactEmail string `json:"contact_email" validate:"required,email"`
}

// InviteInfo identifies the affiliate behind a redeemed invite token.
type InviteInfo struct {
	AffiliateID uuid.UUID `json:"affiliate_id"`
	LegalName   string    `json:"legal_name"`
	Confirmed   bool      `json:"confirmed"`
}

// CreateAffiliateOutput returns the created record and its invite link.
type CreateAffiliateOutput struct {
	Affiliate *entity.Affiliate `json:"affiliate"`
	InviteURL string            `json:"invite_url"`
}
