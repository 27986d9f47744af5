// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"portal/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAffiliateNotFound is a domain-specific error returned when an affiliate is not found.
var ErrAffiliateNotFound = errors.New("affiliate not found")

// AffiliateRepository defines the standard operations for affiliate persistence.
// The application layer depends on this interface, not the concrete implementation.
type AffiliateRepository interface {
	// FindByID retrieves a single affiliate by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Affiliate, error)

	// FindByInviteToken retrieves an affiliate by its onboarding invite token.
	FindByInviteToken(ctx context.Context, token string) (*entity.Affiliate, error)

	// List returns all affiliates ordered by creation time.
	List(ctx context.Context) ([]*entity.Affiliate, error)

	// Create persists a new affiliate record.
	Create(ctx context.Context, affiliate *entity.Affiliate) error

	// Upsert creates or fully replaces an affiliate record by ID.
	Upsert(ctx context.Context, affiliate *entity.Affiliate) error
}
