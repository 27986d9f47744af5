package repository

import (
	"context"

	"portal/internal/domain/entity"

	"github.com/google/uuid"
)

// OverrideRepository persists location-service availability overrides.
type OverrideRepository interface {
	// ListByAffiliate returns every override for an affiliate.
	ListByAffiliate(ctx context.Context, affiliateID uuid.UUID) ([]entity.LocationServiceOverride, error)

	// ReplaceForAffiliate atomically replaces the affiliate's override set.
	// Duplicate (location, serviceType, subType) tuples in the input are
	// collapsed last-write-wins before the write.
	ReplaceForAffiliate(ctx context.Context, affiliateID uuid.UUID, overrides []entity.LocationServiceOverride) error
}
