package postgres

import (
	"context"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	"portal/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// overrideRepository implements the domain.OverrideRepository interface using GORM.
type overrideRepository struct {
	db *gorm.DB
}

// NewOverrideRepository is the constructor for overrideRepository.
func NewOverrideRepository(db *gorm.DB) repository.OverrideRepository {
	return &overrideRepository{db: db}
}

// ListByAffiliate returns every override for an affiliate.
func (repo *overrideRepository) ListByAffiliate(ctx context.Context, affiliateID uuid.UUID) ([]entity.LocationServiceOverride, error) {
	var models []model.LocationServiceOverrideModel
	if err := repo.db.WithContext(ctx).
		Where("affiliate_id = ?", affiliateID).
		Order("location_id ASC, service_type ASC, sub_type ASC").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list overrides")
	}

	overrides := make([]entity.LocationServiceOverride, 0, len(models))
	for i := range models {
		overrides = append(overrides, toOverrideDomain(&models[i]))
	}

	return overrides, nil
}

// ReplaceForAffiliate atomically replaces the affiliate's override set.
// Callers run this inside txManager.Execute, so the delete and the inserts
// commit or roll back together.
func (repo *overrideRepository) ReplaceForAffiliate(ctx context.Context, affiliateID uuid.UUID, overrides []entity.LocationServiceOverride) error {
	if err := repo.db.WithContext(ctx).
		Where("affiliate_id = ?", affiliateID).
		Delete(&model.LocationServiceOverrideModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear overrides")
	}

	deduped := entity.DedupeOverrides(overrides)
	if len(deduped) == 0 {
		return nil
	}

	models := make([]model.LocationServiceOverrideModel, 0, len(deduped))
	for i := range deduped {
		models = append(models, fromOverrideDomain(affiliateID, &deduped[i]))
	}

	if err := repo.db.WithContext(ctx).Create(&models).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to insert overrides")
	}

	return nil
}

// toOverrideDomain maps a persistence model to a pure domain entity.
func toOverrideDomain(overrideM *model.LocationServiceOverrideModel) entity.LocationServiceOverride {
	var subType *string
	if overrideM.SubType != "" {
		value := overrideM.SubType
		subType = &value
	}

	return entity.LocationServiceOverride{
		AffiliateID: overrideM.AffiliateID,
		LocationID:  overrideM.LocationID,
		ServiceType: entity.ServiceType(overrideM.ServiceType),
		SubType:     subType,
		Available:   overrideM.Available,
	}
}

// fromOverrideDomain maps a pure domain entity to a persistence model.
// A nil SubType is stored as an empty string so the unique index covers it.
func fromOverrideDomain(affiliateID uuid.UUID, override *entity.LocationServiceOverride) model.LocationServiceOverrideModel {
	subType := ""
	if override.SubType != nil {
		subType = *override.SubType
	}

	return model.LocationServiceOverrideModel{
		AffiliateID: affiliateID,
		LocationID:  override.LocationID,
		ServiceType: override.ServiceType.String(),
		SubType:     subType,
		Available:   override.Available,
	}
}
