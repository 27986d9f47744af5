package model

import (
	"time"

	"github.com/google/uuid"
)

// LocationServiceOverrideModel mirrors the 'location_service_overrides' table.
// The unique index over the override key columns enforces at most one row per
// (affiliate, location, serviceType, subType) tuple. SubType is stored as an
// empty string rather than NULL so it participates in the unique index.
type LocationServiceOverrideModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AffiliateID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_overrides_key"`
	LocationID  string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_overrides_key"`
	ServiceType string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_overrides_key"`
	SubType     string    `gorm:"type:varchar(100);not null;default:'';uniqueIndex:idx_overrides_key"`
	Available   bool      `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocationServiceOverrideModel) TableName() string {
	return "location_service_overrides"
}
