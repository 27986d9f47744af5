package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OnboardingSessionModel mirrors the 'onboarding_sessions' table. One row per
// affiliate, created lazily on the first section save.
type OnboardingSessionModel struct {
	AffiliateID uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ConfirmedAt *time.Time `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (OnboardingSessionModel) TableName() string {
	return "onboarding_sessions"
}

// OnboardingAnswerModel mirrors the 'onboarding_answers' table. One row per
// (affiliate, section) pair; re-submission of a section replaces the row, so
// database write ordering gives last-write-wins for concurrent saves.
type OnboardingAnswerModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AffiliateID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_answers_affiliate_section"`
	SectionID   string         `gorm:"type:varchar(50);not null;uniqueIndex:idx_answers_affiliate_section"`
	Payload     datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (OnboardingAnswerModel) TableName() string {
	return "onboarding_answers"
}
