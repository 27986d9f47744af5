package repository

import (
	"context"
	"time"

	"portal/internal/domain/entity"

	"github.com/google/uuid"
)

// OnboardingRepository persists per-affiliate onboarding sessions.
// Answers are stored one row per section; the per-record write ordering of
// the database provides the last-write-wins guarantee for concurrent saves
// of the same section.
type OnboardingRepository interface {
	// FindSession loads the full onboarding session for an affiliate.
	// A session with no saved answers is returned as an empty session, not
	// an error.
	FindSession(ctx context.Context, affiliateID uuid.UUID) (*entity.OnboardingSession, error)

	// UpsertAnswer stores a validated section answer, replacing any previous
	// answer for the same (affiliate, section) pair.
	UpsertAnswer(ctx context.Context, affiliateID uuid.UUID, answer entity.SectionAnswer) error

	// MarkConfirmed records the confirmation timestamp for the session.
	MarkConfirmed(ctx context.Context, affiliateID uuid.UUID, confirmedAt time.Time) error
}
