package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// OnboardingConfirmedEvent is published after finalize commits an affiliate.
// Downstream systems (billing activation, CRM sync) subscribe to it.
type OnboardingConfirmedEvent struct {
	AffiliateID uuid.UUID `json:"affiliate_id"`
	LegalName   string    `json:"legal_name"`
	ConfirmedAt time.Time `json:"confirmed_at"`
	RequestID   string    `json:"request_id,omitempty"`
}

// EventPublisher publishes domain events to the configured broker.
// Publishing is best-effort from the orchestrator's point of view: a publish
// failure never rolls back a committed finalize.
type EventPublisher interface {
	// PublishOnboardingConfirmed publishes one confirmation event.
	PublishOnboardingConfirmed(ctx context.Context, event *OnboardingConfirmedEvent) error

	// Close releases broker resources.
	Close() error
}
