// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"io"
	"strings"

	"portal/internal/domain/entity"

	"github.com/google/uuid"
)

// OnboardingUsecase drives the multi-section onboarding flow and its
// finalize/review step for one affiliate.
type OnboardingUsecase interface {
	// GetSection returns the stored answer for a section, or the schema
	// defaults when nothing has been saved yet.
	GetSection(ctx context.Context, affiliateID uuid.UUID, sectionID entity.SectionID) (*SectionView, error)

	// SaveSection validates raw form input against the section schema and,
	// on success, stores the answer and reports the next incomplete section.
	// Validation failures are returned as form.FieldErrors without persisting.
	SaveSection(ctx context.Context, affiliateID uuid.UUID, sectionID entity.SectionID, raw map[string]any) (*SaveSectionOutput, error)

	// Progress reports per-section completion and the derived session state.
	Progress(ctx context.Context, affiliateID uuid.UUID) (*ProgressOutput, error)

	// SaveW9 stores an uploaded W-9 document and returns its blob key.
	SaveW9(ctx context.Context, affiliateID uuid.UUID, filename string, contents io.Reader) (string, error)

	// Finalize re-validates the whole session and persists the aggregate in
	// one transaction. Incomplete sessions fail with an IncompleteError and
	// never reach the persistence gateway.
	Finalize(ctx context.Context, affiliateID uuid.UUID) (*FinalizeOutput, error)
}

// SectionView is the renderable content of one section route.
type SectionView struct {
	SectionID entity.SectionID `json:"section_id"`
	Answer    any              `json:"answer"`
	Completed bool             `json:"completed"`
}

// SaveSectionOutput reports where the flow goes after a successful save.
type SaveSectionOutput struct {
	SectionID   entity.SectionID `json:"section_id"`
	NextSection entity.SectionID `json:"next_section,omitempty"` // Empty when the flow is review-ready.
	ReviewReady bool             `json:"review_ready"`
}

// SectionProgress is one row of the progress report.
type SectionProgress struct {
	SectionID entity.SectionID `json:"section_id"`
	Completed bool             `json:"completed"`
}

// ProgressOutput is the full progress report for an onboarding session.
type ProgressOutput struct {
	State       entity.OnboardingState `json:"state"`
	Sections    []SectionProgress      `json:"sections"`
	NextSection entity.SectionID       `json:"next_section,omitempty"`
}

// FinalizeOutput confirms a successful finalize.
type FinalizeOutput struct {
	AffiliateID uuid.UUID              `json:"affiliate_id"`
	State       entity.OnboardingState `json:"state"`
}

// IncompleteError reports the ordered list of sections blocking finalize.
type IncompleteError struct {
	Sections []entity.SectionID
}

// Error implements the error interface.
func (e *IncompleteError) Error() string {
	names := make([]string, len(e.Sections))
	for i, id := range e.Sections {
		names[i] = id.String()
	}

	return "onboarding incomplete: " + strings.Join(names, ", ")
}
