// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// SectionID identifies one discrete step of the onboarding form.
// Declaration order here is not significant; the form registry owns the
// canonical traversal order.
type SectionID string

const (
	// SectionBusinessDetails collects the affiliate's legal and contact details.
	SectionBusinessDetails SectionID = "businessDetails"
	// SectionDefaultServices confirms acceptance of the default service catalog.
	SectionDefaultServices SectionID = "defaultServices"
	// SectionLocationServices collects per-location service availability overrides.
	SectionLocationServices SectionID = "locationServices"
	// SectionEscalationContacts collects the operational escalation chain.
	SectionEscalationContacts SectionID = "escalationContacts"
	// SectionSellerBilling collects ACH billing details and the W-9 reference.
	SectionSellerBilling SectionID = "sellerBilling"
	// SectionConfirmation is the final review acknowledgement.
	SectionConfirmation SectionID = "confirmation"
)

// String returns the string representation of the SectionID.
func (s SectionID) String() string {
	return string(s)
}

// OnboardingState is the lifecycle state of one affiliate's onboarding session.
type OnboardingState string

const (
	// OnboardingNotStarted means no section has been saved yet.
	OnboardingNotStarted OnboardingState = "not_started"
	// OnboardingInProgress means at least one section has been saved.
	OnboardingInProgress OnboardingState = "in_progress"
	// OnboardingReviewPending means every section has a valid answer and the
	// session is waiting on finalize.
	OnboardingReviewPending OnboardingState = "review_pending"
	// OnboardingConfirmed is the terminal state, entered only after finalize
	// validated and persisted the whole aggregate.
	OnboardingConfirmed OnboardingState = "confirmed"
)

// SectionAnswer is the validated data object produced by successfully
// applying a section schema to raw user input. It is immutable once created;
// re-submission of the same section supersedes it with a new answer.
type SectionAnswer struct {
	SectionID SectionID
	Payload   json.RawMessage // The typed answer, marshalled. Never mutated in place.
	UpdatedAt time.Time
}

// OnboardingSession is the per-affiliate aggregate of all saved section
// answers. An answer is present only if raw input for that section previously
// passed its schema; the session itself performs no validation, only storage
// and lookup.
type OnboardingSession struct {
	AffiliateID uuid.UUID
	ConfirmedAt *time.Time
	answers     map[SectionID]SectionAnswer
}

// NewOnboardingSession creates an empty session for an affiliate.
func NewOnboardingSession(affiliateID uuid.UUID) *OnboardingSession {
	return &OnboardingSession{
		AffiliateID: affiliateID,
		answers:     make(map[SectionID]SectionAnswer),
	}
}

// Answer returns the stored answer for a section, if present.
func (s *OnboardingSession) Answer(id SectionID) (SectionAnswer, bool) {
	answer, ok := s.answers[id]

	return answer, ok
}

// SetAnswer stores a validated answer, superseding any previous answer for
// the same section. Callers must validate before storing; concurrent saves
// for the same section are last-write-wins.
func (s *OnboardingSession) SetAnswer(answer SectionAnswer) {
	if s.answers == nil {
		s.answers = make(map[SectionID]SectionAnswer)
	}
	s.answers[answer.SectionID] = answer
}

// IsComplete reports whether a section has a stored answer.
func (s *OnboardingSession) IsComplete(id SectionID) bool {
	_, ok := s.answers[id]

	return ok
}

// AllComplete reports whether every listed section has a stored answer.
func (s *OnboardingSession) AllComplete(ids []SectionID) bool {
	for _, id := range ids {
		if !s.IsComplete(id) {
			return false
		}
	}

	return true
}

// AnswerCount returns the number of stored answers.
func (s *OnboardingSession) AnswerCount() int {
	return len(s.answers)
}

// State derives the session lifecycle state from the stored answers and the
// confirmation timestamp: NotStarted -> InProgress -> ReviewPending -> Confirmed.
func (s *OnboardingSession) State(ids []SectionID) OnboardingState {
	if s.ConfirmedAt != nil {
		return OnboardingConfirmed
	}
	if len(s.answers) == 0 {
		return OnboardingNotStarted
	}
	if s.AllComplete(ids) {
		return OnboardingReviewPending
	}

	return OnboardingInProgress
}
