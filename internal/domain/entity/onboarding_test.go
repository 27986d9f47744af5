package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnboardingSession_SetAnswerSupersedes(t *testing.T) {
	session := NewOnboardingSession(uuid.New())

	session.SetAnswer(SectionAnswer{
		SectionID: SectionBusinessDetails,
		Payload:   []byte(`{"legalName":"First"}`),
		UpdatedAt: time.Now(),
	})
	session.SetAnswer(SectionAnswer{
		SectionID: SectionBusinessDetails,
		Payload:   []byte(`{"legalName":"Second"}`),
		UpdatedAt: time.Now(),
	})

	answer, ok := session.Answer(SectionBusinessDetails)
	require.True(t, ok)
	assert.JSONEq(t, `{"legalName":"Second"}`, string(answer.Payload))
	assert.Equal(t, 1, session.AnswerCount())
}

func TestOnboardingSession_Completion(t *testing.T) {
	session := NewOnboardingSession(uuid.New())
	ids := []SectionID{SectionBusinessDetails, SectionConfirmation}

	assert.False(t, session.IsComplete(SectionBusinessDetails))
	assert.False(t, session.AllComplete(ids))

	session.SetAnswer(SectionAnswer{SectionID: SectionBusinessDetails, Payload: []byte(`{}`)})
	assert.True(t, session.IsComplete(SectionBusinessDetails))
	assert.False(t, session.AllComplete(ids))

	session.SetAnswer(SectionAnswer{SectionID: SectionConfirmation, Payload: []byte(`{}`)})
	assert.True(t, session.AllComplete(ids))
}

func TestOnboardingSession_StateDerivation(t *testing.T) {
	ids := []SectionID{SectionBusinessDetails, SectionConfirmation}
	session := NewOnboardingSession(uuid.New())

	assert.Equal(t, OnboardingNotStarted, session.State(ids))

	session.SetAnswer(SectionAnswer{SectionID: SectionBusinessDetails, Payload: []byte(`{}`)})
	assert.Equal(t, OnboardingInProgress, session.State(ids))

	session.SetAnswer(SectionAnswer{SectionID: SectionConfirmation, Payload: []byte(`{}`)})
	assert.Equal(t, OnboardingReviewPending, session.State(ids))

	confirmedAt := time.Now()
	session.ConfirmedAt = &confirmedAt
	assert.Equal(t, OnboardingConfirmed, session.State(ids))
}

func TestOnboardingSession_SetAnswerOnZeroValue(t *testing.T) {
	var session OnboardingSession

	session.SetAnswer(SectionAnswer{SectionID: SectionSellerBilling, Payload: []byte(`{}`)})
	assert.True(t, session.IsComplete(SectionSellerBilling))
}
