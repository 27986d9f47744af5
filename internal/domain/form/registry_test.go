package form

import (
	"testing"
	"time"

	"portal/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sectionOrder() []entity.SectionID {
	return []entity.SectionID{
		entity.SectionBusinessDetails,
		entity.SectionDefaultServices,
		entity.SectionLocationServices,
		entity.SectionEscalationContacts,
		entity.SectionSellerBilling,
		entity.SectionConfirmation,
	}
}

func completeSection(session *entity.OnboardingSession, id entity.SectionID) {
	session.SetAnswer(entity.SectionAnswer{
		SectionID: id,
		Payload:   []byte(`{}`),
		UpdatedAt: time.Now(),
	})
}

func TestRegistry_TraversalOrderIsFixed(t *testing.T) {
	registry := NewRegistry()

	assert.Equal(t, sectionOrder(), registry.SectionIDs())
}

func TestRegistry_SchemaLookup(t *testing.T) {
	registry := NewRegistry()

	for _, id := range sectionOrder() {
		schema, ok := registry.Schema(id)
		require.True(t, ok)
		assert.Equal(t, id, schema.SectionID())
	}

	_, ok := registry.Schema(entity.SectionID("bogus"))
	assert.False(t, ok)
}

func TestRegistry_NextIncompleteFollowsOrder(t *testing.T) {
	registry := NewRegistry()
	session := entity.NewOnboardingSession(uuid.New())

	next, more := registry.NextIncomplete(session)
	require.True(t, more)
	assert.Equal(t, entity.SectionBusinessDetails, next)

	// Completing out of order still reports the earliest gap.
	completeSection(session, entity.SectionBusinessDetails)
	completeSection(session, entity.SectionEscalationContacts)

	next, more = registry.NextIncomplete(session)
	require.True(t, more)
	assert.Equal(t, entity.SectionDefaultServices, next)

	for _, id := range sectionOrder() {
		completeSection(session, id)
	}

	_, more = registry.NextIncomplete(session)
	assert.False(t, more)
}

func TestRegistry_IncompleteSectionsInOrder(t *testing.T) {
	registry := NewRegistry()
	session := entity.NewOnboardingSession(uuid.New())

	completeSection(session, entity.SectionDefaultServices)
	completeSection(session, entity.SectionSellerBilling)

	assert.Equal(t, []entity.SectionID{
		entity.SectionBusinessDetails,
		entity.SectionLocationServices,
		entity.SectionEscalationContacts,
		entity.SectionConfirmation,
	}, registry.IncompleteSections(session))
}

func TestRegistry_StateProgression(t *testing.T) {
	registry := NewRegistry()
	session := entity.NewOnboardingSession(uuid.New())

	assert.Equal(t, entity.OnboardingNotStarted, registry.State(session))

	completeSection(session, entity.SectionBusinessDetails)
	assert.Equal(t, entity.OnboardingInProgress, registry.State(session))

	for _, id := range sectionOrder() {
		completeSection(session, id)
	}
	assert.Equal(t, entity.OnboardingReviewPending, registry.State(session))

	confirmedAt := time.Now()
	session.ConfirmedAt = &confirmedAt
	assert.Equal(t, entity.OnboardingConfirmed, registry.State(session))
}

func TestRegistry_DefaultsLookup(t *testing.T) {
	registry := NewRegistry()

	defaults, ok := registry.Defaults(entity.SectionBusinessDetails)
	require.True(t, ok)
	assert.Equal(t, "US", defaults.(BusinessDetailsAnswer).Country)

	_, ok = registry.Defaults(entity.SectionID("bogus"))
	assert.False(t, ok)
}
