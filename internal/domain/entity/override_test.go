package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func TestDedupeOverrides_LastWriteWins(t *testing.T) {
	affiliateID := uuid.New()
	overrides := []LocationServiceOverride{
		{AffiliateID: affiliateID, LocationID: "loc-1", ServiceType: ServiceTypeResidential, Available: true},
		{AffiliateID: affiliateID, LocationID: "loc-2", ServiceType: ServiceTypeCommercial, Available: true},
		{AffiliateID: affiliateID, LocationID: "loc-1", ServiceType: ServiceTypeResidential, Available: false},
	}

	deduped := DedupeOverrides(overrides)
	require.Len(t, deduped, 2)

	// The duplicate keeps its original position but carries the last value.
	assert.Equal(t, "loc-1", deduped[0].LocationID)
	assert.False(t, deduped[0].Available)
	assert.Equal(t, "loc-2", deduped[1].LocationID)
}

func TestDedupeOverrides_SubTypeIsPartOfTheKey(t *testing.T) {
	overrides := []LocationServiceOverride{
		{LocationID: "loc-1", ServiceType: ServiceTypeEmergency, Available: true},
		{LocationID: "loc-1", ServiceType: ServiceTypeEmergency, SubType: strPtr("after-hours"), Available: false},
	}

	deduped := DedupeOverrides(overrides)
	assert.Len(t, deduped, 2)
}

func TestOverrideKey_NilSubTypeMatchesEmpty(t *testing.T) {
	plain := LocationServiceOverride{LocationID: "loc-1", ServiceType: ServiceTypeResidential}
	subbed := LocationServiceOverride{LocationID: "loc-1", ServiceType: ServiceTypeResidential, SubType: strPtr("")}

	assert.Equal(t, plain.Key(), subbed.Key())
}
