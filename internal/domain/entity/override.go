// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "github.com/google/uuid"

// ServiceType identifies a service offered at affiliate locations.
type ServiceType string

const (
	// ServiceTypeResidential covers standard residential jobs.
	ServiceTypeResidential ServiceType = "residential"
	// ServiceTypeCommercial covers commercial accounts.
	ServiceTypeCommercial ServiceType = "commercial"
	// ServiceTypeEmergency covers after-hours emergency dispatch.
	ServiceTypeEmergency ServiceType = "emergency"
)

// String returns the string representation of the ServiceType.
func (s ServiceType) String() string {
	return string(s)
}

// IsValid checks if the ServiceType is a valid value.
func (s ServiceType) IsValid() bool {
	switch s {
	case ServiceTypeResidential, ServiceTypeCommercial, ServiceTypeEmergency:
		return true
	default:
		return false
	}
}

// LocationServiceOverride is a per-location exception to a service's default
// availability. SubType adds an optional sub-service dimension. At most one
// override exists per (location, serviceType, subType) tuple; re-saving the
// same tuple replaces the previous value.
type LocationServiceOverride struct {
	AffiliateID uuid.UUID
	LocationID  string
	ServiceType ServiceType
	SubType     *string // Nil for plain service overrides, set for sub-service overrides.
	Available   bool
}

// OverrideKey is the identity of an override within one affiliate,
// used to enforce the last-write-wins uniqueness invariant.
type OverrideKey struct {
	LocationID  string
	ServiceType ServiceType
	SubType     string // Empty when the override has no sub-type dimension.
}

// Key returns the uniqueness key for this override.
func (o LocationServiceOverride) Key() OverrideKey {
	key := OverrideKey{LocationID: o.LocationID, ServiceType: o.ServiceType}
	if o.SubType != nil {
		key.SubType = *o.SubType
	}

	return key
}

// DedupeOverrides collapses duplicate (location, serviceType, subType) tuples,
// keeping the last occurrence. Input order is otherwise preserved.
func DedupeOverrides(overrides []LocationServiceOverride) []LocationServiceOverride {
	byKey := make(map[OverrideKey]int, len(overrides))
	result := make([]LocationServiceOverride, 0, len(overrides))

	for _, o := range overrides {
		if idx, ok := byKey[o.Key()]; ok {
			result[idx] = o

			continue
		}
		byKey[o.Key()] = len(result)
		result = append(result, o)
	}

	return result
}
