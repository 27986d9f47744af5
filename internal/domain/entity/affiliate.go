// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ACH account types accepted on the billing section.
const (
	ACHAccountTypeChecking = "checking"
	ACHAccountTypeSavings  = "savings"
)

// Affiliate is a client organization onboarded through the portal.
// It is created by an admin and then filled in by the affiliate's
// collaborators through the onboarding flow.
type Affiliate struct {
	ID                    uuid.UUID // The Global Unique Identifier (GUID) for the affiliate.
	LegalName             string    // The registered legal business name.
	DBAName               string    // The "doing business as" name, if different from the legal name.
	Website               string    // The affiliate's public website, optional.
	ContactPhone          string    // Primary business contact phone number.
	ContactEmail          string    // Primary business contact email.
	AcceptDefaultServices bool      // Whether the affiliate accepted the default service catalog.
	Billing               BillingInfo
	Escalation            EscalationContacts
	InviteToken           string     // Opaque token embedded in the onboarding invite link.
	ConfirmedAt           *time.Time // Set once, when finalize succeeds. Nil while onboarding is open.
	CreatedAt             time.Time  // Timestamp of when this affiliate record was created.
	UpdatedAt             time.Time  // Timestamp of the last modification to this affiliate's data.
}

// BillingInfo holds the affiliate's ACH payment details collected on the
// billing section. ACHAccountType is nil until the affiliate picks one.
type BillingInfo struct {
	BankName         string
	ACHRoutingNumber string
	ACHAccountNumber string
	ACHAccountType   *string // "checking" or "savings" when set.
	W9FileKey        *string // Blob-store key of the uploaded W-9, nil when not uploaded.
}

// EscalationContacts holds the operational escalation chain for an affiliate.
// Email fields may be empty, meaning "not provided".
type EscalationContacts struct {
	PrimaryName    string
	PrimaryEmail   string
	PrimaryPhone   string
	SecondaryName  string
	SecondaryEmail string
}

// IsConfirmed reports whether onboarding has been finalized for this affiliate.
func (a *Affiliate) IsConfirmed() bool {
	return a.ConfirmedAt != nil
}
