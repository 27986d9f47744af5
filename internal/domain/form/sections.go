package form

import "portal/internal/domain/entity"

// BusinessDetailsAnswer is the validated shape of the business details section.
type BusinessDetailsAnswer struct {
	LegalName    string `mapstructure:"legalName" json:"legalName" validate:"required"`
	DBAName      string `mapstructure:"dbaName" json:"dbaName"`
	Website      string `mapstructure:"website" json:"website"`
	Country      string `mapstructure:"country" json:"country" validate:"required,len=2"`
	ContactPhone string `mapstructure:"contactPhone" json:"contactPhone" validate:"required"`
	ContactEmail string `mapstructure:"contactEmail" json:"contactEmail" validate:"required,email"`
}

// DefaultServicesAnswer is the validated shape of the default-services
// confirmation section. AcceptDefaults must be a literal boolean; false is a
// valid answer and means the affiliate will override per location.
type DefaultServicesAnswer struct {
	AcceptDefaults *bool  `mapstructure:"acceptDefaults" json:"acceptDefaults" validate:"required"`
	Notes          string `mapstructure:"notes" json:"notes"`
}

// OverrideInput is one location-service availability override row.
type OverrideInput struct {
	LocationID  string  `mapstructure:"locationId" json:"locationId" validate:"required"`
	ServiceType string  `mapstructure:"serviceType" json:"serviceType" validate:"required,oneof=residential commercial emergency"`
	SubType     *string `mapstructure:"subType" json:"subType,omitempty" validate:"omitempty,min=1"`
	Available   *bool   `mapstructure:"available" json:"available" validate:"required"`
}

// LocationServicesAnswer is the validated shape of the location-service
// overrides section. An empty override list is valid.
type LocationServicesAnswer struct {
	Overrides []OverrideInput `mapstructure:"overrides" json:"overrides" validate:"dive"`
}

// EscalationContactsAnswer is the validated shape of the escalation contacts
// section. Email fields accept a syntactically valid email or the explicit
// empty string, which is treated as "not provided".
type EscalationContactsAnswer struct {
	PrimaryName    string `mapstructure:"primaryEscalationName" json:"primaryEscalationName" validate:"required"`
	PrimaryEmail   string `mapstructure:"primaryEscalationEmail" json:"primaryEscalationEmail" validate:"omitempty,email"`
	PrimaryPhone   string `mapstructure:"primaryEscalationPhone" json:"primaryEscalationPhone"`
	SecondaryName  string `mapstructure:"secondaryEscalationName" json:"secondaryEscalationName"`
	SecondaryEmail string `mapstructure:"secondaryEscalationEmail" json:"secondaryEscalationEmail" validate:"omitempty,email"`
}

// SellerBillingAnswer is the validated shape of the billing/ACH section.
// ACHAccountType and W9FilePath are nullable: absent means not provided.
type SellerBillingAnswer struct {
	BankName         string  `mapstructure:"bankName" json:"bankName" validate:"required"`
	ACHRoutingNumber string  `mapstructure:"achRoutingNumber" json:"achRoutingNumber" validate:"required,len=9,numeric"`
	ACHAccountNumber string  `mapstructure:"achAccountNumber" json:"achAccountNumber" validate:"required,numeric,min=4,max=17"`
	ACHAccountType   *string `mapstructure:"achAccountType" json:"achAccountType,omitempty" validate:"omitempty,oneof=checking savings"`
	W9FilePath       *string `mapstructure:"w9FilePath" json:"w9FilePath,omitempty" validate:"omitempty,min=1"`
}

// ConfirmationAnswer is the validated shape of the final review section.
// Confirmed must be present and literally true.
type ConfirmationAnswer struct {
	Confirmed *bool `mapstructure:"confirmed" json:"confirmed" validate:"required,eq=true"`
}

// IsConfirmed reports whether the acknowledgement flag was set.
func (a ConfirmationAnswer) IsConfirmed() bool {
	return a.Confirmed != nil && *a.Confirmed
}

// sectionSchemas declares every schema in traversal order. This is the single
// place that binds a SectionID to its answer type and defaults.
func sectionSchemas() []Schema {
	return []Schema{
		newSchema(entity.SectionBusinessDetails, BusinessDetailsAnswer{
			Country: "US",
		}),
		newSchema(entity.SectionDefaultServices, DefaultServicesAnswer{}),
		newSchema(entity.SectionLocationServices, LocationServicesAnswer{
			Overrides: []OverrideInput{},
		}),
		newSchema(entity.SectionEscalationContacts, EscalationContactsAnswer{}),
		newSchema(entity.SectionSellerBilling, SellerBillingAnswer{}),
		newSchema(entity.SectionConfirmation, ConfirmationAnswer{}),
	}
}
