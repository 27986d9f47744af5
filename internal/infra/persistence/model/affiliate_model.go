package model

import (
	"time"

	"github.com/google/uuid"
)

// AffiliateModel mirrors the 'affiliates' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type AffiliateModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	LegalName    string    `gorm:"type:varchar(255);not null"`
	DBAName      string    `gorm:"column:dba_name;type:varchar(255)"`
	Website      string    `gorm:"type:varchar(255)"`
	ContactPhone string    `gorm:"type:varchar(50)"`
	ContactEmail string    `gorm:"type:varchar(255)"`

	AcceptDefaultServices bool `gorm:"not null;default:false"`

	// Billing details, collected on the seller billing section.
	BankName         string  `gorm:"type:varchar(255)"`
	ACHRoutingNumber string  `gorm:"column:ach_routing_number;type:varchar(9)"`
	ACHAccountNumber string  `gorm:"column:ach_account_number;type:varchar(17)"`
	ACHAccountType   *string `gorm:"column:ach_account_type;type:varchar(10)"`
	W9FileKey        *string `gorm:"column:w9_file_key;type:varchar(512)"`

	// Escalation chain, collected on the escalation contacts section.
	PrimaryEscalationName    string `gorm:"type:varchar(255)"`
	PrimaryEscalationEmail   string `gorm:"type:varchar(255)"`
	PrimaryEscalationPhone   string `gorm:"type:varchar(50)"`
	SecondaryEscalationName  string `gorm:"type:varchar(255)"`
	SecondaryEscalationEmail string `gorm:"type:varchar(255)"`

	InviteToken string     `gorm:"type:varchar(255);not null;uniqueIndex:idx_affiliates_invite_token"`
	ConfirmedAt *time.Time `gorm:"index"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Overrides []LocationServiceOverrideModel `gorm:"foreignKey:AffiliateID"`
	Answers   []OnboardingAnswerModel        `gorm:"foreignKey:AffiliateID"`
}

// TableName explicitly sets the table name for GORM.
func (AffiliateModel) TableName() string {
	return "affiliates"
}
