package postgres

import (
	"context"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	"portal/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// affiliateRepository implements the domain.AffiliateRepository interface using GORM.
type affiliateRepository struct {
	db *gorm.DB
}

// NewAffiliateRepository is the constructor for affiliateRepository.
func NewAffiliateRepository(db *gorm.DB) repository.AffiliateRepository {
	return &affiliateRepository{db: db}
}

// FindByID retrieves a single affiliate by its unique ID.
func (repo *affiliateRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Affiliate, error) {
	var affiliateM model.AffiliateModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&affiliateM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAffiliateNotFound
		}

		return nil, errors.Wrap(err, "failed to find affiliate by id")
	}

	return toAffiliateDomain(&affiliateM), nil
}

// FindByInviteToken retrieves an affiliate by its onboarding invite token.
func (repo *affiliateRepository) FindByInviteToken(ctx context.Context, token string) (*entity.Affiliate, error) {
	var affiliateM model.AffiliateModel
	if err := repo.db.WithContext(ctx).
		Where("invite_token = ?", token).
		First(&affiliateM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAffiliateNotFound
		}

		return nil, errors.Wrap(err, "failed to find affiliate by invite token")
	}

	return toAffiliateDomain(&affiliateM), nil
}

// List returns all affiliates ordered by creation time.
func (repo *affiliateRepository) List(ctx context.Context) ([]*entity.Affiliate, error) {
	var models []model.AffiliateModel
	if err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list affiliates")
	}

	affiliates := make([]*entity.Affiliate, 0, len(models))
	for i := range models {
		affiliates = append(affiliates, toAffiliateDomain(&models[i]))
	}

	return affiliates, nil
}

// Create persists a new affiliate record.
func (repo *affiliateRepository) Create(ctx context.Context, affiliate *entity.Affiliate) error {
	affiliateM := fromAffiliateDomain(affiliate)

	if err := repo.db.WithContext(ctx).Create(affiliateM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAffiliateAlreadyExists.WrapMessage("invite token already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required affiliate information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create affiliate")
	}

	affiliate.ID = affiliateM.ID
	affiliate.CreatedAt = affiliateM.CreatedAt
	affiliate.UpdatedAt = affiliateM.UpdatedAt

	return nil
}

// Upsert creates or fully replaces an affiliate record by ID.
func (repo *affiliateRepository) Upsert(ctx context.Context, affiliate *entity.Affiliate) error {
	affiliateM := fromAffiliateDomain(affiliate)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(affiliateM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert affiliate")
	}

	affiliate.UpdatedAt = affiliateM.UpdatedAt

	return nil
}

// toAffiliateDomain maps a persistence model to a pure domain entity.
func toAffiliateDomain(affiliateM *model.AffiliateModel) *entity.Affiliate {
	return &entity.Affiliate{
		ID:                    affiliateM.ID,
		LegalName:             affiliateM.LegalName,
		DBAName:               affiliateM.DBAName,
		Website:               affiliateM.Website,
		ContactPhone:          affiliateM.ContactPhone,
		ContactEmail:          affiliateM.ContactEmail,
		AcceptDefaultServices: affiliateM.AcceptDefaultServices,
		Billing: entity.BillingInfo{
			BankName:         affiliateM.BankName,
			ACHRoutingNumber: affiliateM.ACHRoutingNumber,
			ACHAccountNumber: affiliateM.ACHAccountNumber,
			ACHAccountType:   affiliateM.ACHAccountType,
			W9FileKey:        affiliateM.W9FileKey,
		},
		Escalation: entity.EscalationContacts{
			PrimaryName:    affiliateM.PrimaryEscalationName,
			PrimaryEmail:   affiliateM.PrimaryEscalationEmail,
			PrimaryPhone:   affiliateM.PrimaryEscalationPhone,
			SecondaryName:  affiliateM.SecondaryEscalationName,
			SecondaryEmail: affiliateM.SecondaryEscalationEmail,
		},
		InviteToken: affiliateM.InviteToken,
		ConfirmedAt: affiliateM.ConfirmedAt,
		CreatedAt:   affiliateM.CreatedAt,
		UpdatedAt:   affiliateM.UpdatedAt,
	}
}

// fromAffiliateDomain maps a pure domain entity to a persistence model.
func fromAffiliateDomain(affiliate *entity.Affiliate) *model.AffiliateModel {
	return &model.AffiliateModel{
		ID:                       affiliate.ID,
		LegalName:                affiliate.LegalName,
		DBAName:                  affiliate.DBAName,
		Website:                  affiliate.Website,
		ContactPhone:             affiliate.ContactPhone,
		ContactEmail:             affiliate.ContactEmail,
		AcceptDefaultServices:    affiliate.AcceptDefaultServices,
		BankName:                 affiliate.Billing.BankName,
		ACHRoutingNumber:         affiliate.Billing.ACHRoutingNumber,
		ACHAccountNumber:         affiliate.Billing.ACHAccountNumber,
		ACHAccountType:           affiliate.Billing.ACHAccountType,
		W9FileKey:                affiliate.Billing.W9FileKey,
		PrimaryEscalationName:    affiliate.Escalation.PrimaryName,
		PrimaryEscalationEmail:   affiliate.Escalation.PrimaryEmail,
		PrimaryEscalationPhone:   affiliate.Escalation.PrimaryPhone,
		SecondaryEscalationName:  affiliate.Escalation.SecondaryName,
		SecondaryEscalationEmail: affiliate.Escalation.SecondaryEmail,
		InviteToken:              affiliate.InviteToken,
		ConfirmedAt:              affiliate.ConfirmedAt,
		CreatedAt:                affiliate.CreatedAt,
		UpdatedAt:                affiliate.UpdatedAt,
	}
}
