package postgres

import (
	"context"
	"time"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	"portal/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// onboardingRepository implements the domain.OnboardingRepository interface using GORM.
type onboardingRepository struct {
	db *gorm.DB
}

// NewOnboardingRepository is the constructor for onboardingRepository.
func NewOnboardingRepository(db *gorm.DB) repository.OnboardingRepository {
	return &onboardingRepository{db: db}
}

// FindSession loads the full onboarding session for an affiliate. An affiliate
// with no session row and no answers yields an empty, unconfirmed session.
func (repo *onboardingRepository) FindSession(ctx context.Context, affiliateID uuid.UUID) (*entity.OnboardingSession, error) {
	session := entity.NewOnboardingSession(affiliateID)

	var sessionM model.OnboardingSessionModel
	err := repo.db.WithContext(ctx).
		Where("affiliate_id = ?", affiliateID).
		First(&sessionM).Error
	switch {
	case err == nil:
		session.ConfirmedAt = sessionM.ConfirmedAt
	case errors.Is(err, gorm.ErrRecordNotFound):
		// No session row yet; answers may still exist from older rows.
	default:
		return nil, errors.Wrap(err, "failed to find onboarding session")
	}

	var answerModels []model.OnboardingAnswerModel
	if err := repo.db.WithContext(ctx).
		Where("affiliate_id = ?", affiliateID).
		Order("updated_at ASC").
		Find(&answerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load onboarding answers")
	}

	for i := range answerModels {
		answerM := &answerModels[i]
		session.SetAnswer(entity.SectionAnswer{
			SectionID: entity.SectionID(answerM.SectionID),
			Payload:   append([]byte(nil), answerM.Payload...),
			UpdatedAt: answerM.UpdatedAt,
		})
	}

	return session, nil
}

// UpsertAnswer stores a validated section answer, replacing any previous
// answer for the same (affiliate, section) pair. The session row is created
// on first write so state queries have a stable anchor.
func (repo *onboardingRepository) UpsertAnswer(ctx context.Context, affiliateID uuid.UUID, answer entity.SectionAnswer) error {
	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "affiliate_id"}},
			DoNothing: true,
		}).
		Create(&model.OnboardingSessionModel{AffiliateID: affiliateID}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to ensure onboarding session")
	}

	answerM := model.OnboardingAnswerModel{
		AffiliateID: affiliateID,
		SectionID:   answer.SectionID.String(),
		Payload:     datatypes.JSON(answer.Payload),
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "affiliate_id"}, {Name: "section_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&answerM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert onboarding answer")
	}

	return nil
}

// MarkConfirmed records the confirmation timestamp for the session.
func (repo *onboardingRepository) MarkConfirmed(ctx context.Context, affiliateID uuid.UUID, confirmedAt time.Time) error {
	sessionM := model.OnboardingSessionModel{
		AffiliateID: affiliateID,
		ConfirmedAt: &confirmedAt,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "affiliate_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"confirmed_at", "updated_at"}),
		}).
		Create(&sessionM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to mark onboarding confirmed")
	}

	return nil
}
