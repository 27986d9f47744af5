// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"time"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/form"
	"portal/internal/domain/repository"
	"portal/internal/domain/service"
	"portal/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// onboardingService implements the OnboardingUsecase interface. It is the
// submission orchestrator: section saves validate-then-store, and finalize
// re-validates the whole aggregate before a single transactional commit.
type onboardingService struct {
	txManager      repository.TransactionManager
	affiliateRepo  repository.AffiliateRepository
	onboardingRepo repository.OnboardingRepository
	registry       *form.Registry
	fileStore      service.FileStore
	publisher      service.EventPublisher
	logger         *slog.Logger
}

// NewOnboardingService is the constructor for onboardingService.
func NewOnboardingService(
	txManager repository.TransactionManager,
	affiliateRepo repository.AffiliateRepository,
	onboardingRepo repository.OnboardingRepository,
	registry *form.Registry,
	fileStore service.FileStore,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.OnboardingUsecase {
	return &onboardingService{
		txManager:      txManager,
		affiliateRepo:  affiliateRepo,
		onboardingRepo: onboardingRepo,
		registry:       registry,
		fileStore:      fileStore,
		publisher:      publisher,
		logger:         logger,
	}
}

// GetSection returns the stored answer for a section, or the schema defaults
// when nothing has been saved yet.
func (srv *onboardingService) GetSection(ctx context.Context, affiliateID uuid.UUID, sectionID entity.SectionID) (*usecase.SectionView, error) {
	schema, ok := srv.registry.Schema(sectionID)
	if !ok {
		return nil, errors.Wrapf(domainerrors.ErrSectionNotFound, "unknown section %q", sectionID)
	}

	session, err := srv.onboardingRepo.FindSession(ctx, affiliateID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load onboarding session")
	}

	view := &usecase.SectionView{SectionID: sectionID}
	if answer, stored := session.Answer(sectionID); stored {
		view.Answer = json.RawMessage(answer.Payload)
		view.Completed = true
	} else {
		view.Answer = schema.Defaults()
	}

	return view, nil
}

// SaveSection validates raw input and stores the resulting answer.
// Validation failures are returned without touching the gateway.
func (srv *onboardingService) SaveSection(ctx context.Context, affiliateID uuid.UUID, sectionID entity.SectionID, raw map[string]any) (*usecase.SaveSectionOutput, error) {
	schema, ok := srv.registry.Schema(sectionID)
	if !ok {
		return nil, errors.Wrapf(domainerrors.ErrSectionNotFound, "unknown section %q", sectionID)
	}

	affiliate, err := srv.findAffiliate(ctx, affiliateID)
	if err != nil {
		return nil, err
	}
	if affiliate.IsConfirmed() {
		return nil, errors.Wrap(domainerrors.ErrOnboardingConfirmed, "section edits after confirmation are not allowed")
	}

	answer, ferrs := schema.Validate(raw)
	if len(ferrs) > 0 {
		return nil, ferrs
	}

	payload, err := json.Marshal(answer)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode section answer")
	}

	sectionAnswer := entity.SectionAnswer{
		SectionID: sectionID,
		Payload:   payload,
		UpdatedAt: time.Now(),
	}
	if err := srv.onboardingRepo.UpsertAnswer(ctx, affiliateID, sectionAnswer); err != nil {
		return nil, errors.Wrap(err, "failed to store section answer")
	}

	session, err := srv.onboardingRepo.FindSession(ctx, affiliateID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload onboarding session")
	}

	output := &usecase.SaveSectionOutput{SectionID: sectionID}
	if next, more := srv.registry.NextIncomplete(session); more {
		output.NextSection = next
	} else {
		output.ReviewReady = true
	}

	srv.logger.Info("Section saved",
		slog.String("affiliateID", affiliateID.String()),
		slog.String("sectionID", sectionID.String()),
		slog.Bool("reviewReady", output.ReviewReady),
	)

	return output, nil
}

// Progress reports per-section completion and the derived session state.
func (srv *onboardingService) Progress(ctx context.Context, affiliateID uuid.UUID) (*usecase.ProgressOutput, error) {
	if _, err := srv.findAffiliate(ctx, affiliateID); err != nil {
		return nil, err
	}

	session, err := srv.onboardingRepo.FindSession(ctx, affiliateID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load onboarding session")
	}

	output := &usecase.ProgressOutput{State: srv.registry.State(session)}
	for _, id := range srv.registry.SectionIDs() {
		output.Sections = append(output.Sections, usecase.SectionProgress{
			SectionID: id,
			Completed: session.IsComplete(id),
		})
	}
	if next, more := srv.registry.NextIncomplete(session); more {
		output.NextSection = next
	}

	return output, nil
}

// SaveW9 stores an uploaded W-9 document and returns its blob key.
func (srv *onboardingService) SaveW9(ctx context.Context, affiliateID uuid.UUID, filename string, contents io.Reader) (string, error) {
	affiliate, err := srv.findAffiliate(ctx, affiliateID)
	if err != nil {
		return "", err
	}
	if affiliate.IsConfirmed() {
		return "", errors.Wrap(domainerrors.ErrOnboardingConfirmed, "document uploads after confirmation are not allowed")
	}

	key, err := srv.fileStore.SaveW9(ctx, affiliateID, filename, contents)
	if err != nil {
		return "", domainerrors.ErrW9UploadFailed.WrapMessage(err.Error())
	}

	return key, nil
}

// Finalize re-validates the whole session and commits the aggregate.
// Incomplete sessions return the ordered blocking sections and never reach
// the persistence gateway; a gateway failure leaves the session unconfirmed.
func (srv *onboardingService) Finalize(ctx context.Context, affiliateID uuid.UUID) (*usecase.FinalizeOutput, error) {
	affiliate, err := srv.findAffiliate(ctx, affiliateID)
	if err != nil {
		return nil, err
	}
	if affiliate.IsConfirmed() {
		return nil, errors.Wrap(domainerrors.ErrOnboardingConfirmed, "onboarding is already finalized")
	}

	session, err := srv.onboardingRepo.FindSession(ctx, affiliateID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load onboarding session")
	}

	if incomplete := srv.incompleteSections(session); len(incomplete) > 0 {
		return nil, &usecase.IncompleteError{Sections: incomplete}
	}

	confirmedAt := time.Now()
	overrides, err := applyAnswers(affiliate, session)
	if err != nil {
		return nil, errors.Wrap(err, "failed to map onboarding answers")
	}
	affiliate.ConfirmedAt = &confirmedAt

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.AffiliateRepo().Upsert(ctx, affiliate); err != nil {
			return errors.Wrap(err, "failed to persist affiliate")
		}
		if err := repoFactory.OverrideRepo().ReplaceForAffiliate(ctx, affiliateID, overrides); err != nil {
			return errors.Wrap(err, "failed to persist overrides")
		}
		if err := repoFactory.OnboardingRepo().MarkConfirmed(ctx, affiliateID, confirmedAt); err != nil {
			return errors.Wrap(err, "failed to mark session confirmed")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "finalize transaction failed")
	}

	srv.publishConfirmed(ctx, affiliate, confirmedAt)

	return &usecase.FinalizeOutput{
		AffiliateID: affiliateID,
		State:       entity.OnboardingConfirmed,
	}, nil
}

// incompleteSections returns the sections still blocking finalize, in
// traversal order. A stored confirmation answer with confirmed=false counts
// as incomplete.
func (srv *onboardingService) incompleteSections(session *entity.OnboardingSession) []entity.SectionID {
	incomplete := srv.registry.IncompleteSections(session)

	if answer, ok := session.Answer(entity.SectionConfirmation); ok {
		var confirmation form.ConfirmationAnswer
		if err := json.Unmarshal(answer.Payload, &confirmation); err != nil || !confirmation.IsConfirmed() {
			incomplete = append(incomplete, entity.SectionConfirmation)
		}
	}

	return incomplete
}

// applyAnswers decodes the validated session answers onto the affiliate
// record and returns the override set to persist alongside it.
func applyAnswers(affiliate *entity.Affiliate, session *entity.OnboardingSession) ([]entity.LocationServiceOverride, error) {
	var business form.BusinessDetailsAnswer
	if err := decodeAnswer(session, entity.SectionBusinessDetails, &business); err != nil {
		return nil, err
	}
	affiliate.LegalName = business.LegalName
	affiliate.DBAName = business.DBAName
	affiliate.Website = business.Website
	affiliate.ContactPhone = business.ContactPhone
	affiliate.ContactEmail = business.ContactEmail

	var services form.DefaultServicesAnswer
	if err := decodeAnswer(session, entity.SectionDefaultServices, &services); err != nil {
		return nil, err
	}
	affiliate.AcceptDefaultServices = services.AcceptDefaults != nil && *services.AcceptDefaults

	var escalation form.EscalationContactsAnswer
	if err := decodeAnswer(session, entity.SectionEscalationContacts, &escalation); err != nil {
		return nil, err
	}
	affiliate.Escalation = entity.EscalationContacts{
		PrimaryName:    escalation.PrimaryName,
		PrimaryEmail:   escalation.PrimaryEmail,
		PrimaryPhone:   escalation.PrimaryPhone,
		SecondaryName:  escalation.SecondaryName,
		SecondaryEmail: escalation.SecondaryEmail,
	}

	var billing form.SellerBillingAnswer
	if err := decodeAnswer(session, entity.SectionSellerBilling, &billing); err != nil {
		return nil, err
	}
	affiliate.Billing = entity.BillingInfo{
		BankName:         billing.BankName,
		ACHRoutingNumber: billing.ACHRoutingNumber,
		ACHAccountNumber: billing.ACHAccountNumber,
		ACHAccountType:   normalizeAccountType(billing.ACHAccountType),
		W9FileKey:        billing.W9FilePath,
	}

	var locations form.LocationServicesAnswer
	if err := decodeAnswer(session, entity.SectionLocationServices, &locations); err != nil {
		return nil, err
	}
	overrides := make([]entity.LocationServiceOverride, 0, len(locations.Overrides))
	for _, o := range locations.Overrides {
		overrides = append(overrides, entity.LocationServiceOverride{
			AffiliateID: affiliate.ID,
			LocationID:  o.LocationID,
			ServiceType: entity.ServiceType(o.ServiceType),
			SubType:     o.SubType,
			Available:   o.Available != nil && *o.Available,
		})
	}

	return entity.DedupeOverrides(overrides), nil
}

// normalizeAccountType drops account type values outside the ACH enum, so
// answers stored before a schema change never reach the affiliate record.
func normalizeAccountType(accountType *string) *string {
	if accountType == nil {
		return nil
	}
	switch *accountType {
	case entity.ACHAccountTypeChecking, entity.ACHAccountTypeSavings:
		return accountType
	}

	return nil
}

func decodeAnswer(session *entity.OnboardingSession, id entity.SectionID, out any) error {
	answer, ok := session.Answer(id)
	if !ok {
		return errors.Errorf("answer for section %q missing", id)
	}
	if err := json.Unmarshal(answer.Payload, out); err != nil {
		return errors.Wrapf(err, "failed to decode answer for section %q", id)
	}

	return nil
}

func (srv *onboardingService) findAffiliate(ctx context.Context, affiliateID uuid.UUID) (*entity.Affiliate, error) {
	affiliate, err := srv.affiliateRepo.FindByID(ctx, affiliateID)
	if err != nil {
		if errors.Is(err, repository.ErrAffiliateNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAffiliateNotFound, "affiliate not found")
		}

		return nil, errors.Wrap(err, "failed to find affiliate")
	}

	return affiliate, nil
}

// publishConfirmed emits the confirmation event. Publish failures are logged
// and never fail a committed finalize.
func (srv *onboardingService) publishConfirmed(ctx context.Context, affiliate *entity.Affiliate, confirmedAt time.Time) {
	event := &service.OnboardingConfirmedEvent{
		AffiliateID: affiliate.ID,
		LegalName:   affiliate.LegalName,
		ConfirmedAt: confirmedAt,
	}
	if err := srv.publisher.PublishOnboardingConfirmed(ctx, event); err != nil {
		srv.logger.Warn("failed to publish onboarding confirmed event",
			slog.String("affiliateID", affiliate.ID.String()),
			slog.Any("error", err),
		)
	}
}
