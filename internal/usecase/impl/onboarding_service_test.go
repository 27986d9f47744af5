package impl

import (
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/form"
	"portal/internal/domain/repository"
	mockRepo "portal/internal/mocks/repository"
	mockService "portal/internal/mocks/service"
	"portal/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// onboardingServiceFixtures holds all test dependencies for onboarding service tests.
type onboardingServiceFixtures struct {
	service        usecase.OnboardingUsecase
	txManager      *mockRepo.MockTransactionManager
	affiliateRepo  *mockRepo.MockAffiliateRepository
	onboardingRepo *mockRepo.MockOnboardingRepository
	fileStore      *mockService.MockFileStore
	publisher      *mockService.MockEventPublisher
}

func createTestOnboardingService(t *testing.T) onboardingServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	affiliateRepo := mockRepo.NewMockAffiliateRepository(t)
	onboardingRepo := mockRepo.NewMockOnboardingRepository(t)
	fileStore := mockService.NewMockFileStore(t)
	publisher := mockService.NewMockEventPublisher(t)

	service := NewOnboardingService(
		txManager,
		affiliateRepo,
		onboardingRepo,
		form.NewRegistry(),
		fileStore,
		publisher,
		slog.New(slog.DiscardHandler),
	)

	return onboardingServiceFixtures{
		service:        service,
		txManager:      txManager,
		affiliateRepo:  affiliateRepo,
		onboardingRepo: onboardingRepo,
		fileStore:      fileStore,
		publisher:      publisher,
	}
}

func testAffiliate(id uuid.UUID) *entity.Affiliate {
	return &entity.Affiliate{
		ID:           id,
		LegalName:    "Acme Plumbing LLC",
		ContactEmail: "ops@acme.example",
		InviteToken:  uuid.NewString(),
	}
}

func answerPayloads() map[entity.SectionID]string {
	return map[entity.SectionID]string{
		entity.SectionBusinessDetails:    `{"legalName":"Acme Plumbing LLC","dbaName":"Acme","website":"","country":"US","contactPhone":"+1-555-0100","contactEmail":"ops@acme.example"}`,
		entity.SectionDefaultServices:    `{"acceptDefaults":true,"notes":""}`,
		entity.SectionLocationServices:   `{"overrides":[{"locationId":"loc-1","serviceType":"residential","available":true},{"locationId":"loc-1","serviceType":"residential","available":false}]}`,
		entity.SectionEscalationContacts: `{"primaryEscalationName":"Dana Ops","primaryEscalationEmail":"dana@acme.example"}`,
		entity.SectionSellerBilling:      `{"bankName":"First Example Bank","achRoutingNumber":"021000021","achAccountNumber":"12345678","achAccountType":"checking"}`,
		entity.SectionConfirmation:       `{"confirmed":true}`,
	}
}

func completeSession(affiliateID uuid.UUID) *entity.OnboardingSession {
	session := entity.NewOnboardingSession(affiliateID)
	for id, payload := range answerPayloads() {
		session.SetAnswer(entity.SectionAnswer{
			SectionID: id,
			Payload:   []byte(payload),
			UpdatedAt: time.Now(),
		})
	}

	return session
}

func TestOnboardingService_GetSection_DefaultsWhenUnsaved(t *testing.T) {
	fx := createTestOnboardingService(t)

	ctx := context.Background()
	affiliateID := uuid.New()

	fx.onboardingRepo.EXPECT().
		FindSession(ctx, affiliateID).
		Return(entity.NewOnboardingSession(affiliateID), nil)

	view, err := fx.service.GetSection(ctx, affiliateID, entity.SectionBusinessDetails)
	require.NoError(t, err)
	assert.Equal(t, entity.SectionBusinessDetails, view.SectionID)
	assert.False(t, view.Completed)

	defaults, ok := view.Answer.(form.BusinessDetailsAnswer)
	require.True(t, ok)
	assert.Equal(t, "US", defaults.Country)
}

func TestOnboardingService_GetSection_StoredAnswer(t *testing.T) {
	fx := createTestOnboardingService(t)

	ctx := context.Background()
	affiliateID := uuid.New()
	session := entity.NewOnboardingSession(affiliateID)
	session.SetAnswer(entity.SectionAnswer{
		SectionID: entity.SectionDefaultServices,
		Payload:   []byte(`{"acceptDefaults":true,"notes":""}`),
		UpdatedAt: time.Now(),
	})

	fx.onboardingRepo.EXPECT().
		FindSession(ctx, affiliateID).
		Return(session, nil)

	view, err := fx.service.GetSection(ctx, affiliateID, entity.SectionDefaultServices)
	require.NoError(t, err)
	assert.True(t, view.Completed)
}

func TestOnboardingService_GetSection_UnknownSection(t *testing.T) {
	fx := createTestOnboardingService(t)

	_, err := fx.service.GetSection(context.Background(), uuid.New(), entity.SectionID("bogus"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSectionNotFound))
}

func TestOnboardingService_SaveSection_StoresAnswerAndReportsNext(t *testing.T) {
	fx := createTestOnboardingService(t)

	ctx := context.Background()
	affiliateID := uuid.New()

	fx.affiliateRepo.EXPECT().
		FindByID(ctx, affiliateID).
		Return(testAffiliate(affiliateID), nil)

	fx.onboardingRepo.EXPECT().
		UpsertAnswer(ctx, affiliateID, mock.AnythingOfType("entity.SectionAnswer")).
		Run(func(ctx context.Context, affiliateID uuid.UUID, answer entity.SectionAnswer) {
			assert.Equal(t, entity.SectionBusinessDetails, answer.SectionID)
			assert.Contains(t, string(answer.Payload), "Acme Plumbing LLC")
		}).
		Return(nil)

	reloaded := entity.NewOnboardingSession(affiliateID)
	reloaded.SetAnswer(entity.SectionAnswer{SectionID: entity.SectionBusinessDetails, Payload: []byte(`{}`)})
	fx.onboardingRepo.EXPECT().
		FindSession(ctx, affiliateID).
		Return(reloaded, nil)

	output, err := fx.service.SaveSection(ctx, affiliateID, entity.SectionBusinessDetails, map[string]any{
		"legalName":    "Acme Plumbing LLC",
		"contactPhone": "+1-555-0100",
		"contactEmail": "ops@acme.example",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.SectionBusinessDetails, output.SectionID)
	assert.Equal(t, entity.SectionDefaultServices, output.NextSection)
	assert.False(t, output.ReviewReady)
}

func TestOnboardingService_SaveSection_LastSectionIsReviewReady(t *testing.T) {
	fx := createTestOnboardingService(t)

	ctx := context.Background()
	affiliateID := uuid.New()

	fx.affiliateRepo.EXPECT().
		FindByID(ctx, affiliateID).
		Return(testAffiliate(affiliateID), nil)

	fx.onboardingRepo.EXPECT().
		UpsertAnswer(ctx, affiliateID, mock.AnythingOfType("entity.SectionAnswer")).
		Return(nil)

	fx.onboardingRepo.EXPECT().
		FindSession(ctx, affiliateID).
		Return(completeSession(affiliateID), nil)

	output, err := fx.service.SaveSection(ctx, affiliateID, entity.SectionConfirmation, map[string]any{
		"confirmed": true,
	})
	require.NoError(t, err)
	assert.True(t, output.ReviewReady)
	assert.Empty(t, output.NextSection)
}

func TestOnboardingService_SaveSection_ValidationFailureDoesNotPersist(t *testing.T) {
	fx := createTestOnboardingService(t)

	ctx := context.Background()
	affiliateID := uuid.New()

	fx.affiliateRepo.EXPECT().
		FindByID(ctx, affiliateID).
		Return(testAffiliate(affiliateID), nil)

	_, err := fx.service.SaveSection(ctx, affiliateID, entity.SectionBusinessDetails, map[string]any{
		"legalName": "Acme Plumbing LLC",
	})
	require.Error(t, err)

	var ferrs form.FieldErrors
	require.True(t, errors.As(err, &ferrs))
	assert.True(t, ferrs.Has("contactEmail"))
	// No UpsertAnswer expectation: a validation failure must never write.
}

func TestOnboardingService_SaveSection_RejectedAfterConfirmation(t *testing.T) {
	fx := createTestOnboardingService(t)

	ctx := context.Background()
	affiliateID := uuid.New()
	confirmed := testAffiliate(affiliateID)
	confirmedAt := time.Now()
	confirmed.ConfirmedAt = &confirmedAt

	fx.affiliateRepo.EXPECT().
		FindByID(ctx, affiliateID).
		Return(confirmed, nil)

	_, err := fx.service.SaveSection(ctx, affiliateID, entity.SectionBusinessDetails, map[string]any{
		"legalName": "Acme Plumbing LLC",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOnboardingConfirmed))
}

func TestOnboardingService_SaveSection_UnknownAffiliate(t *testing.T) {
	fx := createTestOnboardingService(t)

	ctx := context.Background()
	affiliateID := uuid.New()

	fx.affiliateRepo.EXPECT().
		FindByID(ctx, affiliateID).
		Return(nil, repository.ErrAffiliateNotFound)

	_, err := fx.service.SaveSection(ctx, affiliateID, entity.SectionBusinessDetails, map[string]any{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAffiliateNotFound))
}

func TestOnboardingService_Progress(t *testing.T) {
	fx := createTestOnboardingService(t)

	ctx := context.Background()
	affiliateID := uuid.New()
	session := entity.NewOnboardingSession(affiliateID)
	session.SetAnswer(entity.SectionAnswer{SectionID: entity.SectionBusinessDetails, Payload: []byte(`{}`)})

	fx.affiliateRepo.EXPECT().
		FindByID(ctx, affiliateID).
		Return(testAffiliate(affiliateID), nil)

	fx.onboardingRepo.EXPECT().
		FindSession(ctx, affiliateID).
		Return(session, nil)

	output, err := fx.service.Progress(ctx, affiliateID)
	require.NoError(t, err)
	assert.Equal(t, entity.OnboardingInProgress, output.State)
	assert.Equal(t, entity.SectionDefaultServices, output.NextSection)
	require.Len(t, output.Sections, 6)
	assert.Equal(t, entity.SectionBusinessDetails, output.Sections[0].SectionID)
	assert.True(t, output.Sections[0].Completed)
	assert.False(t, output.Sections[1].Completed)
}

func TestOnboardingService_SaveW9(t *testing.T) {
	fx := createTestOnboardingService(t)

	ctx := context.Background()
	affiliateID := uuid.New()
	contents := strings.NewReader("%PDF-1.7")

	fx.affiliateRepo.EXPECT().
		FindByID(ctx, affiliateID).
		Return(testAffiliate(affiliateID), nil)

	fx.fileStore.EXPECT().
		SaveW9(ctx, affiliateID, "w9.pdf", contents).
		Return(affiliateID.String()+"/1-w9.pdf", nil)

	key, err := fx.service.SaveW9(ctx, affiliateID, "w9.pdf", contents)
	require.NoError(t, err)
	assert.Equal(t, affiliateID.String()+"/1-w9.pdf", key)
}

func TestOnboardingService_SaveW9_StoreFailure(t *testing.T) {
	fx := createTestOnboardingService(t)

	ctx := context.Background()
	affiliateID := uuid.New()
	contents := strings.NewReader("%PDF-1.7")

	fx.affiliateRepo.EXPECT().
		FindByID(ctx, affiliateID).
		Return(testAffiliate(affiliateID), nil)

	fx.fileStore.EXPECT().
		SaveW9(ctx, affiliateID, "w9.pdf", contents).
		Return("", errors.New("bucket unavailable"))

	_, err := fx.service.SaveW9(ctx, affiliateID, "w9.pdf", contents)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrW9UploadFailed))
}

func TestOnboardingService_Finalize_CommitsAggregateAndPublishes(t *testing.T) {
	fx := createTestOnboardingService(t)

	ctx := context.Background()
	affiliateID := uuid.New()

	fx.affiliateRepo.EXPECT().
		FindByID(ctx, affiliateID).
		Return(testAffiliate(affiliateID), nil)

	fx.onboardingRepo.EXPECT().
		FindSession(ctx, affiliateID).
		Return(completeSession(affiliateID), nil)

	txAffiliateRepo := mockRepo.NewMockAffiliateRepository(t)
	txOverrideRepo := mockRepo.NewMockOverrideRepository(t)
	txOnboardingRepo := mockRepo.NewMockOnboardingRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().AffiliateRepo().Return(txAffiliateRepo)
	factory.EXPECT().OverrideRepo().Return(txOverrideRepo)
	factory.EXPECT().OnboardingRepo().Return(txOnboardingRepo)

	txAffiliateRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.Affiliate")).
		Run(func(ctx context.Context, affiliate *entity.Affiliate) {
			assert.NotNil(t, affiliate.ConfirmedAt)
			assert.True(t, affiliate.AcceptDefaultServices)
			assert.Equal(t, "First Example Bank", affiliate.Billing.BankName)
			assert.Equal(t, "Dana Ops", affiliate.Escalation.PrimaryName)
		}).
		Return(nil)

	txOverrideRepo.EXPECT().
		ReplaceForAffiliate(ctx, affiliateID, mock.AnythingOfType("[]entity.LocationServiceOverride")).
		Run(func(ctx context.Context, affiliateID uuid.UUID, overrides []entity.LocationServiceOverride) {
			// The duplicate (loc-1, residential) row collapses to its last value.
			require.Len(t, overrides, 1)
			assert.False(t, overrides[0].Available)
		}).
		Return(nil)

	txOnboardingRepo.EXPECT().
		MarkConfirmed(ctx, affiliateID, mock.AnythingOfType("time.Time")).
		Return(nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	fx.publisher.EXPECT().
		PublishOnboardingConfirmed(ctx, mock.AnythingOfType("*service.OnboardingConfirmedEvent")).
		Return(nil)

	output, err := fx.service.Finalize(ctx, affiliateID)
	require.NoError(t, err)
	assert.Equal(t, affiliateID, output.AffiliateID)
	assert.Equal(t, entity.OnboardingConfirmed, output.State)
}

func TestOnboardingService_Finalize_IncompleteNeverReachesTransaction(t *testing.T) {
	fx := createTestOnboardingService(t)

	ctx := context.Background()
	affiliateID := uuid.New()
	session := entity.NewOnboardingSession(affiliateID)
	session.SetAnswer(entity.SectionAnswer{
		SectionID: entity.SectionBusinessDetails,
		Payload:   []byte(answerPayloads()[entity.SectionBusinessDetails]),
	})

	fx.affiliateRepo.EXPECT().
		FindByID(ctx, affiliateID).
		Return(testAffiliate(affiliateID), nil)

	fx.onboardingRepo.EXPECT().
		FindSession(ctx, affiliateID).
		Return(session, nil)

	_, err := fx.service.Finalize(ctx, affiliateID)
	require.Error(t, err)

	var incompleteErr *usecase.IncompleteError
	require.True(t, errors.As(err, &incompleteErr))
	assert.Equal(t, []entity.SectionID{
		entity.SectionDefaultServices,
		entity.SectionLocationServices,
		entity.SectionEscalationContacts,
		entity.SectionSellerBilling,
		entity.SectionConfirmation,
	}, incompleteErr.Sections)
	// No Execute expectation: incompleteness is decided before any transaction.
}

func TestOnboardingService_Finalize_StoredFalseConfirmationBlocks(t *testing.T) {
	fx := createTestOnboardingService(t)

	ctx := context.Background()
	affiliateID := uuid.New()
	session := completeSession(affiliateID)
	session.SetAnswer(entity.SectionAnswer{
		SectionID: entity.SectionConfirmation,
		Payload:   []byte(`{"confirmed":false}`),
	})

	fx.affiliateRepo.EXPECT().
		FindByID(ctx, affiliateID).
		Return(testAffiliate(affiliateID), nil)

	fx.onboardingRepo.EXPECT().
		FindSession(ctx, affiliateID).
		Return(session, nil)

	_, err := fx.service.Finalize(ctx, affiliateID)
	require.Error(t, err)

	var incompleteErr *usecase.IncompleteError
	require.True(t, errors.As(err, &incompleteErr))
	assert.Equal(t, []entity.SectionID{entity.SectionConfirmation}, incompleteErr.Sections)
}

func TestOnboardingService_Finalize_AlreadyConfirmed(t *testing.T) {
	fx := createTestOnboardingService(t)

	ctx := context.Background()
	affiliateID := uuid.New()
	confirmed := testAffiliate(affiliateID)
	confirmedAt := time.Now()
	confirmed.ConfirmedAt = &confirmedAt

	fx.affiliateRepo.EXPECT().
		FindByID(ctx, affiliateID).
		Return(confirmed, nil)

	_, err := fx.service.Finalize(ctx, affiliateID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOnboardingConfirmed))
}

func TestOnboardingService_Finalize_TransactionFailureDoesNotPublish(t *testing.T) {
	fx := createTestOnboardingService(t)

	ctx := context.Background()
	affiliateID := uuid.New()

	fx.affiliateRepo.EXPECT().
		FindByID(ctx, affiliateID).
		Return(testAffiliate(affiliateID), nil)

	fx.onboardingRepo.EXPECT().
		FindSession(ctx, affiliateID).
		Return(completeSession(affiliateID), nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		Return(errors.New("deadlock detected"))

	_, err := fx.service.Finalize(ctx, affiliateID)
	require.Error(t, err)
	// No publisher expectation: a failed commit must not emit the event.
}

func TestOnboardingService_Finalize_PublishFailureDoesNotFailFinalize(t *testing.T) {
	fx := createTestOnboardingService(t)

	ctx := context.Background()
	affiliateID := uuid.New()

	fx.affiliateRepo.EXPECT().
		FindByID(ctx, affiliateID).
		Return(testAffiliate(affiliateID), nil)

	fx.onboardingRepo.EXPECT().
		FindSession(ctx, affiliateID).
		Return(completeSession(affiliateID), nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		Return(nil)

	fx.publisher.EXPECT().
		PublishOnboardingConfirmed(ctx, mock.AnythingOfType("*service.OnboardingConfirmedEvent")).
		Return(errors.New("broker unreachable"))

	output, err := fx.service.Finalize(ctx, affiliateID)
	require.NoError(t, err)
	assert.Equal(t, entity.OnboardingConfirmed, output.State)
}

func TestNormalizeAccountType(t *testing.T) {
	checking := entity.ACHAccountTypeChecking
	savings := entity.ACHAccountTypeSavings
	legacy := "money-market"

	assert.Nil(t, normalizeAccountType(nil))
	assert.Equal(t, &checking, normalizeAccountType(&checking))
	assert.Equal(t, &savings, normalizeAccountType(&savings))
	assert.Nil(t, normalizeAccountType(&legacy))
}
