package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	"portal/internal/domain/service"
	mockRepo "portal/internal/mocks/repository"
	mockService "portal/internal/mocks/service"
	"portal/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
	oauthService *mockService.MockOAuthService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)
	oauthService := mockService.NewMockOAuthService(t)

	service := NewUserService(
		txManager,
		userRepo,
		hasher,
		tokenService,
		oauthService,
		slog.New(slog.DiscardHandler),
	)

	return userServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		oauthService: oauthService,
	}
}

func testCollaborator(affiliateID uuid.UUID) *entity.User {
	return &entity.User{
		ID:           uuid.New(),
		Email:        "collab@acme.example",
		Name:         "Collab",
		Role:         entity.RoleCollaborator,
		AffiliateID:  &affiliateID,
		PasswordHash: "$2a$10$hash",
	}
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	affiliateID := uuid.New()
	user := testCollaborator(affiliateID)

	fx.userRepo.EXPECT().
		FindByEmail(ctx, user.Email).
		Return(user, nil)

	fx.hasher.EXPECT().
		Check("correct horse", user.PasswordHash).
		Return(true)

	fx.tokenService.EXPECT().
		GenerateTokens(user.ID, entity.RoleCollaborator, &affiliateID).
		Return("access-token", "refresh-token", nil)

	fx.tokenService.EXPECT().
		GetRefreshTokenDuration().
		Return(7 * 24 * time.Hour)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    user.Email,
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, int64(7*24*60*60), output.RefreshExpiresIn)
	assert.Empty(t, output.User.PasswordHash, "auth responses must not carry the hash")
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := testCollaborator(uuid.New())

	fx.userRepo.EXPECT().
		FindByEmail(ctx, user.Email).
		Return(user, nil)

	fx.hasher.EXPECT().
		Check("wrong", user.PasswordHash).
		Return(false)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "wrong"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "nobody@acme.example").
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "nobody@acme.example", Password: "pw"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_SSOOnlyAccountHasNoPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := testCollaborator(uuid.New())
	user.PasswordHash = ""

	fx.userRepo.EXPECT().
		FindByEmail(ctx, user.Email).
		Return(user, nil)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "anything"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	// No hasher expectation: an empty hash short-circuits before bcrypt.
}

func TestUserService_GoogleLogin_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := testCollaborator(uuid.New())

	fx.oauthService.EXPECT().
		VerifyIDToken(ctx, "google-id-token").
		Return(&service.OAuthUser{
			ID:            "google-sub",
			Email:         user.Email,
			Name:          user.Name,
			EmailVerified: true,
		}, nil)

	fx.userRepo.EXPECT().
		FindByEmail(ctx, user.Email).
		Return(user, nil)

	fx.tokenService.EXPECT().
		GenerateTokens(user.ID, user.Role, user.AffiliateID).
		Return("access-token", "refresh-token", nil)

	fx.tokenService.EXPECT().
		GetRefreshTokenDuration().
		Return(7 * 24 * time.Hour)

	output, err := fx.service.GoogleLogin(ctx, &usecase.GoogleLoginInput{IDToken: "google-id-token"})
	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
}

func TestUserService_GoogleLogin_UnverifiedEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.oauthService.EXPECT().
		VerifyIDToken(ctx, "google-id-token").
		Return(&service.OAuthUser{Email: "collab@acme.example", EmailVerified: false}, nil)

	_, err := fx.service.GoogleLogin(ctx, &usecase.GoogleLoginInput{IDToken: "google-id-token"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOAuthTokenInvalid))
}

func TestUserService_GoogleLogin_NeverProvisionsUsers(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.oauthService.EXPECT().
		VerifyIDToken(ctx, "google-id-token").
		Return(&service.OAuthUser{Email: "new@acme.example", EmailVerified: true}, nil)

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "new@acme.example").
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GoogleLogin(ctx, &usecase.GoogleLoginInput{IDToken: "google-id-token"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_RefreshToken_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := testCollaborator(uuid.New())

	fx.tokenService.EXPECT().
		ValidateRefreshToken("refresh-token").
		Return(&service.Claims{UserID: user.ID, Role: user.Role, Type: "refresh"}, nil)

	fx.userRepo.EXPECT().
		FindByID(ctx, user.ID).
		Return(user, nil)

	fx.tokenService.EXPECT().
		GenerateTokens(user.ID, user.Role, user.AffiliateID).
		Return("new-access", "new-refresh", nil)

	fx.tokenService.EXPECT().
		GetRefreshTokenDuration().
		Return(7 * 24 * time.Hour)

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh-token"})
	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
	assert.Equal(t, int64(7*24*60*60), output.RefreshExpiresIn)
}

func TestUserService_RefreshToken_Invalid(t *testing.T) {
	fx := createTestUserService(t)

	fx.tokenService.EXPECT().
		ValidateRefreshToken("garbage").
		Return(nil, errors.New("token is malformed"))

	_, err := fx.service.RefreshToken(context.Background(), &usecase.RefreshTokenInput{RefreshToken: "garbage"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestUserService_CreateUser_Collaborator(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	affiliateID := uuid.New()

	fx.hasher.EXPECT().
		Hash("a long enough password").
		Return("$2a$10$hash", nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txAffiliateRepo := mockRepo.NewMockAffiliateRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	factory.EXPECT().AffiliateRepo().Return(txAffiliateRepo)

	txUserRepo.EXPECT().
		FindByEmail(ctx, "collab@acme.example").
		Return(nil, repository.ErrUserNotFound)

	txAffiliateRepo.EXPECT().
		FindByID(ctx, affiliateID).
		Return(testAffiliate(affiliateID), nil)

	txUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			assert.Equal(t, entity.RoleCollaborator, user.Role)
			require.NotNil(t, user.AffiliateID)
			assert.Equal(t, affiliateID, *user.AffiliateID)
			assert.Equal(t, "$2a$10$hash", user.PasswordHash)
		}).
		Return(nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	user, err := fx.service.CreateUser(ctx, &usecase.CreateUserInput{
		Email:       "collab@acme.example",
		Name:        "Collab",
		Password:    "a long enough password",
		Role:        "collaborator",
		AffiliateID: &affiliateID,
	})
	require.NoError(t, err)
	assert.True(t, user.Validate())
}

func TestUserService_CreateUser_CollaboratorRequiresAffiliate(t *testing.T) {
	fx := createTestUserService(t)

	_, err := fx.service.CreateUser(context.Background(), &usecase.CreateUserInput{
		Email:    "collab@acme.example",
		Name:     "Collab",
		Password: "a long enough password",
		Role:     "collaborator",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUserService_CreateUser_AdminMustNotBindAffiliate(t *testing.T) {
	fx := createTestUserService(t)

	affiliateID := uuid.New()

	_, err := fx.service.CreateUser(context.Background(), &usecase.CreateUserInput{
		Email:       "admin@portal.example",
		Name:        "Admin",
		Password:    "a long enough password",
		Role:        "admin",
		AffiliateID: &affiliateID,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUserService_CreateUser_InvalidRole(t *testing.T) {
	fx := createTestUserService(t)

	_, err := fx.service.CreateUser(context.Background(), &usecase.CreateUserInput{
		Email:    "x@portal.example",
		Name:     "X",
		Password: "a long enough password",
		Role:     "owner",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUserService_CreateUser_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().
		Hash("a long enough password").
		Return("$2a$10$hash", nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)

	txUserRepo.EXPECT().
		FindByEmail(ctx, "admin@portal.example").
		Return(&entity.User{Email: "admin@portal.example"}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	_, err := fx.service.CreateUser(ctx, &usecase.CreateUserInput{
		Email:    "admin@portal.example",
		Name:     "Admin",
		Password: "a long enough password",
		Role:     "admin",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_ListUsers(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	users := []*entity.User{testCollaborator(uuid.New())}

	fx.userRepo.EXPECT().
		List(ctx).
		Return(users, nil)

	listed, err := fx.service.ListUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, users, listed)
}
