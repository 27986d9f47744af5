package impl

import (
	"context"
	"log/slog"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	"portal/internal/domain/service"
	"portal/internal/usecase"

	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	oauthService service.OAuthService
	logger       *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	oauthService service.OAuthService,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		oauthService: oauthService,
		logger:       logger,
	}
}

// Login authenticates with email and password.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown email")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if user.PasswordHash == "" || !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
	}

	return srv.issueTokens(user)
}

// GoogleLogin authenticates with a verified Google ID token. The account must
// already exist; SSO never provisions users.
func (srv *userService) GoogleLogin(ctx context.Context, input *usecase.GoogleLoginInput) (*usecase.AuthOutput, error) {
	oauthUser, err := srv.oauthService.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrOAuthTokenInvalid, err.Error())
	}
	if !oauthUser.EmailVerified {
		return nil, errors.Wrap(domainerrors.ErrOAuthTokenInvalid, "email not verified by provider")
	}

	user, err := srv.userRepo.FindByEmail(ctx, oauthUser.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "no account for this identity")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return srv.issueTokens(user)
}

// RefreshToken exchanges a valid refresh token for a new token pair.
func (srv *userService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.AuthOutput, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, err.Error())
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "user no longer exists")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return srv.issueTokens(user)
}

// CreateUser creates a portal user, enforcing the role/affiliate binding
// invariant: collaborators always reference an affiliate, admins never do.
func (srv *userService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	role := entity.RoleFromString(input.Role)
	if !role.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid role")
	}
	if role == entity.RoleCollaborator && input.AffiliateID == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "collaborator requires an affiliate")
	}
	if role.IsAdmin() && input.AffiliateID != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "admin roles cannot be bound to an affiliate")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user := &entity.User{
		Email:        input.Email,
		Name:         input.Name,
		Role:         role,
		AffiliateID:  input.AffiliateID,
		PasswordHash: hash,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, err := userRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			return errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered")
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check email uniqueness")
		}

		if role == entity.RoleCollaborator {
			affiliateRepo := repoFactory.AffiliateRepo()
			if _, err := affiliateRepo.FindByID(ctx, *input.AffiliateID); err != nil {
				if errors.Is(err, repository.ErrAffiliateNotFound) {
					return errors.Wrap(domainerrors.ErrAffiliateNotFound, "affiliate not found")
				}

				return errors.Wrap(err, "failed to find affiliate")
			}
		}

		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.logger.Info("User created",
		slog.String("email", user.Email),
		slog.String("role", user.Role.String()),
	)

	return user, nil
}

// ListUsers returns all users for the admin list screen.
func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

func (srv *userService) issueTokens(user *entity.User) (*usecase.AuthOutput, error) {
	access, refresh, err := srv.tokenService.GenerateTokens(user.ID, user.Role, user.AffiliateID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	// Never leak the hash through the auth response.
	sanitized := *user
	sanitized.PasswordHash = ""

	return &usecase.AuthOutput{
		AccessToken:      access,
		RefreshToken:     refresh,
		RefreshExpiresIn: int64(srv.tokenService.GetRefreshTokenDuration().Seconds()),
		User:             &sanitized,
	}, nil
}
