package impl

import (
	"context"
	"fmt"
	"log/slog"

	"portal/config"
	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	"portal/internal/domain/service"
	"portal/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// affiliateService implements the AffiliateUsecase interface.
type affiliateService struct {
	affiliateRepo repository.AffiliateRepository
	overrideRepo  repository.OverrideRepository
	qrcodeService service.QRCodeService
	cfg           *config.Config
	logger        *slog.Logger
}

// NewAffiliateService is the constructor for affiliateService.
func NewAffiliateService(
	affiliateRepo repository.AffiliateRepository,
	overrideRepo repository.OverrideRepository,
	qrcodeService service.QRCodeService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AffiliateUsecase {
	return &affiliateService{
		affiliateRepo: affiliateRepo,
		overrideRepo:  overrideRepo,
		qrcodeService: qrcodeService,
		cfg:           cfg,
		logger:        logger,
	}
}

// ListAffiliates returns all affiliates for the admin list screen.
func (srv *affiliateService) ListAffiliates(ctx context.Context) ([]*entity.Affiliate, error) {
	affiliates, err := srv.affiliateRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list affiliates")
	}

	return affiliates, nil
}

// GetAffiliate returns one affiliate together with its overrides.
func (srv *affiliateService) GetAffiliate(ctx context.Context, id uuid.UUID) (*usecase.AffiliateDetail, error) {
	affiliate, err := srv.affiliateRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAffiliateNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAffiliateNotFound, "affiliate not found")
		}

		return nil, errors.Wrap(err, "failed to find affiliate")
	}

	overrides, err := srv.overrideRepo.ListByAffiliate(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list overrides")
	}

	return &usecase.AffiliateDetail{
		Affiliate: affiliate,
		Overrides: overrides,
	}, nil
}

// CreateAffiliate creates a shell affiliate record with a fresh invite token.
func (srv *affiliateService) CreateAffiliate(ctx context.Context, input *usecase.CreateAffiliateInput) (*usecase.CreateAffiliateOutput, error) {
	affiliate := &entity.Affiliate{
		LegalName:    input.LegalName,
		ContactEmail: input.ContactEmail,
		InviteToken:  uuid.NewString(),
	}

	if err := srv.affiliateRepo.Create(ctx, affiliate); err != nil {
		return nil, errors.Wrap(err, "failed to create affiliate")
	}

	srv.logger.Info("Affiliate created",
		slog.String("affiliateID", affiliate.ID.String()),
		slog.String("legalName", affiliate.LegalName),
	)

	return &usecase.CreateAffiliateOutput{
		Affiliate: affiliate,
		InviteURL: srv.inviteURL(affiliate),
	}, nil
}

// InviteQR renders the affiliate's onboarding invite link as a QR PNG.
func (srv *affiliateService) InviteQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	affiliate, err := srv.affiliateRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAffiliateNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAffiliateNotFound, "affiliate not found")
		}

		return nil, errors.Wrap(err, "failed to find affiliate")
	}

	png, err := srv.qrcodeService.GenerateInviteQR(srv.inviteURL(affiliate))
	if err != nil {
		return nil, errors.Wrap(err, "failed to render invite QR")
	}

	return png, nil
}

// ResolveInvite redeems an invite token from an onboarding link. Unknown
// tokens are indistinguishable from revoked ones and both resolve to 404.
func (srv *affiliateService) ResolveInvite(ctx context.Context, token string) (*usecase.InviteInfo, error) {
	if token == "" {
		return nil, errors.Wrap(domainerrors.ErrInviteTokenInvalid, "empty token")
	}

	affiliate, err := srv.affiliateRepo.FindByInviteToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrAffiliateNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInviteTokenInvalid, "token not recognized")
		}

		return nil, errors.Wrap(err, "failed to find affiliate by invite token")
	}

	return &usecase.InviteInfo{
		AffiliateID: affiliate.ID,
		LegalName:   affiliate.LegalName,
		Confirmed:   affiliate.ConfirmedAt != nil,
	}, nil
}

func (srv *affiliateService) inviteURL(affiliate *entity.Affiliate) string {
	return fmt.Sprintf("%s/onboarding?token=%s", srv.cfg.Onboarding.InviteBaseURL, affiliate.InviteToken)
}
