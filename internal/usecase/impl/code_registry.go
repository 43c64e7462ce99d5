// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"referral/config"
	deliverycontext "referral/internal/delivery/context"
	"referral/internal/domain/constants"
	domainerrors "referral/internal/domain/errors"
	"referral/internal/domain/repository"
	"referral/internal/domain/service"
	"referral/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// codeRegistryService implements the CodeUsecase interface. It owns the
// generate-and-register loop; uniqueness comes from the repository's atomic
// conditional registration, never from checking first.
type codeRegistryService struct {
	codeRepo      repository.CodeRepository
	generator     service.CodeGenerator
	qrcodeService service.QRCodeService
	userRepo      repository.UserRepository
	maxAttempts   int
	logger        *slog.Logger
}

// CodeRegistryParams holds dependencies for the code registry, injected by Fx.
type CodeRegistryParams struct {
	fx.In

	CodeRepo      repository.CodeRepository
	Generator     service.CodeGenerator
	QRCodeService service.QRCodeService
	UserRepo      repository.UserRepository
	Config        *config.Config
	Logger        *slog.Logger
}

// NewCodeRegistryService is the constructor for codeRegistryService.
func NewCodeRegistryService(params CodeRegistryParams) usecase.CodeUsecase {
	maxAttempts := constants.DefaultMaxIssueAttempts
	if params.Config != nil && params.Config.Referral != nil && params.Config.Referral.MaxIssueAttempts > 0 {
		maxAttempts = params.Config.Referral.MaxIssueAttempts
	}

	return &codeRegistryService{
		codeRepo:      params.CodeRepo,
		generator:     params.Generator,
		qrcodeService: params.QRCodeService,
		userRepo:      params.UserRepo,
		maxAttempts:   maxAttempts,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *codeRegistryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// IssueUniqueCode generates candidate codes and registers the first one the
// repository accepts. Only ErrCodeTaken triggers another attempt; any other
// failure is terminal.
func (srv *codeRegistryService) IssueUniqueCode(ctx context.Context, userID uuid.UUID) (string, error) {
	for attempt := 1; attempt <= srv.maxAttempts; attempt++ {
		code := srv.generator.Generate()

		err := srv.codeRepo.Register(ctx, code, userID)
		if err == nil {
			srv.log(ctx).Info("Referral code issued",
				slog.String("user_id", userID.String()),
				slog.String("code", code),
				slog.Int("attempts", attempt),
			)

			return code, nil
		}
		if errors.Is(err, repository.ErrCodeTaken) {
			srv.log(ctx).Debug("Referral code collision, retrying",
				slog.String("code", code),
				slog.Int("attempt", attempt),
			)

			continue
		}
		if errors.Is(err, repository.ErrCodeAlreadyIssued) {
			return "", domainerrors.ErrConflict.WrapMessage("user already holds a referral code")
		}

		return "", errors.Wrap(err, "failed to register referral code")
	}

	srv.log(ctx).Error("Referral code issuance exhausted retries",
		slog.String("user_id", userID.String()),
		slog.Int("max_attempts", srv.maxAttempts),
	)

	return "", domainerrors.ErrExhaustedRetries.WrapMessage("code allocation retries exhausted")
}

// ReassignCode replaces the user's code with a caller-chosen one. The
// repository's single conditional update keeps the swap atomic; the old code
// is free the moment the new one is claimed.
func (srv *codeRegistryService) ReassignCode(ctx context.Context, userID uuid.UUID, newCode string) error {
	err := srv.codeRepo.Reassign(ctx, userID, newCode)
	if err == nil {
		srv.log(ctx).Info("Referral code reassigned",
			slog.String("user_id", userID.String()),
			slog.String("new_code", newCode),
		)

		return nil
	}

	if errors.Is(err, repository.ErrCodeTaken) {
		return domainerrors.ErrConflict.WrapMessage("requested code is owned by another user")
	}
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrNotFound.WrapMessage("user holds no referral code to replace")
	}

	return errors.Wrap(err, "failed to reassign referral code")
}

// Lookup resolves a code to its owning user.
func (srv *codeRegistryService) Lookup(ctx context.Context, code string) (*usecase.CodeLookupOutput, error) {
	ownerID, err := srv.codeRepo.FindOwner(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrCodeNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("referral code not found")
		}

		return nil, errors.Wrap(err, "failed to look up referral code")
	}

	return &usecase.CodeLookupOutput{
		Code:        code,
		OwnerUserID: ownerID,
	}, nil
}

// GenerateCodeQR renders the user's current referral code as a PNG QR image.
func (srv *codeRegistryService) GenerateCodeQR(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("user not found")
		}

		return nil, errors.Wrap(err, "failed to load user for QR generation")
	}
	if user.ReferralCode == "" {
		return nil, domainerrors.ErrNotFound.WrapMessage("user holds no referral code")
	}

	qrBytes, err := srv.qrcodeService.GenerateReferralQR(user.ReferralCode)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate referral QR code")
	}

	return qrBytes, nil
}
