package impl

import (
	"context"
	"log/slog"
	"time"

	"referral/config"
	deliverycontext "referral/internal/delivery/context"
	"referral/internal/domain/entity"
	domainerrors "referral/internal/domain/errors"
	"referral/internal/domain/repository"
	"referral/internal/domain/reward"
	"referral/internal/domain/service"
	"referral/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// referralService implements the ReferralUsecase interface.
type referralService struct {
	txManager      repository.TransactionManager
	userRepo       repository.UserRepository
	codeRepo       repository.CodeRepository
	referralRepo   repository.ReferralRepository
	codeUsecase    usecase.CodeUsecase
	eventPublisher service.EventPublisher
	notification   service.NotificationService
	referrerRate   decimal.Decimal
	referredRate   decimal.Decimal
	logger         *slog.Logger
}

// ReferralServiceParams holds dependencies for ReferralService, injected by Fx.
type ReferralServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	UserRepo       repository.UserRepository
	CodeRepo       repository.CodeRepository
	ReferralRepo   repository.ReferralRepository
	CodeUsecase    usecase.CodeUsecase
	EventPublisher service.EventPublisher
	Notification   service.NotificationService
	Config         *config.Config
	Logger         *slog.Logger
}

// NewReferralService is the constructor for referralService. It receives all dependencies as interfaces.
func NewReferralService(params ReferralServiceParams) usecase.ReferralUsecase {
	referrerRate, referredRate := reward.DefaultRates()
	if params.Config != nil && params.Config.Referral != nil {
		if params.Config.Referral.ReferrerRate > 0 {
			referrerRate = decimal.NewFromFloat(params.Config.Referral.ReferrerRate)
		}
		if params.Config.Referral.ReferredRate > 0 {
			referredRate = decimal.NewFromFloat(params.Config.Referral.ReferredRate)
		}
	}

	return &referralService{
		txManager:      params.TxManager,
		userRepo:       params.UserRepo,
		codeRepo:       params.CodeRepo,
		referralRepo:   params.ReferralRepo,
		codeUsecase:    params.CodeUsecase,
		eventPublisher: params.EventPublisher,
		notification:   params.Notification,
		referrerRate:   referrerRate,
		referredRate:   referredRate,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *referralService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup registers the user projection, issues their own referral code and
// attempts attribution of the supplied code. Attribution failures are
// swallowed: a bad or raced code never fails the signup.
func (srv *referralService) Signup(ctx context.Context, input usecase.SignupInput) (*usecase.SignupOutput, error) {
	srv.log(ctx).Info("Starting signup",
		slog.String("user_id", input.UserID.String()),
		slog.Bool("has_referral_code", input.ReferralCode != ""),
	)

	user := &entity.User{
		ID:              input.UserID,
		Name:            input.Name,
		ReferralRewards: decimal.Zero,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		if !errors.Is(err, repository.ErrUserExists) {
			return nil, errors.Wrap(err, "failed to create user")
		}

		// The user row may be left over from a signup that failed between
		// creation and code issuance. A retry resumes where it stopped; a
		// user that already holds a code is a genuine duplicate.
		existing, findErr := srv.userRepo.FindByID(ctx, input.UserID)
		if findErr != nil {
			return nil, errors.Wrap(findErr, "failed to load existing user at signup")
		}
		if existing.ReferralCode != "" {
			return nil, domainerrors.ErrConflict.WrapMessage("user already registered")
		}

		srv.log(ctx).Info("Resuming signup for user without a referral code",
			slog.String("user_id", input.UserID.String()),
		)
		user = existing
	}

	ownCode, err := srv.codeUsecase.IssueUniqueCode(ctx, input.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue referral code at signup")
	}
	user.ReferralCode = ownCode

	attributed := srv.attributeReferral(ctx, input)

	return &usecase.SignupOutput{
		User:               user,
		ReferralCode:       ownCode,
		ReferralAttributed: attributed,
	}, nil
}

// attributeReferral records a pending ledger entry for the supplied code.
// Rejections from the guards are logged and swallowed; signup never fails
// over referral bookkeeping.
func (srv *referralService) attributeReferral(ctx context.Context, input usecase.SignupInput) bool {
	if input.ReferralCode == "" {
		return false
	}

	entry, err := srv.recordPendingReferral(ctx, input)
	if err != nil {
		switch {
		case errors.Is(err, domainerrors.ErrUnknownReferrer):
			srv.log(ctx).Info("Referral code not recognized, signup continues without attribution",
				slog.String("code", input.ReferralCode),
			)
		case errors.Is(err, domainerrors.ErrSelfReferral):
			srv.log(ctx).Info("Self-referral rejected",
				slog.String("user_id", input.UserID.String()),
			)
		case errors.Is(err, domainerrors.ErrAlreadyReferred):
			srv.log(ctx).Info("User already referred, keeping existing entry",
				slog.String("user_id", input.UserID.String()),
			)
		default:
			srv.log(ctx).Error("Failed to record pending referral",
				slog.String("user_id", input.UserID.String()),
				slog.Any("error", err),
			)
		}

		return false
	}

	srv.log(ctx).Info("Pending referral recorded",
		slog.String("entry_id", entry.ID.String()),
		slog.String("referrer_user_id", entry.ReferrerUserID.String()),
		slog.String("referred_user_id", input.UserID.String()),
	)

	return true
}

// recordPendingReferral applies the attribution guards and, when they all
// pass, inserts the pending entry. Each rejection carries its domain error.
func (srv *referralService) recordPendingReferral(ctx context.Context, input usecase.SignupInput) (*entity.ReferralEntry, error) {
	referrerID, err := srv.codeRepo.FindOwner(ctx, input.ReferralCode)
	if err != nil {
		if errors.Is(err, repository.ErrCodeNotFound) {
			return nil, domainerrors.ErrUnknownReferrer.WrapMessage(input.ReferralCode)
		}

		return nil, errors.Wrap(err, "failed to resolve referral code owner")
	}

	if referrerID == input.UserID {
		return nil, domainerrors.ErrSelfReferral.WrapMessage(input.UserID.String())
	}

	entry := &entity.ReferralEntry{
		ReferrerUserID: referrerID,
		ReferredUserID: input.UserID,
		CodeUsed:       input.ReferralCode,
	}
	if err := srv.referralRepo.CreatePending(ctx, entry); err != nil {
		if errors.Is(err, repository.ErrAlreadyReferred) {
			return nil, domainerrors.ErrAlreadyReferred.WrapMessage(input.UserID.String())
		}

		return nil, errors.Wrap(err, "failed to create pending referral entry")
	}

	return entry, nil
}

// CompleteQualifyingPurchase fires the referred user's pending entry, if one
// exists. The reward figures are computed before the conditional update, so a
// losing racer persists nothing.
func (srv *referralService) CompleteQualifyingPurchase(ctx context.Context, input usecase.QualifyingPurchaseInput) (*usecase.QualifyingPurchaseOutput, error) {
	rewardAmount, discountAmount, err := reward.Compute(input.Amount, srv.referrerRate, srv.referredRate)
	if err != nil {
		return nil, err
	}

	entry, err := srv.referralRepo.CompleteFirstPending(ctx, input.UserID, rewardAmount, discountAmount, time.Now().UTC())
	if err != nil {
		if errors.Is(err, repository.ErrNoPendingEntry) {
			// Organic user or duplicate notification. Not an error.
			srv.log(ctx).Debug("No pending referral to complete",
				slog.String("user_id", input.UserID.String()),
			)

			return &usecase.QualifyingPurchaseOutput{Applied: false}, nil
		}

		return nil, errors.Wrap(err, "failed to complete referral")
	}

	// The entry is committed; reward accumulation and event publishing are
	// follow-on effects. Their failure leaves the ledger authoritative and
	// is repaired by the reconciliation pass.
	if err := srv.userRepo.AddRewards(ctx, entry.ReferrerUserID, entry.RewardAmount); err != nil {
		srv.log(ctx).Error("Failed to accumulate referrer reward, ledger remains authoritative",
			slog.String("referrer_user_id", entry.ReferrerUserID.String()),
			slog.String("entry_id", entry.ID.String()),
			slog.Any("error", err),
		)
	}

	srv.publishCompletionEvent(ctx, entry)
	srv.notifyReferrer(ctx, entry)

	srv.log(ctx).Info("Referral completed",
		slog.String("entry_id", entry.ID.String()),
		slog.String("referrer_user_id", entry.ReferrerUserID.String()),
		slog.String("referred_user_id", entry.ReferredUserID.String()),
		slog.String("reward_amount", entry.RewardAmount.String()),
	)

	return &usecase.QualifyingPurchaseOutput{
		Applied:        true,
		RewardAmount:   entry.RewardAmount,
		DiscountAmount: entry.DiscountAmount,
	}, nil
}

func (srv *referralService) publishCompletionEvent(ctx context.Context, entry *entity.ReferralEntry) {
	completedAt := ""
	if entry.CompletedAt != nil {
		completedAt = entry.CompletedAt.UTC().Format(time.RFC3339)
	}

	event := &service.ReferralCompletedEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		EntryID:        entry.ID.String(),
		ReferrerUserID: entry.ReferrerUserID.String(),
		ReferredUserID: entry.ReferredUserID.String(),
		RewardAmount:   entry.RewardAmount.String(),
		DiscountAmount: entry.DiscountAmount.String(),
		CompletedAt:    completedAt,
	}

	if err := srv.eventPublisher.PublishReferralCompleted(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish referral completed event",
			slog.String("entry_id", entry.ID.String()),
			slog.Any("error", err),
		)
	}
}

// notifyReferrer pushes a reward notification to the referrer's registered
// device, if any. Failures log and never propagate.
func (srv *referralService) notifyReferrer(ctx context.Context, entry *entity.ReferralEntry) {
	referrer, err := srv.userRepo.FindByID(ctx, entry.ReferrerUserID)
	if err != nil {
		srv.log(ctx).Error("Failed to load referrer for notification",
			slog.String("referrer_user_id", entry.ReferrerUserID.String()),
			slog.Any("error", err),
		)

		return
	}
	if referrer.DeviceToken == "" {
		return
	}

	data := map[string]string{
		"entry_id":      entry.ID.String(),
		"reward_amount": entry.RewardAmount.String(),
	}
	if err := srv.notification.SendSingleNotification(ctx, referrer.DeviceToken,
		"You earned a referral reward",
		"A friend you referred just made their first purchase.",
		data,
	); err != nil {
		srv.log(ctx).Error("Failed to send reward notification",
			slog.String("referrer_user_id", entry.ReferrerUserID.String()),
			slog.Any("error", err),
		)
	}
}

// RegisterDeviceToken records the user's push notification target.
func (srv *referralService) RegisterDeviceToken(ctx context.Context, userID uuid.UUID, token string) error {
	if err := srv.userRepo.SetDeviceToken(ctx, userID, token); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("user not found")
		}

		return errors.Wrap(err, "failed to set device token")
	}

	return nil
}

// GetReferralSummary returns the user's projection plus their outbound
// referral entries, newest first.
func (srv *referralService) GetReferralSummary(ctx context.Context, userID uuid.UUID) (*usecase.ReferralSummaryOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("user not found")
		}

		return nil, errors.Wrap(err, "failed to load user")
	}

	entries, err := srv.referralRepo.ListByReferrer(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list referral entries")
	}

	return &usecase.ReferralSummaryOutput{
		User:    user,
		Entries: entries,
	}, nil
}

// ReconcileRewards rebuilds every reward accumulator from completed ledger
// entries inside one transaction. Running it twice in a row is a no-op.
func (srv *referralService) ReconcileRewards(ctx context.Context) (*usecase.ReconcileOutput, error) {
	srv.log(ctx).Info("Starting reward reconciliation")

	updated := 0
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		referralRepo := repoFactory.ReferralRepo()
		userRepo := repoFactory.UserRepo()

		sums, err := referralRepo.SumCompletedRewards(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to aggregate completed rewards")
		}

		for _, sum := range sums {
			if err := userRepo.SetRewards(ctx, sum.ReferrerUserID, sum.Total); err != nil {
				return errors.Wrapf(err, "failed to set rewards for user %s", sum.ReferrerUserID)
			}
			updated++
		}

		return nil
	})
	if err != nil {
		return nil, domainerrors.ErrTransactionFailed.WrapMessage(err.Error())
	}

	srv.log(ctx).Info("Reward reconciliation finished", slog.Int("updated_users", updated))

	return &usecase.ReconcileOutput{UpdatedUsers: updated}, nil
}
