package impl

import (
	"context"
	"testing"
	"time"

	"referral/internal/domain/entity"
	domainerrors "referral/internal/domain/errors"
	"referral/internal/domain/repository"
	mockRepo "referral/internal/mocks/repository"
	mockSvc "referral/internal/mocks/service"
	mockUC "referral/internal/mocks/usecase"
	"referral/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// referralServiceFixtures holds all test dependencies for referral service tests.
type referralServiceFixtures struct {
	service        usecase.ReferralUsecase
	txManager      *mockRepo.MockTransactionManager
	userRepo       *mockRepo.MockUserRepository
	codeRepo       *mockRepo.MockCodeRepository
	referralRepo   *mockRepo.MockReferralRepository
	codeUsecase    *mockUC.MockCodeUsecase
	eventPublisher *mockSvc.MockEventPublisher
	notification   *mockSvc.MockNotificationService
}

func createTestReferralService(t *testing.T) referralServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	codeRepo := mockRepo.NewMockCodeRepository(t)
	referralRepo := mockRepo.NewMockReferralRepository(t)
	codeUsecase := mockUC.NewMockCodeUsecase(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)
	notification := mockSvc.NewMockNotificationService(t)

	service := NewReferralService(ReferralServiceParams{
		TxManager:      txManager,
		UserRepo:       userRepo,
		CodeRepo:       codeRepo,
		ReferralRepo:   referralRepo,
		CodeUsecase:    codeUsecase,
		EventPublisher: eventPublisher,
		Notification:   notification,
		Config:         newTestConfig(20),
		Logger:         newDiscardLogger(),
	})

	return referralServiceFixtures{
		service:        service,
		txManager:      txManager,
		userRepo:       userRepo,
		codeRepo:       codeRepo,
		referralRepo:   referralRepo,
		codeUsecase:    codeUsecase,
		eventPublisher: eventPublisher,
		notification:   notification,
	}
}

func TestReferralService_Signup_WithoutCode(t *testing.T) {
	fx := createTestReferralService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil).Once()
	fx.codeUsecase.EXPECT().IssueUniqueCode(ctx, userID).Return("NEW1CODE", nil).Once()

	output, err := fx.service.Signup(ctx, usecase.SignupInput{
		UserID: userID,
		Name:   "Alice",
	})

	require.NoError(t, err)
	assert.Equal(t, "NEW1CODE", output.ReferralCode)
	assert.False(t, output.ReferralAttributed)
}

func TestReferralService_Signup_WithValidCode(t *testing.T) {
	fx := createTestReferralService(t)
	ctx := context.Background()
	referrerID := uuid.New()
	userID := uuid.New()

	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil).Once()
	fx.codeUsecase.EXPECT().IssueUniqueCode(ctx, userID).Return("NEW1CODE", nil).Once()
	fx.codeRepo.EXPECT().FindOwner(ctx, "REF1CODE").Return(referrerID, nil).Once()
	fx.referralRepo.EXPECT().
		CreatePending(ctx, mock.AnythingOfType("*entity.ReferralEntry")).
		Run(func(ctx context.Context, entry *entity.ReferralEntry) {
			assert.Equal(t, referrerID, entry.ReferrerUserID)
			assert.Equal(t, userID, entry.ReferredUserID)
			assert.Equal(t, "REF1CODE", entry.CodeUsed)
			entry.ID = uuid.New()
		}).
		Return(nil).Once()

	output, err := fx.service.Signup(ctx, usecase.SignupInput{
		UserID:       userID,
		Name:         "Bob",
		ReferralCode: "REF1CODE",
	})

	require.NoError(t, err)
	assert.True(t, output.ReferralAttributed)
}

func TestReferralService_Signup_UnknownCodeStillSucceeds(t *testing.T) {
	fx := createTestReferralService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil).Once()
	fx.codeUsecase.EXPECT().IssueUniqueCode(ctx, userID).Return("NEW1CODE", nil).Once()
	fx.codeRepo.EXPECT().FindOwner(ctx, "BOGUS000").Return(uuid.Nil, repository.ErrCodeNotFound).Once()

	output, err := fx.service.Signup(ctx, usecase.SignupInput{
		UserID:       userID,
		Name:         "Carol",
		ReferralCode: "BOGUS000",
	})

	require.NoError(t, err)
	assert.False(t, output.ReferralAttributed)
}

func TestReferralService_Signup_SelfReferralIgnored(t *testing.T) {
	fx := createTestReferralService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil).Once()
	fx.codeUsecase.EXPECT().IssueUniqueCode(ctx, userID).Return("NEW1CODE", nil).Once()
	// The redeemed code resolves to the signing-up user themselves.
	fx.codeRepo.EXPECT().FindOwner(ctx, "OWN1CODE").Return(userID, nil).Once()

	output, err := fx.service.Signup(ctx, usecase.SignupInput{
		UserID:       userID,
		Name:         "Dave",
		ReferralCode: "OWN1CODE",
	})

	require.NoError(t, err)
	assert.False(t, output.ReferralAttributed)
}

func TestReferralService_Signup_AlreadyReferredIgnored(t *testing.T) {
	fx := createTestReferralService(t)
	ctx := context.Background()
	referrerID := uuid.New()
	userID := uuid.New()

	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil).Once()
	fx.codeUsecase.EXPECT().IssueUniqueCode(ctx, userID).Return("NEW1CODE", nil).Once()
	fx.codeRepo.EXPECT().FindOwner(ctx, "REF1CODE").Return(referrerID, nil).Once()
	fx.referralRepo.EXPECT().
		CreatePending(ctx, mock.AnythingOfType("*entity.ReferralEntry")).
		Return(repository.ErrAlreadyReferred).Once()

	output, err := fx.service.Signup(ctx, usecase.SignupInput{
		UserID:       userID,
		Name:         "Eve",
		ReferralCode: "REF1CODE",
	})

	require.NoError(t, err)
	assert.False(t, output.ReferralAttributed)
}

// The attribution guards carry typed domain errors internally even though
// Signup swallows them at the boundary.
func TestReferralService_AttributionGuards_TypedErrors(t *testing.T) {
	ctx := context.Background()
	referrerID := uuid.New()
	userID := uuid.New()

	t.Run("unknown referrer", func(t *testing.T) {
		fx := createTestReferralService(t)
		fx.codeRepo.EXPECT().FindOwner(ctx, "BOGUS000").Return(uuid.Nil, repository.ErrCodeNotFound).Once()

		srv := fx.service.(*referralService)
		_, err := srv.recordPendingReferral(ctx, usecase.SignupInput{UserID: userID, ReferralCode: "BOGUS000"})
		assert.ErrorIs(t, err, domainerrors.ErrUnknownReferrer)
	})

	t.Run("self referral", func(t *testing.T) {
		fx := createTestReferralService(t)
		fx.codeRepo.EXPECT().FindOwner(ctx, "OWN1CODE").Return(userID, nil).Once()

		srv := fx.service.(*referralService)
		_, err := srv.recordPendingReferral(ctx, usecase.SignupInput{UserID: userID, ReferralCode: "OWN1CODE"})
		assert.ErrorIs(t, err, domainerrors.ErrSelfReferral)
	})

	t.Run("already referred", func(t *testing.T) {
		fx := createTestReferralService(t)
		fx.codeRepo.EXPECT().FindOwner(ctx, "REF1CODE").Return(referrerID, nil).Once()
		fx.referralRepo.EXPECT().
			CreatePending(ctx, mock.AnythingOfType("*entity.ReferralEntry")).
			Return(repository.ErrAlreadyReferred).Once()

		srv := fx.service.(*referralService)
		_, err := srv.recordPendingReferral(ctx, usecase.SignupInput{UserID: userID, ReferralCode: "REF1CODE"})
		assert.ErrorIs(t, err, domainerrors.ErrAlreadyReferred)
	})
}

func TestReferralService_Signup_DuplicateUser(t *testing.T) {
	fx := createTestReferralService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(repository.ErrUserExists).Once()
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(userWithCode(userID, "OLD1CODE"), nil).Once()

	output, err := fx.service.Signup(ctx, usecase.SignupInput{
		UserID: userID,
		Name:   "Frank",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestReferralService_Signup_ResumesAfterFailedIssuance(t *testing.T) {
	fx := createTestReferralService(t)
	ctx := context.Background()
	userID := uuid.New()
	input := usecase.SignupInput{UserID: userID, Name: "Grace"}

	// First attempt: the user row lands but code issuance fails.
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil).Once()
	fx.codeUsecase.EXPECT().IssueUniqueCode(ctx, userID).
		Return("", errors.New("connection reset")).Once()

	output, err := fx.service.Signup(ctx, input)
	require.Error(t, err)
	assert.Nil(t, output)

	// Retry: the row already exists but carries no code, so signup
	// resumes with issuance instead of reporting a conflict.
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(repository.ErrUserExists).Once()
	fx.userRepo.EXPECT().FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Name: "Grace", ReferralRewards: decimal.Zero}, nil).Once()
	fx.codeUsecase.EXPECT().IssueUniqueCode(ctx, userID).Return("NEW1CODE", nil).Once()

	output, err = fx.service.Signup(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "NEW1CODE", output.ReferralCode)
	assert.Equal(t, "NEW1CODE", output.User.ReferralCode)
}

func TestReferralService_CompleteQualifyingPurchase_Applied(t *testing.T) {
	fx := createTestReferralService(t)
	ctx := context.Background()
	referrerID := uuid.New()
	referredID := uuid.New()
	entryID := uuid.New()
	completedAt := time.Now().UTC()

	expectedReward := decimal.NewFromFloat(10.00)
	expectedDiscount := decimal.NewFromFloat(10.00)

	fx.referralRepo.EXPECT().
		CompleteFirstPending(ctx, referredID,
			decimalEq(expectedReward), decimalEq(expectedDiscount),
			mock.AnythingOfType("time.Time")).
		Return(&entity.ReferralEntry{
			ID:             entryID,
			ReferrerUserID: referrerID,
			ReferredUserID: referredID,
			CodeUsed:       "REF1CODE",
			Status:         entity.ReferralStatusCompleted,
			RewardAmount:   expectedReward,
			DiscountAmount: expectedDiscount,
			CompletedAt:    &completedAt,
		}, nil).Once()

	fx.userRepo.EXPECT().AddRewards(ctx, referrerID, decimalEq(expectedReward)).Return(nil).Once()
	fx.eventPublisher.EXPECT().
		PublishReferralCompleted(ctx, mock.AnythingOfType("*service.ReferralCompletedEvent")).
		Return(nil).Once()
	fx.userRepo.EXPECT().FindByID(ctx, referrerID).Return(userWithCode(referrerID, "REF1CODE"), nil).Once()

	output, err := fx.service.CompleteQualifyingPurchase(ctx, usecase.QualifyingPurchaseInput{
		UserID: referredID,
		Amount: decimal.NewFromInt(200),
	})

	require.NoError(t, err)
	assert.True(t, output.Applied)
	assert.True(t, output.RewardAmount.Equal(expectedReward))
	assert.True(t, output.DiscountAmount.Equal(expectedDiscount))
}

func TestReferralService_CompleteQualifyingPurchase_NoPendingEntry(t *testing.T) {
	fx := createTestReferralService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.referralRepo.EXPECT().
		CompleteFirstPending(ctx, userID, mock.Anything, mock.Anything, mock.AnythingOfType("time.Time")).
		Return(nil, repository.ErrNoPendingEntry).Once()

	output, err := fx.service.CompleteQualifyingPurchase(ctx, usecase.QualifyingPurchaseInput{
		UserID: userID,
		Amount: decimal.NewFromInt(50),
	})

	require.NoError(t, err)
	assert.False(t, output.Applied)
}

func TestReferralService_CompleteQualifyingPurchase_InvalidAmount(t *testing.T) {
	fx := createTestReferralService(t)
	ctx := context.Background()

	output, err := fx.service.CompleteQualifyingPurchase(ctx, usecase.QualifyingPurchaseInput{
		UserID: uuid.New(),
		Amount: decimal.Zero,
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidAmount)
}

func TestReferralService_CompleteQualifyingPurchase_AccumulatorFailureStillApplies(t *testing.T) {
	fx := createTestReferralService(t)
	ctx := context.Background()
	referrerID := uuid.New()
	referredID := uuid.New()
	completedAt := time.Now().UTC()

	reward := decimal.NewFromFloat(5.00)

	fx.referralRepo.EXPECT().
		CompleteFirstPending(ctx, referredID, mock.Anything, mock.Anything, mock.AnythingOfType("time.Time")).
		Return(&entity.ReferralEntry{
			ID:             uuid.New(),
			ReferrerUserID: referrerID,
			ReferredUserID: referredID,
			Status:         entity.ReferralStatusCompleted,
			RewardAmount:   reward,
			DiscountAmount: reward,
			CompletedAt:    &completedAt,
		}, nil).Once()

	// The accumulator increment fails; the ledger entry stays committed and
	// the operation still reports success.
	fx.userRepo.EXPECT().AddRewards(ctx, referrerID, mock.Anything).Return(errors.New("connection reset")).Once()
	fx.eventPublisher.EXPECT().
		PublishReferralCompleted(ctx, mock.AnythingOfType("*service.ReferralCompletedEvent")).
		Return(nil).Once()
	fx.userRepo.EXPECT().FindByID(ctx, referrerID).Return(userWithCode(referrerID, "REF1CODE"), nil).Once()

	output, err := fx.service.CompleteQualifyingPurchase(ctx, usecase.QualifyingPurchaseInput{
		UserID: referredID,
		Amount: decimal.NewFromInt(100),
	})

	require.NoError(t, err)
	assert.True(t, output.Applied)
}

func TestReferralService_CompleteQualifyingPurchase_NotifiesRegisteredDevice(t *testing.T) {
	fx := createTestReferralService(t)
	ctx := context.Background()
	referrerID := uuid.New()
	referredID := uuid.New()
	completedAt := time.Now().UTC()

	referrer := userWithCode(referrerID, "REF1CODE")
	referrer.DeviceToken = "fcm-token-123"

	fx.referralRepo.EXPECT().
		CompleteFirstPending(ctx, referredID, mock.Anything, mock.Anything, mock.AnythingOfType("time.Time")).
		Return(&entity.ReferralEntry{
			ID:             uuid.New(),
			ReferrerUserID: referrerID,
			ReferredUserID: referredID,
			Status:         entity.ReferralStatusCompleted,
			RewardAmount:   decimal.NewFromFloat(5.00),
			DiscountAmount: decimal.NewFromFloat(5.00),
			CompletedAt:    &completedAt,
		}, nil).Once()
	fx.userRepo.EXPECT().AddRewards(ctx, referrerID, mock.Anything).Return(nil).Once()
	fx.eventPublisher.EXPECT().
		PublishReferralCompleted(ctx, mock.AnythingOfType("*service.ReferralCompletedEvent")).
		Return(nil).Once()
	fx.userRepo.EXPECT().FindByID(ctx, referrerID).Return(referrer, nil).Once()
	fx.notification.EXPECT().
		SendSingleNotification(ctx, "fcm-token-123", mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.Anything).
		Return(nil).Once()

	output, err := fx.service.CompleteQualifyingPurchase(ctx, usecase.QualifyingPurchaseInput{
		UserID: referredID,
		Amount: decimal.NewFromInt(100),
	})

	require.NoError(t, err)
	assert.True(t, output.Applied)
}

func TestReferralService_GetReferralSummary(t *testing.T) {
	fx := createTestReferralService(t)
	ctx := context.Background()
	userID := uuid.New()

	entries := []*entity.ReferralEntry{
		{ID: uuid.New(), ReferrerUserID: userID, Status: entity.ReferralStatusCompleted},
		{ID: uuid.New(), ReferrerUserID: userID, Status: entity.ReferralStatusPending},
	}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(userWithCode(userID, "REF1CODE"), nil).Once()
	fx.referralRepo.EXPECT().ListByReferrer(ctx, userID).Return(entries, nil).Once()

	output, err := fx.service.GetReferralSummary(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, "REF1CODE", output.User.ReferralCode)
	assert.Len(t, output.Entries, 2)
}

func TestReferralService_GetReferralSummary_UserNotFound(t *testing.T) {
	fx := createTestReferralService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound).Once()

	output, err := fx.service.GetReferralSummary(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestReferralService_ReconcileRewards(t *testing.T) {
	fx := createTestReferralService(t)
	ctx := context.Background()

	referrerA := uuid.New()
	referrerB := uuid.New()
	sums := []*entity.ReferrerRewardSum{
		{ReferrerUserID: referrerA, Total: decimal.NewFromFloat(15.00)},
		{ReferrerUserID: referrerB, Total: decimal.NewFromFloat(5.00)},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txReferralRepo := mockRepo.NewMockReferralRepository(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)

			factory.EXPECT().ReferralRepo().Return(txReferralRepo)
			factory.EXPECT().UserRepo().Return(txUserRepo)

			txReferralRepo.EXPECT().SumCompletedRewards(ctx).Return(sums, nil).Once()
			txUserRepo.EXPECT().SetRewards(ctx, referrerA, decimalEq(decimal.NewFromFloat(15.00))).Return(nil).Once()
			txUserRepo.EXPECT().SetRewards(ctx, referrerB, decimalEq(decimal.NewFromFloat(5.00))).Return(nil).Once()

			return fn(factory)
		}).Once()

	output, err := fx.service.ReconcileRewards(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, output.UpdatedUsers)
}

func TestReferralService_RegisterDeviceToken(t *testing.T) {
	fx := createTestReferralService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().SetDeviceToken(ctx, userID, "fcm-token-123").Return(nil).Once()

	err := fx.service.RegisterDeviceToken(ctx, userID, "fcm-token-123")

	require.NoError(t, err)
}

func TestReferralService_RegisterDeviceToken_UserNotFound(t *testing.T) {
	fx := createTestReferralService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().SetDeviceToken(ctx, userID, "fcm-token-123").Return(repository.ErrUserNotFound).Once()

	err := fx.service.RegisterDeviceToken(ctx, userID, "fcm-token-123")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

// decimalEq matches a decimal argument by value rather than representation.
func decimalEq(want decimal.Decimal) interface{} {
	return mock.MatchedBy(func(got decimal.Decimal) bool {
		return got.Equal(want)
	})
}
