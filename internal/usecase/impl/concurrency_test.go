package impl

import (
	"context"
	"sync"
	"testing"

	"referral/internal/domain/entity"
	mockRepo "referral/internal/mocks/repository"
	mockSvc "referral/internal/mocks/service"
	mockUC "referral/internal/mocks/usecase"
	"referral/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Concurrent issuers drawing from a deliberately small code pool must still
// end up holding pairwise-distinct codes. Collisions resolve through the
// retry loop, never through duplicate assignment.
func TestCodeRegistry_ConcurrentIssue_UniqueCodes(t *testing.T) {
	codeRepo := newFakeCodeRepository()
	generator := newCollidingGenerator(500)

	service := NewCodeRegistryService(CodeRegistryParams{
		CodeRepo:      codeRepo,
		Generator:     generator,
		QRCodeService: mockSvc.NewMockQRCodeService(t),
		UserRepo:      mockRepo.NewMockUserRepository(t),
		Config:        newTestConfig(20),
		Logger:        newDiscardLogger(),
	})

	const workers = 50

	var wg sync.WaitGroup
	var mu sync.Mutex
	issued := make(map[string]uuid.UUID, workers)
	errs := make([]error, 0)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			userID := uuid.New()
			code, err := service.IssueUniqueCode(context.Background(), userID)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)

				return
			}
			if prev, dup := issued[code]; dup {
				t.Errorf("code %s issued to both %s and %s", code, prev, userID)
			}
			issued[code] = userID
		}()
	}
	wg.Wait()

	require.Empty(t, errs)
	assert.Len(t, issued, workers)
}

// Two signups racing with the same referred user and referral code must
// leave at most one ledger entry; exactly one caller sees the attribution.
func TestReferralService_ConcurrentSignup_SingleAttribution(t *testing.T) {
	codeRepo := newFakeCodeRepository()
	referralRepo := newFakeReferralRepository()

	referrerID := uuid.New()
	referredID := uuid.New()
	require.NoError(t, codeRepo.Register(context.Background(), "REF1CODE", referrerID))

	service := NewReferralService(ReferralServiceParams{
		TxManager:      mockRepo.NewMockTransactionManager(t),
		UserRepo:       newFakeUserRepository(),
		CodeRepo:       codeRepo,
		ReferralRepo:   referralRepo,
		CodeUsecase:    &stubCodeIssuer{},
		EventPublisher: noopEventPublisher{},
		Notification:   noopNotifier{},
		Config:         newTestConfig(20),
		Logger:         newDiscardLogger(),
	})

	const workers = 20

	var wg sync.WaitGroup
	var mu sync.Mutex
	attributed := 0

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			output, err := service.Signup(context.Background(), usecase.SignupInput{
				UserID:       referredID,
				Name:         "Racer",
				ReferralCode: "REF1CODE",
			})
			if err != nil {
				t.Errorf("unexpected error: %v", err)

				return
			}

			mu.Lock()
			defer mu.Unlock()
			if output.ReferralAttributed {
				attributed++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, attributed)

	referralRepo.mu.Lock()
	defer referralRepo.mu.Unlock()
	require.Len(t, referralRepo.entries, 1)
	entry := referralRepo.entries[referredID]
	require.NotNil(t, entry)
	assert.Equal(t, referrerID, entry.ReferrerUserID)
	assert.Equal(t, entity.ReferralStatusPending, entry.Status)
}

// Concurrent completion notifications for the same referred user must fire
// the pending entry exactly once; every losing racer reports Applied false.
func TestReferralService_ConcurrentCompletion_AppliesOnce(t *testing.T) {
	referralRepo := newFakeReferralRepository()
	userRepo := newFakeUserRepository()

	referrerID := uuid.New()
	referredID := uuid.New()
	require.NoError(t, referralRepo.CreatePending(context.Background(), &entity.ReferralEntry{
		ReferrerUserID: referrerID,
		ReferredUserID: referredID,
		CodeUsed:       "REF1CODE",
	}))

	service := NewReferralService(ReferralServiceParams{
		TxManager:      mockRepo.NewMockTransactionManager(t),
		UserRepo:       userRepo,
		CodeRepo:       newFakeCodeRepository(),
		ReferralRepo:   referralRepo,
		CodeUsecase:    mockUC.NewMockCodeUsecase(t),
		EventPublisher: noopEventPublisher{},
		Notification:   noopNotifier{},
		Config:         newTestConfig(20),
		Logger:         newDiscardLogger(),
	})

	const workers = 20

	var wg sync.WaitGroup
	var mu sync.Mutex
	applied := 0

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			output, err := service.CompleteQualifyingPurchase(context.Background(), usecase.QualifyingPurchaseInput{
				UserID: referredID,
				Amount: decimal.NewFromInt(200),
			})
			if err != nil {
				t.Errorf("unexpected error: %v", err)

				return
			}

			mu.Lock()
			defer mu.Unlock()
			if output.Applied {
				applied++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, applied)

	userRepo.mu.Lock()
	defer userRepo.mu.Unlock()
	assert.Equal(t, 1, userRepo.addRewardsCalls)
	assert.True(t, userRepo.rewards[referrerID].Equal(decimal.NewFromFloat(10.00)))
}
