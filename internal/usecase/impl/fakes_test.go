package impl

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"referral/internal/domain/entity"
	"referral/internal/domain/repository"
	"referral/internal/domain/service"
	"referral/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// fakeCodeRepository is a mutex-guarded in-memory CodeRepository. It mirrors
// the conditional-write semantics of the real store so concurrency tests
// exercise the retry loop against genuine races.
type fakeCodeRepository struct {
	mu      sync.Mutex
	byCode  map[string]uuid.UUID
	byOwner map[uuid.UUID]string
}

func newFakeCodeRepository() *fakeCodeRepository {
	return &fakeCodeRepository{
		byCode:  make(map[string]uuid.UUID),
		byOwner: make(map[uuid.UUID]string),
	}
}

func (r *fakeCodeRepository) Register(_ context.Context, code string, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byOwner[userID]; ok {
		return repository.ErrCodeAlreadyIssued
	}
	if _, ok := r.byCode[code]; ok {
		return repository.ErrCodeTaken
	}

	r.byCode[code] = userID
	r.byOwner[userID] = code

	return nil
}

func (r *fakeCodeRepository) Reassign(_ context.Context, userID uuid.UUID, newCode string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	oldCode, ok := r.byOwner[userID]
	if !ok {
		return repository.ErrUserNotFound
	}
	if owner, taken := r.byCode[newCode]; taken && owner != userID {
		return repository.ErrCodeTaken
	}

	delete(r.byCode, oldCode)
	r.byCode[newCode] = userID
	r.byOwner[userID] = newCode

	return nil
}

func (r *fakeCodeRepository) FindOwner(_ context.Context, code string) (uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	owner, ok := r.byCode[code]
	if !ok {
		return uuid.Nil, repository.ErrCodeNotFound
	}

	return owner, nil
}

// collidingGenerator draws codes from a small pool so that concurrent issuers
// collide often enough to exercise the retry path.
type collidingGenerator struct {
	mu   sync.Mutex
	rng  *rand.Rand
	pool int
}

func newCollidingGenerator(pool int) *collidingGenerator {
	return &collidingGenerator{
		rng:  rand.New(rand.NewSource(42)),
		pool: pool,
	}
}

func (g *collidingGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	return fmt.Sprintf("CODE%04d", g.rng.Intn(g.pool))
}

// fakeReferralRepository is a mutex-guarded in-memory ReferralRepository with
// the same one-entry-per-referred-user and pending-guard semantics as the
// real store.
type fakeReferralRepository struct {
	mu      sync.Mutex
	entries map[uuid.UUID]*entity.ReferralEntry
}

func newFakeReferralRepository() *fakeReferralRepository {
	return &fakeReferralRepository{entries: make(map[uuid.UUID]*entity.ReferralEntry)}
}

func (r *fakeReferralRepository) CreatePending(_ context.Context, entry *entity.ReferralEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[entry.ReferredUserID]; ok {
		return repository.ErrAlreadyReferred
	}

	entry.ID = uuid.New()
	entry.Status = entity.ReferralStatusPending
	entry.CreatedAt = time.Now().UTC()
	stored := *entry
	r.entries[entry.ReferredUserID] = &stored

	return nil
}

func (r *fakeReferralRepository) CompleteFirstPending(_ context.Context, referredUserID uuid.UUID, reward, discount decimal.Decimal, completedAt time.Time) (*entity.ReferralEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[referredUserID]
	if !ok || entry.Status != entity.ReferralStatusPending {
		return nil, repository.ErrNoPendingEntry
	}

	entry.Status = entity.ReferralStatusCompleted
	entry.RewardAmount = reward
	entry.DiscountAmount = discount
	at := completedAt
	entry.CompletedAt = &at

	result := *entry

	return &result, nil
}

func (r *fakeReferralRepository) FindByReferred(_ context.Context, referredUserID uuid.UUID) (*entity.ReferralEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[referredUserID]
	if !ok {
		return nil, repository.ErrEntryNotFound
	}

	result := *entry

	return &result, nil
}

func (r *fakeReferralRepository) ListByReferrer(_ context.Context, referrerUserID uuid.UUID) ([]*entity.ReferralEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var entries []*entity.ReferralEntry
	for _, entry := range r.entries {
		if entry.ReferrerUserID == referrerUserID {
			result := *entry
			entries = append(entries, &result)
		}
	}

	return entries, nil
}

func (r *fakeReferralRepository) SumCompletedRewards(_ context.Context) ([]*entity.ReferrerRewardSum, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	totals := make(map[uuid.UUID]decimal.Decimal)
	for _, entry := range r.entries {
		if entry.Status == entity.ReferralStatusCompleted {
			totals[entry.ReferrerUserID] = totals[entry.ReferrerUserID].Add(entry.RewardAmount)
		}
	}

	var sums []*entity.ReferrerRewardSum
	for userID, total := range totals {
		sums = append(sums, &entity.ReferrerRewardSum{ReferrerUserID: userID, Total: total})
	}

	return sums, nil
}

// fakeUserRepository tracks reward accumulation; everything else returns a
// bare user projection.
type fakeUserRepository struct {
	mu              sync.Mutex
	rewards         map[uuid.UUID]decimal.Decimal
	addRewardsCalls int
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{rewards: make(map[uuid.UUID]decimal.Decimal)}
}

func (r *fakeUserRepository) Create(_ context.Context, _ *entity.User) error { return nil }

func (r *fakeUserRepository) FindByID(_ context.Context, userID uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return &entity.User{
		ID:              userID,
		Name:            "Fake User",
		ReferralRewards: r.rewards[userID],
	}, nil
}

func (r *fakeUserRepository) AddRewards(_ context.Context, userID uuid.UUID, amount decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rewards[userID] = r.rewards[userID].Add(amount)
	r.addRewardsCalls++

	return nil
}

func (r *fakeUserRepository) SetRewards(_ context.Context, userID uuid.UUID, total decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rewards[userID] = total

	return nil
}

func (r *fakeUserRepository) SetDeviceToken(_ context.Context, _ uuid.UUID, _ string) error {
	return nil
}

// stubCodeIssuer hands out sequential codes so signup tests can run against
// the real service without the full registry wiring.
type stubCodeIssuer struct {
	mu   sync.Mutex
	next int
}

func (s *stubCodeIssuer) IssueUniqueCode(_ context.Context, _ uuid.UUID) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.next++

	return fmt.Sprintf("CODE%05d", s.next), nil
}

func (s *stubCodeIssuer) ReassignCode(context.Context, uuid.UUID, string) error { return nil }

func (s *stubCodeIssuer) Lookup(context.Context, string) (*usecase.CodeLookupOutput, error) {
	return nil, repository.ErrCodeNotFound
}

func (s *stubCodeIssuer) GenerateCodeQR(context.Context, uuid.UUID) ([]byte, error) {
	return nil, nil
}

type noopEventPublisher struct{}

func (noopEventPublisher) PublishReferralCompleted(context.Context, *service.ReferralCompletedEvent) error {
	return nil
}

func (noopEventPublisher) Close() error { return nil }

type noopNotifier struct{}

func (noopNotifier) SendSingleNotification(context.Context, string, string, string, map[string]string) error {
	return nil
}
