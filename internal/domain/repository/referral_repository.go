package repository

import (
	"context"
	"errors"
	"time"

	"referral/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrAlreadyReferred is returned when a conditional insert loses to an
// existing entry for the same referred user.
var ErrAlreadyReferred = errors.New("referred user already has a ledger entry")

// ErrNoPendingEntry is returned when a completion finds no entry in the
// pending state for the referred user. This is the normal outcome for
// purchases by non-referred users and for duplicate completion notifications.
var ErrNoPendingEntry = errors.New("no pending referral entry")

// ErrEntryNotFound is returned when an entry lookup matches nothing.
var ErrEntryNotFound = errors.New("referral entry not found")

// ReferralRepository owns ReferralEntry records and the conditional writes
// that guard their lifecycle.
type ReferralRepository interface {
	// CreatePending inserts a new pending entry keyed by the referred user.
	// The insert is conditional on no entry existing for that user: two
	// concurrent signups for the same referred user cannot both succeed, the
	// loser receives ErrAlreadyReferred.
	CreatePending(ctx context.Context, entry *entity.ReferralEntry) error

	// CompleteFirstPending transitions the referred user's entry from pending
	// to completed in a single conditional update guarded on the current
	// state, storing the supplied reward figures and completion time. A
	// caller that loses the race, or finds no pending entry at all, receives
	// ErrNoPendingEntry.
	CompleteFirstPending(ctx context.Context, referredUserID uuid.UUID, reward, discount decimal.Decimal, completedAt time.Time) (*entity.ReferralEntry, error)

	// FindByReferred retrieves the (at most one) entry where the user is the
	// referred party, or ErrEntryNotFound.
	FindByReferred(ctx context.Context, referredUserID uuid.UUID) (*entity.ReferralEntry, error)

	// ListByReferrer retrieves all entries where the user is the referrer,
	// newest first.
	ListByReferrer(ctx context.Context, referrerUserID uuid.UUID) ([]*entity.ReferralEntry, error)

	// SumCompletedRewards aggregates reward_amount over completed entries,
	// grouped by referrer. Feeds the idempotent reconciliation pass.
	SumCompletedRewards(ctx context.Context) ([]*entity.ReferrerRewardSum, error)
}
