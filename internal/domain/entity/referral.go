package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReferralStatus is the lifecycle state of a referral relationship.
type ReferralStatus string

const (
	// ReferralStatusPending marks an entry created at signup that has not yet
	// seen a qualifying purchase.
	ReferralStatusPending ReferralStatus = "pending"

	// ReferralStatusCompleted marks an entry whose referred user made their
	// first qualifying purchase; rewards have been computed and stored.
	ReferralStatusCompleted ReferralStatus = "completed"
)

// ReferralEntry records one referrer -> referred relationship and its
// completion state. Entries are created pending at signup, complete exactly
// once on the first qualifying purchase, and are never deleted.
type ReferralEntry struct {
	ID             uuid.UUID
	ReferrerUserID uuid.UUID
	ReferredUserID uuid.UUID
	CodeUsed       string // The referral code redeemed at signup.
	Status         ReferralStatus

	// RewardAmount and DiscountAmount are zero until completion.
	RewardAmount   decimal.Decimal
	DiscountAmount decimal.Decimal

	CreatedAt   time.Time
	CompletedAt *time.Time // Set only on the pending -> completed transition.
}

// Completed reports whether the entry has fired.
func (e *ReferralEntry) Completed() bool {
	return e.Status == ReferralStatusCompleted
}

// ReferrerRewardSum is one row of the reconciliation aggregate: the total
// reward a referrer has earned across all completed entries.
type ReferrerRewardSum struct {
	ReferrerUserID uuid.UUID
	Total          decimal.Decimal
}
