// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"referral/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new user with the
// referral engine. ReferralCode is optional; empty means an organic signup.
type SignupInput struct {
	UserID       uuid.UUID
	Name         string
	ReferralCode string
}

// QualifyingPurchaseInput defines the completion notification for a user's
// first qualifying purchase.
type QualifyingPurchaseInput struct {
	UserID uuid.UUID
	Amount decimal.Decimal
}

// --- Output DTOs ---

// SignupOutput returns the new user's own referral code and whether the
// redeemed code produced a pending referral.
type SignupOutput struct {
	User               *entity.User
	ReferralCode       string
	ReferralAttributed bool
}

// QualifyingPurchaseOutput reports the outcome of a completion attempt.
// Applied is false when the user had no pending referral, which is the
// normal case for organic users and repeat notifications.
type QualifyingPurchaseOutput struct {
	Applied        bool
	RewardAmount   decimal.Decimal
	DiscountAmount decimal.Decimal
}

// ReferralSummaryOutput aggregates a user's referral activity for display.
type ReferralSummaryOutput struct {
	User    *entity.User
	Entries []*entity.ReferralEntry
}

// ReconcileOutput reports how many reward accumulators the reconciliation
// pass rewrote.
type ReconcileOutput struct {
	UpdatedUsers int
}

// ReferralUsecase defines the interface for referral-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type ReferralUsecase interface {
	// Signup registers a user projection, issues them a unique referral code
	// and, when a valid foreign code was supplied, records a pending referral.
	// Referral-side failures never fail the signup itself.
	Signup(ctx context.Context, input SignupInput) (*SignupOutput, error)

	// CompleteQualifyingPurchase fires the user's pending referral, if any.
	// Safe to call on every purchase notification; only the first one for a
	// referred user has an effect.
	CompleteQualifyingPurchase(ctx context.Context, input QualifyingPurchaseInput) (*QualifyingPurchaseOutput, error)

	// GetReferralSummary returns the user's projection plus every ledger
	// entry where they are the referrer.
	GetReferralSummary(ctx context.Context, userID uuid.UUID) (*ReferralSummaryOutput, error)

	// ReconcileRewards rebuilds every reward accumulator from the completed
	// entries in the ledger. Idempotent.
	ReconcileRewards(ctx context.Context) (*ReconcileOutput, error)

	// RegisterDeviceToken records where to push the user's reward
	// notifications. An empty token clears the registration.
	RegisterDeviceToken(ctx context.Context, userID uuid.UUID, token string) error
}
