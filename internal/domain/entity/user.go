// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// User is the account-level view the referral engine keeps of a person.
// Accounts themselves live in an upstream identity service; this projection
// carries only what reward bookkeeping needs.
type User struct {
	ID              uuid.UUID       // The upstream account identifier.
	Name            string          // Display name, informational only.
	ReferralCode    string          // Read-through projection of the code registry mapping; the registry is the source of truth.
	ReferralRewards decimal.Decimal // Accumulated cash rewards earned as a referrer.
	DeviceToken     string          // Optional FCM token for reward push notifications.

	// UsedReferralCodes lists the codes this user has redeemed as the
	// referred party. Derived from the ledger on load; the ledger's
	// one-entry-per-referred-user rule caps it at a single element.
	UsedReferralCodes []string

	CreatedAt time.Time
	UpdatedAt time.Time
}
