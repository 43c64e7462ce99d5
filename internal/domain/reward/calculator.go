// Package reward contains the pure reward and discount math for completed
// referrals. It holds no state and touches no storage; the ledger guarantees
// it is applied at most once per entry.
package reward

import (
	domainerrors "referral/internal/domain/errors"

	"github.com/shopspring/decimal"
)

const (
	// DefaultReferrerRate is the fraction of the qualifying purchase credited
	// to the referrer as cash reward.
	DefaultReferrerRate = 0.05

	// DefaultReferredRate is the fraction of the qualifying purchase applied
	// as a discount for the referred user.
	DefaultReferredRate = 0.05
)

// currencyExponent is the number of decimal places of the smallest currency unit.
const currencyExponent = 2

// Compute derives the referrer reward and referred-user discount from a
// qualifying purchase amount. Both figures are amount*rate rounded half-up to
// the smallest currency unit. Returns ErrInvalidAmount when the purchase
// amount is not positive.
func Compute(purchaseAmount, referrerRate, referredRate decimal.Decimal) (rewardAmount, discountAmount decimal.Decimal, err error) {
	if !purchaseAmount.IsPositive() {
		return decimal.Zero, decimal.Zero, domainerrors.ErrInvalidAmount.WrapMessage("purchase amount must be greater than zero")
	}

	// decimal.Round is half away from zero, which is half-up for the
	// non-negative amounts in play here.
	rewardAmount = purchaseAmount.Mul(referrerRate).Round(currencyExponent)
	discountAmount = purchaseAmount.Mul(referredRate).Round(currencyExponent)

	return rewardAmount, discountAmount, nil
}

// DefaultRates returns the default policy as decimals.
func DefaultRates() (referrerRate, referredRate decimal.Decimal) {
	return decimal.NewFromFloat(DefaultReferrerRate), decimal.NewFromFloat(DefaultReferredRate)
}
