package reward

import (
	"testing"

	domainerrors "referral/internal/domain/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute(t *testing.T) {
	t.Parallel()

	fivePercent := decimal.NewFromFloat(0.05)

	tests := []struct {
		name         string
		amount       string
		wantReward   string
		wantDiscount string
	}{
		{name: "round purchase", amount: "100", wantReward: "5", wantDiscount: "5"},
		{name: "two hundred", amount: "200.00", wantReward: "10", wantDiscount: "10"},
		{name: "rounds half up", amount: "33.33", wantReward: "1.67", wantDiscount: "1.67"},
		{name: "exact half rounds up", amount: "10.10", wantReward: "0.51", wantDiscount: "0.51"},
		{name: "sub-cent purchase", amount: "0.01", wantReward: "0", wantDiscount: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			amount := decimal.RequireFromString(tt.amount)

			reward, discount, err := Compute(amount, fivePercent, fivePercent)
			require.NoError(t, err)
			assert.True(t, reward.Equal(decimal.RequireFromString(tt.wantReward)),
				"reward = %s, want %s", reward, tt.wantReward)
			assert.True(t, discount.Equal(decimal.RequireFromString(tt.wantDiscount)),
				"discount = %s, want %s", discount, tt.wantDiscount)
		})
	}
}

func TestCompute_AsymmetricRates(t *testing.T) {
	t.Parallel()

	reward, discount, err := Compute(
		decimal.NewFromInt(100),
		decimal.NewFromFloat(0.10),
		decimal.NewFromFloat(0.05),
	)
	require.NoError(t, err)
	assert.True(t, reward.Equal(decimal.NewFromInt(10)))
	assert.True(t, discount.Equal(decimal.NewFromInt(5)))
}

func TestCompute_InvalidAmount(t *testing.T) {
	t.Parallel()

	referrerRate, referredRate := DefaultRates()

	for _, amount := range []string{"0", "-1", "-33.33"} {
		_, _, err := Compute(decimal.RequireFromString(amount), referrerRate, referredRate)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidAmount, "amount %s", amount)
	}
}

func TestCompute_Idempotent(t *testing.T) {
	t.Parallel()

	referrerRate, referredRate := DefaultRates()
	amount := decimal.RequireFromString("149.99")

	firstReward, firstDiscount, err := Compute(amount, referrerRate, referredRate)
	require.NoError(t, err)

	secondReward, secondDiscount, err := Compute(amount, referrerRate, referredRate)
	require.NoError(t, err)

	assert.True(t, firstReward.Equal(secondReward))
	assert.True(t, firstDiscount.Equal(secondDiscount))
}
