package impl

import (
	"io"
	"log/slog"

	"referral/config"
	"referral/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func userWithCode(id uuid.UUID, code string) *entity.User {
	return &entity.User{
		ID:              id,
		Name:            "Test User",
		ReferralCode:    code,
		ReferralRewards: decimal.Zero,
	}
}

func newTestConfig(maxIssueAttempts int) *config.Config {
	return &config.Config{
		Referral: &config.ReferralConfig{
			MaxIssueAttempts: maxIssueAttempts,
			ReferrerRate:     0.05,
			ReferredRate:     0.05,
		},
	}
}
