package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReferralCodeModel mirrors the 'referral_codes' table. One code per user;
// the unique index on Code is what arbitrates concurrent registrations.
type ReferralCodeModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code      string    `gorm:"type:varchar(16);not null;uniqueIndex:idx_referral_codes_code"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReferralCodeModel) TableName() string {
	return "referral_codes"
}

// ReferralEntryModel mirrors the 'referral_entries' table. The unique index on
// ReferredUserID enforces at most one referral per referred user for life.
type ReferralEntryModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ReferrerUserID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ReferredUserID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_referral_entries_referred"`
	CodeUsed       string          `gorm:"type:varchar(16);not null"`
	Status         string          `gorm:"type:varchar(20);not null;index"`
	RewardAmount   decimal.Decimal `gorm:"type:numeric(20,2);not null;default:0"`
	DiscountAmount decimal.Decimal `gorm:"type:numeric(20,2);not null;default:0"`
	CreatedAt      time.Time
	CompletedAt    *time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReferralEntryModel) TableName() string {
	return "referral_entries"
}
