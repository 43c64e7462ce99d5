package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name            string          `gorm:"type:varchar(100)"`
	ReferralRewards decimal.Decimal `gorm:"type:numeric(20,2);not null;default:0"`
	DeviceToken     string          `gorm:"type:varchar(512)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	ReferralCode *ReferralCodeModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
