// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"referral/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrUserExists is returned when creating a user whose id is already recorded.
var ErrUserExists = errors.New("user already exists")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID, including the
	// referral-code projection and redeemed codes.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// Create persists a new user projection. Returns ErrUserExists when the
	// id is already recorded.
	Create(ctx context.Context, user *entity.User) error

	// AddRewards atomically increments the user's reward accumulator.
	AddRewards(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) error

	// SetRewards overwrites the user's reward accumulator. Used by the
	// reconciliation pass, which rebuilds totals from the ledger.
	SetRewards(ctx context.Context, userID uuid.UUID, total decimal.Decimal) error

	// SetDeviceToken records the user's push notification target. An empty
	// token clears it.
	SetDeviceToken(ctx context.Context, userID uuid.UUID, token string) error
}
