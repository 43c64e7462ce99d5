package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrCodeTaken is returned when a conditional registration loses the race:
// another writer committed the same code first.
var ErrCodeTaken = errors.New("referral code already registered")

// ErrCodeNotFound is returned when a code has no live owner.
var ErrCodeNotFound = errors.New("referral code not found")

// ErrCodeAlreadyIssued is returned when the user already holds a code and a
// second initial registration is attempted.
var ErrCodeAlreadyIssued = errors.New("user already holds a referral code")

// CodeRepository owns the code -> user mapping. Every mutation is a single
// atomic conditional write; callers never observe a check-then-write window.
type CodeRepository interface {
	// Register claims code for userID if and only if the code is unowned and
	// the user holds no code yet. A lost race on the code surfaces as
	// ErrCodeTaken; a user that already holds a code surfaces as
	// ErrCodeAlreadyIssued.
	Register(ctx context.Context, code string, userID uuid.UUID) error

	// Reassign overwrites the user's current code with newCode. The old code
	// becomes free immediately. ErrCodeTaken when newCode is owned by a
	// different user, ErrUserNotFound when the user holds no registration.
	Reassign(ctx context.Context, userID uuid.UUID, newCode string) error

	// FindOwner resolves a code to its owning user, or ErrCodeNotFound.
	FindOwner(ctx context.Context, code string) (uuid.UUID, error)
}
