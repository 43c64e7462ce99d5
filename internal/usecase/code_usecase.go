package usecase

import (
	"context"

	"github.com/google/uuid"
)

// CodeLookupOutput resolves a referral code to its owner.
type CodeLookupOutput struct {
	Code        string
	OwnerUserID uuid.UUID
}

// CodeUsecase defines code registry operations exposed to the delivery layer.
type CodeUsecase interface {
	// IssueUniqueCode generates and registers a fresh code for the user,
	// retrying on collisions up to the configured attempt bound.
	IssueUniqueCode(ctx context.Context, userID uuid.UUID) (string, error)

	// ReassignCode replaces the user's code with a caller-chosen one. The
	// privileged path; only admins may reach it.
	ReassignCode(ctx context.Context, userID uuid.UUID, newCode string) error

	// Lookup resolves a code to its owning user.
	Lookup(ctx context.Context, code string) (*CodeLookupOutput, error)

	// GenerateCodeQR renders the user's referral code as a shareable QR image.
	GenerateCodeQR(ctx context.Context, userID uuid.UUID) ([]byte, error)
}
