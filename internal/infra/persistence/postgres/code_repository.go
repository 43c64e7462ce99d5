package postgres

import (
	"context"

	domainerrors "referral/internal/domain/errors"
	"referral/internal/domain/repository"
	"referral/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// codeRepository implements the repository.CodeRepository interface.
// Both mutations are single statements, so concurrent writers are arbitrated
// entirely by the table's primary key and unique index.
type codeRepository struct {
	db *gorm.DB
}

// NewCodeRepository is the constructor for codeRepository.
func NewCodeRepository(db *gorm.DB) repository.CodeRepository {
	return &codeRepository{
		db: db,
	}
}

// Register claims code for userID with a plain INSERT. Which uniqueness rule
// rejected the row tells us whether the code lost a race or the user already
// holds a registration.
func (repo *codeRepository) Register(ctx context.Context, code string, userID uuid.UUID) error {
	codeM := &model.ReferralCodeModel{
		UserID: userID,
		Code:   code,
	}

	if err := repo.db.WithContext(ctx).Create(codeM).Error; err != nil {
		if isUniqueViolationOn(err, "idx_referral_codes_code") {
			return repository.ErrCodeTaken
		}
		if isUniqueConstraintViolation(err) {
			return repository.ErrCodeAlreadyIssued
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to register referral code")
	}

	return nil
}

// Reassign overwrites the user's current code in a single UPDATE. The old
// code is freed by the same statement that claims the new one.
func (repo *codeRepository) Reassign(ctx context.Context, userID uuid.UUID, newCode string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ReferralCodeModel{}).
		Where("user_id = ?", userID).
		Update("code", newCode)
	if result.Error != nil {
		if isUniqueViolationOn(result.Error, "idx_referral_codes_code") {
			return repository.ErrCodeTaken
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to reassign referral code")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// FindOwner resolves a code to its owning user.
func (repo *codeRepository) FindOwner(ctx context.Context, code string) (uuid.UUID, error) {
	var codeM model.ReferralCodeModel

	if err := repo.db.WithContext(ctx).
		Where("code = ?", code).
		First(&codeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, repository.ErrCodeNotFound
		}

		return uuid.Nil, errors.Wrap(err, "failed to find code owner")
	}

	return codeM.UserID, nil
}
