package postgres

import (
	"context"
	"time"

	"referral/internal/domain/entity"
	domainerrors "referral/internal/domain/errors"
	"referral/internal/domain/repository"
	"referral/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// referralRepository implements the repository.ReferralRepository interface.
type referralRepository struct {
	db *gorm.DB
}

// NewReferralRepository is the constructor for referralRepository.
func NewReferralRepository(db *gorm.DB) repository.ReferralRepository {
	return &referralRepository{
		db: db,
	}
}

// CreatePending inserts a new pending entry. The unique index on
// referred_user_id arbitrates concurrent signups for the same user.
func (repo *referralRepository) CreatePending(ctx context.Context, entry *entity.ReferralEntry) error {
	entryM := fromReferralEntryDomain(entry)
	entryM.Status = string(entity.ReferralStatusPending)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrAlreadyReferred
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create referral entry")
	}

	entry.ID = entryM.ID
	entry.Status = entity.ReferralStatusPending
	entry.CreatedAt = entryM.CreatedAt

	return nil
}

// CompleteFirstPending fires the pending -> completed transition with a
// guarded UPDATE. RowsAffected == 0 means there was nothing pending, either
// because the user was never referred or because a concurrent completion
// already won.
func (repo *referralRepository) CompleteFirstPending(ctx context.Context, referredUserID uuid.UUID, reward, discount decimal.Decimal, completedAt time.Time) (*entity.ReferralEntry, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ReferralEntryModel{}).
		Where("referred_user_id = ? AND status = ?", referredUserID, string(entity.ReferralStatusPending)).
		Updates(map[string]any{
			"status":          string(entity.ReferralStatusCompleted),
			"reward_amount":   reward,
			"discount_amount": discount,
			"completed_at":    completedAt,
		})
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to complete referral entry")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrNoPendingEntry
	}

	var entryM model.ReferralEntryModel
	if err := repo.db.WithContext(ctx).
		Where("referred_user_id = ?", referredUserID).
		First(&entryM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to reload completed referral entry")
	}

	return toReferralEntryDomain(&entryM), nil
}

// FindByReferred retrieves the entry where the user is the referred party.
func (repo *referralRepository) FindByReferred(ctx context.Context, referredUserID uuid.UUID) (*entity.ReferralEntry, error) {
	var entryM model.ReferralEntryModel

	if err := repo.db.WithContext(ctx).
		Where("referred_user_id = ?", referredUserID).
		First(&entryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEntryNotFound
		}

		return nil, errors.Wrap(err, "failed to find referral entry by referred user")
	}

	return toReferralEntryDomain(&entryM), nil
}

// ListByReferrer retrieves all entries where the user is the referrer.
func (repo *referralRepository) ListByReferrer(ctx context.Context, referrerUserID uuid.UUID) ([]*entity.ReferralEntry, error) {
	var entryModels []*model.ReferralEntryModel

	if err := repo.db.WithContext(ctx).
		Where("referrer_user_id = ?", referrerUserID).
		Order("created_at DESC").
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list referral entries by referrer")
	}

	entries := make([]*entity.ReferralEntry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, toReferralEntryDomain(entryM))
	}

	return entries, nil
}

// SumCompletedRewards aggregates reward totals per referrer over completed entries.
func (repo *referralRepository) SumCompletedRewards(ctx context.Context) ([]*entity.ReferrerRewardSum, error) {
	var rows []struct {
		ReferrerUserID uuid.UUID
		Total          decimal.Decimal
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.ReferralEntryModel{}).
		Select("referrer_user_id, SUM(reward_amount) AS total").
		Where("status = ?", string(entity.ReferralStatusCompleted)).
		Group("referrer_user_id").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to sum completed rewards")
	}

	sums := make([]*entity.ReferrerRewardSum, 0, len(rows))
	for _, row := range rows {
		sums = append(sums, &entity.ReferrerRewardSum{
			ReferrerUserID: row.ReferrerUserID,
			Total:          row.Total,
		})
	}

	return sums, nil
}

// --- Mapper Functions ---

// toReferralEntryDomain converts a GORM ReferralEntryModel to a domain ReferralEntry.
func toReferralEntryDomain(data *model.ReferralEntryModel) *entity.ReferralEntry {
	if data == nil {
		return nil
	}

	return &entity.ReferralEntry{
		ID:             data.ID,
		ReferrerUserID: data.ReferrerUserID,
		ReferredUserID: data.ReferredUserID,
		CodeUsed:       data.CodeUsed,
		Status:         entity.ReferralStatus(data.Status),
		RewardAmount:   data.RewardAmount,
		DiscountAmount: data.DiscountAmount,
		CreatedAt:      data.CreatedAt,
		CompletedAt:    data.CompletedAt,
	}
}

// fromReferralEntryDomain converts a domain ReferralEntry to a GORM model.
func fromReferralEntryDomain(data *entity.ReferralEntry) *model.ReferralEntryModel {
	if data == nil {
		return nil
	}

	return &model.ReferralEntryModel{
		ID:             data.ID,
		ReferrerUserID: data.ReferrerUserID,
		ReferredUserID: data.ReferredUserID,
		CodeUsed:       data.CodeUsed,
		Status:         string(data.Status),
		RewardAmount:   data.RewardAmount,
		DiscountAmount: data.DiscountAmount,
		CompletedAt:    data.CompletedAt,
	}
}
