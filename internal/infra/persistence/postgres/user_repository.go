package postgres

import (
	"context"

	"referral/internal/domain/entity"
	domainerrors "referral/internal/domain/errors"
	"referral/internal/domain/repository"
	"referral/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a single user by their unique ID, preloading the
// referral-code projection and the code the user redeemed at signup.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("ReferralCode").
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	user := toUserDomain(&userM)

	// The codes this user redeemed as the referred party live in the ledger.
	var redeemed []string
	if err := repo.db.WithContext(ctx).
		Model(&model.ReferralEntryModel{}).
		Where("referred_user_id = ?", id).
		Pluck("code_used", &redeemed).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load redeemed codes")
	}
	user.UsedReferralCodes = redeemed

	return user, nil
}

// Create persists a new user projection.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrUserExists
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the entity with generated values
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// AddRewards atomically increments the user's reward accumulator.
func (repo *userRepository) AddRewards(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Update("referral_rewards", gorm.Expr("referral_rewards + ?", amount))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to add rewards")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// SetRewards overwrites the user's reward accumulator.
func (repo *userRepository) SetRewards(ctx context.Context, userID uuid.UUID, total decimal.Decimal) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Update("referral_rewards", total)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to set rewards")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// SetDeviceToken records the user's push notification target.
func (repo *userRepository) SetDeviceToken(ctx context.Context, userID uuid.UUID, token string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Update("device_token", token)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to set device token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	user := &entity.User{
		ID:              data.ID,
		Name:            data.Name,
		ReferralRewards: data.ReferralRewards,
		DeviceToken:     data.DeviceToken,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
	if data.ReferralCode != nil {
		user.ReferralCode = data.ReferralCode.Code
	}

	return user
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
// The code and ledger projections are owned by their own repositories and are
// never written through the user row.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:              data.ID,
		Name:            data.Name,
		ReferralRewards: data.ReferralRewards,
		DeviceToken:     data.DeviceToken,
	}
}
