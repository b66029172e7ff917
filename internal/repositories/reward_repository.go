package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vitalis/internal/models/db_models"
)

type RewardRepository interface {
	Insert(ctx context.Context, reward *db_models.ReferralReward) error
	FindById(ctx context.Context, id uuid.UUID) (*db_models.ReferralReward, error)
	ListByMember(ctx context.Context, memberID uuid.UUID) ([]db_models.ReferralReward, error)
	Save(ctx context.Context, reward *db_models.ReferralReward) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type rewardRepository struct {
	db *gorm.DB
}

func NewRewardRepository(db *gorm.DB) RewardRepository {
	return &rewardRepository{db: db}
}

func (r *rewardRepository) Insert(ctx context.Context, reward *db_models.ReferralReward) error {
	return r.db.WithContext(ctx).Create(reward).Error
}

func (r *rewardRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.ReferralReward, error) {
	var reward db_models.ReferralReward
	err := r.db.WithContext(ctx).First(&reward, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &reward, nil
}

func (r *rewardRepository) ListByMember(ctx context.Context, memberID uuid.UUID) ([]db_models.ReferralReward, error) {
	var rewards []db_models.ReferralReward
	err := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("created_at DESC").
		Find(&rewards).Error
	return rewards, err
}

func (r *rewardRepository) Save(ctx context.Context, reward *db_models.ReferralReward) error {
	return r.db.WithContext(ctx).Save(reward).Error
}

func (r *rewardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.ReferralReward{}, "id = ?", id).Error
}
