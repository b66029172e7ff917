package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vitalis/internal/models/db_models"
)

type BenefitRepository interface {
	InsertBenefit(ctx context.Context, benefit *db_models.MembershipBenefit) error
	FindBenefitById(ctx context.Context, id uuid.UUID) (*db_models.MembershipBenefit, error)
	ListBenefitsByTier(ctx context.Context, tier db_models.MembershipTier) ([]db_models.MembershipBenefit, error)
	DeleteBenefit(ctx context.Context, id uuid.UUID) error

	FindClaim(ctx context.Context, memberID, benefitID uuid.UUID, sessionNumber int) (*db_models.BenefitClaim, error)
	InsertClaim(ctx context.Context, claim *db_models.BenefitClaim) error
	DeleteClaim(ctx context.Context, id uuid.UUID) error
	ListClaims(ctx context.Context, memberID uuid.UUID) ([]db_models.BenefitClaim, error)
	CountClaims(ctx context.Context, memberID, benefitID uuid.UUID) (int64, error)
}

type benefitRepository struct {
	db *gorm.DB
}

func NewBenefitRepository(db *gorm.DB) BenefitRepository {
	return &benefitRepository{db: db}
}

func (r *benefitRepository) InsertBenefit(ctx context.Context, benefit *db_models.MembershipBenefit) error {
	return r.db.WithContext(ctx).Create(benefit).Error
}

func (r *benefitRepository) FindBenefitById(ctx context.Context, id uuid.UUID) (*db_models.MembershipBenefit, error) {
	var benefit db_models.MembershipBenefit
	err := r.db.WithContext(ctx).First(&benefit, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &benefit, nil
}

func (r *benefitRepository) ListBenefitsByTier(ctx context.Context, tier db_models.MembershipTier) ([]db_models.MembershipBenefit, error) {
	var benefits []db_models.MembershipBenefit
	err := r.db.WithContext(ctx).
		Where("tier = ?", tier).
		Order("name ASC").
		Find(&benefits).Error
	return benefits, err
}

func (r *benefitRepository) DeleteBenefit(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.MembershipBenefit{}, "id = ?", id).Error
}

func (r *benefitRepository) FindClaim(ctx context.Context, memberID, benefitID uuid.UUID, sessionNumber int) (*db_models.BenefitClaim, error) {
	var claim db_models.BenefitClaim
	err := r.db.WithContext(ctx).
		Where("member_id = ? AND benefit_id = ? AND session_number = ?", memberID, benefitID, sessionNumber).
		First(&claim).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &claim, nil
}

func (r *benefitRepository) InsertClaim(ctx context.Context, claim *db_models.BenefitClaim) error {
	return r.db.WithContext(ctx).Create(claim).Error
}

func (r *benefitRepository) DeleteClaim(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.BenefitClaim{}, "id = ?", id).Error
}

func (r *benefitRepository) ListClaims(ctx context.Context, memberID uuid.UUID) ([]db_models.BenefitClaim, error) {
	var claims []db_models.BenefitClaim
	err := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("session_number ASC").
		Find(&claims).Error
	return claims, err
}

func (r *benefitRepository) CountClaims(ctx context.Context, memberID, benefitID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.BenefitClaim{}).
		Where("member_id = ? AND benefit_id = ?", memberID, benefitID).
		Count(&count).Error
	return count, err
}
