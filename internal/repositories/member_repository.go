package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vitalis/internal/models/db_models"
)

type MemberRepository interface {
	Insert(ctx context.Context, member *db_models.Member) error
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Member, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Member, error)
	FindActiveByReferralCode(ctx context.Context, code string) (*db_models.Member, error)
	ReferralCodeExists(ctx context.Context, code string) (bool, error)
	ListAll(ctx context.Context) ([]db_models.Member, error)
	ListExpired(ctx context.Context, now time.Time) ([]db_models.Member, error)
	HardDelete(ctx context.Context, id uuid.UUID) error
}

type memberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) Insert(ctx context.Context, member *db_models.Member) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *memberRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Member, error) {
	var member db_models.Member
	err := r.db.WithContext(ctx).First(&member, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &member, nil
}

func (r *memberRepository) FindByEmail(ctx context.Context, email string) (*db_models.Member, error) {
	var member db_models.Member
	err := r.db.WithContext(ctx).First(&member, "email = ?", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &member, nil
}

// FindActiveByReferralCode matches case-insensitively on a trimmed code and
// only considers active members; referrer credit never goes to pending or
// expired accounts.
func (r *memberRepository) FindActiveByReferralCode(ctx context.Context, code string) (*db_models.Member, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))

	var member db_models.Member
	err := r.db.WithContext(ctx).
		Where("UPPER(referral_code) = ? AND status = ?", normalized, db_models.MemberStatusActive).
		First(&member).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &member, nil
}

func (r *memberRepository) ReferralCodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Member{}).
		Where("referral_code = ?", code).
		Count(&count).Error
	return count > 0, err
}

func (r *memberRepository) ListAll(ctx context.Context) ([]db_models.Member, error) {
	var members []db_models.Member
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&members).Error
	return members, err
}

// ListExpired recomputes the expired set on every read; no background job
// transitions member rows.
func (r *memberRepository) ListExpired(ctx context.Context, now time.Time) ([]db_models.Member, error) {
	var members []db_models.Member
	err := r.db.WithContext(ctx).
		Where("status = ? OR (membership_expiry_date IS NOT NULL AND membership_expiry_date < ?)",
			db_models.MemberStatusExpired, now.Unix()).
		Order("membership_expiry_date ASC").
		Find(&members).Error
	return members, err
}

func (r *memberRepository) HardDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&db_models.Member{}, "id = ?", id).Error
}
