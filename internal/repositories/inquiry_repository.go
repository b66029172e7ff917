package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vitalis/internal/models/db_models"
)

type InquiryRepository interface {
	Insert(ctx context.Context, inquiry *db_models.MembershipInquiry) error
	FindById(ctx context.Context, id uuid.UUID) (*db_models.MembershipInquiry, error)
	ListAll(ctx context.Context) ([]db_models.MembershipInquiry, error)
	Save(ctx context.Context, inquiry *db_models.MembershipInquiry) error
}

type inquiryRepository struct {
	db *gorm.DB
}

func NewInquiryRepository(db *gorm.DB) InquiryRepository {
	return &inquiryRepository{db: db}
}

func (r *inquiryRepository) Insert(ctx context.Context, inquiry *db_models.MembershipInquiry) error {
	return r.db.WithContext(ctx).Create(inquiry).Error
}

func (r *inquiryRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.MembershipInquiry, error) {
	var inquiry db_models.MembershipInquiry
	err := r.db.WithContext(ctx).First(&inquiry, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &inquiry, nil
}

func (r *inquiryRepository) ListAll(ctx context.Context) ([]db_models.MembershipInquiry, error) {
	var inquiries []db_models.MembershipInquiry
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&inquiries).Error
	return inquiries, err
}

func (r *inquiryRepository) Save(ctx context.Context, inquiry *db_models.MembershipInquiry) error {
	return r.db.WithContext(ctx).Save(inquiry).Error
}
