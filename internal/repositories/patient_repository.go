package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vitalis/internal/models/db_models"
)

type PatientRepository interface {
	Insert(ctx context.Context, record *db_models.PatientRecord) error
	FindById(ctx context.Context, id uuid.UUID) (*db_models.PatientRecord, error)
	FindByEmail(ctx context.Context, email string) (*db_models.PatientRecord, error)
	ListAll(ctx context.Context) ([]db_models.PatientRecord, error)
	Save(ctx context.Context, record *db_models.PatientRecord) error
}

type patientRepository struct {
	db *gorm.DB
}

func NewPatientRepository(db *gorm.DB) PatientRepository {
	return &patientRepository{db: db}
}

func (r *patientRepository) Insert(ctx context.Context, record *db_models.PatientRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *patientRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.PatientRecord, error) {
	var record db_models.PatientRecord
	err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &record, nil
}

func (r *patientRepository) FindByEmail(ctx context.Context, email string) (*db_models.PatientRecord, error) {
	var record db_models.PatientRecord
	err := r.db.WithContext(ctx).First(&record, "email = ?", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &record, nil
}

func (r *patientRepository) ListAll(ctx context.Context) ([]db_models.PatientRecord, error) {
	var records []db_models.PatientRecord
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&records).Error
	return records, err
}

func (r *patientRepository) Save(ctx context.Context, record *db_models.PatientRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}
