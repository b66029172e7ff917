package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"vitalis/internal/models/db_models"
)

type SettingsRepository interface {
	Get(ctx context.Context, key string) (*db_models.AdminSetting, error)
	Upsert(ctx context.Context, key, value string) error
}

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Get(ctx context.Context, key string) (*db_models.AdminSetting, error) {
	var setting db_models.AdminSetting
	err := r.db.WithContext(ctx).First(&setting, "key = ?", key).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &setting, nil
}

func (r *settingsRepository) Upsert(ctx context.Context, key, value string) error {
	setting := db_models.AdminSetting{Key: key, Value: value}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&setting).Error
}
