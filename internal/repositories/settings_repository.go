package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"lotus/internal/models/db_models"
)

type SettingsRepository interface {
	List(ctx context.Context) ([]db_models.Setting, error)
	GetByKey(ctx context.Context, key string) (*db_models.Setting, error)
	Upsert(ctx context.Context, setting *db_models.Setting) error
}

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) List(ctx context.Context) ([]db_models.Setting, error) {
	var settings []db_models.Setting
	err := r.db.WithContext(ctx).
		Order("category, key").
		Find(&settings).Error
	if err != nil {
		return nil, err
	}
	return settings, nil
}

func (r *settingsRepository) GetByKey(ctx context.Context, key string) (*db_models.Setting, error) {
	var setting db_models.Setting
	err := r.db.WithContext(ctx).First(&setting, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &setting, nil
}

// Upsert updates the row matching setting.Key or creates it. Settings
// are never deleted, so there is no Delete counterpart.
func (r *settingsRepository) Upsert(ctx context.Context, setting *db_models.Setting) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing db_models.Setting
		err := tx.First(&existing, "key = ?", setting.Key).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(setting).Error
		}
		if err != nil {
			return err
		}

		existing.Value = setting.Value
		existing.ValueType = setting.ValueType
		existing.Category = setting.Category
		if setting.Description != "" {
			existing.Description = setting.Description
		}
		if err := tx.Save(&existing).Error; err != nil {
			return err
		}
		setting.ID = existing.ID
		return nil
	})
}
