package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lotus/internal/models/db_models"
)

type ClassRepository interface {
	Create(ctx context.Context, class *db_models.ScheduleClass) (uuid.UUID, error)
	Update(ctx context.Context, class *db_models.ScheduleClass) error
	Delete(ctx context.Context, id uuid.UUID) error

	GetByID(ctx context.Context, id string) (*db_models.ScheduleClass, error)
	ListAll(ctx context.Context) ([]db_models.ScheduleClass, error)
	ListByDay(ctx context.Context, dayOfWeek int) ([]db_models.ScheduleClass, error)
}

type classRepository struct {
	db *gorm.DB
}

func NewClassRepository(db *gorm.DB) ClassRepository {
	return &classRepository{db: db}
}

func (r *classRepository) Create(ctx context.Context, class *db_models.ScheduleClass) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(class).Error; err != nil {
		return uuid.Nil, err
	}
	return class.ID, nil
}

func (r *classRepository) Update(ctx context.Context, class *db_models.ScheduleClass) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Save(class)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *classRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.ScheduleClass{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (r *classRepository) GetByID(ctx context.Context, id string) (*db_models.ScheduleClass, error) {
	var class db_models.ScheduleClass
	err := r.db.WithContext(ctx).First(&class, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &class, nil
}

// ListAll returns every class unfiltered; the weekly grid does its own
// day/time bucketing client-side of the repository.
func (r *classRepository) ListAll(ctx context.Context) ([]db_models.ScheduleClass, error) {
	var classes []db_models.ScheduleClass
	err := r.db.WithContext(ctx).
		Order("day_of_week, start_time").
		Find(&classes).Error
	if err != nil {
		return nil, err
	}
	return classes, nil
}

func (r *classRepository) ListByDay(ctx context.Context, dayOfWeek int) ([]db_models.ScheduleClass, error) {
	var classes []db_models.ScheduleClass
	err := r.db.WithContext(ctx).
		Where("day_of_week = ?", dayOfWeek).
		Order("start_time").
		Find(&classes).Error
	if err != nil {
		return nil, err
	}
	return classes, nil
}
