package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lotus/internal/models/db_models"
)

type TemplateRepository interface {
	Create(ctx context.Context, template *db_models.ClassTemplate) (uuid.UUID, error)
	Update(ctx context.Context, template *db_models.ClassTemplate) error
	Delete(ctx context.Context, id uuid.UUID) error

	GetByID(ctx context.Context, id string) (*db_models.ClassTemplate, error)
	ListAll(ctx context.Context) ([]db_models.ClassTemplate, error)
}

type templateRepository struct {
	db *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) TemplateRepository {
	return &templateRepository{db: db}
}

func (r *templateRepository) Create(ctx context.Context, template *db_models.ClassTemplate) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(template).Error; err != nil {
		return uuid.Nil, err
	}
	return template.ID, nil
}

func (r *templateRepository) Update(ctx context.Context, template *db_models.ClassTemplate) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Save(template)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *templateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.ClassTemplate{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (r *templateRepository) GetByID(ctx context.Context, id string) (*db_models.ClassTemplate, error) {
	var template db_models.ClassTemplate
	err := r.db.WithContext(ctx).First(&template, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &template, nil
}

func (r *templateRepository) ListAll(ctx context.Context) ([]db_models.ClassTemplate, error) {
	var templates []db_models.ClassTemplate
	err := r.db.WithContext(ctx).Order("name").Find(&templates).Error
	if err != nil {
		return nil, err
	}
	return templates, nil
}
