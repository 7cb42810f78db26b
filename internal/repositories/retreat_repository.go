package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lotus/internal/models/db_models"
)

type RetreatRepository interface {
	Create(ctx context.Context, retreat *db_models.Retreat) (uuid.UUID, error)
	Update(ctx context.Context, retreat *db_models.Retreat) error
	Delete(ctx context.Context, id uuid.UUID) error

	GetByID(ctx context.Context, id string) (*db_models.Retreat, error)
	ListAll(ctx context.Context) ([]db_models.Retreat, error)
	SetFeatured(ctx context.Context, id uuid.UUID, featured bool) error

	CreateRegistration(ctx context.Context, reg *db_models.Registration) (uuid.UUID, error)
	GetRegistration(ctx context.Context, id string) (*db_models.Registration, error)
	UpdateRegistration(ctx context.Context, reg *db_models.Registration) error
	ListRegistrations(ctx context.Context, retreatID string) ([]db_models.Registration, error)
}

type retreatRepository struct {
	db *gorm.DB
}

func NewRetreatRepository(db *gorm.DB) RetreatRepository {
	return &retreatRepository{db: db}
}

func (r *retreatRepository) Create(ctx context.Context, retreat *db_models.Retreat) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(retreat).Error; err != nil {
		return uuid.Nil, err
	}
	return retreat.ID, nil
}

func (r *retreatRepository) Update(ctx context.Context, retreat *db_models.Retreat) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Omit("Registrations").Save(retreat)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *retreatRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.Retreat{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (r *retreatRepository) GetByID(ctx context.Context, id string) (*db_models.Retreat, error) {
	var retreat db_models.Retreat
	err := r.db.WithContext(ctx).First(&retreat, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &retreat, nil
}

// ListAll returns every retreat; upcoming/past is derived by the
// service, not stored or filtered here.
func (r *retreatRepository) ListAll(ctx context.Context) ([]db_models.Retreat, error) {
	var retreats []db_models.Retreat
	err := r.db.WithContext(ctx).Order("start_date").Find(&retreats).Error
	if err != nil {
		return nil, err
	}
	return retreats, nil
}

func (r *retreatRepository) SetFeatured(ctx context.Context, id uuid.UUID, featured bool) error {
	result := r.db.WithContext(ctx).
		Model(&db_models.Retreat{}).
		Where("id = ?", id).
		Update("featured", featured)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *retreatRepository) CreateRegistration(ctx context.Context, reg *db_models.Registration) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(reg).Error; err != nil {
		return uuid.Nil, err
	}
	return reg.ID, nil
}

func (r *retreatRepository) GetRegistration(ctx context.Context, id string) (*db_models.Registration, error) {
	var reg db_models.Registration
	err := r.db.WithContext(ctx).First(&reg, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reg, nil
}

func (r *retreatRepository) UpdateRegistration(ctx context.Context, reg *db_models.Registration) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Save(reg)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *retreatRepository) ListRegistrations(ctx context.Context, retreatID string) ([]db_models.Registration, error) {
	var regs []db_models.Registration
	err := r.db.WithContext(ctx).
		Where("retreat_id = ?", retreatID).
		Order("registration_date").
		Find(&regs).Error
	if err != nil {
		return nil, err
	}
	return regs, nil
}
