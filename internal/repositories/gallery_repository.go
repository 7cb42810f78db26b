package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lotus/internal/models/db_models"
)

type GalleryRepository interface {
	Create(ctx context.Context, image *db_models.GalleryImage) (uuid.UUID, error)
	Update(ctx context.Context, image *db_models.GalleryImage) error
	Delete(ctx context.Context, id uuid.UUID) error

	ListMeta(ctx context.Context) ([]db_models.GalleryImage, error)
	GetMeta(ctx context.Context, id string) (*db_models.GalleryImage, error)
	GetWithData(ctx context.Context, id string) (*db_models.GalleryImage, error)
	CountProfilePhotos(ctx context.Context, excludeID uuid.UUID) (int64, error)
}

type galleryRepository struct {
	db *gorm.DB
}

func NewGalleryRepository(db *gorm.DB) GalleryRepository {
	return &galleryRepository{db: db}
}

func (r *galleryRepository) Create(ctx context.Context, image *db_models.GalleryImage) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(image).Error; err != nil {
		return uuid.Nil, err
	}
	return image.ID, nil
}

func (r *galleryRepository) Update(ctx context.Context, image *db_models.GalleryImage) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Omit("data").Save(image)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *galleryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.GalleryImage{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

// ListMeta excludes the binary column so listing the gallery stays
// cheap regardless of image sizes.
func (r *galleryRepository) ListMeta(ctx context.Context) ([]db_models.GalleryImage, error) {
	var images []db_models.GalleryImage
	err := r.db.WithContext(ctx).
		Omit("data").
		Order("created_at desc").
		Find(&images).Error
	if err != nil {
		return nil, err
	}
	return images, nil
}

func (r *galleryRepository) GetMeta(ctx context.Context, id string) (*db_models.GalleryImage, error) {
	var image db_models.GalleryImage
	err := r.db.WithContext(ctx).Omit("data").First(&image, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &image, nil
}

func (r *galleryRepository) GetWithData(ctx context.Context, id string) (*db_models.GalleryImage, error) {
	var image db_models.GalleryImage
	err := r.db.WithContext(ctx).First(&image, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &image, nil
}

func (r *galleryRepository) CountProfilePhotos(ctx context.Context, excludeID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.GalleryImage{}).
		Where("is_profile_photo = ? AND id <> ?", true, excludeID).
		Count(&count).Error
	return count, err
}
