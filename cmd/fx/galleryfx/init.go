package galleryfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"lotus/internal/repositories"
	"lotus/internal/services"
)

var Module = fx.Provide(
	provideGalleryRepo, provideGalleryService)

func provideGalleryRepo(db *gorm.DB) repositories.GalleryRepository {
	return repositories.NewGalleryRepository(db)
}

func provideGalleryService(galleryRepo repositories.GalleryRepository) services.GalleryServiceInterface {
	return services.NewGalleryService(galleryRepo)
}
