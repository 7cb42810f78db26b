package settingsfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"lotus/internal/repositories"
	"lotus/internal/services"
)

var Module = fx.Provide(
	provideSettingsRepo, provideSettingsService)

func provideSettingsRepo(db *gorm.DB) repositories.SettingsRepository {
	return repositories.NewSettingsRepository(db)
}

func provideSettingsService(
	settingsRepo repositories.SettingsRepository,
	gallery services.GalleryServiceInterface,
	cache services.PublicCache) services.SettingsServiceInterface {
	return services.NewSettingsService(settingsRepo, gallery, cache)
}
