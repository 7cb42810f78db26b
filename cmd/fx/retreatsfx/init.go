package retreatsfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"lotus/internal/repositories"
	"lotus/internal/services"
)

var Module = fx.Provide(
	provideRetreatRepo, provideRetreatService)

func provideRetreatRepo(db *gorm.DB) repositories.RetreatRepository {
	return repositories.NewRetreatRepository(db)
}

func provideRetreatService(
	retreatRepo repositories.RetreatRepository,
	mailService services.IMailService) services.RetreatServiceInterface {
	return services.NewRetreatService(retreatRepo, mailService)
}
