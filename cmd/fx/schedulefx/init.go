package schedulefx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"lotus/internal/repositories"
	"lotus/internal/services"
)

var Module = fx.Provide(
	provideClassRepo, provideTemplateRepo, provideScheduleService, provideCalendarService)

func provideClassRepo(db *gorm.DB) repositories.ClassRepository {
	return repositories.NewClassRepository(db)
}

func provideTemplateRepo(db *gorm.DB) repositories.TemplateRepository {
	return repositories.NewTemplateRepository(db)
}

func provideScheduleService(
	classRepo repositories.ClassRepository,
	templateRepo repositories.TemplateRepository,
	cache services.PublicCache) services.ScheduleServiceInterface {
	return services.NewScheduleService(classRepo, templateRepo, cache)
}

func provideCalendarService(classRepo repositories.ClassRepository) services.CalendarServiceInterface {
	return services.NewCalendarService(classRepo)
}
