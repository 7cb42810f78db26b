package controllersfx

import (
	"go.uber.org/fx"

	"lotus/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewSettingsController),
	fx.Provide(controllers.NewGalleryController),
	fx.Provide(controllers.NewScheduleController),
	fx.Provide(controllers.NewRetreatsController),
	fx.Provide(controllers.NewAccountController))
