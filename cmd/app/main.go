package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"lotus/cmd/fx/accountfx"
	"lotus/cmd/fx/cachefx"
	"lotus/cmd/fx/controllersfx"
	"lotus/cmd/fx/dbfx"
	"lotus/cmd/fx/galleryfx"
	"lotus/cmd/fx/mailfx"
	"lotus/cmd/fx/retreatsfx"
	"lotus/cmd/fx/schedulefx"
	"lotus/cmd/fx/settingsfx"
	"lotus/internal/api/controllers"
	"lotus/internal/infra"
	"lotus/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		dbfx.Module,
		cachefx.Module,
		mailfx.Module,
		settingsfx.Module,
		galleryfx.Module,
		schedulefx.Module,
		retreatsfx.Module,
		accountfx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(Migrate),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func Migrate(db *gorm.DB) {
	if err := infra.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	settingsController *controllers.SettingsController,
	galleryController *controllers.GalleryController,
	scheduleController *controllers.ScheduleController,
	retreatsController *controllers.RetreatsController,
	accountController *controllers.AccountController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r,
		settingsController,
		galleryController,
		scheduleController,
		retreatsController,
		accountController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	settingsController *controllers.SettingsController,
	galleryController *controllers.GalleryController,
	scheduleController *controllers.ScheduleController,
	retreatsController *controllers.RetreatsController,
	accountController *controllers.AccountController) {

	// Public surface, no auth.
	auth := r.Group("/auth")
	auth.POST("/login", accountController.Login)
	auth.POST("/register", accountController.Register)
	auth.POST("/forgot-password", accountController.ForgotPassword)
	auth.POST("/reset-password", accountController.ResetPassword)

	r.GET("/website-settings", settingsController.PublicSettings)
	r.GET("/schedule", scheduleController.WeeklySchedule)
	r.GET("/schedule/:day", scheduleController.DaySchedule)
	r.GET("/calendar", scheduleController.Calendar)

	gallery := r.Group("/gallery")
	gallery.GET("/images", galleryController.ListImages)
	gallery.GET("/images/:id", galleryController.GetImage)
	gallery.GET("/images/:id/data", galleryController.GetImageData)
	gallery.GET("/images/:id/thumbnail", galleryController.GetThumbnail)

	retreats := r.Group("/retreats")
	retreats.GET("", retreatsController.ListRetreats)
	retreats.GET("/:id", retreatsController.GetRetreat)
	retreats.POST("/:id/registrations", retreatsController.CreateRegistration)

	// Admin surface behind JWT.
	admin := r.Group("/admin")
	admin.Use(middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"))
	admin.GET("/me", accountController.Me)

	settingsGroup := admin.Group("/settings")
	settingsGroup.GET("", settingsController.ListSettings)
	settingsGroup.PUT("", settingsController.UpsertSetting)
	settingsGroup.PUT("/category", settingsController.SaveCategory)
	settingsGroup.POST("/:key/image", settingsController.UploadSettingImage)

	galleryGroup := admin.Group("/gallery")
	galleryGroup.POST("/images", galleryController.UploadImages)
	galleryGroup.PUT("/images/:id", galleryController.UpdateImage)
	galleryGroup.DELETE("/images/:id", galleryController.DeleteImage)

	classGroup := admin.Group("/classes")
	classGroup.GET("", scheduleController.ListClasses)
	classGroup.GET("/:id", scheduleController.GetClass)
	classGroup.POST("", scheduleController.CreateClass)
	classGroup.PUT("", scheduleController.UpdateClass)
	classGroup.DELETE("/:id", scheduleController.DeleteClass)

	templateGroup := admin.Group("/class-templates")
	templateGroup.GET("", scheduleController.ListTemplates)
	templateGroup.POST("", scheduleController.CreateTemplate)
	templateGroup.PUT("", scheduleController.UpdateTemplate)
	templateGroup.DELETE("/:id", scheduleController.DeleteTemplate)
	templateGroup.GET("/:id/prefill", scheduleController.PrefillFromTemplate)

	retreatGroup := admin.Group("/retreats")
	retreatGroup.GET("", retreatsController.ListRetreats)
	retreatGroup.GET("/:id", retreatsController.GetRetreat)
	retreatGroup.POST("", retreatsController.CreateRetreat)
	retreatGroup.PUT("", retreatsController.UpdateRetreat)
	retreatGroup.DELETE("/:id", retreatsController.DeleteRetreat)
	retreatGroup.PUT("/:id/featured", retreatsController.SetFeatured)
	retreatGroup.POST("/:id/duplicate", retreatsController.DuplicateRetreat)
	retreatGroup.GET("/:id/registrations", retreatsController.ListRegistrations)
	retreatGroup.GET("/:id/registrations/export", retreatsController.ExportRegistrations)

	// lives outside the retreats group: a static "registrations" segment
	// cannot share the tree level with the ":id" wildcard above
	admin.PUT("/registrations/:id/payment", retreatsController.UpdatePayment)
}
