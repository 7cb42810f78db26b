package mailfx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"lotus/internal/services"
)

var Module = fx.Provide(provideMailService)

func provideMailService() services.IMailService {

	cfg := services.SMTPConfig{
		Host:       envOr("SMTP_HOST", "smtp.gmail.com"),
		Port:       587, // 587 for STARTTLS; use 465 with UseSSL=true for SMTPS
		Username:   os.Getenv("SMTP_USERNAME"),
		Password:   os.Getenv("SMTP_PASSWORD"),
		From:       os.Getenv("SMTP_USERNAME"),
		FromName:   "Lotus Yoga",
		UseSSL:     false,
		RequireTLS: true,

		AppName:    "Lotus Yoga",
		AppBaseURL: envOr("APP_BASE_URL", "https://lotusyoga.studio"),
	}

	mailService, err := services.NewSMTPMailService(cfg)
	if err != nil {
		log.Printf("Failed to initialize SMTP mail service: %v", err)
	}

	return mailService
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
