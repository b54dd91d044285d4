package main

import (
	"log"
	"os"

	"log/slog"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"grillbay.com/app/internal/config"
	apphttp "grillbay.com/app/internal/http"
	"grillbay.com/app/internal/http/cartcookie"
	"grillbay.com/app/internal/mailer"
	"grillbay.com/app/internal/modules/catalog"
	"grillbay.com/app/internal/modules/checkout"
	"grillbay.com/app/internal/modules/payments"
)

func main() {
	// Load .env file (ignore error if not found - prod uses real env vars)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// Trusted catalog is optional; without it client prices are forwarded
	// as sent.
	var prices checkout.PriceSource
	if cfg.DBDSN != "" {
		db, err := gorm.Open(mysql.Open(cfg.DBDSN), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		prices = catalog.NewRepo(db)
		logger.Info("trusted catalog enabled")
	} else {
		logger.Warn("no DB_DSN set; client-supplied prices are trusted")
	}

	var mail mailer.Service
	if cfg.MailEnabled() {
		mail = mailer.NewSMTPMailer(cfg.SMTP)
		logger.Info("receipt mail enabled", "host", cfg.SMTP.Host)
	}

	provider := payments.NewStripeProvider(cfg.StripeSecretKey)
	logger.Info("payment provider ready", "provider", provider.Name())

	svc := checkout.NewService(provider, prices, mail, cfg.MailFrom, cfg.SiteBaseURL, logger)
	cartCK := cartcookie.New([]byte(cfg.CartCookieSecret), "gb_cart", cfg.CookieSecure)

	r := apphttp.NewRouter(apphttp.Deps{
		Logger:   logger,
		Checkout: svc,
		CartCK:   cartCK,
	})
	_ = r.Run(":" + cfg.Port)
}
