package config

import (
	"fmt"
	"os"
	"strings"
)

type SMTPConfig struct {
	Host          string
	Port          string
	User          string
	Pass          string
	TLSMode       string // "", "tls" or "starttls"
	SkipVerifyTLS bool
}

type Config struct {
	Port string

	// Public base URL used to build the processor redirect targets.
	SiteBaseURL string

	StripeSecretKey  string
	CartCookieSecret string
	CookieSecure     bool

	// Optional trusted catalog. Empty DSN disables server-side re-pricing
	// and prices are forwarded as sent by the client.
	DBDSN string

	// Optional receipt mail. Empty host disables it.
	SMTP     SMTPConfig
	MailFrom string
}

// Load reads configuration from the environment. Required variables missing
// at startup are a hard error so a misconfigured deploy fails fast instead
// of on the first checkout.
func Load() (*Config, error) {
	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		SiteBaseURL:      strings.TrimRight(os.Getenv("SITE_BASE_URL"), "/"),
		StripeSecretKey:  os.Getenv("STRIPE_SECRET_KEY"),
		CartCookieSecret: os.Getenv("CART_COOKIE_SECRET"),
		CookieSecure:     os.Getenv("COOKIE_SECURE") == "true",
		DBDSN:            os.Getenv("DB_DSN"),
		SMTP: SMTPConfig{
			Host:          os.Getenv("SMTP_HOST"),
			Port:          getEnv("SMTP_PORT", "25"),
			User:          os.Getenv("SMTP_USER"),
			Pass:          os.Getenv("SMTP_PASS"),
			TLSMode:       os.Getenv("SMTP_TLS_MODE"),
			SkipVerifyTLS: os.Getenv("SMTP_SKIP_VERIFY_TLS") == "true",
		},
		MailFrom: os.Getenv("MAIL_FROM"),
	}

	var missing []string
	if cfg.StripeSecretKey == "" {
		missing = append(missing, "STRIPE_SECRET_KEY")
	}
	if cfg.SiteBaseURL == "" {
		missing = append(missing, "SITE_BASE_URL")
	}
	if cfg.CartCookieSecret == "" {
		missing = append(missing, "CART_COOKIE_SECRET")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

func (c *Config) MailEnabled() bool { return c.SMTP.Host != "" && c.MailFrom != "" }

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
