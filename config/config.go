package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// App holds the loaded configuration for the running process.
var App *Config

// Config holds all configuration for the application
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	JWTSecret  string
	Port       string
	Env        string

	// Payment gateway settings
	MerchantID      string
	GatewayAPIKey   string
	GatewayBaseURL  string
	RedirectBaseURL string
	Domain          string

	// SMTP settings, optional. Mail is skipped when unset.
	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
}

// LoadConfig loads configuration from environment variables and validates
// that every field the payment flow depends on is present.
func LoadConfig() (*Config, error) {
	// A missing .env file is fine in deployed environments where the
	// variables come from the process environment directly.
	_ = godotenv.Load()

	config := &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		Port:       os.Getenv("PORT"),
		Env:        os.Getenv("ENV"),

		MerchantID:      os.Getenv("MERCHANT_ID"),
		GatewayAPIKey:   os.Getenv("PHONEPE_API_KEY"),
		GatewayBaseURL:  os.Getenv("PHONEPE_API_URL"),
		RedirectBaseURL: os.Getenv("PHONEPE_REDIRECT_URL"),
		Domain:          os.Getenv("DOMAIN"),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     os.Getenv("SMTP_PORT"),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:     os.Getenv("SMTP_FROM"),
	}

	if config.Port == "" {
		config.Port = "8080"
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	App = config
	return config, nil
}

// Validate checks that all required configuration values are set.
func (c *Config) Validate() error {
	required := map[string]string{
		"DB_HOST":              c.DBHost,
		"DB_PORT":              c.DBPort,
		"DB_USER":              c.DBUser,
		"DB_NAME":              c.DBName,
		"JWT_SECRET":           c.JWTSecret,
		"MERCHANT_ID":          c.MerchantID,
		"PHONEPE_API_KEY":      c.GatewayAPIKey,
		"PHONEPE_API_URL":      c.GatewayBaseURL,
		"PHONEPE_REDIRECT_URL": c.RedirectBaseURL,
		"DOMAIN":               c.Domain,
	}

	var missing []string
	for name, value := range required {
		if value == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// MailConfigured reports whether SMTP settings are available.
func (c *Config) MailConfigured() bool {
	return c.SMTPHost != "" && c.SMTPUsername != "" && c.SMTPPassword != ""
}
