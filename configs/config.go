package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	DBDriver string
	DBSource string

	JWTSecret string
	JWTTTL    time.Duration

	AdminEmail    string
	AdminPassword string

	// Server-only secret; must never reach browser code.
	PaymentSecretKey      string
	PaymentPublishableKey string
	PaymentAPIURL         string

	// PublicBaseURL builds the payment redirect links.
	PublicBaseURL string

	CartDir   string
	UploadDir string

	Env string // development | production
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	return &Config{
		Port:     getEnv("PORT", "8000"),
		DBDriver: getEnv("DB_DRIVER", "sqlite"),
		DBSource: getEnv("DB_SOURCE", "modern_table.db"),

		JWTSecret: getEnv("JWT_SECRET", "changeme"),
		JWTTTL:    24 * time.Hour,

		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),

		PaymentSecretKey:      os.Getenv("PAYMENT_SECRET_KEY"),
		PaymentPublishableKey: os.Getenv("PAYMENT_PUBLISHABLE_KEY"),
		PaymentAPIURL:         getEnv("PAYMENT_API_URL", "https://api.payments.example.com"),

		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:3000"),

		CartDir:   getEnv("CART_DIR", "./carts"),
		UploadDir: getEnv("UPLOAD_DIR", "./uploads"),

		Env: getEnv("APP_ENV", "development"),
	}
}

func (c *Config) IsProduction() bool { return c.Env == "production" }

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
