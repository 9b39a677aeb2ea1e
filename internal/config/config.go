package config

import (
	"crypto/rsa"
	"encoding/base64"
	"os"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"

	"github.com/quantumhotel/hotel-service/internal/utils"
)

type Config struct {
	OrganizationName string
	AppName          string
	AppPort          string

	// Database
	DBUrl string

	// Availability cache; empty disables caching
	RedisURL string

	// Event stream; empty disables publishing
	KafkaBrokers []string

	// Twilio / SendGrid for guest notifications
	TwilioAccountSID    string
	TwilioAuthToken     string
	TwilioFromPhone     string
	SendGridAPIKey      string
	SendgridFromEmail   string
	SendgridSandboxMode bool

	// Auth
	RSAPublicKey *rsa.PublicKey

	SeedDemoData bool
}

const OrganizationName = "Quantum Hotel"

func LoadConfig() *Config {
	// Local development keeps its settings in a .env file; deployed
	// environments inject real env vars and have no such file.
	_ = godotenv.Load()

	appName := getEnv("APP_NAME", "hotel-service")
	utils.Logger.Info("Loading config for app: ", appName)

	cfg := &Config{
		OrganizationName: OrganizationName,
		AppName:          appName,
		AppPort:          getEnv("APP_PORT", "8080"),
		DBUrl:            mustGetEnv("DB_URL"),

		RedisURL: os.Getenv("REDIS_URL"),

		TwilioAccountSID:    os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:     os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioFromPhone:     os.Getenv("TWILIO_FROM_PHONE"),
		SendGridAPIKey:      os.Getenv("SENDGRID_API_KEY"),
		SendgridFromEmail:   getEnv("SENDGRID_FROM_EMAIL", "reservations@quantumhotel.example"),
		SendgridSandboxMode: getBoolEnv("SENDGRID_SANDBOX_MODE", true),

		SeedDemoData: getBoolEnv("SEED_DEMO_DATA", false),
	}

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}

	pubB64 := mustGetEnv("RSA_PUBLIC_KEY_BASE64")
	pubPEM, err := base64.StdEncoding.DecodeString(pubB64)
	if err != nil {
		utils.Logger.WithError(err).Fatal("RSA_PUBLIC_KEY_BASE64 is not valid base64")
	}
	pubKey, err := jwt.ParseRSAPublicKeyFromPEM(pubPEM)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to parse RSA public key")
	}
	cfg.RSAPublicKey = pubKey

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func mustGetEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		utils.Logger.Fatalf("%s env var is missing", key)
	}
	return v
}

func getBoolEnv(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		utils.Logger.Fatalf("%s env var is not a boolean: %q", key, v)
	}
	return b
}
