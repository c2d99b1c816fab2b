package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	// RetryPeriod is the pause between two polls of the homework API.
	RetryPeriod = 600 * time.Second
	// PracticumEndpoint is the homework statuses endpoint.
	PracticumEndpoint = "https://practicum.yandex.ru/api/user_api/homework_statuses/"
)

const (
	envPracticumToken = "PRACTICUM_TOKEN"
	envTelegramToken  = "TELEGRAM_TOKEN"
	envTelegramChatID = "TELEGRAM_CHAT_ID"
)

// AppConfig holds all configuration for the application
type AppConfig struct {
	PracticumToken string
	TelegramToken  string
	TelegramChatID string
	Endpoint       string
	RetryPeriod    time.Duration
	LogLevel       string
	Environment    string
}

// Load reads configuration from environment variables and .env file (if present).
// Missing secrets are not an error here; CheckTokens reports them.
func Load() *AppConfig {
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{
		PracticumToken: os.Getenv(envPracticumToken),
		TelegramToken:  os.Getenv(envTelegramToken),
		TelegramChatID: os.Getenv(envTelegramChatID),
		Endpoint:       PracticumEndpoint,
		RetryPeriod:    RetryPeriod,
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	return cfg
}

// CheckTokens reports whether every required secret is present.
// Each missing variable gets its own critical log line.
func (c *AppConfig) CheckTokens(log *logrus.Entry) bool {
	required := []struct {
		name  string
		value string
	}{
		{envPracticumToken, c.PracticumToken},
		{envTelegramToken, c.TelegramToken},
		{envTelegramChatID, c.TelegramChatID},
	}

	ok := true
	for _, r := range required {
		if strings.TrimSpace(r.value) != "" {
			continue
		}
		log.WithFields(logrus.Fields{
			"severity": "critical",
			"env_var":  r.name,
		}).Errorf("Required environment variable %s is not set", r.name)
		ok = false
	}
	return ok
}
