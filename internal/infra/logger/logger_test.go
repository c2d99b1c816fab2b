package logger

import (
	"testing"

	"homework_status_bot/internal/infra/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestInit_LevelAndFormatter(t *testing.T) {
	Init(&config.AppConfig{LogLevel: "warn", Environment: "production"})
	assert.Equal(t, logrus.WarnLevel, Log.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, Log.Formatter)

	Init(&config.AppConfig{LogLevel: "nonsense", Environment: "development"})
	assert.Equal(t, logrus.DebugLevel, Log.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, Log.Formatter)
}

func TestFor_SetsComponent(t *testing.T) {
	entry := For("poller")
	assert.Equal(t, "poller", entry.Data["component"])
}
