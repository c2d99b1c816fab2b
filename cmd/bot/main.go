package main

import (
	"context"
	"os"

	"homework_status_bot/internal/app"
	"homework_status_bot/internal/infra/config"
	"homework_status_bot/internal/infra/logger"
	"homework_status_bot/internal/infra/practicum"
	"homework_status_bot/internal/infra/scheduler"
	"homework_status_bot/internal/infra/telegram"

	"github.com/sirupsen/logrus"
)

func main() {
	// Nothing cancels this context: the loop runs until the process is killed.
	os.Exit(run(context.Background()))
}

// run wires the bot and polls until ctx is done. It returns the process
// exit code.
func run(ctx context.Context) int {
	cfg := config.Load()
	logger.Init(cfg)
	mainLogger := logger.For("main")

	if !cfg.CheckTokens(mainLogger) {
		mainLogger.WithField("severity", "critical").Error("Program stopped: required configuration is missing")
		return 1
	}
	mainLogger.WithFields(logrus.Fields{
		"log_level":    cfg.LogLevel,
		"environment":  cfg.Environment,
		"retry_period": cfg.RetryPeriod.String(),
	}).Info("Configuration loaded")

	bot, err := telegram.NewBot(cfg.TelegramToken, "")
	if err != nil {
		mainLogger.WithError(err).WithField("severity", "critical").Error("Could not create Telegram bot")
		return 1
	}
	telegramClient := telegram.NewTelebotAdapter(bot)

	// The error cache is shared by the formatter (clears it) and the notifier (fills it).
	errorCache := app.NewErrorCache()
	notifier := app.NewNotificationServiceImpl(telegramClient, cfg.TelegramChatID, errorCache, logger.For("notifier"))
	formatter := app.NewStatusFormatter(errorCache)
	practicumClient := practicum.NewClient(cfg.Endpoint, cfg.PracticumToken, nil, logger.For("practicum"))
	sleeper := scheduler.NewFixedDelay(cfg.RetryPeriod, logger.For("scheduler"))

	poller := app.NewStatusPoller(practicumClient, formatter, notifier, sleeper, cfg.RetryPeriod, logger.For("poller"))

	poller.Run(ctx)
	return 0
}
