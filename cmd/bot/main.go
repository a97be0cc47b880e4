package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"homework_notification_bot/internal/app"
	"homework_notification_bot/internal/infra/config"
	"homework_notification_bot/internal/infra/logger"
	"homework_notification_bot/internal/infra/practicum"
	"homework_notification_bot/internal/infra/scheduler"
	"homework_notification_bot/internal/infra/telegram"

	"gopkg.in/telebot.v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("FATAL: Could not load application configuration: %v", err)
	}

	appLogger := logger.Init(cfg)
	appLogger.Infof("Configuration loaded. Endpoint: %s, poll interval: %s, chat ID: %d",
		cfg.PracticumEndpoint, cfg.PollInterval, cfg.TelegramChatID)

	// No poller configured: the bot only sends, there is no inbound update
	// handling.
	pref := telebot.Settings{
		Token: cfg.TelegramToken,
	}
	bot, err := telebot.NewBot(pref)
	if err != nil {
		appLogger.Fatalf("FATAL: Could not create Telegram bot: %v", err)
	}
	appLogger.Info("Telegram bot initialized.")

	telegramClient := telegram.NewTelebotAdapter(bot)
	apiClient := practicum.NewAPIClient(cfg.PracticumEndpoint, cfg.PracticumToken)
	pollService := app.NewPollService(apiClient, telegramClient, appLogger, cfg.TelegramChatID)

	pollScheduler := scheduler.NewPollScheduler(pollService, appLogger, cfg.PollInterval)
	pollScheduler.Start()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down application...")
	pollScheduler.Stop()
	appLogger.Info("Application shut down gracefully.")
}
