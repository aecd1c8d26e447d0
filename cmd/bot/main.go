// Package main - точка входа для Telegram-бота статусов домашних работ.
//
// Бот опрашивает API Практикум.Домашка с фиксированным интервалом и присылает
// в чат сообщение при каждом изменении статуса проверки работы. Ошибки цикла
// тоже отправляются в чат, чтобы оператор узнавал о проблемах без доступа к
// логам.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/homework-hub/homework-status-bot/config"
	"github.com/homework-hub/homework-status-bot/internal/domain/homework"
	"github.com/homework-hub/homework-status-bot/internal/infrastructure/external/practicum"
	"github.com/homework-hub/homework-status-bot/internal/infrastructure/external/telegram"
	"github.com/homework-hub/homework-status-bot/internal/infrastructure/service"
	"github.com/homework-hub/homework-status-bot/internal/poller"
	"github.com/homework-hub/homework-status-bot/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.New(logger.Options{
		Output:    os.Stdout,
		Level:     logger.ParseLevel(cfg.Observability.LogLevel),
		AddCaller: true,
	})

	log.Info("starting homework status bot",
		logger.Duration("interval", cfg.Poller.Interval),
		logger.ChatID(cfg.Telegram.ChatID),
	)

	tgConfig := telegram.DefaultClientConfig(cfg.Telegram.Token)
	tgConfig.Timeout = cfg.Telegram.RequestTimeout
	tgConfig.Logger = log
	if cfg.Telegram.BaseURL != "" {
		tgConfig.BaseURL = cfg.Telegram.BaseURL
	}
	bot := telegram.NewClient(tgConfig)

	if !bot.IsHealthy(ctx) {
		// Not fatal: a broken token will surface on every cycle anyway.
		log.Warn("telegram getMe probe failed, check TELEGRAM_TOKEN")
	}

	apiConfig := practicum.DefaultClientConfig(cfg.Practicum.Token)
	apiConfig.Timeout = cfg.Practicum.RequestTimeout
	apiConfig.Logger = log
	if cfg.Practicum.Endpoint != "" {
		apiConfig.Endpoint = cfg.Practicum.Endpoint
	}
	api := practicum.NewClient(apiConfig)

	notifier := service.NewNotifier(bot, cfg.Telegram.ChatID, log)

	p := poller.New(api, practicum.CheckResponse, homework.ParseStatus, notifier, poller.Config{
		Interval: cfg.Poller.Interval,
		Logger:   log,
	})

	return p.Run(ctx)
}
