// Webhook-режим: небольшой HTTP-сервер, принимающий обновления Телеграма
// по webhook вместо long polling.
package main

import (
	"io"
	"net/http"
	"os"

	"github.com/rs/zerolog"

	"github.com/GirfanovOV/tg-acc-bot/internal/bot"
	"github.com/GirfanovOV/tg-acc-bot/internal/charts"
	"github.com/GirfanovOV/tg-acc-bot/internal/config"
	"github.com/GirfanovOV/tg-acc-bot/internal/service"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	tracker := service.NewExpenseTracker(charts.NewChartGenerator())

	b, err := bot.NewBot(cfg.TelegramToken, tracker, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create bot")
	}

	http.HandleFunc("/webhook", func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if err := b.HandleWebhook(body); err != nil {
			logger.Error().Err(err).Msg("failed to handle webhook update")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
	})

	logger.Info().Str("addr", cfg.WebhookAddr).Msg("webhook server started")
	if err := http.ListenAndServe(cfg.WebhookAddr, nil); err != nil {
		logger.Fatal().Err(err).Msg("webhook server stopped")
	}
}
