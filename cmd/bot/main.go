package main

import (
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

	if err := b.Start(); err != nil {
		logger.Fatal().Err(err).Msg("bot stopped")
	}
}
