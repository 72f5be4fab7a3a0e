package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	TelegramToken string
	// WebhookAddr - адрес HTTP-сервера webhook-режима (cmd/function)
	WebhookAddr string
}

func LoadConfig() (*Config, error) {
	// .env необязателен: в проде переменные приходят из окружения
	_ = godotenv.Load()

	token := os.Getenv("TELEGRAM_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("TELEGRAM_TOKEN is not set")
	}

	addr := os.Getenv("WEBHOOK_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	return &Config{
		TelegramToken: token,
		WebhookAddr:   addr,
	}, nil
}
