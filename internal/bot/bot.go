package bot

import (
	"encoding/json"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"github.com/GirfanovOV/tg-acc-bot/internal/service"
)

// Bot - транспортный слой: принимает обновления Телеграма, передает текст
// трекеру и отправляет обратно его ответы. Вся логика диалога живет в
// service.ExpenseTracker.
type Bot struct {
	api     *tgbotapi.BotAPI
	tracker *service.ExpenseTracker
	log     zerolog.Logger
}

func NewBot(token string, tracker *service.ExpenseTracker, log zerolog.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	return &Bot{
		api:     api,
		tracker: tracker,
		log:     log,
	}, nil
}

// Start запускает бота в режиме long polling
func (b *Bot) Start() error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	b.log.Info().Str("username", b.api.Self.UserName).Msg("bot started")

	for update := range updates {
		if err := b.handleUpdate(update); err != nil {
			// Логируем ошибку, но продолжаем работу
			b.log.Error().Err(err).Msg("failed to handle update")
		}
	}

	return nil
}

// HandleWebhook - точка входа для обработки входящих webhook-обновлений
func (b *Bot) HandleWebhook(body []byte) error {
	var update tgbotapi.Update
	if err := json.Unmarshal(body, &update); err != nil {
		return err
	}

	return b.handleUpdate(update)
}

func (b *Bot) handleUpdate(update tgbotapi.Update) error {
	if update.Message == nil || update.Message.From == nil {
		return nil
	}

	msg := update.Message
	reply, err := b.tracker.HandleInput(msg.From.ID, msg.Text)
	if err != nil {
		return err
	}

	return b.send(msg.Chat.ID, reply)
}

func (b *Bot) send(chatID int64, reply service.Reply) error {
	if reply.Photo != nil {
		photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{
			Name:  "chart.png",
			Bytes: reply.Photo,
		})
		_, err := b.api.Send(photo)
		return err
	}

	msg := tgbotapi.NewMessage(chatID, reply.Text)
	if reply.ShowCategories {
		msg.ReplyMarkup = categoriesKeyboard()
	}
	_, err := b.api.Send(msg)
	return err
}
