package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/GirfanovOV/tg-acc-bot/internal/model"
)

// categoriesKeyboard строит одноразовую клавиатуру выбора категории
func categoriesKeyboard() tgbotapi.ReplyKeyboardMarkup {
	rows := make([][]tgbotapi.KeyboardButton, 0, len(model.CategoryKeyboard))
	for _, row := range model.CategoryKeyboard {
		buttons := make([]tgbotapi.KeyboardButton, 0, len(row))
		for _, cat := range row {
			buttons = append(buttons, tgbotapi.NewKeyboardButton(string(cat)))
		}
		rows = append(rows, buttons)
	}

	keyboard := tgbotapi.NewReplyKeyboard(rows...)
	keyboard.OneTimeKeyboard = true
	return keyboard
}
