package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/husan7006/davon-taxi-bot/internal/flow"
)

// buildMessage renders an engine prompt into a Telegram message with
// the matching reply keyboard.
func buildMessage(chatID int64, msg flow.Message) tgbotapi.MessageConfig {
	out := tgbotapi.NewMessage(chatID, msg.Text)

	switch {
	case msg.RemoveKeyboard:
		out.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	case len(msg.Choices) > 0:
		rows := make([][]tgbotapi.KeyboardButton, 0, len(msg.Choices))
		for i, row := range msg.Choices {
			buttons := make([]tgbotapi.KeyboardButton, 0, len(row))
			for j, label := range row {
				if msg.ContactButton && i == 0 && j == 0 {
					buttons = append(buttons, tgbotapi.NewKeyboardButtonContact(label))
					continue
				}
				buttons = append(buttons, tgbotapi.NewKeyboardButton(label))
			}
			rows = append(rows, buttons)
		}
		out.ReplyMarkup = tgbotapi.NewReplyKeyboard(rows...)
	}

	return out
}

func welcomeKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🚖 БОШЛАШ", callbackStart),
		),
	)
}
