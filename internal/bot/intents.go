package bot

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/husan7006/davon-taxi-bot/internal/flow"
)

// decodeInput turns a raw Telegram message into one of the engine's
// abstract intents. All button-label matching lives here; the state
// machine itself never sees display strings as control tokens.
func decodeInput(m *tgbotapi.Message) flow.Input {
	if m.Contact != nil {
		return flow.Input{Intent: flow.IntentContact, Phone: m.Contact.PhoneNumber}
	}

	text := strings.TrimSpace(m.Text)
	switch {
	case text == flow.BackLabel:
		return flow.Input{Intent: flow.IntentBack, Text: text}
	case text == flow.NextLabel:
		return flow.Input{Intent: flow.IntentNextPage, Text: text}
	case text == flow.PrevLabel:
		return flow.Input{Intent: flow.IntentPrevPage, Text: text}
	case flow.IsPageIndicator(text):
		return flow.Input{Intent: flow.IntentPageIndicator, Text: text}
	}

	return flow.Input{Intent: flow.IntentText, Text: text}
}
