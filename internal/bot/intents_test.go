package bot

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/husan7006/davon-taxi-bot/internal/flow"
)

func TestDecodeInput(t *testing.T) {
	cases := []struct {
		name string
		msg  *tgbotapi.Message
		want flow.Intent
	}{
		{"back", &tgbotapi.Message{Text: flow.BackLabel}, flow.IntentBack},
		{"next", &tgbotapi.Message{Text: flow.NextLabel}, flow.IntentNextPage},
		{"prev", &tgbotapi.Message{Text: flow.PrevLabel}, flow.IntentPrevPage},
		{"page indicator", &tgbotapi.Message{Text: "3/8"}, flow.IntentPageIndicator},
		{"plain text", &tgbotapi.Message{Text: "Чорсу"}, flow.IntentText},
		{"padded label", &tgbotapi.Message{Text: "  " + flow.BackLabel + "  "}, flow.IntentBack},
		{
			"contact",
			&tgbotapi.Message{Contact: &tgbotapi.Contact{PhoneNumber: "+998901112233"}},
			flow.IntentContact,
		},
	}

	for _, c := range cases {
		got := decodeInput(c.msg)
		if got.Intent != c.want {
			t.Errorf("%s: intent = %v, want %v", c.name, got.Intent, c.want)
		}
	}
}

func TestDecodeInputCarriesPayload(t *testing.T) {
	in := decodeInput(&tgbotapi.Message{Contact: &tgbotapi.Contact{PhoneNumber: "+998901112233"}})
	if in.Phone != "+998901112233" {
		t.Errorf("contact phone = %q", in.Phone)
	}

	in = decodeInput(&tgbotapi.Message{Text: " Чорсу "})
	if in.Text != "Чорсу" {
		t.Errorf("text = %q, want trimmed selection", in.Text)
	}
}
