package bot

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/husan7006/davon-taxi-bot/internal/flow"
)

// OperatorNotifier forwards completed orders to the operator chat.
// A zero chat id means no destination is configured and notification
// is silently skipped.
type OperatorNotifier struct {
	botAPI *tgbotapi.BotAPI
	chatID int64
}

var _ flow.Notifier = (*OperatorNotifier)(nil)

func NewOperatorNotifier(botAPI *tgbotapi.BotAPI, chatID int64) *OperatorNotifier {
	return &OperatorNotifier{
		botAPI: botAPI,
		chatID: chatID,
	}
}

func (n *OperatorNotifier) NotifyOperator(ctx context.Context, order *flow.Order) error {
	if n.chatID == 0 {
		return nil
	}

	msg := tgbotapi.NewMessage(n.chatID, flow.FormatOrderSummary(order))
	if _, err := n.botAPI.Send(msg); err != nil {
		return fmt.Errorf("OperatorNotifier.NotifyOperator: %w", err)
	}

	return nil
}
