package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/husan7006/davon-taxi-bot/internal/flow"
)

const callbackStart = "go_start"

var welcomeText = strings.Join([]string{
	"🚖 *DAVON EXPRESS TAXI*",
	"Сизнинг ишончли ҳамроҳингиз!",
	"Ҳозироқ манзилни танланг ва ҳайдовчи билан боғланинг.",
}, "\n")

func (b *BotService) handleMessage(ctx context.Context, m *tgbotapi.Message) {
	user := flow.User{
		ID:          m.From.ID,
		DisplayName: displayName(m.From),
		Handle:      m.From.UserName,
	}

	if m.IsCommand() {
		switch m.Command() {
		case "start":
			b.handleStartCommand(ctx, m.Chat.ID, user)
		case "cancel":
			b.runMachine(ctx, m.Chat.ID, user, flow.Input{Intent: flow.IntentCancel})
		case "stats", "users":
			b.handleStats(ctx, m.Chat.ID)
		default:
			b.send(tgbotapi.NewMessage(m.Chat.ID, "Янги буюртма учун /start ни босинг."))
		}
		return
	}

	b.runMachine(ctx, m.Chat.ID, user, decodeInput(m))
}

func (b *BotService) handleCallback(ctx context.Context, q *tgbotapi.CallbackQuery) {
	if _, err := b.botAPI.Request(tgbotapi.NewCallback(q.ID, "")); err != nil {
		b.log.Error("callback ack failed", zap.Error(err))
	}

	if q.Data != callbackStart || q.Message == nil {
		return
	}

	user := flow.User{
		ID:          q.From.ID,
		DisplayName: displayName(q.From),
		Handle:      q.From.UserName,
	}
	b.runMachine(ctx, q.Message.Chat.ID, user, flow.Input{Intent: flow.IntentStart})
}

// handleStartCommand greets the user and offers the inline begin
// button; the capture session itself starts on the button press.
func (b *BotService) handleStartCommand(ctx context.Context, chatID int64, user flow.User) {
	b.sessions.get(chatID).Reset()

	if err := b.usersRepo.Upsert(ctx, user.ID, user.DisplayName, user.Handle); err != nil {
		b.log.Error("user upsert failed", zap.Int64("user_id", user.ID), zap.Error(err))
	}

	msg := tgbotapi.NewMessage(chatID, welcomeText)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = welcomeKeyboard()
	b.send(msg)
}

func (b *BotService) handleStats(ctx context.Context, chatID int64) {
	total, err := b.usersRepo.CountAll(ctx)
	if err != nil {
		b.log.Error("stats query failed", zap.Error(err))
		b.send(tgbotapi.NewMessage(chatID, "❗️ Statistika vaqtincha mavjud emas."))
		return
	}

	startOfDay := time.Now().UTC().Truncate(24 * time.Hour)
	today, err := b.usersRepo.CountJoinedSince(ctx, startOfDay)
	if err != nil {
		b.log.Error("stats query failed", zap.Error(err))
		b.send(tgbotapi.NewMessage(chatID, "❗️ Statistika vaqtincha mavjud emas."))
		return
	}

	b.send(tgbotapi.NewMessage(chatID, fmt.Sprintf(
		"📊 Bot statistikasi:\n👥 Umumiy foydalanuvchilar: %d ta\n🆕 Bugun qo'shilganlar: %d ta",
		total, today)))
}

func (b *BotService) runMachine(ctx context.Context, chatID int64, user flow.User, in flow.Input) {
	sess := b.sessions.get(chatID)

	for _, msg := range b.machine.Handle(ctx, user, sess, in) {
		b.send(buildMessage(chatID, msg))
	}
}

func displayName(u *tgbotapi.User) string {
	if u == nil {
		return ""
	}
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		name = u.UserName
	}
	return name
}
