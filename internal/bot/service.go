package bot

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/husan7006/davon-taxi-bot/internal/db"
	"github.com/husan7006/davon-taxi-bot/internal/flow"
)

// Every update gets a bounded context; nothing the machine does spans
// multiple user turns.
const updateTimeout = 15 * time.Second

type BotService struct {
	botAPI     *tgbotapi.BotAPI
	machine    *flow.Machine
	usersRepo  *db.UserRepository
	sessions   *sessionRegistry
	dispatcher *dispatcher
	log        *zap.Logger
}

func New(
	botAPI *tgbotapi.BotAPI,
	machine *flow.Machine,
	usersRepo *db.UserRepository,
	log *zap.Logger,
) *BotService {
	b := &BotService{
		botAPI:    botAPI,
		machine:   machine,
		usersRepo: usersRepo,
		sessions:  newSessionRegistry(),
		log:       log,
	}
	b.dispatcher = newDispatcher(b.handleUpdate, log)

	return b
}

// Start runs the long-polling loop. Updates are handed to the
// dispatcher, which serializes them per chat while letting unrelated
// chats proceed concurrently.
func (b *BotService) Start() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.botAPI.GetUpdatesChan(u)

	for update := range updates {
		chatID, ok := updateChatID(update)
		if !ok {
			continue
		}
		b.dispatcher.submit(chatID, update)
	}
}

func updateChatID(update tgbotapi.Update) (int64, bool) {
	switch {
	case update.Message != nil:
		return update.Message.Chat.ID, true
	case update.CallbackQuery != nil && update.CallbackQuery.Message != nil:
		return update.CallbackQuery.Message.Chat.ID, true
	}
	return 0, false
}

func (b *BotService) handleUpdate(update tgbotapi.Update) {
	ctx, cancel := context.WithTimeout(context.Background(), updateTimeout)
	defer cancel()

	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	}
}

func (b *BotService) send(msg tgbotapi.Chattable) {
	if _, err := b.botAPI.Send(msg); err != nil {
		b.log.Error("send failed", zap.Error(err))
	}
}
