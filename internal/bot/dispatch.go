package bot

import (
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	chatQueueSize = 16
	chatIdleTime  = 10 * time.Minute
)

// dispatcher gives every active chat its own ordered queue and worker
// goroutine, so one user's messages are never processed in parallel or
// reordered while different users still run concurrently. Idle queues
// are torn down after chatIdleTime.
type dispatcher struct {
	handle func(tgbotapi.Update)
	log    *zap.Logger

	mu     sync.Mutex
	queues map[int64]chan tgbotapi.Update
}

func newDispatcher(handle func(tgbotapi.Update), log *zap.Logger) *dispatcher {
	return &dispatcher{
		handle: handle,
		log:    log,
		queues: make(map[int64]chan tgbotapi.Update),
	}
}

// submit enqueues an update for its chat, spawning a worker for chats
// without one. A full queue drops the update rather than blocking the
// polling loop.
func (d *dispatcher) submit(chatID int64, update tgbotapi.Update) {
	d.mu.Lock()
	defer d.mu.Unlock()

	q, ok := d.queues[chatID]
	if !ok {
		q = make(chan tgbotapi.Update, chatQueueSize)
		d.queues[chatID] = q
		go d.run(chatID, q)
	}

	select {
	case q <- update:
	default:
		d.log.Warn("chat queue full, dropping update", zap.Int64("chat_id", chatID))
	}
}

func (d *dispatcher) run(chatID int64, q chan tgbotapi.Update) {
	idle := time.NewTimer(chatIdleTime)
	defer idle.Stop()

	for {
		select {
		case update := <-q:
			d.safeHandle(chatID, update)
			if !idle.Stop() {
				select {
				case <-idle.C:
				default:
				}
			}
			idle.Reset(chatIdleTime)
		case <-idle.C:
			// submit sends under d.mu, so checking emptiness and
			// removing the queue under the same lock cannot lose an
			// update.
			d.mu.Lock()
			if len(q) == 0 {
				delete(d.queues, chatID)
				d.mu.Unlock()
				return
			}
			d.mu.Unlock()
			idle.Reset(chatIdleTime)
		}
	}
}

func (d *dispatcher) safeHandle(chatID int64, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			d.log.Error("panic while handling update",
				zap.Int64("chat_id", chatID), zap.Any("panic", r))
		}
	}()

	d.handle(update)
}
