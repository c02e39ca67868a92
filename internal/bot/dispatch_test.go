package bot

import (
	"sync"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

func chatUpdate(chatID int64, text string) tgbotapi.Update {
	return tgbotapi.Update{
		Message: &tgbotapi.Message{
			Text: text,
			Chat: &tgbotapi.Chat{ID: chatID},
		},
	}
}

func TestDispatcherKeepsPerChatOrder(t *testing.T) {
	var mu sync.Mutex
	seen := make(map[int64][]string)
	done := make(chan struct{}, 100)

	d := newDispatcher(func(u tgbotapi.Update) {
		mu.Lock()
		seen[u.Message.Chat.ID] = append(seen[u.Message.Chat.ID], u.Message.Text)
		mu.Unlock()
		done <- struct{}{}
	}, zap.NewNop())

	texts := []string{"a", "b", "c", "d", "e"}
	chats := []int64{1, 2, 3, 4}

	for _, text := range texts {
		for _, chat := range chats {
			d.submit(chat, chatUpdate(chat, text))
		}
	}

	for i := 0; i < len(texts)*len(chats); i++ {
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for dispatched updates")
		}
	}

	mu.Lock()
	defer mu.Unlock()
	for _, chat := range chats {
		got := seen[chat]
		if len(got) != len(texts) {
			t.Fatalf("chat %d saw %d updates, want %d", chat, len(got), len(texts))
		}
		for i, text := range texts {
			if got[i] != text {
				t.Errorf("chat %d updates reordered: %v", chat, got)
				break
			}
		}
	}
}

func TestDispatcherRecoversFromPanic(t *testing.T) {
	done := make(chan struct{}, 2)

	d := newDispatcher(func(u tgbotapi.Update) {
		if u.Message.Text == "boom" {
			done <- struct{}{}
			panic("boom")
		}
		done <- struct{}{}
	}, zap.NewNop())

	d.submit(7, chatUpdate(7, "boom"))
	d.submit(7, chatUpdate(7, "ok"))

	for i := 0; i < 2; i++ {
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("worker died after panic")
		}
	}
}

func TestSessionRegistryReturnsSameSession(t *testing.T) {
	r := newSessionRegistry()

	s1 := r.get(1)
	s2 := r.get(1)
	if s1 != s2 {
		t.Error("same chat got different sessions")
	}
	if r.get(2) == s1 {
		t.Error("different chats share a session")
	}
}
