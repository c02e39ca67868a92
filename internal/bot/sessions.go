package bot

import (
	"sync"

	"github.com/husan7006/davon-taxi-bot/internal/flow"
)

// sessionRegistry maps chat ids to conversation sessions. The lock
// only guards the map itself; each session is mutated solely by its
// chat's dispatcher worker.
type sessionRegistry struct {
	mu       sync.Mutex
	sessions map[int64]*flow.Session
}

func newSessionRegistry() *sessionRegistry {
	return &sessionRegistry{
		sessions: make(map[int64]*flow.Session),
	}
}

func (r *sessionRegistry) get(chatID int64) *flow.Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[chatID]
	if !ok {
		s = &flow.Session{}
		r.sessions[chatID] = s
	}

	return s
}
