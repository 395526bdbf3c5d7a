package review

import (
	"sync"

	"wrong-notebook/internal/classify"
)

// Manager hands out one Session per interaction context (HTTP session id,
// Telegram chat). Sessions are independent; nothing is shared across them.
type Manager struct {
	sessions sync.Map // id -> *Session

	normalize Normalizer
	engine    classify.Engine
	store     EntryStore
}

func NewManager(n Normalizer, e classify.Engine, st EntryStore) *Manager {
	return &Manager{normalize: n, engine: e, store: st}
}

// Session returns the session for id, creating it on first use.
func (m *Manager) Session(id string) *Session {
	if v, ok := m.sessions.Load(id); ok {
		return v.(*Session)
	}
	v, _ := m.sessions.LoadOrStore(id, NewSession(m.normalize, m.engine, m.store))
	return v.(*Session)
}
