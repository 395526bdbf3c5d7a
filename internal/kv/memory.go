package kv

import "sync"

// Memory is an in-process Store for tests and ephemeral runs.
type Memory struct {
	mu   sync.Mutex
	data map[string][]byte

	// FailReads / FailWrites force errors, for exercising soft-fail paths.
	FailReads  error
	FailWrites error
}

func NewMemory() *Memory { return &Memory{data: make(map[string][]byte)} }

func (m *Memory) Get(key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailReads != nil {
		return nil, false, m.FailReads
	}
	b, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	cp := append([]byte(nil), b...)
	return cp, true, nil
}

func (m *Memory) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites != nil {
		return m.FailWrites
	}
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites != nil {
		return m.FailWrites
	}
	delete(m.data, key)
	return nil
}
