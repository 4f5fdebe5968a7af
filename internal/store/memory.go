package store

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	snapshot  []byte
	expiresAt time.Time
}

// Memory is an in-process Store for tests and single-node development.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

func NewMemory() *Memory {
	return &Memory{entries: make(map[string]memoryEntry)}
}

func (m *Memory) Save(_ context.Context, code string, snapshot []byte, expiresAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(snapshot))
	copy(cp, snapshot)
	m.entries[code] = memoryEntry{snapshot: cp, expiresAt: expiresAt}
	return nil
}

func (m *Memory) Load(_ context.Context, code string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.entries[code]
	if !ok {
		return nil, ErrNotFound
	}
	if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
		return nil, ErrNotFound
	}
	return e.snapshot, nil
}

func (m *Memory) Delete(_ context.Context, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, code)
	return nil
}
