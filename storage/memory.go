package storage

import (
	"context"
	"errors"
	"sync"
)

// Memory is an in-memory KV used in tests and as a stand-in when no
// database file is wanted.
type Memory struct {
	mu         sync.RWMutex
	blobs      map[string]string
	failWrites bool
}

func NewMemory() *Memory {
	return &Memory{blobs: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.blobs[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWrites {
		return errors.New("storage: write failed")
	}
	m.blobs[key] = value
	return nil
}

// FailWrites makes every subsequent Set return an error, for exercising
// persistence-failure paths in tests.
func (m *Memory) FailWrites(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failWrites = fail
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.blobs, key)
	return nil
}

// Len reports how many keys currently hold a value.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.blobs)
}
