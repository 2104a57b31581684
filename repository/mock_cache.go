package repository

import (
	"context"
	"sync"
)

type MockCache struct {
	mu   sync.Mutex
	Data map[string]string
	Hits int
}

func NewMockCache() *MockCache {
	return &MockCache{
		Data: make(map[string]string),
	}
}

func (m *MockCache) Get(_ context.Context, key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	val, ok := m.Data[key]
	if ok {
		m.Hits++
	}
	return val, ok
}

func (m *MockCache) Set(_ context.Context, key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Data[key] = value
	return nil
}
