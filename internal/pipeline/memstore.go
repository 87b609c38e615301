package pipeline

import (
	"context"
	"sync"

	"pitchbot/internal/domain"
	"pitchbot/internal/port"
)

type memStore struct {
	mu      sync.RWMutex
	records map[string]domain.SessionRecord
}

// NewMemoryStore creates an in-process SessionStore, used in development and
// tests. Postgres backs production; see repository/postgres.
func NewMemoryStore() port.SessionStore {
	return &memStore{records: map[string]domain.SessionRecord{}}
}

func (m *memStore) Save(_ context.Context, rec *domain.SessionRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[rec.ID] = *rec
	return nil
}

func (m *memStore) Restore(_ context.Context, id string) (*domain.SessionRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.records[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return &rec, nil
}

func (m *memStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, id)
	return nil
}
