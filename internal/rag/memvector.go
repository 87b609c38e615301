package rag

import (
	"context"
	"math"
	"sort"
	"sync"

	"pitchbot/internal/domain"
	"pitchbot/internal/port"
)

type memVectorStore struct {
	mu          sync.RWMutex
	collections map[string][]domain.Chunk
}

// NewMemoryVectorStore creates an in-process VectorStore with brute-force
// cosine search. Used in development and tests; Postgres backs production.
func NewMemoryVectorStore() port.VectorStore {
	return &memVectorStore{collections: map[string][]domain.Chunk{}}
}

func (m *memVectorStore) InsertChunks(_ context.Context, collection string, chunks []domain.Chunk) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.collections[collection] = append(m.collections[collection], chunks...)
	return nil
}

func (m *memVectorStore) Search(_ context.Context, collection string, query []float32, topK int) ([]domain.ChunkMatch, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	chunks, ok := m.collections[collection]
	if !ok {
		return nil, domain.ErrCollectionNotFound
	}

	matches := make([]domain.ChunkMatch, 0, len(chunks))
	for _, c := range chunks {
		matches = append(matches, domain.ChunkMatch{Chunk: c, Score: cosine(query, c.Embedding)})
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].Score > matches[j].Score })
	if topK > 0 && len(matches) > topK {
		matches = matches[:topK]
	}
	return matches, nil
}

func (m *memVectorStore) Rename(_ context.Context, oldName, newName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	chunks, ok := m.collections[oldName]
	if !ok {
		return domain.ErrCollectionNotFound
	}
	for i := range chunks {
		chunks[i].Collection = newName
	}
	m.collections[newName] = chunks
	delete(m.collections, oldName)
	return nil
}

func (m *memVectorStore) Count(_ context.Context, collection string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.collections[collection]), nil
}

func (m *memVectorStore) Delete(_ context.Context, collection string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.collections, collection)
	return nil
}

func cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
