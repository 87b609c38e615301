package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pitchbot/internal/domain"
)

// MockVectorStore is a mock implementation of port.VectorStore.
type MockVectorStore struct {
	mock.Mock
}

func (m *MockVectorStore) InsertChunks(ctx context.Context, collection string, chunks []domain.Chunk) error {
	args := m.Called(ctx, collection, chunks)
	return args.Error(0)
}

func (m *MockVectorStore) Search(ctx context.Context, collection string, query []float32, topK int) ([]domain.ChunkMatch, error) {
	args := m.Called(ctx, collection, query, topK)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChunkMatch), args.Error(1)
}

func (m *MockVectorStore) Rename(ctx context.Context, oldName, newName string) error {
	args := m.Called(ctx, oldName, newName)
	return args.Error(0)
}

func (m *MockVectorStore) Count(ctx context.Context, collection string) (int, error) {
	args := m.Called(ctx, collection)
	return args.Int(0), args.Error(1)
}

func (m *MockVectorStore) Delete(ctx context.Context, collection string) error {
	args := m.Called(ctx, collection)
	return args.Error(0)
}
