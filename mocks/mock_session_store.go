package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pitchbot/internal/domain"
)

// MockSessionStore is a mock implementation of port.SessionStore.
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Save(ctx context.Context, rec *domain.SessionRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockSessionStore) Restore(ctx context.Context, id string) (*domain.SessionRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SessionRecord), args.Error(1)
}

func (m *MockSessionStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
