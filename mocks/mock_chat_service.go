package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pitchbot/internal/domain"
	"pitchbot/internal/service"
)

// MockChatService is a mock implementation of service.ChatService.
type MockChatService struct {
	mock.Mock
}

func (m *MockChatService) Query(ctx context.Context, input *service.ChatInput) (*service.ChatResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ChatResult), args.Error(1)
}

func (m *MockChatService) ResetMemory(collection string) {
	m.Called(collection)
}

func (m *MockChatService) MemorySummary(collection string) domain.MemorySummary {
	args := m.Called(collection)
	return args.Get(0).(domain.MemorySummary)
}
