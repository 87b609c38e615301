package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"pitchbot/internal/domain"
)

// MockChatbotRepo is a mock implementation of port.ChatbotRepository.
type MockChatbotRepo struct {
	mock.Mock
}

func (m *MockChatbotRepo) Create(ctx context.Context, bot *domain.Chatbot) error {
	args := m.Called(ctx, bot)
	return args.Error(0)
}

func (m *MockChatbotRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Chatbot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Chatbot), args.Error(1)
}

func (m *MockChatbotRepo) GetByCollection(ctx context.Context, collectionName string) (*domain.Chatbot, error) {
	args := m.Called(ctx, collectionName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Chatbot), args.Error(1)
}

func (m *MockChatbotRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Chatbot, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Chatbot), args.Error(1)
}

func (m *MockChatbotRepo) GetPrimary(ctx context.Context, userID uuid.UUID) (*domain.Chatbot, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Chatbot), args.Error(1)
}

func (m *MockChatbotRepo) Update(ctx context.Context, bot *domain.Chatbot) error {
	args := m.Called(ctx, bot)
	return args.Error(0)
}

func (m *MockChatbotRepo) Archive(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
