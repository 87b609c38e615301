package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"pitchbot/internal/domain"
	"pitchbot/internal/service"
)

// MockRegistryService is a mock implementation of service.RegistryService.
type MockRegistryService struct {
	mock.Mock
}

func (m *MockRegistryService) FinalizeAndRegister(ctx context.Context, input *service.FinalizeBotInput) (*domain.Chatbot, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Chatbot), args.Error(1)
}

func (m *MockRegistryService) List(ctx context.Context, userID uuid.UUID) ([]domain.Chatbot, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Chatbot), args.Error(1)
}

func (m *MockRegistryService) GetPrimary(ctx context.Context, userID uuid.UUID) (*domain.Chatbot, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Chatbot), args.Error(1)
}

func (m *MockRegistryService) Get(ctx context.Context, userID, botID uuid.UUID) (*domain.Chatbot, error) {
	args := m.Called(ctx, userID, botID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Chatbot), args.Error(1)
}

func (m *MockRegistryService) Update(ctx context.Context, input *service.UpdateBotInput) (*domain.Chatbot, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Chatbot), args.Error(1)
}

func (m *MockRegistryService) Archive(ctx context.Context, userID, botID uuid.UUID) error {
	args := m.Called(ctx, userID, botID)
	return args.Error(0)
}

func (m *MockRegistryService) ProviderFor(ctx context.Context, collection string) (service.ProviderChoice, error) {
	args := m.Called(ctx, collection)
	return args.Get(0).(service.ProviderChoice), args.Error(1)
}
