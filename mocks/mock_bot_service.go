package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pitchbot/internal/service"
)

// MockBotService is a mock implementation of service.BotService.
type MockBotService struct {
	mock.Mock
}

func (m *MockBotService) Build(ctx context.Context, input *service.BuildBotInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}

func (m *MockBotService) Finalize(ctx context.Context, input *service.FinalizeInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}

func (m *MockBotService) AddText(ctx context.Context, collection, text string, choice service.ProviderChoice) (int, error) {
	args := m.Called(ctx, collection, text, choice)
	return args.Int(0), args.Error(1)
}
