package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockLLMProvider is a mock implementation of port.LLMProvider.
type MockLLMProvider struct {
	mock.Mock
}

func (m *MockLLMProvider) Embed(ctx context.Context, inputs []string) ([][]float32, error) {
	args := m.Called(ctx, inputs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([][]float32), args.Error(1)
}

func (m *MockLLMProvider) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func (m *MockLLMProvider) Name() string {
	args := m.Called()
	return args.String(0)
}
