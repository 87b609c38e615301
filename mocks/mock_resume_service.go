package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pitchbot/internal/domain"
	"pitchbot/internal/service"
)

// MockResumeService is a mock implementation of service.ResumeService.
type MockResumeService struct {
	mock.Mock
}

func (m *MockResumeService) Parse(ctx context.Context, input *service.ParseResumeInput) (domain.ParsedResumeData, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.ParsedResumeData), args.Error(1)
}
