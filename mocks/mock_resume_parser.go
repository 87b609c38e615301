package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pitchbot/internal/domain"
)

// MockResumeParser is a mock implementation of port.ResumeParser.
type MockResumeParser struct {
	mock.Mock
}

func (m *MockResumeParser) Parse(ctx context.Context, rawText string) (domain.ParsedResumeData, error) {
	args := m.Called(ctx, rawText)
	return args.Get(0).(domain.ParsedResumeData), args.Error(1)
}
