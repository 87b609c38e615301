package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pitchbot/internal/domain"
	"pitchbot/internal/enrichment"
	"pitchbot/internal/pipeline"
	"pitchbot/internal/service"
)

// MockSessionService is a mock implementation of service.SessionService.
type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Create(ctx context.Context) (*pipeline.Session, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pipeline.Session), args.Error(1)
}

func (m *MockSessionService) Get(ctx context.Context, id string) (*pipeline.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pipeline.Session), args.Error(1)
}

func (m *MockSessionService) ApplyParse(ctx context.Context, id string, parsed domain.ParsedResumeData, fileBytes []byte, meta domain.ResumeFileMeta) error {
	args := m.Called(ctx, id, parsed, fileBytes, meta)
	return args.Error(0)
}

func (m *MockSessionService) SetEnrichment(ctx context.Context, id, key, text string) (enrichment.Stats, error) {
	args := m.Called(ctx, id, key, text)
	return args.Get(0).(enrichment.Stats), args.Error(1)
}

func (m *MockSessionService) Build(ctx context.Context, id string, choice service.ProviderChoice) (string, error) {
	args := m.Called(ctx, id, choice)
	return args.String(0), args.Error(1)
}

func (m *MockSessionService) Finalize(ctx context.Context, id string, input *service.FinalizeBotInput) (*domain.Chatbot, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Chatbot), args.Error(1)
}

func (m *MockSessionService) Reset(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
