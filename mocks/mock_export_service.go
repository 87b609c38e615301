package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"pitchbot/internal/export"
	"pitchbot/internal/service"
)

// MockExportService is a mock implementation of service.ExportService.
type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) KnowledgeReport(ctx context.Context, input *service.ReportInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}

func (m *MockExportService) EmbedSnippets(ctx context.Context, userID, botID uuid.UUID) (export.EmbedSnippets, error) {
	args := m.Called(ctx, userID, botID)
	return args.Get(0).(export.EmbedSnippets), args.Error(1)
}
