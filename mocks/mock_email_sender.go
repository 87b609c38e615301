package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendBotReadyEmail(ctx context.Context, toEmail, toName, botID string) error {
	args := m.Called(ctx, toEmail, toName, botID)
	return args.Error(0)
}
