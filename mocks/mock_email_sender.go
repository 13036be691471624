package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"kaagaz/internal/port"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendExportReady(ctx context.Context, n port.ExportNotification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}
