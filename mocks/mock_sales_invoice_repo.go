package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"kaagaz/internal/domain"
)

// MockSalesInvoiceRepo is a mock implementation of port.SalesInvoiceRepository.
type MockSalesInvoiceRepo struct {
	mock.Mock
}

func (m *MockSalesInvoiceRepo) Create(ctx context.Context, inv *domain.SalesInvoice) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

func (m *MockSalesInvoiceRepo) ListByClient(ctx context.Context, userID, clientID uuid.UUID) ([]domain.SalesInvoice, error) {
	args := m.Called(ctx, userID, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SalesInvoice), args.Error(1)
}

func (m *MockSalesInvoiceRepo) Delete(ctx context.Context, userID, clientID, invoiceID uuid.UUID) error {
	args := m.Called(ctx, userID, clientID, invoiceID)
	return args.Error(0)
}
