package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"kaagaz/internal/domain"
)

// MockPurchaseInvoiceRepo is a mock implementation of port.PurchaseInvoiceRepository.
type MockPurchaseInvoiceRepo struct {
	mock.Mock
}

func (m *MockPurchaseInvoiceRepo) Create(ctx context.Context, inv *domain.PurchaseInvoice) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

func (m *MockPurchaseInvoiceRepo) ListByClient(ctx context.Context, userID, clientID uuid.UUID) ([]domain.PurchaseInvoice, error) {
	args := m.Called(ctx, userID, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PurchaseInvoice), args.Error(1)
}

func (m *MockPurchaseInvoiceRepo) Delete(ctx context.Context, userID, clientID, invoiceID uuid.UUID) error {
	args := m.Called(ctx, userID, clientID, invoiceID)
	return args.Error(0)
}
