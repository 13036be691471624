package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"kaagaz/internal/domain"
	"kaagaz/internal/service"
)

// MockLedgerService is a mock implementation of service.LedgerService.
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) AddSalesInvoice(ctx context.Context, userID, clientID uuid.UUID, input service.CreateSalesInvoiceInput) (*domain.SalesInvoice, error) {
	args := m.Called(ctx, userID, clientID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SalesInvoice), args.Error(1)
}

func (m *MockLedgerService) ListSalesInvoices(ctx context.Context, userID, clientID uuid.UUID) ([]domain.SalesInvoice, error) {
	args := m.Called(ctx, userID, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SalesInvoice), args.Error(1)
}

func (m *MockLedgerService) DeleteSalesInvoice(ctx context.Context, userID, clientID, invoiceID uuid.UUID) error {
	args := m.Called(ctx, userID, clientID, invoiceID)
	return args.Error(0)
}

func (m *MockLedgerService) AddPurchaseInvoice(ctx context.Context, userID, clientID uuid.UUID, input service.CreatePurchaseInvoiceInput) (*domain.PurchaseInvoice, error) {
	args := m.Called(ctx, userID, clientID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseInvoice), args.Error(1)
}

func (m *MockLedgerService) ListPurchaseInvoices(ctx context.Context, userID, clientID uuid.UUID) ([]domain.PurchaseInvoice, error) {
	args := m.Called(ctx, userID, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PurchaseInvoice), args.Error(1)
}

func (m *MockLedgerService) DeletePurchaseInvoice(ctx context.Context, userID, clientID, invoiceID uuid.UUID) error {
	args := m.Called(ctx, userID, clientID, invoiceID)
	return args.Error(0)
}
