package mocks

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"kaagaz/internal/service"
)

// MockFilingService is a mock implementation of service.FilingService.
type MockFilingService struct {
	mock.Mock
}

func (m *MockFilingService) PrepareGSTR1(ctx context.Context, userID, clientID uuid.UUID, req service.GSTR1Request) (*service.GSTR1Result, error) {
	args := m.Called(ctx, userID, clientID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.GSTR1Result), args.Error(1)
}

func (m *MockFilingService) PrepareGSTR3B(ctx context.Context, userID, clientID uuid.UUID, req service.GSTR3BRequest) (*service.GSTR3BResult, error) {
	args := m.Called(ctx, userID, clientID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.GSTR3BResult), args.Error(1)
}

func (m *MockFilingService) ParseITCWorkbook(r io.Reader) (*service.ITCWorkbookResult, error) {
	args := m.Called(r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ITCWorkbookResult), args.Error(1)
}
