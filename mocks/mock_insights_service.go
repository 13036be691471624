package mocks

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"

	"kaagaz/internal/gstr"
)

// MockInsightsService is a mock implementation of service.InsightsService.
type MockInsightsService struct {
	mock.Mock
}

func (m *MockInsightsService) Status(ctx context.Context, gstin string) (json.RawMessage, error) {
	args := m.Called(ctx, gstin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockInsightsService) DetailsByGSTIN(ctx context.Context, gstin string) (json.RawMessage, error) {
	args := m.Called(ctx, gstin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockInsightsService) DetailsByPAN(ctx context.Context, pan string) (json.RawMessage, error) {
	args := m.Called(ctx, pan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockInsightsService) FilingStatus(ctx context.Context, gstin, financialYear string) ([]gstr.FilingStatusRow, error) {
	args := m.Called(ctx, gstin, financialYear)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]gstr.FilingStatusRow), args.Error(1)
}
