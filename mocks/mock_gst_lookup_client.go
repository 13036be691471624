package mocks

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"

	"kaagaz/internal/gstr"
)

// MockGSTLookupClient is a mock implementation of port.GSTLookupClient.
type MockGSTLookupClient struct {
	mock.Mock
}

func (m *MockGSTLookupClient) Status(ctx context.Context, gstin string) (json.RawMessage, error) {
	args := m.Called(ctx, gstin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockGSTLookupClient) DetailsByGSTIN(ctx context.Context, gstin string) (json.RawMessage, error) {
	args := m.Called(ctx, gstin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockGSTLookupClient) DetailsByPAN(ctx context.Context, pan string) (json.RawMessage, error) {
	args := m.Called(ctx, pan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockGSTLookupClient) ReturnFilingStatus(ctx context.Context, gstin, apiYear string) ([]gstr.FilingEvent, error) {
	args := m.Called(ctx, gstin, apiYear)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]gstr.FilingEvent), args.Error(1)
}
