package service_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"kaagaz/internal/domain"
	"kaagaz/internal/gstr"
	"kaagaz/internal/service"
	"kaagaz/mocks"
)

func TestInsightsService_Status_Passthrough(t *testing.T) {
	lookup := new(mocks.MockGSTLookupClient)
	svc := service.NewInsightsService(lookup)

	payload := json.RawMessage(`{"sts":"Active"}`)
	lookup.On("Status", mock.Anything, "27AAPFU0939F1ZV").Return(payload, nil)

	result, err := svc.Status(context.Background(), "27AAPFU0939F1ZV")
	assert.NoError(t, err)
	assert.JSONEq(t, `{"sts":"Active"}`, string(result))
}

func TestInsightsService_Status_InvalidGSTIN(t *testing.T) {
	lookup := new(mocks.MockGSTLookupClient)
	svc := service.NewInsightsService(lookup)

	_, err := svc.Status(context.Background(), "27AAP")
	assert.ErrorIs(t, err, domain.ErrInvalidGSTIN)
	lookup.AssertNotCalled(t, "Status")
}

func TestInsightsService_DetailsByPAN_InvalidLength(t *testing.T) {
	lookup := new(mocks.MockGSTLookupClient)
	svc := service.NewInsightsService(lookup)

	_, err := svc.DetailsByPAN(context.Background(), "AAPFU093")
	assert.Error(t, err)
	lookup.AssertNotCalled(t, "DetailsByPAN")
}

func TestInsightsService_FilingStatus_ExpandsFinancialYear(t *testing.T) {
	lookup := new(mocks.MockGSTLookupClient)
	svc := service.NewInsightsService(lookup)

	events := []gstr.FilingEvent{
		{ReturnPeriod: "042024", ReturnType: "GSTR1", Status: "Filed", DateOfFiling: "11-05-2024", ModeOfFiling: "ONLINE"},
		{ReturnPeriod: "042024", ReturnType: "GSTR3B", Status: "Filed", DateOfFiling: "20-05-2024", ModeOfFiling: "ONLINE"},
	}
	lookup.On("ReturnFilingStatus", mock.Anything, "27AAPFU0939F1ZV", "2024-2025").Return(events, nil)

	rows, err := svc.FilingStatus(context.Background(), "27AAPFU0939F1ZV", "2024-25")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "April", rows[0].Month)
	assert.Equal(t, "Filed", rows[0].GSTR1Status)
	assert.Equal(t, "Filed", rows[0].GSTR3BStatus)
	lookup.AssertExpectations(t)
}

func TestInsightsService_FilingStatus_BadFinancialYear(t *testing.T) {
	lookup := new(mocks.MockGSTLookupClient)
	svc := service.NewInsightsService(lookup)

	for _, fy := range []string{"2024", "2024-2025", "2024-26", "24-25", ""} {
		_, err := svc.FilingStatus(context.Background(), "27AAPFU0939F1ZV", fy)
		assert.ErrorIs(t, err, domain.ErrInvalidFinancialYr, "fy=%q", fy)
	}
	lookup.AssertNotCalled(t, "ReturnFilingStatus")
}

func TestInsightsService_FilingStatus_CenturyRollover(t *testing.T) {
	lookup := new(mocks.MockGSTLookupClient)
	svc := service.NewInsightsService(lookup)

	lookup.On("ReturnFilingStatus", mock.Anything, "27AAPFU0939F1ZV", "2099-2100").
		Return([]gstr.FilingEvent{}, nil)

	rows, err := svc.FilingStatus(context.Background(), "27AAPFU0939F1ZV", "2099-00")
	assert.NoError(t, err)
	assert.Empty(t, rows)
}
