package service

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"

	"kaagaz/internal/domain"
	"kaagaz/internal/gstr"
	"kaagaz/internal/port"
	"kaagaz/internal/validator"
)

// financialYearRe matches the UI form "2024-25".
var financialYearRe = regexp.MustCompile(`^(\d{4})-(\d{2})$`)

// InsightsService surfaces compliance data from the external GST API:
// registration status, filer details, and per-month return filing status.
type InsightsService interface {
	Status(ctx context.Context, gstin string) (json.RawMessage, error)
	DetailsByGSTIN(ctx context.Context, gstin string) (json.RawMessage, error)
	DetailsByPAN(ctx context.Context, pan string) (json.RawMessage, error)
	FilingStatus(ctx context.Context, gstin, financialYear string) ([]gstr.FilingStatusRow, error)
}

type insightsService struct {
	lookup port.GSTLookupClient
}

// NewInsightsService creates a new InsightsService implementation.
func NewInsightsService(lookup port.GSTLookupClient) InsightsService {
	return &insightsService{lookup: lookup}
}

func (s *insightsService) Status(ctx context.Context, gstin string) (json.RawMessage, error) {
	if _, err := gstr.StateCode(gstin); err != nil {
		return nil, err
	}
	return s.lookup.Status(ctx, gstin)
}

// DetailsByGSTIN is a free-text lookup, so it gets the strict format
// check rather than the length check the ledger uses.
func (s *insightsService) DetailsByGSTIN(ctx context.Context, gstin string) (json.RawMessage, error) {
	if !validator.IsGSTIN(gstin) {
		return nil, fmt.Errorf("insightsService.DetailsByGSTIN: %q: %w", gstin, domain.ErrInvalidGSTIN)
	}
	return s.lookup.DetailsByGSTIN(ctx, gstin)
}

func (s *insightsService) DetailsByPAN(ctx context.Context, pan string) (json.RawMessage, error) {
	if !validator.IsPAN(pan) {
		return nil, fmt.Errorf("insightsService.DetailsByPAN: %q: %w", pan, domain.ErrInvalidGSTIN)
	}
	return s.lookup.DetailsByPAN(ctx, pan)
}

// FilingStatus fetches a year of filing events and folds them into one
// row per month. The financial year arrives as "2024-25" and the upstream
// API wants "2024-2025".
func (s *insightsService) FilingStatus(ctx context.Context, gstin, financialYear string) ([]gstr.FilingStatusRow, error) {
	if _, err := gstr.StateCode(gstin); err != nil {
		return nil, err
	}

	apiYear, err := expandFinancialYear(financialYear)
	if err != nil {
		return nil, err
	}

	events, err := s.lookup.ReturnFilingStatus(ctx, gstin, apiYear)
	if err != nil {
		return nil, err
	}
	return gstr.NormalizeFilingStatus(events), nil
}

// expandFinancialYear turns "2024-25" into "2024-2025". The short suffix
// must be the start year plus one.
func expandFinancialYear(fy string) (string, error) {
	m := financialYearRe.FindStringSubmatch(fy)
	if m == nil {
		return "", fmt.Errorf("expandFinancialYear: %q: %w", fy, domain.ErrInvalidFinancialYr)
	}
	start, _ := strconv.Atoi(m[1])
	if m[2] != fmt.Sprintf("%02d", (start+1)%100) {
		return "", fmt.Errorf("expandFinancialYear: %q: %w", fy, domain.ErrInvalidFinancialYr)
	}
	return fmt.Sprintf("%d-%d", start, start+1), nil
}
