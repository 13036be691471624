// Package gstapi implements port.GSTLookupClient against the hosted GST
// insights worker.
package gstapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"kaagaz/internal/config"
	"kaagaz/internal/domain"
	"kaagaz/internal/gstr"
)

// Client calls the GST insights worker over HTTP.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a GST lookup client from configuration.
func NewClient(cfg config.GSTAPIConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// NewClientWithEndpoint creates a client pointing at a custom base URL (for testing).
func NewClientWithEndpoint(baseURL string) *Client {
	return &Client{baseURL: baseURL, client: &http.Client{Timeout: 30 * time.Second}}
}

func (c *Client) Status(ctx context.Context, gstin string) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("/getGSTStatus/%s", gstin))
}

func (c *Client) DetailsByGSTIN(ctx context.Context, gstin string) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("/getGSTDetailsUsingGST/%s", gstin))
}

func (c *Client) DetailsByPAN(ctx context.Context, pan string) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("/getGSTDetailsUsingPAN/%s", pan))
}

// filingStatusResponse models the worker's return-filing response. Filings
// are keyed by the financial year in "YYYY-YYYY" form.
type filingStatusResponse struct {
	Data struct {
		FillingData map[string][]gstr.FilingEvent `json:"fillingData"`
	} `json:"data"`
}

// ReturnFilingStatus fetches the filing events for one financial year.
// apiYear is the expanded "YYYY-YYYY" form. A year with no filings returns
// an empty slice, not an error.
func (c *Client) ReturnFilingStatus(ctx context.Context, gstin, apiYear string) ([]gstr.FilingEvent, error) {
	body, err := c.get(ctx, fmt.Sprintf("/getGSTReturnFilingStatusSpecificYear/%s/%s", gstin, apiYear))
	if err != nil {
		return nil, err
	}

	var resp filingStatusResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("gstapi.ReturnFilingStatus: unmarshal: %w", domain.ErrGSTUpstream)
	}
	return resp.Data.FillingData[apiYear], nil
}

func (c *Client) get(ctx context.Context, path string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("gstapi: creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gstapi: calling worker: %w", domain.ErrGSTUpstream)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("gstapi: reading response: %w", domain.ErrGSTUpstream)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gstapi: worker status %d: %s: %w",
			resp.StatusCode, truncate(string(body), 200), domain.ErrGSTUpstream)
	}
	return body, nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
