package port

import (
	"context"
	"encoding/json"

	"kaagaz/internal/gstr"
)

// GSTLookupClient abstracts the third-party GST status and return-filing
// APIs. Status and detail payloads are opaque passthrough JSON; the
// filing-status response is validated into typed events at this boundary
// so the core never sees duck-typed data.
type GSTLookupClient interface {
	Status(ctx context.Context, gstin string) (json.RawMessage, error)
	DetailsByGSTIN(ctx context.Context, gstin string) (json.RawMessage, error)
	DetailsByPAN(ctx context.Context, pan string) (json.RawMessage, error)
	ReturnFilingStatus(ctx context.Context, gstin, apiYear string) ([]gstr.FilingEvent, error)
}
