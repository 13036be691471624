package gstr

import (
	"fmt"
	"time"

	"kaagaz/internal/domain"
)

// Period identifies one calendar month's return.
type Period struct {
	Year  int
	Month int // 1-12
}

// NewPeriod validates and constructs a filing period.
func NewPeriod(year, month int) (Period, error) {
	if month < 1 || month > 12 {
		return Period{}, domain.ErrInvalidPeriod
	}
	return Period{Year: year, Month: month}, nil
}

// String renders the portal's MMYYYY filing period key.
func (p Period) String() string {
	return fmt.Sprintf("%02d%04d", p.Month, p.Year)
}

// invoiceDateLayouts are the accepted ledger date formats, tried in order.
var invoiceDateLayouts = []string{"2006-01-02", time.RFC3339, "02-01-2006"}

// ParseInvoiceDate parses a ledger date string. The bool result is false
// for dates that do not parse; callers exclude those records rather than
// failing the whole build.
func ParseInvoiceDate(s string) (time.Time, bool) {
	for _, layout := range invoiceDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FilterSalesByPeriod returns the invoices whose date falls inside the
// period. Unparseable dates are silently dropped. The operation is
// idempotent: filtering an already-filtered set by the same period returns
// the same set.
func FilterSalesByPeriod(invoices []domain.SalesInvoice, p Period) []domain.SalesInvoice {
	out := make([]domain.SalesInvoice, 0, len(invoices))
	for _, inv := range invoices {
		t, ok := ParseInvoiceDate(inv.InvoiceDate)
		if !ok {
			continue
		}
		if t.Year() == p.Year && int(t.Month()) == p.Month {
			out = append(out, inv)
		}
	}
	return out
}
