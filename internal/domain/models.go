package domain

import (
	"time"

	"github.com/google/uuid"
)

// GSTINLength is the fixed length of a Goods & Services Tax identification
// number. The first two characters encode the state code.
const GSTINLength = 15

// User represents an authenticated accountant.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Client represents a GST-registered filer managed by a user.
type Client struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	Name      string    `db:"name" json:"name"`
	GSTIN     string    `db:"gstin" json:"gstin"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// HomeStateCode returns the 2-digit state code encoded in the client's GSTIN.
func (c *Client) HomeStateCode() (string, error) {
	if len(c.GSTIN) != GSTINLength {
		return "", ErrInvalidGSTIN
	}
	return c.GSTIN[:2], nil
}

// SalesInvoice is an outward-supply ledger entry.
//
// InvoiceDate is kept as the raw entered string (ISO "2006-01-02"); entries
// whose date does not parse are excluded from filings rather than rejected
// at ingestion.
type SalesInvoice struct {
	ID            uuid.UUID `db:"id" json:"id"`
	UserID        uuid.UUID `db:"user_id" json:"user_id"`
	ClientID      uuid.UUID `db:"client_id" json:"client_id"`
	InvoiceNumber string    `db:"invoice_number" json:"invoice_number"`
	CustomerName  string    `db:"customer_name" json:"customer_name"`
	CustomerGSTIN string    `db:"customer_gstin" json:"customer_gstin"`
	PlaceOfSupply string    `db:"place_of_supply" json:"place_of_supply"`
	InvoiceDate   string    `db:"invoice_date" json:"invoice_date"`
	InvoiceValue  float64   `db:"invoice_value" json:"invoice_value"`
	TaxableValue  float64   `db:"taxable_value" json:"taxable_value"`
	GSTRate       float64   `db:"gst_rate" json:"gst_rate"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// IsB2B reports whether the invoice has a well-formed counterparty GSTIN.
// Anything else is business-to-consumer and excluded from the B2B section.
func (i *SalesInvoice) IsB2B() bool {
	return len(i.CustomerGSTIN) == GSTINLength
}

// TotalTax returns the tax amount implied by the gross/net split.
func (i *SalesInvoice) TotalTax() float64 {
	return i.InvoiceValue - i.TaxableValue
}

// PurchaseInvoice is an inward-supply ledger entry.
type PurchaseInvoice struct {
	ID            uuid.UUID `db:"id" json:"id"`
	UserID        uuid.UUID `db:"user_id" json:"user_id"`
	ClientID      uuid.UUID `db:"client_id" json:"client_id"`
	InvoiceNumber string    `db:"invoice_number" json:"invoice_number"`
	SupplierName  string    `db:"supplier_name" json:"supplier_name"`
	SupplierGSTIN string    `db:"supplier_gstin" json:"supplier_gstin"`
	InvoiceDate   string    `db:"invoice_date" json:"invoice_date"`
	TaxableValue  float64   `db:"taxable_value" json:"taxable_value"`
	ITCClaimed    float64   `db:"itc_claimed" json:"itc_claimed"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}
