// Package csvexport renders a client's sales ledger as CSV for
// spreadsheet review.
package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"kaagaz/internal/domain"
	"kaagaz/internal/gstr"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row.
var columns = []string{
	"Invoice Number",
	"Invoice Date",
	"Customer Name",
	"Customer GSTIN",
	"Type",
	"Place of Supply",
	"Taxable Value",
	"GST Rate",
	"IGST",
	"CGST",
	"SGST",
	"Total Tax",
	"Invoice Value",
}

// Writer wraps csv.Writer for exporting sales invoices as CSV.
type Writer struct {
	csv       *csv.Writer
	homeState string
}

// NewWriter creates a Writer that writes CSV to w. The client's home
// state drives the IGST versus CGST+SGST split per row.
func NewWriter(w io.Writer, client *domain.Client) (*Writer, error) {
	homeState, err := client.HomeStateCode()
	if err != nil {
		return nil, fmt.Errorf("csvexport.NewWriter: %w", err)
	}
	if _, err := w.Write(BOM); err != nil {
		return nil, fmt.Errorf("csvexport.NewWriter: writing BOM: %w", err)
	}
	return &Writer{csv: csv.NewWriter(w), homeState: homeState}, nil
}

// WriteHeader writes the column header row.
func (w *Writer) WriteHeader() error {
	if err := w.csv.Write(columns); err != nil {
		return fmt.Errorf("csvexport.WriteHeader: %w", err)
	}
	return nil
}

// WriteInvoice writes one ledger row with its computed tax split.
func (w *Writer) WriteInvoice(inv domain.SalesInvoice) error {
	split := gstr.SplitTax(inv.TotalTax(), inv.PlaceOfSupply, w.homeState)

	kind := "B2C"
	if inv.IsB2B() {
		kind = "B2B"
	}

	row := []string{
		inv.InvoiceNumber,
		inv.InvoiceDate,
		inv.CustomerName,
		inv.CustomerGSTIN,
		kind,
		inv.PlaceOfSupply,
		formatAmount(inv.TaxableValue),
		formatAmount(inv.GSTRate),
		formatAmount(split.IGST),
		formatAmount(split.CGST),
		formatAmount(split.SGST),
		formatAmount(inv.TotalTax()),
		formatAmount(inv.InvoiceValue),
	}
	if err := w.csv.Write(row); err != nil {
		return fmt.Errorf("csvexport.WriteInvoice: %w", err)
	}
	return nil
}

// Flush writes buffered data to the underlying writer.
func (w *Writer) Flush() error {
	w.csv.Flush()
	return w.csv.Error()
}

// WriteSalesLedger writes the full ledger for a client: BOM, header,
// one row per invoice.
func WriteSalesLedger(out io.Writer, client *domain.Client, invoices []domain.SalesInvoice) error {
	w, err := NewWriter(out, client)
	if err != nil {
		return err
	}
	if err := w.WriteHeader(); err != nil {
		return err
	}
	for _, inv := range invoices {
		if err := w.WriteInvoice(inv); err != nil {
			return err
		}
	}
	return w.Flush()
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
