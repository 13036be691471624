package csvexport_test

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kaagaz/internal/csvexport"
	"kaagaz/internal/domain"
)

func TestWriteSalesLedger(t *testing.T) {
	client := &domain.Client{Name: "Sharma Traders", GSTIN: "27AAPFU0939F1ZV"}
	invoices := []domain.SalesInvoice{
		{
			InvoiceNumber: "INV-001", CustomerName: "Gupta Enterprises",
			CustomerGSTIN: "07AABCU9603R1ZM", PlaceOfSupply: "07",
			InvoiceDate: "2024-05-12", InvoiceValue: 1180, TaxableValue: 1000, GSTRate: 18,
		},
		{
			InvoiceNumber: "INV-002", CustomerName: "Walk-in Customer",
			PlaceOfSupply: "27",
			InvoiceDate:   "2024-05-13", InvoiceValue: 590, TaxableValue: 500, GSTRate: 18,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, csvexport.WriteSalesLedger(&buf, client, invoices))

	out := buf.Bytes()
	assert.True(t, bytes.HasPrefix(out, csvexport.BOM))

	records, err := csv.NewReader(strings.NewReader(string(bytes.TrimPrefix(out, csvexport.BOM)))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "Invoice Number", records[0][0])

	// Inter-state B2B invoice: the whole tax lands in IGST.
	assert.Equal(t, "INV-001", records[1][0])
	assert.Equal(t, "B2B", records[1][4])
	assert.Equal(t, "180.00", records[1][8])
	assert.Equal(t, "0.00", records[1][9])
	assert.Equal(t, "0.00", records[1][10])

	// Intra-state B2C invoice: tax splits evenly into CGST and SGST.
	assert.Equal(t, "B2C", records[2][4])
	assert.Equal(t, "0.00", records[2][8])
	assert.Equal(t, "45.00", records[2][9])
	assert.Equal(t, "45.00", records[2][10])
}

func TestWriteSalesLedger_BadClientGSTIN(t *testing.T) {
	client := &domain.Client{Name: "Broken Traders", GSTIN: "27AAP"}

	var buf bytes.Buffer
	err := csvexport.WriteSalesLedger(&buf, client, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidGSTIN)
}
