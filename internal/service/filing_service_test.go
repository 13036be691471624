package service_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"kaagaz/internal/domain"
	"kaagaz/internal/gstr"
	"kaagaz/internal/service"
	"kaagaz/mocks"
)

func mayLedger(userID, clientID uuid.UUID) []domain.SalesInvoice {
	return []domain.SalesInvoice{
		{
			UserID: userID, ClientID: clientID,
			InvoiceNumber: "INV-001", CustomerName: "Gupta Enterprises",
			CustomerGSTIN: "07AABCU9603R1ZM", PlaceOfSupply: "07",
			InvoiceDate: "2024-05-12", InvoiceValue: 1180, TaxableValue: 1000, GSTRate: 18,
		},
		{
			UserID: userID, ClientID: clientID,
			InvoiceNumber: "INV-002", CustomerName: "Walk-in Customer",
			PlaceOfSupply: "27",
			InvoiceDate:   "2024-05-13", InvoiceValue: 590, TaxableValue: 500, GSTRate: 18,
		},
		{
			UserID: userID, ClientID: clientID,
			InvoiceNumber: "INV-003", CustomerName: "Gupta Enterprises",
			CustomerGSTIN: "07AABCU9603R1ZM", PlaceOfSupply: "07",
			InvoiceDate: "2024-06-02", InvoiceValue: 2360, TaxableValue: 2000, GSTRate: 18,
		},
	}
}

func TestFilingService_PrepareGSTR1(t *testing.T) {
	clientRepo := new(mocks.MockClientRepo)
	salesRepo := new(mocks.MockSalesInvoiceRepo)
	svc := service.NewFilingService(clientRepo, salesRepo)

	userID, clientID := uuid.New(), uuid.New()
	client := &domain.Client{ID: clientID, UserID: userID, Name: "Sharma Traders", GSTIN: "27AAPFU0939F1ZV"}

	clientRepo.On("GetByID", mock.Anything, userID, clientID).Return(client, nil)
	salesRepo.On("ListByClient", mock.Anything, userID, clientID).Return(mayLedger(userID, clientID), nil)

	result, err := svc.PrepareGSTR1(context.Background(), userID, clientID, service.GSTR1Request{
		Year: 2024, Month: 5, GrossTurnover: 5000000,
	})
	require.NoError(t, err)

	doc := result.Document
	assert.Equal(t, "052024", doc.Fp)
	assert.Equal(t, "27AAPFU0939F1ZV", doc.Gstin)
	assert.Equal(t, 5000000.0, doc.Gt)
	// B2B + B2C inside the period; the June invoice is excluded.
	assert.Equal(t, 1770.0, doc.CurGt)
	require.Len(t, doc.B2B, 1)
	assert.Len(t, doc.B2B[0].Inv, 1)

	assert.Equal(t, "052024", result.Summary.FilingPeriod)
	assert.Equal(t, 1, result.Summary.B2BCustomers)
	assert.Equal(t, 1770.0, result.Summary.PeriodTurnover)
}

func TestFilingService_PrepareGSTR1_InvalidMonth(t *testing.T) {
	clientRepo := new(mocks.MockClientRepo)
	salesRepo := new(mocks.MockSalesInvoiceRepo)
	svc := service.NewFilingService(clientRepo, salesRepo)

	_, err := svc.PrepareGSTR1(context.Background(), uuid.New(), uuid.New(), service.GSTR1Request{
		Year: 2024, Month: 13,
	})

	assert.ErrorIs(t, err, domain.ErrInvalidPeriod)
	clientRepo.AssertNotCalled(t, "GetByID")
}

func TestFilingService_PrepareGSTR1_ClientMissing(t *testing.T) {
	clientRepo := new(mocks.MockClientRepo)
	salesRepo := new(mocks.MockSalesInvoiceRepo)
	svc := service.NewFilingService(clientRepo, salesRepo)

	userID, clientID := uuid.New(), uuid.New()
	clientRepo.On("GetByID", mock.Anything, userID, clientID).Return(nil, domain.ErrNotFound)

	_, err := svc.PrepareGSTR1(context.Background(), userID, clientID, service.GSTR1Request{
		Year: 2024, Month: 5,
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFilingService_PrepareGSTR3B(t *testing.T) {
	clientRepo := new(mocks.MockClientRepo)
	salesRepo := new(mocks.MockSalesInvoiceRepo)
	svc := service.NewFilingService(clientRepo, salesRepo)

	userID, clientID := uuid.New(), uuid.New()
	client := &domain.Client{ID: clientID, UserID: userID, Name: "Sharma Traders", GSTIN: "27AAPFU0939F1ZV"}

	clientRepo.On("GetByID", mock.Anything, userID, clientID).Return(client, nil)
	salesRepo.On("ListByClient", mock.Anything, userID, clientID).Return(mayLedger(userID, clientID), nil)

	itc := []gstr.ITCSupplierRow{
		{GSTIN: "24AAACM1234A1Z5", Name: "Mehta Supplies", IAmt: 100, CAmt: 50, SAmt: 50, TotalITC: 200, IsClaimed: true},
		{GSTIN: "24AAACM1234A1Z6", Name: "Unclaimed Supplies", IAmt: 80, TotalITC: 80, IsClaimed: false},
	}

	result, err := svc.PrepareGSTR3B(context.Background(), userID, clientID, service.GSTR3BRequest{
		Year: 2024, Month: 5, ITCSuppliers: itc,
	})
	require.NoError(t, err)

	doc := result.Document
	assert.Equal(t, "052024", doc.Fp)
	// 1500 taxable across the inter-state B2B and intra-state B2C invoices.
	assert.Equal(t, 1500.0, doc.SupDetails.OsupDet.Txval)
	// Unclaimed rows stay out of the net ITC.
	assert.Equal(t, 100.0, doc.ItcElg.ItcNet.Iamt)
	assert.Equal(t, 50.0, doc.ItcElg.ItcNet.Camt)
	assert.Equal(t, 50.0, doc.ItcElg.ItcNet.Samt)

	assert.Equal(t, 200.0, result.Summary.NetITCClaimed)
	assert.Equal(t, 1500.0, result.Summary.TaxableValue)
}

func TestFilingService_ParseITCWorkbook_BadFormat(t *testing.T) {
	clientRepo := new(mocks.MockClientRepo)
	salesRepo := new(mocks.MockSalesInvoiceRepo)
	svc := service.NewFilingService(clientRepo, salesRepo)

	_, err := svc.ParseITCWorkbook(bytes.NewReader([]byte("not a workbook")))
	assert.Error(t, err)
}
