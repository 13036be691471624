package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"kaagaz/internal/domain"
	"kaagaz/internal/port"
)

// CreateSalesInvoiceInput is the DTO for recording a sales invoice.
type CreateSalesInvoiceInput struct {
	InvoiceNumber string  `json:"invoice_number" binding:"required"`
	CustomerName  string  `json:"customer_name" binding:"required"`
	CustomerGSTIN string  `json:"customer_gstin"`
	PlaceOfSupply string  `json:"place_of_supply" binding:"required,len=2"`
	InvoiceDate   string  `json:"invoice_date" binding:"required"`
	InvoiceValue  float64 `json:"invoice_value" binding:"required"`
	TaxableValue  float64 `json:"taxable_value" binding:"required"`
	GSTRate       float64 `json:"gst_rate"`
}

// CreatePurchaseInvoiceInput is the DTO for recording a purchase invoice.
type CreatePurchaseInvoiceInput struct {
	InvoiceNumber string  `json:"invoice_number" binding:"required"`
	SupplierName  string  `json:"supplier_name" binding:"required"`
	SupplierGSTIN string  `json:"supplier_gstin"`
	InvoiceDate   string  `json:"invoice_date" binding:"required"`
	TaxableValue  float64 `json:"taxable_value" binding:"required"`
	ITCClaimed    float64 `json:"itc_claimed"`
}

// LedgerService manages the per-client sales and purchase ledgers.
type LedgerService interface {
	AddSalesInvoice(ctx context.Context, userID, clientID uuid.UUID, input CreateSalesInvoiceInput) (*domain.SalesInvoice, error)
	ListSalesInvoices(ctx context.Context, userID, clientID uuid.UUID) ([]domain.SalesInvoice, error)
	DeleteSalesInvoice(ctx context.Context, userID, clientID, invoiceID uuid.UUID) error

	AddPurchaseInvoice(ctx context.Context, userID, clientID uuid.UUID, input CreatePurchaseInvoiceInput) (*domain.PurchaseInvoice, error)
	ListPurchaseInvoices(ctx context.Context, userID, clientID uuid.UUID) ([]domain.PurchaseInvoice, error)
	DeletePurchaseInvoice(ctx context.Context, userID, clientID, invoiceID uuid.UUID) error
}

type ledgerService struct {
	clientRepo   port.ClientRepository
	salesRepo    port.SalesInvoiceRepository
	purchaseRepo port.PurchaseInvoiceRepository
}

// NewLedgerService creates a new LedgerService implementation.
func NewLedgerService(
	clientRepo port.ClientRepository,
	salesRepo port.SalesInvoiceRepository,
	purchaseRepo port.PurchaseInvoiceRepository,
) LedgerService {
	return &ledgerService{
		clientRepo:   clientRepo,
		salesRepo:    salesRepo,
		purchaseRepo: purchaseRepo,
	}
}

func (s *ledgerService) AddSalesInvoice(ctx context.Context, userID, clientID uuid.UUID, input CreateSalesInvoiceInput) (*domain.SalesInvoice, error) {
	if _, err := s.clientRepo.GetByID(ctx, userID, clientID); err != nil {
		return nil, err
	}
	if input.InvoiceValue < input.TaxableValue {
		return nil, domain.ErrInvalidInvoiceValue
	}
	// A partial counterparty GSTIN would silently demote the invoice to
	// B2C at filing time; reject it at entry instead.
	if input.CustomerGSTIN != "" && len(input.CustomerGSTIN) != domain.GSTINLength {
		return nil, domain.ErrInvalidGSTIN
	}

	inv := &domain.SalesInvoice{
		UserID:        userID,
		ClientID:      clientID,
		InvoiceNumber: input.InvoiceNumber,
		CustomerName:  input.CustomerName,
		CustomerGSTIN: input.CustomerGSTIN,
		PlaceOfSupply: input.PlaceOfSupply,
		InvoiceDate:   input.InvoiceDate,
		InvoiceValue:  input.InvoiceValue,
		TaxableValue:  input.TaxableValue,
		GSTRate:       input.GSTRate,
	}
	if err := s.salesRepo.Create(ctx, inv); err != nil {
		return nil, fmt.Errorf("ledgerService.AddSalesInvoice: %w", err)
	}
	return inv, nil
}

func (s *ledgerService) ListSalesInvoices(ctx context.Context, userID, clientID uuid.UUID) ([]domain.SalesInvoice, error) {
	return s.salesRepo.ListByClient(ctx, userID, clientID)
}

func (s *ledgerService) DeleteSalesInvoice(ctx context.Context, userID, clientID, invoiceID uuid.UUID) error {
	return s.salesRepo.Delete(ctx, userID, clientID, invoiceID)
}

func (s *ledgerService) AddPurchaseInvoice(ctx context.Context, userID, clientID uuid.UUID, input CreatePurchaseInvoiceInput) (*domain.PurchaseInvoice, error) {
	if _, err := s.clientRepo.GetByID(ctx, userID, clientID); err != nil {
		return nil, err
	}
	if input.SupplierGSTIN != "" && len(input.SupplierGSTIN) != domain.GSTINLength {
		return nil, domain.ErrInvalidGSTIN
	}

	inv := &domain.PurchaseInvoice{
		UserID:        userID,
		ClientID:      clientID,
		InvoiceNumber: input.InvoiceNumber,
		SupplierName:  input.SupplierName,
		SupplierGSTIN: input.SupplierGSTIN,
		InvoiceDate:   input.InvoiceDate,
		TaxableValue:  input.TaxableValue,
		ITCClaimed:    input.ITCClaimed,
	}
	if err := s.purchaseRepo.Create(ctx, inv); err != nil {
		return nil, fmt.Errorf("ledgerService.AddPurchaseInvoice: %w", err)
	}
	return inv, nil
}

func (s *ledgerService) ListPurchaseInvoices(ctx context.Context, userID, clientID uuid.UUID) ([]domain.PurchaseInvoice, error) {
	return s.purchaseRepo.ListByClient(ctx, userID, clientID)
}

func (s *ledgerService) DeletePurchaseInvoice(ctx context.Context, userID, clientID, invoiceID uuid.UUID) error {
	return s.purchaseRepo.Delete(ctx, userID, clientID, invoiceID)
}
