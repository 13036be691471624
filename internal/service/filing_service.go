package service

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"

	"kaagaz/internal/gstr"
	"kaagaz/internal/port"
)

// GSTR1Request selects the filing period and carries the prior financial
// year's gross turnover, which the portal requires but the ledger cannot know.
type GSTR1Request struct {
	Year          int     `json:"year" binding:"required"`
	Month         int     `json:"month" binding:"required"`
	GrossTurnover float64 `json:"gross_turnover"`
}

// GSTR3BRequest selects the filing period and carries the reconciled
// supplier rows from a previously parsed GSTR-2B workbook, with the
// caller's claim toggles applied. The server keeps no reconciliation
// state between requests.
type GSTR3BRequest struct {
	Year         int                   `json:"year" binding:"required"`
	Month        int                   `json:"month" binding:"required"`
	ITCSuppliers []gstr.ITCSupplierRow `json:"itc_suppliers"`
}

// GSTR1Summary is the display summary shown after processing.
type GSTR1Summary struct {
	FilingPeriod   string  `json:"filing_period"`
	B2BCustomers   int     `json:"b2b_customers"`
	PeriodTurnover float64 `json:"period_turnover"`
}

// GSTR1Result bundles the portal document with its summary.
type GSTR1Result struct {
	Document *gstr.GSTR1Document `json:"document"`
	Summary  GSTR1Summary        `json:"summary"`
}

// GSTR3BSummary is the display summary shown after processing.
type GSTR3BSummary struct {
	FilingPeriod  string  `json:"filing_period"`
	OutwardTax    float64 `json:"outward_tax"`
	TaxableValue  float64 `json:"taxable_value"`
	NetITCClaimed float64 `json:"net_itc_claimed"`
}

// GSTR3BResult bundles the portal document with its summary.
type GSTR3BResult struct {
	Document *gstr.GSTR3BDocument `json:"document"`
	Summary  GSTR3BSummary        `json:"summary"`
}

// ITCWorkbookResult returns the parsed supplier rows and the running
// claimed total (all rows start claimed).
type ITCWorkbookResult struct {
	Suppliers    []gstr.ITCSupplierRow `json:"suppliers"`
	TotalClaimed float64               `json:"total_claimed"`
}

// FilingService prepares filing documents from ledger snapshots. Documents
// are derived values: regenerated in full on every call and never stored.
type FilingService interface {
	PrepareGSTR1(ctx context.Context, userID, clientID uuid.UUID, req GSTR1Request) (*GSTR1Result, error)
	PrepareGSTR3B(ctx context.Context, userID, clientID uuid.UUID, req GSTR3BRequest) (*GSTR3BResult, error)
	ParseITCWorkbook(r io.Reader) (*ITCWorkbookResult, error)
}

type filingService struct {
	clientRepo port.ClientRepository
	salesRepo  port.SalesInvoiceRepository
}

// NewFilingService creates a new FilingService implementation.
func NewFilingService(clientRepo port.ClientRepository, salesRepo port.SalesInvoiceRepository) FilingService {
	return &filingService{clientRepo: clientRepo, salesRepo: salesRepo}
}

func (s *filingService) PrepareGSTR1(ctx context.Context, userID, clientID uuid.UUID, req GSTR1Request) (*GSTR1Result, error) {
	period, err := gstr.NewPeriod(req.Year, req.Month)
	if err != nil {
		return nil, err
	}

	client, err := s.clientRepo.GetByID(ctx, userID, clientID)
	if err != nil {
		return nil, err
	}

	invoices, err := s.salesRepo.ListByClient(ctx, userID, clientID)
	if err != nil {
		return nil, fmt.Errorf("filingService.PrepareGSTR1: %w", err)
	}

	doc, err := gstr.BuildGSTR1(invoices, period, client.GSTIN, req.GrossTurnover)
	if err != nil {
		return nil, err
	}

	log.Printf("filingService.PrepareGSTR1: client %s period %s, %d b2b groups, turnover %.2f",
		clientID, doc.Fp, len(doc.B2B), doc.CurGt)

	return &GSTR1Result{
		Document: doc,
		Summary: GSTR1Summary{
			FilingPeriod:   doc.Fp,
			B2BCustomers:   len(doc.B2B),
			PeriodTurnover: doc.CurGt,
		},
	}, nil
}

func (s *filingService) PrepareGSTR3B(ctx context.Context, userID, clientID uuid.UUID, req GSTR3BRequest) (*GSTR3BResult, error) {
	period, err := gstr.NewPeriod(req.Year, req.Month)
	if err != nil {
		return nil, err
	}

	client, err := s.clientRepo.GetByID(ctx, userID, clientID)
	if err != nil {
		return nil, err
	}

	sales, err := s.salesRepo.ListByClient(ctx, userID, clientID)
	if err != nil {
		return nil, fmt.Errorf("filingService.PrepareGSTR3B: %w", err)
	}

	doc, err := gstr.BuildGSTR3B(sales, req.ITCSuppliers, period, client.GSTIN)
	if err != nil {
		return nil, err
	}

	out := doc.SupDetails.OsupDet
	net := doc.ItcElg.ItcNet
	return &GSTR3BResult{
		Document: doc,
		Summary: GSTR3BSummary{
			FilingPeriod:  doc.Fp,
			OutwardTax:    out.Iamt + out.Camt + out.Samt,
			TaxableValue:  out.Txval,
			NetITCClaimed: net.Iamt + net.Camt + net.Samt,
		},
	}, nil
}

// ParseITCWorkbook parses an uploaded GSTR-2B workbook. A format failure
// rejects the upload whole; the caller keeps whatever rows it had before.
func (s *filingService) ParseITCWorkbook(r io.Reader) (*ITCWorkbookResult, error) {
	rows, err := gstr.ParseITCWorkbook(r)
	if err != nil {
		return nil, err
	}

	log.Printf("filingService.ParseITCWorkbook: %d suppliers aggregated", len(rows))
	return &ITCWorkbookResult{
		Suppliers:    rows,
		TotalClaimed: gstr.TotalClaimed(rows),
	}, nil
}
