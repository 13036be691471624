package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"kaagaz/internal/domain"
	"kaagaz/internal/port"
)

type salesInvoiceRepo struct {
	db *sqlx.DB
}

// NewSalesInvoiceRepo creates a new PostgreSQL-backed SalesInvoiceRepository.
func NewSalesInvoiceRepo(db *sqlx.DB) port.SalesInvoiceRepository {
	return &salesInvoiceRepo{db: db}
}

func (r *salesInvoiceRepo) Create(ctx context.Context, inv *domain.SalesInvoice) error {
	inv.ID = uuid.New()
	inv.CreatedAt = time.Now().UTC()

	query := `INSERT INTO sales_invoices (id, user_id, client_id, invoice_number, customer_name,
		customer_gstin, place_of_supply, invoice_date, invoice_value, taxable_value, gst_rate, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.db.ExecContext(ctx, query,
		inv.ID, inv.UserID, inv.ClientID, inv.InvoiceNumber, inv.CustomerName,
		inv.CustomerGSTIN, inv.PlaceOfSupply, inv.InvoiceDate,
		inv.InvoiceValue, inv.TaxableValue, inv.GSTRate, inv.CreatedAt)
	if err != nil {
		return fmt.Errorf("salesInvoiceRepo.Create: %w", err)
	}
	return nil
}

// ListByClient returns the client's full sales ledger, newest first. The
// ordering is a display convention; filing builders re-filter by invoice
// date and do not depend on it.
func (r *salesInvoiceRepo) ListByClient(ctx context.Context, userID, clientID uuid.UUID) ([]domain.SalesInvoice, error) {
	var invoices []domain.SalesInvoice
	err := r.db.SelectContext(ctx, &invoices,
		"SELECT * FROM sales_invoices WHERE user_id = $1 AND client_id = $2 ORDER BY created_at DESC",
		userID, clientID)
	if err != nil {
		return nil, fmt.Errorf("salesInvoiceRepo.ListByClient: %w", err)
	}
	return invoices, nil
}

func (r *salesInvoiceRepo) Delete(ctx context.Context, userID, clientID, invoiceID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM sales_invoices WHERE id = $1 AND user_id = $2 AND client_id = $3",
		invoiceID, userID, clientID)
	if err != nil {
		return fmt.Errorf("salesInvoiceRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
