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

type purchaseInvoiceRepo struct {
	db *sqlx.DB
}

// NewPurchaseInvoiceRepo creates a new PostgreSQL-backed PurchaseInvoiceRepository.
func NewPurchaseInvoiceRepo(db *sqlx.DB) port.PurchaseInvoiceRepository {
	return &purchaseInvoiceRepo{db: db}
}

func (r *purchaseInvoiceRepo) Create(ctx context.Context, inv *domain.PurchaseInvoice) error {
	inv.ID = uuid.New()
	inv.CreatedAt = time.Now().UTC()

	query := `INSERT INTO purchase_invoices (id, user_id, client_id, invoice_number, supplier_name,
		supplier_gstin, invoice_date, taxable_value, itc_claimed, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.ExecContext(ctx, query,
		inv.ID, inv.UserID, inv.ClientID, inv.InvoiceNumber, inv.SupplierName,
		inv.SupplierGSTIN, inv.InvoiceDate, inv.TaxableValue, inv.ITCClaimed, inv.CreatedAt)
	if err != nil {
		return fmt.Errorf("purchaseInvoiceRepo.Create: %w", err)
	}
	return nil
}

func (r *purchaseInvoiceRepo) ListByClient(ctx context.Context, userID, clientID uuid.UUID) ([]domain.PurchaseInvoice, error) {
	var invoices []domain.PurchaseInvoice
	err := r.db.SelectContext(ctx, &invoices,
		"SELECT * FROM purchase_invoices WHERE user_id = $1 AND client_id = $2 ORDER BY created_at DESC",
		userID, clientID)
	if err != nil {
		return nil, fmt.Errorf("purchaseInvoiceRepo.ListByClient: %w", err)
	}
	return invoices, nil
}

func (r *purchaseInvoiceRepo) Delete(ctx context.Context, userID, clientID, invoiceID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM purchase_invoices WHERE id = $1 AND user_id = $2 AND client_id = $3",
		invoiceID, userID, clientID)
	if err != nil {
		return fmt.Errorf("purchaseInvoiceRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
