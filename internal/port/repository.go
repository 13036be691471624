package port

import (
	"context"

	"github.com/google/uuid"

	"kaagaz/internal/domain"
)

// UserRepository defines the contract for user persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// ClientRepository defines the contract for client persistence.
// All query methods include userID to keep each accountant's book isolated.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, userID, clientID uuid.UUID) (*domain.Client, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Client, error)
	// Delete removes the client record only. Invoice rows under the client
	// are deliberately left in place; see the migration notes.
	Delete(ctx context.Context, userID, clientID uuid.UUID) error
}

// SalesInvoiceRepository defines the contract for the sales ledger.
// ListByClient returns a full snapshot; filing builders re-filter by
// invoice date and never rely on ingestion order.
type SalesInvoiceRepository interface {
	Create(ctx context.Context, inv *domain.SalesInvoice) error
	ListByClient(ctx context.Context, userID, clientID uuid.UUID) ([]domain.SalesInvoice, error)
	Delete(ctx context.Context, userID, clientID, invoiceID uuid.UUID) error
}

// PurchaseInvoiceRepository defines the contract for the purchase ledger.
type PurchaseInvoiceRepository interface {
	Create(ctx context.Context, inv *domain.PurchaseInvoice) error
	ListByClient(ctx context.Context, userID, clientID uuid.UUID) ([]domain.PurchaseInvoice, error)
	Delete(ctx context.Context, userID, clientID, invoiceID uuid.UUID) error
}
