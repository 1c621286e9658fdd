package repositories

import (
	"context"
	"time"

	"github.com/autohaus/dms_backend/internal/core/domain"
)

// TransactionReader defines read operations for transactions and their ledgers.
type TransactionReader interface {
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	FindPaymentsByTransactionID(ctx context.Context, transactionID string) ([]domain.PaymentRecord, error)

	// ListTransactions retrieves a token-paginated page of transactions,
	// optionally filtered by status and type, newest first.
	ListTransactions(ctx context.Context, status, txnType string, limit int, nextToken *string) ([]domain.Transaction, *string, error)
}

// TransactionWriter defines the multi-step write operations of the ledger.
// Each method executes all of its steps inside a single database
// transaction so a partial failure cannot leave the ledger, the
// transaction row and the inventory item inconsistent.
type TransactionWriter interface {
	// CreateReservation persists the transaction and flips the inventory
	// item from AVAILABLE to RESERVED. When newCustomer is non-nil it is
	// inserted in the same database transaction. Returns ErrConflict when
	// the inventory item is not AVAILABLE.
	CreateReservation(ctx context.Context, txn domain.Transaction, newCustomer *domain.Customer) error

	// AppendPayment inserts the payment record and persists the
	// recomputed totals, status and type carried on txn. When
	// inventoryStatus is non-nil the linked inventory item is updated to
	// that status in the same database transaction.
	AppendPayment(ctx context.Context, txn domain.Transaction, payment domain.PaymentRecord, inventoryStatus *domain.InventoryStatus) error

	// UpdateTransactionStatus sets the transaction status; when
	// releaseInventoryTo is non-nil the linked inventory item is moved to
	// that status in the same database transaction (used by cancel).
	UpdateTransactionStatus(ctx context.Context, transactionID string, status domain.TransactionStatus, releaseInventoryTo *domain.InventoryStatus, updatedBy string, at time.Time) error

	// MarkOverdue flips PENDING and PARTIAL_PAID transactions whose due
	// date lies before asOf to OVERDUE, returning the number affected.
	MarkOverdue(ctx context.Context, asOf time.Time, updatedBy string) (int64, error)
}

// TransactionRepositoryFacade combines all transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
