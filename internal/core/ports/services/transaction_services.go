package services

import (
	"context"
	"time"

	"github.com/autohaus/dms_backend/internal/core/domain"
	"github.com/autohaus/dms_backend/internal/dto"
)

// TransactionReaderSvc defines read operations for transactions
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves a transaction with its payment ledger.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a token-paginated page of transactions.
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, *string, error)
}

// TransactionWriterSvc defines the state-changing operations of the ledger
type TransactionWriterSvc interface {
	// CreateReservation creates a RESERVATION transaction, resolving or
	// creating the customer by contact number and flipping the inventory
	// item to RESERVED.
	CreateReservation(ctx context.Context, req dto.CreateReservationRequest, creatorUserID string) (*domain.Transaction, error)

	// AddPayment appends a payment to the ledger, recomputes totals and
	// applies the status transitions that follow.
	AddPayment(ctx context.Context, transactionID string, req dto.AddPaymentRequest, receivedByUserID string) (*domain.Transaction, error)

	// CancelTransaction moves a non-terminal transaction to CANCELLED and
	// releases its inventory item back to AVAILABLE when still reserved.
	CancelTransaction(ctx context.Context, transactionID string, requestingUserID string) (*domain.Transaction, error)

	// MarkOverdue sweeps transactions with a due date before asOf into
	// OVERDUE, returning the number affected.
	MarkOverdue(ctx context.Context, asOf time.Time, requestingUserID string) (int64, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
