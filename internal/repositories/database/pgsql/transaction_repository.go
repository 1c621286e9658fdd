package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/autohaus/dms_backend/internal/apperrors"
	"github.com/autohaus/dms_backend/internal/core/domain"
	portsrepo "github.com/autohaus/dms_backend/internal/core/ports/repositories"
	"github.com/autohaus/dms_backend/internal/models"
	"github.com/autohaus/dms_backend/internal/utils/mapping"
	"github.com/autohaus/dms_backend/internal/utils/pagination"
)

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(db *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionColumns = `transaction_id, customer_id, inventory_id, type, status,
	vehicle_price, taxes, fees, discount, total_amount, currency_code, payment_mode,
	total_paid, balance_remaining, due_date,
	leasing_company, lease_reference_no, down_payment, leasing_amount,
	monthly_installment, tenure_months, interest_rate, lease_start_date, lease_end_date,
	created_at, created_by, last_updated_at, last_updated_by`

const paymentColumns = `payment_id, transaction_id, amount, payment_method, payment_date,
	received_by, notes, created_at, created_by, last_updated_at, last_updated_by`

func scanTransaction(row pgx.Row) (*models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.CustomerID,
		&m.InventoryID,
		&m.Type,
		&m.Status,
		&m.VehiclePrice,
		&m.Taxes,
		&m.Fees,
		&m.Discount,
		&m.TotalAmount,
		&m.CurrencyCode,
		&m.PaymentMode,
		&m.TotalPaid,
		&m.BalanceRemaining,
		&m.DueDate,
		&m.LeasingCompany,
		&m.LeaseReferenceNo,
		&m.DownPayment,
		&m.LeasingAmount,
		&m.MonthlyInstallment,
		&m.TenureMonths,
		&m.InterestRate,
		&m.LeaseStartDate,
		&m.LeaseEndDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func scanPayment(row pgx.Row) (*models.PaymentRecord, error) {
	var m models.PaymentRecord
	err := row.Scan(
		&m.PaymentID,
		&m.TransactionID,
		&m.Amount,
		&m.PaymentMethod,
		&m.PaymentDate,
		&m.ReceivedBy,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func insertTransactionTx(ctx context.Context, tx pgx.Tx, m models.Transaction) error {
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		        $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28);
	`
	_, err := tx.Exec(ctx, query,
		m.TransactionID, m.CustomerID, m.InventoryID, m.Type, m.Status,
		m.VehiclePrice, m.Taxes, m.Fees, m.Discount, m.TotalAmount,
		m.CurrencyCode, m.PaymentMode, m.TotalPaid, m.BalanceRemaining, m.DueDate,
		m.LeasingCompany, m.LeaseReferenceNo, m.DownPayment, m.LeasingAmount,
		m.MonthlyInstallment, m.TenureMonths, m.InterestRate, m.LeaseStartDate, m.LeaseEndDate,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return err
}

// CreateReservation runs the reservation write set in one database
// transaction: the optional new customer insert, the transaction insert,
// and the AVAILABLE -> RESERVED flip on the inventory item. The flip is a
// conditional update so two concurrent reservations of the same item
// cannot both succeed.
func (r *PgxTransactionRepository) CreateReservation(ctx context.Context, txn domain.Transaction, newCustomer *domain.Customer) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if newCustomer != nil {
		c := mapping.ToModelCustomer(*newCustomer)
		_, err = tx.Exec(ctx, `
			INSERT INTO customers (`+customerColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
		`,
			c.CustomerID, c.Name, c.ContactNumber, c.Email, c.Address, c.NationalID,
			c.CreatedAt, c.CreatedBy, c.LastUpdatedAt, c.LastUpdatedBy,
		)
		if err != nil {
			return fmt.Errorf("failed to insert customer for reservation: %w", err)
		}
	}

	if err := insertTransactionTx(ctx, tx, mapping.ToModelTransaction(txn)); err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	tag, err := tx.Exec(ctx, `
		UPDATE inventory
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE inventory_id = $1 AND status = $5;
	`,
		txn.InventoryID,
		string(domain.InventoryReserved),
		txn.LastUpdatedAt,
		txn.LastUpdatedBy,
		string(domain.InventoryAvailable),
	)
	if err != nil {
		return fmt.Errorf("failed to reserve inventory item %s: %w", txn.InventoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: inventory item %s is not available", apperrors.ErrConflict, txn.InventoryID)
	}

	return r.Commit(ctx, tx)
}

// AppendPayment inserts the ledger entry and persists the recomputed
// totals, status and type in one database transaction. A non-nil
// inventoryStatus moves the linked item in the same transaction.
// The transaction row is locked first and its stored total compared with
// the total the caller read, so two concurrent payments against the same
// transaction cannot silently lose an update.
func (r *PgxTransactionRepository) AppendPayment(ctx context.Context, txn domain.Transaction, payment domain.PaymentRecord, inventoryStatus *domain.InventoryStatus) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var storedTotalPaid decimal.Decimal
	err = tx.QueryRow(ctx, `
		SELECT total_paid FROM transactions WHERE transaction_id = $1 FOR UPDATE;
	`, txn.TransactionID).Scan(&storedTotalPaid)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to lock transaction %s: %w", txn.TransactionID, err)
	}
	if !storedTotalPaid.Equal(txn.TotalPaid.Sub(payment.Amount)) {
		return fmt.Errorf("%w: transaction %s was modified concurrently", apperrors.ErrConflict, txn.TransactionID)
	}

	p := mapping.ToModelPayment(payment)
	_, err = tx.Exec(ctx, `
		INSERT INTO payments (`+paymentColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`,
		p.PaymentID, p.TransactionID, p.Amount, p.PaymentMethod, p.PaymentDate,
		p.ReceivedBy, p.Notes, p.CreatedAt, p.CreatedBy, p.LastUpdatedAt, p.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert payment: %w", err)
	}

	tag, err := tx.Exec(ctx, `
		UPDATE transactions
		SET type = $2, status = $3, total_paid = $4, balance_remaining = $5,
		    last_updated_at = $6, last_updated_by = $7
		WHERE transaction_id = $1;
	`,
		txn.TransactionID,
		string(txn.Type),
		string(txn.Status),
		txn.TotalPaid,
		txn.BalanceRemaining,
		txn.LastUpdatedAt,
		txn.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction totals for %s: %w", txn.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if inventoryStatus != nil {
		_, err = tx.Exec(ctx, `
			UPDATE inventory
			SET status = $2, last_updated_at = $3, last_updated_by = $4
			WHERE inventory_id = $1;
		`,
			txn.InventoryID,
			string(*inventoryStatus),
			txn.LastUpdatedAt,
			txn.LastUpdatedBy,
		)
		if err != nil {
			return fmt.Errorf("failed to update inventory item %s: %w", txn.InventoryID, err)
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxTransactionRepository) UpdateTransactionStatus(ctx context.Context, transactionID string, status domain.TransactionStatus, releaseInventoryTo *domain.InventoryStatus, updatedBy string, at time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var inventoryID string
	err = tx.QueryRow(ctx, `
		UPDATE transactions
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE transaction_id = $1
		RETURNING inventory_id;
	`, transactionID, string(status), at, updatedBy).Scan(&inventoryID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to update transaction status for %s: %w", transactionID, err)
	}

	if releaseInventoryTo != nil {
		// Only a reserved item is released; a sold one stays sold.
		_, err = tx.Exec(ctx, `
			UPDATE inventory
			SET status = $2, last_updated_at = $3, last_updated_by = $4
			WHERE inventory_id = $1 AND status = $5;
		`, inventoryID, string(*releaseInventoryTo), at, updatedBy, string(domain.InventoryReserved))
		if err != nil {
			return fmt.Errorf("failed to release inventory item %s: %w", inventoryID, err)
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxTransactionRepository) MarkOverdue(ctx context.Context, asOf time.Time, updatedBy string) (int64, error) {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE transactions
		SET status = $1, last_updated_at = $2, last_updated_by = $3
		WHERE status IN ($4, $5) AND due_date IS NOT NULL AND due_date < $6;
	`,
		string(domain.StatusOverdue),
		asOf,
		updatedBy,
		string(domain.StatusPending),
		string(domain.StatusPartialPaid),
		asOf,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to mark overdue transactions: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`
	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}
	d := mapping.ToDomainTransaction(*m)
	return &d, nil
}

func (r *PgxTransactionRepository) FindPaymentsByTransactionID(ctx context.Context, transactionID string) ([]domain.PaymentRecord, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE transaction_id = $1
		ORDER BY payment_date ASC, created_at ASC;
	`
	rows, err := r.Pool.Query(ctx, query, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments for transaction %s: %w", transactionID, err)
	}
	defer rows.Close()

	modelPayments := []models.PaymentRecord{}
	for rows.Next() {
		m, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		modelPayments = append(modelPayments, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", err)
	}

	return mapping.ToDomainPaymentSlice(modelPayments), nil
}

// ListTransactions pages newest first on a (last activity, created_at)
// keyset cursor, fetching one extra row to decide whether a next token
// is needed.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, status, txnType string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if status != "" {
		query += fmt.Sprintf(" AND status = $%d", argPos)
		args = append(args, status)
		argPos++
	}
	if txnType != "" {
		query += fmt.Sprintf(" AND type = $%d", argPos)
		args = append(args, txnType)
		argPos++
	}
	if nextToken != nil && *nextToken != "" {
		lastUpdatedAt, createdAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		query += fmt.Sprintf(" AND (last_updated_at, created_at) < ($%d, $%d)", argPos, argPos+1)
		args = append(args, lastUpdatedAt, createdAt)
		argPos += 2
	}

	query += fmt.Sprintf(" ORDER BY last_updated_at DESC, created_at DESC LIMIT $%d;", argPos)
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	modelTxns := []models.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		modelTxns = append(modelTxns, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}

	var newNextToken *string
	if len(modelTxns) > limit {
		last := modelTxns[limit-1]
		tokenStr := pagination.EncodeToken(last.LastUpdatedAt, last.CreatedAt)
		newNextToken = &tokenStr
		modelTxns = modelTxns[:limit]
	}

	domainTxns := make([]domain.Transaction, len(modelTxns))
	for i, m := range modelTxns {
		domainTxns[i] = mapping.ToDomainTransaction(m)
	}
	return domainTxns, newNextToken, nil
}
