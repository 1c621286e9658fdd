package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/autohaus/dms_backend/internal/core/domain"
	portsrepo "github.com/autohaus/dms_backend/internal/core/ports/repositories"
)

type PgxReportingRepository struct {
	BaseRepository
}

func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// GetSalesSummary aggregates non-cancelled transactions created within the
// period, grouped by type. Outstanding is summed from balance_remaining so
// it reflects the same clamped value the ledger carries.
func (r *PgxReportingRepository) GetSalesSummary(ctx context.Context, from, to time.Time) ([]domain.SalesSummaryRow, error) {
	query := `
		SELECT type,
		       COUNT(*),
		       COALESCE(SUM(total_amount), 0),
		       COALESCE(SUM(total_paid), 0),
		       COALESCE(SUM(balance_remaining), 0)
		FROM transactions
		WHERE status <> $1 AND created_at >= $2 AND created_at <= $3
		GROUP BY type
		ORDER BY type;
	`
	rows, err := r.Pool.Query(ctx, query, string(domain.StatusCancelled), from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales summary: %w", err)
	}
	defer rows.Close()

	summary := []domain.SalesSummaryRow{}
	for rows.Next() {
		var row domain.SalesSummaryRow
		var txnType string
		if err := rows.Scan(&txnType, &row.TransactionCount, &row.TotalAmount, &row.TotalPaid, &row.TotalOutstanding); err != nil {
			return nil, fmt.Errorf("failed to scan sales summary row: %w", err)
		}
		row.Type = domain.TransactionType(txnType)
		summary = append(summary, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sales summary rows: %w", err)
	}

	return summary, nil
}

// GetExpenseSummary aggregates expenses dated within the period per category.
func (r *PgxReportingRepository) GetExpenseSummary(ctx context.Context, from, to time.Time) ([]domain.ExpenseSummaryRow, error) {
	query := `
		SELECT category,
		       COUNT(*),
		       COALESCE(SUM(amount), 0)
		FROM expenses
		WHERE expense_date >= $1 AND expense_date <= $2
		GROUP BY category
		ORDER BY category;
	`
	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query expense summary: %w", err)
	}
	defer rows.Close()

	summary := []domain.ExpenseSummaryRow{}
	for rows.Next() {
		var row domain.ExpenseSummaryRow
		if err := rows.Scan(&row.Category, &row.ExpenseCount, &row.TotalAmount); err != nil {
			return nil, fmt.Errorf("failed to scan expense summary row: %w", err)
		}
		summary = append(summary, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expense summary rows: %w", err)
	}

	return summary, nil
}
