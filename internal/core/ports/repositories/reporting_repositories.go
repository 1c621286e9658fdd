package repositories

import (
	"context"
	"time"

	"github.com/autohaus/dms_backend/internal/core/domain"
)

// ReportingRepository defines the aggregate queries behind reports.
type ReportingRepository interface {
	// GetSalesSummary aggregates non-cancelled transactions created within
	// [from, to] per transaction type.
	GetSalesSummary(ctx context.Context, from, to time.Time) ([]domain.SalesSummaryRow, error)

	// GetExpenseSummary aggregates expenses dated within [from, to] per category.
	GetExpenseSummary(ctx context.Context, from, to time.Time) ([]domain.ExpenseSummaryRow, error)
}
