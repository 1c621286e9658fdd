package services

import (
	"context"
	"time"

	"github.com/autohaus/dms_backend/internal/dto"
)

// ReportingSvcFacade produces period summaries for sales and expenses.
type ReportingSvcFacade interface {
	// GetSalesReport summarises non-cancelled transactions created in [from, to].
	GetSalesReport(ctx context.Context, from, to time.Time) (*dto.SalesReportResponse, error)

	// GetExpenseReport summarises expenses dated in [from, to].
	GetExpenseReport(ctx context.Context, from, to time.Time) (*dto.ExpenseReportResponse, error)
}
