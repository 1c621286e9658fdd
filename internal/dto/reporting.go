package dto

import (
	"time"

	"github.com/autohaus/dms_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportPeriodParams holds the date-range query parameters for reports.
type ReportPeriodParams struct {
	From   time.Time `form:"from" time_format:"2006-01-02"`
	To     time.Time `form:"to" time_format:"2006-01-02"`
	Format string    `form:"format"` // json (default), csv or xlsx
}

// SalesReportResponse is the sales summary for a period.
type SalesReportResponse struct {
	From             time.Time                `json:"from"`
	To               time.Time                `json:"to"`
	Rows             []domain.SalesSummaryRow `json:"rows"`
	GrandTotal       decimal.Decimal          `json:"grandTotal"`
	GrandTotalPaid   decimal.Decimal          `json:"grandTotalPaid"`
	GrandOutstanding decimal.Decimal          `json:"grandOutstanding"`
}

// ExpenseReportResponse is the expense summary for a period.
type ExpenseReportResponse struct {
	From       time.Time                  `json:"from"`
	To         time.Time                  `json:"to"`
	Rows       []domain.ExpenseSummaryRow `json:"rows"`
	GrandTotal decimal.Decimal            `json:"grandTotal"`
}
