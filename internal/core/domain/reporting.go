package domain

import "github.com/shopspring/decimal"

// SalesSummaryRow aggregates completed business per transaction type.
type SalesSummaryRow struct {
	Type             TransactionType `json:"type"`
	TransactionCount int             `json:"transactionCount"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	TotalPaid        decimal.Decimal `json:"totalPaid"`
	TotalOutstanding decimal.Decimal `json:"totalOutstanding"`
}

// ExpenseSummaryRow aggregates expenses per category.
type ExpenseSummaryRow struct {
	Category     string          `json:"category"`
	ExpenseCount int             `json:"expenseCount"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
}
