package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a flat operational expense record. CRUD only, no derived state.
type Expense struct {
	ExpenseID    string          `json:"expenseID"` // Primary Key (UUID)
	Category     string          `json:"category"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
	ExpenseDate  time.Time       `json:"expenseDate"`
	AuditFields
}
