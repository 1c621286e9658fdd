package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense mirrors the expenses table.
type Expense struct {
	ExpenseID    string
	Category     string
	Description  *string
	Amount       decimal.Decimal
	CurrencyCode string
	ExpenseDate  time.Time
	AuditFields
}
