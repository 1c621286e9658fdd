package dto

import (
	"time"

	"github.com/autohaus/dms_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest defines the payload for recording an expense.
type CreateExpenseRequest struct {
	Category     string          `json:"category" binding:"required"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	CurrencyCode string          `json:"currencyCode"`
	ExpenseDate  *time.Time      `json:"expenseDate,omitempty"`
}

// UpdateExpenseRequest defines the payload for updating an expense.
// Nil fields are left unchanged.
type UpdateExpenseRequest struct {
	Category    *string          `json:"category,omitempty"`
	Description *string          `json:"description,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	ExpenseDate *time.Time       `json:"expenseDate,omitempty"`
}

// ExpenseResponse defines the data returned for an expense.
type ExpenseResponse struct {
	ExpenseID    string          `json:"expenseID"`
	Category     string          `json:"category"`
	Description  string          `json:"description,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
	ExpenseDate  time.Time       `json:"expenseDate"`
}

// ListExpensesParams holds the query parameters for listing expenses.
type ListExpensesParams struct {
	From   time.Time `form:"from" time_format:"2006-01-02"`
	To     time.Time `form:"to" time_format:"2006-01-02"`
	Limit  int       `form:"limit"`
	Offset int       `form:"offset"`
}

// ListExpensesResponse wraps a page of expenses.
type ListExpensesResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ToExpenseResponse converts a domain.Expense to ExpenseResponse.
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:    e.ExpenseID,
		Category:     e.Category,
		Description:  e.Description,
		Amount:       e.Amount,
		CurrencyCode: e.CurrencyCode,
		ExpenseDate:  e.ExpenseDate,
	}
}

// ToExpenseResponses converts a slice of domain expenses.
func ToExpenseResponses(es []domain.Expense) []ExpenseResponse {
	responses := make([]ExpenseResponse, len(es))
	for i, e := range es {
		responses[i] = ToExpenseResponse(&e)
	}
	return responses
}
