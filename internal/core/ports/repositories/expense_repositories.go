package repositories

import (
	"context"
	"time"

	"github.com/autohaus/dms_backend/internal/core/domain"
)

// ExpenseReader defines read operations for expenses.
type ExpenseReader interface {
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)

	// FindExpenses retrieves a paginated list of expenses within [from, to].
	FindExpenses(ctx context.Context, from, to time.Time, limit int, offset int) ([]domain.Expense, error)
}

// ExpenseWriter defines write operations for expenses.
type ExpenseWriter interface {
	SaveExpense(ctx context.Context, expense domain.Expense) error
	UpdateExpense(ctx context.Context, expense domain.Expense) error
	DeleteExpense(ctx context.Context, expenseID string) error
}

// ExpenseRepositoryFacade combines all expense repository interfaces.
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
