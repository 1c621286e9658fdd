package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/autohaus/dms_backend/internal/apperrors"
	"github.com/autohaus/dms_backend/internal/core/domain"
	portsrepo "github.com/autohaus/dms_backend/internal/core/ports/repositories"
	portssvc "github.com/autohaus/dms_backend/internal/core/ports/services"
	"github.com/autohaus/dms_backend/internal/dto"
	"github.com/autohaus/dms_backend/internal/middleware"
)

// expenseService provides operational expense CRUD.
type expenseService struct {
	expenseRepo     portsrepo.ExpenseRepositoryFacade
	defaultCurrency string
}

// NewExpenseService creates a new expense service.
func NewExpenseService(expenseRepo portsrepo.ExpenseRepositoryFacade, defaultCurrency string) portssvc.ExpenseSvcFacade {
	return &expenseService{
		expenseRepo:     expenseRepo,
		defaultCurrency: defaultCurrency,
	}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

// CreateExpense records an operational expense. Amount must be positive.
func (s *expenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, creatorUserID string) (*domain.Expense, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: expense amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	expenseDate := now
	if req.ExpenseDate != nil {
		expenseDate = *req.ExpenseDate
	}

	currencyCode := req.CurrencyCode
	if currencyCode == "" {
		currencyCode = s.defaultCurrency
	}

	expense := domain.Expense{
		ExpenseID:    uuid.NewString(),
		Category:     req.Category,
		Description:  req.Description,
		Amount:       req.Amount,
		CurrencyCode: currencyCode,
		ExpenseDate:  expenseDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		logger.Error("Failed to save expense", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Expense recorded", slog.String("expense_id", expense.ExpenseID), slog.String("category", expense.Category))
	return &expense, nil
}

// GetExpenseByID retrieves an expense by ID.
func (s *expenseService) GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	return s.expenseRepo.FindExpenseByID(ctx, expenseID)
}

// ListExpenses retrieves a paginated list of expenses within [from, to].
func (s *expenseService) ListExpenses(ctx context.Context, from, to time.Time, limit, offset int) ([]domain.Expense, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return s.expenseRepo.FindExpenses(ctx, from, to, limit, offset)
}

// UpdateExpense applies the non-nil fields of the request to the expense.
func (s *expenseService) UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, requestingUserID string) (*domain.Expense, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}

	if req.Category != nil {
		expense.Category = *req.Category
	}
	if req.Description != nil {
		expense.Description = *req.Description
	}
	if req.Amount != nil {
		if req.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: expense amount must be positive", apperrors.ErrValidation)
		}
		expense.Amount = *req.Amount
	}
	if req.ExpenseDate != nil {
		expense.ExpenseDate = *req.ExpenseDate
	}
	expense.LastUpdatedAt = time.Now().UTC()
	expense.LastUpdatedBy = requestingUserID

	if err := s.expenseRepo.UpdateExpense(ctx, *expense); err != nil {
		logger.Error("Failed to update expense", slog.String("expense_id", expenseID), slog.String("error", err.Error()))
		return nil, err
	}

	return expense, nil
}

// DeleteExpense removes an expense.
func (s *expenseService) DeleteExpense(ctx context.Context, expenseID string) error {
	return s.expenseRepo.DeleteExpense(ctx, expenseID)
}
