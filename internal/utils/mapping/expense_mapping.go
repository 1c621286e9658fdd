package mapping

import (
	"github.com/autohaus/dms_backend/internal/core/domain"
	"github.com/autohaus/dms_backend/internal/models"
)

// ToModelExpense converts a domain expense to its model representation.
func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:    d.ExpenseID,
		Category:     d.Category,
		Description:  strPtr(d.Description),
		Amount:       d.Amount,
		CurrencyCode: d.CurrencyCode,
		ExpenseDate:  d.ExpenseDate,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExpense converts a model expense to its domain representation.
func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:    m.ExpenseID,
		Category:     m.Category,
		Description:  strVal(m.Description),
		Amount:       m.Amount,
		CurrencyCode: m.CurrencyCode,
		ExpenseDate:  m.ExpenseDate,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainExpenseSlice converts a slice of model expenses.
func ToDomainExpenseSlice(ms []models.Expense) []domain.Expense {
	ds := make([]domain.Expense, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExpense(m)
	}
	return ds
}
