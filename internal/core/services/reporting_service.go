package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/autohaus/dms_backend/internal/apperrors"
	portsrepo "github.com/autohaus/dms_backend/internal/core/ports/repositories"
	portssvc "github.com/autohaus/dms_backend/internal/core/ports/services"
	"github.com/autohaus/dms_backend/internal/dto"
)

// reportingService produces period summaries for sales and expenses.
type reportingService struct {
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service.
func NewReportingService(reportingRepo portsrepo.ReportingRepository) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func validatePeriod(from, to time.Time) error {
	if from.IsZero() || to.IsZero() {
		return fmt.Errorf("%w: both from and to dates are required", apperrors.ErrValidation)
	}
	if to.Before(from) {
		return fmt.Errorf("%w: to date must not precede from date", apperrors.ErrValidation)
	}
	return nil
}

// GetSalesReport summarises non-cancelled transactions created in [from, to].
func (s *reportingService) GetSalesReport(ctx context.Context, from, to time.Time) (*dto.SalesReportResponse, error) {
	if err := validatePeriod(from, to); err != nil {
		return nil, err
	}

	rows, err := s.reportingRepo.GetSalesSummary(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate sales summary: %w", err)
	}

	grandTotal := decimal.Zero
	grandPaid := decimal.Zero
	grandOutstanding := decimal.Zero
	for _, row := range rows {
		grandTotal = grandTotal.Add(row.TotalAmount)
		grandPaid = grandPaid.Add(row.TotalPaid)
		grandOutstanding = grandOutstanding.Add(row.TotalOutstanding)
	}

	return &dto.SalesReportResponse{
		From:             from,
		To:               to,
		Rows:             rows,
		GrandTotal:       grandTotal,
		GrandTotalPaid:   grandPaid,
		GrandOutstanding: grandOutstanding,
	}, nil
}

// GetExpenseReport summarises expenses dated in [from, to].
func (s *reportingService) GetExpenseReport(ctx context.Context, from, to time.Time) (*dto.ExpenseReportResponse, error) {
	if err := validatePeriod(from, to); err != nil {
		return nil, err
	}

	rows, err := s.reportingRepo.GetExpenseSummary(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate expense summary: %w", err)
	}

	grandTotal := decimal.Zero
	for _, row := range rows {
		grandTotal = grandTotal.Add(row.TotalAmount)
	}

	return &dto.ExpenseReportResponse{
		From:       from,
		To:         to,
		Rows:       rows,
		GrandTotal: grandTotal,
	}, nil
}
