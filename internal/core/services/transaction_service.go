package services

import (
	"context"
	"errors"
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
	"github.com/autohaus/dms_backend/internal/utils"
	"github.com/autohaus/dms_backend/internal/utils/finance"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// transactionService provides reservation, payment ledger and lifecycle operations.
type transactionService struct {
	txnRepo         portsrepo.TransactionRepositoryFacade
	customerRepo    portsrepo.CustomerRepositoryFacade
	inventoryRepo   portsrepo.InventoryRepositoryFacade
	defaultCurrency string
	phoneRegion     string
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade, customerRepo portsrepo.CustomerRepositoryFacade, inventoryRepo portsrepo.InventoryRepositoryFacade, defaultCurrency, phoneRegion string) portssvc.TransactionSvcFacade {
	return &transactionService{
		txnRepo:         txnRepo,
		customerRepo:    customerRepo,
		inventoryRepo:   inventoryRepo,
		defaultCurrency: defaultCurrency,
		phoneRegion:     phoneRegion,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// resolveCustomer looks up the customer by verbatim contact number, creating
// a new domain.Customer when no match exists. The second return value is
// non-nil only when a new customer must be inserted alongside the transaction.
func (s *transactionService) resolveCustomer(ctx context.Context, rc dto.ReservationCustomer, creatorUserID string, now time.Time) (string, *domain.Customer, error) {
	existing, err := s.customerRepo.FindCustomerByContactNumber(ctx, rc.ContactNumber)
	if err == nil {
		return existing.CustomerID, nil, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return "", nil, fmt.Errorf("failed to look up customer by contact number: %w", err)
	}

	// New customer: the contact number must at least parse as a phone number.
	if err := utils.ValidatePhoneNumber(rc.ContactNumber, s.phoneRegion); err != nil {
		return "", nil, fmt.Errorf("%w: invalid contact number: %v", apperrors.ErrValidation, err)
	}

	newCustomer := &domain.Customer{
		CustomerID:    uuid.NewString(),
		Name:          rc.Name,
		ContactNumber: rc.ContactNumber,
		Email:         rc.Email,
		Address:       rc.Address,
		NationalID:    rc.NationalID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	return newCustomer.CustomerID, newCustomer, nil
}

// buildLeasingDetails derives the full financing terms from the request.
// DownPayment defaults to 20% of the total when omitted.
func buildLeasingDetails(req *dto.LeasingRequest, totalAmount decimal.Decimal, now time.Time) (*domain.LeasingDetails, error) {
	downPayment := finance.DefaultDownPayment(totalAmount)
	if req.DownPayment != nil {
		downPayment = *req.DownPayment
	}
	if downPayment.IsNegative() || downPayment.GreaterThan(totalAmount) {
		return nil, fmt.Errorf("%w: down payment must be between zero and the total amount", apperrors.ErrValidation)
	}

	leasingAmount := finance.LeasingAmount(totalAmount, downPayment)
	installment := finance.MonthlyInstallment(leasingAmount, req.TenureMonths, req.InterestRate)

	startDate := now
	if req.StartDate != nil {
		startDate = *req.StartDate
	}
	endDate := startDate.AddDate(0, req.TenureMonths, 0)

	return &domain.LeasingDetails{
		LeasingCompany:     req.LeasingCompany,
		LeaseReferenceNo:   req.LeaseReferenceNo,
		DownPayment:        downPayment,
		LeasingAmount:      leasingAmount,
		MonthlyInstallment: installment,
		TenureMonths:       req.TenureMonths,
		InterestRate:       req.InterestRate,
		StartDate:          startDate,
		EndDate:            endDate,
	}, nil
}

// CreateReservation creates a RESERVATION (or LEASING) transaction against an
// AVAILABLE inventory item. The customer is resolved by contact number; the
// transaction, any new customer record and the inventory status change are
// persisted in a single database transaction.
func (s *transactionService) CreateReservation(ctx context.Context, req dto.CreateReservationRequest, creatorUserID string) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now().UTC()

	totalAmount := finance.TotalAmount(req.Pricing.VehiclePrice, req.Pricing.Taxes, req.Pricing.Fees, req.Pricing.Discount)
	if totalAmount.IsNegative() {
		return nil, fmt.Errorf("%w: discount exceeds the sum of price, taxes and fees", apperrors.ErrValidation)
	}

	item, err := s.inventoryRepo.FindItemByID(ctx, req.InventoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: inventory item %s", apperrors.ErrNotFound, req.InventoryID)
		}
		return nil, fmt.Errorf("failed to load inventory item: %w", err)
	}
	if item.Status != domain.InventoryAvailable {
		return nil, fmt.Errorf("%w: inventory item %s is %s, not AVAILABLE", apperrors.ErrConflict, item.InventoryID, item.Status)
	}

	customerID, newCustomer, err := s.resolveCustomer(ctx, req.Customer, creatorUserID, now)
	if err != nil {
		return nil, err
	}

	txnType := domain.TypeReservation
	var leasing *domain.LeasingDetails
	if req.PaymentMode == domain.PaymentModeLeasing {
		if req.Leasing == nil {
			return nil, fmt.Errorf("%w: leasing terms are required when payment mode is LEASING", apperrors.ErrValidation)
		}
		leasing, err = buildLeasingDetails(req.Leasing, totalAmount, now)
		if err != nil {
			return nil, err
		}
		txnType = domain.TypeLeasing
	}

	currencyCode := item.CurrencyCode
	if currencyCode == "" {
		currencyCode = s.defaultCurrency
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		CustomerID:    customerID,
		InventoryID:   item.InventoryID,
		Type:          txnType,
		Status:        domain.StatusPending,
		Pricing: domain.Pricing{
			VehiclePrice: req.Pricing.VehiclePrice,
			Taxes:        req.Pricing.Taxes,
			Fees:         req.Pricing.Fees,
			Discount:     req.Pricing.Discount,
			TotalAmount:  totalAmount,
		},
		CurrencyCode:     currencyCode,
		PaymentMode:      req.PaymentMode,
		TotalPaid:        decimal.Zero,
		BalanceRemaining: totalAmount,
		DueDate:          req.DueDate,
		LeasingDetails:   leasing,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.txnRepo.CreateReservation(ctx, txn, newCustomer); err != nil {
		logger.Error("Failed to create reservation", slog.String("inventory_id", item.InventoryID), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Reservation created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("inventory_id", item.InventoryID),
		slog.String("customer_id", customerID),
		slog.String("total_amount", totalAmount.String()),
	)
	return &txn, nil
}

// AddPayment appends a payment to the transaction's ledger and recomputes
// TotalPaid, BalanceRemaining and the status. When the balance reaches zero
// a RESERVATION is promoted to SALE and the inventory item is marked SOLD;
// a LEASING transaction settles as FULLY_PAID instead.
func (s *transactionService) AddPayment(ctx context.Context, transactionID string, req dto.AddPaymentRequest, receivedByUserID string) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now().UTC()

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}

	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if txn.Status.IsTerminal() {
		return nil, fmt.Errorf("%w: transaction %s is %s and accepts no further payments", apperrors.ErrConflict, transactionID, txn.Status)
	}
	if txn.BalanceRemaining.IsZero() {
		return nil, fmt.Errorf("%w: transaction %s is already fully settled", apperrors.ErrConflict, transactionID)
	}

	paymentDate := now
	if req.PaymentDate != nil {
		paymentDate = *req.PaymentDate
	}

	payment := domain.PaymentRecord{
		PaymentID:     uuid.NewString(),
		TransactionID: txn.TransactionID,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		PaymentDate:   paymentDate,
		ReceivedBy:    receivedByUserID,
		Notes:         req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     receivedByUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: receivedByUserID,
		},
	}

	txn.TotalPaid = txn.TotalPaid.Add(req.Amount)
	txn.BalanceRemaining = txn.Pricing.TotalAmount.Sub(txn.TotalPaid)
	if txn.BalanceRemaining.IsNegative() {
		txn.BalanceRemaining = decimal.Zero
	}

	var inventoryStatus *domain.InventoryStatus
	if txn.BalanceRemaining.IsZero() {
		if txn.Type == domain.TypeLeasing {
			txn.Status = domain.StatusFullyPaid
		} else {
			txn.Status = domain.StatusCompleted
			if txn.Type == domain.TypeReservation {
				txn.Type = domain.TypeSale
			}
		}
		sold := domain.InventorySold
		inventoryStatus = &sold
	} else {
		txn.Status = domain.StatusPartialPaid
	}
	txn.LastUpdatedAt = now
	txn.LastUpdatedBy = receivedByUserID

	if err := s.txnRepo.AppendPayment(ctx, *txn, payment, inventoryStatus); err != nil {
		logger.Error("Failed to append payment", slog.String("transaction_id", transactionID), slog.String("error", err.Error()))
		return nil, err
	}

	txn.Payments = append(txn.Payments, payment)
	logger.Info("Payment recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("payment_id", payment.PaymentID),
		slog.String("amount", payment.Amount.String()),
		slog.String("status", string(txn.Status)),
	)
	return txn, nil
}

// CancelTransaction moves a non-terminal transaction to CANCELLED and
// releases its inventory item back to AVAILABLE.
func (s *transactionService) CancelTransaction(ctx context.Context, transactionID string, requestingUserID string) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now().UTC()

	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if txn.Status.IsTerminal() {
		return nil, fmt.Errorf("%w: transaction %s is already %s", apperrors.ErrConflict, transactionID, txn.Status)
	}

	available := domain.InventoryAvailable
	if err := s.txnRepo.UpdateTransactionStatus(ctx, transactionID, domain.StatusCancelled, &available, requestingUserID, now); err != nil {
		logger.Error("Failed to cancel transaction", slog.String("transaction_id", transactionID), slog.String("error", err.Error()))
		return nil, err
	}

	txn.Status = domain.StatusCancelled
	txn.LastUpdatedAt = now
	txn.LastUpdatedBy = requestingUserID
	logger.Info("Transaction cancelled", slog.String("transaction_id", transactionID))
	return txn, nil
}

// MarkOverdue sweeps PENDING and PARTIAL_PAID transactions whose due date
// lies before asOf into OVERDUE.
func (s *transactionService) MarkOverdue(ctx context.Context, asOf time.Time, requestingUserID string) (int64, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	count, err := s.txnRepo.MarkOverdue(ctx, asOf, requestingUserID)
	if err != nil {
		logger.Error("Overdue sweep failed", slog.String("error", err.Error()))
		return 0, err
	}

	logger.Info("Overdue sweep completed", slog.Int64("marked_overdue", count))
	return count, nil
}

// GetTransactionByID retrieves a transaction with its payment ledger.
func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	payments, err := s.txnRepo.FindPaymentsByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load payments for transaction %s: %w", transactionID, err)
	}
	txn.Payments = payments
	return txn, nil
}

// ListTransactions retrieves a token-paginated page of transactions.
func (s *transactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, *string, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return s.txnRepo.ListTransactions(ctx, params.Status, params.Type, limit, params.NextToken)
}
