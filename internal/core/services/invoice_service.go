package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/autohaus/dms_backend/internal/apperrors"
	"github.com/autohaus/dms_backend/internal/core/domain"
	portsrepo "github.com/autohaus/dms_backend/internal/core/ports/repositories"
	portssvc "github.com/autohaus/dms_backend/internal/core/ports/services"
	"github.com/autohaus/dms_backend/internal/dto"
)

// invoiceService assembles display-ready invoice view-models from a
// transaction, its customer and its inventory item.
type invoiceService struct {
	txnRepo       portsrepo.TransactionRepositoryFacade
	customerRepo  portsrepo.CustomerRepositoryFacade
	inventoryRepo portsrepo.InventoryRepositoryFacade
}

// NewInvoiceService creates a new invoice service.
func NewInvoiceService(txnRepo portsrepo.TransactionRepositoryFacade, customerRepo portsrepo.CustomerRepositoryFacade, inventoryRepo portsrepo.InventoryRepositoryFacade) portssvc.InvoiceSvcFacade {
	return &invoiceService{
		txnRepo:       txnRepo,
		customerRepo:  customerRepo,
		inventoryRepo: inventoryRepo,
	}
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

// paymentMethodLabel derives the human-readable payment method for the
// invoice. An explicit payment mode on the transaction wins; otherwise the
// most recent payment's method is used; a transaction with no payments falls
// back to a status-derived label.
func paymentMethodLabel(txn *domain.Transaction) string {
	if txn.PaymentMode != "" {
		return labelForMode(txn.PaymentMode)
	}
	if n := len(txn.Payments); n > 0 {
		return labelForMode(txn.Payments[n-1].PaymentMethod)
	}
	if txn.Status == domain.StatusPending {
		return "Unpaid"
	}
	return "Paid"
}

func labelForMode(mode domain.PaymentMode) string {
	switch mode {
	case domain.PaymentModeCash:
		return "Cash"
	case domain.PaymentModeCard:
		return "Card"
	case domain.PaymentModeCheque:
		return "Cheque"
	case domain.PaymentModeBank:
		return "Bank Transfer"
	case domain.PaymentModeLeasing:
		return "Leasing"
	default:
		return string(mode)
	}
}

// invoiceNumber derives a stable invoice number from the transaction ID.
func invoiceNumber(transactionID string) string {
	short := strings.ReplaceAll(transactionID, "-", "")
	if len(short) > 8 {
		short = short[:8]
	}
	return "INV-" + strings.ToUpper(short)
}

// BuildInvoice loads the transaction with its ledger and flattens everything
// the print template needs into an InvoiceView. The bank layout is only
// valid for leasing transactions.
func (s *invoiceService) BuildInvoice(ctx context.Context, transactionID string, layout dto.InvoiceLayout) (*dto.InvoiceView, error) {
	if layout != dto.LayoutCustomer && layout != dto.LayoutBank {
		return nil, fmt.Errorf("%w: unknown invoice layout %q", apperrors.ErrValidation, layout)
	}

	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	payments, err := s.txnRepo.FindPaymentsByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load payments for invoice: %w", err)
	}
	txn.Payments = payments

	if layout == dto.LayoutBank && txn.LeasingDetails == nil {
		return nil, fmt.Errorf("%w: bank layout requires a leasing transaction", apperrors.ErrValidation)
	}

	customer, err := s.customerRepo.FindCustomerByID(ctx, txn.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load customer for invoice: %w", err)
	}
	item, err := s.inventoryRepo.FindItemByID(ctx, txn.InventoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory item for invoice: %w", err)
	}

	view := &dto.InvoiceView{
		InvoiceNo: invoiceNumber(txn.TransactionID),
		Layout:    layout,
		IssuedAt:  time.Now().UTC(),

		CustomerName:    customer.Name,
		CustomerContact: customer.ContactNumber,
		CustomerAddress: customer.Address,
		CustomerNIC:     customer.NationalID,

		VehicleMake:  item.Make,
		VehicleModel: item.Model,
		VehicleYear:  item.Year,
		VehicleVIN:   item.VIN,
		VehicleColor: item.Color,

		VehiclePrice:     txn.Pricing.VehiclePrice,
		Taxes:            txn.Pricing.Taxes,
		Fees:             txn.Pricing.Fees,
		Discount:         txn.Pricing.Discount,
		TotalAmount:      txn.Pricing.TotalAmount,
		TotalPaid:        txn.TotalPaid,
		BalanceRemaining: txn.BalanceRemaining,
		CurrencyCode:     txn.CurrencyCode,

		PaymentMethodLabel: paymentMethodLabel(txn),
	}

	if layout == dto.LayoutBank {
		ld := txn.LeasingDetails
		view.LeasingCompany = ld.LeasingCompany
		view.LeaseReferenceNo = ld.LeaseReferenceNo
		view.DownPayment = ld.DownPayment
		view.LeasingAmount = ld.LeasingAmount
		view.MonthlyInstallment = ld.MonthlyInstallment
		view.TenureMonths = ld.TenureMonths
		view.InterestRate = ld.InterestRate
	}

	return view, nil
}
