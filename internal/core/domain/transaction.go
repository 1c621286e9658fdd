package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies the commercial nature of a transaction.
type TransactionType string

const (
	TypeReservation TransactionType = "RESERVATION"
	TypeSale        TransactionType = "SALE"
	TypeLeasing     TransactionType = "LEASING"
	TypeRefund      TransactionType = "REFUND"
)

// TransactionStatus indicates the payment state of a transaction.
//
// The normal path is PENDING -> PARTIAL_PAID -> COMPLETED and is monotonic.
// CANCELLED is reachable from any non-terminal state via an explicit cancel.
// OVERDUE is entered only by the mark-overdue sweep.
type TransactionStatus string

const (
	StatusPending     TransactionStatus = "PENDING"
	StatusPartialPaid TransactionStatus = "PARTIAL_PAID"
	StatusFullyPaid   TransactionStatus = "FULLY_PAID"
	StatusCompleted   TransactionStatus = "COMPLETED"
	StatusOverdue     TransactionStatus = "OVERDUE"
	StatusCancelled   TransactionStatus = "CANCELLED"
)

// IsTerminal reports whether no further ledger activity is accepted.
// FULLY_PAID is terminal: a settled lease takes no more payments and
// cancelling it must not touch the sold vehicle.
func (s TransactionStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFullyPaid || s == StatusCancelled
}

// PaymentMode indicates how the customer settles the transaction.
type PaymentMode string

const (
	PaymentModeCash    PaymentMode = "CASH"
	PaymentModeCard    PaymentMode = "CARD"
	PaymentModeCheque  PaymentMode = "CHEQUE"
	PaymentModeBank    PaymentMode = "BANK_TRANSFER"
	PaymentModeLeasing PaymentMode = "LEASING"
)

// Pricing holds the price components of a transaction.
// TotalAmount = VehiclePrice + Taxes + Fees - Discount.
type Pricing struct {
	VehiclePrice decimal.Decimal `json:"vehiclePrice"`
	Taxes        decimal.Decimal `json:"taxes"`
	Fees         decimal.Decimal `json:"fees"`
	Discount     decimal.Decimal `json:"discount"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
}

// LeasingDetails describes the financing arrangement attached to a leasing
// transaction. LeasingAmount = TotalAmount - DownPayment; MonthlyInstallment
// is derived from the standard amortization formula.
type LeasingDetails struct {
	LeasingCompany     string          `json:"leasingCompany"`
	LeaseReferenceNo   string          `json:"leaseReferenceNo"`
	DownPayment        decimal.Decimal `json:"downPayment"`
	LeasingAmount      decimal.Decimal `json:"leasingAmount"`
	MonthlyInstallment decimal.Decimal `json:"monthlyInstallment"`
	TenureMonths       int             `json:"tenureMonths"`
	InterestRate       decimal.Decimal `json:"interestRate"` // Annual percent
	StartDate          time.Time       `json:"startDate"`
	EndDate            time.Time       `json:"endDate"`
}

// PaymentRecord is a single entry in a transaction's payment ledger.
// Records are append-only and immutable once written.
type PaymentRecord struct {
	PaymentID     string          `json:"paymentID"` // Primary Key (UUID)
	TransactionID string          `json:"transactionID"`
	Amount        decimal.Decimal `json:"amount"` // Positive value
	PaymentMethod PaymentMode     `json:"paymentMethod"`
	PaymentDate   time.Time       `json:"paymentDate"`
	ReceivedBy    string          `json:"receivedBy"` // UserID reference
	Notes         string          `json:"notes"`      // Nullable
	AuditFields
}

// Transaction represents a customer-facing sale, reservation, lease or
// refund, together with its derived ledger totals.
//
// Invariants: TotalPaid equals the sum of Payments amounts and
// BalanceRemaining = max(0, Pricing.TotalAmount - TotalPaid). Both are
// recomputed and persisted atomically with every appended payment.
type Transaction struct {
	TransactionID    string            `json:"transactionID"` // Primary Key (UUID)
	CustomerID       string            `json:"customerID"`    // FK -> customers
	InventoryID      string            `json:"inventoryID"`   // FK -> inventory
	Type             TransactionType   `json:"type"`
	Status           TransactionStatus `json:"status"`
	Pricing          Pricing           `json:"pricing"`
	CurrencyCode     string            `json:"currencyCode"`
	PaymentMode      PaymentMode       `json:"paymentMode"`
	TotalPaid        decimal.Decimal   `json:"totalPaid"`
	BalanceRemaining decimal.Decimal   `json:"balanceRemaining"`
	DueDate          *time.Time        `json:"dueDate,omitempty"` // Drives the overdue sweep
	LeasingDetails   *LeasingDetails   `json:"leasingDetails,omitempty"`
	Payments         []PaymentRecord   `json:"payments,omitempty"` // Often loaded separately
	AuditFields
}
