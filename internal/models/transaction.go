package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction mirrors the transactions table. Leasing details live in
// nullable columns on the same row; LeasingCompany is the presence marker.
type Transaction struct {
	TransactionID    string
	CustomerID       string
	InventoryID      string
	Type             string
	Status           string
	VehiclePrice     decimal.Decimal
	Taxes            decimal.Decimal
	Fees             decimal.Decimal
	Discount         decimal.Decimal
	TotalAmount      decimal.Decimal
	CurrencyCode     string
	PaymentMode      string
	TotalPaid        decimal.Decimal
	BalanceRemaining decimal.Decimal
	DueDate          *time.Time

	LeasingCompany     *string
	LeaseReferenceNo   *string
	DownPayment        *decimal.Decimal
	LeasingAmount      *decimal.Decimal
	MonthlyInstallment *decimal.Decimal
	TenureMonths       *int
	InterestRate       *decimal.Decimal
	LeaseStartDate     *time.Time
	LeaseEndDate       *time.Time

	AuditFields
}

// PaymentRecord mirrors the payments table.
type PaymentRecord struct {
	PaymentID     string
	TransactionID string
	Amount        decimal.Decimal
	PaymentMethod string
	PaymentDate   time.Time
	ReceivedBy    string
	Notes         *string
	AuditFields
}
