package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceLayout selects which print template the view-model targets.
type InvoiceLayout string

const (
	LayoutCustomer InvoiceLayout = "customer"
	LayoutBank     InvoiceLayout = "bank"
)

// InvoiceView is the flat, display-ready structure assembled from a
// Transaction, its Customer and its InventoryItem. It carries everything
// the print templates need; no further lookups or arithmetic happen
// downstream of this.
type InvoiceView struct {
	InvoiceNo string        `json:"invoiceNo"`
	Layout    InvoiceLayout `json:"layout"`
	IssuedAt  time.Time     `json:"issuedAt"`

	CustomerName    string `json:"customerName"`
	CustomerContact string `json:"customerContact"`
	CustomerAddress string `json:"customerAddress,omitempty"`
	CustomerNIC     string `json:"customerNIC,omitempty"`

	VehicleMake  string `json:"vehicleMake"`
	VehicleModel string `json:"vehicleModel"`
	VehicleYear  int    `json:"vehicleYear"`
	VehicleVIN   string `json:"vehicleVIN"`
	VehicleColor string `json:"vehicleColor,omitempty"`

	VehiclePrice     decimal.Decimal `json:"vehiclePrice"`
	Taxes            decimal.Decimal `json:"taxes"`
	Fees             decimal.Decimal `json:"fees"`
	Discount         decimal.Decimal `json:"discount"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	TotalPaid        decimal.Decimal `json:"totalPaid"`
	BalanceRemaining decimal.Decimal `json:"balanceRemaining"`
	CurrencyCode     string          `json:"currencyCode"`

	PaymentMethodLabel string `json:"paymentMethodLabel"`

	// Bank/leasing layout fields, zero-valued on the customer layout.
	LeasingCompany     string          `json:"leasingCompany,omitempty"`
	LeaseReferenceNo   string          `json:"leaseReferenceNo,omitempty"`
	DownPayment        decimal.Decimal `json:"downPayment,omitempty"`
	LeasingAmount      decimal.Decimal `json:"leasingAmount,omitempty"`
	MonthlyInstallment decimal.Decimal `json:"monthlyInstallment,omitempty"`
	TenureMonths       int             `json:"tenureMonths,omitempty"`
	InterestRate       decimal.Decimal `json:"interestRate,omitempty"`
}
