package dto

import (
	"time"

	"github.com/autohaus/dms_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PricingRequest carries the four price components of a transaction.
// TotalAmount is always derived server-side, never accepted from the client.
type PricingRequest struct {
	VehiclePrice decimal.Decimal `json:"vehiclePrice" binding:"required"`
	Taxes        decimal.Decimal `json:"taxes"`
	Fees         decimal.Decimal `json:"fees"`
	Discount     decimal.Decimal `json:"discount"`
}

// ReservationCustomer identifies the customer for a new reservation. The
// contact number is the lookup key: an existing customer with the same
// verbatim number is reused, otherwise a new record is created.
type ReservationCustomer struct {
	Name          string `json:"name" binding:"required"`
	ContactNumber string `json:"contactNumber" binding:"required"`
	Email         string `json:"email" binding:"omitempty,email"`
	Address       string `json:"address"`
	NationalID    string `json:"nationalID"`
}

// LeasingRequest carries the financing terms for a leasing reservation.
// DownPayment defaults to 20% of the total when omitted.
type LeasingRequest struct {
	LeasingCompany   string           `json:"leasingCompany" binding:"required"`
	LeaseReferenceNo string           `json:"leaseReferenceNo"`
	DownPayment      *decimal.Decimal `json:"downPayment,omitempty"`
	TenureMonths     int              `json:"tenureMonths" binding:"required,gt=0"`
	InterestRate     decimal.Decimal  `json:"interestRate"`
	StartDate        *time.Time       `json:"startDate,omitempty"`
}

// CreateReservationRequest defines the payload for creating a reservation.
type CreateReservationRequest struct {
	InventoryID string              `json:"inventoryID" binding:"required"`
	Customer    ReservationCustomer `json:"customer" binding:"required"`
	Pricing     PricingRequest      `json:"pricing" binding:"required"`
	PaymentMode domain.PaymentMode  `json:"paymentMode" binding:"required,oneof=CASH CARD CHEQUE BANK_TRANSFER LEASING"`
	DueDate     *time.Time          `json:"dueDate,omitempty"`
	Leasing     *LeasingRequest     `json:"leasing,omitempty"`
}

// AddPaymentRequest defines the payload for appending a payment to the ledger.
type AddPaymentRequest struct {
	Amount        decimal.Decimal    `json:"amount" binding:"required"`
	PaymentMethod domain.PaymentMode `json:"paymentMethod" binding:"required,oneof=CASH CARD CHEQUE BANK_TRANSFER LEASING"`
	PaymentDate   *time.Time         `json:"paymentDate,omitempty"`
	Notes         string             `json:"notes"`
}

// PaymentResponse defines the data returned for a payment record.
type PaymentResponse struct {
	PaymentID     string          `json:"paymentID"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"paymentMethod"`
	PaymentDate   time.Time       `json:"paymentDate"`
	ReceivedBy    string          `json:"receivedBy"`
	Notes         string          `json:"notes,omitempty"`
}

// LeasingDetailsResponse defines the data returned for leasing terms.
type LeasingDetailsResponse struct {
	LeasingCompany     string          `json:"leasingCompany"`
	LeaseReferenceNo   string          `json:"leaseReferenceNo,omitempty"`
	DownPayment        decimal.Decimal `json:"downPayment"`
	LeasingAmount      decimal.Decimal `json:"leasingAmount"`
	MonthlyInstallment decimal.Decimal `json:"monthlyInstallment"`
	TenureMonths       int             `json:"tenureMonths"`
	InterestRate       decimal.Decimal `json:"interestRate"`
	StartDate          time.Time       `json:"startDate"`
	EndDate            time.Time       `json:"endDate"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID    string                  `json:"transactionID"`
	CustomerID       string                  `json:"customerID"`
	InventoryID      string                  `json:"inventoryID"`
	Type             string                  `json:"type"`
	Status           string                  `json:"status"`
	VehiclePrice     decimal.Decimal         `json:"vehiclePrice"`
	Taxes            decimal.Decimal         `json:"taxes"`
	Fees             decimal.Decimal         `json:"fees"`
	Discount         decimal.Decimal         `json:"discount"`
	TotalAmount      decimal.Decimal         `json:"totalAmount"`
	CurrencyCode     string                  `json:"currencyCode"`
	PaymentMode      string                  `json:"paymentMode"`
	TotalPaid        decimal.Decimal         `json:"totalPaid"`
	BalanceRemaining decimal.Decimal         `json:"balanceRemaining"`
	DueDate          *time.Time              `json:"dueDate,omitempty"`
	Leasing          *LeasingDetailsResponse `json:"leasing,omitempty"`
	Payments         []PaymentResponse       `json:"payments,omitempty"`
	CreatedAt        time.Time               `json:"createdAt"`
	CreatedBy        string                  `json:"createdBy"`
}

// ListTransactionsParams holds query parameters for listing transactions.
type ListTransactionsParams struct {
	Status    string  `form:"status"`
	Type      string  `form:"type"`
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// ListTransactionsResponse is the paginated transaction listing.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// MarkOverdueRequest optionally pins the cutoff instant of the sweep.
// When omitted the server uses the current time.
type MarkOverdueRequest struct {
	AsOf *time.Time `json:"asOf,omitempty"`
}

// MarkOverdueResponse reports the outcome of an overdue sweep.
type MarkOverdueResponse struct {
	MarkedOverdue int64 `json:"markedOverdue"`
}

// ToPaymentResponse converts a domain.PaymentRecord to PaymentResponse.
func ToPaymentResponse(p *domain.PaymentRecord) PaymentResponse {
	return PaymentResponse{
		PaymentID:     p.PaymentID,
		Amount:        p.Amount,
		PaymentMethod: string(p.PaymentMethod),
		PaymentDate:   p.PaymentDate,
		ReceivedBy:    p.ReceivedBy,
		Notes:         p.Notes,
	}
}

// ToPaymentResponses converts a slice of domain payment records.
func ToPaymentResponses(ps []domain.PaymentRecord) []PaymentResponse {
	responses := make([]PaymentResponse, len(ps))
	for i, p := range ps {
		responses[i] = ToPaymentResponse(&p)
	}
	return responses
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	resp := TransactionResponse{
		TransactionID:    t.TransactionID,
		CustomerID:       t.CustomerID,
		InventoryID:      t.InventoryID,
		Type:             string(t.Type),
		Status:           string(t.Status),
		VehiclePrice:     t.Pricing.VehiclePrice,
		Taxes:            t.Pricing.Taxes,
		Fees:             t.Pricing.Fees,
		Discount:         t.Pricing.Discount,
		TotalAmount:      t.Pricing.TotalAmount,
		CurrencyCode:     t.CurrencyCode,
		PaymentMode:      string(t.PaymentMode),
		TotalPaid:        t.TotalPaid,
		BalanceRemaining: t.BalanceRemaining,
		DueDate:          t.DueDate,
		CreatedAt:        t.CreatedAt,
		CreatedBy:        t.CreatedBy,
	}
	if ld := t.LeasingDetails; ld != nil {
		resp.Leasing = &LeasingDetailsResponse{
			LeasingCompany:     ld.LeasingCompany,
			LeaseReferenceNo:   ld.LeaseReferenceNo,
			DownPayment:        ld.DownPayment,
			LeasingAmount:      ld.LeasingAmount,
			MonthlyInstallment: ld.MonthlyInstallment,
			TenureMonths:       ld.TenureMonths,
			InterestRate:       ld.InterestRate,
			StartDate:          ld.StartDate,
			EndDate:            ld.EndDate,
		}
	}
	if len(t.Payments) > 0 {
		resp.Payments = ToPaymentResponses(t.Payments)
	}
	return resp
}

// ToTransactionResponses converts a slice of domain transactions.
func ToTransactionResponses(ts []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(ts))
	for i, t := range ts {
		responses[i] = ToTransactionResponse(&t)
	}
	return responses
}
