package mapping

import (
	"github.com/autohaus/dms_backend/internal/core/domain"
	"github.com/autohaus/dms_backend/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelTransaction converts a domain transaction to its model
// representation, flattening pricing and optional leasing details into
// table columns.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	m := models.Transaction{
		TransactionID:    d.TransactionID,
		CustomerID:       d.CustomerID,
		InventoryID:      d.InventoryID,
		Type:             string(d.Type),
		Status:           string(d.Status),
		VehiclePrice:     d.Pricing.VehiclePrice,
		Taxes:            d.Pricing.Taxes,
		Fees:             d.Pricing.Fees,
		Discount:         d.Pricing.Discount,
		TotalAmount:      d.Pricing.TotalAmount,
		CurrencyCode:     d.CurrencyCode,
		PaymentMode:      string(d.PaymentMode),
		TotalPaid:        d.TotalPaid,
		BalanceRemaining: d.BalanceRemaining,
		DueDate:          d.DueDate,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
	if ld := d.LeasingDetails; ld != nil {
		m.LeasingCompany = strPtr(ld.LeasingCompany)
		m.LeaseReferenceNo = strPtr(ld.LeaseReferenceNo)
		m.DownPayment = decimalPtr(ld.DownPayment)
		m.LeasingAmount = decimalPtr(ld.LeasingAmount)
		m.MonthlyInstallment = decimalPtr(ld.MonthlyInstallment)
		tenure := ld.TenureMonths
		m.TenureMonths = &tenure
		m.InterestRate = decimalPtr(ld.InterestRate)
		start := ld.StartDate
		end := ld.EndDate
		m.LeaseStartDate = &start
		m.LeaseEndDate = &end
	}
	return m
}

// ToDomainTransaction converts a model transaction to its domain representation.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	d := domain.Transaction{
		TransactionID: m.TransactionID,
		CustomerID:    m.CustomerID,
		InventoryID:   m.InventoryID,
		Type:          domain.TransactionType(m.Type),
		Status:        domain.TransactionStatus(m.Status),
		Pricing: domain.Pricing{
			VehiclePrice: m.VehiclePrice,
			Taxes:        m.Taxes,
			Fees:         m.Fees,
			Discount:     m.Discount,
			TotalAmount:  m.TotalAmount,
		},
		CurrencyCode:     m.CurrencyCode,
		PaymentMode:      domain.PaymentMode(m.PaymentMode),
		TotalPaid:        m.TotalPaid,
		BalanceRemaining: m.BalanceRemaining,
		DueDate:          m.DueDate,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
	if m.LeasingCompany != nil {
		ld := domain.LeasingDetails{
			LeasingCompany:     strVal(m.LeasingCompany),
			LeaseReferenceNo:   strVal(m.LeaseReferenceNo),
			DownPayment:        decimalVal(m.DownPayment),
			LeasingAmount:      decimalVal(m.LeasingAmount),
			MonthlyInstallment: decimalVal(m.MonthlyInstallment),
			InterestRate:       decimalVal(m.InterestRate),
		}
		if m.TenureMonths != nil {
			ld.TenureMonths = *m.TenureMonths
		}
		if m.LeaseStartDate != nil {
			ld.StartDate = *m.LeaseStartDate
		}
		if m.LeaseEndDate != nil {
			ld.EndDate = *m.LeaseEndDate
		}
		d.LeasingDetails = &ld
	}
	return d
}

// ToModelPayment converts a domain payment record to its model representation.
func ToModelPayment(d domain.PaymentRecord) models.PaymentRecord {
	return models.PaymentRecord{
		PaymentID:     d.PaymentID,
		TransactionID: d.TransactionID,
		Amount:        d.Amount,
		PaymentMethod: string(d.PaymentMethod),
		PaymentDate:   d.PaymentDate,
		ReceivedBy:    d.ReceivedBy,
		Notes:         strPtr(d.Notes),
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPayment converts a model payment record to its domain representation.
func ToDomainPayment(m models.PaymentRecord) domain.PaymentRecord {
	return domain.PaymentRecord{
		PaymentID:     m.PaymentID,
		TransactionID: m.TransactionID,
		Amount:        m.Amount,
		PaymentMethod: domain.PaymentMode(m.PaymentMethod),
		PaymentDate:   m.PaymentDate,
		ReceivedBy:    m.ReceivedBy,
		Notes:         strVal(m.Notes),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPaymentSlice converts a slice of model payment records.
func ToDomainPaymentSlice(ms []models.PaymentRecord) []domain.PaymentRecord {
	ds := make([]domain.PaymentRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayment(m)
	}
	return ds
}

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func decimalVal(p *decimal.Decimal) decimal.Decimal {
	if p == nil {
		return decimal.Zero
	}
	return *p
}
