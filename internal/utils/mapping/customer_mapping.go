package mapping

import (
	"github.com/autohaus/dms_backend/internal/core/domain"
	"github.com/autohaus/dms_backend/internal/models"
)

// ToModelCustomer converts a domain customer to its model representation.
func ToModelCustomer(d domain.Customer) models.Customer {
	return models.Customer{
		CustomerID:    d.CustomerID,
		Name:          d.Name,
		ContactNumber: d.ContactNumber,
		Email:         strPtr(d.Email),
		Address:       strPtr(d.Address),
		NationalID:    strPtr(d.NationalID),
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCustomer converts a model customer to its domain representation.
func ToDomainCustomer(m models.Customer) domain.Customer {
	return domain.Customer{
		CustomerID:    m.CustomerID,
		Name:          m.Name,
		ContactNumber: m.ContactNumber,
		Email:         strVal(m.Email),
		Address:       strVal(m.Address),
		NationalID:    strVal(m.NationalID),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCustomerSlice converts a slice of model customers.
func ToDomainCustomerSlice(ms []models.Customer) []domain.Customer {
	ds := make([]domain.Customer, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCustomer(m)
	}
	return ds
}
