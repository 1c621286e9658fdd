package mapping

import (
	"github.com/autohaus/dms_backend/internal/core/domain"
	"github.com/autohaus/dms_backend/internal/models"
)

// ToModelVehicleOrder converts a domain vehicle order to its model representation.
func ToModelVehicleOrder(d domain.VehicleOrder) models.VehicleOrder {
	return models.VehicleOrder{
		OrderID:            d.OrderID,
		Supplier:           d.Supplier,
		VehicleDescription: d.VehicleDescription,
		LCNumber:           strPtr(d.LCNumber),
		LCAmount:           d.LCAmount,
		Bank:               strPtr(d.Bank),
		CurrencyCode:       d.CurrencyCode,
		ExpectedArrival:    d.ExpectedArrival,
		Status:             string(d.Status),
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainVehicleOrder converts a model vehicle order to its domain representation.
func ToDomainVehicleOrder(m models.VehicleOrder) domain.VehicleOrder {
	return domain.VehicleOrder{
		OrderID:            m.OrderID,
		Supplier:           m.Supplier,
		VehicleDescription: m.VehicleDescription,
		LCNumber:           strVal(m.LCNumber),
		LCAmount:           m.LCAmount,
		Bank:               strVal(m.Bank),
		CurrencyCode:       m.CurrencyCode,
		ExpectedArrival:    m.ExpectedArrival,
		Status:             domain.VehicleOrderStatus(m.Status),
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainVehicleOrderSlice converts a slice of model vehicle orders.
func ToDomainVehicleOrderSlice(ms []models.VehicleOrder) []domain.VehicleOrder {
	ds := make([]domain.VehicleOrder, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainVehicleOrder(m)
	}
	return ds
}
