package mapping

import (
	"github.com/autohaus/dms_backend/internal/core/domain"
	"github.com/autohaus/dms_backend/internal/models"
)

// ToModelInventoryItem converts a domain inventory item to its model representation.
func ToModelInventoryItem(d domain.InventoryItem) models.InventoryItem {
	return models.InventoryItem{
		InventoryID:  d.InventoryID,
		Make:         d.Make,
		Model:        d.Model,
		Year:         d.Year,
		VIN:          d.VIN,
		Color:        strPtr(d.Color),
		Price:        d.Price,
		CurrencyCode: d.CurrencyCode,
		Status:       string(d.Status),
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInventoryItem converts a model inventory item to its domain representation.
func ToDomainInventoryItem(m models.InventoryItem) domain.InventoryItem {
	return domain.InventoryItem{
		InventoryID:  m.InventoryID,
		Make:         m.Make,
		Model:        m.Model,
		Year:         m.Year,
		VIN:          m.VIN,
		Color:        strVal(m.Color),
		Price:        m.Price,
		CurrencyCode: m.CurrencyCode,
		Status:       domain.InventoryStatus(m.Status),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainInventorySlice converts a slice of model inventory items.
func ToDomainInventorySlice(ms []models.InventoryItem) []domain.InventoryItem {
	ds := make([]domain.InventoryItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInventoryItem(m)
	}
	return ds
}
