package models

import "github.com/shopspring/decimal"

// InventoryItem mirrors the inventory table.
type InventoryItem struct {
	InventoryID  string
	Make         string
	Model        string
	Year         int
	VIN          string
	Color        *string
	Price        decimal.Decimal
	CurrencyCode string
	Status       string
	AuditFields
}
