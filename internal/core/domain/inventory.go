package domain

import "github.com/shopspring/decimal"

// InventoryStatus indicates the availability state of a vehicle in stock.
type InventoryStatus string

const (
	InventoryAvailable   InventoryStatus = "AVAILABLE"
	InventoryReserved    InventoryStatus = "RESERVED"
	InventorySold        InventoryStatus = "SOLD"
	InventoryMaintenance InventoryStatus = "MAINTENANCE"
)

// InventoryItem represents a vehicle held in dealership stock.
// Status is mutated as a side effect of transaction state transitions:
// a reservation marks the item RESERVED, full payment marks it SOLD.
type InventoryItem struct {
	InventoryID  string          `json:"inventoryID"` // Primary Key (UUID)
	Make         string          `json:"make"`
	Model        string          `json:"model"`
	Year         int             `json:"year"`
	VIN          string          `json:"vin"` // Unique chassis number
	Color        string          `json:"color"`
	Price        decimal.Decimal `json:"price"` // Listed vehicle price
	CurrencyCode string          `json:"currencyCode"`
	Status       InventoryStatus `json:"status"`
	AuditFields
}
