package dto

import (
	"github.com/autohaus/dms_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInventoryItemRequest defines the payload for adding a vehicle to stock.
type CreateInventoryItemRequest struct {
	Make         string          `json:"make" binding:"required"`
	Model        string          `json:"model" binding:"required"`
	Year         int             `json:"year" binding:"required,gte=1950"`
	VIN          string          `json:"vin" binding:"required,vin"`
	Color        string          `json:"color"`
	Price        decimal.Decimal `json:"price" binding:"required"`
	CurrencyCode string          `json:"currencyCode"`
}

// UpdateInventoryItemRequest defines the payload for updating a vehicle.
// Nil fields are left unchanged.
type UpdateInventoryItemRequest struct {
	Make  *string          `json:"make,omitempty"`
	Model *string          `json:"model,omitempty"`
	Year  *int             `json:"year,omitempty"`
	Color *string          `json:"color,omitempty"`
	Price *decimal.Decimal `json:"price,omitempty"`
}

// UpdateInventoryStatusRequest defines the payload for a manual status change
// (e.g. moving a vehicle into or out of MAINTENANCE).
type UpdateInventoryStatusRequest struct {
	Status domain.InventoryStatus `json:"status" binding:"required,oneof=AVAILABLE RESERVED SOLD MAINTENANCE"`
}

// InventoryItemResponse defines the data returned for a stock vehicle.
type InventoryItemResponse struct {
	InventoryID  string          `json:"inventoryID"`
	Make         string          `json:"make"`
	Model        string          `json:"model"`
	Year         int             `json:"year"`
	VIN          string          `json:"vin"`
	Color        string          `json:"color,omitempty"`
	Price        decimal.Decimal `json:"price"`
	CurrencyCode string          `json:"currencyCode"`
	Status       string          `json:"status"`
}

// ListInventoryParams holds the query parameters for listing stock.
type ListInventoryParams struct {
	Status string `form:"status" binding:"omitempty,oneof=AVAILABLE RESERVED SOLD MAINTENANCE"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

// ListInventoryResponse wraps a page of stock vehicles.
type ListInventoryResponse struct {
	Items []InventoryItemResponse `json:"items"`
}

// ToInventoryItemResponse converts a domain.InventoryItem to its response DTO.
func ToInventoryItemResponse(item *domain.InventoryItem) InventoryItemResponse {
	return InventoryItemResponse{
		InventoryID:  item.InventoryID,
		Make:         item.Make,
		Model:        item.Model,
		Year:         item.Year,
		VIN:          item.VIN,
		Color:        item.Color,
		Price:        item.Price,
		CurrencyCode: item.CurrencyCode,
		Status:       string(item.Status),
	}
}

// ToInventoryItemResponses converts a slice of domain inventory items.
func ToInventoryItemResponses(items []domain.InventoryItem) []InventoryItemResponse {
	responses := make([]InventoryItemResponse, len(items))
	for i, item := range items {
		responses[i] = ToInventoryItemResponse(&item)
	}
	return responses
}
