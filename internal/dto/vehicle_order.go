package dto

import (
	"time"

	"github.com/autohaus/dms_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateVehicleOrderRequest defines the payload for creating an import order.
type CreateVehicleOrderRequest struct {
	Supplier           string          `json:"supplier" binding:"required"`
	VehicleDescription string          `json:"vehicleDescription" binding:"required"`
	LCNumber           string          `json:"lcNumber"`
	LCAmount           decimal.Decimal `json:"lcAmount"`
	Bank               string          `json:"bank"`
	CurrencyCode       string          `json:"currencyCode"`
	ExpectedArrival    *time.Time      `json:"expectedArrival,omitempty"`
}

// UpdateVehicleOrderRequest defines the payload for updating an import order.
// Nil fields are left unchanged. Status changes go through the dedicated
// status endpoint, not here.
type UpdateVehicleOrderRequest struct {
	Supplier           *string          `json:"supplier,omitempty"`
	VehicleDescription *string          `json:"vehicleDescription,omitempty"`
	LCNumber           *string          `json:"lcNumber,omitempty"`
	LCAmount           *decimal.Decimal `json:"lcAmount,omitempty"`
	Bank               *string          `json:"bank,omitempty"`
	ExpectedArrival    *time.Time       `json:"expectedArrival,omitempty"`
}

// UpdateOrderStatusRequest defines the payload for advancing an order's lifecycle.
type UpdateOrderStatusRequest struct {
	Status domain.VehicleOrderStatus `json:"status" binding:"required,oneof=ORDERED SHIPPED CLEARING COMPLETED"`
}

// VehicleOrderResponse defines the data returned for an import order.
type VehicleOrderResponse struct {
	OrderID            string          `json:"orderID"`
	Supplier           string          `json:"supplier"`
	VehicleDescription string          `json:"vehicleDescription"`
	LCNumber           string          `json:"lcNumber,omitempty"`
	LCAmount           decimal.Decimal `json:"lcAmount"`
	Bank               string          `json:"bank,omitempty"`
	CurrencyCode       string          `json:"currencyCode"`
	ExpectedArrival    *time.Time      `json:"expectedArrival,omitempty"`
	Status             string          `json:"status"`
	CreatedAt          time.Time       `json:"createdAt"`
}

// ListVehicleOrdersParams holds the query parameters for listing import orders.
type ListVehicleOrdersParams struct {
	Status string `form:"status" binding:"omitempty,oneof=ORDERED SHIPPED CLEARING COMPLETED"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

// ListVehicleOrdersResponse wraps a page of import orders.
type ListVehicleOrdersResponse struct {
	Orders []VehicleOrderResponse `json:"orders"`
}

// ToVehicleOrderResponse converts a domain.VehicleOrder to its response DTO.
func ToVehicleOrderResponse(o *domain.VehicleOrder) VehicleOrderResponse {
	return VehicleOrderResponse{
		OrderID:            o.OrderID,
		Supplier:           o.Supplier,
		VehicleDescription: o.VehicleDescription,
		LCNumber:           o.LCNumber,
		LCAmount:           o.LCAmount,
		Bank:               o.Bank,
		CurrencyCode:       o.CurrencyCode,
		ExpectedArrival:    o.ExpectedArrival,
		Status:             string(o.Status),
		CreatedAt:          o.CreatedAt,
	}
}

// ToVehicleOrderResponses converts a slice of domain vehicle orders.
func ToVehicleOrderResponses(os []domain.VehicleOrder) []VehicleOrderResponse {
	responses := make([]VehicleOrderResponse, len(os))
	for i, o := range os {
		responses[i] = ToVehicleOrderResponse(&o)
	}
	return responses
}
