package services

import (
	"context"

	"github.com/autohaus/dms_backend/internal/core/domain"
	"github.com/autohaus/dms_backend/internal/dto"
)

// VehicleOrderReaderSvc defines read operations for import orders
type VehicleOrderReaderSvc interface {
	GetOrderByID(ctx context.Context, orderID string) (*domain.VehicleOrder, error)
	ListOrders(ctx context.Context, status *domain.VehicleOrderStatus, limit, offset int) ([]domain.VehicleOrder, error)
}

// VehicleOrderWriterSvc defines write operations for import orders
type VehicleOrderWriterSvc interface {
	// CreateOrder records a new import order in ORDERED state.
	CreateOrder(ctx context.Context, req dto.CreateVehicleOrderRequest, creatorUserID string) (*domain.VehicleOrder, error)

	// UpdateOrder updates the descriptive fields of an order.
	UpdateOrder(ctx context.Context, orderID string, req dto.UpdateVehicleOrderRequest, requestingUserID string) (*domain.VehicleOrder, error)

	// AdvanceOrderStatus moves an order one step along
	// ORDERED -> SHIPPED -> CLEARING -> COMPLETED. Skips and reversals
	// are rejected with ErrConflict.
	AdvanceOrderStatus(ctx context.Context, orderID string, target domain.VehicleOrderStatus, requestingUserID string) (*domain.VehicleOrder, error)
}

// VehicleOrderSvcFacade combines all vehicle order service interfaces
type VehicleOrderSvcFacade interface {
	VehicleOrderReaderSvc
	VehicleOrderWriterSvc
}
