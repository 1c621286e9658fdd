package repositories

import (
	"context"
	"time"

	"github.com/autohaus/dms_backend/internal/core/domain"
)

// VehicleOrderReader defines read operations for import orders.
type VehicleOrderReader interface {
	FindOrderByID(ctx context.Context, orderID string) (*domain.VehicleOrder, error)
	FindOrders(ctx context.Context, status *domain.VehicleOrderStatus, limit int, offset int) ([]domain.VehicleOrder, error)
}

// VehicleOrderWriter defines write operations for import orders.
type VehicleOrderWriter interface {
	SaveOrder(ctx context.Context, order domain.VehicleOrder) error
	UpdateOrder(ctx context.Context, order domain.VehicleOrder) error
	UpdateOrderStatus(ctx context.Context, orderID string, status domain.VehicleOrderStatus, updatedBy string, at time.Time) error
}

// VehicleOrderRepositoryFacade combines all vehicle order repository interfaces.
type VehicleOrderRepositoryFacade interface {
	VehicleOrderReader
	VehicleOrderWriter
}
