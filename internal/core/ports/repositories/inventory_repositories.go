package repositories

import (
	"context"
	"time"

	"github.com/autohaus/dms_backend/internal/core/domain"
)

// InventoryReader defines read operations for stock vehicles.
type InventoryReader interface {
	FindItemByID(ctx context.Context, inventoryID string) (*domain.InventoryItem, error)
	FindItemByVIN(ctx context.Context, vin string) (*domain.InventoryItem, error)

	// FindItems retrieves a paginated list, optionally filtered by status.
	FindItems(ctx context.Context, status *domain.InventoryStatus, limit int, offset int) ([]domain.InventoryItem, error)
}

// InventoryWriter defines write operations for stock vehicles.
type InventoryWriter interface {
	SaveItem(ctx context.Context, item domain.InventoryItem) error
	UpdateItem(ctx context.Context, item domain.InventoryItem) error

	// UpdateItemStatus sets the status of an item unconditionally (manual
	// status changes, e.g. MAINTENANCE). Transaction-driven status changes
	// happen inside the transaction repository's database transactions.
	UpdateItemStatus(ctx context.Context, inventoryID string, status domain.InventoryStatus, updatedBy string, at time.Time) error
}

// InventoryRepositoryFacade combines all inventory repository interfaces.
type InventoryRepositoryFacade interface {
	InventoryReader
	InventoryWriter
}
