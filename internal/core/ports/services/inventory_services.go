package services

import (
	"context"

	"github.com/autohaus/dms_backend/internal/core/domain"
	"github.com/autohaus/dms_backend/internal/dto"
)

// InventoryReaderSvc defines read operations for stock vehicles
type InventoryReaderSvc interface {
	// GetItemByID retrieves an inventory item by ID.
	GetItemByID(ctx context.Context, inventoryID string) (*domain.InventoryItem, error)

	// ListItems retrieves a paginated list, optionally filtered by status.
	ListItems(ctx context.Context, status *domain.InventoryStatus, limit, offset int) ([]domain.InventoryItem, error)
}

// InventoryWriterSvc defines write operations for stock vehicles
type InventoryWriterSvc interface {
	// CreateItem adds a vehicle to stock. The VIN must be unique.
	CreateItem(ctx context.Context, req dto.CreateInventoryItemRequest, creatorUserID string) (*domain.InventoryItem, error)

	// UpdateItem updates the descriptive fields of an item.
	UpdateItem(ctx context.Context, inventoryID string, req dto.UpdateInventoryItemRequest, requestingUserID string) (*domain.InventoryItem, error)

	// UpdateItemStatus performs a manual status change (e.g. MAINTENANCE).
	// RESERVED and SOLD are driven by transactions and rejected here.
	UpdateItemStatus(ctx context.Context, inventoryID string, status domain.InventoryStatus, requestingUserID string) (*domain.InventoryItem, error)
}

// InventorySvcFacade combines all inventory-related service interfaces
type InventorySvcFacade interface {
	InventoryReaderSvc
	InventoryWriterSvc
}
