package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/autohaus/dms_backend/internal/apperrors"
	"github.com/autohaus/dms_backend/internal/core/domain"
	portsrepo "github.com/autohaus/dms_backend/internal/core/ports/repositories"
	portssvc "github.com/autohaus/dms_backend/internal/core/ports/services"
	"github.com/autohaus/dms_backend/internal/dto"
	"github.com/autohaus/dms_backend/internal/middleware"
)

// inventoryService provides stock vehicle operations.
type inventoryService struct {
	inventoryRepo   portsrepo.InventoryRepositoryFacade
	defaultCurrency string
}

// NewInventoryService creates a new inventory service.
func NewInventoryService(inventoryRepo portsrepo.InventoryRepositoryFacade, defaultCurrency string) portssvc.InventorySvcFacade {
	return &inventoryService{
		inventoryRepo:   inventoryRepo,
		defaultCurrency: defaultCurrency,
	}
}

var _ portssvc.InventorySvcFacade = (*inventoryService)(nil)

// CreateItem adds a vehicle to stock in AVAILABLE state. The VIN must be unique.
func (s *inventoryService) CreateItem(ctx context.Context, req dto.CreateInventoryItemRequest, creatorUserID string) (*domain.InventoryItem, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.inventoryRepo.FindItemByVIN(ctx, req.VIN); err == nil {
		return nil, fmt.Errorf("%w: a vehicle with VIN %s already exists", apperrors.ErrDuplicate, req.VIN)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check VIN uniqueness: %w", err)
	}

	currencyCode := req.CurrencyCode
	if currencyCode == "" {
		currencyCode = s.defaultCurrency
	}

	now := time.Now().UTC()
	item := domain.InventoryItem{
		InventoryID:  uuid.NewString(),
		Make:         req.Make,
		Model:        req.Model,
		Year:         req.Year,
		VIN:          req.VIN,
		Color:        req.Color,
		Price:        req.Price,
		CurrencyCode: currencyCode,
		Status:       domain.InventoryAvailable,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.inventoryRepo.SaveItem(ctx, item); err != nil {
		logger.Error("Failed to save inventory item", slog.String("vin", req.VIN), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Inventory item created", slog.String("inventory_id", item.InventoryID), slog.String("vin", item.VIN))
	return &item, nil
}

// GetItemByID retrieves an inventory item by ID.
func (s *inventoryService) GetItemByID(ctx context.Context, inventoryID string) (*domain.InventoryItem, error) {
	return s.inventoryRepo.FindItemByID(ctx, inventoryID)
}

// ListItems retrieves a paginated list, optionally filtered by status.
func (s *inventoryService) ListItems(ctx context.Context, status *domain.InventoryStatus, limit, offset int) ([]domain.InventoryItem, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return s.inventoryRepo.FindItems(ctx, status, limit, offset)
}

// UpdateItem applies the non-nil descriptive fields of the request to the item.
func (s *inventoryService) UpdateItem(ctx context.Context, inventoryID string, req dto.UpdateInventoryItemRequest, requestingUserID string) (*domain.InventoryItem, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	item, err := s.inventoryRepo.FindItemByID(ctx, inventoryID)
	if err != nil {
		return nil, err
	}

	if req.Make != nil {
		item.Make = *req.Make
	}
	if req.Model != nil {
		item.Model = *req.Model
	}
	if req.Year != nil {
		item.Year = *req.Year
	}
	if req.Color != nil {
		item.Color = *req.Color
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	item.LastUpdatedAt = time.Now().UTC()
	item.LastUpdatedBy = requestingUserID

	if err := s.inventoryRepo.UpdateItem(ctx, *item); err != nil {
		logger.Error("Failed to update inventory item", slog.String("inventory_id", inventoryID), slog.String("error", err.Error()))
		return nil, err
	}

	return item, nil
}

// UpdateItemStatus performs a manual status change. RESERVED and SOLD are
// driven by the transaction lifecycle and rejected here; manual changes move
// items between AVAILABLE and MAINTENANCE.
func (s *inventoryService) UpdateItemStatus(ctx context.Context, inventoryID string, status domain.InventoryStatus, requestingUserID string) (*domain.InventoryItem, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if status == domain.InventoryReserved || status == domain.InventorySold {
		return nil, fmt.Errorf("%w: status %s is set by the transaction lifecycle, not manually", apperrors.ErrValidation, status)
	}

	item, err := s.inventoryRepo.FindItemByID(ctx, inventoryID)
	if err != nil {
		return nil, err
	}
	if item.Status == domain.InventoryReserved || item.Status == domain.InventorySold {
		return nil, fmt.Errorf("%w: inventory item %s is %s and cannot be changed manually", apperrors.ErrConflict, inventoryID, item.Status)
	}

	now := time.Now().UTC()
	if err := s.inventoryRepo.UpdateItemStatus(ctx, inventoryID, status, requestingUserID, now); err != nil {
		logger.Error("Failed to update inventory status", slog.String("inventory_id", inventoryID), slog.String("error", err.Error()))
		return nil, err
	}

	item.Status = status
	item.LastUpdatedAt = now
	item.LastUpdatedBy = requestingUserID
	logger.Info("Inventory status updated", slog.String("inventory_id", inventoryID), slog.String("status", string(status)))
	return item, nil
}
