package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/autohaus/dms_backend/internal/apperrors"
	"github.com/autohaus/dms_backend/internal/core/domain"
	portssvc "github.com/autohaus/dms_backend/internal/core/ports/services"
	"github.com/autohaus/dms_backend/internal/dto"
	"github.com/autohaus/dms_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// inventoryHandler handles HTTP requests related to stock vehicles.
type inventoryHandler struct {
	inventoryService portssvc.InventorySvcFacade
}

func newInventoryHandler(is portssvc.InventorySvcFacade) *inventoryHandler {
	return &inventoryHandler{
		inventoryService: is,
	}
}

// registerInventoryRoutes registers all inventory-related routes.
func registerInventoryRoutes(rg *gin.RouterGroup, inventoryService portssvc.InventorySvcFacade) {
	h := newInventoryHandler(inventoryService)

	inventory := rg.Group("/inventory")
	{
		inventory.POST("", h.createItem)
		inventory.GET("", h.listItems)
		inventory.GET("/:id", h.getItem)
		inventory.PUT("/:id", h.updateItem)
		inventory.PATCH("/:id/status", h.updateItemStatus)
	}
}

// createItem godoc
// @Summary Add a vehicle to stock
// @Description Creates an inventory item in AVAILABLE state. The VIN must be unique.
// @Tags inventory
// @Accept  json
// @Produce  json
// @Param   item body dto.CreateInventoryItemRequest true "Vehicle details"
// @Success 201 {object} dto.InventoryItemResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "VIN already exists"
// @Failure 500 {object} map[string]string "Failed to create inventory item"
// @Security BearerAuth
// @Router /inventory [post]
func (h *inventoryHandler) createItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for create inventory item", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	item, err := h.inventoryService.CreateItem(c.Request.Context(), req, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"error": "A vehicle with this VIN already exists"})
		default:
			logger.Error("Failed to create inventory item in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create inventory item"})
		}
		return
	}

	logger.Info("Inventory item created", slog.String("inventory_id", item.InventoryID), slog.String("vin", item.VIN))
	c.JSON(http.StatusCreated, dto.ToInventoryItemResponse(item))
}

// getItem godoc
// @Summary Get a stock vehicle by ID
// @Tags inventory
// @Produce  json
// @Param   id path string true "Inventory ID"
// @Success 200 {object} dto.InventoryItemResponse
// @Failure 404 {object} map[string]string "Item not found"
// @Failure 500 {object} map[string]string "Failed to retrieve item"
// @Security BearerAuth
// @Router /inventory/{id} [get]
func (h *inventoryHandler) getItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	inventoryID := c.Param("id")

	item, err := h.inventoryService.GetItemByID(c.Request.Context(), inventoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Inventory item not found"})
			return
		}
		logger.Error("Failed to get inventory item from service", slog.String("error", err.Error()), slog.String("inventory_id", inventoryID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve inventory item"})
		return
	}

	c.JSON(http.StatusOK, dto.ToInventoryItemResponse(item))
}

// listItems godoc
// @Summary List stock vehicles
// @Description Retrieves a paginated list of stock vehicles, optionally filtered by status.
// @Tags inventory
// @Produce  json
// @Param   status query string false "Filter by status" Enums(AVAILABLE, RESERVED, SOLD, MAINTENANCE)
// @Param   limit query int false "Limit number of results" default(20)
// @Param   offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListInventoryResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list inventory"
// @Security BearerAuth
// @Router /inventory [get]
func (h *inventoryHandler) listItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListInventoryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	var status *domain.InventoryStatus
	if params.Status != "" {
		s := domain.InventoryStatus(params.Status)
		status = &s
	}

	items, err := h.inventoryService.ListItems(c.Request.Context(), status, params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list inventory from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list inventory"})
		return
	}

	c.JSON(http.StatusOK, dto.ListInventoryResponse{Items: dto.ToInventoryItemResponses(items)})
}

// updateItem godoc
// @Summary Update a stock vehicle
// @Description Updates the descriptive fields of an inventory item. Status changes go through the status endpoint.
// @Tags inventory
// @Accept  json
// @Produce  json
// @Param   id path string true "Inventory ID"
// @Param   item body dto.UpdateInventoryItemRequest true "Fields to update"
// @Success 200 {object} dto.InventoryItemResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Item not found"
// @Failure 500 {object} map[string]string "Failed to update item"
// @Security BearerAuth
// @Router /inventory/{id} [put]
func (h *inventoryHandler) updateItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	inventoryID := c.Param("id")

	var req dto.UpdateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for update inventory item", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Requesting user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	item, err := h.inventoryService.UpdateItem(c.Request.Context(), inventoryID, req, requestingUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Inventory item not found"})
			return
		}
		logger.Error("Failed to update inventory item in service", slog.String("error", err.Error()), slog.String("inventory_id", inventoryID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update inventory item"})
		return
	}

	logger.Info("Inventory item updated", slog.String("inventory_id", inventoryID))
	c.JSON(http.StatusOK, dto.ToInventoryItemResponse(item))
}

// updateItemStatus godoc
// @Summary Change a stock vehicle's status
// @Description Manually moves an item between AVAILABLE and MAINTENANCE. RESERVED and SOLD are driven by transactions and rejected here.
// @Tags inventory
// @Accept  json
// @Produce  json
// @Param   id path string true "Inventory ID"
// @Param   status body dto.UpdateInventoryStatusRequest true "Target status"
// @Success 200 {object} dto.InventoryItemResponse
// @Failure 400 {object} map[string]string "Invalid target status"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Item not found"
// @Failure 409 {object} map[string]string "Item is reserved or sold"
// @Failure 500 {object} map[string]string "Failed to update status"
// @Security BearerAuth
// @Router /inventory/{id}/status [patch]
func (h *inventoryHandler) updateItemStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	inventoryID := c.Param("id")

	var req dto.UpdateInventoryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Requesting user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	item, err := h.inventoryService.UpdateItemStatus(c.Request.Context(), inventoryID, req.Status, requestingUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Inventory item not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrConflict):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update inventory status in service", slog.String("error", err.Error()), slog.String("inventory_id", inventoryID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update inventory status"})
		}
		return
	}

	logger.Info("Inventory status updated", slog.String("inventory_id", inventoryID), slog.String("status", string(item.Status)))
	c.JSON(http.StatusOK, dto.ToInventoryItemResponse(item))
}
