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

// vehicleOrderHandler handles HTTP requests for import orders.
type vehicleOrderHandler struct {
	orderService portssvc.VehicleOrderSvcFacade
}

func newVehicleOrderHandler(os portssvc.VehicleOrderSvcFacade) *vehicleOrderHandler {
	return &vehicleOrderHandler{
		orderService: os,
	}
}

// registerVehicleOrderRoutes registers all import order routes.
func registerVehicleOrderRoutes(rg *gin.RouterGroup, orderService portssvc.VehicleOrderSvcFacade) {
	h := newVehicleOrderHandler(orderService)

	orders := rg.Group("/vehicle-orders")
	{
		orders.POST("", h.createOrder)
		orders.GET("", h.listOrders)
		orders.GET("/:id", h.getOrder)
		orders.PUT("/:id", h.updateOrder)
		orders.PATCH("/:id/status", h.updateOrderStatus)
	}
}

// createOrder godoc
// @Summary Create an import order
// @Description Records a new vehicle import order in ORDERED state.
// @Tags vehicle-orders
// @Accept  json
// @Produce  json
// @Param   order body dto.CreateVehicleOrderRequest true "Order details"
// @Success 201 {object} dto.VehicleOrderResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create order"
// @Security BearerAuth
// @Router /vehicle-orders [post]
func (h *vehicleOrderHandler) createOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateVehicleOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for create vehicle order", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create vehicle order in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create vehicle order"})
		return
	}

	logger.Info("Vehicle order created", slog.String("order_id", order.OrderID))
	c.JSON(http.StatusCreated, dto.ToVehicleOrderResponse(order))
}

// getOrder godoc
// @Summary Get an import order by ID
// @Tags vehicle-orders
// @Produce  json
// @Param   id path string true "Order ID"
// @Success 200 {object} dto.VehicleOrderResponse
// @Failure 404 {object} map[string]string "Order not found"
// @Failure 500 {object} map[string]string "Failed to retrieve order"
// @Security BearerAuth
// @Router /vehicle-orders/{id} [get]
func (h *vehicleOrderHandler) getOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID := c.Param("id")

	order, err := h.orderService.GetOrderByID(c.Request.Context(), orderID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle order not found"})
			return
		}
		logger.Error("Failed to get vehicle order from service", slog.String("error", err.Error()), slog.String("order_id", orderID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve vehicle order"})
		return
	}

	c.JSON(http.StatusOK, dto.ToVehicleOrderResponse(order))
}

// listOrders godoc
// @Summary List import orders
// @Description Retrieves a paginated list of import orders, optionally filtered by status.
// @Tags vehicle-orders
// @Produce  json
// @Param   status query string false "Filter by status" Enums(ORDERED, SHIPPED, CLEARING, COMPLETED)
// @Param   limit query int false "Limit number of results" default(20)
// @Param   offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListVehicleOrdersResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list orders"
// @Security BearerAuth
// @Router /vehicle-orders [get]
func (h *vehicleOrderHandler) listOrders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListVehicleOrdersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	var status *domain.VehicleOrderStatus
	if params.Status != "" {
		s := domain.VehicleOrderStatus(params.Status)
		status = &s
	}

	orders, err := h.orderService.ListOrders(c.Request.Context(), status, params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list vehicle orders from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list vehicle orders"})
		return
	}

	c.JSON(http.StatusOK, dto.ListVehicleOrdersResponse{Orders: dto.ToVehicleOrderResponses(orders)})
}

// updateOrder godoc
// @Summary Update an import order
// @Description Updates the descriptive fields of an order. Status changes go through the status endpoint.
// @Tags vehicle-orders
// @Accept  json
// @Produce  json
// @Param   id path string true "Order ID"
// @Param   order body dto.UpdateVehicleOrderRequest true "Fields to update"
// @Success 200 {object} dto.VehicleOrderResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Order not found"
// @Failure 500 {object} map[string]string "Failed to update order"
// @Security BearerAuth
// @Router /vehicle-orders/{id} [put]
func (h *vehicleOrderHandler) updateOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID := c.Param("id")

	var req dto.UpdateVehicleOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for update vehicle order", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Requesting user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	order, err := h.orderService.UpdateOrder(c.Request.Context(), orderID, req, requestingUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle order not found"})
			return
		}
		logger.Error("Failed to update vehicle order in service", slog.String("error", err.Error()), slog.String("order_id", orderID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update vehicle order"})
		return
	}

	logger.Info("Vehicle order updated", slog.String("order_id", orderID))
	c.JSON(http.StatusOK, dto.ToVehicleOrderResponse(order))
}

// updateOrderStatus godoc
// @Summary Advance an import order's lifecycle
// @Description Moves an order one step along ORDERED -> SHIPPED -> CLEARING -> COMPLETED. Skips and reversals are rejected.
// @Tags vehicle-orders
// @Accept  json
// @Produce  json
// @Param   id path string true "Order ID"
// @Param   status body dto.UpdateOrderStatusRequest true "Target status"
// @Success 200 {object} dto.VehicleOrderResponse
// @Failure 400 {object} map[string]string "Invalid target status"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Order not found"
// @Failure 409 {object} map[string]string "Illegal status transition"
// @Failure 500 {object} map[string]string "Failed to update order status"
// @Security BearerAuth
// @Router /vehicle-orders/{id}/status [patch]
func (h *vehicleOrderHandler) updateOrderStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID := c.Param("id")

	var req dto.UpdateOrderStatusRequest
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

	order, err := h.orderService.AdvanceOrderStatus(c.Request.Context(), orderID, req.Status, requestingUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle order not found"})
		case errors.Is(err, apperrors.ErrConflict):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to advance vehicle order status", slog.String("error", err.Error()), slog.String("order_id", orderID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update vehicle order status"})
		}
		return
	}

	logger.Info("Vehicle order status updated", slog.String("order_id", orderID), slog.String("status", string(order.Status)))
	c.JSON(http.StatusOK, dto.ToVehicleOrderResponse(order))
}
