package services

import (
	"context"
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

// vehicleOrderService provides vehicle import order operations.
type vehicleOrderService struct {
	orderRepo       portsrepo.VehicleOrderRepositoryFacade
	defaultCurrency string
}

// NewVehicleOrderService creates a new vehicle order service.
func NewVehicleOrderService(orderRepo portsrepo.VehicleOrderRepositoryFacade, defaultCurrency string) portssvc.VehicleOrderSvcFacade {
	return &vehicleOrderService{
		orderRepo:       orderRepo,
		defaultCurrency: defaultCurrency,
	}
}

var _ portssvc.VehicleOrderSvcFacade = (*vehicleOrderService)(nil)

// CreateOrder records a new import order in ORDERED state.
func (s *vehicleOrderService) CreateOrder(ctx context.Context, req dto.CreateVehicleOrderRequest, creatorUserID string) (*domain.VehicleOrder, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	currencyCode := req.CurrencyCode
	if currencyCode == "" {
		currencyCode = s.defaultCurrency
	}

	now := time.Now().UTC()
	order := domain.VehicleOrder{
		OrderID:            uuid.NewString(),
		Supplier:           req.Supplier,
		VehicleDescription: req.VehicleDescription,
		LCNumber:           req.LCNumber,
		LCAmount:           req.LCAmount,
		Bank:               req.Bank,
		CurrencyCode:       currencyCode,
		ExpectedArrival:    req.ExpectedArrival,
		Status:             domain.OrderOrdered,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.orderRepo.SaveOrder(ctx, order); err != nil {
		logger.Error("Failed to save vehicle order", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Vehicle order created", slog.String("order_id", order.OrderID), slog.String("supplier", order.Supplier))
	return &order, nil
}

// GetOrderByID retrieves an import order by ID.
func (s *vehicleOrderService) GetOrderByID(ctx context.Context, orderID string) (*domain.VehicleOrder, error) {
	return s.orderRepo.FindOrderByID(ctx, orderID)
}

// ListOrders retrieves a paginated list, optionally filtered by status.
func (s *vehicleOrderService) ListOrders(ctx context.Context, status *domain.VehicleOrderStatus, limit, offset int) ([]domain.VehicleOrder, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return s.orderRepo.FindOrders(ctx, status, limit, offset)
}

// UpdateOrder applies the non-nil descriptive fields of the request to the order.
func (s *vehicleOrderService) UpdateOrder(ctx context.Context, orderID string, req dto.UpdateVehicleOrderRequest, requestingUserID string) (*domain.VehicleOrder, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if req.Supplier != nil {
		order.Supplier = *req.Supplier
	}
	if req.VehicleDescription != nil {
		order.VehicleDescription = *req.VehicleDescription
	}
	if req.LCNumber != nil {
		order.LCNumber = *req.LCNumber
	}
	if req.LCAmount != nil {
		order.LCAmount = *req.LCAmount
	}
	if req.Bank != nil {
		order.Bank = *req.Bank
	}
	if req.ExpectedArrival != nil {
		order.ExpectedArrival = req.ExpectedArrival
	}
	order.LastUpdatedAt = time.Now().UTC()
	order.LastUpdatedBy = requestingUserID

	if err := s.orderRepo.UpdateOrder(ctx, *order); err != nil {
		logger.Error("Failed to update vehicle order", slog.String("order_id", orderID), slog.String("error", err.Error()))
		return nil, err
	}

	return order, nil
}

// AdvanceOrderStatus moves an order one step along its lifecycle.
// Skips and reversals are rejected.
func (s *vehicleOrderService) AdvanceOrderStatus(ctx context.Context, orderID string, target domain.VehicleOrderStatus, requestingUserID string) (*domain.VehicleOrder, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(target) {
		return nil, fmt.Errorf("%w: order %s cannot move from %s to %s", apperrors.ErrConflict, orderID, order.Status, target)
	}

	now := time.Now().UTC()
	if err := s.orderRepo.UpdateOrderStatus(ctx, orderID, target, requestingUserID, now); err != nil {
		logger.Error("Failed to advance order status", slog.String("order_id", orderID), slog.String("error", err.Error()))
		return nil, err
	}

	order.Status = target
	order.LastUpdatedAt = now
	order.LastUpdatedBy = requestingUserID
	logger.Info("Vehicle order advanced", slog.String("order_id", orderID), slog.String("status", string(target)))
	return order, nil
}
