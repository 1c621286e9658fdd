package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/autohaus/dms_backend/internal/apperrors"
	"github.com/autohaus/dms_backend/internal/core/domain"
	portsrepo "github.com/autohaus/dms_backend/internal/core/ports/repositories"
	portssvc "github.com/autohaus/dms_backend/internal/core/ports/services"
	"github.com/autohaus/dms_backend/internal/core/services"
	"github.com/autohaus/dms_backend/internal/dto"
)

// --- Mock VehicleOrderRepository ---
type MockVehicleOrderRepository struct {
	mock.Mock
}

var _ portsrepo.VehicleOrderRepositoryFacade = (*MockVehicleOrderRepository)(nil)

func (m *MockVehicleOrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.VehicleOrder, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VehicleOrder), args.Error(1)
}

func (m *MockVehicleOrderRepository) FindOrders(ctx context.Context, status *domain.VehicleOrderStatus, limit int, offset int) ([]domain.VehicleOrder, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VehicleOrder), args.Error(1)
}

func (m *MockVehicleOrderRepository) SaveOrder(ctx context.Context, order domain.VehicleOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockVehicleOrderRepository) UpdateOrder(ctx context.Context, order domain.VehicleOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockVehicleOrderRepository) UpdateOrderStatus(ctx context.Context, orderID string, status domain.VehicleOrderStatus, updatedBy string, at time.Time) error {
	args := m.Called(ctx, orderID, status, updatedBy, at)
	return args.Error(0)
}

type VehicleOrderServiceTestSuite struct {
	suite.Suite
	mockOrderRepo *MockVehicleOrderRepository
	service       portssvc.VehicleOrderSvcFacade
	userID        string
}

func (suite *VehicleOrderServiceTestSuite) SetupTest() {
	suite.mockOrderRepo = new(MockVehicleOrderRepository)
	suite.service = services.NewVehicleOrderService(suite.mockOrderRepo, "LKR")
	suite.userID = uuid.NewString()
}

func (suite *VehicleOrderServiceTestSuite) orderInStatus(status domain.VehicleOrderStatus) *domain.VehicleOrder {
	return &domain.VehicleOrder{
		OrderID:            uuid.NewString(),
		Supplier:           "Kyushu Auto Export",
		VehicleDescription: "Toyota Aqua S Grade 2019",
		LCNumber:           "LC-2024-0041",
		LCAmount:           decimal.NewFromInt(3200000),
		Bank:               "Commercial Bank",
		CurrencyCode:       "LKR",
		Status:             status,
	}
}

func (suite *VehicleOrderServiceTestSuite) TestCreateOrder_StartsOrdered() {
	ctx := context.Background()
	req := dto.CreateVehicleOrderRequest{
		Supplier:           "Kyushu Auto Export",
		VehicleDescription: "Toyota Aqua S Grade 2019",
		LCNumber:           "LC-2024-0041",
		LCAmount:           decimal.NewFromInt(3200000),
		Bank:               "Commercial Bank",
	}

	suite.mockOrderRepo.On("SaveOrder", ctx, mock.AnythingOfType("domain.VehicleOrder")).Return(nil).Once()

	order, err := suite.service.CreateOrder(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.OrderOrdered, order.Status)
	suite.Equal("LKR", order.CurrencyCode)
	suite.NotEmpty(order.OrderID)
}

func (suite *VehicleOrderServiceTestSuite) TestAdvanceOrderStatus_SingleForwardStep() {
	ctx := context.Background()
	steps := []struct {
		from domain.VehicleOrderStatus
		to   domain.VehicleOrderStatus
	}{
		{domain.OrderOrdered, domain.OrderShipped},
		{domain.OrderShipped, domain.OrderClearing},
		{domain.OrderClearing, domain.OrderCompleted},
	}

	for _, step := range steps {
		order := suite.orderInStatus(step.from)
		suite.mockOrderRepo.On("FindOrderByID", ctx, order.OrderID).Return(order, nil).Once()
		suite.mockOrderRepo.On("UpdateOrderStatus", ctx, order.OrderID, step.to, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

		updated, err := suite.service.AdvanceOrderStatus(ctx, order.OrderID, step.to, suite.userID)

		suite.Require().NoError(err, "step %s -> %s", step.from, step.to)
		suite.Equal(step.to, updated.Status)
	}
	suite.mockOrderRepo.AssertExpectations(suite.T())
}

func (suite *VehicleOrderServiceTestSuite) TestAdvanceOrderStatus_SkipRejected() {
	ctx := context.Background()
	order := suite.orderInStatus(domain.OrderOrdered)

	suite.mockOrderRepo.On("FindOrderByID", ctx, order.OrderID).Return(order, nil).Once()

	_, err := suite.service.AdvanceOrderStatus(ctx, order.OrderID, domain.OrderClearing, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "UpdateOrderStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *VehicleOrderServiceTestSuite) TestAdvanceOrderStatus_ReversalRejected() {
	ctx := context.Background()
	order := suite.orderInStatus(domain.OrderClearing)

	suite.mockOrderRepo.On("FindOrderByID", ctx, order.OrderID).Return(order, nil).Once()

	_, err := suite.service.AdvanceOrderStatus(ctx, order.OrderID, domain.OrderShipped, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *VehicleOrderServiceTestSuite) TestAdvanceOrderStatus_CompletedIsFinal() {
	ctx := context.Background()
	order := suite.orderInStatus(domain.OrderCompleted)

	suite.mockOrderRepo.On("FindOrderByID", ctx, order.OrderID).Return(order, nil).Once()

	_, err := suite.service.AdvanceOrderStatus(ctx, order.OrderID, domain.OrderCompleted, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *VehicleOrderServiceTestSuite) TestUpdateOrder_AppliesPartialFields() {
	ctx := context.Background()
	order := suite.orderInStatus(domain.OrderOrdered)
	newBank := "Sampath Bank"

	suite.mockOrderRepo.On("FindOrderByID", ctx, order.OrderID).Return(order, nil).Once()
	suite.mockOrderRepo.On("UpdateOrder", ctx, mock.AnythingOfType("domain.VehicleOrder")).Return(nil).Once()

	updated, err := suite.service.UpdateOrder(ctx, order.OrderID, dto.UpdateVehicleOrderRequest{Bank: &newBank}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("Sampath Bank", updated.Bank)
	suite.Equal("Kyushu Auto Export", updated.Supplier)
}

func TestVehicleOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VehicleOrderServiceTestSuite))
}
