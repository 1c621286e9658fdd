package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/autohaus/dms_backend/internal/apperrors"
	"github.com/autohaus/dms_backend/internal/core/domain"
	portssvc "github.com/autohaus/dms_backend/internal/core/ports/services"
	"github.com/autohaus/dms_backend/internal/core/services"
	"github.com/autohaus/dms_backend/internal/dto"
)

type InvoiceServiceTestSuite struct {
	suite.Suite
	mockTxnRepo       *MockTransactionRepository
	mockCustomerRepo  *MockCustomerRepository
	mockInventoryRepo *MockInventoryRepository
	service           portssvc.InvoiceSvcFacade
	txn               *domain.Transaction
	customer          *domain.Customer
	item              *domain.InventoryItem
}

func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockCustomerRepo = new(MockCustomerRepository)
	suite.mockInventoryRepo = new(MockInventoryRepository)
	suite.service = services.NewInvoiceService(suite.mockTxnRepo, suite.mockCustomerRepo, suite.mockInventoryRepo)

	suite.customer = &domain.Customer{
		CustomerID:    uuid.NewString(),
		Name:          "Kamala Silva",
		ContactNumber: "+94712345678",
		Address:       "12 Galle Road, Colombo",
		NationalID:    "857261234V",
	}
	suite.item = &domain.InventoryItem{
		InventoryID:  uuid.NewString(),
		Make:         "Honda",
		Model:        "Vezel",
		Year:         2018,
		VIN:          "RU1-1204567",
		Color:        "Pearl White",
		Price:        decimal.NewFromInt(8500000),
		CurrencyCode: "LKR",
		Status:       domain.InventoryReserved,
	}
	suite.txn = &domain.Transaction{
		TransactionID: uuid.NewString(),
		CustomerID:    suite.customer.CustomerID,
		InventoryID:   suite.item.InventoryID,
		Type:          domain.TypeReservation,
		Status:        domain.StatusPartialPaid,
		Pricing: domain.Pricing{
			VehiclePrice: decimal.NewFromInt(8500000),
			Taxes:        decimal.NewFromInt(250000),
			Fees:         decimal.NewFromInt(50000),
			Discount:     decimal.NewFromInt(100000),
			TotalAmount:  decimal.NewFromInt(8700000),
		},
		CurrencyCode:     "LKR",
		PaymentMode:      domain.PaymentModeCash,
		TotalPaid:        decimal.NewFromInt(1000000),
		BalanceRemaining: decimal.NewFromInt(7700000),
	}
}

func (suite *InvoiceServiceTestSuite) expectLoads() {
	ctx := context.Background()
	suite.mockTxnRepo.On("FindTransactionByID", ctx, suite.txn.TransactionID).Return(suite.txn, nil).Once()
	suite.mockTxnRepo.On("FindPaymentsByTransactionID", ctx, suite.txn.TransactionID).Return([]domain.PaymentRecord{}, nil).Once()
	suite.mockCustomerRepo.On("FindCustomerByID", ctx, suite.customer.CustomerID).Return(suite.customer, nil).Once()
	suite.mockInventoryRepo.On("FindItemByID", ctx, suite.item.InventoryID).Return(suite.item, nil).Once()
}

func (suite *InvoiceServiceTestSuite) TestBuildInvoice_CustomerLayout() {
	suite.expectLoads()

	view, err := suite.service.BuildInvoice(context.Background(), suite.txn.TransactionID, dto.LayoutCustomer)

	suite.Require().NoError(err)
	suite.Equal(dto.LayoutCustomer, view.Layout)
	suite.True(strings.HasPrefix(view.InvoiceNo, "INV-"))
	suite.Equal("Kamala Silva", view.CustomerName)
	suite.Equal("Honda", view.VehicleMake)
	suite.True(view.TotalAmount.Equal(decimal.NewFromInt(8700000)))
	suite.True(view.BalanceRemaining.Equal(decimal.NewFromInt(7700000)))
	suite.Equal("Cash", view.PaymentMethodLabel)
	// Customer layout carries no financing section.
	suite.Empty(view.LeasingCompany)
	suite.True(view.LeasingAmount.IsZero())
}

func (suite *InvoiceServiceTestSuite) TestBuildInvoice_BankLayoutRequiresLeasing() {
	suite.expectLoads()

	_, err := suite.service.BuildInvoice(context.Background(), suite.txn.TransactionID, dto.LayoutBank)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *InvoiceServiceTestSuite) TestBuildInvoice_BankLayout() {
	suite.txn.Type = domain.TypeLeasing
	suite.txn.PaymentMode = domain.PaymentModeLeasing
	suite.txn.LeasingDetails = &domain.LeasingDetails{
		LeasingCompany:     "Peoples Leasing",
		LeaseReferenceNo:   "PL-2024-00917",
		DownPayment:        decimal.NewFromInt(1740000),
		LeasingAmount:      decimal.NewFromInt(6960000),
		MonthlyInstallment: decimal.NewFromInt(185000),
		TenureMonths:       48,
		InterestRate:       decimal.NewFromFloat(12.5),
	}
	suite.expectLoads()

	view, err := suite.service.BuildInvoice(context.Background(), suite.txn.TransactionID, dto.LayoutBank)

	suite.Require().NoError(err)
	suite.Equal("Peoples Leasing", view.LeasingCompany)
	suite.Equal("PL-2024-00917", view.LeaseReferenceNo)
	suite.Equal(48, view.TenureMonths)
	suite.True(view.MonthlyInstallment.Equal(decimal.NewFromInt(185000)))
	suite.Equal("Leasing", view.PaymentMethodLabel)
}

func (suite *InvoiceServiceTestSuite) TestBuildInvoice_LabelFallsBackToLastPayment() {
	suite.txn.PaymentMode = ""
	ctx := context.Background()
	payments := []domain.PaymentRecord{
		{PaymentID: uuid.NewString(), PaymentMethod: domain.PaymentModeCash},
		{PaymentID: uuid.NewString(), PaymentMethod: domain.PaymentModeBank},
	}
	suite.mockTxnRepo.On("FindTransactionByID", ctx, suite.txn.TransactionID).Return(suite.txn, nil).Once()
	suite.mockTxnRepo.On("FindPaymentsByTransactionID", ctx, suite.txn.TransactionID).Return(payments, nil).Once()
	suite.mockCustomerRepo.On("FindCustomerByID", ctx, suite.customer.CustomerID).Return(suite.customer, nil).Once()
	suite.mockInventoryRepo.On("FindItemByID", ctx, suite.item.InventoryID).Return(suite.item, nil).Once()

	view, err := suite.service.BuildInvoice(ctx, suite.txn.TransactionID, dto.LayoutCustomer)

	suite.Require().NoError(err)
	suite.Equal("Bank Transfer", view.PaymentMethodLabel)
}

func (suite *InvoiceServiceTestSuite) TestBuildInvoice_UnknownLayout() {
	_, err := suite.service.BuildInvoice(context.Background(), uuid.NewString(), dto.InvoiceLayout("pdf"))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "FindTransactionByID", nil, nil)
}

func TestInvoiceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
