package services_test

import (
	"context"
	"fmt"
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

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindPaymentsByTransactionID(ctx context.Context, transactionID string) ([]domain.PaymentRecord, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentRecord), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, status, txnType string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, status, txnType, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.Transaction), returnedNextToken, args.Error(2)
}

func (m *MockTransactionRepository) CreateReservation(ctx context.Context, txn domain.Transaction, newCustomer *domain.Customer) error {
	args := m.Called(ctx, txn, newCustomer)
	return args.Error(0)
}

func (m *MockTransactionRepository) AppendPayment(ctx context.Context, txn domain.Transaction, payment domain.PaymentRecord, inventoryStatus *domain.InventoryStatus) error {
	args := m.Called(ctx, txn, payment, inventoryStatus)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransactionStatus(ctx context.Context, transactionID string, status domain.TransactionStatus, releaseInventoryTo *domain.InventoryStatus, updatedBy string, at time.Time) error {
	args := m.Called(ctx, transactionID, status, releaseInventoryTo, updatedBy, at)
	return args.Error(0)
}

func (m *MockTransactionRepository) MarkOverdue(ctx context.Context, asOf time.Time, updatedBy string) (int64, error) {
	args := m.Called(ctx, asOf, updatedBy)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock CustomerRepository ---
type MockCustomerRepository struct {
	mock.Mock
}

var _ portsrepo.CustomerRepositoryFacade = (*MockCustomerRepository)(nil)

func (m *MockCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindCustomerByContactNumber(ctx context.Context, contactNumber string) (*domain.Customer, error) {
	args := m.Called(ctx, contactNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindCustomers(ctx context.Context, limit int, offset int) ([]domain.Customer, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) DeleteCustomer(ctx context.Context, customerID string) error {
	args := m.Called(ctx, customerID)
	return args.Error(0)
}

// --- Mock InventoryRepository ---
type MockInventoryRepository struct {
	mock.Mock
}

var _ portsrepo.InventoryRepositoryFacade = (*MockInventoryRepository)(nil)

func (m *MockInventoryRepository) FindItemByID(ctx context.Context, inventoryID string) (*domain.InventoryItem, error) {
	args := m.Called(ctx, inventoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) FindItemByVIN(ctx context.Context, vin string) (*domain.InventoryItem, error) {
	args := m.Called(ctx, vin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) FindItems(ctx context.Context, status *domain.InventoryStatus, limit int, offset int) ([]domain.InventoryItem, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) SaveItem(ctx context.Context, item domain.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockInventoryRepository) UpdateItem(ctx context.Context, item domain.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockInventoryRepository) UpdateItemStatus(ctx context.Context, inventoryID string, status domain.InventoryStatus, updatedBy string, at time.Time) error {
	args := m.Called(ctx, inventoryID, status, updatedBy, at)
	return args.Error(0)
}

// --- Test Suite Setup ---
type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo       *MockTransactionRepository
	mockCustomerRepo  *MockCustomerRepository
	mockInventoryRepo *MockInventoryRepository
	service           portssvc.TransactionSvcFacade
	availableItem     domain.InventoryItem
	userID            string
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockCustomerRepo = new(MockCustomerRepository)
	suite.mockInventoryRepo = new(MockInventoryRepository)
	suite.service = services.NewTransactionService(suite.mockTxnRepo, suite.mockCustomerRepo, suite.mockInventoryRepo, "LKR", "LK")

	suite.userID = uuid.NewString()
	suite.availableItem = domain.InventoryItem{
		InventoryID:  uuid.NewString(),
		Make:         "Toyota",
		Model:        "Aqua",
		Year:         2019,
		VIN:          "NHP10-6745123",
		Price:        decimal.NewFromInt(32000),
		CurrencyCode: "LKR",
		Status:       domain.InventoryAvailable,
	}
}

func (suite *TransactionServiceTestSuite) reservationRequest() dto.CreateReservationRequest {
	return dto.CreateReservationRequest{
		InventoryID: suite.availableItem.InventoryID,
		Customer: dto.ReservationCustomer{
			Name:          "Nimal Perera",
			ContactNumber: "+94771234567",
		},
		Pricing: dto.PricingRequest{
			VehiclePrice: decimal.NewFromInt(32000),
			Taxes:        decimal.NewFromInt(1500),
			Fees:         decimal.NewFromInt(800),
			Discount:     decimal.NewFromInt(800),
		},
		PaymentMode: domain.PaymentModeCash,
	}
}

// --- CreateReservation ---

func (suite *TransactionServiceTestSuite) TestCreateReservation_Success() {
	ctx := context.Background()
	req := suite.reservationRequest()
	existingCustomer := &domain.Customer{CustomerID: uuid.NewString(), ContactNumber: req.Customer.ContactNumber}

	suite.mockInventoryRepo.On("FindItemByID", ctx, suite.availableItem.InventoryID).Return(&suite.availableItem, nil).Once()
	suite.mockCustomerRepo.On("FindCustomerByContactNumber", ctx, req.Customer.ContactNumber).Return(existingCustomer, nil).Once()
	suite.mockTxnRepo.On("CreateReservation", ctx, mock.AnythingOfType("domain.Transaction"), (*domain.Customer)(nil)).Return(nil).Once()

	txn, err := suite.service.CreateReservation(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.Equal(domain.TypeReservation, txn.Type)
	suite.Equal(domain.StatusPending, txn.Status)
	suite.Equal(existingCustomer.CustomerID, txn.CustomerID)
	// 32000 + 1500 + 800 - 800 = 33500
	suite.True(txn.Pricing.TotalAmount.Equal(decimal.NewFromInt(33500)), "total was %s", txn.Pricing.TotalAmount)
	suite.True(txn.BalanceRemaining.Equal(decimal.NewFromInt(33500)))
	suite.True(txn.TotalPaid.IsZero())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateReservation_NegativeTotalRejected() {
	ctx := context.Background()
	req := suite.reservationRequest()
	req.Pricing.Discount = decimal.NewFromInt(50000) // exceeds price + taxes + fees

	_, err := suite.service.CreateReservation(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "CreateReservation", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateReservation_ItemNotAvailable() {
	ctx := context.Background()
	req := suite.reservationRequest()
	reservedItem := suite.availableItem
	reservedItem.Status = domain.InventoryReserved

	suite.mockInventoryRepo.On("FindItemByID", ctx, suite.availableItem.InventoryID).Return(&reservedItem, nil).Once()

	_, err := suite.service.CreateReservation(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "CreateReservation", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateReservation_NewCustomerCreated() {
	ctx := context.Background()
	req := suite.reservationRequest()

	suite.mockInventoryRepo.On("FindItemByID", ctx, suite.availableItem.InventoryID).Return(&suite.availableItem, nil).Once()
	suite.mockCustomerRepo.On("FindCustomerByContactNumber", ctx, req.Customer.ContactNumber).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockTxnRepo.On("CreateReservation", ctx, mock.AnythingOfType("domain.Transaction"), mock.AnythingOfType("*domain.Customer")).Return(nil).Once()

	txn, err := suite.service.CreateReservation(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.NotEmpty(txn.CustomerID)
	newCustomer := suite.mockTxnRepo.Calls[0].Arguments.Get(2).(*domain.Customer)
	suite.Require().NotNil(newCustomer)
	suite.Equal(req.Customer.ContactNumber, newCustomer.ContactNumber)
	suite.Equal(txn.CustomerID, newCustomer.CustomerID)
}

// Contact lookup is verbatim: the same phone number written in a different
// format does not match an existing record and yields a second customer.
func (suite *TransactionServiceTestSuite) TestCreateReservation_ContactLookupIsVerbatim() {
	ctx := context.Background()
	req := suite.reservationRequest()
	req.Customer.ContactNumber = "0771234567" // same number as +94771234567, different format

	suite.mockInventoryRepo.On("FindItemByID", ctx, suite.availableItem.InventoryID).Return(&suite.availableItem, nil).Once()
	suite.mockCustomerRepo.On("FindCustomerByContactNumber", ctx, "0771234567").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockTxnRepo.On("CreateReservation", ctx, mock.AnythingOfType("domain.Transaction"), mock.AnythingOfType("*domain.Customer")).Return(nil).Once()

	_, err := suite.service.CreateReservation(ctx, req, suite.userID)

	suite.Require().NoError(err)
	newCustomer := suite.mockTxnRepo.Calls[0].Arguments.Get(2).(*domain.Customer)
	suite.Require().NotNil(newCustomer)
	suite.Equal("0771234567", newCustomer.ContactNumber)
}

func (suite *TransactionServiceTestSuite) TestCreateReservation_InvalidPhoneRejected() {
	ctx := context.Background()
	req := suite.reservationRequest()
	req.Customer.ContactNumber = "not-a-phone"

	suite.mockInventoryRepo.On("FindItemByID", ctx, suite.availableItem.InventoryID).Return(&suite.availableItem, nil).Once()
	suite.mockCustomerRepo.On("FindCustomerByContactNumber", ctx, "not-a-phone").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateReservation(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestCreateReservation_LeasingDefaults() {
	ctx := context.Background()
	req := suite.reservationRequest()
	req.PaymentMode = domain.PaymentModeLeasing
	req.Leasing = &dto.LeasingRequest{
		LeasingCompany: "Peoples Leasing",
		TenureMonths:   48,
		InterestRate:   decimal.NewFromFloat(12.5),
	}
	existingCustomer := &domain.Customer{CustomerID: uuid.NewString(), ContactNumber: req.Customer.ContactNumber}

	suite.mockInventoryRepo.On("FindItemByID", ctx, suite.availableItem.InventoryID).Return(&suite.availableItem, nil).Once()
	suite.mockCustomerRepo.On("FindCustomerByContactNumber", ctx, req.Customer.ContactNumber).Return(existingCustomer, nil).Once()
	suite.mockTxnRepo.On("CreateReservation", ctx, mock.AnythingOfType("domain.Transaction"), (*domain.Customer)(nil)).Return(nil).Once()

	txn, err := suite.service.CreateReservation(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.TypeLeasing, txn.Type)
	suite.Require().NotNil(txn.LeasingDetails)
	// Down payment defaults to 20% of 33500 = 6700
	suite.True(txn.LeasingDetails.DownPayment.Equal(decimal.NewFromInt(6700)), "down payment was %s", txn.LeasingDetails.DownPayment)
	suite.True(txn.LeasingDetails.LeasingAmount.Equal(decimal.NewFromInt(26800)))
	suite.Equal(48, txn.LeasingDetails.TenureMonths)
	suite.Equal(txn.LeasingDetails.StartDate.AddDate(0, 48, 0), txn.LeasingDetails.EndDate)
	suite.True(txn.LeasingDetails.MonthlyInstallment.IsPositive())
}

func (suite *TransactionServiceTestSuite) TestCreateReservation_LeasingTermsRequired() {
	ctx := context.Background()
	req := suite.reservationRequest()
	req.PaymentMode = domain.PaymentModeLeasing
	req.Leasing = nil
	existingCustomer := &domain.Customer{CustomerID: uuid.NewString(), ContactNumber: req.Customer.ContactNumber}

	suite.mockInventoryRepo.On("FindItemByID", ctx, suite.availableItem.InventoryID).Return(&suite.availableItem, nil).Once()
	suite.mockCustomerRepo.On("FindCustomerByContactNumber", ctx, req.Customer.ContactNumber).Return(existingCustomer, nil).Once()

	_, err := suite.service.CreateReservation(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- AddPayment ---

func (suite *TransactionServiceTestSuite) pendingTransaction(total int64) *domain.Transaction {
	totalDec := decimal.NewFromInt(total)
	return &domain.Transaction{
		TransactionID:    uuid.NewString(),
		CustomerID:       uuid.NewString(),
		InventoryID:      suite.availableItem.InventoryID,
		Type:             domain.TypeReservation,
		Status:           domain.StatusPending,
		Pricing:          domain.Pricing{VehiclePrice: totalDec, TotalAmount: totalDec},
		CurrencyCode:     "LKR",
		PaymentMode:      domain.PaymentModeCash,
		TotalPaid:        decimal.Zero,
		BalanceRemaining: totalDec,
	}
}

func (suite *TransactionServiceTestSuite) TestAddPayment_PartialMovesToPartialPaid() {
	ctx := context.Background()
	txn := suite.pendingTransaction(33500)
	req := dto.AddPaymentRequest{Amount: decimal.NewFromInt(10000), PaymentMethod: domain.PaymentModeCash}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txn.TransactionID).Return(txn, nil).Once()
	suite.mockTxnRepo.On("AppendPayment", ctx, mock.AnythingOfType("domain.Transaction"), mock.AnythingOfType("domain.PaymentRecord"), (*domain.InventoryStatus)(nil)).Return(nil).Once()

	updated, err := suite.service.AddPayment(ctx, txn.TransactionID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusPartialPaid, updated.Status)
	suite.Equal(domain.TypeReservation, updated.Type)
	suite.True(updated.TotalPaid.Equal(decimal.NewFromInt(10000)))
	suite.True(updated.BalanceRemaining.Equal(decimal.NewFromInt(23500)))
	suite.Len(updated.Payments, 1)
}

func (suite *TransactionServiceTestSuite) TestAddPayment_FullPaymentPromotesToSale() {
	ctx := context.Background()
	txn := suite.pendingTransaction(33500)
	req := dto.AddPaymentRequest{Amount: decimal.NewFromInt(33500), PaymentMethod: domain.PaymentModeBank}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txn.TransactionID).Return(txn, nil).Once()
	suite.mockTxnRepo.On("AppendPayment", ctx, mock.AnythingOfType("domain.Transaction"), mock.AnythingOfType("domain.PaymentRecord"), mock.AnythingOfType("*domain.InventoryStatus")).Return(nil).Once()

	updated, err := suite.service.AddPayment(ctx, txn.TransactionID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusCompleted, updated.Status)
	suite.Equal(domain.TypeSale, updated.Type)
	suite.True(updated.BalanceRemaining.IsZero())

	// Inventory must be flipped to SOLD in the same database transaction.
	inventoryStatus := suite.mockTxnRepo.Calls[1].Arguments.Get(3).(*domain.InventoryStatus)
	suite.Require().NotNil(inventoryStatus)
	suite.Equal(domain.InventorySold, *inventoryStatus)
}

func (suite *TransactionServiceTestSuite) TestAddPayment_OverpaymentClampsBalance() {
	ctx := context.Background()
	txn := suite.pendingTransaction(33500)
	req := dto.AddPaymentRequest{Amount: decimal.NewFromInt(40000), PaymentMethod: domain.PaymentModeCash}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txn.TransactionID).Return(txn, nil).Once()
	suite.mockTxnRepo.On("AppendPayment", ctx, mock.AnythingOfType("domain.Transaction"), mock.AnythingOfType("domain.PaymentRecord"), mock.AnythingOfType("*domain.InventoryStatus")).Return(nil).Once()

	updated, err := suite.service.AddPayment(ctx, txn.TransactionID, req, suite.userID)

	suite.Require().NoError(err)
	suite.True(updated.BalanceRemaining.IsZero())
	suite.True(updated.TotalPaid.Equal(decimal.NewFromInt(40000)))
}

func (suite *TransactionServiceTestSuite) TestAddPayment_LeasingSettlesAsFullyPaid() {
	ctx := context.Background()
	txn := suite.pendingTransaction(33500)
	txn.Type = domain.TypeLeasing
	txn.PaymentMode = domain.PaymentModeLeasing
	req := dto.AddPaymentRequest{Amount: decimal.NewFromInt(33500), PaymentMethod: domain.PaymentModeLeasing}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txn.TransactionID).Return(txn, nil).Once()
	suite.mockTxnRepo.On("AppendPayment", ctx, mock.AnythingOfType("domain.Transaction"), mock.AnythingOfType("domain.PaymentRecord"), mock.AnythingOfType("*domain.InventoryStatus")).Return(nil).Once()

	updated, err := suite.service.AddPayment(ctx, txn.TransactionID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusFullyPaid, updated.Status)
	suite.Equal(domain.TypeLeasing, updated.Type)
}

func (suite *TransactionServiceTestSuite) TestAddPayment_NonPositiveAmountRejected() {
	ctx := context.Background()
	req := dto.AddPaymentRequest{Amount: decimal.Zero, PaymentMethod: domain.PaymentModeCash}

	_, err := suite.service.AddPayment(ctx, uuid.NewString(), req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "FindTransactionByID", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestAddPayment_TerminalStatusRejected() {
	ctx := context.Background()
	for _, status := range []domain.TransactionStatus{domain.StatusCompleted, domain.StatusFullyPaid, domain.StatusCancelled} {
		txn := suite.pendingTransaction(33500)
		txn.Status = status
		req := dto.AddPaymentRequest{Amount: decimal.NewFromInt(100), PaymentMethod: domain.PaymentModeCash}

		suite.mockTxnRepo.On("FindTransactionByID", ctx, txn.TransactionID).Return(txn, nil).Once()

		_, err := suite.service.AddPayment(ctx, txn.TransactionID, req, suite.userID)

		suite.Require().Error(err, "status %s should refuse payments", status)
		suite.ErrorIs(err, apperrors.ErrConflict)
	}
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "AppendPayment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// The repository reports a concurrent totals change as a conflict; the
// service must surface it unchanged so the handler returns 409 and the
// client retries with fresh state.
func (suite *TransactionServiceTestSuite) TestAddPayment_ConcurrentUpdateConflict() {
	ctx := context.Background()
	txn := suite.pendingTransaction(33500)
	req := dto.AddPaymentRequest{Amount: decimal.NewFromInt(5000), PaymentMethod: domain.PaymentModeCash}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txn.TransactionID).Return(txn, nil).Once()
	suite.mockTxnRepo.On("AppendPayment", ctx, mock.AnythingOfType("domain.Transaction"), mock.AnythingOfType("domain.PaymentRecord"), (*domain.InventoryStatus)(nil)).
		Return(fmt.Errorf("%w: transaction %s was modified concurrently", apperrors.ErrConflict, txn.TransactionID)).Once()

	_, err := suite.service.AddPayment(ctx, txn.TransactionID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *TransactionServiceTestSuite) TestAddPayment_OverdueStillAcceptsPayment() {
	ctx := context.Background()
	txn := suite.pendingTransaction(33500)
	txn.Status = domain.StatusOverdue
	req := dto.AddPaymentRequest{Amount: decimal.NewFromInt(5000), PaymentMethod: domain.PaymentModeCash}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txn.TransactionID).Return(txn, nil).Once()
	suite.mockTxnRepo.On("AppendPayment", ctx, mock.AnythingOfType("domain.Transaction"), mock.AnythingOfType("domain.PaymentRecord"), (*domain.InventoryStatus)(nil)).Return(nil).Once()

	updated, err := suite.service.AddPayment(ctx, txn.TransactionID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusPartialPaid, updated.Status)
}

// --- CancelTransaction ---

func (suite *TransactionServiceTestSuite) TestCancelTransaction_ReleasesInventory() {
	ctx := context.Background()
	txn := suite.pendingTransaction(33500)

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txn.TransactionID).Return(txn, nil).Once()
	suite.mockTxnRepo.On("UpdateTransactionStatus", ctx, txn.TransactionID, domain.StatusCancelled, mock.AnythingOfType("*domain.InventoryStatus"), suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	updated, err := suite.service.CancelTransaction(ctx, txn.TransactionID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusCancelled, updated.Status)

	release := suite.mockTxnRepo.Calls[1].Arguments.Get(3).(*domain.InventoryStatus)
	suite.Require().NotNil(release)
	suite.Equal(domain.InventoryAvailable, *release)
}

// A settled lease must not be cancellable: the vehicle is sold and paid
// for, so cancelling would release it back to stock.
func (suite *TransactionServiceTestSuite) TestCancelTransaction_FullyPaidRejected() {
	ctx := context.Background()
	txn := suite.pendingTransaction(33500)
	txn.Type = domain.TypeLeasing
	txn.Status = domain.StatusFullyPaid

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txn.TransactionID).Return(txn, nil).Once()

	_, err := suite.service.CancelTransaction(ctx, txn.TransactionID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "UpdateTransactionStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCancelTransaction_AlreadyTerminal() {
	ctx := context.Background()
	txn := suite.pendingTransaction(33500)
	txn.Status = domain.StatusCancelled

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txn.TransactionID).Return(txn, nil).Once()

	_, err := suite.service.CancelTransaction(ctx, txn.TransactionID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "UpdateTransactionStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- MarkOverdue ---

func (suite *TransactionServiceTestSuite) TestMarkOverdue_ReturnsCount() {
	ctx := context.Background()
	asOf := time.Now().UTC()

	suite.mockTxnRepo.On("MarkOverdue", ctx, asOf, suite.userID).Return(int64(3), nil).Once()

	count, err := suite.service.MarkOverdue(ctx, asOf, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(int64(3), count)
}

// --- Listing ---

func (suite *TransactionServiceTestSuite) TestListTransactions_DefaultsAndCapsLimit() {
	ctx := context.Background()

	suite.mockTxnRepo.On("ListTransactions", ctx, "", "", 20, (*string)(nil)).Return([]domain.Transaction{}, nil, nil).Once()
	_, _, err := suite.service.ListTransactions(ctx, dto.ListTransactionsParams{})
	suite.Require().NoError(err)

	suite.mockTxnRepo.On("ListTransactions", ctx, "", "", 100, (*string)(nil)).Return([]domain.Transaction{}, nil, nil).Once()
	_, _, err = suite.service.ListTransactions(ctx, dto.ListTransactionsParams{Limit: 500})
	suite.Require().NoError(err)

	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
