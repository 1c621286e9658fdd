package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/autohaus/dms_backend/internal/apperrors"
	"github.com/autohaus/dms_backend/internal/core/domain"
	portssvc "github.com/autohaus/dms_backend/internal/core/ports/services"
	"github.com/autohaus/dms_backend/internal/dto"
	"github.com/autohaus/dms_backend/internal/handlers"
	"github.com/autohaus/dms_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) CreateReservation(ctx context.Context, req dto.CreateReservationRequest, creatorUserID string) (*domain.Transaction, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) AddPayment(ctx context.Context, transactionID string, req dto.AddPaymentRequest, receivedByUserID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, req, receivedByUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) CancelTransaction(ctx context.Context, transactionID string, requestingUserID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) MarkOverdue(ctx context.Context, asOf time.Time, requestingUserID string) (int64, error) {
	args := m.Called(ctx, asOf, requestingUserID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockTransactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var nextToken *string
	if args.Get(1) != nil {
		nextToken = args.Get(1).(*string)
	}
	return args.Get(0).([]domain.Transaction), nextToken, args.Error(2)
}

// Ensure mock implements the interface
var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Test Suite ---
type TransactionHandlerTestSuite struct {
	suite.Suite
	router                 *gin.Engine
	mockTransactionService *MockTransactionService
	jwtSecret              string
}

func (suite *TransactionHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "dms-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedString, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signedString
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockTransactionService = new(MockTransactionService)

	cfg := &config.Config{
		JWTSecret:    suite.jwtSecret,
		IsProduction: true, // no swagger routes in tests
	}
	container := &portssvc.ServiceContainer{
		Transaction: suite.mockTransactionService,
	}
	handlers.RegisterRoutes(suite.router, cfg, container)
}

func reservationRequest(inventoryID string) dto.CreateReservationRequest {
	return dto.CreateReservationRequest{
		InventoryID: inventoryID,
		Customer: dto.ReservationCustomer{
			Name:          "Nimal Perera",
			ContactNumber: "+94771234567",
		},
		Pricing: dto.PricingRequest{
			VehiclePrice: decimal.NewFromInt(5_000_000),
			Taxes:        decimal.NewFromInt(250_000),
		},
		PaymentMode: domain.PaymentModeCash,
	}
}

// --- Test Cases ---

func (suite *TransactionHandlerTestSuite) TestCreateReservation_Success() {
	creatorUserID := uuid.NewString()
	inventoryID := uuid.NewString()
	reqBody := reservationRequest(inventoryID)

	expected := &domain.Transaction{
		TransactionID: uuid.NewString(),
		CustomerID:    uuid.NewString(),
		InventoryID:   inventoryID,
		Type:          domain.TypeReservation,
		Status:        domain.StatusPending,
		Pricing: domain.Pricing{
			VehiclePrice: decimal.NewFromInt(5_000_000),
			Taxes:        decimal.NewFromInt(250_000),
			TotalAmount:  decimal.NewFromInt(5_250_000),
		},
		CurrencyCode:     "LKR",
		PaymentMode:      domain.PaymentModeCash,
		TotalPaid:        decimal.Zero,
		BalanceRemaining: decimal.NewFromInt(5_250_000),
	}

	suite.mockTransactionService.On("CreateReservation",
		mock.Anything,
		mock.MatchedBy(func(r dto.CreateReservationRequest) bool {
			return r.InventoryID == inventoryID && r.Customer.ContactNumber == "+94771234567"
		}),
		creatorUserID,
	).Return(expected, nil).Once()

	bodyBytes, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/reservations", bytes.NewReader(bodyBytes))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(creatorUserID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.TransactionResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(expected.TransactionID, resp.TransactionID)
	suite.Equal(string(domain.StatusPending), resp.Status)
	suite.True(resp.TotalAmount.Equal(decimal.NewFromInt(5_250_000)))

	suite.mockTransactionService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreateReservation_VehicleNotAvailable() {
	creatorUserID := uuid.NewString()
	inventoryID := uuid.NewString()
	reqBody := reservationRequest(inventoryID)

	suite.mockTransactionService.On("CreateReservation",
		mock.Anything,
		mock.Anything,
		creatorUserID,
	).Return(nil, fmt.Errorf("%w: inventory item %s is not available", apperrors.ErrConflict, inventoryID)).Once()

	bodyBytes, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/reservations", bytes.NewReader(bodyBytes))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(creatorUserID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockTransactionService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreateReservation_InvalidPaymentMode() {
	creatorUserID := uuid.NewString()

	body := []byte(`{"inventoryID":"inv-1","customer":{"name":"A","contactNumber":"1"},"pricing":{"vehiclePrice":"100"},"paymentMode":"BARTER"}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/reservations", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(creatorUserID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTransactionService.AssertNotCalled(suite.T(), "CreateReservation")
}

func (suite *TransactionHandlerTestSuite) TestAddPayment_Settled() {
	userID := uuid.NewString()
	transactionID := uuid.NewString()
	reqBody := dto.AddPaymentRequest{
		Amount:        decimal.NewFromInt(100_000),
		PaymentMethod: domain.PaymentModeCash,
	}

	suite.mockTransactionService.On("AddPayment",
		mock.Anything,
		transactionID,
		mock.Anything,
		userID,
	).Return(nil, fmt.Errorf("%w: transaction is already settled", apperrors.ErrConflict)).Once()

	bodyBytes, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/transactions/"+transactionID+"/payments", bytes.NewReader(bodyBytes))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockTransactionService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestAddPayment_Success() {
	userID := uuid.NewString()
	transactionID := uuid.NewString()
	reqBody := dto.AddPaymentRequest{
		Amount:        decimal.NewFromInt(250_000),
		PaymentMethod: domain.PaymentModeCard,
	}

	expected := &domain.Transaction{
		TransactionID:    transactionID,
		Type:             domain.TypeReservation,
		Status:           domain.StatusPartialPaid,
		TotalPaid:        decimal.NewFromInt(250_000),
		BalanceRemaining: decimal.NewFromInt(5_000_000),
	}

	suite.mockTransactionService.On("AddPayment",
		mock.Anything,
		transactionID,
		mock.MatchedBy(func(r dto.AddPaymentRequest) bool {
			return r.Amount.Equal(decimal.NewFromInt(250_000))
		}),
		userID,
	).Return(expected, nil).Once()

	bodyBytes, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/transactions/"+transactionID+"/payments", bytes.NewReader(bodyBytes))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.TransactionResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(string(domain.StatusPartialPaid), resp.Status)

	suite.mockTransactionService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_PassesCursor() {
	userID := uuid.NewString()
	token := "b3BhcXVlLXRva2Vu"
	next := "bmV4dC10b2tlbg"

	suite.mockTransactionService.On("ListTransactions",
		mock.Anything,
		mock.MatchedBy(func(p dto.ListTransactionsParams) bool {
			return p.Status == string(domain.StatusPending) && p.Limit == 10 && p.NextToken != nil && *p.NextToken == token
		}),
	).Return([]domain.Transaction{}, &next, nil).Once()

	url := fmt.Sprintf("/api/v1/transactions?status=PENDING&limit=10&nextToken=%s", token)
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListTransactionsResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.NotNil(resp.NextToken)
	suite.Equal(next, *resp.NextToken)

	suite.mockTransactionService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestMarkOverdue_NoBody() {
	userID := uuid.NewString()

	suite.mockTransactionService.On("MarkOverdue",
		mock.Anything,
		mock.AnythingOfType("time.Time"),
		userID,
	).Return(int64(3), nil).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/transactions/mark-overdue", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.MarkOverdueResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(3), resp.MarkedOverdue)

	suite.mockTransactionService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCancelTransaction_AlreadyTerminal() {
	userID := uuid.NewString()
	transactionID := uuid.NewString()

	suite.mockTransactionService.On("CancelTransaction",
		mock.Anything,
		transactionID,
		userID,
	).Return(nil, fmt.Errorf("%w: transaction is already terminal", apperrors.ErrConflict)).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/transactions/"+transactionID+"/cancel", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockTransactionService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestTransactionHandler(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
