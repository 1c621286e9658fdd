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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CustomerService ---
type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, creatorUserID string) (*domain.Customer, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerService) GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerService) GetCustomerByContactNumber(ctx context.Context, contactNumber string) (*domain.Customer, error) {
	args := m.Called(ctx, contactNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerService) ListCustomers(ctx context.Context, limit, offset int) ([]domain.Customer, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}
func (m *MockCustomerService) UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest, requestingUserID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerService) DeleteCustomer(ctx context.Context, customerID string) error {
	args := m.Called(ctx, customerID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.CustomerSvcFacade = (*MockCustomerService)(nil)

// --- Test Suite ---
type CustomerHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockCustomerService *MockCustomerService
	jwtSecret           string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *CustomerHandlerTestSuite) generateTestToken(userID string) string {
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

func (suite *CustomerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockCustomerService = new(MockCustomerService)

	cfg := &config.Config{
		JWTSecret:    suite.jwtSecret,
		IsProduction: true, // no swagger routes in tests
	}
	container := &portssvc.ServiceContainer{
		Customer: suite.mockCustomerService,
	}
	handlers.RegisterRoutes(suite.router, cfg, container)
}

// --- Test Cases ---

func (suite *CustomerHandlerTestSuite) TestCreateCustomer_Success() {
	creatorUserID := uuid.NewString()
	reqBody := dto.CreateCustomerRequest{
		Name:          "Nimal Perera",
		ContactNumber: "+94771234567",
		Email:         "nimal@example.com",
	}
	expected := &domain.Customer{
		CustomerID:    uuid.NewString(),
		Name:          reqBody.Name,
		ContactNumber: reqBody.ContactNumber,
		Email:         reqBody.Email,
	}

	suite.mockCustomerService.On("CreateCustomer",
		mock.Anything,
		reqBody,
		creatorUserID,
	).Return(expected, nil).Once()

	bodyBytes, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/customers", bytes.NewReader(bodyBytes))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(creatorUserID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.CustomerResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(expected.CustomerID, resp.CustomerID)
	suite.Equal(expected.ContactNumber, resp.ContactNumber)

	suite.mockCustomerService.AssertExpectations(suite.T())
}

func (suite *CustomerHandlerTestSuite) TestCreateCustomer_DuplicateContactNumber() {
	creatorUserID := uuid.NewString()
	reqBody := dto.CreateCustomerRequest{
		Name:          "Nimal Perera",
		ContactNumber: "+94771234567",
	}

	suite.mockCustomerService.On("CreateCustomer",
		mock.Anything,
		reqBody,
		creatorUserID,
	).Return(nil, fmt.Errorf("%w: contact number already registered", apperrors.ErrDuplicate)).Once()

	bodyBytes, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/customers", bytes.NewReader(bodyBytes))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(creatorUserID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockCustomerService.AssertExpectations(suite.T())
}

func (suite *CustomerHandlerTestSuite) TestCreateCustomer_MissingName() {
	creatorUserID := uuid.NewString()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/customers", bytes.NewReader([]byte(`{"contactNumber":"+94771234567"}`)))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(creatorUserID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockCustomerService.AssertNotCalled(suite.T(), "CreateCustomer")
}

func (suite *CustomerHandlerTestSuite) TestGetCustomer_NotFound() {
	userID := uuid.NewString()
	customerID := uuid.NewString()

	suite.mockCustomerService.On("GetCustomerByID",
		mock.Anything,
		customerID,
	).Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/customers/"+customerID, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockCustomerService.AssertExpectations(suite.T())
}

func (suite *CustomerHandlerTestSuite) TestListCustomers_ByContactNumber() {
	userID := uuid.NewString()
	contactNumber := "0112345678"
	expected := &domain.Customer{
		CustomerID:    uuid.NewString(),
		Name:          "Kamala Silva",
		ContactNumber: contactNumber,
	}

	suite.mockCustomerService.On("GetCustomerByContactNumber",
		mock.Anything,
		contactNumber,
	).Return(expected, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/customers?contactNumber="+contactNumber, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListCustomersResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Customers, 1)
	suite.Equal(expected.CustomerID, resp.Customers[0].CustomerID)

	// The verbatim lookup takes precedence over the plain listing.
	suite.mockCustomerService.AssertNotCalled(suite.T(), "ListCustomers")
}

func (suite *CustomerHandlerTestSuite) TestListCustomers_Unauthorized() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/customers", nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockCustomerService.AssertNotCalled(suite.T(), "ListCustomers")
}

func (suite *CustomerHandlerTestSuite) TestDeleteCustomer_HasTransactions() {
	userID := uuid.NewString()
	customerID := uuid.NewString()

	suite.mockCustomerService.On("DeleteCustomer",
		mock.Anything,
		customerID,
	).Return(fmt.Errorf("%w: customer %s has transactions", apperrors.ErrConflict, customerID)).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/customers/"+customerID, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockCustomerService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestCustomerHandler(t *testing.T) {
	suite.Run(t, new(CustomerHandlerTestSuite))
}
