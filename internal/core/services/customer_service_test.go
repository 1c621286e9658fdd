package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/autohaus/dms_backend/internal/apperrors"
	"github.com/autohaus/dms_backend/internal/core/domain"
	portssvc "github.com/autohaus/dms_backend/internal/core/ports/services"
	"github.com/autohaus/dms_backend/internal/core/services"
	"github.com/autohaus/dms_backend/internal/dto"
)

type CustomerServiceTestSuite struct {
	suite.Suite
	mockCustomerRepo *MockCustomerRepository
	service          portssvc.CustomerSvcFacade
	userID           string
}

func (suite *CustomerServiceTestSuite) SetupTest() {
	suite.mockCustomerRepo = new(MockCustomerRepository)
	suite.service = services.NewCustomerService(suite.mockCustomerRepo, "LK")
	suite.userID = uuid.NewString()
}

func (suite *CustomerServiceTestSuite) TestCreateCustomer_Success() {
	ctx := context.Background()
	req := dto.CreateCustomerRequest{
		Name:          "Nimal Perera",
		ContactNumber: "+94771234567",
		Email:         "nimal@example.com",
	}

	suite.mockCustomerRepo.On("FindCustomerByContactNumber", ctx, req.ContactNumber).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCustomerRepo.On("SaveCustomer", ctx, mock.AnythingOfType("domain.Customer")).Return(nil).Once()

	customer, err := suite.service.CreateCustomer(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.NotEmpty(customer.CustomerID)
	suite.Equal(req.ContactNumber, customer.ContactNumber)
	suite.Equal(suite.userID, customer.CreatedBy)
	suite.mockCustomerRepo.AssertExpectations(suite.T())
}

func (suite *CustomerServiceTestSuite) TestCreateCustomer_InvalidPhone() {
	ctx := context.Background()
	req := dto.CreateCustomerRequest{Name: "Nimal Perera", ContactNumber: "garbage"}

	_, err := suite.service.CreateCustomer(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockCustomerRepo.AssertNotCalled(suite.T(), "SaveCustomer", mock.Anything, mock.Anything)
}

func (suite *CustomerServiceTestSuite) TestCreateCustomer_DuplicateContact() {
	ctx := context.Background()
	req := dto.CreateCustomerRequest{Name: "Nimal Perera", ContactNumber: "+94771234567"}
	existing := &domain.Customer{CustomerID: uuid.NewString(), ContactNumber: req.ContactNumber}

	suite.mockCustomerRepo.On("FindCustomerByContactNumber", ctx, req.ContactNumber).Return(existing, nil).Once()

	_, err := suite.service.CreateCustomer(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockCustomerRepo.AssertNotCalled(suite.T(), "SaveCustomer", mock.Anything, mock.Anything)
}

func (suite *CustomerServiceTestSuite) TestUpdateCustomer_PartialFields() {
	ctx := context.Background()
	existing := &domain.Customer{
		CustomerID:    uuid.NewString(),
		Name:          "Nimal Perera",
		ContactNumber: "+94771234567",
		Address:       "Kandy",
	}
	newAddress := "45 Peradeniya Road, Kandy"

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, existing.CustomerID).Return(existing, nil).Once()
	suite.mockCustomerRepo.On("UpdateCustomer", ctx, mock.AnythingOfType("domain.Customer")).Return(nil).Once()

	updated, err := suite.service.UpdateCustomer(ctx, existing.CustomerID, dto.UpdateCustomerRequest{Address: &newAddress}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(newAddress, updated.Address)
	suite.Equal("Nimal Perera", updated.Name)
	suite.Equal("+94771234567", updated.ContactNumber)
}

func (suite *CustomerServiceTestSuite) TestGetCustomerByContactNumber_NotFound() {
	ctx := context.Background()

	suite.mockCustomerRepo.On("FindCustomerByContactNumber", ctx, "+94770000000").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetCustomerByContactNumber(ctx, "+94770000000")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestCustomerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerServiceTestSuite))
}
