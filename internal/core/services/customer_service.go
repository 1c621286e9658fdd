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
	"github.com/autohaus/dms_backend/internal/utils"
)

// customerService provides customer CRUD operations.
type customerService struct {
	customerRepo portsrepo.CustomerRepositoryFacade
	phoneRegion  string
}

// NewCustomerService creates a new customer service.
func NewCustomerService(customerRepo portsrepo.CustomerRepositoryFacade, phoneRegion string) portssvc.CustomerSvcFacade {
	return &customerService{
		customerRepo: customerRepo,
		phoneRegion:  phoneRegion,
	}
}

var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

// CreateCustomer creates a new customer. The contact number must parse as a
// phone number and must not already belong to another customer.
func (s *customerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, creatorUserID string) (*domain.Customer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := utils.ValidatePhoneNumber(req.ContactNumber, s.phoneRegion); err != nil {
		return nil, fmt.Errorf("%w: invalid contact number: %v", apperrors.ErrValidation, err)
	}

	// Contact number is the lookup key for reservations, keep it unique.
	if _, err := s.customerRepo.FindCustomerByContactNumber(ctx, req.ContactNumber); err == nil {
		return nil, fmt.Errorf("%w: a customer with contact number %s already exists", apperrors.ErrDuplicate, req.ContactNumber)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check contact number uniqueness: %w", err)
	}

	now := time.Now().UTC()
	customer := domain.Customer{
		CustomerID:    uuid.NewString(),
		Name:          req.Name,
		ContactNumber: req.ContactNumber,
		Email:         req.Email,
		Address:       req.Address,
		NationalID:    req.NationalID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		logger.Error("Failed to save customer", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Customer created", slog.String("customer_id", customer.CustomerID))
	return &customer, nil
}

// GetCustomerByID retrieves a customer by ID.
func (s *customerService) GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	return s.customerRepo.FindCustomerByID(ctx, customerID)
}

// GetCustomerByContactNumber retrieves a customer by verbatim contact number.
func (s *customerService) GetCustomerByContactNumber(ctx context.Context, contactNumber string) (*domain.Customer, error) {
	return s.customerRepo.FindCustomerByContactNumber(ctx, contactNumber)
}

// ListCustomers retrieves a paginated list of customers.
func (s *customerService) ListCustomers(ctx context.Context, limit, offset int) ([]domain.Customer, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return s.customerRepo.FindCustomers(ctx, limit, offset)
}

// UpdateCustomer applies the non-nil fields of the request to the customer.
// The contact number is immutable, it is the reservation lookup key.
func (s *customerService) UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest, requestingUserID string) (*domain.Customer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Email != nil {
		customer.Email = *req.Email
	}
	if req.Address != nil {
		customer.Address = *req.Address
	}
	if req.NationalID != nil {
		customer.NationalID = *req.NationalID
	}
	customer.LastUpdatedAt = time.Now().UTC()
	customer.LastUpdatedBy = requestingUserID

	if err := s.customerRepo.UpdateCustomer(ctx, *customer); err != nil {
		logger.Error("Failed to update customer", slog.String("customer_id", customerID), slog.String("error", err.Error()))
		return nil, err
	}

	return customer, nil
}

// DeleteCustomer removes a customer.
func (s *customerService) DeleteCustomer(ctx context.Context, customerID string) error {
	return s.customerRepo.DeleteCustomer(ctx, customerID)
}
