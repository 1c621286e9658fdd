package services

import (
	"context"

	"github.com/autohaus/dms_backend/internal/core/domain"
	"github.com/autohaus/dms_backend/internal/dto"
)

// CustomerReaderSvc defines read operations for customer data
type CustomerReaderSvc interface {
	// GetCustomerByID retrieves a customer by ID.
	GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)

	// GetCustomerByContactNumber retrieves a customer by verbatim contact number.
	GetCustomerByContactNumber(ctx context.Context, contactNumber string) (*domain.Customer, error)

	// ListCustomers retrieves a paginated list of customers.
	ListCustomers(ctx context.Context, limit, offset int) ([]domain.Customer, error)
}

// CustomerWriterSvc defines write operations for customer data
type CustomerWriterSvc interface {
	// CreateCustomer creates a new customer.
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, creatorUserID string) (*domain.Customer, error)

	// UpdateCustomer updates an existing customer.
	UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest, requestingUserID string) (*domain.Customer, error)

	// DeleteCustomer removes a customer.
	DeleteCustomer(ctx context.Context, customerID string) error
}

// CustomerSvcFacade combines all customer-related service interfaces
type CustomerSvcFacade interface {
	CustomerReaderSvc
	CustomerWriterSvc
}
