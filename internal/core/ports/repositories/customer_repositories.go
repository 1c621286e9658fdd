package repositories

import (
	"context"

	"github.com/autohaus/dms_backend/internal/core/domain"
)

// CustomerReader defines read operations for customer data.
type CustomerReader interface {
	// FindCustomerByID retrieves a specific customer by ID.
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)

	// FindCustomerByContactNumber retrieves a customer whose stored contact
	// number matches the given string verbatim. Returns ErrNotFound when no
	// such customer exists.
	FindCustomerByContactNumber(ctx context.Context, contactNumber string) (*domain.Customer, error)

	// FindCustomers retrieves a paginated list of customers.
	FindCustomers(ctx context.Context, limit int, offset int) ([]domain.Customer, error)
}

// CustomerWriter defines write operations for customer data.
type CustomerWriter interface {
	SaveCustomer(ctx context.Context, customer domain.Customer) error
	UpdateCustomer(ctx context.Context, customer domain.Customer) error
	DeleteCustomer(ctx context.Context, customerID string) error
}

// CustomerRepositoryFacade combines all customer repository interfaces.
type CustomerRepositoryFacade interface {
	CustomerReader
	CustomerWriter
}
