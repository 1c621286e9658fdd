package dto

import (
	"github.com/autohaus/dms_backend/internal/core/domain"
)

// CreateCustomerRequest defines the payload for creating a customer.
type CreateCustomerRequest struct {
	Name          string `json:"name" binding:"required"`
	ContactNumber string `json:"contactNumber" binding:"required"`
	Email         string `json:"email" binding:"omitempty,email"`
	Address       string `json:"address"`
	NationalID    string `json:"nationalID"`
}

// UpdateCustomerRequest defines the payload for updating a customer.
// Nil fields are left unchanged.
type UpdateCustomerRequest struct {
	Name       *string `json:"name,omitempty"`
	Email      *string `json:"email,omitempty" binding:"omitempty,email"`
	Address    *string `json:"address,omitempty"`
	NationalID *string `json:"nationalID,omitempty"`
}

// CustomerResponse defines the data returned for a customer.
type CustomerResponse struct {
	CustomerID    string `json:"customerID"`
	Name          string `json:"name"`
	ContactNumber string `json:"contactNumber"`
	Email         string `json:"email,omitempty"`
	Address       string `json:"address,omitempty"`
	NationalID    string `json:"nationalID,omitempty"`
}

// ListCustomersResponse wraps a page of customers.
type ListCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
}

// ToCustomerResponse converts a domain.Customer to CustomerResponse.
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID:    c.CustomerID,
		Name:          c.Name,
		ContactNumber: c.ContactNumber,
		Email:         c.Email,
		Address:       c.Address,
		NationalID:    c.NationalID,
	}
}

// ToCustomerResponses converts a slice of domain customers.
func ToCustomerResponses(cs []domain.Customer) []CustomerResponse {
	responses := make([]CustomerResponse, len(cs))
	for i, c := range cs {
		responses[i] = ToCustomerResponse(&c)
	}
	return responses
}
