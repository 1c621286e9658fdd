package models

// Customer mirrors the customers table.
type Customer struct {
	CustomerID    string
	Name          string
	ContactNumber string
	Email         *string
	Address       *string
	NationalID    *string
	AuditFields
}
