package domain

// Customer represents a dealership customer.
//
// ContactNumber is the natural lookup key used when creating reservations:
// lookups match the stored string verbatim, so the same phone number written
// in two formats yields two customer records. This is a documented
// limitation, not a bug to silently fix.
type Customer struct {
	CustomerID    string `json:"customerID"` // Primary Key (UUID)
	Name          string `json:"name"`
	ContactNumber string `json:"contactNumber"`
	Email         string `json:"email"`   // Nullable
	Address       string `json:"address"` // Nullable
	NationalID    string `json:"nationalID"`
	AuditFields
}
