package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// VehicleOrder mirrors the vehicle_orders table.
type VehicleOrder struct {
	OrderID            string
	Supplier           string
	VehicleDescription string
	LCNumber           *string
	LCAmount           decimal.Decimal
	Bank               *string
	CurrencyCode       string
	ExpectedArrival    *time.Time
	Status             string
	AuditFields
}
