package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// VehicleOrderStatus tracks an import order through its shipping lifecycle.
// Transitions are forward-only, one step at a time:
// ORDERED -> SHIPPED -> CLEARING -> COMPLETED.
type VehicleOrderStatus string

const (
	OrderOrdered   VehicleOrderStatus = "ORDERED"
	OrderShipped   VehicleOrderStatus = "SHIPPED"
	OrderClearing  VehicleOrderStatus = "CLEARING"
	OrderCompleted VehicleOrderStatus = "COMPLETED"
)

// orderRank gives each status its position in the lifecycle.
var orderRank = map[VehicleOrderStatus]int{
	OrderOrdered:   0,
	OrderShipped:   1,
	OrderClearing:  2,
	OrderCompleted: 3,
}

// CanTransitionTo reports whether moving from s to next is a legal
// single forward step.
func (s VehicleOrderStatus) CanTransitionTo(next VehicleOrderStatus) bool {
	from, ok := orderRank[s]
	if !ok {
		return false
	}
	to, ok := orderRank[next]
	if !ok {
		return false
	}
	return to == from+1
}

// VehicleOrder represents a vehicle import order, with the letter-of-credit
// reference used for bank invoices. Distinct lifecycle from Transaction.
type VehicleOrder struct {
	OrderID            string             `json:"orderID"` // Primary Key (UUID)
	Supplier           string             `json:"supplier"`
	VehicleDescription string             `json:"vehicleDescription"`
	LCNumber           string             `json:"lcNumber"` // Letter of credit reference, opaque
	LCAmount           decimal.Decimal    `json:"lcAmount"`
	Bank               string             `json:"bank"`
	CurrencyCode       string             `json:"currencyCode"`
	ExpectedArrival    *time.Time         `json:"expectedArrival,omitempty"`
	Status             VehicleOrderStatus `json:"status"`
	AuditFields
}
