package pgsql_test

import (
	"os"
	"testing"

	"github.com/autohaus/dms_backend/internal/core/domain"
	"github.com/stretchr/testify/suite"
)

// SchemaTestSuite keeps the migration CHECK constraints aligned with the
// domain enums. A value missing from a constraint surfaces as an insert
// failure at runtime, so the drift is caught here instead.
type SchemaTestSuite struct {
	suite.Suite
}

func (suite *SchemaTestSuite) readMigration(name string) string {
	content, err := os.ReadFile("../../../../migrations/" + name)
	suite.Require().NoError(err)
	return string(content)
}

func (suite *SchemaTestSuite) TestTransactionTypeConstraintCoversDomainTypes() {
	schema := suite.readMigration("000004_create_transactions_tables.up.sql")

	for _, t := range []domain.TransactionType{
		domain.TypeReservation, domain.TypeSale, domain.TypeLeasing, domain.TypeRefund,
	} {
		suite.Contains(schema, "'"+string(t)+"'", "transaction type %s missing from chk_transactions_type", t)
	}
}

func (suite *SchemaTestSuite) TestTransactionStatusConstraintCoversDomainStatuses() {
	schema := suite.readMigration("000004_create_transactions_tables.up.sql")

	for _, s := range []domain.TransactionStatus{
		domain.StatusPending, domain.StatusPartialPaid, domain.StatusFullyPaid,
		domain.StatusCompleted, domain.StatusOverdue, domain.StatusCancelled,
	} {
		suite.Contains(schema, "'"+string(s)+"'", "transaction status %s missing from chk_transactions_status", s)
	}
}

func (suite *SchemaTestSuite) TestInventoryStatusConstraintCoversDomainStatuses() {
	schema := suite.readMigration("000003_create_inventory_table.up.sql")

	for _, s := range []domain.InventoryStatus{
		domain.InventoryAvailable, domain.InventoryReserved, domain.InventorySold, domain.InventoryMaintenance,
	} {
		suite.Contains(schema, "'"+string(s)+"'", "inventory status %s missing from chk_inventory_status", s)
	}
}

func (suite *SchemaTestSuite) TestVehicleOrderStatusConstraintCoversDomainStatuses() {
	schema := suite.readMigration("000005_create_vehicle_orders_table.up.sql")

	for _, s := range []domain.VehicleOrderStatus{
		domain.OrderOrdered, domain.OrderShipped, domain.OrderClearing, domain.OrderCompleted,
	} {
		suite.Contains(schema, "'"+string(s)+"'", "vehicle order status %s missing from chk_vehicle_orders_status", s)
	}
}

func TestSchemaTestSuite(t *testing.T) {
	suite.Run(t, new(SchemaTestSuite))
}
