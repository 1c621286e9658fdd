package pgsql

import (
	portsrepo "github.com/autohaus/dms_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	customerRepo := newPgxCustomerRepository(dbPool)
	inventoryRepo := newPgxInventoryRepository(dbPool)
	transactionRepo := newPgxTransactionRepository(dbPool)
	vehicleOrderRepo := newPgxVehicleOrderRepository(dbPool)
	expenseRepo := newPgxExpenseRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)
	reportingRepo := newReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		CustomerRepo:     customerRepo,
		InventoryRepo:    inventoryRepo,
		TransactionRepo:  transactionRepo,
		VehicleOrderRepo: vehicleOrderRepo,
		ExpenseRepo:      expenseRepo,
		UserRepo:         userRepo,
		ReportingRepo:    reportingRepo,
	}
}
