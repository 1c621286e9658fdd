package services

import (
	portsrepo "github.com/autohaus/dms_backend/internal/core/ports/repositories"
	portssvc "github.com/autohaus/dms_backend/internal/core/ports/services"
	"github.com/autohaus/dms_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Customer = NewCustomerService(repos.CustomerRepo, cfg.DefaultPhoneRegion)
	container.Inventory = NewInventoryService(repos.InventoryRepo, cfg.DefaultCurrency)
	container.Transaction = NewTransactionService(
		repos.TransactionRepo,
		repos.CustomerRepo,
		repos.InventoryRepo,
		cfg.DefaultCurrency,
		cfg.DefaultPhoneRegion,
	)
	container.VehicleOrder = NewVehicleOrderService(repos.VehicleOrderRepo, cfg.DefaultCurrency)
	container.Expense = NewExpenseService(repos.ExpenseRepo, cfg.DefaultCurrency)
	container.User = NewUserService(repos.UserRepo)
	container.Invoice = NewInvoiceService(repos.TransactionRepo, repos.CustomerRepo, repos.InventoryRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo)

	container.Token = NewTokenService(cfg, container.User)
	container.GoogleOAuth = NewGoogleOAuthHandlerService(cfg)

	return container
}
