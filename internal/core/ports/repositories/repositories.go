package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This keeps service container construction to a single dependency.
type RepositoryProvider struct {
	CustomerRepo     CustomerRepositoryFacade
	InventoryRepo    InventoryRepositoryFacade
	TransactionRepo  TransactionRepositoryFacade
	VehicleOrderRepo VehicleOrderRepositoryFacade
	ExpenseRepo      ExpenseRepositoryFacade
	UserRepo         UserRepositoryFacade
	ReportingRepo    ReportingRepository
}
