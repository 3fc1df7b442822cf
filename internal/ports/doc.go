// Package ports holds the interfaces the ledger's layers meet at.
//
// Handlers depend on the service ports (CostBearerService, ExpenseTypeService,
// ExpenseEntryService), which internal/app implements. The services in turn
// depend on the reader/writer repository ports, which the SQLite adapter
// implements. HealthChecker and HealthRegistry back the readiness probe.
package ports
