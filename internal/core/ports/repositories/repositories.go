// Package repositories declares the storage surfaces the ledger core depends on.
// Implementations live under internal/repositories; the core never imports them.
package repositories

// RepositoryContainer bundles every repository facade for wiring in main.
type RepositoryContainer struct {
	Entity    EntityRepositoryFacade
	Event     EventRepositoryFacade
	Asset     AssetRepositoryFacade
	Liability LiabilityRepositoryFacade
	Reporting ReportingRepository
}
