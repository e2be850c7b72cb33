// Package services declares the service facades the transport layer depends on.
package services

// ServiceContainer bundles every service facade for route registration.
type ServiceContainer struct {
	Entity    EntitySvcFacade
	Ledger    LedgerSvcFacade
	Asset     AssetSvcFacade
	Liability LiabilitySvcFacade
	Snapshot  SnapshotSvcFacade
	Reporting ReportingSvcFacade
}
