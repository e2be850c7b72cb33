package services

import (
	portsrepo "github.com/fynbos-apps/bookkeeper/internal/core/ports/repositories"
	portssvc "github.com/fynbos-apps/bookkeeper/internal/core/ports/services"
)

// NewServiceContainer wires every service against the repository container. The
// publisher is optional; pass nil to run without the notification side-channel.
func NewServiceContainer(repos *portsrepo.RepositoryContainer, publisher portssvc.EventPublisher) *portssvc.ServiceContainer {
	ledgerOpts := []LedgerServiceOption{}
	assetOpts := []AssetServiceOption{}
	liabilityOpts := []LiabilityServiceOption{}
	if publisher != nil {
		ledgerOpts = append(ledgerOpts, WithPublisher(publisher))
		assetOpts = append(assetOpts, WithAssetPublisher(publisher))
		liabilityOpts = append(liabilityOpts, WithLiabilityPublisher(publisher))
	}

	return &portssvc.ServiceContainer{
		Entity:    NewEntityService(repos.Entity),
		Ledger:    NewLedgerService(repos.Event, repos.Entity, ledgerOpts...),
		Asset:     NewAssetService(repos.Event, repos.Entity, repos.Asset, assetOpts...),
		Liability: NewLiabilityService(repos.Event, repos.Entity, repos.Liability, liabilityOpts...),
		Snapshot:  NewSnapshotService(repos.Entity, repos.Reporting),
		Reporting: NewReportingService(repos.Entity, repos.Reporting, repos.Asset, repos.Liability),
	}
}
