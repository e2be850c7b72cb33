package pgsql

import (
	portsrepo "github.com/fynbos-apps/bookkeeper/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryContainer wires every pgsql repository over one shared pool.
func NewRepositoryContainer(dbPool *pgxpool.Pool) *portsrepo.RepositoryContainer {
	return &portsrepo.RepositoryContainer{
		Entity:    newPgxEntityRepository(dbPool),
		Event:     newPgxEventRepository(dbPool),
		Asset:     newPgxAssetRepository(dbPool),
		Liability: newPgxLiabilityRepository(dbPool),
		Reporting: newPgxReportingRepository(dbPool),
	}
}
