package repositories

import (
	"context"

	"github.com/fynbos-apps/bookkeeper/internal/core/domain"
)

// EntityReader defines read operations for entity data. All reads are scoped by
// owner at the call site; repositories filter on owner_user_id.
type EntityReader interface {
	// FindEntityByID retrieves an entity regardless of owner; callers enforce
	// ownership against OwnerUserID.
	FindEntityByID(ctx context.Context, entityID string) (*domain.Entity, error)

	// ListEntitiesByOwner retrieves every entity owned by a user.
	ListEntitiesByOwner(ctx context.Context, ownerUserID string) ([]domain.Entity, error)
}

// EntityWriter defines write operations for entity data.
type EntityWriter interface {
	// SaveEntity persists a new entity.
	SaveEntity(ctx context.Context, entity domain.Entity) error

	// RenameEntity updates the display name, the only mutable field.
	RenameEntity(ctx context.Context, entityID, name, updatedBy string) error

	// DeleteEntity removes an entity and cascades to its entire event history.
	// Destructive; the boundary requires explicit confirmation before calling this.
	DeleteEntity(ctx context.Context, entityID string) error
}

// EntityRepositoryFacade combines entity reads and writes.
type EntityRepositoryFacade interface {
	EntityReader
	EntityWriter
}
