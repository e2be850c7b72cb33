package services

import (
	"context"

	"github.com/fynbos-apps/bookkeeper/internal/core/domain"
	"github.com/fynbos-apps/bookkeeper/internal/dto"
)

// EntitySvcFacade manages organizational books. Every operation is scoped to the
// calling owner; acting on another user's entity yields ErrForbidden.
type EntitySvcFacade interface {
	CreateEntity(ctx context.Context, ownerUserID string, req dto.CreateEntityRequest) (*domain.Entity, error)
	GetEntity(ctx context.Context, ownerUserID, entityID string) (*domain.Entity, error)
	ListEntities(ctx context.Context, ownerUserID string) ([]domain.Entity, error)
	RenameEntity(ctx context.Context, ownerUserID, entityID string, req dto.RenameEntityRequest) (*domain.Entity, error)

	// DeleteEntity cascades to the entity's full event history. The handler demands
	// explicit confirmation before calling this.
	DeleteEntity(ctx context.Context, ownerUserID, entityID string) error
}
