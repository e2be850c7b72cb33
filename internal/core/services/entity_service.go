package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fynbos-apps/bookkeeper/internal/apperrors"
	"github.com/fynbos-apps/bookkeeper/internal/core/domain"
	portsrepo "github.com/fynbos-apps/bookkeeper/internal/core/ports/repositories"
	portssvc "github.com/fynbos-apps/bookkeeper/internal/core/ports/services"
	"github.com/fynbos-apps/bookkeeper/internal/dto"
	"github.com/fynbos-apps/bookkeeper/internal/utils"
)

// entityService manages organizational books.
type entityService struct {
	BaseService
	entityRepo portsrepo.EntityRepositoryFacade
}

// NewEntityService creates the entity service.
func NewEntityService(entityRepo portsrepo.EntityRepositoryFacade) portssvc.EntitySvcFacade {
	return &entityService{entityRepo: entityRepo}
}

var _ portssvc.EntitySvcFacade = (*entityService)(nil)

func (s *entityService) CreateEntity(ctx context.Context, ownerUserID string, req dto.CreateEntityRequest) (*domain.Entity, error) {
	if !domain.ValidEntityKind(req.Kind) {
		return nil, fmt.Errorf("%w: unknown entity kind %q", apperrors.ErrValidation, req.Kind)
	}
	if req.Name == "" {
		return nil, fmt.Errorf("%w: entity name is required", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	entity := domain.Entity{
		EntityID:     utils.NewRecordID(),
		OwnerUserID:  ownerUserID,
		Name:         req.Name,
		Kind:         req.Kind,
		CurrencyCode: req.CurrencyCode,
		Jurisdiction: req.Jurisdiction,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerUserID,
		},
	}

	if err := s.entityRepo.SaveEntity(ctx, entity); err != nil {
		s.LogError(ctx, err, "Failed to save entity", slog.String("owner", ownerUserID))
		return nil, err
	}
	s.LogInfo(ctx, "Entity created", slog.String("entity_id", entity.EntityID), slog.String("kind", string(entity.Kind)))
	return &entity, nil
}

func (s *entityService) GetEntity(ctx context.Context, ownerUserID, entityID string) (*domain.Entity, error) {
	return s.resolveOwnedEntity(ctx, s.entityRepo, ownerUserID, entityID)
}

func (s *entityService) ListEntities(ctx context.Context, ownerUserID string) ([]domain.Entity, error) {
	return s.entityRepo.ListEntitiesByOwner(ctx, ownerUserID)
}

func (s *entityService) RenameEntity(ctx context.Context, ownerUserID, entityID string, req dto.RenameEntityRequest) (*domain.Entity, error) {
	entity, err := s.resolveOwnedEntity(ctx, s.entityRepo, ownerUserID, entityID)
	if err != nil {
		return nil, err
	}
	if req.Name == "" {
		return nil, fmt.Errorf("%w: entity name is required", apperrors.ErrValidation)
	}

	if err := s.entityRepo.RenameEntity(ctx, entityID, req.Name, ownerUserID); err != nil {
		s.LogError(ctx, err, "Failed to rename entity", slog.String("entity_id", entityID))
		return nil, err
	}
	entity.Name = req.Name
	entity.LastUpdatedAt = time.Now().UTC()
	entity.LastUpdatedBy = ownerUserID
	return entity, nil
}

func (s *entityService) DeleteEntity(ctx context.Context, ownerUserID, entityID string) error {
	if _, err := s.resolveOwnedEntity(ctx, s.entityRepo, ownerUserID, entityID); err != nil {
		return err
	}

	if err := s.entityRepo.DeleteEntity(ctx, entityID); err != nil {
		s.LogError(ctx, err, "Failed to delete entity", slog.String("entity_id", entityID))
		return err
	}
	s.LogWarn(ctx, "Entity deleted with full event history", slog.String("entity_id", entityID), slog.String("owner", ownerUserID))
	return nil
}
