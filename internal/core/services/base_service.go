package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fynbos-apps/bookkeeper/internal/apperrors"
	"github.com/fynbos-apps/bookkeeper/internal/core/domain"
	portsrepo "github.com/fynbos-apps/bookkeeper/internal/core/ports/repositories"
	"github.com/fynbos-apps/bookkeeper/internal/middleware"
)

// BaseService provides common logging and ownership-resolution behaviour for all
// services.
type BaseService struct{}

// GetLogger gets the request-scoped logger from context or the default one.
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting.
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogInfo logs an info message.
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogWarn logs a warning.
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// resolveOwnedEntity loads an entity and enforces the ownership contract: the entity
// must exist and belong to the caller. These checks run before anything touches the
// write path.
func (s *BaseService) resolveOwnedEntity(ctx context.Context, repo portsrepo.EntityReader, ownerUserID, entityID string) (*domain.Entity, error) {
	entity, err := repo.FindEntityByID(ctx, entityID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: entity %s", apperrors.ErrNotFound, entityID)
		}
		return nil, err
	}
	if entity.OwnerUserID != ownerUserID {
		return nil, fmt.Errorf("%w: entity %s is not owned by caller", apperrors.ErrForbidden, entityID)
	}
	return entity, nil
}
