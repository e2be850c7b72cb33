package repositories

import (
	"context"

	"github.com/fynbos-apps/bookkeeper/internal/core/domain"
)

// AssetReader defines read operations for asset satellites. Assets are only ever
// written through EventWriter.SaveEvent, so there is no separate writer interface.
type AssetReader interface {
	// FindAssetByID retrieves one asset record.
	FindAssetByID(ctx context.Context, assetID string) (*domain.Asset, error)

	// ListAssetsByEntity retrieves an entity's assets, optionally including
	// disposed ones.
	ListAssetsByEntity(ctx context.Context, entityID string, includeDisposed bool) ([]domain.Asset, error)
}

// AssetRepositoryFacade is the asset repository surface.
type AssetRepositoryFacade interface {
	AssetReader
}
