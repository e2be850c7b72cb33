package services

import (
	"context"
	"time"

	"github.com/fynbos-apps/bookkeeper/internal/core/domain"
	"github.com/fynbos-apps/bookkeeper/internal/dto"
)

// AssetSvcFacade manages asset satellites. Acquisition and disposal both run through
// the event recorder's atomic write; valuations are recomputed on read and never
// stored.
type AssetSvcFacade interface {
	AcquireAsset(ctx context.Context, ownerUserID, entityID string, req dto.AcquireAssetRequest) (*domain.Asset, error)
	GetAssetValuation(ctx context.Context, ownerUserID, assetID string, asOf time.Time) (*domain.AssetValuation, error)
	ListAssetValuations(ctx context.Context, ownerUserID, entityID string, asOf time.Time, includeDisposed bool) ([]domain.AssetValuation, error)

	// DisposeAsset records an ASSET_DISPOSED event for the proceeds and sets the
	// disposal pointer in the same logical operation.
	DisposeAsset(ctx context.Context, ownerUserID, assetID string, req dto.DisposeAssetRequest) (*domain.EconomicEvent, error)
}
