package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fynbos-apps/bookkeeper/internal/apperrors"
	"github.com/fynbos-apps/bookkeeper/internal/core/accounting"
	"github.com/fynbos-apps/bookkeeper/internal/core/domain"
	portsrepo "github.com/fynbos-apps/bookkeeper/internal/core/ports/repositories"
	portssvc "github.com/fynbos-apps/bookkeeper/internal/core/ports/services"
	"github.com/fynbos-apps/bookkeeper/internal/dto"
	"github.com/fynbos-apps/bookkeeper/internal/utils"
)

// assetService manages asset satellites on top of the shared recorder. Valuations
// are recomputed from the depreciation engine on every read; nothing derived is
// stored.
type assetService struct {
	BaseService
	recorder
	entityRepo portsrepo.EntityReader
	assetRepo  portsrepo.AssetRepositoryFacade
}

// AssetServiceOption configures the asset service.
type AssetServiceOption func(*assetService)

// WithAssetPublisher attaches the notification side-channel.
func WithAssetPublisher(p portssvc.EventPublisher) AssetServiceOption {
	return func(s *assetService) {
		s.publisher = p
	}
}

// NewAssetService creates the asset service.
func NewAssetService(eventRepo portsrepo.EventRepositoryFacade, entityRepo portsrepo.EntityReader, assetRepo portsrepo.AssetRepositoryFacade, options ...AssetServiceOption) portssvc.AssetSvcFacade {
	svc := &assetService{
		recorder:   recorder{eventRepo: eventRepo},
		entityRepo: entityRepo,
		assetRepo:  assetRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.AssetSvcFacade = (*assetService)(nil)

func (s *assetService) AcquireAsset(ctx context.Context, ownerUserID, entityID string, req dto.AcquireAssetRequest) (*domain.Asset, error) {
	entity, err := s.resolveOwnedEntity(ctx, s.entityRepo, ownerUserID, entityID)
	if err != nil {
		return nil, err
	}
	if req.Amount.Sign() <= 0 {
		return nil, fmt.Errorf("%w: asset amount must be positive", apperrors.ErrValidation)
	}
	method := req.DepreciationMethod
	if method == "" {
		method = domain.StraightLine
	}
	if !domain.ValidDepreciationMethod(method) {
		return nil, fmt.Errorf("%w: unknown depreciation method %q", apperrors.ErrValidation, method)
	}

	code := accounting.AssetPurchaseCash
	if req.OnCredit {
		code = accounting.AssetPurchaseCredit
	}
	archetype, err := accounting.Lookup(code)
	if err != nil {
		return nil, err
	}
	effects, err := archetype.BuildEffects(req.Amount)
	if err != nil {
		return nil, err
	}

	asset := domain.Asset{
		AssetID:            utils.NewRecordID(),
		EntityID:           entity.EntityID,
		Name:               req.Name,
		AssetClass:         req.AssetClass,
		InitialValue:       req.Amount,
		UsefulLifeMonths:   req.UsefulLifeMonths,
		DepreciationMethod: method,
		AcquisitionDate:    req.AcquisitionDate,
	}
	for i := range effects {
		if effects[i].EffectType == domain.EffectAsset {
			effects[i].EffectID = utils.NewEventID()
			effects[i].RelatedTable = "assets"
			effects[i].RelatedRecordID = asset.AssetID
			asset.EffectID = effects[i].EffectID
		}
	}

	_, _, err = s.record(ctx, entity, ownerUserID, eventSpec{
		eventType:   domain.AssetAcquired,
		eventDate:   req.AcquisitionDate,
		description: req.Description,
		effects:     effects,
		satellites:  portsrepo.EventSatellites{Asset: &asset},
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to acquire asset", slog.String("entity_id", entityID))
		return nil, err
	}
	s.LogInfo(ctx, "Asset acquired",
		slog.String("asset_id", asset.AssetID), slog.String("asset_class", asset.AssetClass))
	return &asset, nil
}

func (s *assetService) GetAssetValuation(ctx context.Context, ownerUserID, assetID string, asOf time.Time) (*domain.AssetValuation, error) {
	asset, err := s.ownedAsset(ctx, ownerUserID, assetID)
	if err != nil {
		return nil, err
	}
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}
	valuation := accounting.ValueAsset(*asset, asOf)
	return &valuation, nil
}

func (s *assetService) ListAssetValuations(ctx context.Context, ownerUserID, entityID string, asOf time.Time, includeDisposed bool) ([]domain.AssetValuation, error) {
	if _, err := s.resolveOwnedEntity(ctx, s.entityRepo, ownerUserID, entityID); err != nil {
		return nil, err
	}
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}

	assets, err := s.assetRepo.ListAssetsByEntity(ctx, entityID, includeDisposed)
	if err != nil {
		return nil, err
	}
	valuations := make([]domain.AssetValuation, len(assets))
	for i, a := range assets {
		valuations[i] = accounting.ValueAsset(a, asOf)
	}
	return valuations, nil
}

func (s *assetService) DisposeAsset(ctx context.Context, ownerUserID, assetID string, req dto.DisposeAssetRequest) (*domain.EconomicEvent, error) {
	asset, err := s.ownedAsset(ctx, ownerUserID, assetID)
	if err != nil {
		return nil, err
	}
	if asset.Disposed() {
		return nil, fmt.Errorf("%w: asset %s is already disposed", apperrors.ErrValidation, assetID)
	}
	if req.Proceeds.Sign() <= 0 {
		return nil, fmt.Errorf("%w: disposal proceeds must be positive", apperrors.ErrValidation)
	}

	entity, err := s.resolveOwnedEntity(ctx, s.entityRepo, ownerUserID, asset.EntityID)
	if err != nil {
		return nil, err
	}

	archetype, err := accounting.Lookup(accounting.AssetSaleCash)
	if err != nil {
		return nil, err
	}
	effects, err := archetype.BuildEffects(req.Proceeds)
	if err != nil {
		return nil, err
	}
	for i := range effects {
		if effects[i].EffectType == domain.EffectAsset {
			effects[i].RelatedTable = "assets"
			effects[i].RelatedRecordID = asset.AssetID
		}
	}

	event, _, err := s.record(ctx, entity, ownerUserID, eventSpec{
		eventType:       domain.AssetDisposed,
		eventDate:       req.EventDate,
		description:     req.Description,
		sourceReference: asset.AssetID,
		effects:         effects,
		satellites:      portsrepo.EventSatellites{MarkAssetDisposed: asset.AssetID},
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to dispose asset", slog.String("asset_id", assetID))
		return nil, err
	}
	s.LogInfo(ctx, "Asset disposed",
		slog.String("asset_id", assetID), slog.String("event_id", event.EventID))
	return event, nil
}

func (s *assetService) ownedAsset(ctx context.Context, ownerUserID, assetID string) (*domain.Asset, error) {
	asset, err := s.assetRepo.FindAssetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if _, err := s.resolveOwnedEntity(ctx, s.entityRepo, ownerUserID, asset.EntityID); err != nil {
		return nil, err
	}
	return asset, nil
}
