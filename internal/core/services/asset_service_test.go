package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/fynbos-apps/bookkeeper/internal/apperrors"
	"github.com/fynbos-apps/bookkeeper/internal/core/domain"
	portsrepo "github.com/fynbos-apps/bookkeeper/internal/core/ports/repositories"
	portssvc "github.com/fynbos-apps/bookkeeper/internal/core/ports/services"
	"github.com/fynbos-apps/bookkeeper/internal/core/services"
	"github.com/fynbos-apps/bookkeeper/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AssetServiceTestSuite struct {
	suite.Suite
	mockEventRepo  *MockEventRepository
	mockEntityRepo *MockEntityRepository
	mockAssetRepo  *MockAssetRepository
	service        portssvc.AssetSvcFacade

	ownerID string
	entity  domain.Entity
}

func (s *AssetServiceTestSuite) SetupTest() {
	s.mockEventRepo = new(MockEventRepository)
	s.mockEntityRepo = new(MockEntityRepository)
	s.mockAssetRepo = new(MockAssetRepository)
	s.service = services.NewAssetService(s.mockEventRepo, s.mockEntityRepo, s.mockAssetRepo)

	s.ownerID = uuid.NewString()
	s.entity = domain.Entity{
		EntityID:     uuid.NewString(),
		OwnerUserID:  s.ownerID,
		Name:         "Holding Book",
		Kind:         domain.EntityHolding,
		CurrencyCode: "ZAR",
	}
}

func (s *AssetServiceTestSuite) expectEntityLookup() {
	s.mockEntityRepo.On("FindEntityByID", mock.Anything, s.entity.EntityID).Return(&s.entity, nil).Once()
}

func (s *AssetServiceTestSuite) TestAcquireAssetWritesSatelliteAtomically() {
	ctx := context.Background()
	s.expectEntityLookup()

	var savedEvent domain.EconomicEvent
	var savedEffects []domain.EventEffect
	var savedSatellites portsrepo.EventSatellites
	s.mockEventRepo.On("SaveEvent", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			savedEvent = args.Get(1).(domain.EconomicEvent)
			savedEffects = args.Get(2).([]domain.EventEffect)
			savedSatellites = args.Get(3).(portsrepo.EventSatellites)
		}).Return(nil).Once()

	req := dto.AcquireAssetRequest{
		Name:             "Laptop",
		AssetClass:       "EQUIPMENT",
		Amount:           decimal.NewFromInt(1200),
		UsefulLifeMonths: 12,
		AcquisitionDate:  time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
	}
	asset, err := s.service.AcquireAsset(ctx, s.ownerID, s.entity.EntityID, req)

	s.Require().NoError(err)
	s.Require().NotNil(asset)
	s.Equal(domain.AssetAcquired, savedEvent.EventType)
	s.Equal(domain.StraightLine, asset.DepreciationMethod, "method defaults to straight line")

	s.Require().NotNil(savedSatellites.Asset)
	s.Equal(asset.AssetID, savedSatellites.Asset.AssetID)
	s.Equal(savedEvent.CreatedAt, savedSatellites.Asset.CreatedAt, "satellite shares the event timestamp")
	s.False(asset.CreatedAt.IsZero(), "returned asset carries the recording timestamp")

	var assetEffect *domain.EventEffect
	for i := range savedEffects {
		if savedEffects[i].EffectType == domain.EffectAsset {
			assetEffect = &savedEffects[i]
		}
	}
	s.Require().NotNil(assetEffect)
	s.Equal(asset.EffectID, assetEffect.EffectID)
	s.Equal("assets", assetEffect.RelatedTable)
	s.Equal(asset.AssetID, assetEffect.RelatedRecordID)
	s.Equal(domain.SignIncrease, assetEffect.Sign)
}

func (s *AssetServiceTestSuite) TestAcquireAssetRejectsUnknownMethod() {
	ctx := context.Background()
	s.expectEntityLookup()

	req := dto.AcquireAssetRequest{
		Name:               "Thing",
		AssetClass:         "OTHER",
		Amount:             decimal.NewFromInt(100),
		UsefulLifeMonths:   12,
		DepreciationMethod: "SUM_OF_YEARS",
		AcquisitionDate:    time.Now().UTC(),
	}
	_, err := s.service.AcquireAsset(ctx, s.ownerID, s.entity.EntityID, req)

	s.Require().ErrorIs(err, apperrors.ErrValidation)
	s.mockEventRepo.AssertNotCalled(s.T(), "SaveEvent", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *AssetServiceTestSuite) TestGetAssetValuationStraightLine() {
	ctx := context.Background()
	assetID := uuid.NewString()
	asset := domain.Asset{
		AssetID:            assetID,
		EntityID:           s.entity.EntityID,
		Name:               "Laptop",
		InitialValue:       decimal.NewFromInt(1200),
		UsefulLifeMonths:   12,
		DepreciationMethod: domain.StraightLine,
		AcquisitionDate:    time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
	}
	s.mockAssetRepo.On("FindAssetByID", mock.Anything, assetID).Return(&asset, nil).Once()
	s.expectEntityLookup()

	// Four whole months after acquisition.
	asOf := time.Date(2026, 5, 15, 0, 0, 0, 0, time.UTC)
	valuation, err := s.service.GetAssetValuation(ctx, s.ownerID, assetID, asOf)

	s.Require().NoError(err)
	s.True(valuation.AccumulatedDepreciation.Equal(decimal.NewFromInt(400)),
		"expected 400, got %s", valuation.AccumulatedDepreciation)
	s.True(valuation.BookValue.Equal(decimal.NewFromInt(800)),
		"expected 800, got %s", valuation.BookValue)
}

func (s *AssetServiceTestSuite) TestDisposeAssetMarksClosure() {
	ctx := context.Background()
	assetID := uuid.NewString()
	asset := domain.Asset{
		AssetID:            assetID,
		EntityID:           s.entity.EntityID,
		Name:               "Laptop",
		InitialValue:       decimal.NewFromInt(1200),
		UsefulLifeMonths:   12,
		DepreciationMethod: domain.StraightLine,
		AcquisitionDate:    time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
	}
	s.mockAssetRepo.On("FindAssetByID", mock.Anything, assetID).Return(&asset, nil).Once()
	// Once for ownership on the asset, once inside DisposeAsset.
	s.mockEntityRepo.On("FindEntityByID", mock.Anything, s.entity.EntityID).Return(&s.entity, nil).Twice()

	var savedEvent domain.EconomicEvent
	var savedSatellites portsrepo.EventSatellites
	s.mockEventRepo.On("SaveEvent", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			savedEvent = args.Get(1).(domain.EconomicEvent)
			savedSatellites = args.Get(3).(portsrepo.EventSatellites)
		}).Return(nil).Once()

	req := dto.DisposeAssetRequest{
		Proceeds:  decimal.NewFromInt(500),
		EventDate: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
	}
	event, err := s.service.DisposeAsset(ctx, s.ownerID, assetID, req)

	s.Require().NoError(err)
	s.Require().NotNil(event)
	s.Equal(domain.AssetDisposed, savedEvent.EventType)
	s.Equal(assetID, savedEvent.SourceReference)
	s.Equal(assetID, savedSatellites.MarkAssetDisposed)
}

func (s *AssetServiceTestSuite) TestDisposeAssetTwiceRejected() {
	ctx := context.Background()
	assetID := uuid.NewString()
	disposedBy := "01HZXC5N9GW9V1KQ2M3P4R5S6T"
	asset := domain.Asset{
		AssetID:            assetID,
		EntityID:           s.entity.EntityID,
		InitialValue:       decimal.NewFromInt(1200),
		UsefulLifeMonths:   12,
		DepreciationMethod: domain.StraightLine,
		AcquisitionDate:    time.Now().UTC(),
		DisposedEventID:    &disposedBy,
	}
	s.mockAssetRepo.On("FindAssetByID", mock.Anything, assetID).Return(&asset, nil).Once()
	s.expectEntityLookup()

	req := dto.DisposeAssetRequest{
		Proceeds:  decimal.NewFromInt(100),
		EventDate: time.Now().UTC(),
	}
	_, err := s.service.DisposeAsset(ctx, s.ownerID, assetID, req)

	s.Require().ErrorIs(err, apperrors.ErrValidation)
	s.mockEventRepo.AssertNotCalled(s.T(), "SaveEvent", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *AssetServiceTestSuite) TestListAssetValuationsSkipsDisposedByDefault() {
	ctx := context.Background()
	s.expectEntityLookup()
	live := domain.Asset{
		AssetID:            uuid.NewString(),
		EntityID:           s.entity.EntityID,
		InitialValue:       decimal.NewFromInt(600),
		UsefulLifeMonths:   6,
		DepreciationMethod: domain.StraightLine,
		AcquisitionDate:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	s.mockAssetRepo.On("ListAssetsByEntity", mock.Anything, s.entity.EntityID, false).
		Return([]domain.Asset{live}, nil).Once()

	valuations, err := s.service.ListAssetValuations(ctx, s.ownerID, s.entity.EntityID, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), false)

	s.Require().NoError(err)
	s.Require().Len(valuations, 1)
	s.True(valuations[0].AccumulatedDepreciation.Equal(decimal.NewFromInt(300)))
}

func TestAssetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AssetServiceTestSuite))
}
