package services_test

import (
	"context"
	"time"

	"github.com/fynbos-apps/bookkeeper/internal/core/domain"
	portsrepo "github.com/fynbos-apps/bookkeeper/internal/core/ports/repositories"
	portssvc "github.com/fynbos-apps/bookkeeper/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock EntityRepository ---

type MockEntityRepository struct {
	mock.Mock
}

var _ portsrepo.EntityRepositoryFacade = (*MockEntityRepository)(nil)

func (m *MockEntityRepository) FindEntityByID(ctx context.Context, entityID string) (*domain.Entity, error) {
	args := m.Called(ctx, entityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entity), args.Error(1)
}

func (m *MockEntityRepository) ListEntitiesByOwner(ctx context.Context, ownerUserID string) ([]domain.Entity, error) {
	args := m.Called(ctx, ownerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Entity), args.Error(1)
}

func (m *MockEntityRepository) SaveEntity(ctx context.Context, entity domain.Entity) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockEntityRepository) RenameEntity(ctx context.Context, entityID, name, updatedBy string) error {
	args := m.Called(ctx, entityID, name, updatedBy)
	return args.Error(0)
}

func (m *MockEntityRepository) DeleteEntity(ctx context.Context, entityID string) error {
	args := m.Called(ctx, entityID)
	return args.Error(0)
}

// --- Mock EventRepository ---

type MockEventRepository struct {
	mock.Mock
}

var _ portsrepo.EventRepositoryFacade = (*MockEventRepository)(nil)

func (m *MockEventRepository) SaveEvent(ctx context.Context, event domain.EconomicEvent, effects []domain.EventEffect, satellites portsrepo.EventSatellites) error {
	args := m.Called(ctx, event, effects, satellites)
	return args.Error(0)
}

func (m *MockEventRepository) FindEventByID(ctx context.Context, eventID string) (*domain.EconomicEvent, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EconomicEvent), args.Error(1)
}

func (m *MockEventRepository) FindEffectsByEventID(ctx context.Context, eventID string) ([]domain.EventEffect, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EventEffect), args.Error(1)
}

func (m *MockEventRepository) ListEventsByEntity(ctx context.Context, entityID string, limit, offset int) ([]domain.EconomicEvent, error) {
	args := m.Called(ctx, entityID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EconomicEvent), args.Error(1)
}

// --- Mock AssetRepository ---

type MockAssetRepository struct {
	mock.Mock
}

var _ portsrepo.AssetRepositoryFacade = (*MockAssetRepository)(nil)

func (m *MockAssetRepository) FindAssetByID(ctx context.Context, assetID string) (*domain.Asset, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockAssetRepository) ListAssetsByEntity(ctx context.Context, entityID string, includeDisposed bool) ([]domain.Asset, error) {
	args := m.Called(ctx, entityID, includeDisposed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Asset), args.Error(1)
}

// --- Mock LiabilityRepository ---

type MockLiabilityRepository struct {
	mock.Mock
}

var _ portsrepo.LiabilityRepositoryFacade = (*MockLiabilityRepository)(nil)

func (m *MockLiabilityRepository) FindLiabilityByID(ctx context.Context, liabilityID string) (*domain.Liability, error) {
	args := m.Called(ctx, liabilityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Liability), args.Error(1)
}

func (m *MockLiabilityRepository) ListLiabilitiesByEntity(ctx context.Context, entityID string, includeExtinguished bool) ([]domain.Liability, error) {
	args := m.Called(ctx, entityID, includeExtinguished)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Liability), args.Error(1)
}

func (m *MockLiabilityRepository) SumRepayments(ctx context.Context, liabilityID string) (decimal.Decimal, error) {
	args := m.Called(ctx, liabilityID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Mock ReportingRepository ---

type MockReportingRepository struct {
	mock.Mock
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) GetAxisTotals(ctx context.Context, entityID string) (map[domain.EffectType]decimal.Decimal, int64, error) {
	args := m.Called(ctx, entityID)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).(map[domain.EffectType]decimal.Decimal), args.Get(1).(int64), args.Error(2)
}

func (m *MockReportingRepository) GetCashMovements(ctx context.Context, entityID string, from, to time.Time) ([]domain.DatedCashAmount, error) {
	args := m.Called(ctx, entityID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DatedCashAmount), args.Error(1)
}

func (m *MockReportingRepository) GetIncomeStatementData(ctx context.Context, entityID string, from, to time.Time) (portsrepo.IncomeStatementData, error) {
	args := m.Called(ctx, entityID, from, to)
	return args.Get(0).(portsrepo.IncomeStatementData), args.Error(1)
}

// --- Mock EventPublisher ---

type MockPublisher struct {
	mock.Mock
}

var _ portssvc.EventPublisher = (*MockPublisher)(nil)

func (m *MockPublisher) Publish(ctx context.Context, n portssvc.LedgerNotification) {
	m.Called(ctx, n)
}
