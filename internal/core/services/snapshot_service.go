package services

import (
	"context"
	"log/slog"

	"github.com/fynbos-apps/bookkeeper/internal/core/domain"
	portsrepo "github.com/fynbos-apps/bookkeeper/internal/core/ports/repositories"
	portssvc "github.com/fynbos-apps/bookkeeper/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// snapshotService computes the running financial position lazily from the effect
// log. There is no materialized state to invalidate; the result reflects exactly the
// events committed at read time.
type snapshotService struct {
	BaseService
	entityRepo    portsrepo.EntityReader
	reportingRepo portsrepo.ReportingRepository
}

// NewSnapshotService creates the snapshot aggregator.
func NewSnapshotService(entityRepo portsrepo.EntityReader, reportingRepo portsrepo.ReportingRepository) portssvc.SnapshotSvcFacade {
	return &snapshotService{entityRepo: entityRepo, reportingRepo: reportingRepo}
}

var _ portssvc.SnapshotSvcFacade = (*snapshotService)(nil)

func (s *snapshotService) GetSnapshot(ctx context.Context, ownerUserID, entityID string) (*domain.Snapshot, error) {
	if _, err := s.resolveOwnedEntity(ctx, s.entityRepo, ownerUserID, entityID); err != nil {
		return nil, err
	}

	totals, eventCount, err := s.reportingRepo.GetAxisTotals(ctx, entityID)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate axis totals", slog.String("entity_id", entityID))
		return nil, err
	}

	axis := func(t domain.EffectType) decimal.Decimal {
		if v, ok := totals[t]; ok {
			return v
		}
		return decimal.Zero
	}

	snapshot := &domain.Snapshot{
		EntityID:         entityID,
		TotalIncome:      axis(domain.EffectIncome),
		TotalExpenses:    axis(domain.EffectExpense),
		TotalCash:        axis(domain.EffectCash),
		TotalAssets:      axis(domain.EffectAsset),
		TotalLiabilities: axis(domain.EffectLiability),
		TotalEquity:      axis(domain.EffectEquity),
		EventCount:       eventCount,
	}
	snapshot.NetProfit = snapshot.TotalIncome.Sub(snapshot.TotalExpenses)

	// The aggregator does not enforce the identity; a violation means an unbalanced
	// event got past the recorder and deserves a loud signal.
	if !snapshot.IdentityHolds() {
		s.LogWarn(ctx, "Accounting identity violated",
			slog.String("entity_id", entityID),
			slog.String("cash", snapshot.TotalCash.String()),
			slog.String("assets", snapshot.TotalAssets.String()),
			slog.String("liabilities", snapshot.TotalLiabilities.String()),
			slog.String("equity", snapshot.TotalEquity.String()),
			slog.String("net_profit", snapshot.NetProfit.String()))
	}
	return snapshot, nil
}
