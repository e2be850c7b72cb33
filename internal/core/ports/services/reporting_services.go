package services

import (
	"context"
	"time"

	"github.com/fynbos-apps/bookkeeper/internal/core/domain"
)

// SnapshotSvcFacade computes running financial position from the full effect history.
type SnapshotSvcFacade interface {
	GetSnapshot(ctx context.Context, ownerUserID, entityID string) (*domain.Snapshot, error)
}

// ReportingSvcFacade derives report views from the committed effect log. All methods
// are pure reads.
type ReportingSvcFacade interface {
	CashFlow(ctx context.Context, ownerUserID, entityID string, from, to time.Time) (*domain.CashFlowReport, error)
	IncomeStatement(ctx context.Context, ownerUserID, entityID string, from, to time.Time) (*domain.IncomeStatement, error)
	TaxSummary(ctx context.Context, ownerUserID, entityID string, year int) (*domain.TaxSummary, error)
	BalanceSheet(ctx context.Context, ownerUserID, entityID string, asOf time.Time) (*domain.BalanceSheet, error)
}
