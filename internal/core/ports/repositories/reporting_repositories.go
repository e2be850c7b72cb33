package repositories

import (
	"context"
	"time"

	"github.com/fynbos-apps/bookkeeper/internal/core/domain"
	"github.com/shopspring/decimal"
)

// IncomeStatementData is the raw aggregate behind an income statement.
type IncomeStatementData struct {
	TotalIncome        decimal.Decimal
	TotalExpenses      decimal.Decimal
	DeductibleExpenses decimal.Decimal
}

// ReportingRepository aggregates the effect log. All methods are read-only and
// reflect exactly the events committed at query time.
type ReportingRepository interface {
	// GetAxisTotals sums amount*sign per accounting axis over all of an entity's
	// effects, and counts the entity's events.
	GetAxisTotals(ctx context.Context, entityID string) (map[domain.EffectType]decimal.Decimal, int64, error)

	// GetCashMovements returns each signed CASH movement for events dated within
	// [from, to], in ascending event-date order.
	GetCashMovements(ctx context.Context, entityID string, from, to time.Time) ([]domain.DatedCashAmount, error)

	// GetIncomeStatementData sums the INCOME and EXPENSE axes for events dated
	// within [from, to]; deductible expenses join through expense recognitions.
	GetIncomeStatementData(ctx context.Context, entityID string, from, to time.Time) (IncomeStatementData, error)
}
