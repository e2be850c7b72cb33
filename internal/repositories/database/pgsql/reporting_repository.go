package pgsql

import (
	"context"
	"time"

	"github.com/fynbos-apps/bookkeeper/internal/apperrors"
	"github.com/fynbos-apps/bookkeeper/internal/core/domain"
	portsrepo "github.com/fynbos-apps/bookkeeper/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxReportingRepository struct {
	BaseRepository
}

func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// GetAxisTotals folds every effect for the entity into one signed total per
// accounting axis, and counts the entity's events.
func (r *PgxReportingRepository) GetAxisTotals(ctx context.Context, entityID string) (map[domain.EffectType]decimal.Decimal, int64, error) {
	query := `
		SELECT f.effect_type, COALESCE(SUM(f.amount * f.sign), 0)
		FROM event_effects f
		JOIN economic_events e ON e.event_id = f.event_id
		WHERE e.entity_id = $1
		GROUP BY f.effect_type;
	`
	rows, err := r.Pool.Query(ctx, query, entityID)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to query axis totals for entity "+entityID, err)
	}
	defer rows.Close()

	totals := make(map[domain.EffectType]decimal.Decimal)
	for rows.Next() {
		var axis string
		var total decimal.Decimal
		if err := rows.Scan(&axis, &total); err != nil {
			return nil, 0, apperrors.NewAppError(500, "failed to scan axis total for entity "+entityID, err)
		}
		totals[domain.EffectType(axis)] = total
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.NewAppError(500, "error iterating axis totals for entity "+entityID, err)
	}

	var eventCount int64
	countQuery := `SELECT COUNT(*) FROM economic_events WHERE entity_id = $1;`
	if err := r.Pool.QueryRow(ctx, countQuery, entityID).Scan(&eventCount); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count events for entity "+entityID, err)
	}

	return totals, eventCount, nil
}

// GetCashMovements returns each signed CASH movement dated within [from, to],
// oldest first.
func (r *PgxReportingRepository) GetCashMovements(ctx context.Context, entityID string, from, to time.Time) ([]domain.DatedCashAmount, error) {
	query := `
		SELECT e.event_date, f.amount * f.sign
		FROM event_effects f
		JOIN economic_events e ON e.event_id = f.event_id
		WHERE e.entity_id = $1
		  AND f.effect_type = 'CASH'
		  AND e.event_date >= $2
		  AND e.event_date <= $3
		ORDER BY e.event_date, f.effect_id;
	`
	rows, err := r.Pool.Query(ctx, query, entityID, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query cash movements for entity "+entityID, err)
	}
	defer rows.Close()

	movements := []domain.DatedCashAmount{}
	for rows.Next() {
		var m domain.DatedCashAmount
		if err := rows.Scan(&m.Date, &m.Amount); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan cash movement for entity "+entityID, err)
		}
		movements = append(movements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating cash movements for entity "+entityID, err)
	}
	return movements, nil
}

// GetIncomeStatementData sums the INCOME and EXPENSE axes over [from, to].
// Deductible expenses join through the expense recognition satellites.
func (r *PgxReportingRepository) GetIncomeStatementData(ctx context.Context, entityID string, from, to time.Time) (portsrepo.IncomeStatementData, error) {
	var data portsrepo.IncomeStatementData
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN f.effect_type = 'INCOME' THEN f.amount * f.sign ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN f.effect_type = 'EXPENSE' THEN f.amount * f.sign ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN f.effect_type = 'EXPENSE' AND er.deductible THEN f.amount * f.sign ELSE 0 END), 0)
		FROM event_effects f
		JOIN economic_events e ON e.event_id = f.event_id
		LEFT JOIN expense_recognitions er ON er.effect_id = f.effect_id
		WHERE e.entity_id = $1
		  AND e.event_date >= $2
		  AND e.event_date <= $3;
	`
	err := r.Pool.QueryRow(ctx, query, entityID, from, to).Scan(
		&data.TotalIncome,
		&data.TotalExpenses,
		&data.DeductibleExpenses,
	)
	if err != nil {
		return portsrepo.IncomeStatementData{}, apperrors.NewAppError(500, "failed to query income statement data for entity "+entityID, err)
	}
	return data, nil
}
