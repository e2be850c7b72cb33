package pgsql

import (
	"context"
	"errors"

	"github.com/fynbos-apps/bookkeeper/internal/apperrors"
	"github.com/fynbos-apps/bookkeeper/internal/core/domain"
	portsrepo "github.com/fynbos-apps/bookkeeper/internal/core/ports/repositories"
	"github.com/fynbos-apps/bookkeeper/internal/models"
	"github.com/fynbos-apps/bookkeeper/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxLiabilityRepository struct {
	BaseRepository
}

func newPgxLiabilityRepository(pool *pgxpool.Pool) portsrepo.LiabilityRepositoryFacade {
	return &PgxLiabilityRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LiabilityRepositoryFacade = (*PgxLiabilityRepository)(nil)

const liabilityColumns = `liability_id, entity_id, effect_id, name, creditor, principal,
	annual_interest_rate, interest_method, incurrence_date, maturity_date,
	extinguished_event_id, created_at`

func scanLiability(row pgx.Row) (models.Liability, error) {
	var m models.Liability
	err := row.Scan(
		&m.LiabilityID,
		&m.EntityID,
		&m.EffectID,
		&m.Name,
		&m.Creditor,
		&m.Principal,
		&m.AnnualInterestRate,
		&m.InterestMethod,
		&m.IncurrenceDate,
		&m.MaturityDate,
		&m.ExtinguishedEventID,
		&m.CreatedAt,
	)
	return m, err
}

// FindLiabilityByID retrieves one liability record.
func (r *PgxLiabilityRepository) FindLiabilityByID(ctx context.Context, liabilityID string) (*domain.Liability, error) {
	query := `SELECT ` + liabilityColumns + ` FROM liabilities WHERE liability_id = $1;`
	m, err := scanLiability(r.Pool.QueryRow(ctx, query, liabilityID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find liability by ID "+liabilityID, err)
	}
	d := mapping.ToDomainLiability(m)
	return &d, nil
}

// ListLiabilitiesByEntity retrieves an entity's liabilities in incurrence order.
func (r *PgxLiabilityRepository) ListLiabilitiesByEntity(ctx context.Context, entityID string, includeExtinguished bool) ([]domain.Liability, error) {
	query := `SELECT ` + liabilityColumns + ` FROM liabilities WHERE entity_id = $1`
	if !includeExtinguished {
		query += ` AND extinguished_event_id IS NULL`
	}
	query += ` ORDER BY incurrence_date, liability_id;`

	rows, err := r.Pool.Query(ctx, query, entityID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query liabilities for entity "+entityID, err)
	}
	defer rows.Close()

	ms := []models.Liability{}
	for rows.Next() {
		m, err := scanLiability(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan liability row for entity "+entityID, err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating liability rows for entity "+entityID, err)
	}
	return mapping.ToDomainLiabilitySlice(ms), nil
}

// SumRepayments totals the LIABILITY-decrease effect magnitudes tagged with
// this liability, i.e. how much principal-plus-interest has been paid down.
func (r *PgxLiabilityRepository) SumRepayments(ctx context.Context, liabilityID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM event_effects
		WHERE effect_type = 'LIABILITY'
		  AND sign = -1
		  AND related_table = 'liabilities'
		  AND related_record_id = $1;
	`
	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, liabilityID).Scan(&total); err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to sum repayments for liability "+liabilityID, err)
	}
	return total, nil
}
