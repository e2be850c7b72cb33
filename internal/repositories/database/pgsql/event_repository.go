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
)

type PgxEventRepository struct {
	BaseRepository
}

// newPgxEventRepository creates the repository for the append-only event log.
func newPgxEventRepository(pool *pgxpool.Pool) portsrepo.EventRepositoryFacade {
	return &PgxEventRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EventRepositoryFacade = (*PgxEventRepository)(nil)

// SaveEvent persists an event, its effects and any satellite rows as one
// storage transaction. The effect rows are the only mutation path into the
// ledger; everything either lands together or not at all.
func (r *PgxEventRepository) SaveEvent(ctx context.Context, event domain.EconomicEvent, effects []domain.EventEffect, satellites portsrepo.EventSatellites) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := setAuditActor(ctx, tx, event.CreatedBy); err != nil {
		return err
	}

	// 1. Insert the event row.
	me := mapping.ToModelEconomicEvent(event)
	eventQuery := `
		INSERT INTO economic_events (
			event_id, owner_user_id, entity_id, event_type, event_date,
			description, source_reference, jurisdiction, created_at, created_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, eventQuery,
		me.EventID,
		me.OwnerUserID,
		me.EntityID,
		me.EventType,
		me.EventDate,
		me.Description,
		me.SourceReference,
		me.Jurisdiction,
		me.CreatedAt,
		me.CreatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert event "+me.EventID, err)
	}

	// 2. Batch-insert the effect rows.
	batch := &pgx.Batch{}
	effectQuery := `
		INSERT INTO event_effects (
			effect_id, event_id, effect_type, amount, sign, currency_code,
			related_table, related_record_id, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	for _, effect := range effects {
		mf := mapping.ToModelEventEffect(effect)
		batch.Queue(effectQuery,
			mf.EffectID,
			mf.EventID,
			mf.EffectType,
			mf.Amount,
			mf.Sign,
			mf.CurrencyCode,
			nullIfEmpty(mf.RelatedTable),
			nullIfEmpty(mf.RelatedRecordID),
			mf.CreatedAt,
		)
	}

	// 3. Queue satellite rows into the same batch.
	for _, rec := range satellites.IncomeRecognitions {
		mr := mapping.ToModelIncomeRecognition(rec)
		batch.Queue(`
			INSERT INTO income_recognitions (
				recognition_id, effect_id, tax_treatment, income_class,
				counterparty, amount_gross, amount_net, created_at
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
		`, mr.RecognitionID, mr.EffectID, mr.TaxTreatment, mr.IncomeClass,
			mr.Counterparty, mr.AmountGross, mr.AmountNet, mr.CreatedAt)
	}
	for _, rec := range satellites.ExpenseRecognitions {
		mr := mapping.ToModelExpenseRecognition(rec)
		batch.Queue(`
			INSERT INTO expense_recognitions (
				recognition_id, effect_id, deductible, expense_category,
				supplier, amount, created_at
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7);
		`, mr.RecognitionID, mr.EffectID, mr.Deductible, mr.ExpenseCategory,
			mr.Supplier, mr.Amount, mr.CreatedAt)
	}
	if satellites.Asset != nil {
		ma := mapping.ToModelAsset(*satellites.Asset)
		batch.Queue(`
			INSERT INTO assets (
				asset_id, entity_id, effect_id, name, asset_class, initial_value,
				useful_life_months, depreciation_method, acquisition_date, created_at
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
		`, ma.AssetID, ma.EntityID, ma.EffectID, ma.Name, ma.AssetClass, ma.InitialValue,
			ma.UsefulLifeMonths, ma.DepreciationMethod, ma.AcquisitionDate, ma.CreatedAt)
	}
	if satellites.Liability != nil {
		ml := mapping.ToModelLiability(*satellites.Liability)
		batch.Queue(`
			INSERT INTO liabilities (
				liability_id, entity_id, effect_id, name, creditor, principal,
				annual_interest_rate, interest_method, incurrence_date, maturity_date, created_at
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
		`, ml.LiabilityID, ml.EntityID, ml.EffectID, ml.Name, ml.Creditor, ml.Principal,
			ml.AnnualInterestRate, ml.InterestMethod, ml.IncurrenceDate, ml.MaturityDate, ml.CreatedAt)
	}

	br := tx.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return apperrors.NewAppError(500, "failed to insert rows for event "+me.EventID, err)
		}
	}
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to flush batch for event "+me.EventID, err)
	}

	// 4. One-shot closure pointers. These are the only permitted updates on the
	// satellite tables and only from unset to set.
	if satellites.MarkAssetDisposed != "" {
		tag, err := tx.Exec(ctx, `
			UPDATE assets SET disposed_event_id = $2
			WHERE asset_id = $1 AND disposed_event_id IS NULL;
		`, satellites.MarkAssetDisposed, me.EventID)
		if err != nil {
			return apperrors.NewAppError(500, "failed to mark asset disposed "+satellites.MarkAssetDisposed, err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.NewAppError(409, "asset already disposed or missing "+satellites.MarkAssetDisposed, apperrors.ErrDuplicate)
		}
	}
	if satellites.MarkLiabilityExtinguished != "" {
		tag, err := tx.Exec(ctx, `
			UPDATE liabilities SET extinguished_event_id = $2
			WHERE liability_id = $1 AND extinguished_event_id IS NULL;
		`, satellites.MarkLiabilityExtinguished, me.EventID)
		if err != nil {
			return apperrors.NewAppError(500, "failed to mark liability extinguished "+satellites.MarkLiabilityExtinguished, err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.NewAppError(409, "liability already extinguished or missing "+satellites.MarkLiabilityExtinguished, apperrors.ErrDuplicate)
		}
	}

	return r.Commit(ctx, tx)
}

// FindEventByID retrieves a single event.
func (r *PgxEventRepository) FindEventByID(ctx context.Context, eventID string) (*domain.EconomicEvent, error) {
	query := `
		SELECT event_id, owner_user_id, entity_id, event_type, event_date,
		       description, source_reference, jurisdiction, created_at, created_by
		FROM economic_events
		WHERE event_id = $1;
	`
	m, err := scanEvent(r.Pool.QueryRow(ctx, query, eventID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find event by ID "+eventID, err)
	}
	d := mapping.ToDomainEconomicEvent(m)
	return &d, nil
}

// FindEffectsByEventID retrieves the effects of one event in insertion order.
func (r *PgxEventRepository) FindEffectsByEventID(ctx context.Context, eventID string) ([]domain.EventEffect, error) {
	query := `
		SELECT effect_id, event_id, effect_type, amount, sign, currency_code,
		       COALESCE(related_table, ''), COALESCE(related_record_id, ''), created_at
		FROM event_effects
		WHERE event_id = $1
		ORDER BY effect_id;
	`
	rows, err := r.Pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query effects for event "+eventID, err)
	}
	defer rows.Close()

	ms := []models.EventEffect{}
	for rows.Next() {
		var m models.EventEffect
		err := rows.Scan(
			&m.EffectID,
			&m.EventID,
			&m.EffectType,
			&m.Amount,
			&m.Sign,
			&m.CurrencyCode,
			&m.RelatedTable,
			&m.RelatedRecordID,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan effect row for event "+eventID, err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating effect rows for event "+eventID, err)
	}
	return mapping.ToDomainEventEffectSlice(ms), nil
}

// ListEventsByEntity retrieves an entity's events newest first. Event IDs are
// ULIDs, so ordering by ID matches creation order within the entity.
func (r *PgxEventRepository) ListEventsByEntity(ctx context.Context, entityID string, limit, offset int) ([]domain.EconomicEvent, error) {
	query := `
		SELECT event_id, owner_user_id, entity_id, event_type, event_date,
		       description, source_reference, jurisdiction, created_at, created_by
		FROM economic_events
		WHERE entity_id = $1
		ORDER BY event_id DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, entityID, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query events for entity "+entityID, err)
	}
	defer rows.Close()

	ms := []models.EconomicEvent{}
	for rows.Next() {
		m, err := scanEvent(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan event row for entity "+entityID, err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating event rows for entity "+entityID, err)
	}
	return mapping.ToDomainEconomicEventSlice(ms), nil
}

func scanEvent(row pgx.Row) (models.EconomicEvent, error) {
	var m models.EconomicEvent
	err := row.Scan(
		&m.EventID,
		&m.OwnerUserID,
		&m.EntityID,
		&m.EventType,
		&m.EventDate,
		&m.Description,
		&m.SourceReference,
		&m.Jurisdiction,
		&m.CreatedAt,
		&m.CreatedBy,
	)
	return m, err
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
