package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/fynbos-apps/bookkeeper/internal/apperrors"
	"github.com/fynbos-apps/bookkeeper/internal/core/domain"
	portsrepo "github.com/fynbos-apps/bookkeeper/internal/core/ports/repositories"
	"github.com/fynbos-apps/bookkeeper/internal/models"
	"github.com/fynbos-apps/bookkeeper/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxEntityRepository struct {
	BaseRepository
}

func newPgxEntityRepository(pool *pgxpool.Pool) portsrepo.EntityRepositoryFacade {
	return &PgxEntityRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EntityRepositoryFacade = (*PgxEntityRepository)(nil)

const entityColumns = `entity_id, owner_user_id, name, kind, currency_code, jurisdiction,
	created_at, created_by, last_updated_at, last_updated_by`

func scanEntity(row pgx.Row) (models.Entity, error) {
	var m models.Entity
	err := row.Scan(
		&m.EntityID,
		&m.OwnerUserID,
		&m.Name,
		&m.Kind,
		&m.CurrencyCode,
		&m.Jurisdiction,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveEntity persists a new entity.
func (r *PgxEntityRepository) SaveEntity(ctx context.Context, entity domain.Entity) error {
	m := mapping.ToModelEntity(entity)
	query := `
		INSERT INTO entities (` + entityColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.EntityID,
		m.OwnerUserID,
		m.Name,
		m.Kind,
		m.CurrencyCode,
		m.Jurisdiction,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert entity "+m.EntityID, err)
	}
	return nil
}

// FindEntityByID retrieves one entity.
func (r *PgxEntityRepository) FindEntityByID(ctx context.Context, entityID string) (*domain.Entity, error) {
	query := `SELECT ` + entityColumns + ` FROM entities WHERE entity_id = $1;`
	m, err := scanEntity(r.Pool.QueryRow(ctx, query, entityID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find entity by ID "+entityID, err)
	}
	d := mapping.ToDomainEntity(m)
	return &d, nil
}

// ListEntitiesByOwner retrieves every entity owned by a user, oldest first.
func (r *PgxEntityRepository) ListEntitiesByOwner(ctx context.Context, ownerUserID string) ([]domain.Entity, error) {
	query := `SELECT ` + entityColumns + ` FROM entities WHERE owner_user_id = $1 ORDER BY created_at;`
	rows, err := r.Pool.Query(ctx, query, ownerUserID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query entities for owner "+ownerUserID, err)
	}
	defer rows.Close()

	ms := []models.Entity{}
	for rows.Next() {
		m, err := scanEntity(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan entity row", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating entity rows", err)
	}
	return mapping.ToDomainEntitySlice(ms), nil
}

// RenameEntity updates the display name, the only mutable entity field.
func (r *PgxEntityRepository) RenameEntity(ctx context.Context, entityID, name, updatedBy string) error {
	query := `
		UPDATE entities
		SET name = $2, last_updated_at = $3, last_updated_by = $4
		WHERE entity_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, entityID, name, time.Now().UTC(), updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to rename entity "+entityID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteEntity removes the entity; the schema cascades the delete through the
// entity's events, effects and satellite records. The ledger tables carry
// immutability triggers, so the cascade only succeeds inside a transaction
// that has armed app.allow_purge.
func (r *PgxEntityRepository) DeleteEntity(ctx context.Context, entityID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `SELECT set_config('app.allow_purge', 'on', true)`); err != nil {
		return apperrors.NewAppError(500, "failed to arm purge for entity "+entityID, err)
	}
	tag, err := tx.Exec(ctx, `DELETE FROM entities WHERE entity_id = $1;`, entityID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete entity "+entityID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return r.Commit(ctx, tx)
}
