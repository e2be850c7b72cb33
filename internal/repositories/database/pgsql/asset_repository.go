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

type PgxAssetRepository struct {
	BaseRepository
}

func newPgxAssetRepository(pool *pgxpool.Pool) portsrepo.AssetRepositoryFacade {
	return &PgxAssetRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AssetRepositoryFacade = (*PgxAssetRepository)(nil)

const assetColumns = `asset_id, entity_id, effect_id, name, asset_class, initial_value,
	useful_life_months, depreciation_method, acquisition_date, disposed_event_id, created_at`

func scanAsset(row pgx.Row) (models.Asset, error) {
	var m models.Asset
	err := row.Scan(
		&m.AssetID,
		&m.EntityID,
		&m.EffectID,
		&m.Name,
		&m.AssetClass,
		&m.InitialValue,
		&m.UsefulLifeMonths,
		&m.DepreciationMethod,
		&m.AcquisitionDate,
		&m.DisposedEventID,
		&m.CreatedAt,
	)
	return m, err
}

// FindAssetByID retrieves one asset record.
func (r *PgxAssetRepository) FindAssetByID(ctx context.Context, assetID string) (*domain.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE asset_id = $1;`
	m, err := scanAsset(r.Pool.QueryRow(ctx, query, assetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find asset by ID "+assetID, err)
	}
	d := mapping.ToDomainAsset(m)
	return &d, nil
}

// ListAssetsByEntity retrieves an entity's assets in acquisition order.
func (r *PgxAssetRepository) ListAssetsByEntity(ctx context.Context, entityID string, includeDisposed bool) ([]domain.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE entity_id = $1`
	if !includeDisposed {
		query += ` AND disposed_event_id IS NULL`
	}
	query += ` ORDER BY acquisition_date, asset_id;`

	rows, err := r.Pool.Query(ctx, query, entityID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query assets for entity "+entityID, err)
	}
	defer rows.Close()

	ms := []models.Asset{}
	for rows.Next() {
		m, err := scanAsset(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan asset row for entity "+entityID, err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating asset rows for entity "+entityID, err)
	}
	return mapping.ToDomainAssetSlice(ms), nil
}
