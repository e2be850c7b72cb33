package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Asset is the DB row for a tracked long-lived asset.
type Asset struct {
	AssetID            string          `db:"asset_id"`
	EntityID           string          `db:"entity_id"`
	EffectID           string          `db:"effect_id"`
	Name               string          `db:"name"`
	AssetClass         string          `db:"asset_class"`
	InitialValue       decimal.Decimal `db:"initial_value"`
	UsefulLifeMonths   int             `db:"useful_life_months"`
	DepreciationMethod string          `db:"depreciation_method"`
	AcquisitionDate    time.Time       `db:"acquisition_date"`
	DisposedEventID    *string         `db:"disposed_event_id"`
	CreatedAt          time.Time       `db:"created_at"`
}
