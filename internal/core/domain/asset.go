package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DepreciationMethod selects how an asset loses book value over time.
type DepreciationMethod string

const (
	StraightLine       DepreciationMethod = "STRAIGHT_LINE"
	DiminishingBalance DepreciationMethod = "DIMINISHING_BALANCE"
	UnitsOfProduction  DepreciationMethod = "UNITS_OF_PRODUCTION"
)

// ValidDepreciationMethod reports whether m is a known method.
func ValidDepreciationMethod(m DepreciationMethod) bool {
	switch m {
	case StraightLine, DiminishingBalance, UnitsOfProduction:
		return true
	}
	return false
}

// Asset is the satellite record behind an ASSET_ACQUIRED effect. The monetary facts
// are immutable; the only mutation ever applied is setting DisposedEventID once, when
// an ASSET_DISPOSED event is recorded.
type Asset struct {
	AssetID            string             `json:"assetID"`
	EntityID           string             `json:"entityID"`
	EffectID           string             `json:"effectID"` // originating ASSET effect
	Name               string             `json:"name"`
	AssetClass         string             `json:"assetClass"` // EQUIPMENT, VEHICLE, PROPERTY, RECEIVABLE, ...
	InitialValue       decimal.Decimal    `json:"initialValue"`
	UsefulLifeMonths   int                `json:"usefulLifeMonths"`
	DepreciationMethod DepreciationMethod `json:"depreciationMethod"`
	AcquisitionDate    time.Time          `json:"acquisitionDate"`
	DisposedEventID    *string            `json:"disposedEventID,omitempty"`
	CreatedAt          time.Time          `json:"createdAt"`
}

// Disposed reports whether the asset has left the books.
func (a Asset) Disposed() bool { return a.DisposedEventID != nil }

// AssetValuation is an Asset with its time-based book value, recomputed on read.
type AssetValuation struct {
	Asset                   Asset           `json:"asset"`
	AccumulatedDepreciation decimal.Decimal `json:"accumulatedDepreciation"`
	BookValue               decimal.Decimal `json:"bookValue"`
	AsOf                    time.Time       `json:"asOf"`
}
