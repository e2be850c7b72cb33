package dto

import (
	"time"

	"github.com/fynbos-apps/bookkeeper/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AcquireAssetRequest records an ASSET_ACQUIRED event and its asset satellite in one
// atomic operation.
type AcquireAssetRequest struct {
	Name               string                    `json:"name" binding:"required"`
	AssetClass         string                    `json:"assetClass" binding:"required"`
	Amount             decimal.Decimal           `json:"amount" binding:"required"`
	UsefulLifeMonths   int                       `json:"usefulLifeMonths" binding:"required,gt=0"`
	DepreciationMethod domain.DepreciationMethod `json:"depreciationMethod"` // defaults to STRAIGHT_LINE
	AcquisitionDate    time.Time                 `json:"acquisitionDate" binding:"required"`
	Description        string                    `json:"description"`
	OnCredit           bool                      `json:"onCredit"`
}

// DisposeAssetRequest records an ASSET_DISPOSED event and sets the disposal pointer.
type DisposeAssetRequest struct {
	Proceeds    decimal.Decimal `json:"proceeds" binding:"required"`
	EventDate   time.Time       `json:"eventDate" binding:"required"`
	Description string          `json:"description"`
}
