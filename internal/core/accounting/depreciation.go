package accounting

import (
	"math"
	"time"

	"github.com/fynbos-apps/bookkeeper/internal/core/domain"
	"github.com/shopspring/decimal"
)

// diminishingRate is the fixed declining-balance rate: 20% per annum.
var diminishingRate = 0.20

// MonthsElapsed returns the number of whole calendar months between two dates,
// never negative. A month counts once the same day-of-month is reached.
func MonthsElapsed(from, to time.Time) int {
	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if to.Day() < from.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

// AccumulatedDepreciation is a pure function of the asset's immutable facts and a
// valuation date. It never reads the log; the depreciation charge an owner chooses to
// post is a separate DEPRECIATION event.
func AccumulatedDepreciation(initialValue decimal.Decimal, usefulLifeMonths int, method domain.DepreciationMethod, acquisitionDate, asOf time.Time) decimal.Decimal {
	if initialValue.Sign() <= 0 {
		return decimal.Zero
	}
	months := MonthsElapsed(acquisitionDate, asOf)

	switch method {
	case domain.StraightLine:
		if usefulLifeMonths <= 0 {
			return decimal.Zero
		}
		monthly := initialValue.Div(decimal.NewFromInt(int64(usefulLifeMonths)))
		accumulated := monthly.Mul(decimal.NewFromInt(int64(months)))
		if accumulated.GreaterThan(initialValue) {
			return initialValue
		}
		return accumulated

	case domain.DiminishingBalance:
		years := float64(months) / 12.0
		factor := 1 - math.Pow(1-diminishingRate, years)
		accumulated := initialValue.Mul(decimal.NewFromFloat(factor))
		if accumulated.GreaterThan(initialValue) {
			return initialValue
		}
		return accumulated

	case domain.UnitsOfProduction:
		// Requires usage metering this system does not model; depreciation under this
		// method is always zero until a meter exists.
		return decimal.Zero
	}
	return decimal.Zero
}

// BookValue returns initialValue minus accumulated depreciation, floored at zero.
func BookValue(initialValue decimal.Decimal, usefulLifeMonths int, method domain.DepreciationMethod, acquisitionDate, asOf time.Time) decimal.Decimal {
	book := initialValue.Sub(AccumulatedDepreciation(initialValue, usefulLifeMonths, method, acquisitionDate, asOf))
	if book.Sign() < 0 {
		return decimal.Zero
	}
	return book
}

// ValueAsset bundles the two calculations into an AssetValuation.
func ValueAsset(a domain.Asset, asOf time.Time) domain.AssetValuation {
	accumulated := AccumulatedDepreciation(a.InitialValue, a.UsefulLifeMonths, a.DepreciationMethod, a.AcquisitionDate, asOf)
	return domain.AssetValuation{
		Asset:                   a,
		AccumulatedDepreciation: accumulated,
		BookValue:               BookValue(a.InitialValue, a.UsefulLifeMonths, a.DepreciationMethod, a.AcquisitionDate, asOf),
		AsOf:                    asOf,
	}
}
