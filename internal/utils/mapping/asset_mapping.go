package mapping

import (
	"github.com/fynbos-apps/bookkeeper/internal/core/domain"
	"github.com/fynbos-apps/bookkeeper/internal/models"
)

// ToModelAsset converts a domain Asset to a model Asset
func ToModelAsset(d domain.Asset) models.Asset {
	return models.Asset{
		AssetID:            d.AssetID,
		EntityID:           d.EntityID,
		EffectID:           d.EffectID,
		Name:               d.Name,
		AssetClass:         d.AssetClass,
		InitialValue:       d.InitialValue,
		UsefulLifeMonths:   d.UsefulLifeMonths,
		DepreciationMethod: string(d.DepreciationMethod),
		AcquisitionDate:    d.AcquisitionDate,
		DisposedEventID:    d.DisposedEventID,
		CreatedAt:          d.CreatedAt,
	}
}

// ToDomainAsset converts a model Asset to a domain Asset
func ToDomainAsset(m models.Asset) domain.Asset {
	return domain.Asset{
		AssetID:            m.AssetID,
		EntityID:           m.EntityID,
		EffectID:           m.EffectID,
		Name:               m.Name,
		AssetClass:         m.AssetClass,
		InitialValue:       m.InitialValue,
		UsefulLifeMonths:   m.UsefulLifeMonths,
		DepreciationMethod: domain.DepreciationMethod(m.DepreciationMethod),
		AcquisitionDate:    m.AcquisitionDate,
		DisposedEventID:    m.DisposedEventID,
		CreatedAt:          m.CreatedAt,
	}
}

// ToDomainAssetSlice converts a slice of model Assets to domain Assets
func ToDomainAssetSlice(ms []models.Asset) []domain.Asset {
	ds := make([]domain.Asset, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAsset(m)
	}
	return ds
}
