package mapping

import (
	"github.com/fynbos-apps/bookkeeper/internal/core/domain"
	"github.com/fynbos-apps/bookkeeper/internal/models"
)

// ToModelLiability converts a domain Liability to a model Liability
func ToModelLiability(d domain.Liability) models.Liability {
	return models.Liability{
		LiabilityID:         d.LiabilityID,
		EntityID:            d.EntityID,
		EffectID:            d.EffectID,
		Name:                d.Name,
		Creditor:            d.Creditor,
		Principal:           d.Principal,
		AnnualInterestRate:  d.AnnualInterestRate,
		InterestMethod:      string(d.InterestMethod),
		IncurrenceDate:      d.IncurrenceDate,
		MaturityDate:        d.MaturityDate,
		ExtinguishedEventID: d.ExtinguishedEventID,
		CreatedAt:           d.CreatedAt,
	}
}

// ToDomainLiability converts a model Liability to a domain Liability
func ToDomainLiability(m models.Liability) domain.Liability {
	return domain.Liability{
		LiabilityID:         m.LiabilityID,
		EntityID:            m.EntityID,
		EffectID:            m.EffectID,
		Name:                m.Name,
		Creditor:            m.Creditor,
		Principal:           m.Principal,
		AnnualInterestRate:  m.AnnualInterestRate,
		InterestMethod:      domain.InterestMethod(m.InterestMethod),
		IncurrenceDate:      m.IncurrenceDate,
		MaturityDate:        m.MaturityDate,
		ExtinguishedEventID: m.ExtinguishedEventID,
		CreatedAt:           m.CreatedAt,
	}
}

// ToDomainLiabilitySlice converts a slice of model Liabilities to domain Liabilities
func ToDomainLiabilitySlice(ms []models.Liability) []domain.Liability {
	ds := make([]domain.Liability, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLiability(m)
	}
	return ds
}
