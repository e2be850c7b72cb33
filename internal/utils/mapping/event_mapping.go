package mapping

import (
	"github.com/fynbos-apps/bookkeeper/internal/core/domain"
	"github.com/fynbos-apps/bookkeeper/internal/models"
)

// ToModelEconomicEvent converts a domain EconomicEvent to a model EconomicEvent
func ToModelEconomicEvent(d domain.EconomicEvent) models.EconomicEvent {
	return models.EconomicEvent{
		EventID:         d.EventID,
		OwnerUserID:     d.OwnerUserID,
		EntityID:        d.EntityID,
		EventType:       string(d.EventType),
		EventDate:       d.EventDate,
		Description:     d.Description,
		SourceReference: d.SourceReference,
		Jurisdiction:    d.Jurisdiction,
		CreatedAt:       d.CreatedAt,
		CreatedBy:       d.CreatedBy,
	}
}

// ToDomainEconomicEvent converts a model EconomicEvent to a domain EconomicEvent
func ToDomainEconomicEvent(m models.EconomicEvent) domain.EconomicEvent {
	return domain.EconomicEvent{
		EventID:         m.EventID,
		OwnerUserID:     m.OwnerUserID,
		EntityID:        m.EntityID,
		EventType:       domain.EventType(m.EventType),
		EventDate:       m.EventDate,
		Description:     m.Description,
		SourceReference: m.SourceReference,
		Jurisdiction:    m.Jurisdiction,
		CreatedAt:       m.CreatedAt,
		CreatedBy:       m.CreatedBy,
	}
}

// ToDomainEconomicEventSlice converts a slice of model events to domain events
func ToDomainEconomicEventSlice(ms []models.EconomicEvent) []domain.EconomicEvent {
	ds := make([]domain.EconomicEvent, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEconomicEvent(m)
	}
	return ds
}

// ToModelEventEffect converts a domain EventEffect to a model EventEffect
func ToModelEventEffect(d domain.EventEffect) models.EventEffect {
	return models.EventEffect{
		EffectID:        d.EffectID,
		EventID:         d.EventID,
		EffectType:      string(d.EffectType),
		Amount:          d.Amount,
		Sign:            d.Sign,
		CurrencyCode:    d.CurrencyCode,
		RelatedTable:    d.RelatedTable,
		RelatedRecordID: d.RelatedRecordID,
		CreatedAt:       d.CreatedAt,
	}
}

// ToDomainEventEffect converts a model EventEffect to a domain EventEffect
func ToDomainEventEffect(m models.EventEffect) domain.EventEffect {
	return domain.EventEffect{
		EffectID:        m.EffectID,
		EventID:         m.EventID,
		EffectType:      domain.EffectType(m.EffectType),
		Amount:          m.Amount,
		Sign:            m.Sign,
		CurrencyCode:    m.CurrencyCode,
		RelatedTable:    m.RelatedTable,
		RelatedRecordID: m.RelatedRecordID,
		CreatedAt:       m.CreatedAt,
	}
}

// ToDomainEventEffectSlice converts a slice of model effects to domain effects
func ToDomainEventEffectSlice(ms []models.EventEffect) []domain.EventEffect {
	ds := make([]domain.EventEffect, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEventEffect(m)
	}
	return ds
}
