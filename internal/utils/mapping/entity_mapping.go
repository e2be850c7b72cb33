package mapping

import (
	"github.com/fynbos-apps/bookkeeper/internal/core/domain"
	"github.com/fynbos-apps/bookkeeper/internal/models"
)

// ToModelEntity converts a domain Entity to a model Entity
func ToModelEntity(d domain.Entity) models.Entity {
	return models.Entity{
		EntityID:      d.EntityID,
		OwnerUserID:   d.OwnerUserID,
		Name:          d.Name,
		Kind:          string(d.Kind),
		CurrencyCode:  d.CurrencyCode,
		Jurisdiction:  d.Jurisdiction,
		CreatedAt:     d.CreatedAt,
		CreatedBy:     d.CreatedBy,
		LastUpdatedAt: d.LastUpdatedAt,
		LastUpdatedBy: d.LastUpdatedBy,
	}
}

// ToDomainEntity converts a model Entity to a domain Entity
func ToDomainEntity(m models.Entity) domain.Entity {
	return domain.Entity{
		EntityID:     m.EntityID,
		OwnerUserID:  m.OwnerUserID,
		Name:         m.Name,
		Kind:         domain.EntityKind(m.Kind),
		CurrencyCode: m.CurrencyCode,
		Jurisdiction: m.Jurisdiction,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// ToDomainEntitySlice converts a slice of model Entities to domain Entities
func ToDomainEntitySlice(ms []models.Entity) []domain.Entity {
	ds := make([]domain.Entity, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEntity(m)
	}
	return ds
}
