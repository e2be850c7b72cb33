package dto

import "github.com/fynbos-apps/bookkeeper/internal/core/domain"

// CreateEntityRequest creates a new organizational book.
type CreateEntityRequest struct {
	Name         string            `json:"name" binding:"required"`
	Kind         domain.EntityKind `json:"kind" binding:"required"`
	CurrencyCode string            `json:"currencyCode" binding:"required,len=3"`
	Jurisdiction string            `json:"jurisdiction" binding:"omitempty,len=2"`
}

// RenameEntityRequest changes an entity's display name, the only mutable field.
type RenameEntityRequest struct {
	Name string `json:"name" binding:"required"`
}
