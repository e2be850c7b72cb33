package dto

import (
	"time"

	"github.com/fynbos-apps/bookkeeper/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EffectInput is one signed monetary movement in a raw event recording request.
type EffectInput struct {
	EffectType   domain.EffectType `json:"effectType" binding:"required"`
	Amount       decimal.Decimal   `json:"amount" binding:"required"`
	Sign         int               `json:"sign" binding:"required,oneof=1 -1"`
	CurrencyCode string            `json:"currencyCode" binding:"omitempty,len=3"`
}

// RecordEventRequest is the raw, effects-supplied entry point into the recorder. Most
// callers use an archetype or a convenience endpoint instead.
type RecordEventRequest struct {
	EventType       domain.EventType `json:"eventType" binding:"required"`
	EventDate       time.Time        `json:"eventDate" binding:"required"`
	Description     string           `json:"description"`
	SourceReference string           `json:"sourceReference"`
	Effects         []EffectInput    `json:"effects" binding:"required,min=2,dive"`
}

// ArchetypeEventRequest records an event through a catalog archetype, which
// guarantees a balanced effect set without the caller reasoning about signs.
type ArchetypeEventRequest struct {
	Archetype   string          `json:"archetype" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	EventDate   time.Time       `json:"eventDate" binding:"required"`
	Description string          `json:"description"`
}

// VoidEventRequest records a reversing event against an existing one.
type VoidEventRequest struct {
	Reason string `json:"reason" binding:"required"`
}
