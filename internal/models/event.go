package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EconomicEvent is the DB row for an append-only ledger event.
type EconomicEvent struct {
	EventID         string    `db:"event_id"`
	OwnerUserID     string    `db:"owner_user_id"`
	EntityID        string    `db:"entity_id"`
	EventType       string    `db:"event_type"`
	EventDate       time.Time `db:"event_date"`
	Description     string    `db:"description"`
	SourceReference string    `db:"source_reference"`
	Jurisdiction    string    `db:"jurisdiction"`
	CreatedAt       time.Time `db:"created_at"`
	CreatedBy       string    `db:"created_by"`
}

// EventEffect is the DB row for a single signed axis movement.
type EventEffect struct {
	EffectID        string          `db:"effect_id"`
	EventID         string          `db:"event_id"`
	EffectType      string          `db:"effect_type"`
	Amount          decimal.Decimal `db:"amount"`
	Sign            int             `db:"sign"`
	CurrencyCode    string          `db:"currency_code"`
	RelatedTable    string          `db:"related_table"`
	RelatedRecordID string          `db:"related_record_id"`
	CreatedAt       time.Time       `db:"created_at"`
}
