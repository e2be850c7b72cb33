package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Liability is the DB row for a tracked interest-bearing obligation.
type Liability struct {
	LiabilityID         string          `db:"liability_id"`
	EntityID            string          `db:"entity_id"`
	EffectID            string          `db:"effect_id"`
	Name                string          `db:"name"`
	Creditor            string          `db:"creditor"`
	Principal           decimal.Decimal `db:"principal"`
	AnnualInterestRate  decimal.Decimal `db:"annual_interest_rate"`
	InterestMethod      string          `db:"interest_method"`
	IncurrenceDate      time.Time       `db:"incurrence_date"`
	MaturityDate        *time.Time      `db:"maturity_date"`
	ExtinguishedEventID *string         `db:"extinguished_event_id"`
	CreatedAt           time.Time       `db:"created_at"`
}
