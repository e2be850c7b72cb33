package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EffectType is the accounting axis a monetary movement lands on.
type EffectType string

const (
	EffectCash      EffectType = "CASH"
	EffectAsset     EffectType = "ASSET"
	EffectLiability EffectType = "LIABILITY"
	EffectIncome    EffectType = "INCOME"
	EffectExpense   EffectType = "EXPENSE"
	EffectEquity    EffectType = "EQUITY"
)

// ValidEffectType reports whether t is one of the six accounting axes.
func ValidEffectType(t EffectType) bool {
	switch t {
	case EffectCash, EffectAsset, EffectLiability, EffectIncome, EffectExpense, EffectEquity:
		return true
	}
	return false
}

// DebitNormal reports whether the axis increases on the debit side of the identity.
// CASH, ASSET and EXPENSE are debit-normal; LIABILITY, INCOME and EQUITY are
// credit-normal.
func (t EffectType) DebitNormal() bool {
	switch t {
	case EffectCash, EffectAsset, EffectExpense:
		return true
	}
	return false
}

// SignIncrease and SignDecrease are the only legal effect signs. The convention is
// fixed per axis: +1 always means "this axis grew". Income recognized is therefore
// INCOME with sign +1, regardless of which side of the identity it credits.
const (
	SignIncrease = 1
	SignDecrease = -1
)

// EventEffect is one immutable signed monetary movement attached to exactly one
// EconomicEvent. Amount is always a non-negative magnitude; Sign carries direction.
type EventEffect struct {
	EffectID        string          `json:"effectID"`
	EventID         string          `json:"eventID"`
	EffectType      EffectType      `json:"effectType"`
	Amount          decimal.Decimal `json:"amount"` // magnitude, >= 0
	Sign            int             `json:"sign"`   // +1 or -1
	CurrencyCode    string          `json:"currencyCode"`
	RelatedTable    string          `json:"relatedTable,omitempty"` // satellite back-reference
	RelatedRecordID string          `json:"relatedRecordID,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// SignedAmount returns amount*sign, the movement on the axis.
func (e EventEffect) SignedAmount() decimal.Decimal {
	if e.Sign < 0 {
		return e.Amount.Neg()
	}
	return e.Amount
}

// IdentityContribution returns the effect's contribution to the accounting identity:
// debit-normal axes contribute +amount*sign, credit-normal axes -amount*sign. A
// balanced event's contributions sum to zero.
func (e EventEffect) IdentityContribution() decimal.Decimal {
	v := e.SignedAmount()
	if e.EffectType.DebitNormal() {
		return v
	}
	return v.Neg()
}
