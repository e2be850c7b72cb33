package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InterestMethod selects the accrual strategy for a liability. Both strategies are
// first-class and separately testable; COMPOUND is the default when a caller does not
// choose.
type InterestMethod string

const (
	InterestCompound InterestMethod = "COMPOUND"
	InterestSimple   InterestMethod = "SIMPLE"
)

// ValidInterestMethod reports whether m is a known accrual strategy.
func ValidInterestMethod(m InterestMethod) bool {
	return m == InterestCompound || m == InterestSimple
}

// Liability is the satellite record behind a LIABILITY_INCURRED effect. Principal and
// rate are immutable; ExtinguishedEventID is set once, when a LIABILITY_SETTLED event
// brings the balance to zero.
type Liability struct {
	LiabilityID         string          `json:"liabilityID"`
	EntityID            string          `json:"entityID"`
	EffectID            string          `json:"effectID"` // originating LIABILITY effect
	Name                string          `json:"name"`
	Creditor            string          `json:"creditor"`
	Principal           decimal.Decimal `json:"principal"`
	AnnualInterestRate  decimal.Decimal `json:"annualInterestRate"` // 0.08 = 8% p.a.
	InterestMethod      InterestMethod  `json:"interestMethod"`
	IncurrenceDate      time.Time       `json:"incurrenceDate"`
	MaturityDate        *time.Time      `json:"maturityDate,omitempty"`
	ExtinguishedEventID *string         `json:"extinguishedEventID,omitempty"`
	CreatedAt           time.Time       `json:"createdAt"`
}

// Extinguished reports whether the liability has been fully settled.
func (l Liability) Extinguished() bool { return l.ExtinguishedEventID != nil }

// LiabilityValuation is a Liability with accrued interest, recomputed on read.
type LiabilityValuation struct {
	Liability       Liability       `json:"liability"`
	AccruedInterest decimal.Decimal `json:"accruedInterest"`
	Balance         decimal.Decimal `json:"balance"` // principal + accrued - repayments
	IsOverdue       bool            `json:"isOverdue"`
	AsOf            time.Time       `json:"asOf"`
}
