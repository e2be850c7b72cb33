package accounting

import (
	"math"
	"time"

	"github.com/fynbos-apps/bookkeeper/internal/core/domain"
	"github.com/shopspring/decimal"
)

// daysPerYear uses the astronomical year so multi-year accruals do not drift across
// leap years.
const daysPerYear = 365.25

// YearsElapsed returns the fractional years between two instants, never negative.
func YearsElapsed(from, to time.Time) float64 {
	days := to.Sub(from).Hours() / 24
	if days < 0 {
		return 0
	}
	return days / daysPerYear
}

// AccruedInterest is a pure function of a liability's immutable facts and a valuation
// date. COMPOUND: P*(1+r)^y - P. SIMPLE: P*r*y. Both strategies are first-class;
// callers that do not choose get COMPOUND.
func AccruedInterest(principal, annualRate decimal.Decimal, method domain.InterestMethod, incurrenceDate, asOf time.Time) decimal.Decimal {
	if principal.Sign() <= 0 || annualRate.Sign() <= 0 {
		return decimal.Zero
	}
	years := YearsElapsed(incurrenceDate, asOf)
	if years == 0 {
		return decimal.Zero
	}

	switch method {
	case domain.InterestSimple:
		return principal.Mul(annualRate).Mul(decimal.NewFromFloat(years))
	default: // COMPOUND
		rate, _ := annualRate.Float64()
		growth := math.Pow(1+rate, years) - 1
		return principal.Mul(decimal.NewFromFloat(growth))
	}
}

// LiabilityBalance is principal plus accrued interest as of a date.
func LiabilityBalance(principal, annualRate decimal.Decimal, method domain.InterestMethod, incurrenceDate, asOf time.Time) decimal.Decimal {
	return principal.Add(AccruedInterest(principal, annualRate, method, incurrenceDate, asOf))
}

// RemainingAfterPayment applies a payment against a balance, floored at zero. A zero
// remainder is the trigger for marking the liability extinguished.
func RemainingAfterPayment(balance, payment decimal.Decimal) decimal.Decimal {
	remaining := balance.Sub(payment)
	if remaining.Sign() < 0 {
		return decimal.Zero
	}
	return remaining
}

// IsOverdue reports whether a maturity date is set and in the past.
func IsOverdue(maturity *time.Time, asOf time.Time) bool {
	return maturity != nil && maturity.Before(asOf)
}

// ValueLiability bundles accrual into a LiabilityValuation. Repayments already made
// against the liability are passed in as a positive magnitude and reduce the balance.
func ValueLiability(l domain.Liability, repaid decimal.Decimal, asOf time.Time) domain.LiabilityValuation {
	accrued := AccruedInterest(l.Principal, l.AnnualInterestRate, l.InterestMethod, l.IncurrenceDate, asOf)
	balance := RemainingAfterPayment(l.Principal.Add(accrued), repaid)
	return domain.LiabilityValuation{
		Liability:       l,
		AccruedInterest: accrued,
		Balance:         balance,
		IsOverdue:       IsOverdue(l.MaturityDate, asOf),
		AsOf:            asOf,
	}
}
