package accounting_test

import (
	"testing"
	"time"

	"github.com/fynbos-apps/bookkeeper/internal/core/accounting"
	"github.com/fynbos-apps/bookkeeper/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func approxEqual(t *testing.T, want float64, got decimal.Decimal, tolerance float64) {
	t.Helper()
	diff := got.Sub(decimal.NewFromFloat(want)).Abs()
	assert.True(t, diff.LessThan(decimal.NewFromFloat(tolerance)), "want ~%v got %s", want, got)
}

// Principal 1000 at 8% compound for one year accrues to a balance of about 1080.
func TestCompoundInterestOneYear(t *testing.T) {
	incurred := day(2024, time.June, 1)
	asOf := incurred.AddDate(1, 0, 0)
	principal := decimal.NewFromInt(1000)
	rate := decimal.NewFromFloat(0.08)

	accrued := accounting.AccruedInterest(principal, rate, domain.InterestCompound, incurred, asOf)
	approxEqual(t, 80, accrued, 0.5)

	balance := accounting.LiabilityBalance(principal, rate, domain.InterestCompound, incurred, asOf)
	approxEqual(t, 1080, balance, 0.5)
}

func TestSimpleInterest(t *testing.T) {
	incurred := day(2024, time.June, 1)
	asOf := incurred.AddDate(2, 0, 0)
	principal := decimal.NewFromInt(1000)
	rate := decimal.NewFromFloat(0.10)

	// Two years simple: 1000 * 0.10 * 2 = 200, within day-count rounding.
	accrued := accounting.AccruedInterest(principal, rate, domain.InterestSimple, incurred, asOf)
	approxEqual(t, 200, accrued, 1.0)
}

func TestSimpleAndCompoundDivergeOverTime(t *testing.T) {
	incurred := day(2020, time.January, 1)
	asOf := incurred.AddDate(5, 0, 0)
	principal := decimal.NewFromInt(1000)
	rate := decimal.NewFromFloat(0.10)

	simple := accounting.AccruedInterest(principal, rate, domain.InterestSimple, incurred, asOf)
	compound := accounting.AccruedInterest(principal, rate, domain.InterestCompound, incurred, asOf)
	assert.True(t, compound.GreaterThan(simple), "compound %s should exceed simple %s after 5y", compound, simple)
}

func TestAccruedInterestEdgeCases(t *testing.T) {
	incurred := day(2024, time.June, 1)

	t.Run("zero elapsed time", func(t *testing.T) {
		got := accounting.AccruedInterest(decimal.NewFromInt(1000), decimal.NewFromFloat(0.08), domain.InterestCompound, incurred, incurred)
		assert.True(t, got.IsZero())
	})

	t.Run("asOf before incurrence", func(t *testing.T) {
		got := accounting.AccruedInterest(decimal.NewFromInt(1000), decimal.NewFromFloat(0.08), domain.InterestCompound, incurred, incurred.AddDate(-1, 0, 0))
		assert.True(t, got.IsZero())
	})

	t.Run("zero rate", func(t *testing.T) {
		got := accounting.AccruedInterest(decimal.NewFromInt(1000), decimal.Zero, domain.InterestCompound, incurred, incurred.AddDate(1, 0, 0))
		assert.True(t, got.IsZero())
	})
}

func TestRemainingAfterPayment(t *testing.T) {
	balance := decimal.NewFromFloat(1080)

	assert.True(t, accounting.RemainingAfterPayment(balance, decimal.NewFromInt(500)).Equal(decimal.NewFromFloat(580)))
	assert.True(t, accounting.RemainingAfterPayment(balance, balance).IsZero())
	// Overpayment floors at zero rather than going negative.
	assert.True(t, accounting.RemainingAfterPayment(balance, decimal.NewFromInt(2000)).IsZero())
}

func TestIsOverdue(t *testing.T) {
	now := day(2025, time.June, 1)
	past := day(2025, time.January, 1)
	future := day(2026, time.January, 1)

	assert.False(t, accounting.IsOverdue(nil, now))
	assert.True(t, accounting.IsOverdue(&past, now))
	assert.False(t, accounting.IsOverdue(&future, now))
}

func TestValueLiability(t *testing.T) {
	incurred := day(2024, time.June, 1)
	l := domain.Liability{
		LiabilityID:        "l1",
		Principal:          decimal.NewFromInt(1000),
		AnnualInterestRate: decimal.NewFromFloat(0.08),
		InterestMethod:     domain.InterestCompound,
		IncurrenceDate:     incurred,
	}

	v := accounting.ValueLiability(l, decimal.Zero, incurred.AddDate(1, 0, 0))
	approxEqual(t, 1080, v.Balance, 0.5)
	assert.False(t, v.IsOverdue)

	paid := accounting.ValueLiability(l, v.Balance, incurred.AddDate(1, 0, 0))
	assert.True(t, paid.Balance.IsZero())
}
