// Package accounting holds the pure ledger rules: effect construction, the archetype
// catalog, the balance rule, and the time-based valuation engines. Nothing in this
// package touches storage.
package accounting

import (
	"fmt"

	"github.com/fynbos-apps/bookkeeper/internal/apperrors"
	"github.com/fynbos-apps/bookkeeper/internal/core/domain"
	"github.com/shopspring/decimal"
)

// The sign convention is fixed per axis and documented once: sign +1 always means the
// axis increased. Historical sources disagreed on whether recognized income is +1 or
// -1; this codebase uses +1, and the balance rule in balance.go accounts for the
// debit/credit side instead of overloading the sign.

func newEffect(t domain.EffectType, amount decimal.Decimal, sign int) (domain.EventEffect, error) {
	if amount.Sign() <= 0 {
		return domain.EventEffect{}, fmt.Errorf("%w: effect amount must be positive, got %s", apperrors.ErrValidation, amount.String())
	}
	return domain.EventEffect{EffectType: t, Amount: amount, Sign: sign}, nil
}

// CashIncrease builds a +CASH effect. Amount must be strictly positive.
func CashIncrease(amount decimal.Decimal) (domain.EventEffect, error) {
	return newEffect(domain.EffectCash, amount, domain.SignIncrease)
}

// CashDecrease builds a -CASH effect.
func CashDecrease(amount decimal.Decimal) (domain.EventEffect, error) {
	return newEffect(domain.EffectCash, amount, domain.SignDecrease)
}

// AssetIncrease builds a +ASSET effect.
func AssetIncrease(amount decimal.Decimal) (domain.EventEffect, error) {
	return newEffect(domain.EffectAsset, amount, domain.SignIncrease)
}

// AssetDecrease builds a -ASSET effect.
func AssetDecrease(amount decimal.Decimal) (domain.EventEffect, error) {
	return newEffect(domain.EffectAsset, amount, domain.SignDecrease)
}

// LiabilityIncrease builds a +LIABILITY effect.
func LiabilityIncrease(amount decimal.Decimal) (domain.EventEffect, error) {
	return newEffect(domain.EffectLiability, amount, domain.SignIncrease)
}

// LiabilityDecrease builds a -LIABILITY effect.
func LiabilityDecrease(amount decimal.Decimal) (domain.EventEffect, error) {
	return newEffect(domain.EffectLiability, amount, domain.SignDecrease)
}

// IncomeRecognized builds a +INCOME effect.
func IncomeRecognized(amount decimal.Decimal) (domain.EventEffect, error) {
	return newEffect(domain.EffectIncome, amount, domain.SignIncrease)
}

// IncomeReversed builds a -INCOME effect, used by reversing events.
func IncomeReversed(amount decimal.Decimal) (domain.EventEffect, error) {
	return newEffect(domain.EffectIncome, amount, domain.SignDecrease)
}

// ExpenseRecognized builds a +EXPENSE effect.
func ExpenseRecognized(amount decimal.Decimal) (domain.EventEffect, error) {
	return newEffect(domain.EffectExpense, amount, domain.SignIncrease)
}

// ExpenseReversed builds a -EXPENSE effect, used by reversing events.
func ExpenseReversed(amount decimal.Decimal) (domain.EventEffect, error) {
	return newEffect(domain.EffectExpense, amount, domain.SignDecrease)
}

// EquityIncrease builds a +EQUITY effect.
func EquityIncrease(amount decimal.Decimal) (domain.EventEffect, error) {
	return newEffect(domain.EffectEquity, amount, domain.SignIncrease)
}

// EquityDecrease builds a -EQUITY effect.
func EquityDecrease(amount decimal.Decimal) (domain.EventEffect, error) {
	return newEffect(domain.EffectEquity, amount, domain.SignDecrease)
}

// ReverseEffects mirrors a set of effects by flipping every sign. The mirrored set of
// a balanced event is itself balanced, which is what makes reversing events the only
// corrective mechanism the ledger needs.
func ReverseEffects(effects []domain.EventEffect) []domain.EventEffect {
	reversed := make([]domain.EventEffect, len(effects))
	for i, e := range effects {
		reversed[i] = domain.EventEffect{
			EffectType:   e.EffectType,
			Amount:       e.Amount,
			Sign:         -e.Sign,
			CurrencyCode: e.CurrencyCode,
		}
	}
	return reversed
}
