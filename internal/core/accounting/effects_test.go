package accounting_test

import (
	"testing"

	"github.com/fynbos-apps/bookkeeper/internal/apperrors"
	"github.com/fynbos-apps/bookkeeper/internal/core/accounting"
	"github.com/fynbos-apps/bookkeeper/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectBuilders(t *testing.T) {
	amount := decimal.NewFromFloat(250.50)

	tests := []struct {
		name     string
		build    func(decimal.Decimal) (domain.EventEffect, error)
		wantType domain.EffectType
		wantSign int
	}{
		{"cash increase", accounting.CashIncrease, domain.EffectCash, domain.SignIncrease},
		{"cash decrease", accounting.CashDecrease, domain.EffectCash, domain.SignDecrease},
		{"asset increase", accounting.AssetIncrease, domain.EffectAsset, domain.SignIncrease},
		{"asset decrease", accounting.AssetDecrease, domain.EffectAsset, domain.SignDecrease},
		{"liability increase", accounting.LiabilityIncrease, domain.EffectLiability, domain.SignIncrease},
		{"liability decrease", accounting.LiabilityDecrease, domain.EffectLiability, domain.SignDecrease},
		{"income recognized", accounting.IncomeRecognized, domain.EffectIncome, domain.SignIncrease},
		{"income reversed", accounting.IncomeReversed, domain.EffectIncome, domain.SignDecrease},
		{"expense recognized", accounting.ExpenseRecognized, domain.EffectExpense, domain.SignIncrease},
		{"expense reversed", accounting.ExpenseReversed, domain.EffectExpense, domain.SignDecrease},
		{"equity increase", accounting.EquityIncrease, domain.EffectEquity, domain.SignIncrease},
		{"equity decrease", accounting.EquityDecrease, domain.EffectEquity, domain.SignDecrease},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := tt.build(amount)
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, e.EffectType)
			assert.Equal(t, tt.wantSign, e.Sign)
			assert.True(t, e.Amount.Equal(amount))
		})
	}
}

func TestEffectBuildersRejectNonPositive(t *testing.T) {
	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-1)} {
		_, err := accounting.CashIncrease(amount)
		assert.ErrorIs(t, err, apperrors.ErrValidation, "amount %s", amount)
	}
}

func TestSignedAmount(t *testing.T) {
	inc, _ := accounting.CashIncrease(decimal.NewFromInt(10))
	dec, _ := accounting.CashDecrease(decimal.NewFromInt(10))

	assert.True(t, inc.SignedAmount().Equal(decimal.NewFromInt(10)))
	assert.True(t, dec.SignedAmount().Equal(decimal.NewFromInt(-10)))
}

func TestIdentityContribution(t *testing.T) {
	// Debit-normal axes carry their signed amount through; credit-normal negate it.
	income, _ := accounting.IncomeRecognized(decimal.NewFromInt(10))
	cash, _ := accounting.CashIncrease(decimal.NewFromInt(10))

	assert.True(t, cash.IdentityContribution().Equal(decimal.NewFromInt(10)))
	assert.True(t, income.IdentityContribution().Equal(decimal.NewFromInt(-10)))
	assert.True(t, cash.IdentityContribution().Add(income.IdentityContribution()).IsZero())
}
