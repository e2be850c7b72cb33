package accounting

import (
	"errors"
	"fmt"

	"github.com/fynbos-apps/bookkeeper/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	// ErrEventUnbalanced means the signed effect contributions do not net to zero
	// under the accounting identity.
	ErrEventUnbalanced = errors.New("event effects do not balance to zero")
	// ErrEventMinEffects means the event has fewer than two effects.
	ErrEventMinEffects = errors.New("event must have at least two effects")
)

// ValidateEventBalance checks the ledger's core correctness invariant over a set of
// effects, independent of which archetype (if any) produced them: at least two
// effects, every amount strictly positive, every sign legal, and the identity
// contributions (debit-normal axes positive, credit-normal negated) summing to zero.
func ValidateEventBalance(effects []domain.EventEffect) error {
	if len(effects) < 2 {
		return ErrEventMinEffects
	}

	sum := decimal.Zero
	for _, e := range effects {
		if !domain.ValidEffectType(e.EffectType) {
			return fmt.Errorf("unknown effect type %q", e.EffectType)
		}
		if e.Sign != domain.SignIncrease && e.Sign != domain.SignDecrease {
			return fmt.Errorf("effect sign must be +1 or -1, got %d", e.Sign)
		}
		if e.Amount.Sign() <= 0 {
			return fmt.Errorf("effect amount must be positive, got %s on %s", e.Amount.String(), e.EffectType)
		}
		sum = sum.Add(e.IdentityContribution())
	}

	if !sum.IsZero() {
		return fmt.Errorf("%w: net contribution is %s", ErrEventUnbalanced, sum.String())
	}
	return nil
}
