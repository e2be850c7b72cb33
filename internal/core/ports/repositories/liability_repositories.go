package repositories

import (
	"context"

	"github.com/fynbos-apps/bookkeeper/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LiabilityReader defines read operations for liability satellites. Liabilities are
// only ever written through EventWriter.SaveEvent.
type LiabilityReader interface {
	// FindLiabilityByID retrieves one liability record.
	FindLiabilityByID(ctx context.Context, liabilityID string) (*domain.Liability, error)

	// ListLiabilitiesByEntity retrieves an entity's liabilities, optionally
	// including extinguished ones.
	ListLiabilitiesByEntity(ctx context.Context, entityID string, includeExtinguished bool) ([]domain.Liability, error)

	// SumRepayments returns the total magnitude of LIABILITY-decrease effects that
	// reference the liability, i.e. how much has already been paid against it.
	SumRepayments(ctx context.Context, liabilityID string) (decimal.Decimal, error)
}

// LiabilityRepositoryFacade is the liability repository surface.
type LiabilityRepositoryFacade interface {
	LiabilityReader
}
