package services

import (
	"context"
	"time"

	"github.com/fynbos-apps/bookkeeper/internal/core/domain"
	"github.com/fynbos-apps/bookkeeper/internal/dto"
)

// LiabilitySvcFacade manages liability satellites. Incurrence and payments run
// through the event recorder; accrued interest is recomputed on read.
type LiabilitySvcFacade interface {
	IncurLiability(ctx context.Context, ownerUserID, entityID string, req dto.IncurLiabilityRequest) (*domain.Liability, error)
	GetLiabilityValuation(ctx context.Context, ownerUserID, liabilityID string, asOf time.Time) (*domain.LiabilityValuation, error)
	ListLiabilityValuations(ctx context.Context, ownerUserID, entityID string, asOf time.Time, includeExtinguished bool) ([]domain.LiabilityValuation, error)

	// RecordPayment records a LIABILITY_SETTLED event for the payment; when the
	// remaining balance reaches zero the liability is marked extinguished in the
	// same logical operation. Returns the post-payment valuation.
	RecordPayment(ctx context.Context, ownerUserID, liabilityID string, req dto.LiabilityPaymentRequest) (*domain.LiabilityValuation, error)
}
