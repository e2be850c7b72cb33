package repositories

import (
	"context"

	"github.com/fynbos-apps/bookkeeper/internal/core/domain"
)

// EventSatellites are the records written in the same storage transaction as an
// event and its effects: recognition rows, a new asset or liability, and the one-shot
// disposal/extinguishment pointers. All fields are optional.
type EventSatellites struct {
	IncomeRecognitions  []domain.IncomeRecognition
	ExpenseRecognitions []domain.ExpenseRecognition
	Asset               *domain.Asset
	Liability           *domain.Liability

	// MarkAssetDisposed sets disposed_event_id on the named asset to the event being
	// written. MarkLiabilityExtinguished does the same for a liability.
	MarkAssetDisposed         string
	MarkLiabilityExtinguished string
}

// EventWriter is the only write path into the immutable log. SaveEvent persists the
// event, all its effects and any satellites as a single atomic unit; either all rows
// exist afterward or none do.
type EventWriter interface {
	SaveEvent(ctx context.Context, event domain.EconomicEvent, effects []domain.EventEffect, satellites EventSatellites) error
}

// EventReader defines read operations over the immutable log.
type EventReader interface {
	// FindEventByID retrieves a single event.
	FindEventByID(ctx context.Context, eventID string) (*domain.EconomicEvent, error)

	// FindEffectsByEventID retrieves the effects of one event.
	FindEffectsByEventID(ctx context.Context, eventID string) ([]domain.EventEffect, error)

	// ListEventsByEntity retrieves events for an entity, newest first.
	ListEventsByEntity(ctx context.Context, entityID string, limit, offset int) ([]domain.EconomicEvent, error)
}

// EventRepositoryFacade combines log reads and the single write path.
type EventRepositoryFacade interface {
	EventReader
	EventWriter
}
