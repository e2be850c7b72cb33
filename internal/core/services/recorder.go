package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fynbos-apps/bookkeeper/internal/apperrors"
	"github.com/fynbos-apps/bookkeeper/internal/core/accounting"
	"github.com/fynbos-apps/bookkeeper/internal/core/domain"
	portsrepo "github.com/fynbos-apps/bookkeeper/internal/core/ports/repositories"
	portssvc "github.com/fynbos-apps/bookkeeper/internal/core/ports/services"
	"github.com/fynbos-apps/bookkeeper/internal/platform/metrics"
	"github.com/fynbos-apps/bookkeeper/internal/utils"
)

// recorder is the shared write path behind the ledger, asset and liability services.
// Every recording runs the same pipeline: validate, persist atomically, notify.
type recorder struct {
	eventRepo portsrepo.EventRepositoryFacade
	publisher portssvc.EventPublisher // nil means no notification side-channel
}

// eventSpec describes one event to be recorded. Effects may arrive with pre-assigned
// IDs when a satellite needs to reference a specific effect; any effect without an ID
// gets one here.
type eventSpec struct {
	eventType       domain.EventType
	eventDate       time.Time
	description     string
	sourceReference string
	effects         []domain.EventEffect
	satellites      portsrepo.EventSatellites
}

// record validates the spec against the ledger's invariants, persists the event with
// its effects and satellites as one atomic unit, and fires the completion
// notification. Validation failures are rejected before any write is attempted.
func (r *recorder) record(ctx context.Context, entity *domain.Entity, actorUserID string, spec eventSpec) (*domain.EconomicEvent, []domain.EventEffect, error) {
	if !domain.ValidEventType(spec.eventType) {
		metrics.EventRejected("unknown_event_type")
		return nil, nil, fmt.Errorf("%w: unknown event type %q", apperrors.ErrValidation, spec.eventType)
	}
	if spec.eventDate.IsZero() {
		metrics.EventRejected("missing_event_date")
		return nil, nil, fmt.Errorf("%w: event date is required", apperrors.ErrValidation)
	}
	if err := accounting.ValidateEventBalance(spec.effects); err != nil {
		metrics.EventRejected("unbalanced")
		return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	now := time.Now().UTC()
	event := domain.EconomicEvent{
		EventID:         utils.NewEventID(),
		OwnerUserID:     entity.OwnerUserID,
		EntityID:        entity.EntityID,
		EventType:       spec.eventType,
		EventDate:       spec.eventDate,
		Description:     spec.description,
		SourceReference: spec.sourceReference,
		Jurisdiction:    entity.Jurisdiction,
		CreatedAt:       now,
		CreatedBy:       actorUserID,
	}

	effects := make([]domain.EventEffect, len(spec.effects))
	for i, e := range spec.effects {
		if e.EffectID == "" {
			e.EffectID = utils.NewEventID()
		}
		e.EventID = event.EventID
		if e.CurrencyCode == "" {
			e.CurrencyCode = entity.CurrencyCode
		}
		e.CreatedAt = now
		effects[i] = e
	}

	// Satellite rows share the event's timestamp so the atomic unit reads as one
	// moment in the log.
	for i := range spec.satellites.IncomeRecognitions {
		spec.satellites.IncomeRecognitions[i].CreatedAt = now
	}
	for i := range spec.satellites.ExpenseRecognitions {
		spec.satellites.ExpenseRecognitions[i].CreatedAt = now
	}
	if spec.satellites.Asset != nil {
		spec.satellites.Asset.CreatedAt = now
	}
	if spec.satellites.Liability != nil {
		spec.satellites.Liability.CreatedAt = now
	}

	if err := r.eventRepo.SaveEvent(ctx, event, effects, spec.satellites); err != nil {
		// The repository guarantees nothing partial was committed, so callers may
		// retry verbatim.
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrPersistence, appErr.Message)
		}
		return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrPersistence, err)
	}

	metrics.EventRecorded(string(event.EventType))
	if r.publisher != nil {
		r.publisher.Publish(ctx, portssvc.LedgerNotification{
			EntityID:   event.EntityID,
			EventID:    event.EventID,
			EventType:  event.EventType,
			OccurredAt: now,
		})
	}
	return &event, effects, nil
}
