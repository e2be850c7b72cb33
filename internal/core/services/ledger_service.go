package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fynbos-apps/bookkeeper/internal/apperrors"
	"github.com/fynbos-apps/bookkeeper/internal/core/accounting"
	"github.com/fynbos-apps/bookkeeper/internal/core/domain"
	portsrepo "github.com/fynbos-apps/bookkeeper/internal/core/ports/repositories"
	portssvc "github.com/fynbos-apps/bookkeeper/internal/core/ports/services"
	"github.com/fynbos-apps/bookkeeper/internal/dto"
	"github.com/fynbos-apps/bookkeeper/internal/utils"
)

// ledgerService is the event recorder: the only write path into the immutable log.
type ledgerService struct {
	BaseService
	recorder
	entityRepo portsrepo.EntityReader
}

// LedgerServiceOption configures the ledger service.
type LedgerServiceOption func(*ledgerService)

// WithPublisher attaches the optional notification side-channel. The recorder works
// identically without one.
func WithPublisher(p portssvc.EventPublisher) LedgerServiceOption {
	return func(s *ledgerService) {
		s.publisher = p
	}
}

// NewLedgerService creates the event recorder service.
func NewLedgerService(eventRepo portsrepo.EventRepositoryFacade, entityRepo portsrepo.EntityReader, options ...LedgerServiceOption) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		recorder:   recorder{eventRepo: eventRepo},
		entityRepo: entityRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) RecordEconomicEvent(ctx context.Context, ownerUserID, entityID string, req dto.RecordEventRequest) (*domain.EconomicEvent, error) {
	if len(req.Effects) < 2 {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, accounting.ErrEventMinEffects)
	}

	entity, err := s.resolveOwnedEntity(ctx, s.entityRepo, ownerUserID, entityID)
	if err != nil {
		return nil, err
	}

	effects := make([]domain.EventEffect, len(req.Effects))
	for i, in := range req.Effects {
		effects[i] = domain.EventEffect{
			EffectType:   in.EffectType,
			Amount:       in.Amount,
			Sign:         in.Sign,
			CurrencyCode: in.CurrencyCode,
		}
	}

	event, _, err := s.record(ctx, entity, ownerUserID, eventSpec{
		eventType:       req.EventType,
		eventDate:       req.EventDate,
		description:     req.Description,
		sourceReference: req.SourceReference,
		effects:         effects,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to record economic event", slog.String("entity_id", entityID))
		return nil, err
	}
	s.LogInfo(ctx, "Economic event recorded",
		slog.String("event_id", event.EventID), slog.String("event_type", string(event.EventType)))
	return event, nil
}

func (s *ledgerService) RecordArchetypeEvent(ctx context.Context, ownerUserID, entityID string, req dto.ArchetypeEventRequest) (*domain.EconomicEvent, error) {
	entity, err := s.resolveOwnedEntity(ctx, s.entityRepo, ownerUserID, entityID)
	if err != nil {
		return nil, err
	}

	archetype, err := accounting.Lookup(accounting.ArchetypeCode(req.Archetype))
	if err != nil {
		return nil, err
	}
	effects, err := archetype.BuildEffects(req.Amount)
	if err != nil {
		return nil, err
	}

	event, _, err := s.record(ctx, entity, ownerUserID, eventSpec{
		eventType:   archetype.DefaultEventType,
		eventDate:   req.EventDate,
		description: req.Description,
		effects:     effects,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to record archetype event",
			slog.String("entity_id", entityID), slog.String("archetype", req.Archetype))
		return nil, err
	}
	return event, nil
}

func (s *ledgerService) AddIncome(ctx context.Context, ownerUserID, entityID string, req dto.AddIncomeRequest) (*domain.EconomicEvent, error) {
	entity, err := s.resolveOwnedEntity(ctx, s.entityRepo, ownerUserID, entityID)
	if err != nil {
		return nil, err
	}
	if req.AmountNet.Sign() <= 0 {
		return nil, fmt.Errorf("%w: income amount must be positive", apperrors.ErrValidation)
	}

	code := accounting.CashSale
	if req.OnCredit {
		code = accounting.CreditSale
	}
	archetype, err := accounting.Lookup(code)
	if err != nil {
		return nil, err
	}
	effects, err := archetype.BuildEffects(req.AmountNet)
	if err != nil {
		return nil, err
	}

	gross := req.AmountGross
	if gross.Sign() <= 0 {
		gross = req.AmountNet
	}
	treatment := req.TaxTreatment
	if treatment == "" {
		treatment = domain.TaxTaxable
	}

	// The recognition satellite hangs off the INCOME effect, so that effect needs
	// its ID before the atomic write.
	recognition := domain.IncomeRecognition{
		RecognitionID: utils.NewRecordID(),
		TaxTreatment:  treatment,
		IncomeClass:   req.IncomeClass,
		Counterparty:  req.Counterparty,
		AmountGross:   gross,
		AmountNet:     req.AmountNet,
	}
	for i := range effects {
		if effects[i].EffectType == domain.EffectIncome {
			effects[i].EffectID = utils.NewEventID()
			effects[i].RelatedTable = "income_recognitions"
			effects[i].RelatedRecordID = recognition.RecognitionID
			recognition.EffectID = effects[i].EffectID
		}
	}

	event, _, err := s.record(ctx, entity, ownerUserID, eventSpec{
		eventType:   domain.RevenueEarned,
		eventDate:   req.EventDate,
		description: req.Description,
		effects:     effects,
		satellites:  portsrepo.EventSatellites{IncomeRecognitions: []domain.IncomeRecognition{recognition}},
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to add income", slog.String("entity_id", entityID))
		return nil, err
	}
	s.LogInfo(ctx, "Income recorded",
		slog.String("event_id", event.EventID), slog.String("income_class", string(req.IncomeClass)))
	return event, nil
}

func (s *ledgerService) AddExpense(ctx context.Context, ownerUserID, entityID string, req dto.AddExpenseRequest) (*domain.EconomicEvent, error) {
	entity, err := s.resolveOwnedEntity(ctx, s.entityRepo, ownerUserID, entityID)
	if err != nil {
		return nil, err
	}
	if req.Amount.Sign() <= 0 {
		return nil, fmt.Errorf("%w: expense amount must be positive", apperrors.ErrValidation)
	}

	code := accounting.CashExpense
	if req.OnCredit {
		code = accounting.CreditExpense
	}
	archetype, err := accounting.Lookup(code)
	if err != nil {
		return nil, err
	}
	effects, err := archetype.BuildEffects(req.Amount)
	if err != nil {
		return nil, err
	}

	recognition := domain.ExpenseRecognition{
		RecognitionID:   utils.NewRecordID(),
		Deductible:      req.Deductible,
		ExpenseCategory: req.Category,
		Supplier:        req.Supplier,
		Amount:          req.Amount,
	}
	for i := range effects {
		if effects[i].EffectType == domain.EffectExpense {
			effects[i].EffectID = utils.NewEventID()
			effects[i].RelatedTable = "expense_recognitions"
			effects[i].RelatedRecordID = recognition.RecognitionID
			recognition.EffectID = effects[i].EffectID
		}
	}

	event, _, err := s.record(ctx, entity, ownerUserID, eventSpec{
		eventType:   domain.ExpenseIncurred,
		eventDate:   req.EventDate,
		description: req.Description,
		effects:     effects,
		satellites:  portsrepo.EventSatellites{ExpenseRecognitions: []domain.ExpenseRecognition{recognition}},
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to add expense", slog.String("entity_id", entityID))
		return nil, err
	}
	return event, nil
}

// voidEvent records the reversing event for an original. The original row is never
// touched; the reversing event mirrors its effects and points back through
// SourceReference.
func (s *ledgerService) voidEvent(ctx context.Context, ownerUserID, eventID, reason string, wantType, reversalType domain.EventType) (*domain.EconomicEvent, error) {
	if reason == "" {
		return nil, fmt.Errorf("%w: void reason is required", apperrors.ErrValidation)
	}

	original, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if original.OwnerUserID != ownerUserID {
		return nil, fmt.Errorf("%w: event %s is not owned by caller", apperrors.ErrForbidden, eventID)
	}
	if original.EventType != wantType {
		return nil, fmt.Errorf("%w: event %s is %s, not %s", apperrors.ErrValidation, eventID, original.EventType, wantType)
	}

	entity, err := s.resolveOwnedEntity(ctx, s.entityRepo, ownerUserID, original.EntityID)
	if err != nil {
		return nil, err
	}

	originalEffects, err := s.eventRepo.FindEffectsByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	event, _, err := s.record(ctx, entity, ownerUserID, eventSpec{
		eventType:       reversalType,
		eventDate:       original.EventDate,
		description:     "VOID: " + reason,
		sourceReference: original.EventID,
		effects:         accounting.ReverseEffects(originalEffects),
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to void event", slog.String("original_event_id", eventID))
		return nil, err
	}
	s.LogInfo(ctx, "Event voided by reversal",
		slog.String("original_event_id", eventID), slog.String("reversing_event_id", event.EventID))
	return event, nil
}

func (s *ledgerService) VoidIncome(ctx context.Context, ownerUserID, eventID, reason string) (*domain.EconomicEvent, error) {
	return s.voidEvent(ctx, ownerUserID, eventID, reason, domain.RevenueEarned, domain.RevenueDeferred)
}

func (s *ledgerService) VoidExpense(ctx context.Context, ownerUserID, eventID, reason string) (*domain.EconomicEvent, error) {
	return s.voidEvent(ctx, ownerUserID, eventID, reason, domain.ExpenseIncurred, domain.ExpenseReversed)
}

func (s *ledgerService) GetEvent(ctx context.Context, ownerUserID, eventID string) (*domain.EconomicEvent, []domain.EventEffect, error) {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, nil, err
	}
	if event.OwnerUserID != ownerUserID {
		return nil, nil, fmt.Errorf("%w: event %s is not owned by caller", apperrors.ErrForbidden, eventID)
	}
	effects, err := s.eventRepo.FindEffectsByEventID(ctx, eventID)
	if err != nil {
		return nil, nil, err
	}
	return event, effects, nil
}

func (s *ledgerService) ListEvents(ctx context.Context, ownerUserID, entityID string, limit, offset int) ([]domain.EconomicEvent, error) {
	if _, err := s.resolveOwnedEntity(ctx, s.entityRepo, ownerUserID, entityID); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.eventRepo.ListEventsByEntity(ctx, entityID, limit, offset)
}
