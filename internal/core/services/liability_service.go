package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fynbos-apps/bookkeeper/internal/apperrors"
	"github.com/fynbos-apps/bookkeeper/internal/core/accounting"
	"github.com/fynbos-apps/bookkeeper/internal/core/domain"
	portsrepo "github.com/fynbos-apps/bookkeeper/internal/core/ports/repositories"
	portssvc "github.com/fynbos-apps/bookkeeper/internal/core/ports/services"
	"github.com/fynbos-apps/bookkeeper/internal/dto"
	"github.com/fynbos-apps/bookkeeper/internal/utils"
)

// liabilityService manages liability satellites on top of the shared recorder.
// Interest accrues purely as a function of time; repayments are read back off the
// effect log, never stored as a running total.
type liabilityService struct {
	BaseService
	recorder
	entityRepo    portsrepo.EntityReader
	liabilityRepo portsrepo.LiabilityRepositoryFacade
}

// LiabilityServiceOption configures the liability service.
type LiabilityServiceOption func(*liabilityService)

// WithLiabilityPublisher attaches the notification side-channel.
func WithLiabilityPublisher(p portssvc.EventPublisher) LiabilityServiceOption {
	return func(s *liabilityService) {
		s.publisher = p
	}
}

// NewLiabilityService creates the liability service.
func NewLiabilityService(eventRepo portsrepo.EventRepositoryFacade, entityRepo portsrepo.EntityReader, liabilityRepo portsrepo.LiabilityRepositoryFacade, options ...LiabilityServiceOption) portssvc.LiabilitySvcFacade {
	svc := &liabilityService{
		recorder:      recorder{eventRepo: eventRepo},
		entityRepo:    entityRepo,
		liabilityRepo: liabilityRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.LiabilitySvcFacade = (*liabilityService)(nil)

func (s *liabilityService) IncurLiability(ctx context.Context, ownerUserID, entityID string, req dto.IncurLiabilityRequest) (*domain.Liability, error) {
	entity, err := s.resolveOwnedEntity(ctx, s.entityRepo, ownerUserID, entityID)
	if err != nil {
		return nil, err
	}
	if req.Principal.Sign() <= 0 {
		return nil, fmt.Errorf("%w: liability principal must be positive", apperrors.ErrValidation)
	}
	if req.AnnualInterestRate.Sign() < 0 {
		return nil, fmt.Errorf("%w: interest rate cannot be negative", apperrors.ErrValidation)
	}
	method := req.InterestMethod
	if method == "" {
		method = domain.InterestCompound
	}
	if !domain.ValidInterestMethod(method) {
		return nil, fmt.Errorf("%w: unknown interest method %q", apperrors.ErrValidation, method)
	}

	archetype, err := accounting.Lookup(accounting.LoanReceived)
	if err != nil {
		return nil, err
	}
	effects, err := archetype.BuildEffects(req.Principal)
	if err != nil {
		return nil, err
	}

	liability := domain.Liability{
		LiabilityID:        utils.NewRecordID(),
		EntityID:           entity.EntityID,
		Name:               req.Name,
		Creditor:           req.Creditor,
		Principal:          req.Principal,
		AnnualInterestRate: req.AnnualInterestRate,
		InterestMethod:     method,
		IncurrenceDate:     req.IncurrenceDate,
		MaturityDate:       req.MaturityDate,
	}
	for i := range effects {
		if effects[i].EffectType == domain.EffectLiability {
			effects[i].EffectID = utils.NewEventID()
			effects[i].RelatedTable = "liabilities"
			effects[i].RelatedRecordID = liability.LiabilityID
			liability.EffectID = effects[i].EffectID
		}
	}

	_, _, err = s.record(ctx, entity, ownerUserID, eventSpec{
		eventType:   domain.LiabilityIncurred,
		eventDate:   req.IncurrenceDate,
		description: req.Description,
		effects:     effects,
		satellites:  portsrepo.EventSatellites{Liability: &liability},
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to incur liability", slog.String("entity_id", entityID))
		return nil, err
	}
	s.LogInfo(ctx, "Liability incurred",
		slog.String("liability_id", liability.LiabilityID), slog.String("method", string(method)))
	return &liability, nil
}

func (s *liabilityService) GetLiabilityValuation(ctx context.Context, ownerUserID, liabilityID string, asOf time.Time) (*domain.LiabilityValuation, error) {
	liability, err := s.ownedLiability(ctx, ownerUserID, liabilityID)
	if err != nil {
		return nil, err
	}
	return s.value(ctx, liability, asOf)
}

func (s *liabilityService) ListLiabilityValuations(ctx context.Context, ownerUserID, entityID string, asOf time.Time, includeExtinguished bool) ([]domain.LiabilityValuation, error) {
	if _, err := s.resolveOwnedEntity(ctx, s.entityRepo, ownerUserID, entityID); err != nil {
		return nil, err
	}

	liabilities, err := s.liabilityRepo.ListLiabilitiesByEntity(ctx, entityID, includeExtinguished)
	if err != nil {
		return nil, err
	}
	valuations := make([]domain.LiabilityValuation, 0, len(liabilities))
	for i := range liabilities {
		v, err := s.value(ctx, &liabilities[i], asOf)
		if err != nil {
			return nil, err
		}
		valuations = append(valuations, *v)
	}
	return valuations, nil
}

func (s *liabilityService) RecordPayment(ctx context.Context, ownerUserID, liabilityID string, req dto.LiabilityPaymentRequest) (*domain.LiabilityValuation, error) {
	liability, err := s.ownedLiability(ctx, ownerUserID, liabilityID)
	if err != nil {
		return nil, err
	}
	if liability.Extinguished() {
		return nil, fmt.Errorf("%w: liability %s is already extinguished", apperrors.ErrValidation, liabilityID)
	}
	if req.Amount.Sign() <= 0 {
		return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}

	entity, err := s.resolveOwnedEntity(ctx, s.entityRepo, ownerUserID, liability.EntityID)
	if err != nil {
		return nil, err
	}

	before, err := s.value(ctx, liability, req.EventDate)
	if err != nil {
		return nil, err
	}
	remaining := accounting.RemainingAfterPayment(before.Balance, req.Amount)

	archetype, err := accounting.Lookup(accounting.LoanRepayment)
	if err != nil {
		return nil, err
	}
	effects, err := archetype.BuildEffects(req.Amount)
	if err != nil {
		return nil, err
	}
	// Tag the liability-side effect so repayments can be summed back off the log.
	for i := range effects {
		if effects[i].EffectType == domain.EffectLiability {
			effects[i].RelatedTable = "liabilities"
			effects[i].RelatedRecordID = liability.LiabilityID
		}
	}

	satellites := portsrepo.EventSatellites{}
	if remaining.IsZero() {
		// Full settlement extinguishes the liability in the same atomic operation.
		satellites.MarkLiabilityExtinguished = liability.LiabilityID
	}

	event, _, err := s.record(ctx, entity, ownerUserID, eventSpec{
		eventType:       domain.LiabilitySettled,
		eventDate:       req.EventDate,
		description:     req.Description,
		sourceReference: liability.LiabilityID,
		effects:         effects,
		satellites:      satellites,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to record liability payment", slog.String("liability_id", liabilityID))
		return nil, err
	}

	if remaining.IsZero() {
		eventID := event.EventID
		liability.ExtinguishedEventID = &eventID
		s.LogInfo(ctx, "Liability extinguished",
			slog.String("liability_id", liabilityID), slog.String("event_id", event.EventID))
	}

	after := domain.LiabilityValuation{
		Liability:       *liability,
		AccruedInterest: before.AccruedInterest,
		Balance:         remaining,
		IsOverdue:       accounting.IsOverdue(liability.MaturityDate, req.EventDate),
		AsOf:            req.EventDate,
	}
	return &after, nil
}

func (s *liabilityService) ownedLiability(ctx context.Context, ownerUserID, liabilityID string) (*domain.Liability, error) {
	liability, err := s.liabilityRepo.FindLiabilityByID(ctx, liabilityID)
	if err != nil {
		return nil, err
	}
	if _, err := s.resolveOwnedEntity(ctx, s.entityRepo, ownerUserID, liability.EntityID); err != nil {
		return nil, err
	}
	return liability, nil
}

func (s *liabilityService) value(ctx context.Context, liability *domain.Liability, asOf time.Time) (*domain.LiabilityValuation, error) {
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}
	repaid, err := s.liabilityRepo.SumRepayments(ctx, liability.LiabilityID)
	if err != nil {
		return nil, err
	}
	valuation := accounting.ValueLiability(*liability, repaid, asOf)
	return &valuation, nil
}
