package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fynbos-apps/bookkeeper/internal/apperrors"
	"github.com/fynbos-apps/bookkeeper/internal/core/domain"
	portsrepo "github.com/fynbos-apps/bookkeeper/internal/core/ports/repositories"
	portssvc "github.com/fynbos-apps/bookkeeper/internal/core/ports/services"
	"github.com/fynbos-apps/bookkeeper/internal/core/services"
	"github.com/fynbos-apps/bookkeeper/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	mockEventRepo  *MockEventRepository
	mockEntityRepo *MockEntityRepository
	service        portssvc.LedgerSvcFacade

	ownerID string
	entity  domain.Entity
}

func (s *LedgerServiceTestSuite) SetupTest() {
	s.mockEventRepo = new(MockEventRepository)
	s.mockEntityRepo = new(MockEntityRepository)
	s.service = services.NewLedgerService(s.mockEventRepo, s.mockEntityRepo)

	s.ownerID = uuid.NewString()
	s.entity = domain.Entity{
		EntityID:     uuid.NewString(),
		OwnerUserID:  s.ownerID,
		Name:         "Personal Book",
		Kind:         domain.EntityPersonal,
		CurrencyCode: "ZAR",
	}
}

func (s *LedgerServiceTestSuite) expectEntityLookup() {
	s.mockEntityRepo.On("FindEntityByID", mock.Anything, s.entity.EntityID).Return(&s.entity, nil).Once()
}

func (s *LedgerServiceTestSuite) TestAddIncomeRecordsBalancedCashSale() {
	ctx := context.Background()
	s.expectEntityLookup()

	var savedEvent domain.EconomicEvent
	var savedEffects []domain.EventEffect
	var savedSatellites portsrepo.EventSatellites
	s.mockEventRepo.On("SaveEvent", mock.Anything, mock.AnythingOfType("domain.EconomicEvent"), mock.AnythingOfType("[]domain.EventEffect"), mock.AnythingOfType("repositories.EventSatellites")).
		Run(func(args mock.Arguments) {
			savedEvent = args.Get(1).(domain.EconomicEvent)
			savedEffects = args.Get(2).([]domain.EventEffect)
			savedSatellites = args.Get(3).(portsrepo.EventSatellites)
		}).Return(nil).Once()

	req := dto.AddIncomeRequest{
		AmountNet:   decimal.NewFromInt(5000),
		IncomeClass: domain.IncomeSalary,
		EventDate:   time.Date(2026, 3, 25, 0, 0, 0, 0, time.UTC),
		Description: "March salary",
	}
	event, err := s.service.AddIncome(ctx, s.ownerID, s.entity.EntityID, req)

	s.Require().NoError(err)
	s.Require().NotNil(event)
	s.Equal(domain.RevenueEarned, savedEvent.EventType)
	s.Equal(s.entity.EntityID, savedEvent.EntityID)
	s.NotEmpty(savedEvent.EventID)

	s.Require().Len(savedEffects, 2)
	byType := map[domain.EffectType]domain.EventEffect{}
	for _, e := range savedEffects {
		byType[e.EffectType] = e
	}
	s.True(byType[domain.EffectCash].Amount.Equal(decimal.NewFromInt(5000)))
	s.Equal(domain.SignIncrease, byType[domain.EffectCash].Sign)
	s.True(byType[domain.EffectIncome].Amount.Equal(decimal.NewFromInt(5000)))
	s.Equal(domain.SignIncrease, byType[domain.EffectIncome].Sign)
	s.Equal("ZAR", byType[domain.EffectCash].CurrencyCode)

	// The recognition satellite hangs off the income effect.
	s.Require().Len(savedSatellites.IncomeRecognitions, 1)
	rec := savedSatellites.IncomeRecognitions[0]
	s.Equal(byType[domain.EffectIncome].EffectID, rec.EffectID)
	s.Equal(domain.IncomeSalary, rec.IncomeClass)
	s.Equal(domain.TaxTaxable, rec.TaxTreatment)
	s.True(rec.AmountGross.Equal(req.AmountNet))
	s.Equal("income_recognitions", byType[domain.EffectIncome].RelatedTable)
	s.Equal(rec.RecognitionID, byType[domain.EffectIncome].RelatedRecordID)
	s.Equal(savedEvent.CreatedAt, rec.CreatedAt, "recognition shares the event timestamp")
}

func (s *LedgerServiceTestSuite) TestAddIncomeOnCreditUsesReceivable() {
	ctx := context.Background()
	s.expectEntityLookup()

	var savedEffects []domain.EventEffect
	s.mockEventRepo.On("SaveEvent", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			savedEffects = args.Get(2).([]domain.EventEffect)
		}).Return(nil).Once()

	req := dto.AddIncomeRequest{
		AmountNet:   decimal.NewFromInt(1200),
		IncomeClass: domain.IncomeTrading,
		EventDate:   time.Now().UTC(),
		OnCredit:    true,
	}
	_, err := s.service.AddIncome(ctx, s.ownerID, s.entity.EntityID, req)

	s.Require().NoError(err)
	types := map[domain.EffectType]bool{}
	for _, e := range savedEffects {
		types[e.EffectType] = true
	}
	s.True(types[domain.EffectAsset], "credit sale should raise a receivable, not cash")
	s.False(types[domain.EffectCash])
}

func (s *LedgerServiceTestSuite) TestRecordEventRejectsSingleEffect() {
	ctx := context.Background()

	req := dto.RecordEventRequest{
		EventType: domain.RevenueEarned,
		EventDate: time.Now().UTC(),
		Effects: []dto.EffectInput{
			{EffectType: domain.EffectCash, Amount: decimal.NewFromInt(100), Sign: domain.SignIncrease},
		},
	}
	event, err := s.service.RecordEconomicEvent(ctx, s.ownerID, s.entity.EntityID, req)

	s.Require().ErrorIs(err, apperrors.ErrValidation)
	s.Nil(event)
	// Rejected before any repository access.
	s.mockEventRepo.AssertNotCalled(s.T(), "SaveEvent", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	s.mockEntityRepo.AssertNotCalled(s.T(), "FindEntityByID", mock.Anything, mock.Anything)
}

func (s *LedgerServiceTestSuite) TestRecordEventRejectsUnbalancedEffects() {
	ctx := context.Background()
	s.expectEntityLookup()

	req := dto.RecordEventRequest{
		EventType: domain.RevenueEarned,
		EventDate: time.Now().UTC(),
		Effects: []dto.EffectInput{
			{EffectType: domain.EffectCash, Amount: decimal.NewFromInt(100), Sign: domain.SignIncrease},
			{EffectType: domain.EffectIncome, Amount: decimal.NewFromInt(90), Sign: domain.SignIncrease},
		},
	}
	_, err := s.service.RecordEconomicEvent(ctx, s.ownerID, s.entity.EntityID, req)

	s.Require().ErrorIs(err, apperrors.ErrValidation)
	s.mockEventRepo.AssertNotCalled(s.T(), "SaveEvent", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *LedgerServiceTestSuite) TestRecordEventForbiddenForOtherOwner() {
	ctx := context.Background()
	s.expectEntityLookup()

	req := dto.RecordEventRequest{
		EventType: domain.RevenueEarned,
		EventDate: time.Now().UTC(),
		Effects: []dto.EffectInput{
			{EffectType: domain.EffectCash, Amount: decimal.NewFromInt(100), Sign: domain.SignIncrease},
			{EffectType: domain.EffectIncome, Amount: decimal.NewFromInt(100), Sign: domain.SignIncrease},
		},
	}
	_, err := s.service.RecordEconomicEvent(ctx, uuid.NewString(), s.entity.EntityID, req)

	s.Require().ErrorIs(err, apperrors.ErrForbidden)
	s.mockEventRepo.AssertNotCalled(s.T(), "SaveEvent", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *LedgerServiceTestSuite) TestRecordEventWrapsRepositoryFailure() {
	ctx := context.Background()
	s.expectEntityLookup()
	s.mockEventRepo.On("SaveEvent", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("connection reset")).Once()

	req := dto.RecordEventRequest{
		EventType: domain.RevenueEarned,
		EventDate: time.Now().UTC(),
		Effects: []dto.EffectInput{
			{EffectType: domain.EffectCash, Amount: decimal.NewFromInt(100), Sign: domain.SignIncrease},
			{EffectType: domain.EffectIncome, Amount: decimal.NewFromInt(100), Sign: domain.SignIncrease},
		},
	}
	_, err := s.service.RecordEconomicEvent(ctx, s.ownerID, s.entity.EntityID, req)

	s.Require().ErrorIs(err, apperrors.ErrPersistence)
}

func (s *LedgerServiceTestSuite) TestRecordArchetypeEventExpandsCatalog() {
	ctx := context.Background()
	s.expectEntityLookup()

	var savedEvent domain.EconomicEvent
	var savedEffects []domain.EventEffect
	s.mockEventRepo.On("SaveEvent", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			savedEvent = args.Get(1).(domain.EconomicEvent)
			savedEffects = args.Get(2).([]domain.EventEffect)
		}).Return(nil).Once()

	req := dto.ArchetypeEventRequest{
		Archetype: "OWNER_INVESTMENT",
		Amount:    decimal.NewFromInt(10000),
		EventDate: time.Now().UTC(),
	}
	event, err := s.service.RecordArchetypeEvent(ctx, s.ownerID, s.entity.EntityID, req)

	s.Require().NoError(err)
	s.Require().NotNil(event)
	s.Equal(domain.EquityContribution, savedEvent.EventType)
	s.Require().Len(savedEffects, 2)

	sum := decimal.Zero
	for _, e := range savedEffects {
		sum = sum.Add(e.IdentityContribution())
	}
	s.True(sum.IsZero(), "archetype expansion must balance")
}

func (s *LedgerServiceTestSuite) TestRecordArchetypeEventUnknownCode() {
	ctx := context.Background()
	s.expectEntityLookup()

	req := dto.ArchetypeEventRequest{
		Archetype: "NOT_A_THING",
		Amount:    decimal.NewFromInt(10),
		EventDate: time.Now().UTC(),
	}
	_, err := s.service.RecordArchetypeEvent(ctx, s.ownerID, s.entity.EntityID, req)

	s.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (s *LedgerServiceTestSuite) TestAddExpenseRecordsRecognition() {
	ctx := context.Background()
	s.expectEntityLookup()

	var savedEffects []domain.EventEffect
	var savedSatellites portsrepo.EventSatellites
	s.mockEventRepo.On("SaveEvent", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			savedEffects = args.Get(2).([]domain.EventEffect)
			savedSatellites = args.Get(3).(portsrepo.EventSatellites)
		}).Return(nil).Once()

	req := dto.AddExpenseRequest{
		Amount:     decimal.NewFromInt(750),
		Category:   domain.ExpenseOperating,
		Deductible: true,
		Supplier:   "Hosting Co",
		EventDate:  time.Now().UTC(),
	}
	_, err := s.service.AddExpense(ctx, s.ownerID, s.entity.EntityID, req)

	s.Require().NoError(err)
	s.Require().Len(savedSatellites.ExpenseRecognitions, 1)
	rec := savedSatellites.ExpenseRecognitions[0]
	s.True(rec.Deductible)
	s.Equal(domain.ExpenseOperating, rec.ExpenseCategory)
	s.False(rec.CreatedAt.IsZero(), "recognition is timestamped by the recorder")

	var expenseEffect *domain.EventEffect
	for i := range savedEffects {
		if savedEffects[i].EffectType == domain.EffectExpense {
			expenseEffect = &savedEffects[i]
		}
	}
	s.Require().NotNil(expenseEffect)
	s.Equal(rec.EffectID, expenseEffect.EffectID)
}

func (s *LedgerServiceTestSuite) TestVoidIncomeRecordsReversal() {
	ctx := context.Background()
	originalID := "01HZXC5N9GW9V1KQ2M3P4R5S6T"
	original := domain.EconomicEvent{
		EventID:     originalID,
		OwnerUserID: s.ownerID,
		EntityID:    s.entity.EntityID,
		EventType:   domain.RevenueEarned,
		EventDate:   time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
	}
	originalEffects := []domain.EventEffect{
		{EffectID: "fx1", EventID: originalID, EffectType: domain.EffectCash, Amount: decimal.NewFromInt(5000), Sign: domain.SignIncrease, CurrencyCode: "ZAR"},
		{EffectID: "fx2", EventID: originalID, EffectType: domain.EffectIncome, Amount: decimal.NewFromInt(5000), Sign: domain.SignIncrease, CurrencyCode: "ZAR"},
	}

	s.mockEventRepo.On("FindEventByID", mock.Anything, originalID).Return(&original, nil).Once()
	s.expectEntityLookup()
	s.mockEventRepo.On("FindEffectsByEventID", mock.Anything, originalID).Return(originalEffects, nil).Once()

	var savedEvent domain.EconomicEvent
	var savedEffects []domain.EventEffect
	s.mockEventRepo.On("SaveEvent", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			savedEvent = args.Get(1).(domain.EconomicEvent)
			savedEffects = args.Get(2).([]domain.EventEffect)
		}).Return(nil).Once()

	reversal, err := s.service.VoidIncome(ctx, s.ownerID, originalID, "duplicate entry")

	s.Require().NoError(err)
	s.Require().NotNil(reversal)
	s.Equal(domain.RevenueDeferred, savedEvent.EventType)
	s.Equal("VOID: duplicate entry", savedEvent.Description)
	s.Equal(originalID, savedEvent.SourceReference)
	s.NotEqual(originalID, savedEvent.EventID)

	s.Require().Len(savedEffects, 2)
	for _, e := range savedEffects {
		s.Equal(domain.SignDecrease, e.Sign, "reversal flips every sign")
	}
	// Reversals balance too.
	sum := decimal.Zero
	for _, e := range savedEffects {
		sum = sum.Add(e.IdentityContribution())
	}
	s.True(sum.IsZero())
}

func (s *LedgerServiceTestSuite) TestVoidIncomeRequiresReason() {
	ctx := context.Background()

	_, err := s.service.VoidIncome(ctx, s.ownerID, "some-event", "")

	s.Require().ErrorIs(err, apperrors.ErrValidation)
	s.mockEventRepo.AssertNotCalled(s.T(), "FindEventByID", mock.Anything, mock.Anything)
}

func (s *LedgerServiceTestSuite) TestVoidIncomeRejectsWrongEventType() {
	ctx := context.Background()
	original := domain.EconomicEvent{
		EventID:     "evt-1",
		OwnerUserID: s.ownerID,
		EntityID:    s.entity.EntityID,
		EventType:   domain.ExpenseIncurred,
	}
	s.mockEventRepo.On("FindEventByID", mock.Anything, "evt-1").Return(&original, nil).Once()

	_, err := s.service.VoidIncome(ctx, s.ownerID, "evt-1", "wrong button")

	s.Require().ErrorIs(err, apperrors.ErrValidation)
	s.mockEventRepo.AssertNotCalled(s.T(), "SaveEvent", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *LedgerServiceTestSuite) TestPublisherReceivesNotification() {
	ctx := context.Background()
	mockPub := new(MockPublisher)
	svc := services.NewLedgerService(s.mockEventRepo, s.mockEntityRepo, services.WithPublisher(mockPub))

	s.expectEntityLookup()
	s.mockEventRepo.On("SaveEvent", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	mockPub.On("Publish", mock.Anything, mock.MatchedBy(func(n portssvc.LedgerNotification) bool {
		return n.EntityID == s.entity.EntityID && n.EventType == domain.RevenueEarned
	})).Once()

	req := dto.AddIncomeRequest{
		AmountNet:   decimal.NewFromInt(10),
		IncomeClass: domain.IncomeOther,
		EventDate:   time.Now().UTC(),
	}
	_, err := svc.AddIncome(ctx, s.ownerID, s.entity.EntityID, req)

	s.Require().NoError(err)
	mockPub.AssertExpectations(s.T())
}

func (s *LedgerServiceTestSuite) TestListEventsClampsLimit() {
	ctx := context.Background()
	s.expectEntityLookup()
	s.mockEventRepo.On("ListEventsByEntity", mock.Anything, s.entity.EntityID, 50, 0).
		Return([]domain.EconomicEvent{}, nil).Once()

	_, err := s.service.ListEvents(ctx, s.ownerID, s.entity.EntityID, 0, -3)

	s.Require().NoError(err)
	s.mockEventRepo.AssertExpectations(s.T())
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
