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
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockEntityRepo    *MockEntityRepository
	mockReportingRepo *MockReportingRepository
	mockAssetRepo     *MockAssetRepository
	mockLiabilityRepo *MockLiabilityRepository
	service           portssvc.ReportingSvcFacade

	ownerID string
	entity  domain.Entity
}

func (s *ReportingServiceTestSuite) SetupTest() {
	s.mockEntityRepo = new(MockEntityRepository)
	s.mockReportingRepo = new(MockReportingRepository)
	s.mockAssetRepo = new(MockAssetRepository)
	s.mockLiabilityRepo = new(MockLiabilityRepository)
	s.service = services.NewReportingService(s.mockEntityRepo, s.mockReportingRepo, s.mockAssetRepo, s.mockLiabilityRepo)

	s.ownerID = uuid.NewString()
	s.entity = domain.Entity{
		EntityID:     uuid.NewString(),
		OwnerUserID:  s.ownerID,
		Name:         "Trading Co",
		Kind:         domain.EntityBusiness,
		CurrencyCode: "ZAR",
	}
	s.mockEntityRepo.On("FindEntityByID", mock.Anything, s.entity.EntityID).Return(&s.entity, nil)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s *ReportingServiceTestSuite) TestCashFlowPartitionsByDayWithRunningBalance() {
	ctx := context.Background()
	from := day(2026, time.March, 1)
	to := day(2026, time.March, 31)

	movements := []domain.DatedCashAmount{
		{Date: day(2026, time.March, 3), Amount: decimal.NewFromInt(1000)},
		{Date: day(2026, time.March, 3), Amount: decimal.NewFromInt(-250)},
		{Date: day(2026, time.March, 10).Add(14 * time.Hour), Amount: decimal.NewFromInt(-400)},
		{Date: day(2026, time.March, 20), Amount: decimal.NewFromInt(600)},
	}
	s.mockReportingRepo.On("GetCashMovements", mock.Anything, s.entity.EntityID, from, to).Return(movements, nil).Once()

	report, err := s.service.CashFlow(ctx, s.ownerID, s.entity.EntityID, from, to)

	s.Require().NoError(err)
	s.Require().Len(report.Days, 3)

	s.Equal(day(2026, time.March, 3), report.Days[0].Date)
	s.True(report.Days[0].Inflow.Equal(decimal.NewFromInt(1000)))
	s.True(report.Days[0].Outflow.Equal(decimal.NewFromInt(250)))
	s.True(report.Days[0].Net.Equal(decimal.NewFromInt(750)))
	s.True(report.Days[0].RunningBalance.Equal(decimal.NewFromInt(750)))

	// Intra-day timestamps collapse onto the calendar day.
	s.Equal(day(2026, time.March, 10), report.Days[1].Date)
	s.True(report.Days[1].Net.Equal(decimal.NewFromInt(-400)))
	s.True(report.Days[1].RunningBalance.Equal(decimal.NewFromInt(350)))

	s.Equal(day(2026, time.March, 20), report.Days[2].Date)
	s.True(report.Days[2].RunningBalance.Equal(decimal.NewFromInt(950)))

	s.True(report.TotalInflow.Equal(decimal.NewFromInt(1600)))
	s.True(report.TotalOutflow.Equal(decimal.NewFromInt(650)))
	s.True(report.NetCashFlow.Equal(decimal.NewFromInt(950)))
}

func (s *ReportingServiceTestSuite) TestCashFlowEmptyWindow() {
	ctx := context.Background()
	from := day(2026, time.January, 1)
	to := day(2026, time.January, 31)
	s.mockReportingRepo.On("GetCashMovements", mock.Anything, s.entity.EntityID, from, to).Return([]domain.DatedCashAmount{}, nil).Once()

	report, err := s.service.CashFlow(ctx, s.ownerID, s.entity.EntityID, from, to)

	s.Require().NoError(err)
	s.Empty(report.Days)
	s.True(report.NetCashFlow.IsZero())
}

func (s *ReportingServiceTestSuite) TestCashFlowRejectsInvertedWindow() {
	ctx := context.Background()

	_, err := s.service.CashFlow(ctx, s.ownerID, s.entity.EntityID, day(2026, time.March, 31), day(2026, time.March, 1))

	s.Require().Error(err)
	s.True(errors.Is(err, apperrors.ErrValidation))
	s.mockReportingRepo.AssertNotCalled(s.T(), "GetCashMovements", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *ReportingServiceTestSuite) TestIncomeStatementDerivesNetAndTaxable() {
	ctx := context.Background()
	from := day(2026, time.January, 1)
	to := day(2026, time.June, 30)
	s.mockReportingRepo.On("GetIncomeStatementData", mock.Anything, s.entity.EntityID, from, to).
		Return(portsrepo.IncomeStatementData{
			TotalIncome:        decimal.NewFromInt(20000),
			TotalExpenses:      decimal.NewFromInt(12000),
			DeductibleExpenses: decimal.NewFromInt(9000),
		}, nil).Once()

	stmt, err := s.service.IncomeStatement(ctx, s.ownerID, s.entity.EntityID, from, to)

	s.Require().NoError(err)
	s.True(stmt.NetIncome.Equal(decimal.NewFromInt(8000)))
	s.True(stmt.TaxableIncome.Equal(decimal.NewFromInt(11000)))
	s.True(stmt.DeductibleExpenses.Equal(decimal.NewFromInt(9000)))
}

func (s *ReportingServiceTestSuite) TestTaxSummaryFloorsBaseAtZero() {
	ctx := context.Background()
	s.mockReportingRepo.On("GetIncomeStatementData", mock.Anything, s.entity.EntityID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(portsrepo.IncomeStatementData{
			TotalIncome:        decimal.NewFromInt(3000),
			TotalExpenses:      decimal.NewFromInt(8000),
			DeductibleExpenses: decimal.NewFromInt(7000),
		}, nil).Once()

	summary, err := s.service.TaxSummary(ctx, s.ownerID, s.entity.EntityID, 2026)

	s.Require().NoError(err)
	s.Equal(2026, summary.Year)
	s.True(summary.TaxableIncome.Equal(decimal.NewFromInt(3000)))
	s.True(summary.DeductibleExpenses.Equal(decimal.NewFromInt(7000)))
	s.True(summary.EffectiveTaxBase.IsZero())
}

func (s *ReportingServiceTestSuite) TestTaxSummaryUsesCalendarYearWindow() {
	ctx := context.Background()
	var gotFrom, gotTo time.Time
	s.mockReportingRepo.On("GetIncomeStatementData", mock.Anything, s.entity.EntityID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) {
			gotFrom = args.Get(2).(time.Time)
			gotTo = args.Get(3).(time.Time)
		}).
		Return(portsrepo.IncomeStatementData{
			TotalIncome:        decimal.NewFromInt(100),
			TotalExpenses:      decimal.Zero,
			DeductibleExpenses: decimal.Zero,
		}, nil).Once()

	summary, err := s.service.TaxSummary(ctx, s.ownerID, s.entity.EntityID, 2025)

	s.Require().NoError(err)
	s.Equal(2025, gotFrom.Year())
	s.Equal(time.January, gotFrom.Month())
	s.Equal(2025, gotTo.Year())
	s.Equal(time.December, gotTo.Month())
	s.Equal(31, gotTo.Day())
	s.True(summary.EffectiveTaxBase.Equal(decimal.NewFromInt(100)))
}

func (s *ReportingServiceTestSuite) TestTaxSummaryRejectsImplausibleYear() {
	ctx := context.Background()

	_, err := s.service.TaxSummary(ctx, s.ownerID, s.entity.EntityID, 1776)

	s.Require().Error(err)
	s.True(errors.Is(err, apperrors.ErrValidation))
	s.mockReportingRepo.AssertNotCalled(s.T(), "GetIncomeStatementData", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *ReportingServiceTestSuite) TestBalanceSheetGroupsByClassAndDerivesEquity() {
	ctx := context.Background()
	asOf := day(2026, time.July, 1)

	s.mockReportingRepo.On("GetAxisTotals", mock.Anything, s.entity.EntityID).
		Return(map[domain.EffectType]decimal.Decimal{
			domain.EffectCash: decimal.NewFromInt(2000),
		}, int64(5), nil).Once()

	// Two vehicles and one piece of equipment, all straight-line.
	assets := []domain.Asset{
		{
			AssetID:            uuid.NewString(),
			EntityID:           s.entity.EntityID,
			Name:               "Bakkie",
			AssetClass:         "VEHICLE",
			InitialValue:       decimal.NewFromInt(12000),
			UsefulLifeMonths:   12,
			DepreciationMethod: domain.StraightLine,
			AcquisitionDate:    day(2026, time.January, 1),
		},
		{
			AssetID:            uuid.NewString(),
			EntityID:           s.entity.EntityID,
			Name:               "Trailer",
			AssetClass:         "VEHICLE",
			InitialValue:       decimal.NewFromInt(6000),
			UsefulLifeMonths:   12,
			DepreciationMethod: domain.StraightLine,
			AcquisitionDate:    day(2026, time.January, 1),
		},
		{
			AssetID:            uuid.NewString(),
			EntityID:           s.entity.EntityID,
			Name:               "Compressor",
			AssetClass:         "EQUIPMENT",
			InitialValue:       decimal.NewFromInt(2400),
			UsefulLifeMonths:   24,
			DepreciationMethod: domain.StraightLine,
			AcquisitionDate:    day(2026, time.January, 1),
		},
	}
	s.mockAssetRepo.On("ListAssetsByEntity", mock.Anything, s.entity.EntityID, false).Return(assets, nil).Once()

	loan := domain.Liability{
		LiabilityID:        uuid.NewString(),
		EntityID:           s.entity.EntityID,
		Name:               "Bank Loan",
		Creditor:           "FNB",
		Principal:          decimal.NewFromInt(10000),
		AnnualInterestRate: decimal.Zero,
		InterestMethod:     domain.InterestCompound,
		IncurrenceDate:     day(2026, time.January, 1),
	}
	s.mockLiabilityRepo.On("ListLiabilitiesByEntity", mock.Anything, s.entity.EntityID, false).Return([]domain.Liability{loan}, nil).Once()
	s.mockLiabilityRepo.On("SumRepayments", mock.Anything, loan.LiabilityID).Return(decimal.NewFromInt(4000), nil).Once()

	report, err := s.service.BalanceSheet(ctx, s.ownerID, s.entity.EntityID, asOf)

	s.Require().NoError(err)
	s.True(report.Cash.Equal(decimal.NewFromInt(2000)))

	// 6 of 12 months elapsed: vehicles at half value, compressor at 6/24 depreciated.
	s.Require().Len(report.Assets, 2)
	s.Equal("EQUIPMENT", report.Assets[0].Class)
	s.Equal(1, report.Assets[0].Count)
	s.True(report.Assets[0].Value.Equal(decimal.NewFromInt(1800)), "equipment book value was %s", report.Assets[0].Value)
	s.Equal("VEHICLE", report.Assets[1].Class)
	s.Equal(2, report.Assets[1].Count)
	s.True(report.Assets[1].Value.Equal(decimal.NewFromInt(9000)), "vehicle book value was %s", report.Assets[1].Value)

	s.Require().Len(report.Liabilities, 1)
	s.True(report.Liabilities[0].Value.Equal(decimal.NewFromInt(6000)))

	// cash 2000 + books 10800 = 12800 total assets, minus 6000 owed.
	s.True(report.TotalAssets.Equal(decimal.NewFromInt(12800)))
	s.True(report.TotalLiabilities.Equal(decimal.NewFromInt(6000)))
	s.True(report.Equity.Equal(decimal.NewFromInt(6800)))
}

func (s *ReportingServiceTestSuite) TestBalanceSheetForbiddenForOtherOwner() {
	ctx := context.Background()

	_, err := s.service.BalanceSheet(ctx, uuid.NewString(), s.entity.EntityID, day(2026, time.July, 1))

	s.Require().Error(err)
	s.True(errors.Is(err, apperrors.ErrForbidden))
	s.mockAssetRepo.AssertNotCalled(s.T(), "ListAssetsByEntity", mock.Anything, mock.Anything, mock.Anything)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
