package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/fynbos-apps/bookkeeper/internal/apperrors"
	"github.com/fynbos-apps/bookkeeper/internal/core/accounting"
	"github.com/fynbos-apps/bookkeeper/internal/core/domain"
	portsrepo "github.com/fynbos-apps/bookkeeper/internal/core/ports/repositories"
	portssvc "github.com/fynbos-apps/bookkeeper/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// reportingService derives report views from the committed effect log. Every method
// is a pure read; nothing here mutates state or caches results.
type reportingService struct {
	BaseService
	entityRepo    portsrepo.EntityReader
	reportingRepo portsrepo.ReportingRepository
	assetRepo     portsrepo.AssetRepositoryFacade
	liabilityRepo portsrepo.LiabilityRepositoryFacade
}

// NewReportingService creates the report generator.
func NewReportingService(entityRepo portsrepo.EntityReader, reportingRepo portsrepo.ReportingRepository, assetRepo portsrepo.AssetRepositoryFacade, liabilityRepo portsrepo.LiabilityRepositoryFacade) portssvc.ReportingSvcFacade {
	return &reportingService{
		entityRepo:    entityRepo,
		reportingRepo: reportingRepo,
		assetRepo:     assetRepo,
		liabilityRepo: liabilityRepo,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) CashFlow(ctx context.Context, ownerUserID, entityID string, from, to time.Time) (*domain.CashFlowReport, error) {
	if _, err := s.resolveOwnedEntity(ctx, s.entityRepo, ownerUserID, entityID); err != nil {
		return nil, err
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%w: report range end precedes start", apperrors.ErrValidation)
	}

	movements, err := s.reportingRepo.GetCashMovements(ctx, entityID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to load cash movements", slog.String("entity_id", entityID))
		return nil, err
	}

	// Partition by calendar day.
	byDay := make(map[time.Time]*domain.CashFlowDay)
	for _, m := range movements {
		d := m.Date.UTC().Truncate(24 * time.Hour)
		day, ok := byDay[d]
		if !ok {
			day = &domain.CashFlowDay{Date: d, Inflow: decimal.Zero, Outflow: decimal.Zero, Net: decimal.Zero}
			byDay[d] = day
		}
		if m.Amount.Sign() >= 0 {
			day.Inflow = day.Inflow.Add(m.Amount)
		} else {
			day.Outflow = day.Outflow.Add(m.Amount.Abs())
		}
		day.Net = day.Inflow.Sub(day.Outflow)
	}

	days := make([]domain.CashFlowDay, 0, len(byDay))
	for _, d := range byDay {
		days = append(days, *d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date.Before(days[j].Date) })

	report := &domain.CashFlowReport{
		EntityID:     entityID,
		From:         from,
		To:           to,
		Days:         days,
		TotalInflow:  decimal.Zero,
		TotalOutflow: decimal.Zero,
	}
	running := decimal.Zero
	for i := range report.Days {
		running = running.Add(report.Days[i].Net)
		report.Days[i].RunningBalance = running
		report.TotalInflow = report.TotalInflow.Add(report.Days[i].Inflow)
		report.TotalOutflow = report.TotalOutflow.Add(report.Days[i].Outflow)
	}
	report.NetCashFlow = report.TotalInflow.Sub(report.TotalOutflow)
	return report, nil
}

func (s *reportingService) IncomeStatement(ctx context.Context, ownerUserID, entityID string, from, to time.Time) (*domain.IncomeStatement, error) {
	if _, err := s.resolveOwnedEntity(ctx, s.entityRepo, ownerUserID, entityID); err != nil {
		return nil, err
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%w: report range end precedes start", apperrors.ErrValidation)
	}

	data, err := s.reportingRepo.GetIncomeStatementData(ctx, entityID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to load income statement data", slog.String("entity_id", entityID))
		return nil, err
	}

	return &domain.IncomeStatement{
		EntityID:           entityID,
		From:               from,
		To:                 to,
		TotalIncome:        data.TotalIncome,
		TotalExpenses:      data.TotalExpenses,
		DeductibleExpenses: data.DeductibleExpenses,
		NetIncome:          data.TotalIncome.Sub(data.TotalExpenses),
		TaxableIncome:      data.TotalIncome.Sub(data.DeductibleExpenses),
	}, nil
}

func (s *reportingService) TaxSummary(ctx context.Context, ownerUserID, entityID string, year int) (*domain.TaxSummary, error) {
	if _, err := s.resolveOwnedEntity(ctx, s.entityRepo, ownerUserID, entityID); err != nil {
		return nil, err
	}
	if year < 1900 || year > 3000 {
		return nil, fmt.Errorf("%w: implausible tax year %d", apperrors.ErrValidation, year)
	}

	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC)
	data, err := s.reportingRepo.GetIncomeStatementData(ctx, entityID, from, to)
	if err != nil {
		return nil, err
	}

	base := data.TotalIncome.Sub(data.DeductibleExpenses)
	if base.Sign() < 0 {
		base = decimal.Zero
	}
	return &domain.TaxSummary{
		EntityID:           entityID,
		Year:               year,
		TaxableIncome:      data.TotalIncome,
		DeductibleExpenses: data.DeductibleExpenses,
		EffectiveTaxBase:   base,
	}, nil
}

func (s *reportingService) BalanceSheet(ctx context.Context, ownerUserID, entityID string, asOf time.Time) (*domain.BalanceSheet, error) {
	if _, err := s.resolveOwnedEntity(ctx, s.entityRepo, ownerUserID, entityID); err != nil {
		return nil, err
	}
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}

	totals, _, err := s.reportingRepo.GetAxisTotals(ctx, entityID)
	if err != nil {
		return nil, err
	}
	cash := decimal.Zero
	if v, ok := totals[domain.EffectCash]; ok {
		cash = v
	}

	// Live records only: disposed assets and extinguished liabilities are off the
	// books.
	assets, err := s.assetRepo.ListAssetsByEntity(ctx, entityID, false)
	if err != nil {
		return nil, err
	}
	liabilities, err := s.liabilityRepo.ListLiabilitiesByEntity(ctx, entityID, false)
	if err != nil {
		return nil, err
	}

	assetLines := map[string]*domain.BalanceSheetLine{}
	totalAssets := cash
	for _, a := range assets {
		book := accounting.BookValue(a.InitialValue, a.UsefulLifeMonths, a.DepreciationMethod, a.AcquisitionDate, asOf)
		line, ok := assetLines[a.AssetClass]
		if !ok {
			line = &domain.BalanceSheetLine{Class: a.AssetClass, Value: decimal.Zero}
			assetLines[a.AssetClass] = line
		}
		line.Count++
		line.Value = line.Value.Add(book)
		totalAssets = totalAssets.Add(book)
	}

	liabilityLines := map[string]*domain.BalanceSheetLine{}
	totalLiabilities := decimal.Zero
	for _, l := range liabilities {
		repaid, err := s.liabilityRepo.SumRepayments(ctx, l.LiabilityID)
		if err != nil {
			return nil, err
		}
		balance := accounting.ValueLiability(l, repaid, asOf).Balance
		line, ok := liabilityLines[l.Name]
		if !ok {
			line = &domain.BalanceSheetLine{Class: l.Name, Value: decimal.Zero}
			liabilityLines[l.Name] = line
		}
		line.Count++
		line.Value = line.Value.Add(balance)
		totalLiabilities = totalLiabilities.Add(balance)
	}

	report := &domain.BalanceSheet{
		EntityID:         entityID,
		AsOf:             asOf,
		Cash:             cash,
		Assets:           sortedLines(assetLines),
		Liabilities:      sortedLines(liabilityLines),
		TotalAssets:      totalAssets,
		TotalLiabilities: totalLiabilities,
		Equity:           totalAssets.Sub(totalLiabilities),
	}
	return report, nil
}

func sortedLines(lines map[string]*domain.BalanceSheetLine) []domain.BalanceSheetLine {
	out := make([]domain.BalanceSheetLine, 0, len(lines))
	for _, l := range lines {
		out = append(out, *l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Class < out[j].Class })
	return out
}
