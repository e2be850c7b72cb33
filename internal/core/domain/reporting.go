package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashFlowDay is one calendar day of cash movement inside a cash flow report.
type CashFlowDay struct {
	Date           time.Time       `json:"date"`
	Inflow         decimal.Decimal `json:"inflow"`
	Outflow        decimal.Decimal `json:"outflow"` // magnitude of negative movements
	Net            decimal.Decimal `json:"net"`
	RunningBalance decimal.Decimal `json:"runningBalance"` // prefix sum of Net, ascending
}

// CashFlowReport partitions CASH-axis effects by day within a window.
type CashFlowReport struct {
	EntityID     string          `json:"entityID"`
	From         time.Time       `json:"from"`
	To           time.Time       `json:"to"`
	Days         []CashFlowDay   `json:"days"`
	TotalInflow  decimal.Decimal `json:"totalInflow"`
	TotalOutflow decimal.Decimal `json:"totalOutflow"`
	NetCashFlow  decimal.Decimal `json:"netCashFlow"`
}

// IncomeStatement sums the INCOME and EXPENSE axes for events in a window.
type IncomeStatement struct {
	EntityID           string          `json:"entityID"`
	From               time.Time       `json:"from"`
	To                 time.Time       `json:"to"`
	TotalIncome        decimal.Decimal `json:"totalIncome"`
	TotalExpenses      decimal.Decimal `json:"totalExpenses"`
	DeductibleExpenses decimal.Decimal `json:"deductibleExpenses"`
	NetIncome          decimal.Decimal `json:"netIncome"`
	TaxableIncome      decimal.Decimal `json:"taxableIncome"`
}

// TaxSummary is the calendar-year tax view.
type TaxSummary struct {
	EntityID           string          `json:"entityID"`
	Year               int             `json:"year"`
	TaxableIncome      decimal.Decimal `json:"taxableIncome"`
	DeductibleExpenses decimal.Decimal `json:"deductibleExpenses"`
	EffectiveTaxBase   decimal.Decimal `json:"effectiveTaxBase"` // floored at zero
}

// BalanceSheetLine groups live assets or liabilities of one class.
type BalanceSheetLine struct {
	Class string          `json:"class"`
	Count int             `json:"count"`
	Value decimal.Decimal `json:"value"` // book value / accrued balance, not cost
}

// BalanceSheet groups live (non-disposed, non-extinguished) asset and liability
// records by class, valued as of the report date.
type BalanceSheet struct {
	EntityID         string             `json:"entityID"`
	AsOf             time.Time          `json:"asOf"`
	Cash             decimal.Decimal    `json:"cash"`
	Assets           []BalanceSheetLine `json:"assets"`
	Liabilities      []BalanceSheetLine `json:"liabilities"`
	TotalAssets      decimal.Decimal    `json:"totalAssets"`
	TotalLiabilities decimal.Decimal    `json:"totalLiabilities"`
	Equity           decimal.Decimal    `json:"equity"` // totalAssets - totalLiabilities
}

// DatedCashAmount is a raw signed CASH movement on a given day, the input the cash
// flow report is folded from.
type DatedCashAmount struct {
	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"` // already signed
}
