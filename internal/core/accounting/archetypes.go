package accounting

import (
	"fmt"

	"github.com/fynbos-apps/bookkeeper/internal/apperrors"
	"github.com/fynbos-apps/bookkeeper/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ArchetypeCode names a canonical, pre-balanced transaction shape.
type ArchetypeCode string

const (
	CashSale            ArchetypeCode = "CASH_SALE"
	CreditSale          ArchetypeCode = "CREDIT_SALE"
	CashExpense         ArchetypeCode = "CASH_EXPENSE"
	CreditExpense       ArchetypeCode = "CREDIT_EXPENSE"
	PrepaidExpense      ArchetypeCode = "PREPAID_EXPENSE"
	PrepaidAmortization ArchetypeCode = "PREPAID_AMORTIZATION"
	AssetPurchaseCash   ArchetypeCode = "ASSET_PURCHASE_CASH"
	AssetPurchaseCredit ArchetypeCode = "ASSET_PURCHASE_CREDIT"
	AssetSaleCash       ArchetypeCode = "ASSET_SALE_CASH"
	Depreciation        ArchetypeCode = "DEPRECIATION"
	LoanReceived        ArchetypeCode = "LOAN_RECEIVED"
	LoanRepayment       ArchetypeCode = "LOAN_REPAYMENT"
	OwnerInvestment     ArchetypeCode = "OWNER_INVESTMENT"
	OwnerDrawing        ArchetypeCode = "OWNER_DRAWING"
	TaxPayment          ArchetypeCode = "TAX_PAYMENT"
)

// ArchetypeCategory groups archetypes for UI discoverability only; it carries no
// ledger semantics.
type ArchetypeCategory string

const (
	CategoryRevenue     ArchetypeCategory = "REVENUE"
	CategoryExpense     ArchetypeCategory = "EXPENSE"
	CategoryAssets      ArchetypeCategory = "ASSETS"
	CategoryLiabilities ArchetypeCategory = "LIABILITIES"
	CategoryEquity      ArchetypeCategory = "EQUITY"
)

type effectSpec struct {
	effectType domain.EffectType
	sign       int
}

// Archetype is one named transaction shape: a description, its UI category, the event
// type it defaults to, and the effect templates it expands an amount into.
type Archetype struct {
	Code             ArchetypeCode
	Name             string
	Category         ArchetypeCategory
	DefaultEventType domain.EventType
	specs            []effectSpec
}

// BuildEffects expands the archetype for the given amount into a balanced effect set.
// Amount must be strictly positive.
func (a Archetype) BuildEffects(amount decimal.Decimal) ([]domain.EventEffect, error) {
	if amount.Sign() <= 0 {
		return nil, fmt.Errorf("%w: archetype amount must be positive, got %s", apperrors.ErrValidation, amount.String())
	}
	effects := make([]domain.EventEffect, len(a.specs))
	for i, s := range a.specs {
		effects[i] = domain.EventEffect{EffectType: s.effectType, Amount: amount, Sign: s.sign}
	}
	return effects, nil
}

// catalog is the closed registry. Adding an archetype is a code change reviewed
// against the balance rule; there is no runtime extension path.
var catalog = []Archetype{
	{CashSale, "Cash sale", CategoryRevenue, domain.RevenueEarned, []effectSpec{
		{domain.EffectCash, domain.SignIncrease}, {domain.EffectIncome, domain.SignIncrease}}},
	{CreditSale, "Credit sale", CategoryRevenue, domain.RevenueEarned, []effectSpec{
		{domain.EffectAsset, domain.SignIncrease}, {domain.EffectIncome, domain.SignIncrease}}},
	{CashExpense, "Cash expense", CategoryExpense, domain.ExpenseIncurred, []effectSpec{
		{domain.EffectExpense, domain.SignIncrease}, {domain.EffectCash, domain.SignDecrease}}},
	{CreditExpense, "Expense on credit", CategoryExpense, domain.ExpenseIncurred, []effectSpec{
		{domain.EffectExpense, domain.SignIncrease}, {domain.EffectLiability, domain.SignIncrease}}},
	{PrepaidExpense, "Prepaid expense", CategoryExpense, domain.PrepaidExpenseCreated, []effectSpec{
		{domain.EffectAsset, domain.SignIncrease}, {domain.EffectCash, domain.SignDecrease}}},
	{PrepaidAmortization, "Prepaid amortization", CategoryExpense, domain.PrepaidExpenseAmortized, []effectSpec{
		{domain.EffectExpense, domain.SignIncrease}, {domain.EffectAsset, domain.SignDecrease}}},
	{AssetPurchaseCash, "Asset purchase (cash)", CategoryAssets, domain.AssetAcquired, []effectSpec{
		{domain.EffectAsset, domain.SignIncrease}, {domain.EffectCash, domain.SignDecrease}}},
	{AssetPurchaseCredit, "Asset purchase (credit)", CategoryAssets, domain.AssetAcquired, []effectSpec{
		{domain.EffectAsset, domain.SignIncrease}, {domain.EffectLiability, domain.SignIncrease}}},
	{AssetSaleCash, "Asset sale (cash)", CategoryAssets, domain.AssetDisposed, []effectSpec{
		{domain.EffectCash, domain.SignIncrease}, {domain.EffectAsset, domain.SignDecrease}}},
	{Depreciation, "Depreciation charge", CategoryExpense, domain.ExpenseIncurred, []effectSpec{
		{domain.EffectExpense, domain.SignIncrease}, {domain.EffectAsset, domain.SignDecrease}}},
	{LoanReceived, "Loan received", CategoryLiabilities, domain.LiabilityIncurred, []effectSpec{
		{domain.EffectCash, domain.SignIncrease}, {domain.EffectLiability, domain.SignIncrease}}},
	{LoanRepayment, "Loan repayment", CategoryLiabilities, domain.LiabilitySettled, []effectSpec{
		{domain.EffectLiability, domain.SignDecrease}, {domain.EffectCash, domain.SignDecrease}}},
	{OwnerInvestment, "Owner investment", CategoryEquity, domain.EquityContribution, []effectSpec{
		{domain.EffectCash, domain.SignIncrease}, {domain.EffectEquity, domain.SignIncrease}}},
	{OwnerDrawing, "Owner drawing", CategoryEquity, domain.EquityDistribution, []effectSpec{
		{domain.EffectEquity, domain.SignDecrease}, {domain.EffectCash, domain.SignDecrease}}},
	{TaxPayment, "Tax payment", CategoryExpense, domain.TaxPaid, []effectSpec{
		{domain.EffectExpense, domain.SignIncrease}, {domain.EffectCash, domain.SignDecrease}}},
}

var catalogByCode = func() map[ArchetypeCode]Archetype {
	m := make(map[ArchetypeCode]Archetype, len(catalog))
	for _, a := range catalog {
		m[a.Code] = a
	}
	return m
}()

// Lookup returns the archetype for a code.
func Lookup(code ArchetypeCode) (Archetype, error) {
	a, ok := catalogByCode[code]
	if !ok {
		return Archetype{}, fmt.Errorf("%w: unknown archetype %q", apperrors.ErrNotFound, code)
	}
	return a, nil
}

// Catalog returns every registered archetype, in registration order.
func Catalog() []Archetype {
	out := make([]Archetype, len(catalog))
	copy(out, catalog)
	return out
}

// ValidateCatalog proves every archetype expands to a balanced event. Run at startup
// so a bad registration fails the process, not a user request.
func ValidateCatalog() error {
	probe := decimal.NewFromInt(100)
	for _, a := range catalog {
		effects, err := a.BuildEffects(probe)
		if err != nil {
			return fmt.Errorf("archetype %s: %w", a.Code, err)
		}
		if err := ValidateEventBalance(effects); err != nil {
			return fmt.Errorf("archetype %s: %w", a.Code, err)
		}
		if !domain.ValidEventType(a.DefaultEventType) {
			return fmt.Errorf("archetype %s has unknown event type %q", a.Code, a.DefaultEventType)
		}
	}
	return nil
}
