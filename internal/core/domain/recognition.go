package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TaxTreatment classifies how an income line is treated for tax purposes.
type TaxTreatment string

const (
	TaxTaxable  TaxTreatment = "TAXABLE"
	TaxExempt   TaxTreatment = "EXEMPT"
	TaxCapital  TaxTreatment = "CAPITAL"
	TaxWithheld TaxTreatment = "WITHHELD_AT_SOURCE"
)

// IncomeClass is the SARS-aligned income classification.
type IncomeClass string

const (
	IncomeSalary      IncomeClass = "SALARY"
	IncomeTrading     IncomeClass = "TRADING"
	IncomeInterest    IncomeClass = "INTEREST"
	IncomeDividend    IncomeClass = "DIVIDEND"
	IncomeRental      IncomeClass = "RENTAL"
	IncomeCapitalGain IncomeClass = "CAPITAL_GAIN"
	IncomeOther       IncomeClass = "OTHER"
)

// ExpenseCategory is the SARS-aligned expense classification.
type ExpenseCategory string

const (
	ExpenseOperating    ExpenseCategory = "OPERATING"
	ExpenseCostOfSales  ExpenseCategory = "COST_OF_SALES"
	ExpenseDepreciation ExpenseCategory = "DEPRECIATION"
	ExpenseInterestPaid ExpenseCategory = "INTEREST_PAID"
	ExpenseTaxPaid      ExpenseCategory = "TAX_PAID"
	ExpensePersonal     ExpenseCategory = "PERSONAL"
	ExpenseOtherCat     ExpenseCategory = "OTHER"
)

// IncomeRecognition is a one-to-one satellite on a specific INCOME effect carrying the
// tax / IFRS metadata for the line. Created atomically with its event; never updated.
// Voiding happens by recording a reversing event, not by touching this row.
type IncomeRecognition struct {
	RecognitionID string          `json:"recognitionID"`
	EffectID      string          `json:"effectID"`
	TaxTreatment  TaxTreatment    `json:"taxTreatment"`
	IncomeClass   IncomeClass     `json:"incomeClass"`
	Counterparty  string          `json:"counterparty"`
	AmountGross   decimal.Decimal `json:"amountGross"`
	AmountNet     decimal.Decimal `json:"amountNet"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ExpenseRecognition is the expense-side satellite. Deductible drives the taxable
// income calculation in the income statement and tax summary.
type ExpenseRecognition struct {
	RecognitionID   string          `json:"recognitionID"`
	EffectID        string          `json:"effectID"`
	Deductible      bool            `json:"deductible"`
	ExpenseCategory ExpenseCategory `json:"expenseCategory"`
	Supplier        string          `json:"supplier"`
	Amount          decimal.Decimal `json:"amount"`
	CreatedAt       time.Time       `json:"createdAt"`
}
