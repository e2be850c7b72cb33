package dto

import (
	"time"

	"github.com/fynbos-apps/bookkeeper/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AddIncomeRequest records earned revenue together with its tax recognition. OnCredit
// selects the CREDIT_SALE archetype (receivable instead of cash).
type AddIncomeRequest struct {
	AmountNet    decimal.Decimal     `json:"amountNet" binding:"required"`
	AmountGross  decimal.Decimal     `json:"amountGross"` // defaults to AmountNet
	IncomeClass  domain.IncomeClass  `json:"incomeClass" binding:"required"`
	TaxTreatment domain.TaxTreatment `json:"taxTreatment"` // defaults to TAXABLE
	Counterparty string              `json:"counterparty"`
	EventDate    time.Time           `json:"eventDate" binding:"required"`
	Description  string              `json:"description"`
	OnCredit     bool                `json:"onCredit"`
}

// AddExpenseRequest records an incurred expense together with its recognition.
type AddExpenseRequest struct {
	Amount      decimal.Decimal        `json:"amount" binding:"required"`
	Category    domain.ExpenseCategory `json:"category" binding:"required"`
	Deductible  bool                   `json:"deductible"`
	Supplier    string                 `json:"supplier"`
	EventDate   time.Time              `json:"eventDate" binding:"required"`
	Description string                 `json:"description"`
	OnCredit    bool                   `json:"onCredit"`
}
