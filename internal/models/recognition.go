package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// IncomeRecognition is the DB row carrying tax metadata for an income effect.
type IncomeRecognition struct {
	RecognitionID string          `db:"recognition_id"`
	EffectID      string          `db:"effect_id"`
	TaxTreatment  string          `db:"tax_treatment"`
	IncomeClass   string          `db:"income_class"`
	Counterparty  string          `db:"counterparty"`
	AmountGross   decimal.Decimal `db:"amount_gross"`
	AmountNet     decimal.Decimal `db:"amount_net"`
	CreatedAt     time.Time       `db:"created_at"`
}

// ExpenseRecognition is the DB row carrying deductibility metadata for an
// expense effect.
type ExpenseRecognition struct {
	RecognitionID   string          `db:"recognition_id"`
	EffectID        string          `db:"effect_id"`
	Deductible      bool            `db:"deductible"`
	ExpenseCategory string          `db:"expense_category"`
	Supplier        string          `db:"supplier"`
	Amount          decimal.Decimal `db:"amount"`
	CreatedAt       time.Time       `db:"created_at"`
}
