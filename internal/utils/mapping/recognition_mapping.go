package mapping

import (
	"github.com/fynbos-apps/bookkeeper/internal/core/domain"
	"github.com/fynbos-apps/bookkeeper/internal/models"
)

// ToModelIncomeRecognition converts a domain IncomeRecognition to its model
func ToModelIncomeRecognition(d domain.IncomeRecognition) models.IncomeRecognition {
	return models.IncomeRecognition{
		RecognitionID: d.RecognitionID,
		EffectID:      d.EffectID,
		TaxTreatment:  string(d.TaxTreatment),
		IncomeClass:   string(d.IncomeClass),
		Counterparty:  d.Counterparty,
		AmountGross:   d.AmountGross,
		AmountNet:     d.AmountNet,
		CreatedAt:     d.CreatedAt,
	}
}

// ToDomainIncomeRecognition converts a model IncomeRecognition to its domain form
func ToDomainIncomeRecognition(m models.IncomeRecognition) domain.IncomeRecognition {
	return domain.IncomeRecognition{
		RecognitionID: m.RecognitionID,
		EffectID:      m.EffectID,
		TaxTreatment:  domain.TaxTreatment(m.TaxTreatment),
		IncomeClass:   domain.IncomeClass(m.IncomeClass),
		Counterparty:  m.Counterparty,
		AmountGross:   m.AmountGross,
		AmountNet:     m.AmountNet,
		CreatedAt:     m.CreatedAt,
	}
}

// ToModelExpenseRecognition converts a domain ExpenseRecognition to its model
func ToModelExpenseRecognition(d domain.ExpenseRecognition) models.ExpenseRecognition {
	return models.ExpenseRecognition{
		RecognitionID:   d.RecognitionID,
		EffectID:        d.EffectID,
		Deductible:      d.Deductible,
		ExpenseCategory: string(d.ExpenseCategory),
		Supplier:        d.Supplier,
		Amount:          d.Amount,
		CreatedAt:       d.CreatedAt,
	}
}

// ToDomainExpenseRecognition converts a model ExpenseRecognition to its domain form
func ToDomainExpenseRecognition(m models.ExpenseRecognition) domain.ExpenseRecognition {
	return domain.ExpenseRecognition{
		RecognitionID:   m.RecognitionID,
		EffectID:        m.EffectID,
		Deductible:      m.Deductible,
		ExpenseCategory: domain.ExpenseCategory(m.ExpenseCategory),
		Supplier:        m.Supplier,
		Amount:          m.Amount,
		CreatedAt:       m.CreatedAt,
	}
}
