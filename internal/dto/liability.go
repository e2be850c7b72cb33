package dto

import (
	"time"

	"github.com/fynbos-apps/bookkeeper/internal/core/domain"
	"github.com/shopspring/decimal"
)

// IncurLiabilityRequest records a LIABILITY_INCURRED event and its liability
// satellite in one atomic operation.
type IncurLiabilityRequest struct {
	Name               string                `json:"name" binding:"required"`
	Creditor           string                `json:"creditor"`
	Principal          decimal.Decimal       `json:"principal" binding:"required"`
	AnnualInterestRate decimal.Decimal       `json:"annualInterestRate"`
	InterestMethod     domain.InterestMethod `json:"interestMethod"` // defaults to COMPOUND
	IncurrenceDate     time.Time             `json:"incurrenceDate" binding:"required"`
	MaturityDate       *time.Time            `json:"maturityDate"`
	Description        string                `json:"description"`
}

// LiabilityPaymentRequest pays down a liability. When the payment brings the balance
// to zero the liability is marked extinguished in the same logical operation.
type LiabilityPaymentRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	EventDate   time.Time       `json:"eventDate" binding:"required"`
	Description string          `json:"description"`
}
