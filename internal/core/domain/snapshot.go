package domain

import "github.com/shopspring/decimal"

// Snapshot is the running financial position of an entity, derived from its full
// effect history. Each total is the sum of amount*sign over one accounting axis.
type Snapshot struct {
	EntityID         string          `json:"entityID"`
	TotalIncome      decimal.Decimal `json:"totalIncome"`
	TotalExpenses    decimal.Decimal `json:"totalExpenses"`
	NetProfit        decimal.Decimal `json:"netProfit"`
	TotalCash        decimal.Decimal `json:"totalCash"`
	TotalAssets      decimal.Decimal `json:"totalAssets"` // non-cash asset axis
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal `json:"totalEquity"` // contributed equity axis
	EventCount       int64           `json:"eventCount"`
}

// IdentityHolds checks the accounting identity over the snapshot. Retained earnings
// live on the income/expense axes until distributed, so the identity reads
// cash + assets == liabilities + contributed equity + net profit. Any violation means
// an unbalanced event got past the recorder.
func (s Snapshot) IdentityHolds() bool {
	left := s.TotalCash.Add(s.TotalAssets)
	right := s.TotalLiabilities.Add(s.TotalEquity).Add(s.NetProfit)
	return left.Equal(right)
}
