package domain

import "time"

// EventType identifies what kind of economic fact an event records. The vocabulary is
// closed; extending it is a code change, never a runtime string.
type EventType string

const (
	RevenueEarned           EventType = "REVENUE_EARNED"
	RevenueDeferred         EventType = "REVENUE_DEFERRED"
	ExpenseIncurred         EventType = "EXPENSE_INCURRED"
	ExpenseReversed         EventType = "EXPENSE_REVERSED"
	PrepaidExpenseCreated   EventType = "PREPAID_EXPENSE_CREATED"
	PrepaidExpenseAmortized EventType = "PREPAID_EXPENSE_AMORTIZED"
	AssetAcquired           EventType = "ASSET_ACQUIRED"
	AssetDisposed           EventType = "ASSET_DISPOSED"
	AssetRevalued           EventType = "ASSET_REVALUED"
	AssetImpaired           EventType = "ASSET_IMPAIRED"
	LiabilityIncurred       EventType = "LIABILITY_INCURRED"
	LiabilitySettled        EventType = "LIABILITY_SETTLED"
	LiabilityRemeasured     EventType = "LIABILITY_REMEASURED"
	EquityContribution      EventType = "EQUITY_CONTRIBUTION"
	EquityDistribution      EventType = "EQUITY_DISTRIBUTION"
	TaxAssessed             EventType = "TAX_ASSESSED"
	TaxPaid                 EventType = "TAX_PAID"
	TaxRefunded             EventType = "TAX_REFUNDED"
)

var eventTypes = map[EventType]struct{}{
	RevenueEarned: {}, RevenueDeferred: {},
	ExpenseIncurred: {}, ExpenseReversed: {},
	PrepaidExpenseCreated: {}, PrepaidExpenseAmortized: {},
	AssetAcquired: {}, AssetDisposed: {}, AssetRevalued: {}, AssetImpaired: {},
	LiabilityIncurred: {}, LiabilitySettled: {}, LiabilityRemeasured: {},
	EquityContribution: {}, EquityDistribution: {},
	TaxAssessed: {}, TaxPaid: {}, TaxRefunded: {},
}

// ValidEventType reports whether t is part of the closed event vocabulary.
func ValidEventType(t EventType) bool {
	_, ok := eventTypes[t]
	return ok
}

// EconomicEvent is an immutable fact: something that happened to an entity's books.
// It is written exactly once by the event recorder; the storage layer rejects any
// UPDATE or DELETE. The only corrective mechanism is a new reversing event whose
// SourceReference points back at the original.
type EconomicEvent struct {
	EventID         string    `json:"eventID"` // ULID, so the log sorts by time
	OwnerUserID     string    `json:"ownerUserID"`
	EntityID        string    `json:"entityID"`
	EventType       EventType `json:"eventType"`
	EventDate       time.Time `json:"eventDate"`
	Description     string    `json:"description"`
	SourceReference string    `json:"sourceReference"` // invoice no, original event ID, ...
	Jurisdiction    string    `json:"jurisdiction"`
	CreatedAt       time.Time `json:"createdAt"`
	CreatedBy       string    `json:"createdBy"`
}
