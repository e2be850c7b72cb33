package domain

// EntityKind classifies an organizational book.
type EntityKind string

const (
	EntityPersonal EntityKind = "PERSONAL"
	EntityTrust    EntityKind = "TRUST"
	EntityHolding  EntityKind = "HOLDING"
	EntityBusiness EntityKind = "BUSINESS"
)

// Entity is an organizational book (personal, trust, holding or business) owned by
// exactly one user. Only its display name is mutable after creation; deleting an
// entity cascades to its entire event history.
type Entity struct {
	EntityID     string     `json:"entityID"`
	OwnerUserID  string     `json:"ownerUserID"`
	Name         string     `json:"name"`
	Kind         EntityKind `json:"kind"`
	CurrencyCode string     `json:"currencyCode"`
	Jurisdiction string     `json:"jurisdiction"` // e.g. "ZA"
	AuditFields
}

// ValidEntityKind reports whether k is part of the closed kind vocabulary.
func ValidEntityKind(k EntityKind) bool {
	switch k {
	case EntityPersonal, EntityTrust, EntityHolding, EntityBusiness:
		return true
	}
	return false
}
