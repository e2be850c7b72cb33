package services

import (
	"context"
	"time"

	"github.com/fynbos-apps/bookkeeper/internal/core/domain"
)

// LedgerNotification announces that an event was committed, so read-side views can
// refresh. Delivery is fire-and-forget and at-least-once at best: no reader may rely
// on it for correctness, every reader can re-fetch its snapshot independently.
type LedgerNotification struct {
	EntityID   string
	EventID    string
	EventType  domain.EventType
	OccurredAt time.Time
}

// EventPublisher is the injectable notification side-channel owned by the caller
// that wires up the recorder. Publish must not block the write path.
type EventPublisher interface {
	Publish(ctx context.Context, n LedgerNotification)
}
