package utils

import (
	mathrand "math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(mathrand.New(mathrand.NewSource(time.Now().UnixNano())), 0)
)

// NewEventID returns a lexicographically time-ordered identifier for immutable log
// rows (events, effects). Sorting by ID sorts by creation time, which keeps the log
// scannable without a secondary index.
func NewEventID() string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

// NewRecordID returns a random identifier for mutable-satellite and catalog rows
// (entities, assets, liabilities, recognitions).
func NewRecordID() string {
	return uuid.NewString()
}
