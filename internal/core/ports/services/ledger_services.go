package services

import (
	"context"

	"github.com/fynbos-apps/bookkeeper/internal/core/domain"
	"github.com/fynbos-apps/bookkeeper/internal/dto"
)

// LedgerSvcFacade is the event recorder: the only write path into the ledger.
// Recording is atomic; validation and ownership failures are rejected before any
// write is attempted. Corrections are new reversing events, never edits.
type LedgerSvcFacade interface {
	// RecordEconomicEvent validates and atomically persists one event with its
	// caller-supplied effects.
	RecordEconomicEvent(ctx context.Context, ownerUserID, entityID string, req dto.RecordEventRequest) (*domain.EconomicEvent, error)

	// RecordArchetypeEvent expands a catalog archetype into a balanced effect set
	// and records it.
	RecordArchetypeEvent(ctx context.Context, ownerUserID, entityID string, req dto.ArchetypeEventRequest) (*domain.EconomicEvent, error)

	// AddIncome records a REVENUE_EARNED event plus its income recognition.
	AddIncome(ctx context.Context, ownerUserID, entityID string, req dto.AddIncomeRequest) (*domain.EconomicEvent, error)

	// AddExpense records an EXPENSE_INCURRED event plus its expense recognition.
	AddExpense(ctx context.Context, ownerUserID, entityID string, req dto.AddExpenseRequest) (*domain.EconomicEvent, error)

	// VoidIncome records a REVENUE_DEFERRED event mirroring the original's effects.
	// The original row is untouched.
	VoidIncome(ctx context.Context, ownerUserID, eventID, reason string) (*domain.EconomicEvent, error)

	// VoidExpense records an EXPENSE_REVERSED event mirroring the original.
	VoidExpense(ctx context.Context, ownerUserID, eventID, reason string) (*domain.EconomicEvent, error)

	// GetEvent retrieves one event with its effects.
	GetEvent(ctx context.Context, ownerUserID, eventID string) (*domain.EconomicEvent, []domain.EventEffect, error)

	// ListEvents retrieves an entity's events, newest first.
	ListEvents(ctx context.Context, ownerUserID, entityID string, limit, offset int) ([]domain.EconomicEvent, error)
}
