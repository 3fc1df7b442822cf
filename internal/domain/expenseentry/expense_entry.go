// Package expenseentry defines the ExpenseEntry entity: one expense, dated
// and typed, split across cost bearers as an ordered list of CostShares.
package expenseentry

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ExpenseEntry is a validated expense. Build one with New or rehydrate a
// stored one with Restore.
type ExpenseEntry struct {
	id          uuid.UUID
	expenseDate time.Time
	costShares  []CostShare
	expenseType uuid.UUID
	description string
}

// New validates the raw fields and returns an ExpenseEntry with a fresh id.
//
// Checks stop at the first failure, in this order: the share list must be
// non-empty; walking the shares in input order, a repeated cost bearer id is
// reported before a malformed share; the expense type must be set; the
// description must be non-blank. expenseDate defaults to the current time
// when nil and is stored in UTC.
func New(shares []CostShare, expenseType uuid.UUID, description string, expenseDate *time.Time) (*ExpenseEntry, error) {
	if len(shares) == 0 {
		return nil, ErrMissingCostShares
	}

	seen := make(map[uuid.UUID]struct{}, len(shares))
	for _, s := range shares {
		if _, dup := seen[s.CostBearerID]; dup {
			return nil, ErrDuplicateCostBearerIDs
		}
		seen[s.CostBearerID] = struct{}{}

		if !s.wellFormed() {
			return nil, ErrMalformedCostShares
		}
	}

	if expenseType == uuid.Nil {
		return nil, ErrMissingExpenseType
	}
	if strings.TrimSpace(description) == "" {
		return nil, ErrMissingDescription
	}

	date := time.Now()
	if expenseDate != nil {
		date = *expenseDate
	}

	return &ExpenseEntry{
		id:          uuid.New(),
		expenseDate: date.UTC(),
		costShares:  slices.Clone(shares),
		expenseType: expenseType,
		description: description,
	}, nil
}

// Restore rebuilds an ExpenseEntry from storage.
func Restore(id uuid.UUID, expenseDate time.Time, shares []CostShare, expenseType uuid.UUID, description string) *ExpenseEntry {
	return &ExpenseEntry{
		id:          id,
		expenseDate: expenseDate,
		costShares:  slices.Clone(shares),
		expenseType: expenseType,
		description: description,
	}
}

func (e *ExpenseEntry) ID() uuid.UUID          { return e.id }
func (e *ExpenseEntry) ExpenseDate() time.Time { return e.expenseDate }
func (e *ExpenseEntry) ExpenseType() uuid.UUID { return e.expenseType }
func (e *ExpenseEntry) Description() string    { return e.description }

// CostShares returns a copy of the shares in their original order.
func (e *ExpenseEntry) CostShares() []CostShare {
	return slices.Clone(e.costShares)
}

// WithID returns a copy of e carrying id.
func (e *ExpenseEntry) WithID(id uuid.UUID) *ExpenseEntry {
	cp := *e
	cp.id = id
	cp.costShares = slices.Clone(e.costShares)
	return &cp
}
