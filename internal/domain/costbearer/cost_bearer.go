// Package costbearer defines the CostBearer entity: a party that can carry
// part of an expense during a bounded period of existence.
package costbearer

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// CostBearer is a validated cost bearer. The zero value is not valid; build
// one with New or rehydrate a stored one with Restore.
type CostBearer struct {
	id         uuid.UUID
	name       string
	existsFrom time.Time
	existsTo   *time.Time
}

// New validates the raw fields and returns a CostBearer with a fresh id.
// Checks run in order and stop at the first failure: the name must be
// non-blank, then existsFrom must be set and existsTo, when present, must
// be strictly after it. Both dates are stored in UTC.
func New(name string, existsFrom time.Time, existsTo *time.Time) (*CostBearer, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrMissingName
	}
	if existsFrom.IsZero() {
		return nil, ErrInvalidDate
	}
	if existsTo != nil && !existsTo.After(existsFrom) {
		return nil, ErrInvalidDate
	}

	return &CostBearer{
		id:         uuid.New(),
		name:       name,
		existsFrom: existsFrom.UTC(),
		existsTo:   utcTime(existsTo),
	}, nil
}

// Restore rebuilds a CostBearer from storage. The values are trusted to have
// passed New when they were first written.
func Restore(id uuid.UUID, name string, existsFrom time.Time, existsTo *time.Time) *CostBearer {
	return &CostBearer{
		id:         id,
		name:       name,
		existsFrom: existsFrom,
		existsTo:   cloneTime(existsTo),
	}
}

// ID returns the cost bearer identity.
func (c *CostBearer) ID() uuid.UUID { return c.id }

// Name returns the name as supplied, untrimmed.
func (c *CostBearer) Name() string { return c.name }

// ExistsFrom returns the start of the existence period.
func (c *CostBearer) ExistsFrom() time.Time { return c.existsFrom }

// ExistsTo returns the end of the existence period, if any.
func (c *CostBearer) ExistsTo() (time.Time, bool) {
	if c.existsTo == nil {
		return time.Time{}, false
	}
	return *c.existsTo, true
}

// WithID returns a copy of c carrying id.
func (c *CostBearer) WithID(id uuid.UUID) *CostBearer {
	cp := *c
	cp.id = id
	cp.existsTo = cloneTime(c.existsTo)
	return &cp
}

func utcTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
