// Package expensetype defines the ExpenseType entity used to categorize
// expense entries.
package expensetype

import (
	"strings"

	"github.com/google/uuid"
)

// ExpenseType is a validated expense category. Build one with New or
// rehydrate a stored one with Restore.
type ExpenseType struct {
	id          uuid.UUID
	name        string
	description string
}

// New validates name then description and returns an ExpenseType with a
// fresh id. Name uniqueness is enforced by storage, not here.
func New(name, description string) (*ExpenseType, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrMissingName
	}
	if strings.TrimSpace(description) == "" {
		return nil, ErrMissingDescription
	}

	return &ExpenseType{
		id:          uuid.New(),
		name:        name,
		description: description,
	}, nil
}

// Restore rebuilds an ExpenseType from storage.
func Restore(id uuid.UUID, name, description string) *ExpenseType {
	return &ExpenseType{id: id, name: name, description: description}
}

func (e *ExpenseType) ID() uuid.UUID       { return e.id }
func (e *ExpenseType) Name() string        { return e.name }
func (e *ExpenseType) Description() string { return e.description }

// WithID returns a copy of e carrying id.
func (e *ExpenseType) WithID(id uuid.UUID) *ExpenseType {
	cp := *e
	cp.id = id
	return &cp
}
