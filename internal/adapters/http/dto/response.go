// Package dto provides the HTTP request and response shapes of the inbound
// adapter and the mapping of errors onto plain-text error responses.
package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/expense-ledger/internal/domain/costbearer"
	"github.com/jsamuelsen11/expense-ledger/internal/domain/expenseentry"
	"github.com/jsamuelsen11/expense-ledger/internal/domain/expensetype"
)

// CostBearerResponse represents a cost bearer in HTTP responses. ExistsTo is
// null for open-ended bearers.
type CostBearerResponse struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	ExistsFrom time.Time  `json:"exists_from"`
	ExistsTo   *time.Time `json:"exists_to"`
}

// ToCostBearerResponse converts a domain CostBearer to its response DTO.
func ToCostBearerResponse(b *costbearer.CostBearer) CostBearerResponse {
	resp := CostBearerResponse{
		ID:         b.ID(),
		Name:       b.Name(),
		ExistsFrom: b.ExistsFrom(),
	}
	if to, ok := b.ExistsTo(); ok {
		resp.ExistsTo = &to
	}
	return resp
}

// ExpenseTypeResponse represents an expense type in HTTP responses.
type ExpenseTypeResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

// ToExpenseTypeResponse converts a domain ExpenseType to its response DTO.
func ToExpenseTypeResponse(t *expensetype.ExpenseType) ExpenseTypeResponse {
	return ExpenseTypeResponse{
		ID:          t.ID(),
		Name:        t.Name(),
		Description: t.Description(),
	}
}

// CostShareResponse represents one cost share in HTTP responses.
type CostShareResponse struct {
	CostBearerID uuid.UUID `json:"cost_bearer_id"`
	Amount       float64   `json:"amount"`
}

// ExpenseEntryResponse represents an expense entry in HTTP responses.
// CostShares keep the order they were submitted in.
type ExpenseEntryResponse struct {
	ID          uuid.UUID           `json:"id"`
	ExpenseDate time.Time           `json:"expense_date"`
	CostShares  []CostShareResponse `json:"cost_shares"`
	ExpenseType uuid.UUID           `json:"expense_type"`
	Description string              `json:"description"`
}

// ToExpenseEntryResponse converts a domain ExpenseEntry to its response DTO.
func ToExpenseEntryResponse(e *expenseentry.ExpenseEntry) ExpenseEntryResponse {
	shares := e.CostShares()
	items := make([]CostShareResponse, len(shares))
	for i, s := range shares {
		items[i] = CostShareResponse{CostBearerID: s.CostBearerID, Amount: s.Amount}
	}

	return ExpenseEntryResponse{
		ID:          e.ID(),
		ExpenseDate: e.ExpenseDate(),
		CostShares:  items,
		ExpenseType: e.ExpenseType(),
		Description: e.Description(),
	}
}
