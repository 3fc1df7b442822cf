package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/expense-ledger/internal/domain/expenseentry"
	"github.com/jsamuelsen11/expense-ledger/internal/ports"
)

// Request bodies carry no validation of their own: the domain constructors
// are the only validation authority. Optional or nullable ids are pointers
// so that a JSON null reaches the constructor as a missing value instead of
// failing to decode.

// CostBearerRequest is the JSON body for creating or replacing a cost bearer.
type CostBearerRequest struct {
	Name       string     `json:"name"`
	ExistsFrom time.Time  `json:"exists_from"`
	ExistsTo   *time.Time `json:"exists_to,omitempty"`
}

// ToInput converts the request into the service input.
func (r *CostBearerRequest) ToInput() ports.CostBearerNew {
	return ports.CostBearerNew{
		Name:       r.Name,
		ExistsFrom: r.ExistsFrom,
		ExistsTo:   r.ExistsTo,
	}
}

// ExpenseTypeRequest is the JSON body for creating or replacing an expense type.
type ExpenseTypeRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ToInput converts the request into the service input.
func (r *ExpenseTypeRequest) ToInput() ports.ExpenseTypeNew {
	return ports.ExpenseTypeNew{
		Name:        r.Name,
		Description: r.Description,
	}
}

// CostShareRequest is one element of ExpenseEntryRequest.CostShares.
type CostShareRequest struct {
	CostBearerID *uuid.UUID `json:"cost_bearer_id"`
	Amount       float64    `json:"amount"`
}

// ExpenseEntryRequest is the JSON body for creating or replacing an expense
// entry. ExpenseDate defaults to the time of the request when omitted.
type ExpenseEntryRequest struct {
	CostShares  []CostShareRequest `json:"cost_shares"`
	ExpenseType *uuid.UUID         `json:"expense_type"`
	Description string             `json:"description"`
	ExpenseDate *time.Time         `json:"expense_date,omitempty"`
}

// ToInput converts the request into the service input. Missing ids become
// uuid.Nil, which the constructor rejects.
func (r *ExpenseEntryRequest) ToInput() ports.ExpenseEntryNew {
	var shares []expenseentry.CostShare
	if r.CostShares != nil {
		shares = make([]expenseentry.CostShare, len(r.CostShares))
		for i, s := range r.CostShares {
			shares[i] = expenseentry.CostShare{
				CostBearerID: derefID(s.CostBearerID),
				Amount:       s.Amount,
			}
		}
	}

	return ports.ExpenseEntryNew{
		CostShares:  shares,
		ExpenseType: derefID(r.ExpenseType),
		Description: r.Description,
		ExpenseDate: r.ExpenseDate,
	}
}

func derefID(id *uuid.UUID) uuid.UUID {
	if id == nil {
		return uuid.Nil
	}
	return *id
}
