package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/expense-ledger/internal/domain/costbearer"
	"github.com/jsamuelsen11/expense-ledger/internal/domain/expenseentry"
	"github.com/jsamuelsen11/expense-ledger/internal/domain/expensetype"
)

// CostBearerNew carries the unvalidated fields of a cost bearer as received
// from a client.
type CostBearerNew struct {
	Name       string
	ExistsFrom time.Time
	ExistsTo   *time.Time
}

// ExpenseTypeNew carries the unvalidated fields of an expense type.
type ExpenseTypeNew struct {
	Name        string
	Description string
}

// ExpenseEntryNew carries the unvalidated fields of an expense entry.
// A nil ExpenseDate means "now".
type ExpenseEntryNew struct {
	CostShares  []expenseentry.CostShare
	ExpenseType uuid.UUID
	Description string
	ExpenseDate *time.Time
}

// CostBearerService defines the service port for cost bearer operations.
// Implemented by the application layer; called by inbound adapters (handlers).
type CostBearerService interface {
	// Create validates input and stores a new cost bearer.
	// Returns a ValidationFailed *domain.Error if input is rejected.
	Create(ctx context.Context, input CostBearerNew) (*costbearer.CostBearer, error)

	// Update validates input and replaces the cost bearer stored under id.
	// Validation runs before the lookup, so an invalid body on an unknown id
	// reports ValidationFailed.
	Update(ctx context.Context, id uuid.UUID, input CostBearerNew) (*costbearer.CostBearer, error)

	// Delete removes a cost bearer. Returns NotFound if id is unknown.
	Delete(ctx context.Context, id uuid.UUID) error

	// Get returns a cost bearer. Returns NotFound if id is unknown.
	Get(ctx context.Context, id uuid.UUID) (*costbearer.CostBearer, error)
}

// ExpenseTypeService defines the service port for expense type operations.
// Create and Update report a duplicate name as ValidationFailed.
type ExpenseTypeService interface {
	Create(ctx context.Context, input ExpenseTypeNew) (*expensetype.ExpenseType, error)
	Update(ctx context.Context, id uuid.UUID, input ExpenseTypeNew) (*expensetype.ExpenseType, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*expensetype.ExpenseType, error)
}

// ExpenseEntryService defines the service port for expense entry operations.
// Referenced cost bearers and expense types are not checked for existence.
type ExpenseEntryService interface {
	Create(ctx context.Context, input ExpenseEntryNew) (*expenseentry.ExpenseEntry, error)
	Update(ctx context.Context, id uuid.UUID, input ExpenseEntryNew) (*expenseentry.ExpenseEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*expenseentry.ExpenseEntry, error)
}
