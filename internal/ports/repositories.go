package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/expense-ledger/internal/domain/costbearer"
	"github.com/jsamuelsen11/expense-ledger/internal/domain/expenseentry"
	"github.com/jsamuelsen11/expense-ledger/internal/domain/expensetype"
)

// Repository ports are implemented by storage adapters and called by the
// application layer. Each entity kind has a reader and a writer so services
// can depend on only the half they use. Implementations must be safe for
// concurrent use.
//
// NotFound failures are returned as a *domain.Error of KindNotFound carrying
// the entity package's NotFoundMessage.

// CostBearerReader loads cost bearers.
type CostBearerReader interface {
	// Get returns the cost bearer stored under id.
	Get(ctx context.Context, id uuid.UUID) (*costbearer.CostBearer, error)
}

// CostBearerWriter stores cost bearers.
type CostBearerWriter interface {
	// Insert stores a new cost bearer and returns it as stored.
	Insert(ctx context.Context, bearer *costbearer.CostBearer) (*costbearer.CostBearer, error)

	// Update replaces the cost bearer stored under id with bearer's fields.
	// The stored identity stays id. Returns NotFound if id is unknown.
	Update(ctx context.Context, id uuid.UUID, bearer *costbearer.CostBearer) (*costbearer.CostBearer, error)

	// Delete removes the cost bearer stored under id.
	Delete(ctx context.Context, id uuid.UUID) error
}

// ExpenseTypeReader loads expense types.
type ExpenseTypeReader interface {
	Get(ctx context.Context, id uuid.UUID) (*expensetype.ExpenseType, error)
}

// ExpenseTypeWriter stores expense types. Insert and Update return
// expensetype.ErrDuplicateName when another expense type already uses the name.
type ExpenseTypeWriter interface {
	Insert(ctx context.Context, expenseType *expensetype.ExpenseType) (*expensetype.ExpenseType, error)
	Update(ctx context.Context, id uuid.UUID, expenseType *expensetype.ExpenseType) (*expensetype.ExpenseType, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ExpenseEntryReader loads expense entries with their cost shares in order.
type ExpenseEntryReader interface {
	Get(ctx context.Context, id uuid.UUID) (*expenseentry.ExpenseEntry, error)
}

// ExpenseEntryWriter stores expense entries. An entry and its cost shares
// are written atomically.
type ExpenseEntryWriter interface {
	Insert(ctx context.Context, entry *expenseentry.ExpenseEntry) (*expenseentry.ExpenseEntry, error)
	Update(ctx context.Context, id uuid.UUID, entry *expenseentry.ExpenseEntry) (*expenseentry.ExpenseEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
