package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/expense-ledger/internal/domain"
	"github.com/jsamuelsen11/expense-ledger/internal/domain/expensetype"
	"github.com/jsamuelsen11/expense-ledger/internal/platform/database"
	"github.com/jsamuelsen11/expense-ledger/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.ExpenseTypeReader = (*ExpenseTypeRepository)(nil)
	_ ports.ExpenseTypeWriter = (*ExpenseTypeRepository)(nil)
)

// ExpenseTypeRepository stores expense types in the expense_types table.
// Names are unique; a clash surfaces as expensetype.ErrDuplicateName.
type ExpenseTypeRepository struct {
	store Store
}

// NewExpenseTypeRepository creates an ExpenseTypeRepository.
func NewExpenseTypeRepository(store Store) *ExpenseTypeRepository {
	return &ExpenseTypeRepository{store: store}
}

func (r *ExpenseTypeRepository) Get(ctx context.Context, id uuid.UUID) (*expensetype.ExpenseType, error) {
	var expenseType *expensetype.ExpenseType
	err := r.store.Run(ctx, "expense_type.get", func(ctx context.Context, q database.Querier) error {
		var name, description string
		err := q.QueryRowContext(ctx,
			"SELECT name, description FROM expense_types WHERE id = ?",
			id.String(),
		).Scan(&name, &description)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NotFound(expensetype.NotFoundMessage)
		}
		if err != nil {
			return fmt.Errorf("selecting expense type: %w", err)
		}

		expenseType = expensetype.Restore(id, name, description)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return expenseType, nil
}

func (r *ExpenseTypeRepository) Insert(ctx context.Context, expenseType *expensetype.ExpenseType) (*expensetype.ExpenseType, error) {
	err := r.store.Run(ctx, "expense_type.insert", func(ctx context.Context, q database.Querier) error {
		_, err := q.ExecContext(ctx,
			"INSERT INTO expense_types (id, name, description) VALUES (?, ?, ?)",
			expenseType.ID().String(), expenseType.Name(), expenseType.Description(),
		)
		if isUniqueViolation(err) {
			return expensetype.ErrDuplicateName
		}
		if err != nil {
			return fmt.Errorf("inserting expense type: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return expenseType, nil
}

func (r *ExpenseTypeRepository) Update(ctx context.Context, id uuid.UUID, expenseType *expensetype.ExpenseType) (*expensetype.ExpenseType, error) {
	err := r.store.Run(ctx, "expense_type.update", func(ctx context.Context, q database.Querier) error {
		res, err := q.ExecContext(ctx,
			"UPDATE expense_types SET name = ?, description = ? WHERE id = ?",
			expenseType.Name(), expenseType.Description(), id.String(),
		)
		if isUniqueViolation(err) {
			return expensetype.ErrDuplicateName
		}
		if err != nil {
			return fmt.Errorf("updating expense type: %w", err)
		}
		return requireAffected(res, domain.NotFound(expensetype.NotFoundMessage))
	})
	if err != nil {
		return nil, err
	}
	return expenseType.WithID(id), nil
}

func (r *ExpenseTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.store.Run(ctx, "expense_type.delete", func(ctx context.Context, q database.Querier) error {
		res, err := q.ExecContext(ctx, "DELETE FROM expense_types WHERE id = ?", id.String())
		if err != nil {
			return fmt.Errorf("deleting expense type: %w", err)
		}
		return requireAffected(res, domain.NotFound(expensetype.NotFoundMessage))
	})
}
