package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/expense-ledger/internal/domain"
	"github.com/jsamuelsen11/expense-ledger/internal/domain/expenseentry"
	"github.com/jsamuelsen11/expense-ledger/internal/platform/database"
	"github.com/jsamuelsen11/expense-ledger/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.ExpenseEntryReader = (*ExpenseEntryRepository)(nil)
	_ ports.ExpenseEntryWriter = (*ExpenseEntryRepository)(nil)
)

// ExpenseEntryRepository stores expense entries across expense_entries and
// cost_shares. Every write touches both tables inside one transaction.
type ExpenseEntryRepository struct {
	store Store
}

// NewExpenseEntryRepository creates an ExpenseEntryRepository.
func NewExpenseEntryRepository(store Store) *ExpenseEntryRepository {
	return &ExpenseEntryRepository{store: store}
}

func (r *ExpenseEntryRepository) Get(ctx context.Context, id uuid.UUID) (*expenseentry.ExpenseEntry, error) {
	var entry *expenseentry.ExpenseEntry
	err := r.store.InTx(ctx, "expense_entry.get", func(ctx context.Context, q database.Querier) error {
		var date, expenseType, description string
		err := q.QueryRowContext(ctx,
			"SELECT expense_date, expense_type, description FROM expense_entries WHERE id = ?",
			id.String(),
		).Scan(&date, &expenseType, &description)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NotFound(expenseentry.NotFoundMessage)
		}
		if err != nil {
			return fmt.Errorf("selecting expense entry: %w", err)
		}

		expenseDate, err := parseTime(date)
		if err != nil {
			return err
		}
		typeID, err := parseID(expenseType)
		if err != nil {
			return err
		}
		shares, err := selectShares(ctx, q, id)
		if err != nil {
			return err
		}

		entry = expenseentry.Restore(id, expenseDate, shares, typeID, description)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (r *ExpenseEntryRepository) Insert(ctx context.Context, entry *expenseentry.ExpenseEntry) (*expenseentry.ExpenseEntry, error) {
	err := r.store.InTx(ctx, "expense_entry.insert", func(ctx context.Context, q database.Querier) error {
		_, err := q.ExecContext(ctx,
			"INSERT INTO expense_entries (id, expense_date, expense_type, description) VALUES (?, ?, ?, ?)",
			entry.ID().String(), formatTime(entry.ExpenseDate()), entry.ExpenseType().String(), entry.Description(),
		)
		if err != nil {
			return fmt.Errorf("inserting expense entry: %w", err)
		}
		return insertShares(ctx, q, entry.ID(), entry.CostShares())
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (r *ExpenseEntryRepository) Update(ctx context.Context, id uuid.UUID, entry *expenseentry.ExpenseEntry) (*expenseentry.ExpenseEntry, error) {
	err := r.store.InTx(ctx, "expense_entry.update", func(ctx context.Context, q database.Querier) error {
		res, err := q.ExecContext(ctx,
			"UPDATE expense_entries SET expense_date = ?, expense_type = ?, description = ? WHERE id = ?",
			formatTime(entry.ExpenseDate()), entry.ExpenseType().String(), entry.Description(), id.String(),
		)
		if err != nil {
			return fmt.Errorf("updating expense entry: %w", err)
		}
		if err := requireAffected(res, domain.NotFound(expenseentry.NotFoundMessage)); err != nil {
			return err
		}

		if _, err := q.ExecContext(ctx, "DELETE FROM cost_shares WHERE entry_id = ?", id.String()); err != nil {
			return fmt.Errorf("clearing cost shares: %w", err)
		}
		return insertShares(ctx, q, id, entry.CostShares())
	})
	if err != nil {
		return nil, err
	}
	return entry.WithID(id), nil
}

// Delete removes the entry; its cost shares go with it through ON DELETE CASCADE.
func (r *ExpenseEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.store.Run(ctx, "expense_entry.delete", func(ctx context.Context, q database.Querier) error {
		res, err := q.ExecContext(ctx, "DELETE FROM expense_entries WHERE id = ?", id.String())
		if err != nil {
			return fmt.Errorf("deleting expense entry: %w", err)
		}
		return requireAffected(res, domain.NotFound(expenseentry.NotFoundMessage))
	})
}

func insertShares(ctx context.Context, q database.Querier, entryID uuid.UUID, shares []expenseentry.CostShare) error {
	for i, share := range shares {
		_, err := q.ExecContext(ctx,
			"INSERT INTO cost_shares (entry_id, position, cost_bearer_id, amount) VALUES (?, ?, ?, ?)",
			entryID.String(), i, share.CostBearerID.String(), share.Amount,
		)
		if err != nil {
			return fmt.Errorf("inserting cost share %d: %w", i, err)
		}
	}
	return nil
}

func selectShares(ctx context.Context, q database.Querier, entryID uuid.UUID) (shares []expenseentry.CostShare, err error) {
	rows, err := q.QueryContext(ctx,
		"SELECT cost_bearer_id, amount FROM cost_shares WHERE entry_id = ? ORDER BY position",
		entryID.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("selecting cost shares: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing cost share rows: %w", closeErr)
		}
	}()

	for rows.Next() {
		var (
			bearer string
			amount float64
		)
		if err := rows.Scan(&bearer, &amount); err != nil {
			return nil, fmt.Errorf("scanning cost share: %w", err)
		}
		bearerID, err := parseID(bearer)
		if err != nil {
			return nil, err
		}
		shares = append(shares, expenseentry.CostShare{CostBearerID: bearerID, Amount: amount})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cost shares: %w", err)
	}
	return shares, nil
}
