package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/expense-ledger/internal/domain"
	"github.com/jsamuelsen11/expense-ledger/internal/domain/costbearer"
	"github.com/jsamuelsen11/expense-ledger/internal/platform/database"
	"github.com/jsamuelsen11/expense-ledger/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.CostBearerReader = (*CostBearerRepository)(nil)
	_ ports.CostBearerWriter = (*CostBearerRepository)(nil)
)

// CostBearerRepository stores cost bearers in the cost_bearers table.
type CostBearerRepository struct {
	store Store
}

// NewCostBearerRepository creates a CostBearerRepository.
func NewCostBearerRepository(store Store) *CostBearerRepository {
	return &CostBearerRepository{store: store}
}

func (r *CostBearerRepository) Get(ctx context.Context, id uuid.UUID) (*costbearer.CostBearer, error) {
	var bearer *costbearer.CostBearer
	err := r.store.Run(ctx, "cost_bearer.get", func(ctx context.Context, q database.Querier) error {
		var (
			name, from string
			to         sql.NullString
		)
		err := q.QueryRowContext(ctx,
			"SELECT name, exists_from, exists_to FROM cost_bearers WHERE id = ?",
			id.String(),
		).Scan(&name, &from, &to)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NotFound(costbearer.NotFoundMessage)
		}
		if err != nil {
			return fmt.Errorf("selecting cost bearer: %w", err)
		}

		existsFrom, err := parseTime(from)
		if err != nil {
			return err
		}
		var existsTo *time.Time
		if to.Valid {
			t, err := parseTime(to.String)
			if err != nil {
				return err
			}
			existsTo = &t
		}

		bearer = costbearer.Restore(id, name, existsFrom, existsTo)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return bearer, nil
}

func (r *CostBearerRepository) Insert(ctx context.Context, bearer *costbearer.CostBearer) (*costbearer.CostBearer, error) {
	err := r.store.Run(ctx, "cost_bearer.insert", func(ctx context.Context, q database.Querier) error {
		_, err := q.ExecContext(ctx,
			"INSERT INTO cost_bearers (id, name, exists_from, exists_to) VALUES (?, ?, ?, ?)",
			bearer.ID().String(), bearer.Name(), formatTime(bearer.ExistsFrom()), existsToColumn(bearer),
		)
		if err != nil {
			return fmt.Errorf("inserting cost bearer: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return bearer, nil
}

func (r *CostBearerRepository) Update(ctx context.Context, id uuid.UUID, bearer *costbearer.CostBearer) (*costbearer.CostBearer, error) {
	err := r.store.Run(ctx, "cost_bearer.update", func(ctx context.Context, q database.Querier) error {
		res, err := q.ExecContext(ctx,
			"UPDATE cost_bearers SET name = ?, exists_from = ?, exists_to = ? WHERE id = ?",
			bearer.Name(), formatTime(bearer.ExistsFrom()), existsToColumn(bearer), id.String(),
		)
		if err != nil {
			return fmt.Errorf("updating cost bearer: %w", err)
		}
		return requireAffected(res, domain.NotFound(costbearer.NotFoundMessage))
	})
	if err != nil {
		return nil, err
	}
	return bearer.WithID(id), nil
}

func (r *CostBearerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.store.Run(ctx, "cost_bearer.delete", func(ctx context.Context, q database.Querier) error {
		res, err := q.ExecContext(ctx, "DELETE FROM cost_bearers WHERE id = ?", id.String())
		if err != nil {
			return fmt.Errorf("deleting cost bearer: %w", err)
		}
		return requireAffected(res, domain.NotFound(costbearer.NotFoundMessage))
	})
}

func existsToColumn(bearer *costbearer.CostBearer) sql.NullString {
	to, ok := bearer.ExistsTo()
	if !ok {
		return sql.NullString{}
	}
	return sql.NullString{String: formatTime(to), Valid: true}
}
