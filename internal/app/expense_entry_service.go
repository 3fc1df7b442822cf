package app

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/expense-ledger/internal/domain/expenseentry"
	"github.com/jsamuelsen11/expense-ledger/internal/ports"
)

// Compile-time check that ExpenseEntryService implements ports.ExpenseEntryService.
var _ ports.ExpenseEntryService = (*ExpenseEntryService)(nil)

// ExpenseEntryService implements ports.ExpenseEntryService. It does not
// check that referenced cost bearers or the expense type exist.
type ExpenseEntryService struct {
	reader ports.ExpenseEntryReader
	writer ports.ExpenseEntryWriter
	logger *slog.Logger
}

// NewExpenseEntryService creates an ExpenseEntryService. A nil logger discards output.
func NewExpenseEntryService(reader ports.ExpenseEntryReader, writer ports.ExpenseEntryWriter, logger *slog.Logger) *ExpenseEntryService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ExpenseEntryService{
		reader: reader,
		writer: writer,
		logger: logger,
	}
}

func newEntry(input ports.ExpenseEntryNew) (*expenseentry.ExpenseEntry, error) {
	return expenseentry.New(input.CostShares, input.ExpenseType, input.Description, input.ExpenseDate)
}

// Create validates input and stores a new expense entry.
func (s *ExpenseEntryService) Create(ctx context.Context, input ports.ExpenseEntryNew) (*expenseentry.ExpenseEntry, error) {
	s.logger.InfoContext(ctx, "creating expense entry",
		slog.String("expense_type", input.ExpenseType.String()),
		slog.Int("cost_shares", len(input.CostShares)),
	)

	entry, err := newEntry(input)
	if err != nil {
		s.logger.WarnContext(ctx, "expense entry rejected",
			slog.String("operation", "Create"),
			slog.Any("error", err),
		)
		return nil, TranslateError(err)
	}

	created, err := s.writer.Insert(ctx, entry)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create expense entry",
			slog.String("operation", "Create"),
			slog.String("id", entry.ID().String()),
			slog.Any("error", err),
		)
		return nil, TranslateError(err)
	}

	return created, nil
}

// Update validates input, then replaces the expense entry stored under id.
func (s *ExpenseEntryService) Update(ctx context.Context, id uuid.UUID, input ports.ExpenseEntryNew) (*expenseentry.ExpenseEntry, error) {
	s.logger.InfoContext(ctx, "updating expense entry", slog.String("id", id.String()))

	entry, err := newEntry(input)
	if err != nil {
		s.logger.WarnContext(ctx, "expense entry rejected",
			slog.String("operation", "Update"),
			slog.String("id", id.String()),
			slog.Any("error", err),
		)
		return nil, TranslateError(err)
	}

	updated, err := s.writer.Update(ctx, id, entry)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update expense entry",
			slog.String("operation", "Update"),
			slog.String("id", id.String()),
			slog.Any("error", err),
		)
		return nil, TranslateError(err)
	}

	return updated, nil
}

// Delete removes the expense entry stored under id along with its cost shares.
func (s *ExpenseEntryService) Delete(ctx context.Context, id uuid.UUID) error {
	s.logger.InfoContext(ctx, "deleting expense entry", slog.String("id", id.String()))

	if err := s.writer.Delete(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete expense entry",
			slog.String("operation", "Delete"),
			slog.String("id", id.String()),
			slog.Any("error", err),
		)
		return err
	}

	return nil
}

// Get returns the expense entry stored under id.
func (s *ExpenseEntryService) Get(ctx context.Context, id uuid.UUID) (*expenseentry.ExpenseEntry, error) {
	s.logger.InfoContext(ctx, "fetching expense entry", slog.String("id", id.String()))

	entry, err := s.reader.Get(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch expense entry",
			slog.String("operation", "Get"),
			slog.String("id", id.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	return entry, nil
}
