package app

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/expense-ledger/internal/domain/expensetype"
	"github.com/jsamuelsen11/expense-ledger/internal/ports"
)

// Compile-time check that ExpenseTypeService implements ports.ExpenseTypeService.
var _ ports.ExpenseTypeService = (*ExpenseTypeService)(nil)

// ExpenseTypeService implements ports.ExpenseTypeService. Name uniqueness is
// left to storage; a duplicate surfaces from the writer as
// expensetype.ErrDuplicateName and is translated like any other variant.
type ExpenseTypeService struct {
	reader ports.ExpenseTypeReader
	writer ports.ExpenseTypeWriter
	logger *slog.Logger
}

// NewExpenseTypeService creates an ExpenseTypeService. A nil logger discards output.
func NewExpenseTypeService(reader ports.ExpenseTypeReader, writer ports.ExpenseTypeWriter, logger *slog.Logger) *ExpenseTypeService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ExpenseTypeService{
		reader: reader,
		writer: writer,
		logger: logger,
	}
}

// Create validates input and stores a new expense type.
func (s *ExpenseTypeService) Create(ctx context.Context, input ports.ExpenseTypeNew) (*expensetype.ExpenseType, error) {
	s.logger.InfoContext(ctx, "creating expense type", slog.String("name", input.Name))

	expenseType, err := expensetype.New(input.Name, input.Description)
	if err != nil {
		s.logger.WarnContext(ctx, "expense type rejected",
			slog.String("operation", "Create"),
			slog.Any("error", err),
		)
		return nil, TranslateError(err)
	}

	created, err := s.writer.Insert(ctx, expenseType)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create expense type",
			slog.String("operation", "Create"),
			slog.String("id", expenseType.ID().String()),
			slog.Any("error", err),
		)
		return nil, TranslateError(err)
	}

	return created, nil
}

// Update validates input, then replaces the expense type stored under id.
func (s *ExpenseTypeService) Update(ctx context.Context, id uuid.UUID, input ports.ExpenseTypeNew) (*expensetype.ExpenseType, error) {
	s.logger.InfoContext(ctx, "updating expense type", slog.String("id", id.String()))

	expenseType, err := expensetype.New(input.Name, input.Description)
	if err != nil {
		s.logger.WarnContext(ctx, "expense type rejected",
			slog.String("operation", "Update"),
			slog.String("id", id.String()),
			slog.Any("error", err),
		)
		return nil, TranslateError(err)
	}

	updated, err := s.writer.Update(ctx, id, expenseType)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update expense type",
			slog.String("operation", "Update"),
			slog.String("id", id.String()),
			slog.Any("error", err),
		)
		return nil, TranslateError(err)
	}

	return updated, nil
}

// Delete removes the expense type stored under id.
func (s *ExpenseTypeService) Delete(ctx context.Context, id uuid.UUID) error {
	s.logger.InfoContext(ctx, "deleting expense type", slog.String("id", id.String()))

	if err := s.writer.Delete(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete expense type",
			slog.String("operation", "Delete"),
			slog.String("id", id.String()),
			slog.Any("error", err),
		)
		return err
	}

	return nil
}

// Get returns the expense type stored under id.
func (s *ExpenseTypeService) Get(ctx context.Context, id uuid.UUID) (*expensetype.ExpenseType, error) {
	s.logger.InfoContext(ctx, "fetching expense type", slog.String("id", id.String()))

	expenseType, err := s.reader.Get(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch expense type",
			slog.String("operation", "Get"),
			slog.String("id", id.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	return expenseType, nil
}
