// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/expense-ledger/internal/domain/costbearer"
	"github.com/jsamuelsen11/expense-ledger/internal/ports"
)

// Compile-time check that CostBearerService implements ports.CostBearerService.
var _ ports.CostBearerService = (*CostBearerService)(nil)

// CostBearerService implements ports.CostBearerService. It validates input
// through costbearer.New, persists through the repository ports, and
// translates validation variants into client-facing errors.
type CostBearerService struct {
	reader ports.CostBearerReader
	writer ports.CostBearerWriter
	logger *slog.Logger
}

// NewCostBearerService creates a CostBearerService. A nil logger discards output.
func NewCostBearerService(reader ports.CostBearerReader, writer ports.CostBearerWriter, logger *slog.Logger) *CostBearerService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CostBearerService{
		reader: reader,
		writer: writer,
		logger: logger,
	}
}

// Create validates input and stores a new cost bearer.
func (s *CostBearerService) Create(ctx context.Context, input ports.CostBearerNew) (*costbearer.CostBearer, error) {
	s.logger.InfoContext(ctx, "creating cost bearer", slog.String("name", input.Name))

	bearer, err := costbearer.New(input.Name, input.ExistsFrom, input.ExistsTo)
	if err != nil {
		s.logger.WarnContext(ctx, "cost bearer rejected",
			slog.String("operation", "Create"),
			slog.Any("error", err),
		)
		return nil, TranslateError(err)
	}

	created, err := s.writer.Insert(ctx, bearer)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create cost bearer",
			slog.String("operation", "Create"),
			slog.String("id", bearer.ID().String()),
			slog.Any("error", err),
		)
		return nil, TranslateError(err)
	}

	return created, nil
}

// Update validates input, then replaces the cost bearer stored under id.
func (s *CostBearerService) Update(ctx context.Context, id uuid.UUID, input ports.CostBearerNew) (*costbearer.CostBearer, error) {
	s.logger.InfoContext(ctx, "updating cost bearer", slog.String("id", id.String()))

	bearer, err := costbearer.New(input.Name, input.ExistsFrom, input.ExistsTo)
	if err != nil {
		s.logger.WarnContext(ctx, "cost bearer rejected",
			slog.String("operation", "Update"),
			slog.String("id", id.String()),
			slog.Any("error", err),
		)
		return nil, TranslateError(err)
	}

	updated, err := s.writer.Update(ctx, id, bearer)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update cost bearer",
			slog.String("operation", "Update"),
			slog.String("id", id.String()),
			slog.Any("error", err),
		)
		return nil, TranslateError(err)
	}

	return updated, nil
}

// Delete removes the cost bearer stored under id.
func (s *CostBearerService) Delete(ctx context.Context, id uuid.UUID) error {
	s.logger.InfoContext(ctx, "deleting cost bearer", slog.String("id", id.String()))

	if err := s.writer.Delete(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete cost bearer",
			slog.String("operation", "Delete"),
			slog.String("id", id.String()),
			slog.Any("error", err),
		)
		return err
	}

	return nil
}

// Get returns the cost bearer stored under id.
func (s *CostBearerService) Get(ctx context.Context, id uuid.UUID) (*costbearer.CostBearer, error) {
	s.logger.InfoContext(ctx, "fetching cost bearer", slog.String("id", id.String()))

	bearer, err := s.reader.Get(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch cost bearer",
			slog.String("operation", "Get"),
			slog.String("id", id.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	return bearer, nil
}
