package services

import (
	"context"
	"fmt"

	"github.com/arnav/teamforge/internal/app/models"
	"github.com/arnav/teamforge/internal/pkg/apperrors"
)

// SelectionService manages the per-batch selection gate.
type SelectionService struct {
	settings SettingsStore
}

// NewSelectionService creates a new selection service
func NewSelectionService(settings SettingsStore) *SelectionService {
	return &SelectionService{settings: settings}
}

// IsOpen reports whether preference submission is currently allowed for
// the batch. Defaults to open when the gate has never been toggled.
func (s *SelectionService) IsOpen(ctx context.Context, batch models.Batch) (bool, error) {
	if !batch.Valid() {
		return false, apperrors.ErrInvalidBatch
	}
	return s.settings.IsSelectionOpen(ctx, batch)
}

// Open allows preference submission for the batch. Idempotent.
func (s *SelectionService) Open(ctx context.Context, batch models.Batch) error {
	if !batch.Valid() {
		return apperrors.ErrInvalidBatch
	}
	return s.settings.SetSelectionOpen(ctx, batch, true)
}

// Close blocks preference submission for the batch. Idempotent.
func (s *SelectionService) Close(ctx context.Context, batch models.Batch) error {
	if !batch.Valid() {
		return apperrors.ErrInvalidBatch
	}
	return s.settings.SetSelectionOpen(ctx, batch, false)
}

// Status returns the gate state of every batch at once.
func (s *SelectionService) Status(ctx context.Context) (map[models.Batch]bool, error) {
	status := make(map[models.Batch]bool, len(models.Batches))
	for _, batch := range models.Batches {
		open, err := s.settings.IsSelectionOpen(ctx, batch)
		if err != nil {
			return nil, fmt.Errorf("error reading gate for batch %s: %w", batch, err)
		}
		status[batch] = open
	}
	return status, nil
}
