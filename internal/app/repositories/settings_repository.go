package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arnav/teamforge/internal/app/models"
	"github.com/arnav/teamforge/internal/pkg/dberrors"
)

// SettingsRepository handles the per-batch selection gate rows
type SettingsRepository struct {
	db *pgxpool.Pool
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{
		db: db,
	}
}

// IsSelectionOpen returns the batch's gate flag. A missing row means the
// gate has never been toggled and the batch is open.
func (r *SettingsRepository) IsSelectionOpen(ctx context.Context, batch models.Batch) (bool, error) {
	var open bool
	err := r.db.QueryRow(ctx, `
		SELECT selection_open FROM selection_settings WHERE batch = $1
	`, batch).Scan(&open)
	if err != nil {
		if dberrors.IsNotFound(err) {
			return true, nil
		}
		return false, fmt.Errorf("error reading selection gate: %w", err)
	}

	return open, nil
}

// SetSelectionOpen upserts the batch's gate flag. Idempotent.
func (r *SettingsRepository) SetSelectionOpen(ctx context.Context, batch models.Batch, open bool) error {
	query := `
		INSERT INTO selection_settings (batch, selection_open)
		VALUES ($1, $2)
		ON CONFLICT (batch)
		DO UPDATE SET selection_open = EXCLUDED.selection_open
	`

	if _, err := r.db.Exec(ctx, query, batch, open); err != nil {
		return fmt.Errorf("error updating selection gate: %w", err)
	}

	return nil
}
