package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arnav/teamforge/internal/app/models"
	"github.com/arnav/teamforge/internal/pkg/dberrors"
)

// PreferenceRepository handles database operations for preferences
type PreferenceRepository struct {
	db *pgxpool.Pool
}

// NewPreferenceRepository creates a new preference repository
func NewPreferenceRepository(db *pgxpool.Pool) *PreferenceRepository {
	return &PreferenceRepository{
		db: db,
	}
}

// GetByRollNo retrieves a student's current preference. A missing
// preference is not an error: it returns (nil, nil), since "no nomination
// yet" is a normal state the matcher must handle.
func (r *PreferenceRepository) GetByRollNo(ctx context.Context, rollNo string) (*models.Preference, error) {
	query := `
		SELECT roll_no, batch, choices, updated_at
		FROM preferences
		WHERE roll_no = $1
	`

	var pref models.Preference
	err := r.db.QueryRow(ctx, query, rollNo).Scan(
		&pref.RollNo,
		&pref.Batch,
		&pref.Choices,
		&pref.UpdatedAt,
	)
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving preference: %w", err)
	}

	return &pref, nil
}

// Upsert creates or replaces the student's preference.
func (r *PreferenceRepository) Upsert(ctx context.Context, pref *models.Preference) error {
	query := `
		INSERT INTO preferences (roll_no, batch, choices, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (roll_no)
		DO UPDATE SET batch = EXCLUDED.batch, choices = EXCLUDED.choices, updated_at = now()
	`

	if _, err := r.db.Exec(ctx, query, pref.RollNo, pref.Batch, pref.Choices); err != nil {
		return fmt.Errorf("error upserting preference: %w", err)
	}

	return nil
}

// ListByBatch retrieves all live preferences in a batch. Admin dashboard
// only; student-facing projections never expose other students' choices.
func (r *PreferenceRepository) ListByBatch(ctx context.Context, batch models.Batch) ([]*models.Preference, error) {
	query := `
		SELECT roll_no, batch, choices, updated_at
		FROM preferences
		WHERE batch = $1
	`

	rows, err := r.db.Query(ctx, query, batch)
	if err != nil {
		return nil, fmt.Errorf("error listing preferences: %w", err)
	}
	defer rows.Close()

	var prefs []*models.Preference
	for rows.Next() {
		var pref models.Preference
		if err := rows.Scan(
			&pref.RollNo,
			&pref.Batch,
			&pref.Choices,
			&pref.UpdatedAt,
		); err != nil {
			return nil, err
		}
		prefs = append(prefs, &pref)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return prefs, nil
}
