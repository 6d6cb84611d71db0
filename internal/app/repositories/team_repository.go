package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arnav/teamforge/internal/app/models"
	"github.com/arnav/teamforge/internal/db"
	"github.com/arnav/teamforge/internal/pkg/apperrors"
	"github.com/arnav/teamforge/internal/pkg/dberrors"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *pgxpool.Pool
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *pgxpool.Pool) *TeamRepository {
	return &TeamRepository{
		db: db,
	}
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	query := `
		SELECT id, batch, members, created_at
		FROM teams
		WHERE id = $1
	`

	var team models.Team
	err := r.db.QueryRow(ctx, query, id).Scan(
		&team.ID,
		&team.Batch,
		&team.Members,
		&team.CreatedAt,
	)
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("error retrieving team: %w", err)
	}

	return &team, nil
}

// ListByBatch retrieves all teams in a batch, oldest first.
func (r *TeamRepository) ListByBatch(ctx context.Context, batch models.Batch) ([]*models.Team, error) {
	query := `
		SELECT id, batch, members, created_at
		FROM teams
		WHERE batch = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, batch)
	if err != nil {
		return nil, fmt.Errorf("error listing teams: %w", err)
	}
	defer rows.Close()

	var teams []*models.Team
	for rows.Next() {
		var team models.Team
		if err := rows.Scan(
			&team.ID,
			&team.Batch,
			&team.Members,
			&team.CreatedAt,
		); err != nil {
			return nil, err
		}
		teams = append(teams, &team)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return teams, nil
}

// CreateAssigned commits a team in a single transaction: it inserts the
// team row, claims every member with a conditional update on team_id, and
// deletes their preferences. If any member was already claimed by a
// concurrent operation the whole transaction rolls back and
// apperrors.ErrMemberClaimed is returned; nothing is partially written.
func (r *TeamRepository) CreateAssigned(ctx context.Context, batch models.Batch, members []string) (*models.Team, error) {
	team := &models.Team{
		ID:        uuid.New(),
		Batch:     batch,
		Members:   members,
		CreatedAt: time.Now().UTC(),
	}

	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO teams (id, batch, members, created_at)
			VALUES ($1, $2, $3, $4)
		`, team.ID, team.Batch, team.Members, team.CreatedAt)
		if err != nil {
			return fmt.Errorf("error creating team: %w", err)
		}

		tag, err := tx.Exec(ctx, `
			UPDATE students
			SET team_id = $1
			WHERE roll_no = ANY($2) AND team_id IS NULL
		`, team.ID, team.Members)
		if err != nil {
			return fmt.Errorf("error assigning members: %w", err)
		}

		if tag.RowsAffected() != int64(len(team.Members)) {
			return apperrors.ErrMemberClaimed
		}

		if _, err := tx.Exec(ctx, `
			DELETE FROM preferences WHERE roll_no = ANY($1)
		`, team.Members); err != nil {
			return fmt.Errorf("error cleaning up preferences: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return team, nil
}

// Dissolve deletes a team and clears team_id on every member in a single
// transaction. Preferences are not restored: dissolved members return to
// the pool with no recorded choices.
func (r *TeamRepository) Dissolve(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	team, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	err = db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `
			UPDATE students SET team_id = NULL WHERE team_id = $1
		`, id); err != nil {
			return fmt.Errorf("error clearing member assignments: %w", err)
		}

		tag, err := tx.Exec(ctx, `DELETE FROM teams WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("error deleting team: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrTeamNotFound
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return team, nil
}
