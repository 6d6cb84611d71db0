package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/arnav/teamforge/internal/app/models"
	"github.com/arnav/teamforge/internal/pkg/apperrors"
)

// TeamService carries the administrative lifecycle operations: bulk
// finalization of the remainder, manual override creation, and
// dissolution. These bypass consensus but enforce the same batch and
// membership invariants as the matcher.
type TeamService struct {
	students StudentStore
	teams    TeamStore
	settings SettingsStore
	logger   zerolog.Logger
}

// NewTeamService creates a new team service
func NewTeamService(students StudentStore, teams TeamStore, settings SettingsStore, logger zerolog.Logger) *TeamService {
	return &TeamService{
		students: students,
		teams:    teams,
		settings: settings,
		logger:   logger,
	}
}

// Finalize force-closes the batch's selection gate and groups every
// remaining unassigned student, in storage order, into teams of three with
// one trailing team of one or two. Afterwards no student in the batch is
// left unassigned.
func (s *TeamService) Finalize(ctx context.Context, batch models.Batch) (int, error) {
	if !batch.Valid() {
		return 0, apperrors.ErrInvalidBatch
	}

	// Finalization implies no further organic changes.
	if err := s.settings.SetSelectionOpen(ctx, batch, false); err != nil {
		return 0, err
	}

	unassigned, err := s.students.ListUnassignedByBatch(ctx, batch)
	if err != nil {
		return 0, err
	}

	teamsCreated := 0
	for start := 0; start < len(unassigned); start += models.TeamSize {
		end := start + models.TeamSize
		if end > len(unassigned) {
			end = len(unassigned)
		}

		members := make([]string, 0, end-start)
		for _, st := range unassigned[start:end] {
			members = append(members, st.RollNo)
		}

		if _, err := s.teams.CreateAssigned(ctx, batch, members); err != nil {
			return teamsCreated, fmt.Errorf("error finalizing group %v: %w", members, err)
		}
		teamsCreated++
	}

	s.logger.Info().
		Str("batch", string(batch)).
		Int("teamsCreated", teamsCreated).
		Msg("Batch finalized")

	return teamsCreated, nil
}

// ManualCreate is the admin override: it commits a team of one to three
// students directly, bypassing consensus. Members keep the given order
// rather than being sorted.
func (s *TeamService) ManualCreate(ctx context.Context, batch models.Batch, members []string) (*models.Team, error) {
	if !batch.Valid() {
		return nil, apperrors.ErrInvalidBatch
	}

	if len(members) < 1 || len(members) > models.TeamSize {
		return nil, apperrors.ErrInvalidTeamSize
	}

	seen := make(map[string]struct{}, len(members))
	for _, m := range members {
		if _, dup := seen[m]; dup {
			return nil, apperrors.ErrInvalidTeamSize
		}
		seen[m] = struct{}{}
	}

	students, err := s.students.GetManyByRollNos(ctx, members)
	if err != nil {
		return nil, err
	}
	if len(students) != len(members) {
		return nil, apperrors.ErrStudentNotFound
	}

	for _, st := range students {
		if st.Batch != batch {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrCrossBatch, st.RollNo)
		}
		if st.Assigned() {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrAlreadyTeamed, st.RollNo)
		}
	}

	team, err := s.teams.CreateAssigned(ctx, batch, members)
	if err != nil {
		// A member teamed between validation and commit is a conflict
		// here, unlike the matcher's silent race loss.
		if errors.Is(err, apperrors.ErrMemberClaimed) {
			return nil, apperrors.ErrAlreadyTeamed
		}
		return nil, err
	}

	s.logger.Info().
		Str("teamId", team.ID.String()).
		Str("batch", string(batch)).
		Strs("members", members).
		Msg("Team created by admin override")

	return team, nil
}

// Dissolve deletes a team and returns its former members to the pool.
// Their preferences and edit attempts are not restored: they re-select
// from scratch within whatever budget remains.
func (s *TeamService) Dissolve(ctx context.Context, teamID uuid.UUID) error {
	team, err := s.teams.Dissolve(ctx, teamID)
	if err != nil {
		return err
	}

	s.logger.Info().
		Str("teamId", teamID.String()).
		Strs("members", team.Members).
		Msg("Team dissolved")

	return nil
}
