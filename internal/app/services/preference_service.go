package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/arnav/teamforge/internal/app/models"
	"github.com/arnav/teamforge/internal/pkg/apperrors"
)

// SaveResult reports the outcome of a preference save. A single save can
// have amplified effects: when it completes a 3-cycle, a team is created
// and up to three preferences are deleted in the same logical call.
type SaveResult struct {
	Saved            bool
	EditAttemptsLeft int
	TeamFormed       bool
	Team             *models.Team
}

// PreferenceService validates and records a student's two-person choice
// and runs the consensus matcher after every accepted write.
type PreferenceService struct {
	students StudentStore
	prefs    PreferenceStore
	teams    TeamStore
	settings SettingsStore
	logger   zerolog.Logger
}

// NewPreferenceService creates a new preference service
func NewPreferenceService(students StudentStore, prefs PreferenceStore, teams TeamStore, settings SettingsStore, logger zerolog.Logger) *PreferenceService {
	return &PreferenceService{
		students: students,
		prefs:    prefs,
		teams:    teams,
		settings: settings,
		logger:   logger,
	}
}

// Save validates and persists the student's nomination, decrements the
// edit budget, and invokes the consensus matcher. Every precondition is
// checked before the first write: a failed save leaves the store
// untouched.
func (s *PreferenceService) Save(ctx context.Context, rollNo string, choices []string) (*SaveResult, error) {
	student, err := s.students.GetByRollNo(ctx, rollNo)
	if err != nil {
		return nil, err
	}

	if student.Assigned() {
		return nil, apperrors.ErrAlreadyTeamed
	}

	if student.EditAttemptsLeft <= 0 {
		return nil, apperrors.ErrNoAttemptsLeft
	}

	open, err := s.settings.IsSelectionOpen(ctx, student.Batch)
	if err != nil {
		return nil, err
	}
	if !open {
		return nil, apperrors.ErrSelectionClosed
	}

	if err := validateChoices(rollNo, choices); err != nil {
		return nil, err
	}

	chosen, err := s.students.GetManyByRollNos(ctx, choices)
	if err != nil {
		return nil, err
	}
	if len(chosen) != 2 {
		return nil, apperrors.ErrChoiceNotFound
	}

	for _, c := range chosen {
		if c.Batch != student.Batch {
			return nil, apperrors.ErrCrossBatch
		}
		if c.Assigned() {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrTargetAlreadyTeamed, c.RollNo)
		}
	}

	if err := s.prefs.Upsert(ctx, &models.Preference{
		RollNo:  rollNo,
		Batch:   student.Batch,
		Choices: choices,
	}); err != nil {
		return nil, err
	}

	left, err := s.students.DecrementEditAttempts(ctx, rollNo)
	if err != nil {
		return nil, err
	}

	team, err := s.TryFormTeam(ctx, rollNo)
	if err != nil {
		return nil, err
	}

	if team != nil {
		s.logger.Info().
			Str("rollNo", rollNo).
			Str("teamId", team.ID.String()).
			Strs("members", team.Members).
			Msg("Team formed by mutual consensus")
	}

	return &SaveResult{
		Saved:            true,
		EditAttemptsLeft: left,
		TeamFormed:       team != nil,
		Team:             team,
	}, nil
}

// validateChoices checks the shape of a nomination: exactly two distinct
// roll numbers, neither of them the chooser.
func validateChoices(rollNo string, choices []string) error {
	if len(choices) != 2 {
		return apperrors.ErrInvalidChoices
	}
	if choices[0] == choices[1] {
		return apperrors.ErrInvalidChoices
	}
	if choices[0] == rollNo || choices[1] == rollNo {
		return apperrors.ErrSelfSelection
	}
	return nil
}

// TryFormTeam checks whether a 3-cycle of mutual choice now exists around
// the given student and, if so, commits the team. The check is re-derived
// from current store state on every call: preferences can be edited within
// the attempt budget, and any edit can retroactively complete or break a
// pending cycle, so nothing is tracked incrementally.
//
// A nil team with a nil error means no cycle exists yet — or that a
// concurrent caller committed the same cycle first, which is equally not
// an error.
func (s *PreferenceService) TryFormTeam(ctx context.Context, rollNo string) (*models.Team, error) {
	student, err := s.students.GetByRollNo(ctx, rollNo)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if student.Assigned() {
		return nil, nil
	}

	pref, err := s.prefs.GetByRollNo(ctx, rollNo)
	if err != nil {
		return nil, err
	}
	if pref == nil || len(pref.Choices) != 2 {
		return nil, nil
	}

	first, second := pref.Choices[0], pref.Choices[1]

	chosen, err := s.students.GetManyByRollNos(ctx, pref.Choices)
	if err != nil {
		return nil, err
	}
	if len(chosen) != 2 {
		return nil, nil
	}
	for _, c := range chosen {
		if c.Batch != student.Batch || c.Assigned() {
			return nil, nil
		}
	}

	firstPref, err := s.prefs.GetByRollNo(ctx, first)
	if err != nil {
		return nil, err
	}
	secondPref, err := s.prefs.GetByRollNo(ctx, second)
	if err != nil {
		return nil, err
	}
	if firstPref == nil || secondPref == nil {
		return nil, nil
	}

	// The cycle holds only when each party names exactly the other two.
	if !pref.Names(first, second) || !firstPref.Names(rollNo, second) || !secondPref.Names(rollNo, first) {
		return nil, nil
	}

	// Sorted members make the committed team reproducible regardless of
	// which of the three writes triggered formation.
	members := []string{rollNo, first, second}
	sort.Strings(members)

	team, err := s.teams.CreateAssigned(ctx, student.Batch, members)
	if err != nil {
		if errors.Is(err, apperrors.ErrMemberClaimed) {
			s.logger.Debug().
				Str("rollNo", rollNo).
				Strs("members", members).
				Msg("Lost team-assignment race, another writer committed first")
			return nil, nil
		}
		return nil, err
	}

	return team, nil
}
