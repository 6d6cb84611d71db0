package services

import (
	"context"
	"fmt"

	"github.com/arnav/teamforge/internal/app/models"
	"github.com/arnav/teamforge/internal/app/models/dto"
	"github.com/arnav/teamforge/internal/pkg/apperrors"
)

// ReportService serves the read-only projections: the selectable roster,
// per-student status, the export rows, and the admin dashboard aggregate.
// Pure reads, no mutation.
type ReportService struct {
	students StudentStore
	prefs    PreferenceStore
	teams    TeamStore
}

// NewReportService creates a new report service
func NewReportService(students StudentStore, prefs PreferenceStore, teams TeamStore) *ReportService {
	return &ReportService{
		students: students,
		prefs:    prefs,
		teams:    teams,
	}
}

// StudentsByBatch returns the roster of a batch with selectability flags.
// A student is selectable while unassigned.
func (s *ReportService) StudentsByBatch(ctx context.Context, batch models.Batch) ([]dto.RosterEntry, error) {
	if !batch.Valid() {
		return nil, apperrors.ErrInvalidBatch
	}

	students, err := s.students.ListByBatch(ctx, batch)
	if err != nil {
		return nil, err
	}

	roster := make([]dto.RosterEntry, 0, len(students))
	for _, st := range students {
		roster = append(roster, dto.RosterEntry{
			RollNo:     st.RollNo,
			Name:       st.Name,
			Selectable: !st.Assigned(),
		})
	}

	return roster, nil
}

// Profile returns the student's own record joined with their current
// choices. Only ever served to the authenticated student themselves.
func (s *ReportService) Profile(ctx context.Context, rollNo string) (*dto.ProfileResponse, error) {
	student, err := s.students.GetByRollNo(ctx, rollNo)
	if err != nil {
		return nil, err
	}

	choices := []string{}
	if pref, err := s.prefs.GetByRollNo(ctx, rollNo); err != nil {
		return nil, err
	} else if pref != nil {
		choices = pref.Choices
	}

	return &dto.ProfileResponse{
		RollNo:           student.RollNo,
		Name:             student.Name,
		Batch:            student.Batch,
		TeamID:           student.TeamID,
		EditAttemptsLeft: student.EditAttemptsLeft,
		CurrentChoices:   choices,
	}, nil
}

// TeamStatus returns "formed" with the member list once the student is
// teamed, otherwise a bare "pending" that reveals nothing about who chose
// whom.
func (s *ReportService) TeamStatus(ctx context.Context, rollNo string) (*dto.TeamStatusResponse, error) {
	student, err := s.students.GetByRollNo(ctx, rollNo)
	if err != nil {
		return nil, err
	}

	if !student.Assigned() {
		return &dto.TeamStatusResponse{
			State: "pending",
			Batch: student.Batch,
		}, nil
	}

	team, err := s.teams.GetByID(ctx, *student.TeamID)
	if err != nil {
		return nil, err
	}

	return &dto.TeamStatusResponse{
		State: "formed",
		Batch: student.Batch,
		Team:  team.Members,
	}, nil
}

// ExportRows flattens a batch's teams into spreadsheet rows, one team per
// row with up to three member roll/name pairs, for the external renderer.
func (s *ReportService) ExportRows(ctx context.Context, batch models.Batch) ([]dto.ExportRow, error) {
	if !batch.Valid() {
		return nil, apperrors.ErrInvalidBatch
	}

	teams, err := s.teams.ListByBatch(ctx, batch)
	if err != nil {
		return nil, err
	}

	names, err := s.nameIndex(ctx, batch)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.ExportRow, 0, len(teams))
	for i, team := range teams {
		row := dto.ExportRow{
			TeamNo: i + 1,
			Batch:  team.Batch,
		}
		rolls := [3]*string{&row.Member1Roll, &row.Member2Roll, &row.Member3Roll}
		memberNames := [3]*string{&row.Member1Name, &row.Member2Name, &row.Member3Name}
		for j, member := range team.Members {
			if j >= len(rolls) {
				break
			}
			*rolls[j] = member
			*memberNames[j] = names[member]
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// Dashboard returns the admin aggregate for a batch: every student joined
// with their live choices, and every committed team.
func (s *ReportService) Dashboard(ctx context.Context, batch models.Batch) (*dto.DashboardResponse, error) {
	if !batch.Valid() {
		return nil, apperrors.ErrInvalidBatch
	}

	students, err := s.students.ListByBatch(ctx, batch)
	if err != nil {
		return nil, err
	}

	prefs, err := s.prefs.ListByBatch(ctx, batch)
	if err != nil {
		return nil, err
	}
	choicesByRoll := make(map[string][]string, len(prefs))
	for _, p := range prefs {
		choicesByRoll[p.RollNo] = p.Choices
	}

	teams, err := s.teams.ListByBatch(ctx, batch)
	if err != nil {
		return nil, err
	}

	resp := &dto.DashboardResponse{
		Batch:    batch,
		Students: make([]dto.DashboardStudent, 0, len(students)),
		Teams:    make([]dto.DashboardTeam, 0, len(teams)),
	}

	for _, st := range students {
		choices := choicesByRoll[st.RollNo]
		if choices == nil {
			choices = []string{}
		}
		resp.Students = append(resp.Students, dto.DashboardStudent{
			RollNo:           st.RollNo,
			Name:             st.Name,
			TeamID:           st.TeamID,
			EditAttemptsLeft: st.EditAttemptsLeft,
			Choices:          choices,
		})
	}

	for _, team := range teams {
		resp.Teams = append(resp.Teams, dto.DashboardTeam{
			ID:        team.ID,
			Batch:     team.Batch,
			Members:   team.Members,
			CreatedAt: team.CreatedAt,
		})
	}

	return resp, nil
}

func (s *ReportService) nameIndex(ctx context.Context, batch models.Batch) (map[string]string, error) {
	students, err := s.students.ListByBatch(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("error building name index: %w", err)
	}

	names := make(map[string]string, len(students))
	for _, st := range students {
		names[st.RollNo] = st.Name
	}
	return names, nil
}
