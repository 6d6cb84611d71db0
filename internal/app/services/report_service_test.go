package services

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/arnav/teamforge/internal/app/models"
	"github.com/arnav/teamforge/internal/pkg/apperrors"
)

func newReportService(m *memStore) *ReportService {
	return NewReportService(m, prefStore{m}, teamStore{m})
}

func TestStudentsByBatchSelectability(t *testing.T) {
	m := newMemStore()
	rosterA(m, "a1", "a2", "a3")
	m.addStudent("b1", "Student b1", models.BatchB)
	if _, err := m.CreateAssigned(context.Background(), models.BatchA, []string{"a2", "a3"}); err != nil {
		t.Fatalf("seed team: %v", err)
	}
	svc := newReportService(m)

	roster, err := svc.StudentsByBatch(context.Background(), models.BatchA)
	if err != nil {
		t.Fatalf("StudentsByBatch() error = %v", err)
	}
	if len(roster) != 3 {
		t.Fatalf("roster size = %d, want 3 (batch B excluded)", len(roster))
	}

	selectable := map[string]bool{}
	for _, entry := range roster {
		selectable[entry.RollNo] = entry.Selectable
	}
	if !selectable["a1"] {
		t.Error("unassigned a1 not selectable")
	}
	if selectable["a2"] || selectable["a3"] {
		t.Error("teamed students reported selectable")
	}
}

func TestProfileIncludesCurrentChoices(t *testing.T) {
	m := newMemStore()
	rosterA(m, "a1", "a2", "a3")
	svc := newReportService(m)
	ctx := context.Background()

	profile, err := svc.Profile(ctx, "a1")
	if err != nil {
		t.Fatalf("Profile() error = %v", err)
	}
	if profile.CurrentChoices == nil || len(profile.CurrentChoices) != 0 {
		t.Errorf("choices before nomination = %v, want empty slice", profile.CurrentChoices)
	}
	if profile.EditAttemptsLeft != models.MaxEditAttempts {
		t.Errorf("attempts left = %d, want %d", profile.EditAttemptsLeft, models.MaxEditAttempts)
	}

	if err := m.Upsert(ctx, &models.Preference{RollNo: "a1", Batch: models.BatchA, Choices: []string{"a2", "a3"}}); err != nil {
		t.Fatalf("seed preference: %v", err)
	}

	profile, err = svc.Profile(ctx, "a1")
	if err != nil {
		t.Fatalf("Profile() error = %v", err)
	}
	if !reflect.DeepEqual(profile.CurrentChoices, []string{"a2", "a3"}) {
		t.Errorf("choices = %v, want [a2 a3]", profile.CurrentChoices)
	}

	if _, err := svc.Profile(ctx, "ghost"); !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Errorf("Profile(ghost) error = %v, want ErrStudentNotFound", err)
	}
}

func TestTeamStatusPendingRevealsNoMembers(t *testing.T) {
	m := newMemStore()
	rosterA(m, "a1")
	svc := newReportService(m)

	status, err := svc.TeamStatus(context.Background(), "a1")
	if err != nil {
		t.Fatalf("TeamStatus() error = %v", err)
	}
	if status.State != "pending" {
		t.Errorf("state = %q, want pending", status.State)
	}
	if status.Team != nil {
		t.Errorf("pending status leaked members: %v", status.Team)
	}
}

func TestTeamStatusFormed(t *testing.T) {
	m := newMemStore()
	rosterA(m, "a1", "a2", "a3")
	if _, err := m.CreateAssigned(context.Background(), models.BatchA, []string{"a1", "a2", "a3"}); err != nil {
		t.Fatalf("seed team: %v", err)
	}
	svc := newReportService(m)

	status, err := svc.TeamStatus(context.Background(), "a2")
	if err != nil {
		t.Fatalf("TeamStatus() error = %v", err)
	}
	if status.State != "formed" {
		t.Errorf("state = %q, want formed", status.State)
	}
	if !reflect.DeepEqual(status.Team, []string{"a1", "a2", "a3"}) {
		t.Errorf("team = %v, want all three members", status.Team)
	}
}

func TestExportRows(t *testing.T) {
	m := newMemStore()
	rosterA(m, "a1", "a2", "a3", "a4", "a5")
	ctx := context.Background()
	if _, err := m.CreateAssigned(ctx, models.BatchA, []string{"a1", "a2", "a3"}); err != nil {
		t.Fatalf("seed team: %v", err)
	}
	if _, err := m.CreateAssigned(ctx, models.BatchA, []string{"a4", "a5"}); err != nil {
		t.Fatalf("seed team: %v", err)
	}
	svc := newReportService(m)

	rows, err := svc.ExportRows(ctx, models.BatchA)
	if err != nil {
		t.Fatalf("ExportRows() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}

	if rows[0].TeamNo != 1 || rows[1].TeamNo != 2 {
		t.Errorf("team numbers = %d, %d, want sequential from 1", rows[0].TeamNo, rows[1].TeamNo)
	}
	if rows[0].Member1Roll != "a1" || rows[0].Member1Name != "Student a1" {
		t.Errorf("row 1 member 1 = %s/%s, want a1/Student a1", rows[0].Member1Roll, rows[0].Member1Name)
	}
	if rows[0].Member3Roll != "a3" {
		t.Errorf("row 1 member 3 = %s, want a3", rows[0].Member3Roll)
	}
	if rows[1].Member3Roll != "" || rows[1].Member3Name != "" {
		t.Errorf("two-member row has a third member: %s/%s", rows[1].Member3Roll, rows[1].Member3Name)
	}
}

func TestDashboard(t *testing.T) {
	m := newMemStore()
	rosterA(m, "a1", "a2", "a3", "a4")
	ctx := context.Background()
	if err := m.Upsert(ctx, &models.Preference{RollNo: "a1", Batch: models.BatchA, Choices: []string{"a2", "a3"}}); err != nil {
		t.Fatalf("seed preference: %v", err)
	}
	if _, err := m.CreateAssigned(ctx, models.BatchA, []string{"a2", "a3"}); err != nil {
		t.Fatalf("seed team: %v", err)
	}
	svc := newReportService(m)

	dash, err := svc.Dashboard(ctx, models.BatchA)
	if err != nil {
		t.Fatalf("Dashboard() error = %v", err)
	}

	if len(dash.Students) != 4 {
		t.Fatalf("dashboard students = %d, want 4", len(dash.Students))
	}
	if len(dash.Teams) != 1 {
		t.Fatalf("dashboard teams = %d, want 1", len(dash.Teams))
	}

	byRoll := map[string][]string{}
	for _, st := range dash.Students {
		byRoll[st.RollNo] = st.Choices
	}
	if !reflect.DeepEqual(byRoll["a1"], []string{"a2", "a3"}) {
		t.Errorf("a1 choices = %v, want [a2 a3]", byRoll["a1"])
	}
	if byRoll["a4"] == nil || len(byRoll["a4"]) != 0 {
		t.Errorf("a4 choices = %v, want empty slice", byRoll["a4"])
	}
}

func TestReportsRejectInvalidBatch(t *testing.T) {
	svc := newReportService(newMemStore())
	ctx := context.Background()

	if _, err := svc.StudentsByBatch(ctx, "Z"); !errors.Is(err, apperrors.ErrInvalidBatch) {
		t.Errorf("StudentsByBatch() error = %v, want ErrInvalidBatch", err)
	}
	if _, err := svc.ExportRows(ctx, "Z"); !errors.Is(err, apperrors.ErrInvalidBatch) {
		t.Errorf("ExportRows() error = %v, want ErrInvalidBatch", err)
	}
	if _, err := svc.Dashboard(ctx, "Z"); !errors.Is(err, apperrors.ErrInvalidBatch) {
		t.Errorf("Dashboard() error = %v, want ErrInvalidBatch", err)
	}
}
