package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/arnav/teamforge/internal/app/models"
)

// SelectionRequest is a student's two-teammate nomination.
type SelectionRequest struct {
	Choices []string `json:"choices" binding:"required" example:"21CS043,21CS044"`
}

// SelectionResponse reports the outcome of a preference save.
type SelectionResponse struct {
	Saved            bool `json:"saved" example:"true"`
	EditAttemptsLeft int  `json:"editAttemptsLeft" example:"1"`
	TeamFormed       bool `json:"teamFormed" example:"false"`
}

// BatchRequest carries the target batch for admin operations.
type BatchRequest struct {
	Batch models.Batch `json:"batch" binding:"required" example:"A"`
}

// ManualTeamRequest is the admin override for creating a team directly,
// bypassing consensus. Sizes one and two are deliberately permitted.
type ManualTeamRequest struct {
	Batch   models.Batch `json:"batch" binding:"required" example:"A"`
	Members []string     `json:"members" binding:"required" example:"21CS042,21CS043"`
}

// FinalizeResponse reports the outcome of a finalize sweep.
type FinalizeResponse struct {
	Finalized    bool `json:"finalized" example:"true"`
	TeamsCreated int  `json:"teamsCreated" example:"4"`
}

// DissolveResponse reports the outcome of a team dissolution.
type DissolveResponse struct {
	Success bool `json:"success" example:"true"`
}

// SelectionState is the gate state of one batch.
type SelectionState struct {
	SelectionOpen bool `json:"selectionOpen" example:"true"`
}

// TeamStatusResponse is the student-facing view of their own team state.
// The pending state deliberately carries no information about anyone
// else's choices.
type TeamStatusResponse struct {
	State string       `json:"state" example:"formed" enums:"formed,pending"`
	Batch models.Batch `json:"batch" example:"A"`
	Team  []string     `json:"team,omitempty" example:"21CS042,21CS043,21CS044"`
}

// RosterEntry is one row of the selectable-candidates roster.
type RosterEntry struct {
	RollNo     string `json:"rollNo" example:"21CS042"`
	Name       string `json:"name" example:"Asha Verma"`
	Selectable bool   `json:"selectable" example:"true"`
}

// RosterResponse is the batch roster returned to students.
type RosterResponse struct {
	Batch    models.Batch  `json:"batch" example:"A"`
	Students []RosterEntry `json:"students"`
}

// ProfileResponse is the authenticated student's own record, including
// their current choices. Only ever returned for the caller themselves.
type ProfileResponse struct {
	RollNo           string       `json:"rollNo" example:"21CS042"`
	Name             string       `json:"name" example:"Asha Verma"`
	Batch            models.Batch `json:"batch" example:"A"`
	TeamID           *uuid.UUID   `json:"teamId,omitempty"`
	EditAttemptsLeft int          `json:"editAttemptsLeft" example:"2"`
	CurrentChoices   []string     `json:"currentChoices" example:"21CS043,21CS044"`
}

// ExportRow is one spreadsheet row, one team per row with up to three
// member roll/name pairs. The external renderer consumes this shape
// verbatim.
type ExportRow struct {
	TeamNo      int          `json:"teamNo" example:"1"`
	Batch       models.Batch `json:"batch" example:"A"`
	Member1Roll string       `json:"member1Roll" example:"21CS042"`
	Member1Name string       `json:"member1Name" example:"Asha Verma"`
	Member2Roll string       `json:"member2Roll" example:"21CS043"`
	Member2Name string       `json:"member2Name" example:"Rohan Iyer"`
	Member3Roll string       `json:"member3Roll" example:"21CS044"`
	Member3Name string       `json:"member3Name" example:"Diya Nair"`
}

// DashboardStudent is the admin view of one student, joined with their
// live preference.
type DashboardStudent struct {
	RollNo           string     `json:"rollNo" example:"21CS042"`
	Name             string     `json:"name" example:"Asha Verma"`
	TeamID           *uuid.UUID `json:"teamId,omitempty"`
	EditAttemptsLeft int        `json:"editAttemptsLeft" example:"1"`
	Choices          []string   `json:"choices" example:"21CS043,21CS044"`
}

// DashboardTeam is the admin view of one committed team.
type DashboardTeam struct {
	ID        uuid.UUID    `json:"id"`
	Batch     models.Batch `json:"batch" example:"A"`
	Members   []string     `json:"members" example:"21CS042,21CS043,21CS044"`
	CreatedAt time.Time    `json:"createdAt"`
}

// DashboardResponse is the admin dashboard aggregate for one batch.
type DashboardResponse struct {
	Batch    models.Batch       `json:"batch" example:"A"`
	Students []DashboardStudent `json:"students"`
	Teams    []DashboardTeam    `json:"teams"`
}
