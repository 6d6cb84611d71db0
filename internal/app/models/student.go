package models

import "github.com/google/uuid"

// Student defines the student model based on the 'students' table.
// TeamID is nil until the student is committed to a team; it transitions
// nil -> set on team formation and set -> nil only on team dissolution.
type Student struct {
	ID               int64      `json:"-" db:"id"`
	RollNo           string     `json:"rollNo" db:"roll_no" example:"21CS042"`
	Name             string     `json:"name" db:"name" example:"Asha Verma"`
	Batch            Batch      `json:"batch" db:"batch" example:"A"`
	TeamID           *uuid.UUID `json:"teamId,omitempty" db:"team_id"`
	EditAttemptsLeft int        `json:"editAttemptsLeft" db:"edit_attempts_left" example:"2"`
}

// Assigned reports whether the student is already committed to a team.
func (s *Student) Assigned() bool {
	return s.TeamID != nil
}
