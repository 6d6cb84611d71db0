package models

import "time"

// Preference is a student's current two-person nomination. At most one
// preference exists per student, and only while the student is unassigned;
// preferences of every member are deleted the moment a team forms.
type Preference struct {
	RollNo    string    `json:"rollNo" db:"roll_no"`
	Batch     Batch     `json:"batch" db:"batch"`
	Choices   []string  `json:"choices" db:"choices"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Names reports whether the preference names both given roll numbers.
// Choices always has exactly two distinct entries, so naming both is the
// same as naming exactly {a, b}.
func (p *Preference) Names(a, b string) bool {
	if len(p.Choices) != 2 {
		return false
	}
	return (p.Choices[0] == a && p.Choices[1] == b) ||
		(p.Choices[0] == b && p.Choices[1] == a)
}
