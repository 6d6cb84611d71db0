package models

// SelectionSettings is the per-batch singleton gate row. A missing row is
// semantically "open": the gate only materializes on the first admin toggle.
type SelectionSettings struct {
	Batch         Batch `json:"batch" db:"batch"`
	SelectionOpen bool  `json:"selectionOpen" db:"selection_open"`
}
