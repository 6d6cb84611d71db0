package models

// Batch identifies one of the two fixed student partitions. All matching is
// bounded by batch: no cross-batch team ever forms.
type Batch string

const (
	BatchA Batch = "A"
	BatchB Batch = "B"
)

// Batches lists every valid batch in a stable order.
var Batches = []Batch{BatchA, BatchB}

// Valid reports whether b is one of the known batches.
func (b Batch) Valid() bool {
	return b == BatchA || b == BatchB
}

// MaxEditAttempts is the per-student preference submission budget.
const MaxEditAttempts = 2

// TeamSize is the target team size for organic consensus matching.
// Administrative overrides may create smaller teams.
const TeamSize = 3
