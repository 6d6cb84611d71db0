package models

import (
	"time"

	"github.com/google/uuid"
)

// Team is a committed group of 1-3 students within one batch. Members are
// immutable after creation; the only destructive operation is full dissolution.
type Team struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Batch     Batch     `json:"batch" db:"batch"`
	Members   []string  `json:"members" db:"members"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
