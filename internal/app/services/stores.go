package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/arnav/teamforge/internal/app/models"
)

// The services re-read current state from these stores before every
// decision instead of caching anything in-process. The one multi-document
// write — committing a team — is pushed down into TeamStore.CreateAssigned
// so the store can make it atomic.

// StudentStore is the student access the services need.
type StudentStore interface {
	GetByRollNo(ctx context.Context, rollNo string) (*models.Student, error)
	GetManyByRollNos(ctx context.Context, rollNos []string) ([]*models.Student, error)
	ListByBatch(ctx context.Context, batch models.Batch) ([]*models.Student, error)
	ListUnassignedByBatch(ctx context.Context, batch models.Batch) ([]*models.Student, error)
	DecrementEditAttempts(ctx context.Context, rollNo string) (int, error)
}

// PreferenceStore is the preference access the services need. GetByRollNo
// returns (nil, nil) when no preference exists.
type PreferenceStore interface {
	GetByRollNo(ctx context.Context, rollNo string) (*models.Preference, error)
	Upsert(ctx context.Context, pref *models.Preference) error
	ListByBatch(ctx context.Context, batch models.Batch) ([]*models.Preference, error)
}

// TeamStore is the team access the services need. CreateAssigned must
// atomically insert the team, claim every member whose team_id is still
// null, and delete the members' preferences — returning
// apperrors.ErrMemberClaimed and writing nothing if any member was
// concurrently claimed.
type TeamStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error)
	ListByBatch(ctx context.Context, batch models.Batch) ([]*models.Team, error)
	CreateAssigned(ctx context.Context, batch models.Batch, members []string) (*models.Team, error)
	Dissolve(ctx context.Context, id uuid.UUID) (*models.Team, error)
}

// SettingsStore is the selection-gate access the services need.
type SettingsStore interface {
	IsSelectionOpen(ctx context.Context, batch models.Batch) (bool, error)
	SetSelectionOpen(ctx context.Context, batch models.Batch, open bool) error
}
