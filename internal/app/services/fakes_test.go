package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/arnav/teamforge/internal/app/models"
	"github.com/arnav/teamforge/internal/pkg/apperrors"
)

// memStore is an in-memory implementation of all four store interfaces.
// It mirrors the repository contracts, including the atomic claim in
// CreateAssigned: the team is only committed when every member is still
// unassigned, and the members' preferences go with it.
type memStore struct {
	order    []string
	students map[string]*models.Student
	prefs    map[string]*models.Preference
	teams    map[uuid.UUID]*models.Team
	teamIDs  []uuid.UUID
	gates    map[models.Batch]bool

	// claimErr, when set, makes the next CreateAssigned fail as if a
	// concurrent writer had claimed a member first.
	claimErr error
}

func newMemStore() *memStore {
	return &memStore{
		students: make(map[string]*models.Student),
		prefs:    make(map[string]*models.Preference),
		teams:    make(map[uuid.UUID]*models.Team),
		gates:    make(map[models.Batch]bool),
	}
}

func (m *memStore) addStudent(rollNo, name string, batch models.Batch) *models.Student {
	st := &models.Student{
		ID:               int64(len(m.order) + 1),
		RollNo:           rollNo,
		Name:             name,
		Batch:            batch,
		EditAttemptsLeft: models.MaxEditAttempts,
	}
	m.order = append(m.order, rollNo)
	m.students[rollNo] = st
	return st
}

func (m *memStore) GetByRollNo(_ context.Context, rollNo string) (*models.Student, error) {
	st, ok := m.students[rollNo]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return st, nil
}

func (m *memStore) GetManyByRollNos(_ context.Context, rollNos []string) ([]*models.Student, error) {
	found := make([]*models.Student, 0, len(rollNos))
	for _, rollNo := range rollNos {
		if st, ok := m.students[rollNo]; ok {
			found = append(found, st)
		}
	}
	return found, nil
}

func (m *memStore) ListByBatch(_ context.Context, batch models.Batch) ([]*models.Student, error) {
	var out []*models.Student
	for _, rollNo := range m.order {
		if st := m.students[rollNo]; st.Batch == batch {
			out = append(out, st)
		}
	}
	return out, nil
}

func (m *memStore) ListUnassignedByBatch(_ context.Context, batch models.Batch) ([]*models.Student, error) {
	var out []*models.Student
	for _, rollNo := range m.order {
		if st := m.students[rollNo]; st.Batch == batch && !st.Assigned() {
			out = append(out, st)
		}
	}
	return out, nil
}

func (m *memStore) DecrementEditAttempts(_ context.Context, rollNo string) (int, error) {
	st, ok := m.students[rollNo]
	if !ok {
		return 0, apperrors.ErrStudentNotFound
	}
	st.EditAttemptsLeft--
	return st.EditAttemptsLeft, nil
}

func (m *memStore) getPref(_ context.Context, rollNo string) (*models.Preference, error) {
	pref, ok := m.prefs[rollNo]
	if !ok {
		return nil, nil
	}
	return pref, nil
}

func (m *memStore) Upsert(_ context.Context, pref *models.Preference) error {
	pref.UpdatedAt = time.Now()
	m.prefs[pref.RollNo] = pref
	return nil
}

func (m *memStore) listPrefsByBatch(_ context.Context, batch models.Batch) ([]*models.Preference, error) {
	var out []*models.Preference
	for _, rollNo := range m.order {
		if pref, ok := m.prefs[rollNo]; ok && pref.Batch == batch {
			out = append(out, pref)
		}
	}
	return out, nil
}

func (m *memStore) GetByID(_ context.Context, id uuid.UUID) (*models.Team, error) {
	team, ok := m.teams[id]
	if !ok {
		return nil, apperrors.ErrTeamNotFound
	}
	return team, nil
}

func (m *memStore) listTeamsByBatch(_ context.Context, batch models.Batch) ([]*models.Team, error) {
	var out []*models.Team
	for _, id := range m.teamIDs {
		if team := m.teams[id]; team.Batch == batch {
			out = append(out, team)
		}
	}
	return out, nil
}

func (m *memStore) CreateAssigned(_ context.Context, batch models.Batch, members []string) (*models.Team, error) {
	if m.claimErr != nil {
		err := m.claimErr
		m.claimErr = nil
		return nil, err
	}

	for _, rollNo := range members {
		st, ok := m.students[rollNo]
		if !ok || st.Assigned() {
			return nil, apperrors.ErrMemberClaimed
		}
	}

	team := &models.Team{
		ID:        uuid.New(),
		Batch:     batch,
		Members:   append([]string(nil), members...),
		CreatedAt: time.Now(),
	}
	m.teams[team.ID] = team
	m.teamIDs = append(m.teamIDs, team.ID)

	for _, rollNo := range members {
		id := team.ID
		m.students[rollNo].TeamID = &id
		delete(m.prefs, rollNo)
	}
	return team, nil
}

func (m *memStore) Dissolve(_ context.Context, id uuid.UUID) (*models.Team, error) {
	team, ok := m.teams[id]
	if !ok {
		return nil, apperrors.ErrTeamNotFound
	}

	for _, rollNo := range team.Members {
		if st, ok := m.students[rollNo]; ok {
			st.TeamID = nil
		}
	}
	delete(m.teams, id)
	for i, tid := range m.teamIDs {
		if tid == id {
			m.teamIDs = append(m.teamIDs[:i], m.teamIDs[i+1:]...)
			break
		}
	}
	return team, nil
}

func (m *memStore) IsSelectionOpen(_ context.Context, batch models.Batch) (bool, error) {
	open, ok := m.gates[batch]
	if !ok {
		return true, nil
	}
	return open, nil
}

func (m *memStore) SetSelectionOpen(_ context.Context, batch models.Batch, open bool) error {
	m.gates[batch] = open
	return nil
}

// Adapters so a single memStore can serve all four interfaces despite the
// overlapping method names across stores.

type prefStore struct{ *memStore }

func (p prefStore) GetByRollNo(ctx context.Context, rollNo string) (*models.Preference, error) {
	return p.getPref(ctx, rollNo)
}

func (p prefStore) ListByBatch(ctx context.Context, batch models.Batch) ([]*models.Preference, error) {
	return p.listPrefsByBatch(ctx, batch)
}

type teamStore struct{ *memStore }

func (t teamStore) ListByBatch(ctx context.Context, batch models.Batch) ([]*models.Team, error) {
	return t.listTeamsByBatch(ctx, batch)
}
