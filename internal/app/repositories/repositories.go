package repositories

import "github.com/jackc/pgx/v5/pgxpool"

// Repositories bundles every repository over one shared connection pool.
type Repositories struct {
	StudentRepository    *StudentRepository
	PreferenceRepository *PreferenceRepository
	TeamRepository       *TeamRepository
	SettingsRepository   *SettingsRepository
}

// NewRepositories creates all repositories.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository:    NewStudentRepository(db),
		PreferenceRepository: NewPreferenceRepository(db),
		TeamRepository:       NewTeamRepository(db),
		SettingsRepository:   NewSettingsRepository(db),
	}
}
