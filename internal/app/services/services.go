package services

import (
	"github.com/rs/zerolog"

	"github.com/arnav/teamforge/internal/app/repositories"
)

// Services bundles every application service.
type Services struct {
	Selection  *SelectionService
	Preference *PreferenceService
	Team       *TeamService
	Report     *ReportService
}

// NewServices wires all services over the shared repositories.
func NewServices(repos *repositories.Repositories, logger zerolog.Logger) *Services {
	return &Services{
		Selection: NewSelectionService(repos.SettingsRepository),
		Preference: NewPreferenceService(
			repos.StudentRepository,
			repos.PreferenceRepository,
			repos.TeamRepository,
			repos.SettingsRepository,
			logger,
		),
		Team: NewTeamService(
			repos.StudentRepository,
			repos.TeamRepository,
			repos.SettingsRepository,
			logger,
		),
		Report: NewReportService(
			repos.StudentRepository,
			repos.PreferenceRepository,
			repos.TeamRepository,
		),
	}
}
