package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/arnav/teamforge/internal/app/models"
	"github.com/arnav/teamforge/internal/app/repositories"
)

// Development roster. Real rosters come from administrative
// pre-registration against the institution's records.
var devStudents = []models.Student{
	{RollNo: "21CS001", Name: "Asha Verma", Batch: models.BatchA},
	{RollNo: "21CS002", Name: "Rohan Iyer", Batch: models.BatchA},
	{RollNo: "21CS003", Name: "Diya Nair", Batch: models.BatchA},
	{RollNo: "21CS004", Name: "Kabir Shah", Batch: models.BatchA},
	{RollNo: "21CS005", Name: "Meera Pillai", Batch: models.BatchA},
	{RollNo: "21CS006", Name: "Arjun Rao", Batch: models.BatchA},
	{RollNo: "21CS007", Name: "Sana Qureshi", Batch: models.BatchA},
	{RollNo: "21CS051", Name: "Vikram Joshi", Batch: models.BatchB},
	{RollNo: "21CS052", Name: "Ananya Das", Batch: models.BatchB},
	{RollNo: "21CS053", Name: "Farhan Ali", Batch: models.BatchB},
	{RollNo: "21CS054", Name: "Priya Menon", Batch: models.BatchB},
	{RollNo: "21CS055", Name: "Nikhil Bose", Batch: models.BatchB},
	{RollNo: "21CS056", Name: "Tara Kulkarni", Batch: models.BatchB},
}

// CreateDefaultData seeds a development roster when the students table is
// empty. Production deployments pre-register students out of band, so an
// already-populated table short-circuits.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	var count int
	if err := dbPool.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count students: %w", err)
	}
	if count > 0 {
		lgr.Debug().Int("students", count).Msg("Roster already populated, skipping seed")
		return nil
	}

	studentRepo := repositories.NewStudentRepository(dbPool)

	lgr.Info().Msg("Seeding development roster...")
	for i := range devStudents {
		student := devStudents[i]
		student.EditAttemptsLeft = models.MaxEditAttempts
		if err := studentRepo.Create(ctx, &student); err != nil {
			return fmt.Errorf("failed to seed student %s: %w", student.RollNo, err)
		}
	}

	lgr.Info().Int("students", len(devStudents)).Msg("Development roster seeded")
	return nil
}
