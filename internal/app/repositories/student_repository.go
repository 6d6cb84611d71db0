package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arnav/teamforge/internal/app/models"
	"github.com/arnav/teamforge/internal/pkg/apperrors"
	"github.com/arnav/teamforge/internal/pkg/dberrors"
)

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// Create inserts a new student. Used by administrative pre-registration
// and seeding.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (roll_no, name, batch, edit_attempts_left)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		student.RollNo, student.Name, student.Batch, student.EditAttemptsLeft,
	).Scan(&student.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err, "students_roll_no_key") {
			return fmt.Errorf("student %s already registered: %w", student.RollNo, err)
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByRollNo retrieves a student by roll number
func (r *StudentRepository) GetByRollNo(ctx context.Context, rollNo string) (*models.Student, error) {
	query := `
		SELECT id, roll_no, name, batch, team_id, edit_attempts_left
		FROM students
		WHERE roll_no = $1
	`

	var student models.Student
	err := r.db.QueryRow(ctx, query, rollNo).Scan(
		&student.ID,
		&student.RollNo,
		&student.Name,
		&student.Batch,
		&student.TeamID,
		&student.EditAttemptsLeft,
	)
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &student, nil
}

// GetManyByRollNos retrieves all students matching the given roll numbers.
// Missing roll numbers are simply absent from the result; callers compare
// lengths to detect them.
func (r *StudentRepository) GetManyByRollNos(ctx context.Context, rollNos []string) ([]*models.Student, error) {
	query := `
		SELECT id, roll_no, name, batch, team_id, edit_attempts_left
		FROM students
		WHERE roll_no = ANY($1)
	`

	rows, err := r.db.Query(ctx, query, rollNos)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(
			&student.ID,
			&student.RollNo,
			&student.Name,
			&student.Batch,
			&student.TeamID,
			&student.EditAttemptsLeft,
		); err != nil {
			return nil, err
		}
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// ListByBatch retrieves all students in a batch in storage order.
func (r *StudentRepository) ListByBatch(ctx context.Context, batch models.Batch) ([]*models.Student, error) {
	return r.list(ctx, `
		SELECT id, roll_no, name, batch, team_id, edit_attempts_left
		FROM students
		WHERE batch = $1
		ORDER BY id
	`, batch)
}

// ListUnassignedByBatch retrieves all students in a batch without a team,
// in storage order. Finalization groups them in exactly this order.
func (r *StudentRepository) ListUnassignedByBatch(ctx context.Context, batch models.Batch) ([]*models.Student, error) {
	return r.list(ctx, `
		SELECT id, roll_no, name, batch, team_id, edit_attempts_left
		FROM students
		WHERE batch = $1 AND team_id IS NULL
		ORDER BY id
	`, batch)
}

func (r *StudentRepository) list(ctx context.Context, query string, batch models.Batch) ([]*models.Student, error) {
	rows, err := r.db.Query(ctx, query, batch)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(
			&student.ID,
			&student.RollNo,
			&student.Name,
			&student.Batch,
			&student.TeamID,
			&student.EditAttemptsLeft,
		); err != nil {
			return nil, err
		}
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// DecrementEditAttempts decreases the student's remaining edit budget by
// one and returns the new value.
func (r *StudentRepository) DecrementEditAttempts(ctx context.Context, rollNo string) (int, error) {
	query := `
		UPDATE students
		SET edit_attempts_left = edit_attempts_left - 1
		WHERE roll_no = $1
		RETURNING edit_attempts_left
	`

	var left int
	err := r.db.QueryRow(ctx, query, rollNo).Scan(&left)
	if err != nil {
		if dberrors.IsNotFound(err) {
			return 0, apperrors.ErrStudentNotFound
		}
		return 0, fmt.Errorf("error decrementing edit attempts: %w", err)
	}

	return left, nil
}
