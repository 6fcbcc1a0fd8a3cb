package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/classtap/classtap/internal/app/models"
	"github.com/classtap/classtap/internal/pkg/apperrors"
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

// Create inserts a new student and fills in the generated id.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (name, student_id, nfc_id, avatar)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		student.Name, student.StudentID, student.NFCID, student.Avatar).Scan(&student.ID)
	if err != nil {
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetAll retrieves all students ordered by student number.
func (r *StudentRepository) GetAll(ctx context.Context) ([]models.Student, error) {
	query := `
		SELECT id, name, student_id, nfc_id, avatar
		FROM students
		ORDER BY student_id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewStoreUnavailableError(err)
	}
	defer rows.Close()

	var students []models.Student
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(
			&student.ID,
			&student.Name,
			&student.StudentID,
			&student.NFCID,
			&student.Avatar,
		); err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// GetByID retrieves a student by internal id.
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	return r.getOne(ctx, `
		SELECT id, name, student_id, nfc_id, avatar
		FROM students
		WHERE id = $1
	`, id)
}

// GetByNFC resolves a scan credential to the student owning it. The lookup is
// an exact match against the unique nfc_id column; an unmatched tag yields
// ErrStudentNotFound.
func (r *StudentRepository) GetByNFC(ctx context.Context, nfcID string) (*models.Student, error) {
	return r.getOne(ctx, `
		SELECT id, name, student_id, nfc_id, avatar
		FROM students
		WHERE nfc_id = $1
	`, nfcID)
}

func (r *StudentRepository) getOne(ctx context.Context, query string, arg interface{}) (*models.Student, error) {
	var student models.Student
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&student.ID,
		&student.Name,
		&student.StudentID,
		&student.NFCID,
		&student.Avatar,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, apperrors.NewStoreUnavailableError(err)
	}

	return &student, nil
}

// CountAll returns the number of student rows. Used by the seeder to decide
// whether default data is needed.
func (r *StudentRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return count, nil
}
