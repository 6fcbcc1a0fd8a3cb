package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/classtap/classtap/internal/app/models"
	"github.com/classtap/classtap/internal/pkg/apperrors"
	"github.com/classtap/classtap/internal/pkg/dberrors"
)

// uqEnrollmentStudentCourse is the unique constraint guarding against
// duplicated (student, course) enrollment pairs.
const uqEnrollmentStudentCourse = "uq_enrollment_student_course"

// CourseRepository handles database operations for courses and enrollments
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

// Create inserts a new course and fills in the generated id.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (code, name, location)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, course.Code, course.Name, course.Location).Scan(&course.ID)
	if err != nil {
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetAll retrieves all courses ordered by code.
func (r *CourseRepository) GetAll(ctx context.Context) ([]models.Course, error) {
	query := `
		SELECT id, code, name, location
		FROM courses
		ORDER BY code
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewStoreUnavailableError(err)
	}
	defer rows.Close()

	var courses []models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(&course.ID, &course.Code, &course.Name, &course.Location); err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// GetByID retrieves a course by id.
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `
		SELECT id, code, name, location
		FROM courses
		WHERE id = $1
	`

	var course models.Course
	err := r.db.QueryRow(ctx, query, id).Scan(&course.ID, &course.Code, &course.Name, &course.Location)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, apperrors.NewStoreUnavailableError(err)
	}

	return &course, nil
}

// GetEnrolledStudents returns the roster of a course ordered by student
// number. A course without enrollments yields an empty, non-nil slice.
func (r *CourseRepository) GetEnrolledStudents(ctx context.Context, courseID int64) ([]models.Student, error) {
	query := `
		SELECT s.id, s.name, s.student_id, s.nfc_id, s.avatar
		FROM students s
		JOIN course_enrollments ce ON ce.student_id = s.id
		WHERE ce.course_id = $1
		ORDER BY s.student_id
	`

	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, apperrors.NewStoreUnavailableError(err)
	}
	defer rows.Close()

	students := make([]models.Student, 0)
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

// Enroll links a student to a course. Enrolling the same pair twice returns
// ErrAlreadyEnrolled; a pair referencing a missing student or course returns
// ErrResourceNotFound.
func (r *CourseRepository) Enroll(ctx context.Context, studentID, courseID int64) error {
	query := `
		INSERT INTO course_enrollments (student_id, course_id)
		VALUES ($1, $2)
	`

	_, err := r.db.Exec(ctx, query, studentID, courseID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, uqEnrollmentStudentCourse) {
			return apperrors.ErrAlreadyEnrolled
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrResourceNotFound
		}
		return fmt.Errorf("error enrolling student: %w", err)
	}

	return nil
}
