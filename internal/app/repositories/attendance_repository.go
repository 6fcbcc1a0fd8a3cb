package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/classtap/classtap/internal/app/models"
	"github.com/classtap/classtap/internal/pkg/apperrors"
	"github.com/classtap/classtap/internal/pkg/dberrors"
)

// The uq_attendance_student_session constraint guards the at-most-one-record-
// per-student-per-session invariant at the storage layer, so concurrent taps
// of the same card cannot double-count.

// AttendanceRepository handles attendance record database operations
type AttendanceRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAttendanceRepository creates a new AttendanceRepository
func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Insert appends an attendance fact. The write is idempotent per
// (student, session): a first tap inserts a row and returns created=true,
// while a repeated tap is absorbed by the unique constraint and the original
// record is returned with created=false. The conflict is resolved by the
// database, never by a check-then-act in application code.
func (r *AttendanceRepository) Insert(ctx context.Context, record *models.AttendanceRecord) (bool, error) {
	query := `
		INSERT INTO attendance_records (student_id, course_id, session_id, status)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT ON CONSTRAINT uq_attendance_student_session DO NOTHING
		RETURNING id, timestamp
	`

	err := r.db.QueryRow(ctx, query,
		record.StudentID, record.CourseID, record.SessionID, record.Status,
	).Scan(&record.ID, &record.Timestamp)

	if err == nil {
		return true, nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		// DO NOTHING fired: the row already exists. Records are append-only,
		// so the follow-up read always finds the survivor.
		existing, err := r.GetByStudentAndSession(ctx, record.StudentID, record.SessionID)
		if err != nil {
			return false, err
		}
		*record = *existing
		return false, nil
	}

	if dberrors.IsForeignKeyViolation(err) {
		return false, apperrors.ErrCourseNotFound
	}

	return false, apperrors.NewStoreUnavailableError(err)
}

// GetByStudentAndSession fetches the single record for one student in one
// session, if any.
func (r *AttendanceRepository) GetByStudentAndSession(ctx context.Context, studentID int64, sessionID string) (*models.AttendanceRecord, error) {
	query := `
		SELECT id, student_id, course_id, session_id, timestamp, status
		FROM attendance_records
		WHERE student_id = $1 AND session_id = $2
	`

	var record models.AttendanceRecord
	err := r.db.QueryRow(ctx, query, studentID, sessionID).Scan(
		&record.ID,
		&record.StudentID,
		&record.CourseID,
		&record.SessionID,
		&record.Timestamp,
		&record.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, apperrors.NewStoreUnavailableError(err)
	}

	return &record, nil
}

// GetBySession retrieves all records for one session ordered by scan time.
func (r *AttendanceRepository) GetBySession(ctx context.Context, sessionID string) ([]models.AttendanceRecord, error) {
	return r.list(ctx, squirrel.Eq{"session_id": sessionID})
}

// GetByCourse retrieves all records for one course across all of its
// sessions, ordered by scan time.
func (r *AttendanceRepository) GetByCourse(ctx context.Context, courseID int64) ([]models.AttendanceRecord, error) {
	return r.list(ctx, squirrel.Eq{"course_id": courseID})
}

func (r *AttendanceRepository) list(ctx context.Context, where squirrel.Eq) ([]models.AttendanceRecord, error) {
	sql, args, err := r.sb.Select(
		"id", "student_id", "course_id", "session_id", "timestamp", "status",
	).
		From("attendance_records").
		Where(where).
		OrderBy("timestamp ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build attendance query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperrors.NewStoreUnavailableError(err)
	}
	defer rows.Close()

	records := make([]models.AttendanceRecord, 0)
	for rows.Next() {
		var record models.AttendanceRecord
		if err := rows.Scan(
			&record.ID,
			&record.StudentID,
			&record.CourseID,
			&record.SessionID,
			&record.Timestamp,
			&record.Status,
		); err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
