// Package services holds the business logic between the HTTP controllers and
// the repositories.
//
// Services defined in this package:
//   - DirectoryService: read-only reference data (students, courses with
//     rosters, the weekly schedule)
//   - AttendanceService: scan resolution, idempotent attendance recording,
//     and attendance queries
//
// Each service depends on narrow store interfaces declared here and satisfied
// by the repositories package, so tests can substitute in-memory fakes.
package services

import (
	"context"

	"github.com/classtap/classtap/internal/app/models"
)

// StudentStore is the directory of student identity records.
type StudentStore interface {
	GetAll(ctx context.Context) ([]models.Student, error)
	GetByNFC(ctx context.Context, nfcID string) (*models.Student, error)
}

// CourseStore is the directory of courses and their rosters.
type CourseStore interface {
	GetAll(ctx context.Context) ([]models.Course, error)
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetEnrolledStudents(ctx context.Context, courseID int64) ([]models.Student, error)
}

// ScheduleStore is the directory of recurring weekly time slots.
type ScheduleStore interface {
	GetAll(ctx context.Context) ([]models.ScheduleItem, error)
	GetByID(ctx context.Context, id int64) (*models.ScheduleItem, error)
}

// AttendanceStore is the durable, append-only record store. Insert must be
// atomic per (student, session) at the storage layer.
type AttendanceStore interface {
	Insert(ctx context.Context, record *models.AttendanceRecord) (created bool, err error)
	GetBySession(ctx context.Context, sessionID string) ([]models.AttendanceRecord, error)
	GetByCourse(ctx context.Context, courseID int64) ([]models.AttendanceRecord, error)
}
