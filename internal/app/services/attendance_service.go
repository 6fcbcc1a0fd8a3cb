package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/classtap/classtap/internal/app/models"
	"github.com/classtap/classtap/internal/app/models/dto"
	"github.com/classtap/classtap/internal/pkg/apperrors"
	"github.com/classtap/classtap/internal/pkg/metrics"
	"github.com/classtap/classtap/internal/pkg/sessionkey"
)

// ScanEvent is emitted after a scan creates a new attendance record.
type ScanEvent struct {
	SessionID string                  `json:"sessionId"`
	Student   models.Student          `json:"student"`
	Record    models.AttendanceRecord `json:"record"`
}

// ScanPublisher receives scan events for fan-out to live listeners.
type ScanPublisher interface {
	PublishScan(event ScanEvent)
}

// AttendanceService resolves scan credentials into idempotent attendance
// facts and answers attendance queries. Session identity is purely the
// derived key: there is no open/close lifecycle, a session exists the moment
// a record references it.
type AttendanceService struct {
	students  StudentStore
	schedule  ScheduleStore
	courses   CourseStore
	records   AttendanceStore
	publisher ScanPublisher
	logger    zerolog.Logger

	// now is swapped out in tests to pin the derived calendar day.
	now func() time.Time
}

// NewAttendanceService creates a new attendance service instance. publisher
// may be nil when no live feed is wired.
func NewAttendanceService(
	students StudentStore,
	schedule ScheduleStore,
	courses CourseStore,
	records AttendanceStore,
	publisher ScanPublisher,
	logger zerolog.Logger,
) *AttendanceService {
	return &AttendanceService{
		students:  students,
		schedule:  schedule,
		courses:   courses,
		records:   records,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// RecordScan resolves the credential and records (or confirms) the student's
// presence for the session exactly once. Re-tapping an already-scanned card
// is a no-op success that returns the original record, never an error.
func (s *AttendanceService) RecordScan(ctx context.Context, req dto.ScanRequest) (*dto.ScanResponse, error) {
	timer := time.Now()
	defer func() {
		metrics.ScanDuration.Observe(time.Since(timer).Seconds())
	}()

	sessionID, err := s.resolveSessionID(ctx, &req)
	if err != nil {
		metrics.ScansTotal.WithLabelValues(metrics.OutcomeInvalid).Inc()
		return nil, err
	}

	student, err := s.students.GetByNFC(ctx, strings.TrimSpace(req.NFCID))
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			metrics.ScansTotal.WithLabelValues(metrics.OutcomeUnknown).Inc()
		} else if errors.Is(err, apperrors.ErrValidationFailed) {
			metrics.ScansTotal.WithLabelValues(metrics.OutcomeInvalid).Inc()
		} else {
			metrics.ScansTotal.WithLabelValues(metrics.OutcomeError).Inc()
		}
		return nil, err
	}

	record := models.AttendanceRecord{
		StudentID: student.ID,
		CourseID:  req.CourseID,
		SessionID: sessionID,
		Status:    models.StatusPresent,
	}

	created, err := s.records.Insert(ctx, &record)
	if err != nil {
		metrics.ScansTotal.WithLabelValues(metrics.OutcomeError).Inc()
		s.logger.Error().Err(err).
			Str("sessionId", sessionID).
			Int64("studentId", student.ID).
			Msg("Failed to append attendance record")
		return nil, err
	}

	if created {
		metrics.ScansTotal.WithLabelValues(metrics.OutcomeRecorded).Inc()
		s.logger.Info().
			Str("sessionId", sessionID).
			Str("studentId", student.StudentID).
			Msg("Attendance recorded")
		if s.publisher != nil {
			s.publisher.PublishScan(ScanEvent{
				SessionID: sessionID,
				Student:   *student,
				Record:    record,
			})
		}
	} else {
		metrics.ScansTotal.WithLabelValues(metrics.OutcomeDuplicate).Inc()
		s.logger.Debug().
			Str("sessionId", sessionID).
			Str("studentId", student.StudentID).
			Msg("Repeated scan, returning existing record")
	}

	return &dto.ScanResponse{
		Student:         student,
		Record:          &record,
		AlreadyRecorded: !created,
	}, nil
}

// resolveSessionID validates the scan request and returns the session key the
// record will be scoped to, deriving it from the schedule item and today's
// date when the caller did not provide one.
func (s *AttendanceService) resolveSessionID(ctx context.Context, req *dto.ScanRequest) (string, error) {
	if strings.TrimSpace(req.NFCID) == "" {
		return "", apperrors.NewValidationError("nfcId is required")
	}
	if req.CourseID <= 0 {
		return "", apperrors.NewValidationError("courseId must be positive")
	}

	if sessionID := strings.TrimSpace(req.SessionID); sessionID != "" {
		return sessionID, nil
	}

	if req.ScheduleItemID <= 0 {
		return "", apperrors.NewValidationError("either sessionId or scheduleItemId is required")
	}

	item, err := s.schedule.GetByID(ctx, req.ScheduleItemID)
	if err != nil {
		return "", err
	}
	if item.CourseID != req.CourseID {
		return "", apperrors.NewValidationError(
			fmt.Sprintf("schedule item %d does not belong to course %d", req.ScheduleItemID, req.CourseID))
	}

	return sessionkey.Derive(item.ID, s.now()), nil
}

// AttendanceForSession returns all records for one session ordered by scan
// time.
func (s *AttendanceService) AttendanceForSession(ctx context.Context, sessionID string) ([]models.AttendanceRecord, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, apperrors.NewValidationError("sessionId cannot be empty")
	}

	return s.records.GetBySession(ctx, sessionID)
}

// AttendanceForCourse returns all records for one course across its sessions
// ordered by scan time.
func (s *AttendanceService) AttendanceForCourse(ctx context.Context, courseID int64) ([]models.AttendanceRecord, error) {
	if courseID <= 0 {
		return nil, apperrors.NewValidationError("courseId must be positive")
	}

	return s.records.GetByCourse(ctx, courseID)
}

// SessionSummary aggregates one session against the course roster: presence
// count, presence rate and a per-student present flag. The course is
// recovered from the session key when possible, otherwise from the records
// themselves.
func (s *AttendanceService) SessionSummary(ctx context.Context, sessionID string) (*dto.SessionSummary, error) {
	records, err := s.AttendanceForSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	courseID, err := s.courseForSession(ctx, sessionID, records)
	if err != nil {
		return nil, err
	}

	roster, err := s.courses.GetEnrolledStudents(ctx, courseID)
	if err != nil {
		return nil, err
	}

	scannedAt := make(map[int64]time.Time, len(records))
	for _, record := range records {
		scannedAt[record.StudentID] = record.Timestamp
	}

	summary := &dto.SessionSummary{
		SessionID:     sessionID,
		CourseID:      courseID,
		PresentCount:  len(records),
		EnrolledCount: len(roster),
		Students:      make([]dto.StudentPresence, 0, len(roster)),
	}
	if len(roster) > 0 {
		summary.PresenceRate = float64(len(records)) / float64(len(roster))
	}

	for _, student := range roster {
		presence := dto.StudentPresence{Student: student}
		if at, ok := scannedAt[student.ID]; ok {
			presence.Present = true
			formatted := at.Format(time.RFC3339)
			presence.ScannedAt = &formatted
		}
		summary.Students = append(summary.Students, presence)
	}

	return summary, nil
}

// courseForSession recovers the course a session belongs to. Derived session
// keys embed the schedule item id; ad-hoc keys fall back to the course
// already referenced by the session's records.
func (s *AttendanceService) courseForSession(ctx context.Context, sessionID string, records []models.AttendanceRecord) (int64, error) {
	if itemID, _, err := sessionkey.Parse(sessionID); err == nil {
		if item, err := s.schedule.GetByID(ctx, itemID); err == nil {
			return item.CourseID, nil
		}
	}

	if len(records) > 0 {
		return records[0].CourseID, nil
	}

	return 0, apperrors.NewResourceNotFoundError(
		fmt.Sprintf("no course can be determined for session %q", sessionID))
}
