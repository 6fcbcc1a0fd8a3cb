package models

import "time"

// AttendanceRecord is one durable attendance fact: a student was present for
// a session. Records are append-only; at most one exists per
// (student, session) pair and the timestamp is assigned by the store on the
// first successful write.
type AttendanceRecord struct {
	ID        int64            `json:"id" db:"id"`
	StudentID int64            `json:"studentId" db:"student_id"`
	CourseID  int64            `json:"courseId" db:"course_id"`
	SessionID string           `json:"sessionId" db:"session_id" example:"4-2025-03-10"`
	Timestamp time.Time        `json:"timestamp" db:"timestamp"`
	Status    AttendanceStatus `json:"status" db:"status" example:"Present"`
}
