package dto

import "github.com/classtap/classtap/internal/app/models"

// ScanRequest is the body of POST /attendance. Exactly one of SessionID or
// ScheduleItemID must be set: when SessionID is empty the server derives the
// session key for today from ScheduleItemID, so a skewed client clock cannot
// scatter scans across sessions.
type ScanRequest struct {
	NFCID          string `json:"nfcId" binding:"required" example:"nfc_001"`
	CourseID       int64  `json:"courseId" binding:"required" example:"1"`
	SessionID      string `json:"sessionId,omitempty" example:"4-2025-03-10"`
	ScheduleItemID int64  `json:"scheduleItemId,omitempty" example:"4"`
}

// ScanResponse is returned for both first-time and repeated scans.
// AlreadyRecorded is true when the tap matched an existing record, in which
// case Record is the original fact, not a new row.
type ScanResponse struct {
	Student         *models.Student          `json:"student"`
	Record          *models.AttendanceRecord `json:"record"`
	AlreadyRecorded bool                     `json:"alreadyRecorded"`
}

// StudentPresence is one roster row of a session summary.
type StudentPresence struct {
	Student   models.Student `json:"student"`
	Present   bool           `json:"present"`
	ScannedAt *string        `json:"scannedAt,omitempty" example:"2025-03-10T09:01:05Z"`
}

// SessionSummary aggregates one session against the course roster.
type SessionSummary struct {
	SessionID     string            `json:"sessionId" example:"4-2025-03-10"`
	CourseID      int64             `json:"courseId" example:"1"`
	PresentCount  int               `json:"presentCount" example:"3"`
	EnrolledCount int               `json:"enrolledCount" example:"5"`
	PresenceRate  float64           `json:"presenceRate" example:"0.6"`
	Students      []StudentPresence `json:"students"`
}
