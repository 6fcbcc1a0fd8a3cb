package models

// AttendanceStatus is the recorded state of a student for one session.
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "Present"
	StatusLate    AttendanceStatus = "Late"
	StatusAbsent  AttendanceStatus = "Absent"
)

// Valid reports whether s is a known attendance status.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case StatusPresent, StatusLate, StatusAbsent:
		return true
	}
	return false
}

// ScheduleType categorizes a recurring schedule slot.
type ScheduleType string

const (
	ScheduleLecture  ScheduleType = "Lecture"
	ScheduleLab      ScheduleType = "Lab"
	ScheduleTutorial ScheduleType = "Tutorial"
)

// Valid reports whether t is a known schedule type.
func (t ScheduleType) Valid() bool {
	switch t {
	case ScheduleLecture, ScheduleLab, ScheduleTutorial:
		return true
	}
	return false
}
