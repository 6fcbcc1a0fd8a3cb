package models

// ScheduleItem is a recurring weekly time slot bound to one course.
// DayOfWeek runs 0 (Sunday) through 6; times are local wall-clock "HH:MM".
type ScheduleItem struct {
	ID        int64        `json:"id" db:"id"`
	CourseID  int64        `json:"courseId" db:"course_id"`
	DayOfWeek int          `json:"dayOfWeek" db:"day_of_week" example:"1"`
	StartTime string       `json:"startTime" db:"start_time" example:"09:00"`
	EndTime   string       `json:"endTime" db:"end_time" example:"10:30"`
	Type      ScheduleType `json:"type" db:"type" example:"Lecture"`

	// Course is populated when needed
	Course *Course `json:"course,omitempty"`
}
