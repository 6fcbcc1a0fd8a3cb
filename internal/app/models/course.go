package models

// Course represents a taught course.
type Course struct {
	ID       int64  `json:"id" db:"id"`
	Code     string `json:"code" db:"code" example:"CS101"`
	Name     string `json:"name" db:"name" example:"Intro to Computer Science"`
	Location string `json:"location" db:"location" example:"Hall A"`
}

// CourseWithStudents is a course together with its enrolled roster.
// Students is always non-nil; a course without enrollments carries an
// empty slice, not an error.
type CourseWithStudents struct {
	Course
	Students []Student `json:"students"`
}

// Enrollment links one student to one course. The (student, course) pair
// is unique.
type Enrollment struct {
	ID        int64 `json:"id" db:"id"`
	StudentID int64 `json:"studentId" db:"student_id"`
	CourseID  int64 `json:"courseId" db:"course_id"`
}
