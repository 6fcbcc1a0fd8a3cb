package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository    *StudentRepository
	CourseRepository     *CourseRepository
	ScheduleRepository   *ScheduleRepository
	AttendanceRepository *AttendanceRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository:    NewStudentRepository(db),
		CourseRepository:     NewCourseRepository(db),
		ScheduleRepository:   NewScheduleRepository(db),
		AttendanceRepository: NewAttendanceRepository(db),
	}
}
