package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/classtap/classtap/internal/app/models"
	"github.com/classtap/classtap/internal/pkg/apperrors"
)

// DirectoryService serves the read-only reference data the dashboard is built
// from: students, courses with rosters, and the weekly schedule.
type DirectoryService struct {
	students StudentStore
	courses  CourseStore
	schedule ScheduleStore
}

// NewDirectoryService creates a new directory service instance
func NewDirectoryService(students StudentStore, courses CourseStore, schedule ScheduleStore) *DirectoryService {
	return &DirectoryService{
		students: students,
		courses:  courses,
		schedule: schedule,
	}
}

// GetStudents retrieves all students.
func (s *DirectoryService) GetStudents(ctx context.Context) ([]models.Student, error) {
	students, err := s.students.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	return students, nil
}

// ResolveNFC resolves a scan credential to the student owning it. Pure read,
// safe for concurrent and repeated calls.
func (s *DirectoryService) ResolveNFC(ctx context.Context, nfcID string) (*models.Student, error) {
	nfcID = strings.TrimSpace(nfcID)
	if nfcID == "" {
		return nil, apperrors.NewValidationError("nfcId cannot be empty")
	}

	return s.students.GetByNFC(ctx, nfcID)
}

// GetCoursesWithStudents retrieves every course with its enrolled roster.
func (s *DirectoryService) GetCoursesWithStudents(ctx context.Context) ([]models.CourseWithStudents, error) {
	courses, err := s.courses.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}

	result := make([]models.CourseWithStudents, 0, len(courses))
	for _, course := range courses {
		students, err := s.courses.GetEnrolledStudents(ctx, course.ID)
		if err != nil {
			return nil, fmt.Errorf("error retrieving roster for course %d: %w", course.ID, err)
		}
		result = append(result, models.CourseWithStudents{Course: course, Students: students})
	}

	return result, nil
}

// GetCourseWithStudents retrieves one course with its enrolled roster. A
// course with zero enrollments returns an empty student list, not an error.
func (s *DirectoryService) GetCourseWithStudents(ctx context.Context, id int64) (*models.CourseWithStudents, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("course id must be positive")
	}

	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	students, err := s.courses.GetEnrolledStudents(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving roster for course %d: %w", id, err)
	}

	return &models.CourseWithStudents{Course: *course, Students: students}, nil
}

// GetScheduleItems retrieves the full weekly schedule.
func (s *DirectoryService) GetScheduleItems(ctx context.Context) ([]models.ScheduleItem, error) {
	items, err := s.schedule.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving schedule: %w", err)
	}
	return items, nil
}

// GetScheduleItem retrieves a single schedule item by id.
func (s *DirectoryService) GetScheduleItem(ctx context.Context, id int64) (*models.ScheduleItem, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("schedule item id must be positive")
	}

	return s.schedule.GetByID(ctx, id)
}
