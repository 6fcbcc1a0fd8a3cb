package services

import (
	"context"
	"errors"
	"testing"

	"github.com/classtap/classtap/internal/pkg/apperrors"
)

func newTestDirectoryService(dir *fakeDirectory) *DirectoryService {
	return NewDirectoryService(dir, fakeCourses{dir}, fakeSchedule{dir})
}

func TestResolveNFC(t *testing.T) {
	svc := newTestDirectoryService(newTestDirectory())
	ctx := context.Background()

	student, err := svc.ResolveNFC(ctx, "nfc_002")
	if err != nil {
		t.Fatalf("ResolveNFC returned error: %v", err)
	}
	if student.StudentID != "2023102" {
		t.Errorf("resolved student number = %q, want 2023102", student.StudentID)
	}

	if _, err := svc.ResolveNFC(ctx, "nfc_404"); !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Errorf("unassigned tag error = %v, want ErrStudentNotFound", err)
	}
	if _, err := svc.ResolveNFC(ctx, ""); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("empty tag error = %v, want ErrValidationFailed", err)
	}
}

func TestGetCourseWithStudents(t *testing.T) {
	svc := newTestDirectoryService(newTestDirectory())
	ctx := context.Background()

	course, err := svc.GetCourseWithStudents(ctx, 1)
	if err != nil {
		t.Fatalf("GetCourseWithStudents returned error: %v", err)
	}
	if course.Code != "CS101" {
		t.Errorf("course code = %q, want CS101", course.Code)
	}
	if len(course.Students) != 2 {
		t.Errorf("roster size = %d, want 2", len(course.Students))
	}
}

func TestGetCourseWithStudents_EmptyRosterIsNotAnError(t *testing.T) {
	svc := newTestDirectoryService(newTestDirectory())

	// Course 2 exists but has no enrollments.
	course, err := svc.GetCourseWithStudents(context.Background(), 2)
	if err != nil {
		t.Fatalf("course without enrollments must not error: %v", err)
	}
	if course.Students == nil {
		t.Fatal("roster must be an empty slice, not nil")
	}
	if len(course.Students) != 0 {
		t.Errorf("roster size = %d, want 0", len(course.Students))
	}
}

func TestGetCourseWithStudents_NotFound(t *testing.T) {
	svc := newTestDirectoryService(newTestDirectory())

	if _, err := svc.GetCourseWithStudents(context.Background(), 99); !errors.Is(err, apperrors.ErrCourseNotFound) {
		t.Errorf("missing course error = %v, want ErrCourseNotFound", err)
	}
}

func TestGetCoursesWithStudents(t *testing.T) {
	svc := newTestDirectoryService(newTestDirectory())

	courses, err := svc.GetCoursesWithStudents(context.Background())
	if err != nil {
		t.Fatalf("GetCoursesWithStudents returned error: %v", err)
	}
	if len(courses) != 2 {
		t.Fatalf("course count = %d, want 2", len(courses))
	}
	for _, course := range courses {
		if course.Students == nil {
			t.Errorf("course %s roster must be non-nil", course.Code)
		}
	}
}

func TestGetScheduleItem(t *testing.T) {
	svc := newTestDirectoryService(newTestDirectory())
	ctx := context.Background()

	item, err := svc.GetScheduleItem(ctx, 4)
	if err != nil {
		t.Fatalf("GetScheduleItem returned error: %v", err)
	}
	if item.CourseID != 1 {
		t.Errorf("schedule item course = %d, want 1", item.CourseID)
	}

	if _, err := svc.GetScheduleItem(ctx, 77); !errors.Is(err, apperrors.ErrScheduleItemNotFound) {
		t.Errorf("missing item error = %v, want ErrScheduleItemNotFound", err)
	}
	if _, err := svc.GetScheduleItem(ctx, -1); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("negative id error = %v, want ErrValidationFailed", err)
	}
}
