package services

import (
	"context"
	"fmt"
	"time"

	"github.com/classtap/classtap/internal/app/models"
	"github.com/classtap/classtap/internal/pkg/apperrors"
)

// fakeDirectory implements StudentStore, CourseStore and ScheduleStore over
// in-memory slices.
type fakeDirectory struct {
	students  []models.Student
	courses   []models.Course
	schedule  []models.ScheduleItem
	enrolled  map[int64][]int64 // courseID -> studentIDs
	failReads bool
}

func (f *fakeDirectory) GetAll(ctx context.Context) ([]models.Student, error) {
	if f.failReads {
		return nil, apperrors.NewStoreUnavailableError(fmt.Errorf("directory down"))
	}
	return f.students, nil
}

func (f *fakeDirectory) GetByNFC(ctx context.Context, nfcID string) (*models.Student, error) {
	if f.failReads {
		return nil, apperrors.NewStoreUnavailableError(fmt.Errorf("directory down"))
	}
	for i := range f.students {
		if f.students[i].NFCID == nfcID {
			return &f.students[i], nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

type fakeCourses struct {
	dir *fakeDirectory
}

func (f fakeCourses) GetAll(ctx context.Context) ([]models.Course, error) {
	return f.dir.courses, nil
}

func (f fakeCourses) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	for i := range f.dir.courses {
		if f.dir.courses[i].ID == id {
			return &f.dir.courses[i], nil
		}
	}
	return nil, apperrors.ErrCourseNotFound
}

func (f fakeCourses) GetEnrolledStudents(ctx context.Context, courseID int64) ([]models.Student, error) {
	roster := make([]models.Student, 0)
	for _, studentID := range f.dir.enrolled[courseID] {
		for _, student := range f.dir.students {
			if student.ID == studentID {
				roster = append(roster, student)
			}
		}
	}
	return roster, nil
}

type fakeSchedule struct {
	dir *fakeDirectory
}

func (f fakeSchedule) GetAll(ctx context.Context) ([]models.ScheduleItem, error) {
	return f.dir.schedule, nil
}

func (f fakeSchedule) GetByID(ctx context.Context, id int64) (*models.ScheduleItem, error) {
	for i := range f.dir.schedule {
		if f.dir.schedule[i].ID == id {
			return &f.dir.schedule[i], nil
		}
	}
	return nil, apperrors.ErrScheduleItemNotFound
}

// fakeRecordStore implements AttendanceStore with the same per-(student,
// session) uniqueness the real store enforces with its constraint.
type fakeRecordStore struct {
	records    []models.AttendanceRecord
	nextID     int64
	failInsert bool
}

func (f *fakeRecordStore) Insert(ctx context.Context, record *models.AttendanceRecord) (bool, error) {
	if f.failInsert {
		return false, apperrors.NewStoreUnavailableError(fmt.Errorf("write failed"))
	}
	for _, existing := range f.records {
		if existing.StudentID == record.StudentID && existing.SessionID == record.SessionID {
			*record = existing
			return false, nil
		}
	}
	f.nextID++
	record.ID = f.nextID
	record.Timestamp = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC).Add(time.Duration(f.nextID) * time.Minute)
	f.records = append(f.records, *record)
	return true, nil
}

func (f *fakeRecordStore) GetBySession(ctx context.Context, sessionID string) ([]models.AttendanceRecord, error) {
	out := make([]models.AttendanceRecord, 0)
	for _, record := range f.records {
		if record.SessionID == sessionID {
			out = append(out, record)
		}
	}
	return out, nil
}

func (f *fakeRecordStore) GetByCourse(ctx context.Context, courseID int64) ([]models.AttendanceRecord, error) {
	out := make([]models.AttendanceRecord, 0)
	for _, record := range f.records {
		if record.CourseID == courseID {
			out = append(out, record)
		}
	}
	return out, nil
}

// capturingPublisher records published scan events.
type capturingPublisher struct {
	events []ScanEvent
}

func (p *capturingPublisher) PublishScan(event ScanEvent) {
	p.events = append(p.events, event)
}

// newTestDirectory builds the standard fixture: students A and B enrolled in
// course C, plus course D with no enrollments.
func newTestDirectory() *fakeDirectory {
	return &fakeDirectory{
		students: []models.Student{
			{ID: 1, Name: "Alex Rivera", StudentID: "2023101", NFCID: "nfc_001"},
			{ID: 2, Name: "Sarah Chen", StudentID: "2023102", NFCID: "nfc_002"},
		},
		courses: []models.Course{
			{ID: 1, Code: "CS101", Name: "Intro to Computer Science", Location: "Hall A"},
			{ID: 2, Code: "MATH101", Name: "Calculus I", Location: "Room 304"},
		},
		schedule: []models.ScheduleItem{
			{ID: 4, CourseID: 1, DayOfWeek: 1, StartTime: "09:00", EndTime: "10:30", Type: models.ScheduleLecture},
		},
		enrolled: map[int64][]int64{1: {1, 2}},
	}
}
