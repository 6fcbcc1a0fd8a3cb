package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/classtap/classtap/internal/app/models"
	appRepos "github.com/classtap/classtap/internal/app/repositories"
	"github.com/classtap/classtap/internal/pkg/apperrors"
)

func strPtr(s string) *string { return &s }

// CreateDemoData populates the database with a small demo campus: five
// students with registered NFC tags, three courses and a weekly schedule.
// It is a no-op when student rows already exist, so restarts never
// duplicate data.
func CreateDemoData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	studentRepo := appRepos.NewStudentRepository(dbPool)
	courseRepo := appRepos.NewCourseRepository(dbPool)
	scheduleRepo := appRepos.NewScheduleRepository(dbPool)

	count, err := studentRepo.CountAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to check for existing data: %w", err)
	}
	if count > 0 {
		lgr.Info().Int("students", count).Msg("Demo data already present, skipping seed")
		return nil
	}

	lgr.Info().Msg("Seeding demo data...")

	students := []*appModels.Student{
		{Name: "Alex Rivera", StudentID: "2023101", NFCID: "nfc_001", Avatar: strPtr("https://i.pravatar.cc/150?u=alex")},
		{Name: "Sarah Chen", StudentID: "2023102", NFCID: "nfc_002", Avatar: strPtr("https://i.pravatar.cc/150?u=sarah")},
		{Name: "Marcus Johnson", StudentID: "2023103", NFCID: "nfc_003", Avatar: strPtr("https://i.pravatar.cc/150?u=marcus")},
		{Name: "Elena Petrova", StudentID: "2023104", NFCID: "nfc_004", Avatar: strPtr("https://i.pravatar.cc/150?u=elena")},
		{Name: "David Kim", StudentID: "2023105", NFCID: "nfc_005", Avatar: strPtr("https://i.pravatar.cc/150?u=david")},
	}
	for _, s := range students {
		if err := studentRepo.Create(ctx, s); err != nil {
			return fmt.Errorf("failed to seed student %s: %w", s.StudentID, err)
		}
	}

	courses := []*appModels.Course{
		{Code: "CS101", Name: "Intro to Computer Science", Location: "Hall A"},
		{Code: "CS202", Name: "Data Structures", Location: "Lab 3"},
		{Code: "MATH101", Name: "Calculus I", Location: "Room 304"},
	}
	for _, c := range courses {
		if err := courseRepo.Create(ctx, c); err != nil {
			return fmt.Errorf("failed to seed course %s: %w", c.Code, err)
		}
	}
	cs101, cs202, math101 := courses[0], courses[1], courses[2]

	// Every student takes CS101 and MATH101; the first three also take CS202.
	var finalErr error
	for i, s := range students {
		enrollments := []int64{cs101.ID, math101.ID}
		if i < 3 {
			enrollments = append(enrollments, cs202.ID)
		}
		for _, courseID := range enrollments {
			if err := courseRepo.Enroll(ctx, s.ID, courseID); err != nil && !errors.Is(err, apperrors.ErrAlreadyEnrolled) {
				lgr.Error().Err(err).Int64("studentId", s.ID).Int64("courseId", courseID).Msg("Error seeding enrollment")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	scheduleItems := []*appModels.ScheduleItem{
		{CourseID: cs101.ID, DayOfWeek: 1, StartTime: "09:00", EndTime: "10:30", Type: appModels.ScheduleLecture},
		{CourseID: math101.ID, DayOfWeek: 1, StartTime: "11:00", EndTime: "12:30", Type: appModels.ScheduleLecture},
		{CourseID: cs202.ID, DayOfWeek: 2, StartTime: "14:00", EndTime: "16:00", Type: appModels.ScheduleLab},
		{CourseID: cs101.ID, DayOfWeek: 3, StartTime: "09:00", EndTime: "10:30", Type: appModels.ScheduleTutorial},
		{CourseID: math101.ID, DayOfWeek: 4, StartTime: "11:00", EndTime: "12:30", Type: appModels.ScheduleLecture},
	}
	for _, item := range scheduleItems {
		if err := scheduleRepo.Create(ctx, item); err != nil {
			lgr.Error().Err(err).Int64("courseId", item.CourseID).Msg("Error seeding schedule item")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().
			Int("students", len(students)).
			Int("courses", len(courses)).
			Int("scheduleItems", len(scheduleItems)).
			Msg("Demo data seeded")
	}
	return finalErr
}
