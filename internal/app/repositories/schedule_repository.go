package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/classtap/classtap/internal/app/models"
	"github.com/classtap/classtap/internal/pkg/apperrors"
)

// ScheduleRepository handles database operations for schedule items
type ScheduleRepository struct {
	db *pgxpool.Pool
}

// NewScheduleRepository creates a new schedule repository
func NewScheduleRepository(db *pgxpool.Pool) *ScheduleRepository {
	return &ScheduleRepository{
		db: db,
	}
}

// Create inserts a new schedule item and fills in the generated id.
func (r *ScheduleRepository) Create(ctx context.Context, item *models.ScheduleItem) error {
	query := `
		INSERT INTO schedule_items (course_id, day_of_week, start_time, end_time, type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		item.CourseID, item.DayOfWeek, item.StartTime, item.EndTime, item.Type).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("error creating schedule item: %w", err)
	}

	return nil
}

// GetAll retrieves all schedule items with their courses attached, ordered by
// day of week then start time so the dashboard renders the week in order.
func (r *ScheduleRepository) GetAll(ctx context.Context) ([]models.ScheduleItem, error) {
	query := `
		SELECT si.id, si.course_id, si.day_of_week, si.start_time, si.end_time, si.type,
		       c.id, c.code, c.name, c.location
		FROM schedule_items si
		JOIN courses c ON c.id = si.course_id
		ORDER BY si.day_of_week, si.start_time
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewStoreUnavailableError(err)
	}
	defer rows.Close()

	var items []models.ScheduleItem
	for rows.Next() {
		var item models.ScheduleItem
		var course models.Course
		if err := rows.Scan(
			&item.ID,
			&item.CourseID,
			&item.DayOfWeek,
			&item.StartTime,
			&item.EndTime,
			&item.Type,
			&course.ID,
			&course.Code,
			&course.Name,
			&course.Location,
		); err != nil {
			return nil, err
		}
		item.Course = &course
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// GetByID retrieves a schedule item by id with its course attached.
func (r *ScheduleRepository) GetByID(ctx context.Context, id int64) (*models.ScheduleItem, error) {
	query := `
		SELECT si.id, si.course_id, si.day_of_week, si.start_time, si.end_time, si.type,
		       c.id, c.code, c.name, c.location
		FROM schedule_items si
		JOIN courses c ON c.id = si.course_id
		WHERE si.id = $1
	`

	var item models.ScheduleItem
	var course models.Course
	err := r.db.QueryRow(ctx, query, id).Scan(
		&item.ID,
		&item.CourseID,
		&item.DayOfWeek,
		&item.StartTime,
		&item.EndTime,
		&item.Type,
		&course.ID,
		&course.Code,
		&course.Name,
		&course.Location,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrScheduleItemNotFound
		}
		return nil, apperrors.NewStoreUnavailableError(err)
	}

	item.Course = &course
	return &item, nil
}
