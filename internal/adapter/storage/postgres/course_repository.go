package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-courses-app/internal/core/domain/courses"
)

// CourseRepository implements ports.CourseRepository using PostgreSQL.
type CourseRepository struct {
	db *pgxpool.Pool
}

func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{db: db}
}

func (r *CourseRepository) Save(ctx context.Context, course courses.Course) error {
	query := `
		INSERT INTO courses (id, user_id, title, description, estimated_time, materials_needed)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(ctx, query,
		course.ID, course.UserID, course.Title, course.Description,
		course.EstimatedTime, course.MaterialsNeeded)
	if err != nil {
		return fmt.Errorf("failed to insert course: %w", err)
	}
	return nil
}

func (r *CourseRepository) FindByID(ctx context.Context, id string) (courses.Course, error) {
	query := `
		SELECT id, user_id, title, description, estimated_time, materials_needed
		FROM courses
		WHERE id = $1
	`
	var course courses.Course
	err := r.db.QueryRow(ctx, query, id).Scan(
		&course.ID, &course.UserID, &course.Title, &course.Description,
		&course.EstimatedTime, &course.MaterialsNeeded)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return courses.Course{}, courses.ErrNotFound
		}
		return courses.Course{}, fmt.Errorf("failed to fetch course: %w", err)
	}
	return course, nil
}

func (r *CourseRepository) FindAll(ctx context.Context) ([]courses.Course, error) {
	query := `
		SELECT id, user_id, title, description, estimated_time, materials_needed
		FROM courses
		ORDER BY created_at
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	list := []courses.Course{}
	for rows.Next() {
		var course courses.Course
		if err := rows.Scan(
			&course.ID, &course.UserID, &course.Title, &course.Description,
			&course.EstimatedTime, &course.MaterialsNeeded); err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		list = append(list, course)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return list, nil
}

// Update applies a partial update in one statement conditional on both id and
// owner, so it cannot modify a course it raced with a delete or reassignment.
func (r *CourseRepository) Update(ctx context.Context, id, ownerID string, patch courses.Patch) error {
	query := `
		UPDATE courses SET
			title            = COALESCE($3, title),
			description      = COALESCE($4, description),
			estimated_time   = COALESCE($5, estimated_time),
			materials_needed = COALESCE($6, materials_needed),
			updated_at       = NOW()
		WHERE id = $1 AND user_id = $2
	`
	cmdTag, err := r.db.Exec(ctx, query, id, ownerID,
		patch.Title, patch.Description, patch.EstimatedTime, patch.MaterialsNeeded)
	if err != nil {
		return fmt.Errorf("failed to update course: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return courses.ErrNotFound
	}
	return nil
}

func (r *CourseRepository) Delete(ctx context.Context, id, ownerID string) error {
	query := `DELETE FROM courses WHERE id = $1 AND user_id = $2`
	cmdTag, err := r.db.Exec(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return courses.ErrNotFound
	}
	return nil
}
