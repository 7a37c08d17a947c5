package ports

import (
	"context"

	"go-courses-app/internal/core/domain/courses"
	"go-courses-app/internal/core/domain/users"
)

// UserRepository defines storage for users.
type UserRepository interface {
	Save(ctx context.Context, user users.User) error

	// FindByEmail does an exact, case-sensitive match on the stored
	// email address. Returns users.ErrNotFound on no match.
	FindByEmail(ctx context.Context, email string) (users.User, error)
}

// CourseRepository defines storage for courses.
type CourseRepository interface {
	Save(ctx context.Context, course courses.Course) error

	// FindByID returns courses.ErrNotFound when the id does not exist.
	FindByID(ctx context.Context, id string) (courses.Course, error)

	FindAll(ctx context.Context) ([]courses.Course, error)

	// Update applies a partial update with a single conditional statement
	// (WHERE id AND user_id), so a delete racing with this call cannot
	// produce a lost update. Returns courses.ErrNotFound when no row matched.
	Update(ctx context.Context, id, ownerID string, patch courses.Patch) error

	// Delete removes the course, conditional on ownership like Update.
	Delete(ctx context.Context, id, ownerID string) error
}
