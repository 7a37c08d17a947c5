package ports

import (
	"context"

	"go-courses-app/internal/core/domain/courses"
	"go-courses-app/internal/core/domain/users"
)

// AuthService defines signup and credential verification.
type AuthService interface {
	// SignUp hashes the password and persists a new user after checking
	// the email is not already registered (users.ErrEmailTaken).
	SignUp(ctx context.Context, in users.NewUserInput) (users.User, error)

	// Authenticate resolves a user by email and verifies the plaintext
	// password against the stored hash. The returned error distinguishes
	// the failure reason for diagnostics only; callers must not expose it.
	Authenticate(ctx context.Context, email, password string) (users.User, error)
}

// CourseService defines the application logic for courses.
type CourseService interface {
	List(ctx context.Context) ([]courses.Course, error)
	Get(ctx context.Context, id string) (courses.Course, error)
	Create(ctx context.Context, course courses.Course) (courses.Course, error)

	// Update and Delete enforce ownership: courses.ErrNotFound when the id
	// does not exist, courses.ErrNotOwner when ownerID does not match.
	Update(ctx context.Context, id, ownerID string, patch courses.Patch) error
	Delete(ctx context.Context, id, ownerID string) error
}

// Cache defines the caching operations for course payloads.
type Cache interface {
	// Get returns the cached payload, or nil with no error on a miss.
	Get(ctx context.Context, id string) ([]byte, error)

	Set(ctx context.Context, id string, data []byte) error

	// Invalidate removes a cached payload.
	Invalidate(ctx context.Context, id string) error
}
