package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"go-courses-app/internal/core/domain/courses"
	"go-courses-app/internal/core/ports"
)

var tracer = otel.Tracer("internal/core/service")

type CourseService struct {
	repo   ports.CourseRepository
	cache  ports.Cache
	logger *slog.Logger
}

func NewCourseService(repo ports.CourseRepository, cache ports.Cache, logger *slog.Logger) *CourseService {
	return &CourseService{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

func (s *CourseService) List(ctx context.Context) ([]courses.Course, error) {
	ctx, span := tracer.Start(ctx, "CourseService.List")
	defer span.End()

	list, err := s.repo.FindAll(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	return list, nil
}

func (s *CourseService) Get(ctx context.Context, id string) (courses.Course, error) {
	ctx, span := tracer.Start(ctx, "CourseService.Get", trace.WithAttributes(
		attribute.String("course.id", id),
	))
	defer span.End()

	// Read-through cache. Cache failures degrade to a store read.
	if data, err := s.cache.Get(ctx, id); err == nil && data != nil {
		var course courses.Course
		if err := json.Unmarshal(data, &course); err == nil {
			return course, nil
		}
		s.logger.Warn("discarding unreadable cache entry", "id", id)
	}

	course, err := s.repo.FindByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		return courses.Course{}, err
	}

	s.fillCache(ctx, course)
	return course, nil
}

func (s *CourseService) Create(ctx context.Context, course courses.Course) (courses.Course, error) {
	ctx, span := tracer.Start(ctx, "CourseService.Create", trace.WithAttributes(
		attribute.String("course.user_id", course.UserID),
	))
	defer span.End()

	course.ID = uuid.NewString()

	s.logger.InfoContext(ctx, "creating course", "id", course.ID, "user_id", course.UserID)

	if err := s.repo.Save(ctx, course); err != nil {
		span.RecordError(err)
		return courses.Course{}, fmt.Errorf("failed to save course: %w", err)
	}

	s.fillCache(ctx, course)
	return course, nil
}

func (s *CourseService) Update(ctx context.Context, id, ownerID string, patch courses.Patch) error {
	ctx, span := tracer.Start(ctx, "CourseService.Update", trace.WithAttributes(
		attribute.String("course.id", id),
	))
	defer span.End()

	if err := s.authorize(ctx, id, ownerID); err != nil {
		span.RecordError(err)
		return err
	}

	// Checked after authorization so an empty body cannot mask a 403.
	if patch.Empty() {
		return courses.ErrEmptyPatch
	}

	// Single conditional statement; a concurrent delete of the same course
	// surfaces here as ErrNotFound instead of silently resurrecting the row.
	if err := s.repo.Update(ctx, id, ownerID, patch); err != nil {
		span.RecordError(err)
		return err
	}

	s.invalidateCache(ctx, id)
	return nil
}

func (s *CourseService) Delete(ctx context.Context, id, ownerID string) error {
	ctx, span := tracer.Start(ctx, "CourseService.Delete", trace.WithAttributes(
		attribute.String("course.id", id),
	))
	defer span.End()

	if err := s.authorize(ctx, id, ownerID); err != nil {
		span.RecordError(err)
		return err
	}

	if err := s.repo.Delete(ctx, id, ownerID); err != nil {
		span.RecordError(err)
		return err
	}

	s.invalidateCache(ctx, id)
	return nil
}

// authorize loads the course and compares its owner to the caller. The load
// distinguishes "no such course" from "not yours"; the mutation itself is
// still guarded by the conditional WHERE clause in the repository.
func (s *CourseService) authorize(ctx context.Context, id, ownerID string) error {
	course, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if course.UserID != ownerID {
		return courses.ErrNotOwner
	}
	return nil
}

func (s *CourseService) fillCache(ctx context.Context, course courses.Course) {
	data, err := json.Marshal(course)
	if err != nil {
		s.logger.Error("failed to marshal course for cache", "error", err)
		return
	}
	if err := s.cache.Set(ctx, course.ID, data); err != nil {
		s.logger.Warn("failed to cache course", "id", course.ID, "error", err)
	}
}

func (s *CourseService) invalidateCache(ctx context.Context, id string) {
	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.logger.Warn("failed to invalidate cached course", "id", id, "error", err)
	}
}
