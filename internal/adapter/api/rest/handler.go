package rest

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"go-courses-app/internal/core/domain/courses"
	"go-courses-app/internal/core/ports"
)

// CourseHandler serves the /api/courses routes.
type CourseHandler struct {
	service ports.CourseService
	logger  *slog.Logger
}

func NewCourseHandler(service ports.CourseService, logger *slog.Logger) *CourseHandler {
	return &CourseHandler{service: service, logger: logger}
}

// decodeBody decodes a JSON body into dst. An empty body is not an error:
// it leaves dst zero-valued so field validation reports every missing field.
func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// List handles GET /api/courses
func (h *CourseHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list courses", "error", err)
		writeError(w, errUnhandled)
		return
	}

	resp := make([]courseResponse, 0, len(list))
	for _, course := range list {
		resp = append(resp, toCourseResponse(course))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/courses/{id}
func (h *CourseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	course, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, courses.ErrNotFound) {
			writeError(w, newAPIError(http.StatusBadRequest, "No such course exists"))
			return
		}
		h.logger.Error("failed to fetch course", "id", id, "error", err)
		writeError(w, errUnhandled)
		return
	}

	writeJSON(w, http.StatusOK, toCourseResponse(course))
}

// Create handles POST /api/courses
func (h *CourseHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := CurrentUser(r.Context())
	if !ok {
		writeError(w, errAccessDenied)
		return
	}

	var req createCourseRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, newAPIError(http.StatusBadRequest, err.Error()))
		return
	}

	course := req.toCourse(caller)
	if msgs := course.ValidateNew(); len(msgs) > 0 {
		writeError(w, newValidationError(msgs))
		return
	}

	created, err := h.service.Create(r.Context(), course)
	if err != nil {
		h.logger.Error("failed to create course", "error", err)
		writeError(w, errUnhandled)
		return
	}

	w.Header().Set("Location", "/api/courses/"+created.ID)
	w.WriteHeader(http.StatusCreated)
}

// Update handles PUT /api/courses/{id}
func (h *CourseHandler) Update(w http.ResponseWriter, r *http.Request) {
	caller, ok := CurrentUser(r.Context())
	if !ok {
		writeError(w, errAccessDenied)
		return
	}

	id := r.PathValue("id")
	var req updateCourseRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, newAPIError(http.StatusBadRequest, err.Error()))
		return
	}

	if err := h.service.Update(r.Context(), id, caller.ID, req.toPatch()); err != nil {
		h.respondCourseMutationError(w, id, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /api/courses/{id}
func (h *CourseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	caller, ok := CurrentUser(r.Context())
	if !ok {
		writeError(w, errAccessDenied)
		return
	}

	id := r.PathValue("id")
	if err := h.service.Delete(r.Context(), id, caller.ID); err != nil {
		h.respondCourseMutationError(w, id, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *CourseHandler) respondCourseMutationError(w http.ResponseWriter, id string, err error) {
	switch {
	case errors.Is(err, courses.ErrNotFound):
		// 400 rather than 404 is the documented contract for missing courses.
		writeError(w, newAPIError(http.StatusBadRequest, "no such course exists"))
	case errors.Is(err, courses.ErrNotOwner):
		writeError(w, newAPIError(http.StatusForbidden, "this user doesn't have permission to access this route"))
	case errors.Is(err, courses.ErrEmptyPatch):
		writeError(w, newAPIError(http.StatusBadRequest, "update data is missing"))
	default:
		h.logger.Error("course mutation failed", "id", id, "error", err)
		writeError(w, errUnhandled)
	}
}
