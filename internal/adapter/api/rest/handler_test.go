package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"go-courses-app/internal/core/domain/courses"
)

type MockCourseService struct {
	mock.Mock
}

func (m *MockCourseService) List(ctx context.Context) ([]courses.Course, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]courses.Course), args.Error(1)
}

func (m *MockCourseService) Get(ctx context.Context, id string) (courses.Course, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(courses.Course), args.Error(1)
}

func (m *MockCourseService) Create(ctx context.Context, course courses.Course) (courses.Course, error) {
	args := m.Called(ctx, course)
	return args.Get(0).(courses.Course), args.Error(1)
}

func (m *MockCourseService) Update(ctx context.Context, id, ownerID string, patch courses.Patch) error {
	args := m.Called(ctx, id, ownerID, patch)
	return args.Error(0)
}

func (m *MockCourseService) Delete(ctx context.Context, id, ownerID string) error {
	args := m.Called(ctx, id, ownerID)
	return args.Error(0)
}

var testCaller = AuthenticatedUser{ID: "u1", FirstName: "Joe", EmailAddress: "joe@smith.com"}

// decodeEnvelope extracts the message out of {"error":{"message":...}}.
func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) any {
	t.Helper()
	var envelope struct {
		Error struct {
			Message any `json:"message"`
		} `json:"error"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope.Error.Message
}

func authedRequest(method, target string, body []byte) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	return req.WithContext(WithCurrentUser(req.Context(), testCaller))
}

func TestCourseHandler_List(t *testing.T) {
	mockSvc := new(MockCourseService)
	h := NewCourseHandler(mockSvc, slog.Default())

	mockSvc.On("List", mock.Anything).Return([]courses.Course{
		{ID: "c1", UserID: "u1", Title: "Go 101", Description: "An introduction"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/courses", nil)
	w := httptest.NewRecorder()
	h.List(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
	assert.Equal(t, "c1", resp[0]["id"])
	assert.Equal(t, "u1", resp[0]["userId"])
	assert.NotContains(t, resp[0], "password")
}

func TestCourseHandler_Get(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockSvc := new(MockCourseService)
		h := NewCourseHandler(mockSvc, slog.Default())
		mockSvc.On("Get", mock.Anything, "c1").
			Return(courses.Course{ID: "c1", UserID: "u1", Title: "Go 101", Description: "An introduction"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/courses/c1", nil)
		req.SetPathValue("id", "c1")
		w := httptest.NewRecorder()
		h.Get(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown id answers 400, not 404", func(t *testing.T) {
		mockSvc := new(MockCourseService)
		h := NewCourseHandler(mockSvc, slog.Default())
		mockSvc.On("Get", mock.Anything, "missing").Return(courses.Course{}, courses.ErrNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/courses/missing", nil)
		req.SetPathValue("id", "missing")
		w := httptest.NewRecorder()
		h.Get(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "No such course exists", decodeEnvelope(t, w))
	})
}

func TestCourseHandler_Create(t *testing.T) {
	t.Run("success sets Location and returns no body", func(t *testing.T) {
		mockSvc := new(MockCourseService)
		h := NewCourseHandler(mockSvc, slog.Default())

		mockSvc.On("Create", mock.Anything, mock.MatchedBy(func(c courses.Course) bool {
			return c.Title == "Go 101" && c.UserID == "u1"
		})).Return(courses.Course{ID: "c9", UserID: "u1", Title: "Go 101", Description: "An introduction"}, nil)

		body, _ := json.Marshal(map[string]string{"title": "Go 101", "description": "An introduction"})
		w := httptest.NewRecorder()
		h.Create(w, authedRequest(http.MethodPost, "/api/courses", body))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "/api/courses/c9", w.Header().Get("Location"))
		assert.Empty(t, w.Body.String())
	})

	t.Run("body userId overrides the caller", func(t *testing.T) {
		mockSvc := new(MockCourseService)
		h := NewCourseHandler(mockSvc, slog.Default())

		mockSvc.On("Create", mock.Anything, mock.MatchedBy(func(c courses.Course) bool {
			return c.UserID == "someone-else"
		})).Return(courses.Course{ID: "c9", UserID: "someone-else"}, nil)

		body, _ := json.Marshal(map[string]string{
			"title": "Go 101", "description": "An introduction", "userId": "someone-else",
		})
		w := httptest.NewRecorder()
		h.Create(w, authedRequest(http.MethodPost, "/api/courses", body))

		assert.Equal(t, http.StatusCreated, w.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing fields answer 400 with a message list", func(t *testing.T) {
		mockSvc := new(MockCourseService)
		h := NewCourseHandler(mockSvc, slog.Default())

		w := httptest.NewRecorder()
		h.Create(w, authedRequest(http.MethodPost, "/api/courses", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, []any{"title is missing", "description is missing"}, decodeEnvelope(t, w))
		mockSvc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("single missing field still answers with a one-element list", func(t *testing.T) {
		mockSvc := new(MockCourseService)
		h := NewCourseHandler(mockSvc, slog.Default())

		body, _ := json.Marshal(map[string]string{"title": "Go 101"})
		w := httptest.NewRecorder()
		h.Create(w, authedRequest(http.MethodPost, "/api/courses", body))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, []any{"description is missing"}, decodeEnvelope(t, w))
	})

	t.Run("unauthenticated", func(t *testing.T) {
		mockSvc := new(MockCourseService)
		h := NewCourseHandler(mockSvc, slog.Default())

		req := httptest.NewRequest(http.MethodPost, "/api/courses", nil)
		w := httptest.NewRecorder()
		h.Create(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Access Denied", decodeEnvelope(t, w))
	})
}

func TestCourseHandler_Update(t *testing.T) {
	body, _ := json.Marshal(map[string]string{"title": "Advanced Go"})

	t.Run("owner gets 204", func(t *testing.T) {
		mockSvc := new(MockCourseService)
		h := NewCourseHandler(mockSvc, slog.Default())
		mockSvc.On("Update", mock.Anything, "c1", "u1", mock.MatchedBy(func(p courses.Patch) bool {
			return p.Title != nil && *p.Title == "Advanced Go"
		})).Return(nil)

		req := authedRequest(http.MethodPut, "/api/courses/c1", body)
		req.SetPathValue("id", "c1")
		w := httptest.NewRecorder()
		h.Update(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("non-owner gets 403", func(t *testing.T) {
		mockSvc := new(MockCourseService)
		h := NewCourseHandler(mockSvc, slog.Default())
		mockSvc.On("Update", mock.Anything, "c1", "u1", mock.Anything).Return(courses.ErrNotOwner)

		req := authedRequest(http.MethodPut, "/api/courses/c1", body)
		req.SetPathValue("id", "c1")
		w := httptest.NewRecorder()
		h.Update(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "this user doesn't have permission to access this route", decodeEnvelope(t, w))
	})

	t.Run("unknown course gets 400", func(t *testing.T) {
		mockSvc := new(MockCourseService)
		h := NewCourseHandler(mockSvc, slog.Default())
		mockSvc.On("Update", mock.Anything, "missing", "u1", mock.Anything).Return(courses.ErrNotFound)

		req := authedRequest(http.MethodPut, "/api/courses/missing", body)
		req.SetPathValue("id", "missing")
		w := httptest.NewRecorder()
		h.Update(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "no such course exists", decodeEnvelope(t, w))
	})

	t.Run("empty body gets 400", func(t *testing.T) {
		mockSvc := new(MockCourseService)
		h := NewCourseHandler(mockSvc, slog.Default())
		mockSvc.On("Update", mock.Anything, "c1", "u1", courses.Patch{}).Return(courses.ErrEmptyPatch)

		req := authedRequest(http.MethodPut, "/api/courses/c1", nil)
		req.SetPathValue("id", "c1")
		w := httptest.NewRecorder()
		h.Update(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "update data is missing", decodeEnvelope(t, w))
	})
}

func TestCourseHandler_Delete(t *testing.T) {
	t.Run("owner gets 204", func(t *testing.T) {
		mockSvc := new(MockCourseService)
		h := NewCourseHandler(mockSvc, slog.Default())
		mockSvc.On("Delete", mock.Anything, "c1", "u1").Return(nil)

		req := authedRequest(http.MethodDelete, "/api/courses/c1", nil)
		req.SetPathValue("id", "c1")
		w := httptest.NewRecorder()
		h.Delete(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("non-owner gets 403", func(t *testing.T) {
		mockSvc := new(MockCourseService)
		h := NewCourseHandler(mockSvc, slog.Default())
		mockSvc.On("Delete", mock.Anything, "c1", "u1").Return(courses.ErrNotOwner)

		req := authedRequest(http.MethodDelete, "/api/courses/c1", nil)
		req.SetPathValue("id", "c1")
		w := httptest.NewRecorder()
		h.Delete(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
