package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"go-courses-app/internal/core/domain/users"
	"go-courses-app/internal/core/ports"
)

// UserHandler serves the /api/users routes.
type UserHandler struct {
	service ports.AuthService
	logger  *slog.Logger
}

func NewUserHandler(service ports.AuthService, logger *slog.Logger) *UserHandler {
	return &UserHandler{service: service, logger: logger}
}

// GetCurrent handles GET /api/users. The BasicAuth middleware has already
// resolved the caller; this only echoes the whitelisted fields back.
func (h *UserHandler) GetCurrent(w http.ResponseWriter, r *http.Request) {
	caller, ok := CurrentUser(r.Context())
	if !ok {
		writeError(w, errAccessDenied)
		return
	}

	writeJSON(w, http.StatusOK, currentUserResponse{
		ID:           caller.ID,
		FirstName:    caller.FirstName,
		EmailAddress: caller.EmailAddress,
	})
}

// Create handles POST /api/users (signup, no auth required).
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, newAPIError(http.StatusBadRequest, err.Error()))
		return
	}

	input := req.toInput()
	if msgs := input.ValidateNew(); len(msgs) > 0 {
		writeError(w, newValidationError(msgs))
		return
	}

	if _, err := h.service.SignUp(r.Context(), input); err != nil {
		if errors.Is(err, users.ErrEmailTaken) {
			writeError(w, newAPIError(http.StatusBadRequest, "email already taken"))
			return
		}
		h.logger.Error("failed to sign up user", "error", err)
		writeError(w, errUnhandled)
		return
	}

	w.Header().Set("Location", "/")
	w.WriteHeader(http.StatusCreated)
}
