package rest

import (
	"encoding/json"
	"net/http"
)

// apiError is the explicit short-circuit value for a failed request stage:
// a status plus the message(s) for the public envelope. The envelope shape
// follows the error kind: validation failures always carry an array of
// messages, every other kind a plain string.
type apiError struct {
	status   int
	messages []string
	list     bool
}

func newAPIError(status int, message string) *apiError {
	return &apiError{status: status, messages: []string{message}}
}

// newValidationError renders its messages as an array even when only a
// single rule failed.
func newValidationError(messages []string) *apiError {
	return &apiError{status: http.StatusBadRequest, messages: messages, list: true}
}

var (
	errAccessDenied  = newAPIError(http.StatusUnauthorized, "Access Denied")
	errRouteNotFound = newAPIError(http.StatusNotFound, "Route doesn't exist")
	errUnhandled     = newAPIError(http.StatusInternalServerError, "an error has occurred")
)

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Message any `json:"message"`
}

// writeError emits the uniform error envelope:
//
//	{"error": {"message": <string or array of strings>}}
func writeError(w http.ResponseWriter, e *apiError) {
	var message any
	if e.list {
		message = e.messages
	} else {
		message = e.messages[0]
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.status)
	_ = json.NewEncoder(w).Encode(errorEnvelope{Error: errorBody{Message: message}})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
