package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"go-courses-app/internal/core/ports"
)

// Middleware wraps an http.Handler with additional behavior.
type Middleware func(http.Handler) http.Handler

// Chain applies middlewares so the first argument is the outermost.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

type contextKey string

const (
	requestIDKey   contextKey = "requestID"
	currentUserKey contextKey = "currentUser"
)

// AuthenticatedUser is the immutable identity attached to a request after a
// successful basic-auth check. Downstream handlers read it instead of a
// loosely-typed context bag.
type AuthenticatedUser struct {
	ID           string
	FirstName    string
	EmailAddress string
}

// CurrentUser returns the authenticated identity for the request, if any.
func CurrentUser(ctx context.Context) (AuthenticatedUser, bool) {
	user, ok := ctx.Value(currentUserKey).(AuthenticatedUser)
	return user, ok
}

// WithCurrentUser attaches an authenticated identity to ctx. The BasicAuth
// middleware injects this automatically; exported for handler tests.
func WithCurrentUser(ctx context.Context, user AuthenticatedUser) context.Context {
	return context.WithValue(ctx, currentUserKey, user)
}

// RequestID ensures every request carries an X-Request-ID, generating one
// when the client did not send one.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := r.Header.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", rid)
		ctx := context.WithValue(r.Context(), requestIDKey, rid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Logger logs one line per request with method, path, status and duration.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := &statusRecorder{ResponseWriter: w, code: http.StatusOK}

			next.ServeHTTP(ww, r)

			rid, _ := r.Context().Value(requestIDKey).(string)
			logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.code,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", rid,
			)
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (w *statusRecorder) WriteHeader(statusCode int) {
	w.code = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

// BasicAuth authenticates a request from its Authorization header and
// attaches the resolved identity to the request context. Every failure mode
// (missing header, unknown email, wrong password) answers with the same 401
// envelope so clients cannot probe which emails are registered; the actual
// reason is logged for diagnostics.
func BasicAuth(auth ports.AuthService, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email, password, ok := r.BasicAuth()
			if !ok {
				logger.InfoContext(r.Context(), "rejected request", "reason", "authentication header is missing")
				writeError(w, errAccessDenied)
				return
			}

			user, err := auth.Authenticate(r.Context(), email, password)
			if err != nil {
				logger.InfoContext(r.Context(), "rejected request", "reason", err.Error())
				writeError(w, errAccessDenied)
				return
			}

			identity := AuthenticatedUser{
				ID:           user.ID,
				FirstName:    user.FirstName,
				EmailAddress: user.EmailAddress,
			}
			next.ServeHTTP(w, r.WithContext(WithCurrentUser(r.Context(), identity)))
		})
	}
}
