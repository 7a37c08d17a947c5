package rest

import (
	"net/http"
)

// NewRouter initializes the HTTP router and registers routes.
// auth is the BasicAuth middleware applied per-route to the protected surface.
func NewRouter(courseH *CourseHandler, userH *UserHandler, auth Middleware, mws ...Middleware) http.Handler {
	mux := http.NewServeMux()

	// Users
	mux.Handle("GET /api/users", auth(http.HandlerFunc(userH.GetCurrent)))
	mux.HandleFunc("POST /api/users", userH.Create)

	// Courses (reads are public, mutations require auth)
	mux.HandleFunc("GET /api/courses", courseH.List)
	mux.HandleFunc("GET /api/courses/{id}", courseH.Get)
	mux.Handle("POST /api/courses", auth(http.HandlerFunc(courseH.Create)))
	mux.Handle("PUT /api/courses/{id}", auth(http.HandlerFunc(courseH.Update)))
	mux.Handle("DELETE /api/courses/{id}", auth(http.HandlerFunc(courseH.Delete)))

	// Documentation
	mux.HandleFunc("GET /openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "api/openapi.yaml")
	})

	mux.HandleFunc("GET /api-docs", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		html := `<!DOCTYPE html>
				<html lang="en">
				<head>
					<meta charset="utf-8" />
					<meta name="viewport" content="width=device-width, initial-scale=1" />
					<meta name="description" content="SwaggerUI" />
					<title>SwaggerUI</title>
					<link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
				</head>
				<body>
				<div id="swagger-ui"></div>
				<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
				<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-standalone-preset.js" crossorigin></script>
				<script>
					window.onload = () => {
						window.ui = SwaggerUIBundle({
							url: '/openapi.yaml',
							dom_id: '#swagger-ui',
							presets: [
								SwaggerUIBundle.presets.apis,
								SwaggerUIStandalonePreset
							],
							layout: "StandaloneLayout",
						});
					};
				</script>
				</body>
				</html>`
		_, _ = w.Write([]byte(html))
	})

	// Anything unmatched gets the JSON 404 envelope instead of the
	// default plaintext response.
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, errRouteNotFound)
	})

	// Wrap with middleware
	return Chain(mux, mws...)
}
