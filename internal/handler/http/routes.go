package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init assembles the router and the middleware pipeline. Middleware runs
// outermost first: the trace id opens the request's logging span, the timeout
// guard bounds everything inside it, CORS answers preflights before any real
// work, and gzip wraps the innermost handlers.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withTimeout)
	router.Use(h.withCORS)
	router.Use(withGZip)
	router.Use(middleware.Recoverer)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/health", h.health)

		r.Get(openAPIPath, h.openAPIDocument)
		r.Get("/swagger-ui", h.swaggerUI)
		r.Get("/scalar", h.scalar)
	})

	// routes behind a session
	router.Group(func(r chi.Router) {
		r.Use(h.sessionAuth)
		r.Post("/api/auth/logout", h.logout)
		r.Get("/api/auth/profile", h.profile)
		r.Post("/api/auth/password", h.changePassword)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusNotFound, "route not found")
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		if allowed := allowedMethods(router, r.URL.Path); len(allowed) > 0 {
			w.Header().Set("Allow", strings.Join(allowed, ", "))
		}
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	})

	return router
}

// allowedMethods lists the HTTP methods the router would accept for path, in
// the order they appear in checkMethods. It backs the Allow header on 405
// responses.
func allowedMethods(router *chi.Mux, path string) []string {
	var allowed []string
	for _, method := range checkMethods {
		rctx := chi.NewRouteContext()
		if router.Match(rctx, method, path) {
			allowed = append(allowed, method)
		}
	}
	return allowed
}

var checkMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}
