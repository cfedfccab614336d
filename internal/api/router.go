package api

import (
	"net/http"
	"time"

	// This blank import is required by swaggo to find the API definitions.
	_ "trainpilot/backend/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"trainpilot/backend/internal/auth"
)

// NewRouter creates and configures the chi router with all application routes.
func NewRouter(chatHandler *ChatHandler, verifier auth.Verifier) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Unsupported verbs answer with the same JSON error shape as
	// everything else. Set before the routes so sub-routers inherit it.
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "Method Not Allowed"})
	})

	r.Get("/api/swagger/*", httpSwagger.WrapHandler)

	// Liveness probe for container orchestration.
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))

		r.Route("/chat", func(r chi.Router) {
			r.Use(CORS("POST, OPTIONS"))
			r.Options("/", preflight)
			r.With(RequireAuth(verifier)).Post("/", chatHandler.HandleChat)
		})

		r.Route("/plan", func(r chi.Router) {
			r.Use(CORS("GET, OPTIONS"))
			r.Options("/", preflight)
			r.With(RequireAuth(verifier)).Get("/", chatHandler.HandleGetPlan)
		})
	})

	return r
}

// preflight exists so OPTIONS requests match a route; the CORS middleware
// has already written the headers and the 200 by the time it would run.
func preflight(w http.ResponseWriter, r *http.Request) {}
