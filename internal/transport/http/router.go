package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-todo-api/internal/application/auth"
	"github.com/go-todo-api/internal/application/task"
	"github.com/go-todo-api/internal/config"
	"github.com/go-todo-api/internal/transport/http/handler"
	appmiddleware "github.com/go-todo-api/internal/transport/http/middleware"
	"github.com/go-todo-api/internal/transport/http/respond"
	"golang.org/x/time/rate"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	wr := respond.NewWriter(cfg.IsProduction())

	// The dev fallback is a convenience for local handler testing only.
	devFallback := cfg.AuthDevFallback && !cfg.IsProduction()
	authMw := appmiddleware.Auth(deps.Tokens, wr, devFallback)

	// Applied to the credential endpoints only.
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst, wr)

	authSvc := auth.NewService(deps.UserRepo, deps.Tokens)
	taskSvc := task.NewService(deps.TaskRepo)

	healthH := handler.NewHealthHandler(wr)
	authH := handler.NewAuthHandler(authSvc, wr)
	taskH := handler.NewTaskHandler(taskSvc, wr)

	r.Route("/v1", func(r chi.Router) {
		// ── Public routes (no auth) ──────────────────────────────────────────
		r.Get("/health-check", healthH.Ping)
		r.With(sensitiveRL.Limit).Post("/auth/signup", authH.Signup)
		r.With(sensitiveRL.Limit).Post("/auth/login", authH.Login)

		// ── Authenticated routes ─────────────────────────────────────────────
		r.Group(func(r chi.Router) {
			if cfg.TrustProxyAuth {
				r.Use(appmiddleware.GatewayClaims)
			}
			r.Use(authMw)

			r.Post("/todo", taskH.Create)
			r.Get("/todo", taskH.List)
			r.Put("/todo/{taskId}", taskH.Update)
			r.Delete("/todo/{taskId}", taskH.Delete)
			r.Patch("/todo/{taskId}/done", taskH.Complete)
		})
	})

	return r
}
