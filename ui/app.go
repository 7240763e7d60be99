// Package ui exposes the dashboard JSON API: spreadsheet uploads, per-tenant
// dashboard reads, insights editing, and the report export payload.
package ui

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"francadash/app"
	"francadash/internal/config"
)

// App represents the web application
type App struct {
	router    *chi.Mux
	uploads   *app.UploadService
	dashboard *app.DashboardService
	config    *config.Config
}

// NewApp creates a new web application
func NewApp(cfg *config.Config, uploads *app.UploadService, dashboard *app.DashboardService) *App {
	a := &App{
		router:    chi.NewRouter(),
		uploads:   uploads,
		dashboard: dashboard,
		config:    cfg,
	}

	a.setupMiddleware()
	a.setupRoutes()

	return a
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(requestMetrics)
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	a.router.Handle("/metrics", promhttp.Handler())

	a.router.Get("/api/companies", a.handleListCompanies)
	a.router.Get("/api/companies/{id}/dashboard", a.handleDashboard)
	a.router.Get("/api/companies/{id}/export", a.handleExport)

	// Mutating endpoints sit behind the shared admin password.
	a.router.Group(func(r chi.Router) {
		r.Use(a.requireAdmin)
		r.Post("/api/companies/{id}/upload", a.handleUpload)
		r.Put("/api/companies/{id}/insights", a.handleSaveInsights)
	})
}

// Start runs the HTTP server on the given address.
func (a *App) Start(addr string) error {
	log.Printf("[App] Listening on %s", addr)
	return http.ListenAndServe(addr, a.router)
}

// Router exposes the handler for tests.
func (a *App) Router() http.Handler {
	return a.router
}

// requireAdmin gates mutating endpoints behind the shared admin password.
func (a *App) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Admin-Password") != a.config.Admin.Password {
			writeError(w, http.StatusUnauthorized, "invalid admin password")
			return
		}
		next.ServeHTTP(w, r)
	})
}
