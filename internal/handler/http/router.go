package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/geoattend/geoattend-backend-go/internal/config"
	"github.com/geoattend/geoattend-backend-go/internal/handler/http/middleware"
	"github.com/geoattend/geoattend-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth      AuthHandler
	Employee  EmployeeHandler
	Settings  SettingsHandler
	WorkLog   WorkLogHandler
	Dashboard DashboardHandler
	Report    ReportHandler
	Anomaly   AnomalyHandler
	Events    EventsHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers, uploadsDir string) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "geoattend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	// Evidence photos and avatars
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadsDir)))
	r.Get("/uploads/*", fileServer.ServeHTTP)

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// The kiosk is public: employees pick themselves from the roster
		// and act from there, no login involved.
		r.Route("/attendance", func(r chi.Router) {
			r.Post("/check-in", h.WorkLog.CheckIn)
			r.Post("/check-out", h.WorkLog.CheckOut)
			r.Post("/leave", h.WorkLog.RequestLeave)
			r.Get("/today/{employeeID}", h.WorkLog.GetToday)
		})
		r.Get("/roster", h.Employee.List)

		// Dashboard refresh hints; authenticated by a short-lived token
		// in the query string
		r.Get("/events", h.Events.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/auth/sse-token", h.Auth.SSEToken)

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/employees", func(r chi.Router) {
					r.Get("/", h.Employee.List)
					r.Post("/", h.Employee.Create)
					r.Get("/{id}", h.Employee.Get)
					r.Put("/{id}", h.Employee.Update)
					r.Post("/{id}/avatar", h.Employee.UploadAvatar)
					r.Delete("/{id}", h.Employee.Delete)
				})

				r.Route("/settings", func(r chi.Router) {
					r.Get("/", h.Settings.Get)
					r.Put("/", h.Settings.Update)
				})

				r.Route("/worklogs", func(r chi.Router) {
					r.Get("/", h.WorkLog.List)
					r.Patch("/{id}/leave", h.WorkLog.DecideLeave)
					r.Patch("/{id}/check-out", h.WorkLog.CorrectCheckOut)
					r.Delete("/", h.WorkLog.ResetAll)
				})

				r.Get("/dashboard", h.Dashboard.GetDashboard)

				r.Route("/reports", func(r chi.Router) {
					r.Get("/recap", h.Report.AttendanceRecap)
					r.Get("/lateness", h.Report.Lateness)
					r.Get("/work-hours", h.Report.WorkHours)
					r.Get("/leave", h.Report.Leave)
					r.Get("/export/{tab}", h.Report.Export)
				})

				r.Get("/anomaly/{employeeID}", h.Anomaly.Analyze)
			})
		})
	})
	return r
}
