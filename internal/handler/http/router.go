package http

import (
	"log/slog"
	"os"

	"github.com/cmlabs-hris/payroll-backend-go/internal/config"
	"github.com/cmlabs-hris/payroll-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// Handlers groups every HTTP handler mounted by NewRouter.
type Handlers struct {
	Auth           AuthHandler
	Employee       EmployeeHandler
	Note           NoteHandler
	Attendance     AttendanceHandler
	Settings       SettingsHandler
	Task           TaskHandler
	Responsibility ResponsibilityHandler
	Deduction      DeductionHandler
	Salary         SalaryHandler
}

func NewRouter(cfg *config.Config, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.LogLevel(),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "payroll-cmlabs"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.CORSAllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  cfg.LogLevel(),
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", h.Auth.Login)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService))

			r.Route("/auth", func(r chi.Router) {
				r.Post("/logout", h.Auth.Logout)
				r.Get("/me", h.Auth.Me)
			})

			r.Route("/employees", func(r chi.Router) {
				r.With(middleware.RequireManager).Get("/", h.Employee.ListEmployees)
				r.With(middleware.AdminOnly).Post("/", h.Employee.CreateEmployee)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Employee.GetEmployee)

					// Admin only
					r.Group(func(r chi.Router) {
						r.Use(middleware.AdminOnly)
						r.Put("/", h.Employee.UpdateEmployee)
						r.Delete("/", h.Employee.DeleteEmployee)
					})

					r.Route("/notes", func(r chi.Router) {
						r.Use(middleware.RequireManager)
						r.Get("/", h.Note.ListNotes)
						r.Post("/", h.Note.CreateNote)
					})
				})
			})

			r.With(middleware.RequireManager).Delete("/notes/{id}", h.Note.DeleteNote)

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/checkin", h.Attendance.CheckIn)
				r.Post("/checkout", h.Attendance.CheckOut)
				r.Get("/{employeeId}", h.Attendance.ListByMonth)
				r.Get("/{employeeId}/today", h.Attendance.Today)
				r.Get("/{employeeId}/total", h.Attendance.MonthlyTotal)
			})

			r.Route("/settings", func(r chi.Router) {
				r.Get("/", h.Settings.GetSettings)
				r.With(middleware.AdminOnly).Put("/", h.Settings.UpdateSettings)
			})

			r.Route("/task-templates", func(r chi.Router) {
				r.Use(middleware.RequireManager)
				r.Get("/", h.Task.ListTemplates)
				r.Post("/", h.Task.CreateTemplate)
				r.Get("/{id}", h.Task.GetTemplate)
				r.Put("/{id}", h.Task.UpdateTemplate)
				r.Delete("/{id}", h.Task.DeactivateTemplate)
			})

			r.Route("/task-assignments", func(r chi.Router) {
				r.Get("/", h.Task.ListAssignments)
				r.Put("/{id}", h.Task.UpdateAssignment)

				// Managers only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", h.Task.CreateAssignment)
					r.Patch("/{id}/reassign", h.Task.ReassignAssignment)
					r.Delete("/{id}", h.Task.DeleteAssignment)
				})
			})

			r.Route("/responsibilities", func(r chi.Router) {
				r.Get("/", h.Responsibility.List)
				r.Get("/{id}", h.Responsibility.Get)

				// Managers only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", h.Responsibility.Create)
					r.Put("/{id}", h.Responsibility.Update)
					r.Delete("/{id}", h.Responsibility.Delete)
				})
			})

			r.Route("/deductions", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", h.Deduction.List)
				r.Post("/", h.Deduction.Create)
				r.Get("/employee/{employeeId}", h.Deduction.ListForEmployee)
				r.Get("/{id}", h.Deduction.Get)
				r.Put("/{id}", h.Deduction.Update)
				r.Delete("/{id}", h.Deduction.Delete)
			})

			r.Route("/salary", func(r chi.Router) {
				r.With(middleware.AdminOnly).Get("/", h.Salary.List)
				r.With(middleware.AdminOnly).Get("/export", h.Salary.Export)
				r.Get("/{employeeId}", h.Salary.Get)

				r.Route("/invoice/{employeeId}", func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/", h.Salary.Invoice)
					r.Get("/pdf", h.Salary.InvoicePDF)
				})
			})
		})
	})
	return r
}
