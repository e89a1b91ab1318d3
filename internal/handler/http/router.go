package http

import (
	"log/slog"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-attendance-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hris-attendance-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterOptions struct {
	Logger         *slog.Logger
	AllowedOrigins []string
	LogLevel       slog.Level
}

type Handlers struct {
	Auth       AuthHandler
	Trace      TraceHandler
	Dashboard  DashboardHandler
	Leave      LeaveHandler
	Employee   EmployeeHandler
	Department DepartmentHandler
}

func NewRouter(opts RouterOptions, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(opts.Logger, &httplog.Options{
		Level:  opts.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", h.Auth.OAuthCallbackGoogle)
			})

			r.Route("/login", func(r chi.Router) {
				r.Post("/", h.Auth.Login)
				r.Route("/oauth", func(r chi.Router) {
					r.Get("/google", h.Auth.LoginWithGoogle)
				})
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired)

			r.Post("/logout", h.Trace.Logout)

			r.With(middleware.RequirePermission(user.PermissionDashboardView)).
				Get("/dashboard/{id}", h.Dashboard.GetSummary)

			r.Route("/leave", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionLeaveViewOwn)).Get("/all", h.Leave.ListRequests)
				r.With(middleware.RequirePermission(user.PermissionLeaveCreate)).Post("/request", h.Leave.CreateRequest)
				r.With(middleware.RequirePermission(user.PermissionLeaveApprove)).Put("/update", h.Leave.UpdateStatus)
				r.With(middleware.RequirePermission(user.PermissionLeaveViewOwn)).Get("/{id}", h.Leave.GetRequest)
			})

			r.Route("/departments", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionDepartmentView)).Get("/", h.Department.List)
				r.With(middleware.RequirePermission(user.PermissionDepartmentManage)).Post("/", h.Department.Create)
			})

			r.Route("/employees", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionEmployeeViewAll)).Get("/", h.Employee.List)
				r.With(middleware.RequirePermission(user.PermissionEmployeeManage)).Post("/", h.Employee.Create)
			})

			// Admin only
			r.Route("/admin/traces", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.With(middleware.RequirePermission(user.PermissionTraceViewAll)).Get("/", h.Trace.List)
				r.With(middleware.RequirePermission(user.PermissionTraceViewAll)).Get("/summary", h.Trace.Summary)
				r.With(middleware.RequirePermission(user.PermissionTraceExport)).Get("/export", h.Trace.Export)
			})
		})
	})
	return r
}
