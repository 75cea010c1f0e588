package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/traincore/schedule-backend-go/internal/handler/http/middleware"
	"github.com/traincore/schedule-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	env string,
	clockHandler ClockHandler,
	holidayHandler HolidayHandler,
	scheduleHandler ScheduleHandler,
	leaveHandler LeaveHandler,
	overtimeHandler OvertimeHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "schedule-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link", "Retry-After"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/admin/clock", func(r chi.Router) {
					r.Get("/", clockHandler.GetConfig)
					r.Put("/", clockHandler.SetOverride)
					r.Delete("/", clockHandler.ClearOverride)
				})

				r.Route("/holidays", func(r chi.Router) {
					r.Get("/", holidayHandler.List)
					r.Post("/", holidayHandler.Create)
					r.Delete("/{id}", holidayHandler.Delete)
				})

				r.Post("/schedules", scheduleHandler.Create)
			})

			r.Route("/schedules/employees/{employeeID}", func(r chi.Router) {
				r.Get("/", scheduleHandler.ListForEmployee)
				r.Get("/active", scheduleHandler.GetActive)
				r.Get("/working-day", scheduleHandler.IsWorkingDay)
			})

			r.Route("/leave/requests", func(r chi.Router) {
				r.Post("/", leaveHandler.Submit)
				r.Get("/{id}", leaveHandler.Get)
				r.Post("/{id}/cancel", leaveHandler.Cancel)
				r.Get("/employees/{employeeID}", leaveHandler.ListForEmployee)

				// Deciders
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/{id}/approve", leaveHandler.Approve)
					r.Post("/{id}/reject", leaveHandler.Reject)
				})
			})

			r.Route("/overtime/declarations", func(r chi.Router) {
				r.Post("/", overtimeHandler.Submit)
				r.Get("/{id}", overtimeHandler.Get)
				r.Get("/employees/{employeeID}", overtimeHandler.ListForEmployee)

				// Deciders
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/{id}/approve", overtimeHandler.Approve)
					r.Post("/{id}/reject", overtimeHandler.Reject)
				})
			})
		})
	})

	return r
}
