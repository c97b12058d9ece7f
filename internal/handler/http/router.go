package http

import (
	"log/slog"
	"os"

	"github.com/gestionahr/gestion-backend-go/internal/handler/http/middleware"
	"github.com/gestionahr/gestion-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	jwtService jwt.Service,
	env string,
	allowedOrigins []string,
	authHandler AuthHandler,
	leaveHandler LeaveHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	calendarHandler CalendarHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "gestion-backend"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/leave", func(r chi.Router) {
				r.Get("/balance", leaveHandler.GetMyBalance)

				r.Route("/absences", func(r chi.Router) {
					r.Post("/", leaveHandler.CreateAbsence)
					r.Get("/my", leaveHandler.ListMyAbsences)
					r.Get("/{id}", leaveHandler.GetAbsence)
					r.Post("/{id}/cancel", leaveHandler.CancelAbsence)

					// Admin only
					r.Group(func(r chi.Router) {
						r.Use(middleware.AdminOnly)
						r.Get("/", leaveHandler.ListPendingAbsences)
						r.Post("/{id}/approve", leaveHandler.ApproveAbsence)
						r.Post("/{id}/reject", leaveHandler.RejectAbsence)
					})
				})

				// Admin only: master data
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/entitlements", leaveHandler.UpsertEntitlementRule)
					r.Get("/entitlements", leaveHandler.ListEntitlementRules)
					r.Put("/carryover", leaveHandler.UpsertCarryOver)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/clock-in", attendanceHandler.ClockIn)
				r.Post("/clock-out", attendanceHandler.ClockOut)
				r.Get("/my", attendanceHandler.ListMine)
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", calendarHandler.ListHolidays)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/", calendarHandler.UpsertHoliday)
				})
			})

			// Admin only
			r.Route("/employees", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", employeeHandler.List)
				r.Post("/", employeeHandler.Create)
				r.Route("/{code}", func(r chi.Router) {
					r.Get("/", employeeHandler.GetByCode)
					r.Post("/terminate", employeeHandler.Terminate)
					r.Get("/leave/balance", leaveHandler.GetEmployeeBalance)
					r.Get("/leave/carryover", leaveHandler.GetCarryOver)
					r.Get("/attendance", attendanceHandler.ListByEmployee)
				})
			})
		})
	})

	return r
}
