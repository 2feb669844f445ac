package http

import (
	"log/slog"
	"os"

	"github.com/cmlabs-hris/hris-payroll-engine/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// RouterOptions carries the environment-dependent parts of the router
type RouterOptions struct {
	AllowedOrigins []string
	Env            string
	LogLevel       slog.Level
}

func NewRouter(
	opts RouterOptions,
	JWTService jwt.Service,
	calendarHandler CalendarHandler,
	settingsHandler SettingsHandler,
	attendanceHandler AttendanceHandler,
	employeeHandler EmployeeHandler,
	reportHandler ReportHandler,
	payrollHandler PayrollHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(opts.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       opts.LogLevel,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hris-payroll-engine"),
		slog.String("version", "v1.0.0"),
		slog.String("env", opts.Env),
	)

	allowedOrigins := opts.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000"}
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		// Requires authentication; every route is scoped to the token's company
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/calendar", func(r chi.Router) {
				r.Get("/days/{date}", calendarHandler.GetDay)
				r.Get("/months/{month}", calendarHandler.GetMonth)
			})

			r.Route("/events", func(r chi.Router) {
				r.Get("/", calendarHandler.ListEvents)
				r.Post("/", calendarHandler.CreateEvent)
				r.Put("/{id}", calendarHandler.UpdateEvent)
				r.Delete("/{id}", calendarHandler.DeleteEvent)
			})

			r.Route("/settings", func(r chi.Router) {
				r.Get("/working-days", settingsHandler.GetWorkingDays)
				r.Put("/working-days", settingsHandler.UpdateWorkingDays)
				r.Get("/working", settingsHandler.GetWorkingSettings)
				r.Put("/working", settingsHandler.UpdateWorkingSettings)

				r.Route("/monthly-overrides/{month}", func(r chi.Router) {
					r.Get("/", settingsHandler.GetMonthlyOverride)
					r.Put("/", settingsHandler.UpsertMonthlyOverride)
					r.Delete("/", settingsHandler.DeleteMonthlyOverride)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", attendanceHandler.DailySheet)
				r.Put("/", attendanceHandler.Mark)
				r.Post("/bulk", attendanceHandler.BulkMark)
				r.Post("/holiday-autofill", attendanceHandler.HolidayAutofill)
				r.Delete("/{employeeId}/{date}", attendanceHandler.Clear)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Post("/", employeeHandler.Create)
				r.Get("/{id}", employeeHandler.Get)
				r.Put("/{id}", employeeHandler.Update)
				r.Delete("/{id}", employeeHandler.Delete)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/salary", reportHandler.SalaryReport)
				r.Get("/salary/{employeeId}", reportHandler.EmployeeSalary)
			})

			r.Post("/payroll/calculate", payrollHandler.Calculate)
		})
	})
	return r
}
