package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/hris-payroll-engine/internal/config"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/calendar"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/report"
	appHTTP "github.com/cmlabs-hris/hris-payroll-engine/internal/handler/http"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/pkg/cache"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/pkg/cron"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/pkg/database"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/hris-payroll-engine/internal/service/attendance"
	calendarService "github.com/cmlabs-hris/hris-payroll-engine/internal/service/calendar"
	companyService "github.com/cmlabs-hris/hris-payroll-engine/internal/service/company"
	employeeService "github.com/cmlabs-hris/hris-payroll-engine/internal/service/employee"
	payrollService "github.com/cmlabs-hris/hris-payroll-engine/internal/service/payroll"
	reportService "github.com/cmlabs-hris/hris-payroll-engine/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})).With(slog.String("app", "hris-payroll-engine"), slog.String("env", cfg.App.Env)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		slog.Error("Error connecting to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if cfg.Database.RunMigrations {
		if err := db.Migrate(ctx, cfg.Database.MigrationsDir); err != nil {
			slog.Error("Error running migrations", "error", err)
			os.Exit(1)
		}
	}

	// Repositories
	configRepo := postgresql.NewWorkingDayConfigRepository(db)
	eventRepo := postgresql.NewEventRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	// Caches
	monthCache := cache.New[calendar.MonthSummary]()
	reportCache := cache.New[report.ReportData]()

	// Services
	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	calendarSvc := calendarService.NewCalendarService(configRepo, eventRepo, monthCache, cfg.Cache.CalendarTTL, reportCache)
	settingsSvc := companyService.NewSettingsService(settingsRepo, configRepo, calendarSvc)
	payrollSvc := payrollService.NewPayrollService(settingsRepo, calendarSvc)
	reportSvc := reportService.NewReportService(employeeRepo, attendanceRepo, payrollSvc, reportCache, cfg.Cache.ReportTTL)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, reportCache)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, calendarSvc, reportCache)

	// Handlers
	calendarHandler := appHTTP.NewCalendarHandler(calendarSvc)
	settingsHandler := appHTTP.NewSettingsHandler(settingsSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterOptions{
			AllowedOrigins: cfg.App.CORSAllowedOrigins,
			Env:            cfg.App.Env,
			LogLevel:       cfg.SlogLevel(),
		},
		JWTService,
		calendarHandler,
		settingsHandler,
		attendanceHandler,
		employeeHandler,
		reportHandler,
		payrollHandler,
	)

	// Scheduled jobs
	scheduler := cron.NewScheduler(ctx)
	cron.NewCacheJobs(map[string]cron.Purger{
		"calendar": monthCache,
		"report":   reportCache,
	}).RegisterJobs(scheduler)
	cron.NewAttendanceJobs(eventRepo, attendanceSvc).RegisterJobs(scheduler)
	scheduler.Start()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Server running", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown error", "error", err)
	}
	scheduler.Stop()
}
