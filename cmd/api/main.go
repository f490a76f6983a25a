package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/payroll-backend-go/internal/config"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/deduction"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/note"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/responsibility"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/settings"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/task"
	appHTTP "github.com/cmlabs-hris/payroll-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/cron"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/payroll-backend-go/internal/repository/memory"
	"github.com/cmlabs-hris/payroll-backend-go/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/payroll-backend-go/internal/service/attendance"
	serviceAuth "github.com/cmlabs-hris/payroll-backend-go/internal/service/auth"
	deductionService "github.com/cmlabs-hris/payroll-backend-go/internal/service/deduction"
	employeeService "github.com/cmlabs-hris/payroll-backend-go/internal/service/employee"
	noteService "github.com/cmlabs-hris/payroll-backend-go/internal/service/note"
	responsibilityService "github.com/cmlabs-hris/payroll-backend-go/internal/service/responsibility"
	salaryService "github.com/cmlabs-hris/payroll-backend-go/internal/service/salary"
	settingsService "github.com/cmlabs-hris/payroll-backend-go/internal/service/settings"
	taskService "github.com/cmlabs-hris/payroll-backend-go/internal/service/task"
)

type repositories struct {
	employee       employee.EmployeeRepository
	note           note.NoteRepository
	attendance     attendance.AttendanceRepository
	settings       settings.SettingsRepository
	template       task.TemplateRepository
	assignment     task.AssignmentRepository
	responsibility responsibility.ResponsibilityRepository
	deduction      deduction.DeductionRepository
	close          func()
}

func openRepositories(ctx context.Context, cfg *config.Config) (repositories, error) {
	switch cfg.Database.Driver {
	case config.StorageMemory:
		store := memory.NewStore()
		return repositories{
			employee:       memory.NewEmployeeRepository(store),
			note:           memory.NewNoteRepository(store),
			attendance:     memory.NewAttendanceRepository(store),
			settings:       memory.NewSettingsRepository(store),
			template:       memory.NewTemplateRepository(store),
			assignment:     memory.NewAssignmentRepository(store),
			responsibility: memory.NewResponsibilityRepository(store),
			deduction:      memory.NewDeductionRepository(store),
			close:          func() {},
		}, nil

	case config.StoragePostgreSQL:
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			return repositories{}, fmt.Errorf("connect database: %w", err)
		}
		if err := db.EnsureSchema(ctx); err != nil {
			db.Close()
			return repositories{}, fmt.Errorf("ensure schema: %w", err)
		}
		return repositories{
			employee:       postgresql.NewEmployeeRepository(db),
			note:           postgresql.NewNoteRepository(db),
			attendance:     postgresql.NewAttendanceRepository(db),
			settings:       postgresql.NewSettingsRepository(db),
			template:       postgresql.NewTemplateRepository(db),
			assignment:     postgresql.NewAssignmentRepository(db),
			responsibility: postgresql.NewResponsibilityRepository(db),
			deduction:      postgresql.NewDeductionRepository(db),
			close:          db.Close,
		}, nil
	}
	return repositories{}, fmt.Errorf("unsupported storage driver %q", cfg.Database.Driver)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel()})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, err := openRepositories(ctx, cfg)
	if err != nil {
		log.Fatal("Error opening storage: ", err)
	}
	defer repos.close()

	policy, err := salaryService.NewPolicy(cfg.Salary.Policy)
	if err != nil {
		log.Fatal("Error selecting salary policy: ", err)
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	employeeSvc := employeeService.NewEmployeeService(repos.employee)
	authSvc := serviceAuth.NewAuthService(repos.employee, JWTService)
	noteSvc := noteService.NewNoteService(repos.note, repos.employee)
	settingsSvc := settingsService.NewSettingsService(repos.settings)
	attendanceSvc := attendanceService.NewAttendanceService(
		repos.attendance,
		repos.employee,
		attendanceService.WithStaleAfterDays(cfg.Attendance.StaleAfterDays),
	)
	taskSvc := taskService.NewTaskService(repos.template, repos.assignment, repos.employee, time.Now)
	responsibilitySvc := responsibilityService.NewResponsibilityService(repos.responsibility, repos.employee, time.Now)
	deductionSvc := deductionService.NewDeductionService(repos.deduction, repos.employee, time.Now)
	salarySvc := salaryService.NewSalaryService(
		repos.employee,
		settingsSvc,
		repos.attendance,
		repos.assignment,
		repos.responsibility,
		repos.deduction,
		policy,
		salaryService.WithWorkers(cfg.Salary.Workers),
	)

	if cfg.SeedAdmin.Enabled() {
		req := employee.CreateEmployeeRequest{
			Name:         "Administrator",
			Username:     cfg.SeedAdmin.Username,
			Password:     cfg.SeedAdmin.Password,
			EmployeeType: employee.TypeAdmin,
		}
		if cfg.SeedAdmin.Email != "" {
			req.Email = &cfg.SeedAdmin.Email
		}
		created, err := employeeSvc.EnsureAdmin(ctx, req)
		if err != nil {
			log.Fatal("Error seeding administrator: ", err)
		}
		if created {
			slog.Info("Seeded administrator", "username", cfg.SeedAdmin.Username)
		}
	}

	scheduler := cron.NewScheduler()
	if cfg.Cron.Enabled {
		cron.NewAttendanceJobs(attendanceSvc, cfg.Cron.Interval).RegisterJobs(scheduler)
		scheduler.Start(ctx)
		defer scheduler.Stop()
	}

	router := appHTTP.NewRouter(cfg, JWTService, appHTTP.Handlers{
		Auth:           appHTTP.NewAuthHandler(authSvc),
		Employee:       appHTTP.NewEmployeeHandler(employeeSvc),
		Note:           appHTTP.NewNoteHandler(noteSvc),
		Attendance:     appHTTP.NewAttendanceHandler(attendanceSvc),
		Settings:       appHTTP.NewSettingsHandler(settingsSvc),
		Task:           appHTTP.NewTaskHandler(taskSvc),
		Responsibility: appHTTP.NewResponsibilityHandler(responsibilitySvc),
		Deduction:      appHTTP.NewDeductionHandler(deductionSvc),
		Salary:         appHTTP.NewSalaryHandler(salarySvc),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Server running", "addr", "http://localhost"+server.Addr, "storage", cfg.Database.Driver, "policy", policy.Name())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
}
