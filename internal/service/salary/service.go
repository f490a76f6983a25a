package salary

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/deduction"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/responsibility"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/salary"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/settings"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/task"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/period"
	"golang.org/x/sync/errgroup"
)

const defaultWorkers = 8

type SalaryServiceImpl struct {
	employeeRepo       employee.EmployeeRepository
	settingsProvider   settings.Provider
	aggregator         *AttendanceAggregator
	assignmentRepo     task.AssignmentRepository
	responsibilityRepo responsibility.ResponsibilityRepository
	deductionRepo      deduction.DeductionRepository
	policy             salary.HoursPolicy
	workers            int
	now                func() time.Time
}

type Option func(*SalaryServiceImpl)

// WithWorkers bounds how many employees CalculateAllSalaries computes at once.
func WithWorkers(n int) Option {
	return func(s *SalaryServiceImpl) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithClock replaces time.Now for month defaulting and invoice stamps.
func WithClock(now func() time.Time) Option {
	return func(s *SalaryServiceImpl) {
		s.now = now
	}
}

func NewSalaryService(
	employeeRepo employee.EmployeeRepository,
	settingsProvider settings.Provider,
	attendanceRepo attendance.AttendanceRepository,
	assignmentRepo task.AssignmentRepository,
	responsibilityRepo responsibility.ResponsibilityRepository,
	deductionRepo deduction.DeductionRepository,
	policy salary.HoursPolicy,
	opts ...Option,
) *SalaryServiceImpl {
	s := &SalaryServiceImpl{
		employeeRepo:       employeeRepo,
		settingsProvider:   settingsProvider,
		aggregator:         NewAttendanceAggregator(attendanceRepo),
		assignmentRepo:     assignmentRepo,
		responsibilityRepo: responsibilityRepo,
		deductionRepo:      deductionRepo,
		policy:             policy,
		workers:            defaultWorkers,
		now:                time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// snapshot is every record one report reads, fetched once.
type snapshot struct {
	month            period.Month
	employee         employee.Employee
	settings         settings.AdminSettings
	sessions         []attendance.Session
	tasks            []task.CompletedAssignment
	responsibilities []responsibility.Responsibility
	deductions       []deduction.Rule
}

// CalculateSalaryForEmployee implements salary.SalaryService.
func (s *SalaryServiceImpl) CalculateSalaryForEmployee(ctx context.Context, employeeID int64, month string) (salary.SalaryReport, error) {
	m, err := period.Resolve(month, s.now())
	if err != nil {
		return salary.SalaryReport{}, err
	}

	snap, err := s.load(ctx, employeeID, nil, m)
	if err != nil {
		return salary.SalaryReport{}, err
	}

	return s.compose(snap), nil
}

// CalculateAllSalaries implements salary.SalaryService.
func (s *SalaryServiceImpl) CalculateAllSalaries(ctx context.Context, month string) ([]salary.SalarySummary, error) {
	m, err := period.Resolve(month, s.now())
	if err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	summaries := make([]salary.SalarySummary, len(employees))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, emp := range employees {
		g.Go(func() error {
			snap, err := s.load(gCtx, emp.ID, &emp, m)
			if err != nil {
				return fmt.Errorf("salary of employee %d: %w", emp.ID, err)
			}
			summaries[i] = s.compose(snap).Summary()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	slog.Info("Payroll calculated", "period", m.String(), "employees", len(summaries), "policy", s.policy.Name())
	return summaries, nil
}

// GenerateEmployeeInvoice implements salary.SalaryService.
func (s *SalaryServiceImpl) GenerateEmployeeInvoice(ctx context.Context, employeeID int64, month string) (salary.Invoice, error) {
	m, err := period.Resolve(month, s.now())
	if err != nil {
		return salary.Invoice{}, err
	}

	snap, err := s.load(ctx, employeeID, nil, m)
	if err != nil {
		return salary.Invoice{}, err
	}

	return buildInvoice(snap, s.compose(snap), s.now())
}

// load fetches every input of a report concurrently. When known is set the
// employee lookup is skipped.
func (s *SalaryServiceImpl) load(ctx context.Context, employeeID int64, known *employee.Employee, m period.Month) (snapshot, error) {
	snap := snapshot{month: m}
	month := m.String()

	g, gCtx := errgroup.WithContext(ctx)

	if known != nil {
		snap.employee = *known
	} else {
		g.Go(func() error {
			emp, err := s.employeeRepo.GetByID(gCtx, employeeID)
			if err != nil {
				return err
			}
			snap.employee = emp
			return nil
		})
	}

	g.Go(func() error {
		st, err := s.settingsProvider.Get(gCtx)
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}
		snap.settings = st
		return nil
	})

	g.Go(func() error {
		sessions, err := s.aggregator.ClosedSessions(gCtx, employeeID, m)
		if err != nil {
			return fmt.Errorf("failed to load attendance: %w", err)
		}
		snap.sessions = sessions
		return nil
	})

	g.Go(func() error {
		tasks, err := s.assignmentRepo.ListCompleted(gCtx, employeeID, month)
		if err != nil {
			return fmt.Errorf("failed to load completed tasks: %w", err)
		}
		snap.tasks = tasks
		return nil
	})

	g.Go(func() error {
		items, err := s.responsibilityRepo.ListByEmployeeAndMonth(gCtx, employeeID, month)
		if err != nil {
			return fmt.Errorf("failed to load responsibilities: %w", err)
		}
		snap.responsibilities = items
		return nil
	})

	g.Go(func() error {
		rules, err := s.deductionRepo.ListActiveForEmployee(gCtx, employeeID, month)
		if err != nil {
			return fmt.Errorf("failed to load deductions: %w", err)
		}
		snap.deductions = rules
		return nil
	})

	if err := g.Wait(); err != nil {
		return snapshot{}, err
	}
	return snap, nil
}

// compose is a pure function of the snapshot.
func (s *SalaryServiceImpl) compose(snap snapshot) salary.SalaryReport {
	emp := snap.employee
	month := snap.month.String()

	totalHours := attendance.TotalHours(snap.sessions)
	hoursPay := s.policy.ComputeWorkingHoursPay(totalHours, emp, snap.settings)

	tasks := Breakdown(TaskLines(snap.tasks, emp, snap.settings, month))
	responsibilities := Breakdown(ResponsibilityLines(snap.responsibilities, emp, month))

	gross := emp.BaseSalary.
		Add(hoursPay.WorkingHoursPay).
		Add(tasks.TotalEarnings).
		Add(responsibilities.TotalEarnings)

	deductions := ResolveDeductions(snap.deductions, emp.ID, month, gross, hoursPay.DeductionRate)

	return salary.SalaryReport{
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		Period:       snap.month,
		Policy:       s.policy.Name(),
		BaseSalary:   emp.BaseSalary,
		Attendance: salary.AttendanceBreakdown{
			SessionCount: len(snap.sessions),
			TotalHours:   totalHours,
			HoursPay:     hoursPay,
		},
		Tasks:            tasks,
		Responsibilities: responsibilities,
		Deductions:       deductions,
		GrossSalary:      gross,
		NetSalary:        gross.Sub(deductions.Total),
	}
}
