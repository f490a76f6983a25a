package task

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/task"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/validator"
)

type TaskServiceImpl struct {
	templateRepo   task.TemplateRepository
	assignmentRepo task.AssignmentRepository
	employeeRepo   employee.EmployeeRepository
	now            func() time.Time
}

func NewTaskService(templateRepo task.TemplateRepository, assignmentRepo task.AssignmentRepository, employeeRepo employee.EmployeeRepository, now func() time.Time) task.TaskService {
	if now == nil {
		now = time.Now
	}
	return &TaskServiceImpl{
		templateRepo:   templateRepo,
		assignmentRepo: assignmentRepo,
		employeeRepo:   employeeRepo,
		now:            now,
	}
}

// ========== TEMPLATES ==========

// CreateTemplate implements task.TaskService.
func (s *TaskServiceImpl) CreateTemplate(ctx context.Context, req task.CreateTemplateRequest) (task.TemplateResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TemplateResponse{}, err
	}

	created, err := s.templateRepo.Create(ctx, task.Template{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Factor:      req.Factor,
		IsActive:    true,
	})
	if err != nil {
		return task.TemplateResponse{}, fmt.Errorf("failed to create task template: %w", err)
	}
	return task.NewTemplateResponse(created, 0), nil
}

// GetTemplate implements task.TaskService.
func (s *TaskServiceImpl) GetTemplate(ctx context.Context, id int64) (task.TemplateResponse, error) {
	t, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		return task.TemplateResponse{}, err
	}
	open, err := s.templateRepo.CountOpenAssignments(ctx, id)
	if err != nil {
		return task.TemplateResponse{}, fmt.Errorf("failed to count assignments: %w", err)
	}
	return task.NewTemplateResponse(t, open), nil
}

// ListTemplates implements task.TaskService.
func (s *TaskServiceImpl) ListTemplates(ctx context.Context) ([]task.TemplateResponse, error) {
	templates, err := s.templateRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list task templates: %w", err)
	}

	out := make([]task.TemplateResponse, 0, len(templates))
	for _, t := range templates {
		out = append(out, task.NewTemplateResponse(t.Template, t.ActiveAssignments))
	}
	return out, nil
}

// UpdateTemplate implements task.TaskService.
func (s *TaskServiceImpl) UpdateTemplate(ctx context.Context, req task.UpdateTemplateRequest) (task.TemplateResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TemplateResponse{}, err
	}
	if _, err := s.templateRepo.Update(ctx, req.Patch()); err != nil {
		return task.TemplateResponse{}, err
	}
	return s.GetTemplate(ctx, req.ID)
}

// DeactivateTemplate implements task.TaskService.
func (s *TaskServiceImpl) DeactivateTemplate(ctx context.Context, id int64) error {
	inactive := false
	if _, err := s.templateRepo.Update(ctx, task.TemplatePatch{ID: id, IsActive: &inactive}); err != nil {
		return err
	}
	slog.Info("Task template deactivated", "template_id", id)
	return nil
}

// ========== ASSIGNMENTS ==========

// CreateAssignment implements task.TaskService.
func (s *TaskServiceImpl) CreateAssignment(ctx context.Context, req task.CreateAssignmentRequest) (task.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return task.AssignmentResponse{}, err
	}

	tpl, err := s.templateRepo.GetByID(ctx, req.TemplateID)
	if err != nil {
		return task.AssignmentResponse{}, err
	}
	if !tpl.IsActive {
		return task.AssignmentResponse{}, task.ErrTemplateInactive
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return task.AssignmentResponse{}, err
	}

	a := task.Assignment{
		TemplateID: req.TemplateID,
		EmployeeID: req.EmployeeID,
		Status:     task.StatusPending,
		Notes:      req.Notes,
	}
	if req.DueDate != "" {
		due, _ := validator.IsValidDate(req.DueDate)
		a.DueDate = &due
	}

	created, err := s.assignmentRepo.Create(ctx, a)
	if err != nil {
		return task.AssignmentResponse{}, err
	}
	return s.GetAssignment(ctx, created.ID)
}

// GetAssignment implements task.TaskService.
func (s *TaskServiceImpl) GetAssignment(ctx context.Context, id int64) (task.AssignmentResponse, error) {
	detail, err := s.assignmentRepo.GetByID(ctx, id)
	if err != nil {
		return task.AssignmentResponse{}, err
	}
	return task.NewAssignmentResponse(detail), nil
}

// ListAssignments implements task.TaskService.
func (s *TaskServiceImpl) ListAssignments(ctx context.Context, req task.ListAssignmentsRequest) ([]task.AssignmentResponse, error) {
	filter, err := req.Filter()
	if err != nil {
		return nil, err
	}

	details, err := s.assignmentRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list task assignments: %w", err)
	}

	out := make([]task.AssignmentResponse, 0, len(details))
	for _, d := range details {
		out = append(out, task.NewAssignmentResponse(d))
	}
	return out, nil
}

// UpdateAssignment implements task.TaskService.
func (s *TaskServiceImpl) UpdateAssignment(ctx context.Context, req task.UpdateAssignmentRequest) (task.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return task.AssignmentResponse{}, err
	}

	detail, err := s.assignmentRepo.GetByID(ctx, req.ID)
	if err != nil {
		return task.AssignmentResponse{}, err
	}
	a := detail.Assignment

	if req.Status != nil {
		a, err = a.TransitionTo(*req.Status, s.now())
		if err != nil {
			return task.AssignmentResponse{}, err
		}
	}
	if req.DueDate != nil {
		due, _ := validator.IsValidDate(*req.DueDate)
		a.DueDate = &due
	}
	if req.Notes != nil {
		a.Notes = req.Notes
	}

	saved, err := s.assignmentRepo.Save(ctx, a)
	if err != nil {
		return task.AssignmentResponse{}, err
	}

	if req.Status != nil && saved.Status.IsTerminal() && saved.CompletedMonth != nil {
		slog.Info("Task assignment completed",
			"assignment_id", saved.ID,
			"employee_id", saved.EmployeeID,
			"completed_month", *saved.CompletedMonth,
		)
	}
	return s.GetAssignment(ctx, saved.ID)
}

// ReassignAssignment implements task.TaskService.
func (s *TaskServiceImpl) ReassignAssignment(ctx context.Context, req task.ReassignRequest) (task.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return task.AssignmentResponse{}, err
	}

	detail, err := s.assignmentRepo.GetByID(ctx, req.ID)
	if err != nil {
		return task.AssignmentResponse{}, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return task.AssignmentResponse{}, err
	}

	a := detail.Assignment
	a.EmployeeID = req.EmployeeID
	if _, err := s.assignmentRepo.Save(ctx, a); err != nil {
		return task.AssignmentResponse{}, err
	}
	return s.GetAssignment(ctx, a.ID)
}

// DeleteAssignment implements task.TaskService.
func (s *TaskServiceImpl) DeleteAssignment(ctx context.Context, id int64) error {
	return s.assignmentRepo.Delete(ctx, id)
}
