package memory

import (
	"context"
	"sort"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/task"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/period"
)

type templateRepository struct {
	store *Store
}

func NewTemplateRepository(store *Store) task.TemplateRepository {
	return &templateRepository{store: store}
}

// Create implements task.TemplateRepository.
func (r *templateRepository) Create(ctx context.Context, t task.Template) (task.Template, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := r.store.timestamp()
	t.ID = r.store.nextID()
	t.CreatedAt = now
	t.UpdatedAt = now
	r.store.templates[t.ID] = t
	return t, nil
}

// GetByID implements task.TemplateRepository.
func (r *templateRepository) GetByID(ctx context.Context, id int64) (task.Template, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	t, ok := r.store.templates[id]
	if !ok {
		return task.Template{}, task.ErrTemplateNotFound
	}
	return t, nil
}

// ListActive implements task.TemplateRepository.
func (r *templateRepository) ListActive(ctx context.Context) ([]task.TemplateWithStats, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	open := make(map[int64]int64)
	for _, a := range r.store.assignments {
		if !a.Status.IsTerminal() {
			open[a.TemplateID]++
		}
	}

	out := []task.TemplateWithStats{}
	for _, t := range r.store.templates {
		if t.IsActive {
			out = append(out, task.TemplateWithStats{Template: t, ActiveAssignments: open[t.ID]})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Update implements task.TemplateRepository.
func (r *templateRepository) Update(ctx context.Context, patch task.TemplatePatch) (task.Template, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	t, ok := r.store.templates[patch.ID]
	if !ok {
		return task.Template{}, task.ErrTemplateNotFound
	}
	if patch.Name != nil {
		t.Name = *patch.Name
	}
	if patch.Description != nil {
		t.Description = patch.Description
	}
	if patch.Price != nil {
		t.Price = *patch.Price
	}
	if patch.Factor != nil {
		t.Factor = patch.Factor
	}
	if patch.IsActive != nil {
		t.IsActive = *patch.IsActive
	}
	t.UpdatedAt = r.store.timestamp()
	r.store.templates[t.ID] = t
	return t, nil
}

// CountOpenAssignments implements task.TemplateRepository.
func (r *templateRepository) CountOpenAssignments(ctx context.Context, templateID int64) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var count int64
	for _, a := range r.store.assignments {
		if a.TemplateID == templateID && !a.Status.IsTerminal() {
			count++
		}
	}
	return count, nil
}

type assignmentRepository struct {
	store *Store
}

func NewAssignmentRepository(store *Store) task.AssignmentRepository {
	return &assignmentRepository{store: store}
}

// Create implements task.AssignmentRepository.
func (r *assignmentRepository) Create(ctx context.Context, a task.Assignment) (task.Assignment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.templates[a.TemplateID]; !ok {
		return task.Assignment{}, task.ErrTemplateNotFound
	}
	if _, ok := r.store.employees[a.EmployeeID]; !ok {
		return task.Assignment{}, employee.ErrEmployeeNotFound
	}

	now := r.store.timestamp()
	a.ID = r.store.nextID()
	a.CreatedAt = now
	a.UpdatedAt = now
	r.store.assignments[a.ID] = a
	return a, nil
}

// GetByID implements task.AssignmentRepository.
func (r *assignmentRepository) GetByID(ctx context.Context, id int64) (task.AssignmentDetail, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	a, ok := r.store.assignments[id]
	if !ok {
		return task.AssignmentDetail{}, task.ErrAssignmentNotFound
	}
	return r.detail(a), nil
}

// List implements task.AssignmentRepository.
func (r *assignmentRepository) List(ctx context.Context, filter task.AssignmentFilter) ([]task.AssignmentDetail, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := []task.AssignmentDetail{}
	for _, a := range r.store.assignments {
		if filter.EmployeeID != nil && a.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Status != nil && a.Status != *filter.Status {
			continue
		}
		if filter.Date != nil {
			day := period.Day(*filter.Date)
			due := a.DueDate != nil && period.Day(*a.DueDate).Equal(day)
			done := a.CompletedAt != nil && period.Day(*a.CompletedAt).Equal(day)
			if !due && !done {
				continue
			}
		}
		out = append(out, r.detail(a))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

// Save implements task.AssignmentRepository.
func (r *assignmentRepository) Save(ctx context.Context, a task.Assignment) (task.Assignment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.assignments[a.ID]
	if !ok {
		return task.Assignment{}, task.ErrAssignmentNotFound
	}
	if _, ok := r.store.employees[a.EmployeeID]; !ok {
		return task.Assignment{}, employee.ErrEmployeeNotFound
	}
	a.CreatedAt = existing.CreatedAt
	a.UpdatedAt = r.store.timestamp()
	r.store.assignments[a.ID] = a
	return a, nil
}

// Delete implements task.AssignmentRepository.
func (r *assignmentRepository) Delete(ctx context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.assignments[id]; !ok {
		return task.ErrAssignmentNotFound
	}
	delete(r.store.assignments, id)
	return nil
}

// ListCompleted implements task.AssignmentRepository.
func (r *assignmentRepository) ListCompleted(ctx context.Context, employeeID int64, month string) ([]task.CompletedAssignment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := []task.CompletedAssignment{}
	for _, a := range r.store.assignments {
		if a.EmployeeID != employeeID || !a.Status.IsTerminal() || a.CompletedMonth == nil || *a.CompletedMonth != month {
			continue
		}
		t := r.store.templates[a.TemplateID]
		out = append(out, task.CompletedAssignment{
			AssignmentID:   a.ID,
			EmployeeID:     a.EmployeeID,
			TemplateName:   t.Name,
			Status:         a.Status,
			Price:          t.Price,
			Factor:         t.Factor,
			CompletedAt:    a.CompletedAt,
			CompletedMonth: *a.CompletedMonth,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AssignmentID < out[j].AssignmentID })
	return out, nil
}

// detail must be called with mu held.
func (r *assignmentRepository) detail(a task.Assignment) task.AssignmentDetail {
	t := r.store.templates[a.TemplateID]
	return task.AssignmentDetail{
		Assignment:   a,
		TemplateName: t.Name,
		EmployeeName: r.store.employees[a.EmployeeID].Name,
		Price:        t.Price,
		Factor:       t.Factor,
	}
}
