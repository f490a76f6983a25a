package memory

import (
	"context"
	"sort"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/responsibility"
)

type responsibilityRepository struct {
	store *Store
}

func NewResponsibilityRepository(store *Store) responsibility.ResponsibilityRepository {
	return &responsibilityRepository{store: store}
}

// Create implements responsibility.ResponsibilityRepository.
func (r *responsibilityRepository) Create(ctx context.Context, resp responsibility.Responsibility) (responsibility.Responsibility, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.employees[resp.EmployeeID]; !ok {
		return responsibility.Responsibility{}, employee.ErrEmployeeNotFound
	}

	now := r.store.timestamp()
	resp.ID = r.store.nextID()
	resp.CreatedAt = now
	resp.UpdatedAt = now
	r.store.responsibilities[resp.ID] = resp
	return resp, nil
}

// GetByID implements responsibility.ResponsibilityRepository.
func (r *responsibilityRepository) GetByID(ctx context.Context, id int64) (responsibility.Detail, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	resp, ok := r.store.responsibilities[id]
	if !ok {
		return responsibility.Detail{}, responsibility.ErrResponsibilityNotFound
	}
	return responsibility.Detail{Responsibility: resp, EmployeeName: r.store.employees[resp.EmployeeID].Name}, nil
}

// List implements responsibility.ResponsibilityRepository.
func (r *responsibilityRepository) List(ctx context.Context, filter responsibility.Filter) ([]responsibility.Detail, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := []responsibility.Detail{}
	for _, resp := range r.store.responsibilities {
		if filter.EmployeeID != nil && resp.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Month != nil && resp.Month != *filter.Month {
			continue
		}
		out = append(out, responsibility.Detail{Responsibility: resp, EmployeeName: r.store.employees[resp.EmployeeID].Name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

// Update implements responsibility.ResponsibilityRepository.
func (r *responsibilityRepository) Update(ctx context.Context, patch responsibility.Patch) (responsibility.Responsibility, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	resp, ok := r.store.responsibilities[patch.ID]
	if !ok {
		return responsibility.Responsibility{}, responsibility.ErrResponsibilityNotFound
	}
	if patch.EmployeeID != nil {
		if _, ok := r.store.employees[*patch.EmployeeID]; !ok {
			return responsibility.Responsibility{}, employee.ErrEmployeeNotFound
		}
		resp.EmployeeID = *patch.EmployeeID
	}
	if patch.Name != nil {
		resp.Name = *patch.Name
	}
	if patch.Description != nil {
		resp.Description = patch.Description
	}
	if patch.MonthlyPrice != nil {
		resp.MonthlyPrice = *patch.MonthlyPrice
	}
	if patch.Factor != nil {
		resp.Factor = patch.Factor
	}
	if patch.Status != nil {
		resp.Status = *patch.Status
	}
	if patch.Month != nil {
		resp.Month = *patch.Month
	}
	resp.UpdatedAt = r.store.timestamp()
	r.store.responsibilities[resp.ID] = resp
	return resp, nil
}

// Delete implements responsibility.ResponsibilityRepository.
func (r *responsibilityRepository) Delete(ctx context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.responsibilities[id]; !ok {
		return responsibility.ErrResponsibilityNotFound
	}
	delete(r.store.responsibilities, id)
	return nil
}

// ListByEmployeeAndMonth implements responsibility.ResponsibilityRepository.
func (r *responsibilityRepository) ListByEmployeeAndMonth(ctx context.Context, employeeID int64, month string) ([]responsibility.Responsibility, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := []responsibility.Responsibility{}
	for _, resp := range r.store.responsibilities {
		if resp.EmployeeID == employeeID && resp.Month == month {
			out = append(out, resp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
