package memory

import (
	"context"
	"sort"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/deduction"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/employee"
)

type deductionRepository struct {
	store *Store
}

func NewDeductionRepository(store *Store) deduction.DeductionRepository {
	return &deductionRepository{store: store}
}

// Create implements deduction.DeductionRepository.
func (r *deductionRepository) Create(ctx context.Context, rule deduction.Rule) (deduction.Rule, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if rule.EmployeeID != nil {
		if _, ok := r.store.employees[*rule.EmployeeID]; !ok {
			return deduction.Rule{}, employee.ErrEmployeeNotFound
		}
	}

	now := r.store.timestamp()
	rule.ID = r.store.nextID()
	rule.CreatedAt = now
	rule.UpdatedAt = now
	r.store.deductions[rule.ID] = rule
	return rule, nil
}

// GetByID implements deduction.DeductionRepository.
func (r *deductionRepository) GetByID(ctx context.Context, id int64) (deduction.Detail, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rule, ok := r.store.deductions[id]
	if !ok {
		return deduction.Detail{}, deduction.ErrDeductionNotFound
	}
	return r.detail(rule), nil
}

// List implements deduction.DeductionRepository.
func (r *deductionRepository) List(ctx context.Context, filter deduction.Filter) ([]deduction.Detail, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := []deduction.Detail{}
	for _, rule := range r.store.deductions {
		if filter.Month != nil && rule.Month != *filter.Month {
			continue
		}
		if filter.EmployeeID != nil && rule.EmployeeID != nil && *rule.EmployeeID != *filter.EmployeeID {
			continue
		}
		out = append(out, r.detail(rule))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

// Update implements deduction.DeductionRepository.
func (r *deductionRepository) Update(ctx context.Context, patch deduction.Patch) (deduction.Rule, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	rule, ok := r.store.deductions[patch.ID]
	if !ok {
		return deduction.Rule{}, deduction.ErrDeductionNotFound
	}
	if patch.EmployeeID != nil {
		if _, ok := r.store.employees[*patch.EmployeeID]; !ok {
			return deduction.Rule{}, employee.ErrEmployeeNotFound
		}
		rule.EmployeeID = patch.EmployeeID
	}
	if patch.CompanyWide {
		rule.EmployeeID = nil
	}
	if patch.Name != nil {
		rule.Name = *patch.Name
	}
	if patch.Description != nil {
		rule.Description = patch.Description
	}
	if patch.Type != nil {
		rule.Type = *patch.Type
	}
	if patch.Amount != nil {
		rule.Amount = *patch.Amount
	}
	if patch.IsActive != nil {
		rule.IsActive = *patch.IsActive
	}
	if patch.Month != nil {
		rule.Month = *patch.Month
	}
	if patch.HoursDeducted != nil {
		rule.HoursDeducted = patch.HoursDeducted
	}
	rule.UpdatedAt = r.store.timestamp()
	r.store.deductions[rule.ID] = rule
	return rule, nil
}

// Delete implements deduction.DeductionRepository.
func (r *deductionRepository) Delete(ctx context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.deductions[id]; !ok {
		return deduction.ErrDeductionNotFound
	}
	delete(r.store.deductions, id)
	return nil
}

// ListActiveForEmployee implements deduction.DeductionRepository.
func (r *deductionRepository) ListActiveForEmployee(ctx context.Context, employeeID int64, month string) ([]deduction.Rule, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := []deduction.Rule{}
	for _, rule := range r.store.deductions {
		if rule.AppliesTo(employeeID, month) {
			out = append(out, rule)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// detail must be called with mu held.
func (r *deductionRepository) detail(rule deduction.Rule) deduction.Detail {
	d := deduction.Detail{Rule: rule}
	if rule.EmployeeID != nil {
		if e, ok := r.store.employees[*rule.EmployeeID]; ok {
			name := e.Name
			d.EmployeeName = &name
		}
	}
	return d
}
