package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/employee"
)

type employeeRepository struct {
	store *Store
}

func NewEmployeeRepository(store *Store) employee.EmployeeRepository {
	return &employeeRepository{store: store}
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.employees {
		if strings.EqualFold(existing.Username, e.Username) {
			return employee.Employee{}, employee.ErrUsernameExists
		}
		if e.Email != nil && existing.Email != nil && strings.EqualFold(*existing.Email, *e.Email) {
			return employee.Employee{}, employee.ErrEmailExists
		}
	}

	now := r.store.timestamp()
	e.ID = r.store.nextID()
	e.CreatedAt = now
	e.UpdatedAt = now
	r.store.employees[e.ID] = e
	return e, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	e, ok := r.store.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

// GetByUsernameOrEmail implements employee.EmployeeRepository.
func (r *employeeRepository) GetByUsernameOrEmail(ctx context.Context, identifier string) (employee.Employee, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, e := range r.store.employees {
		if strings.EqualFold(e.Username, identifier) || (e.Email != nil && strings.EqualFold(*e.Email, identifier)) {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

// ExistsByUsername implements employee.EmployeeRepository.
func (r *employeeRepository) ExistsByUsername(ctx context.Context, username string, excludeID int64) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for id, e := range r.store.employees {
		if id != excludeID && strings.EqualFold(e.Username, username) {
			return true, nil
		}
	}
	return false, nil
}

// ExistsByEmail implements employee.EmployeeRepository.
func (r *employeeRepository) ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for id, e := range r.store.employees {
		if id != excludeID && e.Email != nil && strings.EqualFold(*e.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]employee.Employee, 0, len(r.store.employees))
	for _, e := range r.store.employees {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Count implements employee.EmployeeRepository.
func (r *employeeRepository) Count(ctx context.Context) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return int64(len(r.store.employees)), nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepository) Update(ctx context.Context, patch employee.Patch) (employee.Employee, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	e, ok := r.store.employees[patch.ID]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	e = patch.Apply(e)
	e.UpdatedAt = r.store.timestamp()
	r.store.employees[e.ID] = e
	return e, nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepository) Delete(ctx context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.employees[id]; !ok {
		return employee.ErrEmployeeNotFound
	}

	for sid, s := range r.store.sessions {
		if s.EmployeeID == id {
			delete(r.store.sessions, sid)
		}
	}
	for aid, a := range r.store.assignments {
		if a.EmployeeID == id {
			delete(r.store.assignments, aid)
		}
	}
	for rid, resp := range r.store.responsibilities {
		if resp.EmployeeID == id {
			delete(r.store.responsibilities, rid)
		}
	}
	for did, d := range r.store.deductions {
		if d.EmployeeID != nil && *d.EmployeeID == id {
			delete(r.store.deductions, did)
		}
	}
	for nid, n := range r.store.notes {
		if n.EmployeeID == id {
			delete(r.store.notes, nid)
		}
	}
	delete(r.store.employees, id)
	return nil
}
