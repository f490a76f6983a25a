package employee

import "context"

type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetByID(ctx context.Context, id int64) (EmployeeResponse, error)
	List(ctx context.Context) ([]EmployeeResponse, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id int64, actorID int64) error

	// EnsureAdmin creates the given administrator when no employee exists yet.
	EnsureAdmin(ctx context.Context, req CreateEmployeeRequest) (bool, error)
}
