package responsibility

import "context"

type ResponsibilityRepository interface {
	Create(ctx context.Context, r Responsibility) (Responsibility, error)
	GetByID(ctx context.Context, id int64) (Detail, error)
	List(ctx context.Context, filter Filter) ([]Detail, error)
	Update(ctx context.Context, patch Patch) (Responsibility, error)
	Delete(ctx context.Context, id int64) error

	// ListByEmployeeAndMonth returns every responsibility of the employee for
	// month ("YYYY-MM"), whatever its status
	ListByEmployeeAndMonth(ctx context.Context, employeeID int64, month string) ([]Responsibility, error)
}
