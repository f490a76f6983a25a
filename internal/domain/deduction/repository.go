package deduction

import "context"

type DeductionRepository interface {
	Create(ctx context.Context, rule Rule) (Rule, error)
	GetByID(ctx context.Context, id int64) (Detail, error)
	List(ctx context.Context, filter Filter) ([]Detail, error)
	Update(ctx context.Context, patch Patch) (Rule, error)
	Delete(ctx context.Context, id int64) error

	// ListActiveForEmployee returns active rules of month ("YYYY-MM") that are
	// company-wide or target the employee
	ListActiveForEmployee(ctx context.Context, employeeID int64, month string) ([]Rule, error)
}
