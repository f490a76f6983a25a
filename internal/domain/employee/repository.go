package employee

import "context"

// EmployeeRepository defines data access methods for employees.
type EmployeeRepository interface {
	// Create inserts a new employee and returns it with its ID set
	Create(ctx context.Context, employee Employee) (Employee, error)

	// GetByID returns ErrEmployeeNotFound when no employee has the ID
	GetByID(ctx context.Context, id int64) (Employee, error)

	// GetByUsernameOrEmail looks an employee up by login identifier
	GetByUsernameOrEmail(ctx context.Context, identifier string) (Employee, error)

	// ExistsByUsername reports whether another employee (ID != excludeID) uses the username
	ExistsByUsername(ctx context.Context, username string, excludeID int64) (bool, error)

	// ExistsByEmail reports whether another employee (ID != excludeID) uses the email
	ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error)

	// List returns every employee ordered by ID
	List(ctx context.Context) ([]Employee, error)

	Count(ctx context.Context) (int64, error)

	// Update applies a patch and returns the stored employee
	Update(ctx context.Context, patch Patch) (Employee, error)

	// Delete removes the employee and every record that references it
	Delete(ctx context.Context, id int64) error
}
