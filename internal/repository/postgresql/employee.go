package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const employeeColumns = `id, name, username, email, password_hash, employee_type, base_salary,
	monthly_factor, overtime_factor, normal_hour_rate, overtime_hour_rate,
	required_monthly_hours, hourly_rate, created_at, updated_at`

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	var monthly, overtime, normalRate, overtimeRate, required, hourly decimal.NullDecimal

	err := row.Scan(
		&emp.ID, &emp.Name, &emp.Username, &emp.Email, &emp.PasswordHash, &emp.EmployeeType, &emp.BaseSalary,
		&monthly, &overtime, &normalRate, &overtimeRate,
		&required, &hourly, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}

	emp.MonthlyFactor = decimalPtr(monthly)
	emp.OvertimeFactor = decimalPtr(overtime)
	emp.NormalHourRate = decimalPtr(normalRate)
	emp.OvertimeHourRate = decimalPtr(overtimeRate)
	emp.RequiredMonthlyHours = decimalPtr(required)
	emp.HourlyRate = decimalPtr(hourly)
	return emp, nil
}

// uniqueError maps a unique index violation to the matching domain error.
func uniqueError(err error) error {
	if pgErrorCode(err) != codeUniqueViolation {
		return err
	}
	if containsConstraint(err, "email") {
		return employee.ErrEmailExists
	}
	return employee.ErrUsernameExists
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (
			name, username, email, password_hash, employee_type, base_salary,
			monthly_factor, overtime_factor, normal_hour_rate, overtime_hour_rate,
			required_monthly_hours, hourly_rate, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW()
		) RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		newEmployee.Name, newEmployee.Username, newEmployee.Email, newEmployee.PasswordHash,
		newEmployee.EmployeeType, newEmployee.BaseSalary,
		newEmployee.MonthlyFactor, newEmployee.OvertimeFactor, newEmployee.NormalHourRate,
		newEmployee.OvertimeHourRate, newEmployee.RequiredMonthlyHours, newEmployee.HourlyRate,
	))
	if err != nil {
		return employee.Employee{}, uniqueError(err)
	}
	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		return employee.Employee{}, notFound(err, employee.ErrEmployeeNotFound)
	}
	return emp, nil
}

// GetByUsernameOrEmail implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByUsernameOrEmail(ctx context.Context, identifier string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE LOWER(username) = LOWER($1) OR LOWER(email) = LOWER($1)
		ORDER BY id
		LIMIT 1
	`
	emp, err := scanEmployee(q.QueryRow(ctx, query, identifier))
	if err != nil {
		return employee.Employee{}, notFound(err, employee.ErrEmployeeNotFound)
	}
	return emp, nil
}

// ExistsByUsername implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ExistsByUsername(ctx context.Context, username string, excludeID int64) (bool, error) {
	q := GetQuerier(ctx, e.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM employees WHERE LOWER(username) = LOWER($1) AND id <> $2)`,
		username, excludeID,
	).Scan(&exists)
	return exists, err
}

// ExistsByEmail implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error) {
	q := GetQuerier(ctx, e.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM employees WHERE LOWER(email) = LOWER($1) AND id <> $2)`,
		email, excludeID,
	).Scan(&exists)
	return exists, err
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	rows, err := q.Query(ctx, `SELECT `+employeeColumns+` FROM employees ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := []employee.Employee{}
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

// Count implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Count(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, e.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count)
	return count, err
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Update(ctx context.Context, patch employee.Patch) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	builder := psql.Update("employees").Set("updated_at", sq("NOW()"))
	if patch.Name != nil {
		builder = builder.Set("name", *patch.Name)
	}
	if patch.Username != nil {
		builder = builder.Set("username", *patch.Username)
	}
	if patch.Email != nil {
		builder = builder.Set("email", *patch.Email)
	}
	if patch.PasswordHash != nil {
		builder = builder.Set("password_hash", *patch.PasswordHash)
	}
	if patch.EmployeeType != nil {
		builder = builder.Set("employee_type", *patch.EmployeeType)
	}
	if patch.BaseSalary != nil {
		builder = builder.Set("base_salary", *patch.BaseSalary)
	}

	rates := map[string]*decimal.Decimal{
		"monthly_factor":         patch.MonthlyFactor,
		"overtime_factor":        patch.OvertimeFactor,
		"normal_hour_rate":       patch.NormalHourRate,
		"overtime_hour_rate":     patch.OvertimeHourRate,
		"required_monthly_hours": patch.RequiredMonthlyHours,
		"hourly_rate":            patch.HourlyRate,
	}
	for column, value := range rates {
		switch {
		case value != nil:
			builder = builder.Set(column, *value)
		case patch.ResetRates:
			builder = builder.Set(column, nil)
		}
	}

	query, args, err := builder.
		Where("id = ?", patch.ID).
		Suffix("RETURNING " + employeeColumns).
		ToSql()
	if err != nil {
		return employee.Employee{}, fmt.Errorf("build employee update: %w", err)
	}

	updated, err := scanEmployee(q.QueryRow(ctx, query, args...))
	if err != nil {
		return employee.Employee{}, uniqueError(notFound(err, employee.ErrEmployeeNotFound))
	}
	return updated, nil
}

// Delete implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, e.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
