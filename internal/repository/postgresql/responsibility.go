package postgresql

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/responsibility"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const responsibilityColumns = `id, name, description, monthly_price, employee_id, factor, status, month, created_at, updated_at`

type responsibilityRepositoryImpl struct {
	db *database.DB
}

func NewResponsibilityRepository(db *database.DB) responsibility.ResponsibilityRepository {
	return &responsibilityRepositoryImpl{db: db}
}

func scanResponsibility(row pgx.Row, extra ...any) (responsibility.Responsibility, error) {
	var r responsibility.Responsibility
	var factor decimal.NullDecimal
	dest := []any{
		&r.ID, &r.Name, &r.Description, &r.MonthlyPrice, &r.EmployeeID,
		&factor, &r.Status, &r.Month, &r.CreatedAt, &r.UpdatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return responsibility.Responsibility{}, err
	}
	r.Factor = decimalPtr(factor)
	return r, nil
}

func responsibilityDetails() squirrel.SelectBuilder {
	return psql.Select(
		"r.id", "r.name", "r.description", "r.monthly_price", "r.employee_id",
		"r.factor", "r.status", "r.month", "r.created_at", "r.updated_at", "e.name",
	).
		From("responsibilities r").
		Join("employees e ON e.id = r.employee_id")
}

func foreignKeyToEmployee(err error) error {
	if pgErrorCode(err) == codeForeignKeyViolation {
		return employee.ErrEmployeeNotFound
	}
	return err
}

// Create implements responsibility.ResponsibilityRepository.
func (rr *responsibilityRepositoryImpl) Create(ctx context.Context, r responsibility.Responsibility) (responsibility.Responsibility, error) {
	q := GetQuerier(ctx, rr.db)

	query := `
		INSERT INTO responsibilities (
			name, description, monthly_price, employee_id, factor, status, month, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING ` + responsibilityColumns

	created, err := scanResponsibility(q.QueryRow(ctx, query,
		r.Name, r.Description, r.MonthlyPrice, r.EmployeeID, r.Factor, r.Status, r.Month,
	))
	if err != nil {
		return responsibility.Responsibility{}, foreignKeyToEmployee(err)
	}
	return created, nil
}

// GetByID implements responsibility.ResponsibilityRepository.
func (rr *responsibilityRepositoryImpl) GetByID(ctx context.Context, id int64) (responsibility.Detail, error) {
	q := GetQuerier(ctx, rr.db)

	query, args, err := responsibilityDetails().Where(squirrel.Eq{"r.id": id}).ToSql()
	if err != nil {
		return responsibility.Detail{}, err
	}

	var d responsibility.Detail
	d.Responsibility, err = scanResponsibility(q.QueryRow(ctx, query, args...), &d.EmployeeName)
	if err != nil {
		return responsibility.Detail{}, notFound(err, responsibility.ErrResponsibilityNotFound)
	}
	return d, nil
}

// List implements responsibility.ResponsibilityRepository.
func (rr *responsibilityRepositoryImpl) List(ctx context.Context, filter responsibility.Filter) ([]responsibility.Detail, error) {
	q := GetQuerier(ctx, rr.db)

	builder := responsibilityDetails().OrderBy("r.id DESC")
	if filter.EmployeeID != nil {
		builder = builder.Where(squirrel.Eq{"r.employee_id": *filter.EmployeeID})
	}
	if filter.Month != nil {
		builder = builder.Where(squirrel.Eq{"r.month": *filter.Month})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build responsibility list: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	details := []responsibility.Detail{}
	for rows.Next() {
		var d responsibility.Detail
		d.Responsibility, err = scanResponsibility(rows, &d.EmployeeName)
		if err != nil {
			return nil, fmt.Errorf("failed to scan responsibility: %w", err)
		}
		details = append(details, d)
	}
	return details, rows.Err()
}

// Update implements responsibility.ResponsibilityRepository.
func (rr *responsibilityRepositoryImpl) Update(ctx context.Context, patch responsibility.Patch) (responsibility.Responsibility, error) {
	q := GetQuerier(ctx, rr.db)

	builder := psql.Update("responsibilities").Set("updated_at", sq("NOW()"))
	if patch.Name != nil {
		builder = builder.Set("name", *patch.Name)
	}
	if patch.Description != nil {
		builder = builder.Set("description", *patch.Description)
	}
	if patch.MonthlyPrice != nil {
		builder = builder.Set("monthly_price", *patch.MonthlyPrice)
	}
	if patch.EmployeeID != nil {
		builder = builder.Set("employee_id", *patch.EmployeeID)
	}
	if patch.Factor != nil {
		builder = builder.Set("factor", *patch.Factor)
	}
	if patch.Status != nil {
		builder = builder.Set("status", *patch.Status)
	}
	if patch.Month != nil {
		builder = builder.Set("month", *patch.Month)
	}

	query, args, err := builder.Where("id = ?", patch.ID).Suffix("RETURNING " + responsibilityColumns).ToSql()
	if err != nil {
		return responsibility.Responsibility{}, fmt.Errorf("build responsibility update: %w", err)
	}

	updated, err := scanResponsibility(q.QueryRow(ctx, query, args...))
	if err != nil {
		return responsibility.Responsibility{}, foreignKeyToEmployee(notFound(err, responsibility.ErrResponsibilityNotFound))
	}
	return updated, nil
}

// Delete implements responsibility.ResponsibilityRepository.
func (rr *responsibilityRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, rr.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM responsibilities WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return responsibility.ErrResponsibilityNotFound
	}
	return nil
}

// ListByEmployeeAndMonth implements responsibility.ResponsibilityRepository.
func (rr *responsibilityRepositoryImpl) ListByEmployeeAndMonth(ctx context.Context, employeeID int64, month string) ([]responsibility.Responsibility, error) {
	q := GetQuerier(ctx, rr.db)

	rows, err := q.Query(ctx, `
		SELECT `+responsibilityColumns+`
		FROM responsibilities
		WHERE employee_id = $1 AND month = $2
		ORDER BY id
	`, employeeID, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []responsibility.Responsibility{}
	for rows.Next() {
		r, err := scanResponsibility(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan responsibility: %w", err)
		}
		items = append(items, r)
	}
	return items, rows.Err()
}
