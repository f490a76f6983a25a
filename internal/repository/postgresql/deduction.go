package postgresql

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/deduction"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const deductionColumns = `id, name, description, type, amount, employee_id, is_active, month, hours_deducted, created_at, updated_at`

type deductionRepositoryImpl struct {
	db *database.DB
}

func NewDeductionRepository(db *database.DB) deduction.DeductionRepository {
	return &deductionRepositoryImpl{db: db}
}

func scanRule(row pgx.Row, extra ...any) (deduction.Rule, error) {
	var r deduction.Rule
	var hours decimal.NullDecimal
	dest := []any{
		&r.ID, &r.Name, &r.Description, &r.Type, &r.Amount, &r.EmployeeID,
		&r.IsActive, &r.Month, &hours, &r.CreatedAt, &r.UpdatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return deduction.Rule{}, err
	}
	r.HoursDeducted = decimalPtr(hours)
	return r, nil
}

func deductionDetails() squirrel.SelectBuilder {
	return psql.Select(
		"d.id", "d.name", "d.description", "d.type", "d.amount", "d.employee_id",
		"d.is_active", "d.month", "d.hours_deducted", "d.created_at", "d.updated_at", "e.name",
	).
		From("deductions d").
		LeftJoin("employees e ON e.id = d.employee_id")
}

// Create implements deduction.DeductionRepository.
func (d *deductionRepositoryImpl) Create(ctx context.Context, rule deduction.Rule) (deduction.Rule, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		INSERT INTO deductions (
			name, description, type, amount, employee_id, is_active, month, hours_deducted, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING ` + deductionColumns

	created, err := scanRule(q.QueryRow(ctx, query,
		rule.Name, rule.Description, rule.Type, rule.Amount, rule.EmployeeID,
		rule.IsActive, rule.Month, rule.HoursDeducted,
	))
	if err != nil {
		return deduction.Rule{}, foreignKeyToEmployee(err)
	}
	return created, nil
}

// GetByID implements deduction.DeductionRepository.
func (d *deductionRepositoryImpl) GetByID(ctx context.Context, id int64) (deduction.Detail, error) {
	q := GetQuerier(ctx, d.db)

	query, args, err := deductionDetails().Where(squirrel.Eq{"d.id": id}).ToSql()
	if err != nil {
		return deduction.Detail{}, err
	}

	var detail deduction.Detail
	detail.Rule, err = scanRule(q.QueryRow(ctx, query, args...), &detail.EmployeeName)
	if err != nil {
		return deduction.Detail{}, notFound(err, deduction.ErrDeductionNotFound)
	}
	return detail, nil
}

// List implements deduction.DeductionRepository.
func (d *deductionRepositoryImpl) List(ctx context.Context, filter deduction.Filter) ([]deduction.Detail, error) {
	q := GetQuerier(ctx, d.db)

	builder := deductionDetails().OrderBy("d.id DESC")
	if filter.Month != nil {
		builder = builder.Where(squirrel.Eq{"d.month": *filter.Month})
	}
	if filter.EmployeeID != nil {
		builder = builder.Where(squirrel.Or{
			squirrel.Eq{"d.employee_id": nil},
			squirrel.Eq{"d.employee_id": *filter.EmployeeID},
		})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build deduction list: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	details := []deduction.Detail{}
	for rows.Next() {
		var detail deduction.Detail
		detail.Rule, err = scanRule(rows, &detail.EmployeeName)
		if err != nil {
			return nil, fmt.Errorf("failed to scan deduction: %w", err)
		}
		details = append(details, detail)
	}
	return details, rows.Err()
}

// Update implements deduction.DeductionRepository.
func (d *deductionRepositoryImpl) Update(ctx context.Context, patch deduction.Patch) (deduction.Rule, error) {
	q := GetQuerier(ctx, d.db)

	builder := psql.Update("deductions").Set("updated_at", sq("NOW()"))
	if patch.Name != nil {
		builder = builder.Set("name", *patch.Name)
	}
	if patch.Description != nil {
		builder = builder.Set("description", *patch.Description)
	}
	if patch.Type != nil {
		builder = builder.Set("type", *patch.Type)
	}
	if patch.Amount != nil {
		builder = builder.Set("amount", *patch.Amount)
	}
	switch {
	case patch.CompanyWide:
		builder = builder.Set("employee_id", nil)
	case patch.EmployeeID != nil:
		builder = builder.Set("employee_id", *patch.EmployeeID)
	}
	if patch.IsActive != nil {
		builder = builder.Set("is_active", *patch.IsActive)
	}
	if patch.Month != nil {
		builder = builder.Set("month", *patch.Month)
	}
	if patch.HoursDeducted != nil {
		builder = builder.Set("hours_deducted", *patch.HoursDeducted)
	}

	query, args, err := builder.Where("id = ?", patch.ID).Suffix("RETURNING " + deductionColumns).ToSql()
	if err != nil {
		return deduction.Rule{}, fmt.Errorf("build deduction update: %w", err)
	}

	updated, err := scanRule(q.QueryRow(ctx, query, args...))
	if err != nil {
		return deduction.Rule{}, foreignKeyToEmployee(notFound(err, deduction.ErrDeductionNotFound))
	}
	return updated, nil
}

// Delete implements deduction.DeductionRepository.
func (d *deductionRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, d.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM deductions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return deduction.ErrDeductionNotFound
	}
	return nil
}

// ListActiveForEmployee implements deduction.DeductionRepository.
func (d *deductionRepositoryImpl) ListActiveForEmployee(ctx context.Context, employeeID int64, month string) ([]deduction.Rule, error) {
	q := GetQuerier(ctx, d.db)

	rows, err := q.Query(ctx, `
		SELECT `+deductionColumns+`
		FROM deductions
		WHERE is_active
			AND month = $1
			AND (employee_id IS NULL OR employee_id = $2)
		ORDER BY id
	`, month, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rules := []deduction.Rule{}
	for rows.Next() {
		r, err := scanRule(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan deduction: %w", err)
		}
		rules = append(rules, r)
	}
	return rules, rows.Err()
}
