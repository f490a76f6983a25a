package postgresql

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/task"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/period"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const templateColumns = `id, name, description, price, factor, is_active, created_at, updated_at`

type templateRepositoryImpl struct {
	db *database.DB
}

func NewTemplateRepository(db *database.DB) task.TemplateRepository {
	return &templateRepositoryImpl{db: db}
}

func scanTemplate(row pgx.Row, extra ...any) (task.Template, error) {
	var t task.Template
	var factor decimal.NullDecimal
	dest := []any{&t.ID, &t.Name, &t.Description, &t.Price, &factor, &t.IsActive, &t.CreatedAt, &t.UpdatedAt}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return task.Template{}, err
	}
	t.Factor = decimalPtr(factor)
	return t, nil
}

// Create implements task.TemplateRepository.
func (r *templateRepositoryImpl) Create(ctx context.Context, t task.Template) (task.Template, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO task_templates (name, description, price, factor, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING ` + templateColumns

	return scanTemplate(q.QueryRow(ctx, query, t.Name, t.Description, t.Price, t.Factor, t.IsActive))
}

// GetByID implements task.TemplateRepository.
func (r *templateRepositoryImpl) GetByID(ctx context.Context, id int64) (task.Template, error) {
	q := GetQuerier(ctx, r.db)

	t, err := scanTemplate(q.QueryRow(ctx, `SELECT `+templateColumns+` FROM task_templates WHERE id = $1`, id))
	if err != nil {
		return task.Template{}, notFound(err, task.ErrTemplateNotFound)
	}
	return t, nil
}

// ListActive implements task.TemplateRepository.
func (r *templateRepositoryImpl) ListActive(ctx context.Context) ([]task.TemplateWithStats, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT t.id, t.name, t.description, t.price, t.factor, t.is_active, t.created_at, t.updated_at,
			COUNT(a.id) FILTER (WHERE a.status IN ('Pending', 'In Progress'))
		FROM task_templates t
		LEFT JOIN task_assignments a ON a.template_id = t.id
		WHERE t.is_active
		GROUP BY t.id
		ORDER BY t.name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	templates := []task.TemplateWithStats{}
	for rows.Next() {
		var open int64
		t, err := scanTemplate(rows, &open)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task template: %w", err)
		}
		templates = append(templates, task.TemplateWithStats{Template: t, ActiveAssignments: open})
	}
	return templates, rows.Err()
}

// Update implements task.TemplateRepository.
func (r *templateRepositoryImpl) Update(ctx context.Context, patch task.TemplatePatch) (task.Template, error) {
	q := GetQuerier(ctx, r.db)

	builder := psql.Update("task_templates").Set("updated_at", sq("NOW()"))
	if patch.Name != nil {
		builder = builder.Set("name", *patch.Name)
	}
	if patch.Description != nil {
		builder = builder.Set("description", *patch.Description)
	}
	if patch.Price != nil {
		builder = builder.Set("price", *patch.Price)
	}
	if patch.Factor != nil {
		builder = builder.Set("factor", *patch.Factor)
	}
	if patch.IsActive != nil {
		builder = builder.Set("is_active", *patch.IsActive)
	}

	query, args, err := builder.Where("id = ?", patch.ID).Suffix("RETURNING " + templateColumns).ToSql()
	if err != nil {
		return task.Template{}, fmt.Errorf("build template update: %w", err)
	}

	t, err := scanTemplate(q.QueryRow(ctx, query, args...))
	if err != nil {
		return task.Template{}, notFound(err, task.ErrTemplateNotFound)
	}
	return t, nil
}

// CountOpenAssignments implements task.TemplateRepository.
func (r *templateRepositoryImpl) CountOpenAssignments(ctx context.Context, templateID int64) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `
		SELECT COUNT(*) FROM task_assignments
		WHERE template_id = $1 AND status IN ('Pending', 'In Progress')
	`, templateID).Scan(&count)
	return count, err
}

const assignmentColumns = `id, template_id, employee_id, status, due_date, notes, completed_at, completed_month, created_at, updated_at`

type assignmentRepositoryImpl struct {
	db *database.DB
}

func NewAssignmentRepository(db *database.DB) task.AssignmentRepository {
	return &assignmentRepositoryImpl{db: db}
}

func scanAssignment(row pgx.Row) (task.Assignment, error) {
	var a task.Assignment
	err := row.Scan(
		&a.ID, &a.TemplateID, &a.EmployeeID, &a.Status, &a.DueDate, &a.Notes,
		&a.CompletedAt, &a.CompletedMonth, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

// assignmentDetails selects assignments joined with their template and employee.
func assignmentDetails() squirrel.SelectBuilder {
	return psql.Select(
		"a.id", "a.template_id", "a.employee_id", "a.status", "a.due_date", "a.notes",
		"a.completed_at", "a.completed_month", "a.created_at", "a.updated_at",
		"t.name", "e.name", "t.price", "t.factor",
	).
		From("task_assignments a").
		Join("task_templates t ON t.id = a.template_id").
		Join("employees e ON e.id = a.employee_id")
}

func scanAssignmentDetail(row pgx.Row) (task.AssignmentDetail, error) {
	var d task.AssignmentDetail
	var factor decimal.NullDecimal
	err := row.Scan(
		&d.ID, &d.TemplateID, &d.EmployeeID, &d.Status, &d.DueDate, &d.Notes,
		&d.CompletedAt, &d.CompletedMonth, &d.CreatedAt, &d.UpdatedAt,
		&d.TemplateName, &d.EmployeeName, &d.Price, &factor,
	)
	if err != nil {
		return task.AssignmentDetail{}, err
	}
	d.Factor = decimalPtr(factor)
	return d, nil
}

// assignmentWriteError maps foreign key violations to the missing parent.
func assignmentWriteError(err error) error {
	if pgErrorCode(err) != codeForeignKeyViolation {
		return err
	}
	if containsConstraint(err, "template_id") {
		return task.ErrTemplateNotFound
	}
	return employee.ErrEmployeeNotFound
}

// Create implements task.AssignmentRepository.
func (r *assignmentRepositoryImpl) Create(ctx context.Context, a task.Assignment) (task.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO task_assignments (
			template_id, employee_id, status, due_date, notes, completed_at, completed_month, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING ` + assignmentColumns

	created, err := scanAssignment(q.QueryRow(ctx, query,
		a.TemplateID, a.EmployeeID, a.Status, a.DueDate, a.Notes, a.CompletedAt, a.CompletedMonth,
	))
	if err != nil {
		return task.Assignment{}, assignmentWriteError(err)
	}
	return created, nil
}

// GetByID implements task.AssignmentRepository.
func (r *assignmentRepositoryImpl) GetByID(ctx context.Context, id int64) (task.AssignmentDetail, error) {
	q := GetQuerier(ctx, r.db)

	query, args, err := assignmentDetails().Where(squirrel.Eq{"a.id": id}).ToSql()
	if err != nil {
		return task.AssignmentDetail{}, err
	}

	d, err := scanAssignmentDetail(q.QueryRow(ctx, query, args...))
	if err != nil {
		return task.AssignmentDetail{}, notFound(err, task.ErrAssignmentNotFound)
	}
	return d, nil
}

// List implements task.AssignmentRepository.
func (r *assignmentRepositoryImpl) List(ctx context.Context, filter task.AssignmentFilter) ([]task.AssignmentDetail, error) {
	q := GetQuerier(ctx, r.db)

	builder := assignmentDetails().OrderBy("a.id DESC")
	if filter.EmployeeID != nil {
		builder = builder.Where(squirrel.Eq{"a.employee_id": *filter.EmployeeID})
	}
	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"a.status": *filter.Status})
	}
	if filter.Date != nil {
		day := period.Day(*filter.Date)
		builder = builder.Where(squirrel.Or{
			squirrel.Eq{"a.due_date": day},
			squirrel.Expr("(a.completed_at AT TIME ZONE 'UTC')::date = ?", day),
		})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build assignment list: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	details := []task.AssignmentDetail{}
	for rows.Next() {
		d, err := scanAssignmentDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task assignment: %w", err)
		}
		details = append(details, d)
	}
	return details, rows.Err()
}

// Save implements task.AssignmentRepository.
func (r *assignmentRepositoryImpl) Save(ctx context.Context, a task.Assignment) (task.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE task_assignments
		SET employee_id = $1, status = $2, due_date = $3, notes = $4,
			completed_at = $5, completed_month = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING ` + assignmentColumns

	saved, err := scanAssignment(q.QueryRow(ctx, query,
		a.EmployeeID, a.Status, a.DueDate, a.Notes, a.CompletedAt, a.CompletedMonth, a.ID,
	))
	if err != nil {
		return task.Assignment{}, assignmentWriteError(notFound(err, task.ErrAssignmentNotFound))
	}
	return saved, nil
}

// Delete implements task.AssignmentRepository.
func (r *assignmentRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM task_assignments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return task.ErrAssignmentNotFound
	}
	return nil
}

// ListCompleted implements task.AssignmentRepository.
func (r *assignmentRepositoryImpl) ListCompleted(ctx context.Context, employeeID int64, month string) ([]task.CompletedAssignment, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT a.id, a.employee_id, t.name, a.status, t.price, t.factor, a.completed_at, a.completed_month
		FROM task_assignments a
		JOIN task_templates t ON t.id = a.template_id
		WHERE a.employee_id = $1
			AND a.status IN ('Done', 'Completed')
			AND a.completed_month = $2
		ORDER BY a.id
	`, employeeID, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	completed := []task.CompletedAssignment{}
	for rows.Next() {
		var c task.CompletedAssignment
		var factor decimal.NullDecimal
		if err := rows.Scan(
			&c.AssignmentID, &c.EmployeeID, &c.TemplateName, &c.Status,
			&c.Price, &factor, &c.CompletedAt, &c.CompletedMonth,
		); err != nil {
			return nil, fmt.Errorf("failed to scan completed task: %w", err)
		}
		c.Factor = decimalPtr(factor)
		completed = append(completed, c)
	}
	return completed, rows.Err()
}
