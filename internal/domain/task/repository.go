package task

import "context"

type TemplateRepository interface {
	Create(ctx context.Context, template Template) (Template, error)
	GetByID(ctx context.Context, id int64) (Template, error)

	// ListActive returns active templates with their open assignment counts
	ListActive(ctx context.Context) ([]TemplateWithStats, error)

	Update(ctx context.Context, patch TemplatePatch) (Template, error)

	// CountOpenAssignments counts assignments of the template not yet done
	CountOpenAssignments(ctx context.Context, templateID int64) (int64, error)
}

type AssignmentRepository interface {
	Create(ctx context.Context, assignment Assignment) (Assignment, error)
	GetByID(ctx context.Context, id int64) (AssignmentDetail, error)
	List(ctx context.Context, filter AssignmentFilter) ([]AssignmentDetail, error)

	// Save overwrites every mutable column of the assignment
	Save(ctx context.Context, assignment Assignment) (Assignment, error)

	Delete(ctx context.Context, id int64) error

	// ListCompleted returns Done/Completed assignments of the employee whose
	// completed month equals month ("YYYY-MM")
	ListCompleted(ctx context.Context, employeeID int64, month string) ([]CompletedAssignment, error)
}
