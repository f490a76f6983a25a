package task

import "context"

type TaskService interface {
	// Templates
	CreateTemplate(ctx context.Context, req CreateTemplateRequest) (TemplateResponse, error)
	GetTemplate(ctx context.Context, id int64) (TemplateResponse, error)
	ListTemplates(ctx context.Context) ([]TemplateResponse, error)
	UpdateTemplate(ctx context.Context, req UpdateTemplateRequest) (TemplateResponse, error)
	DeactivateTemplate(ctx context.Context, id int64) error

	// Assignments
	CreateAssignment(ctx context.Context, req CreateAssignmentRequest) (AssignmentResponse, error)
	GetAssignment(ctx context.Context, id int64) (AssignmentResponse, error)
	ListAssignments(ctx context.Context, req ListAssignmentsRequest) ([]AssignmentResponse, error)
	UpdateAssignment(ctx context.Context, req UpdateAssignmentRequest) (AssignmentResponse, error)
	ReassignAssignment(ctx context.Context, req ReassignRequest) (AssignmentResponse, error)
	DeleteAssignment(ctx context.Context, id int64) error
}
