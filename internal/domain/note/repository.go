package note

import "context"

type NoteRepository interface {
	Create(ctx context.Context, note Note) (Note, error)
	GetByID(ctx context.Context, id int64) (Note, error)

	// ListByEmployee returns the employee's notes, newest first
	ListByEmployee(ctx context.Context, employeeID int64) ([]Note, error)

	Delete(ctx context.Context, id int64) error
}
