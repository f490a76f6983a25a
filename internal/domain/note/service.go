package note

import "context"

type NoteService interface {
	Create(ctx context.Context, req CreateNoteRequest) (NoteResponse, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]NoteResponse, error)
	Delete(ctx context.Context, id int64) error
}
