package note

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/note"
)

type NoteServiceImpl struct {
	noteRepo     note.NoteRepository
	employeeRepo employee.EmployeeRepository
}

func NewNoteService(noteRepo note.NoteRepository, employeeRepo employee.EmployeeRepository) note.NoteService {
	return &NoteServiceImpl{noteRepo: noteRepo, employeeRepo: employeeRepo}
}

// Create implements note.NoteService.
func (s *NoteServiceImpl) Create(ctx context.Context, req note.CreateNoteRequest) (note.NoteResponse, error) {
	if err := req.Validate(); err != nil {
		return note.NoteResponse{}, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return note.NoteResponse{}, err
	}

	created, err := s.noteRepo.Create(ctx, note.Note{
		EmployeeID: req.EmployeeID,
		AuthorID:   req.AuthorID,
		Content:    req.Content,
	})
	if err != nil {
		return note.NoteResponse{}, err
	}
	return note.NewNoteResponse(created), nil
}

// ListByEmployee implements note.NoteService.
func (s *NoteServiceImpl) ListByEmployee(ctx context.Context, employeeID int64) ([]note.NoteResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	notes, err := s.noteRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	out := make([]note.NoteResponse, 0, len(notes))
	for _, n := range notes {
		out = append(out, note.NewNoteResponse(n))
	}
	return out, nil
}

// Delete implements note.NoteService.
func (s *NoteServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.noteRepo.Delete(ctx, id)
}
