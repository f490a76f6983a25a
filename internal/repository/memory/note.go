package memory

import (
	"context"
	"sort"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/note"
)

type noteRepository struct {
	store *Store
}

func NewNoteRepository(store *Store) note.NoteRepository {
	return &noteRepository{store: store}
}

// Create implements note.NoteRepository.
func (r *noteRepository) Create(ctx context.Context, n note.Note) (note.Note, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.employees[n.EmployeeID]; !ok {
		return note.Note{}, employee.ErrEmployeeNotFound
	}

	n.ID = r.store.nextID()
	n.CreatedAt = r.store.timestamp()
	r.store.notes[n.ID] = n
	return r.withAuthor(n), nil
}

// GetByID implements note.NoteRepository.
func (r *noteRepository) GetByID(ctx context.Context, id int64) (note.Note, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	n, ok := r.store.notes[id]
	if !ok {
		return note.Note{}, note.ErrNoteNotFound
	}
	return r.withAuthor(n), nil
}

// ListByEmployee implements note.NoteRepository.
func (r *noteRepository) ListByEmployee(ctx context.Context, employeeID int64) ([]note.Note, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := []note.Note{}
	for _, n := range r.store.notes {
		if n.EmployeeID == employeeID {
			out = append(out, r.withAuthor(n))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

// Delete implements note.NoteRepository.
func (r *noteRepository) Delete(ctx context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.notes[id]; !ok {
		return note.ErrNoteNotFound
	}
	delete(r.store.notes, id)
	return nil
}

// withAuthor must be called with mu held.
func (r *noteRepository) withAuthor(n note.Note) note.Note {
	if n.AuthorID != nil {
		if e, ok := r.store.employees[*n.AuthorID]; ok {
			name := e.Name
			n.AuthorName = &name
		}
	}
	return n
}
