package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/note"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type noteRepositoryImpl struct {
	db *database.DB
}

func NewNoteRepository(db *database.DB) note.NoteRepository {
	return &noteRepositoryImpl{db: db}
}

const noteSelect = `
	SELECT n.id, n.employee_id, n.author_id, a.name, n.content, n.created_at
	FROM notes n
	LEFT JOIN employees a ON a.id = n.author_id
`

func scanNote(row pgx.Row) (note.Note, error) {
	var n note.Note
	err := row.Scan(&n.ID, &n.EmployeeID, &n.AuthorID, &n.AuthorName, &n.Content, &n.CreatedAt)
	return n, err
}

// Create implements note.NoteRepository.
func (r *noteRepositoryImpl) Create(ctx context.Context, n note.Note) (note.Note, error) {
	q := GetQuerier(ctx, r.db)

	var id int64
	err := q.QueryRow(ctx, `
		INSERT INTO notes (employee_id, author_id, content, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id
	`, n.EmployeeID, n.AuthorID, n.Content).Scan(&id)
	if err != nil {
		return note.Note{}, foreignKeyToEmployee(err)
	}
	return r.GetByID(ctx, id)
}

// GetByID implements note.NoteRepository.
func (r *noteRepositoryImpl) GetByID(ctx context.Context, id int64) (note.Note, error) {
	q := GetQuerier(ctx, r.db)

	n, err := scanNote(q.QueryRow(ctx, noteSelect+` WHERE n.id = $1`, id))
	if err != nil {
		return note.Note{}, notFound(err, note.ErrNoteNotFound)
	}
	return n, nil
}

// ListByEmployee implements note.NoteRepository.
func (r *noteRepositoryImpl) ListByEmployee(ctx context.Context, employeeID int64) ([]note.Note, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, noteSelect+` WHERE n.employee_id = $1 ORDER BY n.created_at DESC, n.id DESC`, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := []note.Note{}
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

// Delete implements note.NoteRepository.
func (r *noteRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM notes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return note.ErrNoteNotFound
	}
	return nil
}
