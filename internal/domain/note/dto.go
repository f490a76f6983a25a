package note

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/validator"
)

const maxContentLength = 2000

type CreateNoteRequest struct {
	EmployeeID int64  `json:"-"`
	AuthorID   *int64 `json:"-"`
	Content    string `json:"content"`
}

func (r *CreateNoteRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Content = strings.TrimSpace(r.Content)
	if r.EmployeeID <= 0 {
		errs.Add("employee_id", "is required")
	}
	if r.Content == "" {
		errs.Add("content", "is required")
	} else if len(r.Content) > maxContentLength {
		errs.Add("content", "must be at most 2000 characters")
	}

	return errs.Err()
}

type NoteResponse struct {
	ID         int64     `json:"id"`
	EmployeeID int64     `json:"employee_id"`
	AuthorID   *int64    `json:"author_id"`
	AuthorName *string   `json:"author_name"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewNoteResponse(n Note) NoteResponse {
	return NoteResponse{
		ID:         n.ID,
		EmployeeID: n.EmployeeID,
		AuthorID:   n.AuthorID,
		AuthorName: n.AuthorName,
		Content:    n.Content,
		CreatedAt:  n.CreatedAt,
	}
}
