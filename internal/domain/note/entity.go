package note

import "time"

// Note is a free-text remark about an employee.
type Note struct {
	ID         int64
	EmployeeID int64
	AuthorID   *int64
	AuthorName *string
	Content    string
	CreatedAt  time.Time
}
