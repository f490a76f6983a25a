package http

import (
	"net/http"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/note"
	"github.com/cmlabs-hris/payroll-backend-go/internal/handler/http/response"
)

type NoteHandler interface {
	ListNotes(w http.ResponseWriter, r *http.Request)
	CreateNote(w http.ResponseWriter, r *http.Request)
	DeleteNote(w http.ResponseWriter, r *http.Request)
}

type noteHandlerImpl struct {
	noteService note.NoteService
}

func NewNoteHandler(noteService note.NoteService) NoteHandler {
	return &noteHandlerImpl{noteService: noteService}
}

// ListNotes implements NoteHandler.
func (h *noteHandlerImpl) ListNotes(w http.ResponseWriter, r *http.Request) {
	employeeID, err := idParam(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	notes, err := h.noteService.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, notes, &response.Meta{TotalItems: len(notes)})
}

// CreateNote implements NoteHandler.
func (h *noteHandlerImpl) CreateNote(w http.ResponseWriter, r *http.Request) {
	employeeID, err := idParam(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}
	p, err := principal(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req note.CreateNoteRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = employeeID
	req.AuthorID = &p.EmployeeID

	created, err := h.noteService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Note created successfully", created)
}

// DeleteNote implements NoteHandler.
func (h *noteHandlerImpl) DeleteNote(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.noteService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Note deleted successfully", nil)
}
