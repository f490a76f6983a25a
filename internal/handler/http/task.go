package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/task"
	"github.com/cmlabs-hris/payroll-backend-go/internal/handler/http/response"
)

type TaskHandler interface {
	// Templates
	ListTemplates(w http.ResponseWriter, r *http.Request)
	GetTemplate(w http.ResponseWriter, r *http.Request)
	CreateTemplate(w http.ResponseWriter, r *http.Request)
	UpdateTemplate(w http.ResponseWriter, r *http.Request)
	DeactivateTemplate(w http.ResponseWriter, r *http.Request)

	// Assignments
	ListAssignments(w http.ResponseWriter, r *http.Request)
	CreateAssignment(w http.ResponseWriter, r *http.Request)
	UpdateAssignment(w http.ResponseWriter, r *http.Request)
	ReassignAssignment(w http.ResponseWriter, r *http.Request)
	DeleteAssignment(w http.ResponseWriter, r *http.Request)
}

type taskHandlerImpl struct {
	taskService task.TaskService
}

func NewTaskHandler(taskService task.TaskService) TaskHandler {
	return &taskHandlerImpl{taskService: taskService}
}

// ========== TEMPLATES ==========

// ListTemplates implements TaskHandler.
func (h *taskHandlerImpl) ListTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := h.taskService.ListTemplates(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, templates, &response.Meta{TotalItems: len(templates)})
}

// GetTemplate implements TaskHandler.
func (h *taskHandlerImpl) GetTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	t, err := h.taskService.GetTemplate(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, t)
}

// CreateTemplate implements TaskHandler.
func (h *taskHandlerImpl) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	var req task.CreateTemplateRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		slog.Error("CreateTemplate decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	t, err := h.taskService.CreateTemplate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Task template created successfully", t)
}

// UpdateTemplate implements TaskHandler.
func (h *taskHandlerImpl) UpdateTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req task.UpdateTemplateRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	t, err := h.taskService.UpdateTemplate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Task template updated successfully", t)
}

// DeactivateTemplate implements TaskHandler.
func (h *taskHandlerImpl) DeactivateTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.taskService.DeactivateTemplate(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Task template deactivated", nil)
}

// ========== ASSIGNMENTS ==========

// ListAssignments implements TaskHandler. Employees only see their own.
func (h *taskHandlerImpl) ListAssignments(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	employeeID, err := optionalIDQuery(r, "employee_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if !p.CanManage() {
		employeeID = &p.EmployeeID
	}

	assignments, err := h.taskService.ListAssignments(r.Context(), task.ListAssignmentsRequest{
		EmployeeID: employeeID,
		Status:     r.URL.Query().Get("status"),
		Date:       r.URL.Query().Get("date"),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, assignments, &response.Meta{TotalItems: len(assignments)})
}

// CreateAssignment implements TaskHandler.
func (h *taskHandlerImpl) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	var req task.CreateAssignmentRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		slog.Error("CreateAssignment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	a, err := h.taskService.CreateAssignment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Task assigned successfully", a)
}

// UpdateAssignment implements TaskHandler. Employees may only change the
// status of their own assignments.
func (h *taskHandlerImpl) UpdateAssignment(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req task.UpdateAssignmentRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	p, err := principal(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if !p.CanManage() {
		current, err := h.taskService.GetAssignment(r.Context(), id)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		if current.EmployeeID != p.EmployeeID || req.DueDate != nil || req.Notes != nil {
			response.HandleError(w, auth.ErrForbidden)
			return
		}
	}

	a, err := h.taskService.UpdateAssignment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Task assignment updated successfully", a)
}

// ReassignAssignment implements TaskHandler.
func (h *taskHandlerImpl) ReassignAssignment(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req task.ReassignRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	a, err := h.taskService.ReassignAssignment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Task reassigned successfully", a)
}

// DeleteAssignment implements TaskHandler.
func (h *taskHandlerImpl) DeleteAssignment(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.taskService.DeleteAssignment(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Task assignment deleted", nil)
}
