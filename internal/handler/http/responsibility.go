package http

import (
	"net/http"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/responsibility"
	"github.com/cmlabs-hris/payroll-backend-go/internal/handler/http/response"
)

type ResponsibilityHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type responsibilityHandlerImpl struct {
	responsibilityService responsibility.ResponsibilityService
}

func NewResponsibilityHandler(responsibilityService responsibility.ResponsibilityService) ResponsibilityHandler {
	return &responsibilityHandlerImpl{responsibilityService: responsibilityService}
}

// List implements ResponsibilityHandler. Employees only see their own.
func (h *responsibilityHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
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

	month := r.URL.Query().Get("month")
	items, err := h.responsibilityService.List(r.Context(), responsibility.ListResponsibilitiesRequest{
		EmployeeID: employeeID,
		Month:      month,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, items, &response.Meta{Period: month, TotalItems: len(items)})
}

// Get implements ResponsibilityHandler.
func (h *responsibilityHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	item, err := h.responsibilityService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if _, err := authorizeEmployee(r, item.EmployeeID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, item)
}

// Create implements ResponsibilityHandler.
func (h *responsibilityHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req responsibility.CreateResponsibilityRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	item, err := h.responsibilityService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Responsibility created successfully", item)
}

// Update implements ResponsibilityHandler.
func (h *responsibilityHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req responsibility.UpdateResponsibilityRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	item, err := h.responsibilityService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Responsibility updated successfully", item)
}

// Delete implements ResponsibilityHandler.
func (h *responsibilityHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.responsibilityService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Responsibility deleted successfully", nil)
}
