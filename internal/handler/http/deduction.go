package http

import (
	"net/http"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/deduction"
	"github.com/cmlabs-hris/payroll-backend-go/internal/handler/http/response"
)

type DeductionHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	ListForEmployee(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type deductionHandlerImpl struct {
	deductionService deduction.DeductionService
}

func NewDeductionHandler(deductionService deduction.DeductionService) DeductionHandler {
	return &deductionHandlerImpl{deductionService: deductionService}
}

// List implements DeductionHandler.
func (h *deductionHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	rules, err := h.deductionService.List(r.Context(), deduction.ListDeductionsRequest{Month: month})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, rules, &response.Meta{Period: month, TotalItems: len(rules)})
}

// ListForEmployee implements DeductionHandler. Company-wide rules are included.
func (h *deductionHandlerImpl) ListForEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID, err := idParam(r, "employeeId")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	month := r.URL.Query().Get("month")
	rules, err := h.deductionService.List(r.Context(), deduction.ListDeductionsRequest{
		Month:      month,
		EmployeeID: &employeeID,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, rules, &response.Meta{Period: month, TotalItems: len(rules)})
}

// Get implements DeductionHandler.
func (h *deductionHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	rule, err := h.deductionService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rule)
}

// Create implements DeductionHandler.
func (h *deductionHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req deduction.CreateDeductionRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	rule, err := h.deductionService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Deduction created successfully", rule)
}

// Update implements DeductionHandler.
func (h *deductionHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req deduction.UpdateDeductionRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	rule, err := h.deductionService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Deduction updated successfully", rule)
}

// Delete implements DeductionHandler.
func (h *deductionHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.deductionService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Deduction deleted successfully", nil)
}
