package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/payroll-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	ListByMonth(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	MonthlyTotal(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

// CheckIn implements AttendanceHandler. An omitted employee_id checks in the caller.
func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req attendance.CheckInRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		slog.Error("CheckIn decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	p, err := principal(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if req.EmployeeID == 0 {
		req.EmployeeID = p.EmployeeID
	}
	if !p.CanAccess(req.EmployeeID) {
		response.HandleError(w, auth.ErrForbidden)
		return
	}

	session, err := h.attendanceService.CheckIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Check-in recorded", session)
}

// CheckOut implements AttendanceHandler. An omitted employee_id checks out the caller.
func (h *attendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	var req attendance.CheckOutRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		slog.Error("CheckOut decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	p, err := principal(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if req.EmployeeID == 0 {
		req.EmployeeID = p.EmployeeID
	}
	if !p.CanAccess(req.EmployeeID) {
		response.HandleError(w, auth.ErrForbidden)
		return
	}

	result, err := h.attendanceService.CheckOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Check-out recorded", result)
}

// ListByMonth implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListByMonth(w http.ResponseWriter, r *http.Request) {
	employeeID, err := idParam(r, "employeeId")
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if _, err := authorizeEmployee(r, employeeID); err != nil {
		response.HandleError(w, err)
		return
	}

	month := r.URL.Query().Get("month")
	sessions, err := h.attendanceService.ListByMonth(r.Context(), employeeID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, sessions, &response.Meta{Period: month, TotalItems: len(sessions)})
}

// Today implements AttendanceHandler.
func (h *attendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	employeeID, err := idParam(r, "employeeId")
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if _, err := authorizeEmployee(r, employeeID); err != nil {
		response.HandleError(w, err)
		return
	}

	sessions, err := h.attendanceService.Today(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, sessions)
}

// MonthlyTotal implements AttendanceHandler.
func (h *attendanceHandlerImpl) MonthlyTotal(w http.ResponseWriter, r *http.Request) {
	employeeID, err := idParam(r, "employeeId")
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if _, err := authorizeEmployee(r, employeeID); err != nil {
		response.HandleError(w, err)
		return
	}

	total, err := h.attendanceService.MonthlyTotal(r.Context(), employeeID, r.URL.Query().Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, total)
}
