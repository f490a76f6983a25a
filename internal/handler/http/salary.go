package http

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/salary"
	"github.com/cmlabs-hris/payroll-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/export"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/payslip"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/period"
)

type SalaryHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Invoice(w http.ResponseWriter, r *http.Request)
	InvoicePDF(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type salaryHandlerImpl struct {
	salaryService salary.SalaryService
}

func NewSalaryHandler(salaryService salary.SalaryService) SalaryHandler {
	return &salaryHandlerImpl{salaryService: salaryService}
}

// Get implements SalaryHandler.
func (h *salaryHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	employeeID, err := idParam(r, "employeeId")
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if _, err := authorizeEmployee(r, employeeID); err != nil {
		response.HandleError(w, err)
		return
	}

	report, err := h.salaryService.CalculateSalaryForEmployee(r.Context(), employeeID, r.URL.Query().Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}

// List implements SalaryHandler.
func (h *salaryHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	m, err := period.Resolve(r.URL.Query().Get("month"), time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	summaries, err := h.salaryService.CalculateAllSalaries(r.Context(), m.String())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, summaries, &response.Meta{Period: m.String(), TotalItems: len(summaries)})
}

// Invoice implements SalaryHandler.
func (h *salaryHandlerImpl) Invoice(w http.ResponseWriter, r *http.Request) {
	inv, ok := h.invoice(w, r)
	if !ok {
		return
	}

	response.Success(w, inv)
}

// InvoicePDF implements SalaryHandler.
func (h *salaryHandlerImpl) InvoicePDF(w http.ResponseWriter, r *http.Request) {
	inv, ok := h.invoice(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := payslip.Render(&buf, inv); err != nil {
		response.HandleError(w, err)
		return
	}

	fileName := fmt.Sprintf("payslip-%d-%s.pdf", inv.Employee.ID, inv.Period)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write payslip", "employee_id", inv.Employee.ID, "error", err)
	}
}

// Export implements SalaryHandler.
func (h *salaryHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	m, err := period.Resolve(r.URL.Query().Get("month"), time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	summaries, err := h.salaryService.CalculateAllSalaries(r.Context(), m.String())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WritePayroll(&buf, m, summaries); err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName(m)))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write payroll export", "period", m.String(), "error", err)
	}
}

func (h *salaryHandlerImpl) invoice(w http.ResponseWriter, r *http.Request) (salary.Invoice, bool) {
	employeeID, err := idParam(r, "employeeId")
	if err != nil {
		response.HandleError(w, err)
		return salary.Invoice{}, false
	}

	inv, err := h.salaryService.GenerateEmployeeInvoice(r.Context(), employeeID, r.URL.Query().Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return salary.Invoice{}, false
	}
	return inv, true
}
