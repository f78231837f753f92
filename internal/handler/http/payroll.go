package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/peoplecore/hrms-backend-go/internal/domain/payroll"
	"github.com/peoplecore/hrms-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	MyPayslips(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// Create implements PayrollHandler.
func (h *PayrollHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq payroll.CreatePayrollRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create payroll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		slog.Error("Create payroll validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	result, err := h.payrollService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create payroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Payroll record created", "payroll_id", result.ID, "employee_id", result.EmployeeID)
	response.Created(w, "Payroll record created successfully", result)
}

// List implements PayrollHandler.
func (h *PayrollHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.List(r.Context())
	if err != nil {
		slog.Error("List payrolls service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements PayrollHandler.
func (h *PayrollHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payroll ID is required", nil)
		return
	}

	var updateReq payroll.UpdatePayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update payroll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = id

	if err := updateReq.Validate(); err != nil {
		slog.Error("Update payroll validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	result, err := h.payrollService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update payroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll record updated successfully", result)
}

// MyPayslips implements PayrollHandler.
func (h *PayrollHandlerImpl) MyPayslips(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.MyPayslips(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
