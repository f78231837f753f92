package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/peoplecore/hrms-backend-go/internal/domain/performance"
	"github.com/peoplecore/hrms-backend-go/internal/handler/http/response"
)

type PerformanceHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	MyReviews(w http.ResponseWriter, r *http.Request)
}

type PerformanceHandlerImpl struct {
	performanceService performance.PerformanceService
}

func NewPerformanceHandler(performanceService performance.PerformanceService) PerformanceHandler {
	return &PerformanceHandlerImpl{performanceService: performanceService}
}

// Create implements PerformanceHandler.
func (h *PerformanceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq performance.CreateReviewRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create review decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		slog.Error("Create review validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	result, err := h.performanceService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create review service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Performance review created", "review_id", result.ID, "employee_id", result.EmployeeID)
	response.Created(w, "Performance review created successfully", result)
}

// List implements PerformanceHandler.
func (h *PerformanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.performanceService.List(r.Context())
	if err != nil {
		slog.Error("List reviews service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MyReviews implements PerformanceHandler.
func (h *PerformanceHandlerImpl) MyReviews(w http.ResponseWriter, r *http.Request) {
	result, err := h.performanceService.MyReviews(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
