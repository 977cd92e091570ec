package http

import (
	"fmt"
	"net/http"

	"github.com/dienstpilot/dienstpilot-backend-go/internal/domain/plan"
	"github.com/dienstpilot/dienstpilot-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PlanHandler interface {
	Monthly(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type planHandlerImpl struct {
	planService plan.PlanService
}

func NewPlanHandler(planService plan.PlanService) PlanHandler {
	return &planHandlerImpl{planService: planService}
}

// Monthly serves the calendar view of one store and month.
func (h *planHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	req := plan.MonthlyPlanRequest{
		StoreID: chi.URLParam(r, "storeID"),
		Month:   r.URL.Query().Get("month"),
	}

	result, err := h.planService.Monthly(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Export streams the monthly plan as an XLSX or PDF download.
func (h *planHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	req := plan.ExportRequest{
		StoreID: chi.URLParam(r, "storeID"),
		Month:   r.URL.Query().Get("month"),
		Format:  plan.ExportFormat(r.URL.Query().Get("format")),
	}

	result, err := h.planService.Export(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(result.Data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Data)
}
