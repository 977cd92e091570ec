package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/dienstpilot/dienstpilot-backend-go/internal/domain/logbook"
	"github.com/dienstpilot/dienstpilot-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type LogbookHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	ListByMonth(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type logbookHandlerImpl struct {
	logbookService logbook.LogbookService
}

func NewLogbookHandler(logbookService logbook.LogbookService) LogbookHandler {
	return &logbookHandlerImpl{logbookService: logbookService}
}

func (h *logbookHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req logbook.CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.StoreID = chi.URLParam(r, "storeID")

	result, err := h.logbookService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Logbook entry created successfully", result)
}

func (h *logbookHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "entryID")
	storeID := chi.URLParam(r, "storeID")

	result, err := h.logbookService.GetByID(r.Context(), id, storeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *logbookHandlerImpl) ListByMonth(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "storeID")

	month, err := time.Parse("2006-01", r.URL.Query().Get("month"))
	if err != nil {
		response.BadRequest(w, "Query parameter 'month' must be YYYY-MM", nil)
		return
	}

	result, err := h.logbookService.ListByMonth(r.Context(), storeID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *logbookHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req logbook.UpdateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "entryID")
	req.StoreID = chi.URLParam(r, "storeID")

	result, err := h.logbookService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Logbook entry updated successfully", result)
}

func (h *logbookHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "entryID")
	storeID := chi.URLParam(r, "storeID")

	if err := h.logbookService.Delete(r.Context(), id, storeID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Logbook entry deleted successfully", nil)
}
