package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/dienstpilot/dienstpilot-backend-go/internal/domain/shift"
	"github.com/dienstpilot/dienstpilot-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ShiftHandler interface {
	// Definitions
	CreateDefinition(w http.ResponseWriter, r *http.Request)
	GetDefinition(w http.ResponseWriter, r *http.Request)
	ListDefinitions(w http.ResponseWriter, r *http.Request)
	UpdateDefinition(w http.ResponseWriter, r *http.Request)
	DeleteDefinition(w http.ResponseWriter, r *http.Request)

	// Assignments
	CreateAssignment(w http.ResponseWriter, r *http.Request)
	GetAssignment(w http.ResponseWriter, r *http.Request)
	ListAssignments(w http.ResponseWriter, r *http.Request)
	UpdateAssignment(w http.ResponseWriter, r *http.Request)
	DeleteAssignment(w http.ResponseWriter, r *http.Request)
}

type shiftHandlerImpl struct {
	shiftService shift.ShiftService
}

func NewShiftHandler(shiftService shift.ShiftService) ShiftHandler {
	return &shiftHandlerImpl{shiftService: shiftService}
}

// ==================== DEFINITION HANDLERS ====================

func (h *shiftHandlerImpl) CreateDefinition(w http.ResponseWriter, r *http.Request) {
	var req shift.CreateShiftDefinitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.StoreID = chi.URLParam(r, "storeID")

	result, err := h.shiftService.CreateDefinition(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift definition created successfully", result)
}

func (h *shiftHandlerImpl) GetDefinition(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "shiftID")
	storeID := chi.URLParam(r, "storeID")

	result, err := h.shiftService.GetDefinition(r.Context(), id, storeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *shiftHandlerImpl) ListDefinitions(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "storeID")

	result, err := h.shiftService.ListDefinitions(r.Context(), storeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *shiftHandlerImpl) UpdateDefinition(w http.ResponseWriter, r *http.Request) {
	var req shift.UpdateShiftDefinitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "shiftID")
	req.StoreID = chi.URLParam(r, "storeID")

	result, err := h.shiftService.UpdateDefinition(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift definition updated successfully", result)
}

func (h *shiftHandlerImpl) DeleteDefinition(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "shiftID")
	storeID := chi.URLParam(r, "storeID")

	if err := h.shiftService.DeleteDefinition(r.Context(), id, storeID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift definition deleted successfully", nil)
}

// ==================== ASSIGNMENT HANDLERS ====================

func (h *shiftHandlerImpl) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	var req shift.CreateAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.StoreID = chi.URLParam(r, "storeID")

	result, err := h.shiftService.CreateAssignment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift assignment created successfully", result)
}

func (h *shiftHandlerImpl) GetAssignment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "assignmentID")
	storeID := chi.URLParam(r, "storeID")

	result, err := h.shiftService.GetAssignment(r.Context(), id, storeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *shiftHandlerImpl) ListAssignments(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "storeID")

	month, err := time.Parse("2006-01", r.URL.Query().Get("month"))
	if err != nil {
		response.BadRequest(w, "Query parameter 'month' must be YYYY-MM", nil)
		return
	}

	result, err := h.shiftService.ListAssignmentsByMonth(r.Context(), storeID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *shiftHandlerImpl) UpdateAssignment(w http.ResponseWriter, r *http.Request) {
	var req shift.UpdateAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "assignmentID")
	req.StoreID = chi.URLParam(r, "storeID")

	result, err := h.shiftService.UpdateAssignment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift assignment updated successfully", result)
}

func (h *shiftHandlerImpl) DeleteAssignment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "assignmentID")
	storeID := chi.URLParam(r, "storeID")

	if err := h.shiftService.DeleteAssignment(r.Context(), id, storeID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift assignment deleted successfully", nil)
}
