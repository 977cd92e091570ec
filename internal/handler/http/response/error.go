package response

import (
	"errors"
	"net/http"

	"github.com/dienstpilot/dienstpilot-backend-go/internal/domain/employee"
	"github.com/dienstpilot/dienstpilot-backend-go/internal/domain/logbook"
	"github.com/dienstpilot/dienstpilot-backend-go/internal/domain/shift"
	"github.com/dienstpilot/dienstpilot-backend-go/internal/domain/store"
	"github.com/dienstpilot/dienstpilot-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Store domain errors
	case errors.Is(err, store.ErrStoreNotFound):
		NotFound(w, "Store not found")
	case errors.Is(err, store.ErrStoreNameExists):
		Conflict(w, "Store with this name already exists")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftDefinitionNotFound):
		NotFound(w, "Shift definition not found")
	case errors.Is(err, shift.ErrShiftTitleExists):
		Conflict(w, "Shift definition with this title already exists")
	case errors.Is(err, shift.ErrAssignmentNotFound):
		NotFound(w, "Shift assignment not found")

	// Logbook domain errors
	case errors.Is(err, logbook.ErrEntryNotFound):
		NotFound(w, "Logbook entry not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
