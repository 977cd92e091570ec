package shift

import (
	"github.com/dienstpilot/dienstpilot-backend-go/internal/pkg/validator"
)

type CreateShiftDefinitionRequest struct {
	StoreID                 string   `json:"-"`
	Title                   string   `json:"title"`
	StartTime               *string  `json:"start_time"`
	EndTime                 *string  `json:"end_time"`
	WorkHours               *float64 `json:"work_hours"`
	ExcludeFromCalculations bool     `json:"exclude_from_calculations"`
	SortOrder               int      `json:"sort_order"`
}

func (r *CreateShiftDefinitionRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.StoreID) {
		errs = append(errs, validator.ValidationError{
			Field:   "store_id",
			Message: "store_id must be a valid UUID",
		})
	}
	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}
	if r.StartTime != nil && !validator.IsValidTimeOfDay(*r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be HH:MM",
		})
	}
	if r.EndTime != nil && !validator.IsValidTimeOfDay(*r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be HH:MM",
		})
	}
	if r.WorkHours != nil && !validator.IsValidWorkHours(*r.WorkHours) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_hours",
			Message: "work_hours must be between 0 and 24",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateShiftDefinitionRequest struct {
	ID                      string   `json:"-"`
	StoreID                 string   `json:"-"`
	Title                   *string  `json:"title"`
	StartTime               *string  `json:"start_time"`
	EndTime                 *string  `json:"end_time"`
	WorkHours               *float64 `json:"work_hours"`
	ExcludeFromCalculations *bool    `json:"exclude_from_calculations"`
	SortOrder               *int     `json:"sort_order"`
}

func (r *UpdateShiftDefinitionRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a valid UUID",
		})
	}
	if r.Title != nil && validator.IsEmpty(*r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title must not be empty",
		})
	}
	if r.WorkHours != nil && !validator.IsValidWorkHours(*r.WorkHours) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_hours",
			Message: "work_hours must be between 0 and 24",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateAssignmentRequest struct {
	StoreID    string  `json:"-"`
	EmployeeID string  `json:"employee_id"`
	ShiftID    string  `json:"shift_id"`
	Date       string  `json:"date"` // "YYYY-MM-DD"
	WorkHours  float64 `json:"work_hours"`
}

func (r *CreateAssignmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a valid UUID",
		})
	}
	if !validator.IsValidUUID(r.ShiftID) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_id",
			Message: "shift_id must be a valid UUID",
		})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be YYYY-MM-DD",
		})
	}
	if !validator.IsValidWorkHours(r.WorkHours) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_hours",
			Message: "work_hours must be between 0 and 24",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAssignmentRequest struct {
	ID        string   `json:"-"`
	StoreID   string   `json:"-"`
	ShiftID   *string  `json:"shift_id"`
	Date      *string  `json:"date"`
	WorkHours *float64 `json:"work_hours"`
}

func (r *UpdateAssignmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a valid UUID",
		})
	}
	if r.ShiftID != nil && !validator.IsValidUUID(*r.ShiftID) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_id",
			Message: "shift_id must be a valid UUID",
		})
	}
	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be YYYY-MM-DD",
			})
		}
	}
	if r.WorkHours != nil && !validator.IsValidWorkHours(*r.WorkHours) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_hours",
			Message: "work_hours must be between 0 and 24",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ShiftDefinitionResponse struct {
	ID                      string   `json:"id"`
	StoreID                 string   `json:"store_id"`
	Title                   string   `json:"title"`
	StartTime               *string  `json:"start_time,omitempty"`
	EndTime                 *string  `json:"end_time,omitempty"`
	WorkHours               *float64 `json:"work_hours,omitempty"`
	ExcludeFromCalculations bool     `json:"exclude_from_calculations"`
	SortOrder               int      `json:"sort_order"`
}

func ToDefinitionResponse(d ShiftDefinition) ShiftDefinitionResponse {
	return ShiftDefinitionResponse{
		ID:                      d.ID,
		StoreID:                 d.StoreID,
		Title:                   d.Title,
		StartTime:               d.StartTime,
		EndTime:                 d.EndTime,
		WorkHours:               d.WorkHours,
		ExcludeFromCalculations: d.ExcludeFromCalculations,
		SortOrder:               d.SortOrder,
	}
}

type AssignmentResponse struct {
	ID         string  `json:"id"`
	StoreID    string  `json:"store_id"`
	EmployeeID string  `json:"employee_id"`
	ShiftID    string  `json:"shift_id"`
	Date       string  `json:"date"`
	WorkHours  float64 `json:"work_hours"`
}

func ToAssignmentResponse(a ShiftAssignment) AssignmentResponse {
	return AssignmentResponse{
		ID:         a.ID,
		StoreID:    a.StoreID,
		EmployeeID: a.EmployeeID,
		ShiftID:    a.ShiftID,
		Date:       a.Date.Format("2006-01-02"),
		WorkHours:  a.WorkHours,
	}
}
