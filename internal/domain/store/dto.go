package store

import (
	"github.com/dienstpilot/dienstpilot-backend-go/internal/pkg/holiday"
	"github.com/dienstpilot/dienstpilot-backend-go/internal/pkg/validator"
)

type CreateStoreRequest struct {
	Name    string `json:"name"`
	State   string `json:"state"`
	Address string `json:"address"`
}

func (r *CreateStoreRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if !holiday.IsValidState(holiday.GermanState(r.State)) {
		errs = append(errs, validator.ValidationError{
			Field:   "state",
			Message: "state must be one of the 16 German federal states",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStoreRequest struct {
	ID      string  `json:"-"`
	Name    *string `json:"name"`
	State   *string `json:"state"`
	Address *string `json:"address"`
}

func (r *UpdateStoreRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a valid UUID",
		})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.State != nil && !holiday.IsValidState(holiday.GermanState(*r.State)) {
		errs = append(errs, validator.ValidationError{
			Field:   "state",
			Message: "state must be one of the 16 German federal states",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type StoreResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	State   string `json:"state"`
	Address string `json:"address,omitempty"`
}

func ToResponse(s Store) StoreResponse {
	return StoreResponse{
		ID:      s.ID,
		Name:    s.Name,
		State:   string(s.State),
		Address: s.Address,
	}
}
