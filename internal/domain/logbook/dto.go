package logbook

import (
	"github.com/dienstpilot/dienstpilot-backend-go/internal/pkg/validator"
)

type CreateEntryRequest struct {
	StoreID string `json:"-"`
	Date    string `json:"date"` // "YYYY-MM-DD"
	Author  string `json:"author"`
	Text    string `json:"text"`
}

func (r *CreateEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be YYYY-MM-DD",
		})
	}
	if validator.IsEmpty(r.Text) {
		errs = append(errs, validator.ValidationError{
			Field:   "text",
			Message: "text is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEntryRequest struct {
	ID      string  `json:"-"`
	StoreID string  `json:"-"`
	Date    *string `json:"date"`
	Author  *string `json:"author"`
	Text    *string `json:"text"`
}

func (r *UpdateEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a valid UUID",
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
	if r.Text != nil && validator.IsEmpty(*r.Text) {
		errs = append(errs, validator.ValidationError{
			Field:   "text",
			Message: "text must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EntryResponse struct {
	ID      string `json:"id"`
	StoreID string `json:"store_id"`
	Date    string `json:"date"`
	Author  string `json:"author,omitempty"`
	Text    string `json:"text"`
}

func ToResponse(e Entry) EntryResponse {
	return EntryResponse{
		ID:      e.ID,
		StoreID: e.StoreID,
		Date:    e.Date.Format("2006-01-02"),
		Author:  e.Author,
		Text:    e.Text,
	}
}
