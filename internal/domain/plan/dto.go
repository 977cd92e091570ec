package plan

import (
	"fmt"
	"time"

	"github.com/dienstpilot/dienstpilot-backend-go/internal/pkg/validator"
)

// ========================================
// MONTHLY PLAN GRID
// ========================================

type MonthlyPlanRequest struct {
	StoreID string
	Month   string // "YYYY-MM"
}

func (r *MonthlyPlanRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.StoreID) {
		errs = append(errs, validator.ValidationError{
			Field:   "store_id",
			Message: "store_id must be a valid UUID",
		})
	}
	if _, ok := validator.IsValidMonth(r.Month); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be YYYY-MM",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// MonthlyGrid is the derived plan of one store for one month. It is
// computed per request, handed to an exporter or serialized for the
// calendar view, and discarded; it is never persisted.
type MonthlyGrid struct {
	Month time.Time // first day of the month
	Rows  []EmployeeRow
}

// EmployeeRow is one surviving employee of the grid. Employees whose
// month total is exactly zero are dropped before the grid is emitted.
type EmployeeRow struct {
	EmployeeID   string
	EmployeeName string
	// DayCells has one entry per day of the month, index 0 = day 1.
	// A cell holds the deduplicated shift titles of that day joined
	// with "\n", or "" for a free day.
	DayCells   []string
	TotalHours float64
}

// TotalHoursSum is the grid-wide hour total, used by the exporters'
// footer and by invariant checks.
func (g MonthlyGrid) TotalHoursSum() float64 {
	var sum float64
	for _, row := range g.Rows {
		sum += row.TotalHours
	}
	return sum
}

// ========================================
// CALENDAR VIEW (JSON)
// ========================================

type MonthlyPlanResponse struct {
	StoreID   string            `json:"store_id"`
	StoreName string            `json:"store_name"`
	Month     string            `json:"month"`
	Days      []DayResponse     `json:"days"`
	Rows      []PlanRowResponse `json:"rows"`
}

type DayResponse struct {
	Date string `json:"date"` // "YYYY-MM-DD"
	Kind string `json:"kind"` // holiday | sunday | saturday | weekday
}

type PlanRowResponse struct {
	EmployeeID   string   `json:"employee_id"`
	EmployeeName string   `json:"employee_name"`
	Cells        []string `json:"cells"`
	TotalHours   float64  `json:"total_hours"`
}

// ========================================
// EXPORT
// ========================================

type ExportFormat string

const (
	FormatSpreadsheet ExportFormat = "xlsx"
	FormatDocument    ExportFormat = "pdf"
)

type ExportRequest struct {
	StoreID string
	Month   string
	Format  ExportFormat
}

func (r *ExportRequest) Validate() error {
	base := MonthlyPlanRequest{StoreID: r.StoreID, Month: r.Month}
	if err := base.Validate(); err != nil {
		return err
	}

	if r.Format != FormatSpreadsheet && r.Format != FormatDocument {
		return validator.ValidationErrors{{
			Field:   "format",
			Message: fmt.Sprintf("format must be %q or %q", FormatSpreadsheet, FormatDocument),
		}}
	}
	return nil
}

// ExportResult carries the finished artifact back to the handler.
type ExportResult struct {
	Filename    string
	ContentType string
	Data        []byte
}
