package plan

import (
	"strings"
	"time"

	"github.com/dienstpilot/dienstpilot-backend-go/internal/domain/employee"
	"github.com/dienstpilot/dienstpilot-backend-go/internal/domain/plan"
	"github.com/dienstpilot/dienstpilot-backend-go/internal/domain/shift"
)

// MonthDays returns every day of the month containing t, first through
// last, at midnight UTC.
func MonthDays(t time.Time) []time.Time {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	next := first.AddDate(0, 1, 0)

	days := make([]time.Time, 0, 31)
	for d := first; d.Before(next); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// BuildMonthlyGrid computes the per-employee day grid and hour totals
// for one month.
//
// Rules, in order:
//   - assignments are matched to days by calendar date only, any
//     time-of-day on the stored date is ignored;
//   - a day cell shows each distinct shift title once, in order of
//     first occurrence, joined with "\n" — titles of excluded shifts
//     included;
//   - hours of assignments whose definition has ExcludeFromCalculations
//     set do not count toward the total;
//   - an assignment whose shift ID resolves to no definition renders as
//     an empty title and contributes zero hours, it never fails the run;
//   - employees whose month total is exactly zero are dropped entirely;
//   - employee input order is preserved.
//
// The total is a raw float; rounding to one decimal is left to the
// exporters.
func BuildMonthlyGrid(
	month time.Time,
	employees []employee.Employee,
	shiftDefs []shift.ShiftDefinition,
	assignments []shift.ShiftAssignment,
) plan.MonthlyGrid {
	days := MonthDays(month)

	defsByID := make(map[string]shift.ShiftDefinition, len(shiftDefs))
	for _, def := range shiftDefs {
		defsByID[def.ID] = def
	}

	// Bucket assignments by employee and day index once, instead of
	// rescanning the whole list per cell.
	type dayKey struct {
		employeeID string
		day        int
	}
	byDay := make(map[dayKey][]shift.ShiftAssignment, len(assignments))
	for _, a := range assignments {
		if a.Date.Year() != month.Year() || a.Date.Month() != month.Month() {
			continue
		}
		key := dayKey{employeeID: a.EmployeeID, day: a.Date.Day()}
		byDay[key] = append(byDay[key], a)
	}

	grid := plan.MonthlyGrid{
		Month: days[0],
		Rows:  make([]plan.EmployeeRow, 0, len(employees)),
	}

	for _, emp := range employees {
		row := plan.EmployeeRow{
			EmployeeID:   emp.ID,
			EmployeeName: emp.FullName(),
			DayCells:     make([]string, len(days)),
		}

		for i, day := range days {
			cellAssignments := byDay[dayKey{employeeID: emp.ID, day: day.Day()}]
			if len(cellAssignments) == 0 {
				continue
			}

			var titles []string
			seen := make(map[string]bool, len(cellAssignments))
			for _, a := range cellAssignments {
				def, ok := defsByID[a.ShiftID]
				if !ok {
					// Dangling reference: blank title, no hours.
					continue
				}
				if !def.ExcludeFromCalculations {
					row.TotalHours += a.WorkHours
				}
				if !seen[def.Title] {
					seen[def.Title] = true
					titles = append(titles, def.Title)
				}
			}
			row.DayCells[i] = strings.Join(titles, "\n")
		}

		// A zero total means the employee does not appear on the plan
		// at all, not that an empty row is emitted.
		if row.TotalHours == 0 {
			continue
		}
		grid.Rows = append(grid.Rows, row)
	}

	return grid
}
