package plan

import (
	"testing"
	"time"

	"github.com/dienstpilot/dienstpilot-backend-go/internal/domain/employee"
	"github.com/dienstpilot/dienstpilot-backend-go/internal/domain/shift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var june = time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

func testEmployee(id, first, last string) employee.Employee {
	return employee.Employee{ID: id, StoreID: "store-1", FirstName: first, LastName: last}
}

func testDefinition(id, title string, exclude bool) shift.ShiftDefinition {
	return shift.ShiftDefinition{ID: id, StoreID: "store-1", Title: title, ExcludeFromCalculations: exclude}
}

func testAssignment(employeeID, shiftID string, day int, hours float64) shift.ShiftAssignment {
	return shift.ShiftAssignment{
		ID:         employeeID + "-" + shiftID,
		StoreID:    "store-1",
		EmployeeID: employeeID,
		ShiftID:    shiftID,
		Date:       time.Date(2024, time.June, day, 0, 0, 0, 0, time.UTC),
		WorkHours:  hours,
	}
}

func TestMonthDays(t *testing.T) {
	days := MonthDays(time.Date(2024, time.February, 15, 10, 30, 0, 0, time.UTC))
	require.Len(t, days, 29)
	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), days[0])
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), days[28])

	assert.Len(t, MonthDays(june), 30)
	assert.Len(t, MonthDays(time.Date(2023, time.February, 1, 0, 0, 0, 0, time.UTC)), 28)
}

func TestBuildMonthlyGrid_TotalsAndCells(t *testing.T) {
	employees := []employee.Employee{testEmployee("e1", "Anna", "Schmidt")}
	defs := []shift.ShiftDefinition{
		testDefinition("s1", "Frühschicht", false),
		testDefinition("s2", "Spätschicht", false),
	}
	assignments := []shift.ShiftAssignment{
		testAssignment("e1", "s1", 3, 8),
		testAssignment("e1", "s2", 3, 8),
		testAssignment("e1", "s1", 4, 7.5),
	}

	grid := BuildMonthlyGrid(june, employees, defs, assignments)
	require.Len(t, grid.Rows, 1)

	row := grid.Rows[0]
	assert.Equal(t, "Anna Schmidt", row.EmployeeName)
	assert.Len(t, row.DayCells, 30)
	assert.Equal(t, "Frühschicht\nSpätschicht", row.DayCells[2])
	assert.Equal(t, "Frühschicht", row.DayCells[3])
	assert.Equal(t, "", row.DayCells[0])
	assert.InDelta(t, 23.5, row.TotalHours, 1e-9)
}

func TestBuildMonthlyGrid_ExcludedShiftShowsTitleWithoutHours(t *testing.T) {
	employees := []employee.Employee{testEmployee("e1", "Anna", "Schmidt")}
	defs := []shift.ShiftDefinition{
		testDefinition("s1", "Frühschicht", false),
		testDefinition("s2", "Urlaub", true),
	}
	assignments := []shift.ShiftAssignment{
		testAssignment("e1", "s1", 3, 8),
		testAssignment("e1", "s2", 10, 8),
	}

	grid := BuildMonthlyGrid(june, employees, defs, assignments)
	require.Len(t, grid.Rows, 1)

	row := grid.Rows[0]
	assert.Equal(t, "Urlaub", row.DayCells[9], "excluded shift title still shown")
	assert.InDelta(t, 8, row.TotalHours, 1e-9, "excluded hours must not count")
}

func TestBuildMonthlyGrid_DuplicateTitleShownOnceHoursSummed(t *testing.T) {
	employees := []employee.Employee{testEmployee("e1", "Anna", "Schmidt")}
	// Two definitions sharing one title, e.g. a split shift.
	defs := []shift.ShiftDefinition{
		testDefinition("s1", "Frühschicht", false),
		testDefinition("s2", "Frühschicht", false),
	}
	assignments := []shift.ShiftAssignment{
		testAssignment("e1", "s1", 3, 4),
		testAssignment("e1", "s2", 3, 4),
	}

	grid := BuildMonthlyGrid(june, employees, defs, assignments)
	require.Len(t, grid.Rows, 1)
	assert.Equal(t, "Frühschicht", grid.Rows[0].DayCells[2])
	assert.InDelta(t, 8, grid.Rows[0].TotalHours, 1e-9)
}

func TestBuildMonthlyGrid_DanglingShiftReference(t *testing.T) {
	employees := []employee.Employee{testEmployee("e1", "Anna", "Schmidt")}
	defs := []shift.ShiftDefinition{testDefinition("s1", "Frühschicht", false)}
	assignments := []shift.ShiftAssignment{
		testAssignment("e1", "s1", 3, 8),
		testAssignment("e1", "deleted-shift", 4, 8),
	}

	grid := BuildMonthlyGrid(june, employees, defs, assignments)
	require.Len(t, grid.Rows, 1)

	row := grid.Rows[0]
	assert.Equal(t, "", row.DayCells[3], "dangling reference renders blank")
	assert.InDelta(t, 8, row.TotalHours, 1e-9, "dangling reference contributes no hours")
}

func TestBuildMonthlyGrid_ZeroTotalEmployeesDropped(t *testing.T) {
	employees := []employee.Employee{
		testEmployee("e1", "Anna", "Schmidt"),
		testEmployee("e2", "Ben", "Weber"),
		testEmployee("e3", "Cara", "Vogel"),
	}
	defs := []shift.ShiftDefinition{
		testDefinition("s1", "Frühschicht", false),
		testDefinition("s2", "Urlaub", true),
	}
	assignments := []shift.ShiftAssignment{
		testAssignment("e1", "s1", 3, 8),
		// e2 only has excluded shifts, e3 has nothing at all.
		testAssignment("e2", "s2", 3, 8),
	}

	grid := BuildMonthlyGrid(june, employees, defs, assignments)
	require.Len(t, grid.Rows, 1)
	assert.Equal(t, "e1", grid.Rows[0].EmployeeID)
}

func TestBuildMonthlyGrid_EmployeeOrderPreserved(t *testing.T) {
	employees := []employee.Employee{
		testEmployee("e2", "Ben", "Weber"),
		testEmployee("e1", "Anna", "Schmidt"),
	}
	defs := []shift.ShiftDefinition{testDefinition("s1", "Frühschicht", false)}
	assignments := []shift.ShiftAssignment{
		testAssignment("e1", "s1", 3, 8),
		testAssignment("e2", "s1", 3, 8),
	}

	grid := BuildMonthlyGrid(june, employees, defs, assignments)
	require.Len(t, grid.Rows, 2)
	assert.Equal(t, "e2", grid.Rows[0].EmployeeID)
	assert.Equal(t, "e1", grid.Rows[1].EmployeeID)
}

func TestBuildMonthlyGrid_OtherMonthsIgnored(t *testing.T) {
	employees := []employee.Employee{testEmployee("e1", "Anna", "Schmidt")}
	defs := []shift.ShiftDefinition{testDefinition("s1", "Frühschicht", false)}
	assignments := []shift.ShiftAssignment{
		testAssignment("e1", "s1", 3, 8),
		{
			ID: "x1", StoreID: "store-1", EmployeeID: "e1", ShiftID: "s1",
			Date: time.Date(2024, time.May, 31, 0, 0, 0, 0, time.UTC), WorkHours: 8,
		},
		{
			ID: "x2", StoreID: "store-1", EmployeeID: "e1", ShiftID: "s1",
			Date: time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC), WorkHours: 8,
		},
	}

	grid := BuildMonthlyGrid(june, employees, defs, assignments)
	require.Len(t, grid.Rows, 1)
	assert.InDelta(t, 8, grid.Rows[0].TotalHours, 1e-9)
}

func TestBuildMonthlyGrid_TimeOfDayIgnored(t *testing.T) {
	employees := []employee.Employee{testEmployee("e1", "Anna", "Schmidt")}
	defs := []shift.ShiftDefinition{testDefinition("s1", "Spätschicht", false)}
	assignments := []shift.ShiftAssignment{
		{
			ID: "a1", StoreID: "store-1", EmployeeID: "e1", ShiftID: "s1",
			Date: time.Date(2024, time.June, 3, 22, 15, 0, 0, time.UTC), WorkHours: 8,
		},
	}

	grid := BuildMonthlyGrid(june, employees, defs, assignments)
	require.Len(t, grid.Rows, 1)
	assert.Equal(t, "Spätschicht", grid.Rows[0].DayCells[2])
}

func TestBuildMonthlyGrid_Idempotent(t *testing.T) {
	employees := []employee.Employee{testEmployee("e1", "Anna", "Schmidt")}
	defs := []shift.ShiftDefinition{testDefinition("s1", "Frühschicht", false)}
	assignments := []shift.ShiftAssignment{testAssignment("e1", "s1", 3, 8)}

	first := BuildMonthlyGrid(june, employees, defs, assignments)
	second := BuildMonthlyGrid(june, employees, defs, assignments)
	assert.Equal(t, first, second)
}

func TestBuildMonthlyGrid_EmptyInputs(t *testing.T) {
	grid := BuildMonthlyGrid(june, nil, nil, nil)
	assert.Equal(t, june, grid.Month)
	assert.Empty(t, grid.Rows)
}

func TestMonthlyGridTotalHoursSum(t *testing.T) {
	employees := []employee.Employee{
		testEmployee("e1", "Anna", "Schmidt"),
		testEmployee("e2", "Ben", "Weber"),
	}
	defs := []shift.ShiftDefinition{testDefinition("s1", "Frühschicht", false)}
	assignments := []shift.ShiftAssignment{
		testAssignment("e1", "s1", 3, 8),
		testAssignment("e2", "s1", 4, 7.5),
	}

	grid := BuildMonthlyGrid(june, employees, defs, assignments)
	assert.InDelta(t, 15.5, grid.TotalHoursSum(), 1e-9)
}
