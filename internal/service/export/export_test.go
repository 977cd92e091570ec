package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/dienstpilot/dienstpilot-backend-go/internal/domain/plan"
	"github.com/dienstpilot/dienstpilot-backend-go/internal/domain/store"
	"github.com/dienstpilot/dienstpilot-backend-go/internal/pkg/holiday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var march = time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

func testStore() store.Store {
	return store.Store{ID: "store-1", Name: "Filiale Mitte", State: holiday.Berlin}
}

func testGrid() plan.MonthlyGrid {
	cells := make([]string, 31)
	cells[0] = "Frühschicht"
	cells[1] = "Spätschicht\nUrlaub"
	return plan.MonthlyGrid{
		Month: march,
		Rows: []plan.EmployeeRow{
			{EmployeeID: "e1", EmployeeName: "Anna Schmidt", DayCells: cells, TotalHours: 15.75},
		},
	}
}

func testDays() []Day {
	table := holiday.Table2024()
	days := make([]Day, 0, 31)
	for d := march; d.Month() == time.March; d = d.AddDate(0, 0, 1) {
		days = append(days, Day{Date: d, Kind: holiday.Classify(d, holiday.Berlin, table)})
	}
	return days
}

func TestGermanMonthYear(t *testing.T) {
	assert.Equal(t, "März 2024", GermanMonthYear(march))
	assert.Equal(t, "Dezember 2025", GermanMonthYear(time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)))
}

func TestFilenames(t *testing.T) {
	assert.Equal(t, "Arbeitsplan_Filiale Mitte_März 2024.xlsx", SpreadsheetFilename("Filiale Mitte", march))
	assert.Equal(t, "Arbeitsplan_Filiale Mitte_2024-03.pdf", DocumentFilename("Filiale Mitte", march))
}

func TestSpreadsheet(t *testing.T) {
	grid := testGrid()
	days := testDays()

	data, err := Spreadsheet(grid, days, testStore())
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue("Arbeitsplan", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Arbeitsplan Filiale Mitte – März 2024", title)

	header, err := f.GetCellValue("Arbeitsplan", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Mitarbeiter", header)

	day1, err := f.GetCellValue("Arbeitsplan", "B2")
	require.NoError(t, err)
	assert.Equal(t, "1", day1)

	// Totals column: name + 31 days + totals = column 33 (AG).
	totalHeader, err := f.GetCellValue("Arbeitsplan", "AG2")
	require.NoError(t, err)
	assert.Equal(t, "Stunden", totalHeader)

	name, err := f.GetCellValue("Arbeitsplan", "A3")
	require.NoError(t, err)
	assert.Equal(t, "Anna Schmidt", name)

	cell, err := f.GetCellValue("Arbeitsplan", "B3")
	require.NoError(t, err)
	assert.Equal(t, "Frühschicht", cell)

	// 15.75 rounds to one display decimal.
	total, err := f.GetCellValue("Arbeitsplan", "AG3")
	require.NoError(t, err)
	assert.Equal(t, "15.8", total)
}

func TestDocument(t *testing.T) {
	data, err := Document(testGrid(), testDays(), testStore())
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "output should start with the PDF magic")
}

func TestExportersDoNotMutateGrid(t *testing.T) {
	grid := testGrid()
	days := testDays()

	_, err := Spreadsheet(grid, days, testStore())
	require.NoError(t, err)
	_, err = Document(grid, days, testStore())
	require.NoError(t, err)

	assert.Equal(t, testGrid(), grid)
	assert.InDelta(t, 15.75, grid.Rows[0].TotalHours, 1e-9)
}
