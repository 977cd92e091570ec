package export

import (
	"fmt"
	"math"

	"github.com/dienstpilot/dienstpilot-backend-go/internal/domain/plan"
	"github.com/dienstpilot/dienstpilot-backend-go/internal/domain/store"
	"github.com/dienstpilot/dienstpilot-backend-go/internal/pkg/holiday"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Arbeitsplan"

// Spreadsheet renders the monthly grid as a styled XLSX workbook.
// Layout: a merged title row, a header row (employee column, one column
// per day, totals column), one body row per surviving employee.
// Weekend and holiday columns get their fill column-wide.
func Spreadsheet(grid plan.MonthlyGrid, days []Day, s store.Store) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheetName)

	styles, err := newSheetStyles(f)
	if err != nil {
		return nil, err
	}

	lastCol := len(days) + 2 // name column + days + totals column

	// Title row
	titleCell, _ := excelize.CoordinatesToCellName(1, 1)
	lastTitleCell, _ := excelize.CoordinatesToCellName(lastCol, 1)
	if err := f.MergeCell(sheetName, titleCell, lastTitleCell); err != nil {
		return nil, err
	}
	title := fmt.Sprintf("Arbeitsplan %s – %s", s.Name, GermanMonthYear(grid.Month))
	if err := f.SetCellValue(sheetName, titleCell, title); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheetName, titleCell, titleCell, styles.title); err != nil {
		return nil, err
	}

	// Header row
	if err := setStyledCell(f, 1, 2, "Mitarbeiter", styles.header); err != nil {
		return nil, err
	}
	for i, day := range days {
		if err := setStyledCell(f, i+2, 2, day.Date.Day(), styles.headerFor(day.Kind)); err != nil {
			return nil, err
		}
	}
	if err := setStyledCell(f, lastCol, 2, "Stunden", styles.header); err != nil {
		return nil, err
	}

	// Body rows
	for rowIdx, row := range grid.Rows {
		rowNum := rowIdx + 3

		if err := setStyledCell(f, 1, rowNum, row.EmployeeName, styles.name); err != nil {
			return nil, err
		}
		for i, day := range days {
			if err := setStyledCell(f, i+2, rowNum, row.DayCells[i], styles.cellFor(day.Kind)); err != nil {
				return nil, err
			}
		}
		// One decimal for the display total, the grid keeps the raw sum.
		total := math.Round(row.TotalHours*10) / 10
		if err := setStyledCell(f, lastCol, rowNum, total, styles.total); err != nil {
			return nil, err
		}
	}

	// Column widths: wide name column, narrow day columns
	firstDayCol, _ := excelize.ColumnNumberToName(2)
	lastDayCol, _ := excelize.ColumnNumberToName(lastCol - 1)
	totalCol, _ := excelize.ColumnNumberToName(lastCol)
	if err := f.SetColWidth(sheetName, "A", "A", 24); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheetName, firstDayCol, lastDayCol, 12); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheetName, totalCol, totalCol, 10); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to generate spreadsheet: %w", err)
	}
	return buf.Bytes(), nil
}

func setStyledCell(f *excelize.File, col, row int, value interface{}, styleID int) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(sheetName, cell, value); err != nil {
		return err
	}
	return f.SetCellStyle(sheetName, cell, cell, styleID)
}

type sheetStyles struct {
	title          int
	header         int
	headerHoliday  int
	headerSunday   int
	headerSaturday int
	name           int
	cell           int
	cellHoliday    int
	cellSunday     int
	cellSaturday   int
	total          int
}

func (s sheetStyles) headerFor(kind holiday.DayKind) int {
	switch kind {
	case holiday.KindHoliday:
		return s.headerHoliday
	case holiday.KindSunday:
		return s.headerSunday
	case holiday.KindSaturday:
		return s.headerSaturday
	}
	return s.header
}

func (s sheetStyles) cellFor(kind holiday.DayKind) int {
	switch kind {
	case holiday.KindHoliday:
		return s.cellHoliday
	case holiday.KindSunday:
		return s.cellSunday
	case holiday.KindSaturday:
		return s.cellSaturday
	}
	return s.cell
}

const (
	fillHeader   = "DDEBF7"
	fillHoliday  = "FFC7CE"
	fillSunday   = "F4B084"
	fillSaturday = "D9D9D9"
)

func newSheetStyles(f *excelize.File) (sheetStyles, error) {
	var styles sheetStyles
	var err error

	thinBorder := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}

	styles.title, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return styles, err
	}

	headerStyle := func(fill string) (int, error) {
		return f.NewStyle(&excelize.Style{
			Font:      &excelize.Font{Bold: true},
			Fill:      patternFill(fill),
			Border:    thinBorder,
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		})
	}
	if styles.header, err = headerStyle(fillHeader); err != nil {
		return styles, err
	}
	if styles.headerHoliday, err = headerStyle(fillHoliday); err != nil {
		return styles, err
	}
	if styles.headerSunday, err = headerStyle(fillSunday); err != nil {
		return styles, err
	}
	if styles.headerSaturday, err = headerStyle(fillSaturday); err != nil {
		return styles, err
	}

	styles.name, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Border:    thinBorder,
		Alignment: &excelize.Alignment{Vertical: "center"},
	})
	if err != nil {
		return styles, err
	}

	cellStyle := func(fill string) (int, error) {
		style := &excelize.Style{
			Border:    thinBorder,
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		}
		if fill != "" {
			style.Fill = patternFill(fill)
		}
		return f.NewStyle(style)
	}
	if styles.cell, err = cellStyle(""); err != nil {
		return styles, err
	}
	if styles.cellHoliday, err = cellStyle(fillHoliday); err != nil {
		return styles, err
	}
	if styles.cellSunday, err = cellStyle(fillSunday); err != nil {
		return styles, err
	}
	if styles.cellSaturday, err = cellStyle(fillSaturday); err != nil {
		return styles, err
	}

	oneDecimal := "0.0"
	styles.total, err = f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true},
		Border:       thinBorder,
		Alignment:    &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		CustomNumFmt: &oneDecimal,
	})
	if err != nil {
		return styles, err
	}

	return styles, nil
}

func patternFill(color string) excelize.Fill {
	return excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1}
}
