package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dienstpilot/dienstpilot-backend-go/internal/domain/plan"
	"github.com/dienstpilot/dienstpilot-backend-go/internal/domain/store"
	"github.com/dienstpilot/dienstpilot-backend-go/internal/pkg/holiday"
	"github.com/go-pdf/fpdf"
)

const (
	pageMargin  = 10.0
	nameColW    = 38.0
	totalColW   = 16.0
	lineHeight  = 4.5
	headerH     = 7.0
	pageBreakAt = 190.0
)

type dayFill struct{ r, g, b int }

func fillFor(kind holiday.DayKind) (dayFill, bool) {
	switch kind {
	case holiday.KindHoliday:
		return dayFill{255, 199, 206}, true
	case holiday.KindSunday:
		return dayFill{244, 176, 132}, true
	case holiday.KindSaturday:
		return dayFill{217, 217, 217}, true
	}
	return dayFill{}, false
}

// Document renders the monthly grid as a paginated landscape PDF. Cell
// backgrounds follow the same four-way day classification as the
// spreadsheet, holiday over weekend.
func Document(grid plan.MonthlyGrid, days []Day, s store.Store) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(false, pageMargin)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	dayColW := (pageW - 2*pageMargin - nameColW - totalColW) / float64(len(days))

	drawTitle := func() {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.SetXY(pageMargin, pageMargin)
		title := fmt.Sprintf("Arbeitsplan %s – %s", s.Name, GermanMonthYear(grid.Month))
		pdf.CellFormat(pageW-2*pageMargin, 8, tr(title), "", 1, "C", false, 0, "")
	}

	drawHeader := func(y float64) float64 {
		pdf.SetFont("Helvetica", "B", 7)
		pdf.SetFillColor(221, 235, 247)
		pdf.SetXY(pageMargin, y)
		pdf.CellFormat(nameColW, headerH, "Mitarbeiter", "1", 0, "C", true, 0, "")
		for _, day := range days {
			if f, ok := fillFor(day.Kind); ok {
				pdf.SetFillColor(f.r, f.g, f.b)
			} else {
				pdf.SetFillColor(221, 235, 247)
			}
			pdf.CellFormat(dayColW, headerH, fmt.Sprintf("%d", day.Date.Day()), "1", 0, "C", true, 0, "")
		}
		pdf.SetFillColor(221, 235, 247)
		pdf.CellFormat(totalColW, headerH, "Std.", "1", 1, "C", true, 0, "")
		return y + headerH
	}

	drawTitle()
	y := drawHeader(pageMargin + 10)

	pdf.SetFont("Helvetica", "", 6.5)
	for _, row := range grid.Rows {
		// Row height follows the tallest cell of the row.
		maxLines := 1
		for _, cell := range row.DayCells {
			if n := countLines(cell); n > maxLines {
				maxLines = n
			}
		}
		rowH := float64(maxLines) * lineHeight
		if rowH < headerH {
			rowH = headerH
		}

		if y+rowH > pageBreakAt {
			pdf.AddPage()
			drawTitle()
			y = drawHeader(pageMargin + 10)
			pdf.SetFont("Helvetica", "", 6.5)
		}

		x := pageMargin
		drawCell(pdf, x, y, nameColW, rowH, tr(row.EmployeeName), "L", dayFill{}, false)
		x += nameColW

		for i, day := range days {
			f, filled := fillFor(day.Kind)
			drawCell(pdf, x, y, dayColW, rowH, tr(row.DayCells[i]), "C", f, filled)
			x += dayColW
		}

		total := fmt.Sprintf("%.1f", row.TotalHours)
		drawCell(pdf, x, y, totalColW, rowH, total, "C", dayFill{}, false)
		y += rowH
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate document: %w", err)
	}
	return buf.Bytes(), nil
}

// drawCell paints the background and border as one rect, then lays the
// text lines over it. MultiCell's own borders would rule every line.
func drawCell(pdf *fpdf.Fpdf, x, y, w, h float64, text, align string, f dayFill, filled bool) {
	if filled {
		pdf.SetFillColor(f.r, f.g, f.b)
		pdf.Rect(x, y, w, h, "FD")
	} else {
		pdf.Rect(x, y, w, h, "D")
	}
	if text == "" {
		return
	}
	pdf.SetXY(x, y+1)
	pdf.MultiCell(w, lineHeight, text, "", align, false)
}

func countLines(s string) int {
	if s == "" {
		return 1
	}
	return strings.Count(s, "\n") + 1
}
