package export

import (
	"fmt"
	"time"

	"github.com/dienstpilot/dienstpilot-backend-go/internal/pkg/holiday"
)

// Day is one classified day column of the export. The classification is
// per day, independent of any employee row.
type Day struct {
	Date time.Time
	Kind holiday.DayKind
}

const (
	ContentTypeSpreadsheet = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypeDocument    = "application/pdf"
)

var germanMonths = [12]string{
	"Januar", "Februar", "März", "April", "Mai", "Juni",
	"Juli", "August", "September", "Oktober", "November", "Dezember",
}

// GermanMonthYear formats a month as e.g. "März 2024".
func GermanMonthYear(month time.Time) string {
	return fmt.Sprintf("%s %d", germanMonths[month.Month()-1], month.Year())
}

// SpreadsheetFilename names the XLSX artifact. The spreadsheet uses the
// German month name, the document format uses "yyyy-MM"; the two
// formats differ on purpose and are kept as they always were.
func SpreadsheetFilename(storeName string, month time.Time) string {
	return fmt.Sprintf("Arbeitsplan_%s_%s.xlsx", storeName, GermanMonthYear(month))
}

// DocumentFilename names the PDF artifact.
func DocumentFilename(storeName string, month time.Time) string {
	return fmt.Sprintf("Arbeitsplan_%s_%s.pdf", storeName, month.Format("2006-01"))
}
