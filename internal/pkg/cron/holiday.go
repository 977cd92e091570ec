package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/dienstpilot/dienstpilot-backend-go/internal/pkg/holiday"
)

// NewHolidayTableJob keeps the movable holiday rows in sync with the
// calendar year. Movable rows are literal dates valid for one year
// only, so the table has to roll over at New Year.
func NewHolidayTableJob(tables *holiday.TableStore) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		year := time.Now().Year()
		if tables.SetYear(year) {
			slog.Info("Holiday table refreshed", "year", year)
		}
		return nil
	}
}
