package holiday

import (
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/de"
)

// MovableForYear computes the Easter- and Pentecost-dependent rows for
// one year. The table keeps its literal "MM-DD" shape on purpose: the
// resolver never computes dates itself, callers swap in refreshed rows
// when the plan year changes.
func MovableForYear(year int) []Holiday {
	karfreitag := calcDate(de.Karfreitag, year)
	pfingstmontag := calcDate(de.Pfingstmontag, year)

	return []Holiday{
		{ID: "karfreitag", Name: "Karfreitag", Date: monthDay(karfreitag), States: AllStates()},
		{ID: "ostersonntag", Name: "Ostersonntag", Date: monthDay(karfreitag.AddDate(0, 0, 2)), States: []GermanState{Brandenburg}},
		{ID: "ostermontag", Name: "Ostermontag", Date: monthDay(karfreitag.AddDate(0, 0, 3)), States: AllStates()},
		{ID: "christi-himmelfahrt", Name: "Christi Himmelfahrt", Date: monthDay(calcDate(de.ChristiHimmelfahrt, year)), States: AllStates()},
		{ID: "pfingstsonntag", Name: "Pfingstsonntag", Date: monthDay(pfingstmontag.AddDate(0, 0, -1)), States: []GermanState{Brandenburg}},
		{ID: "pfingstmontag", Name: "Pfingstmontag", Date: monthDay(pfingstmontag), States: AllStates()},
		{ID: "fronleichnam", Name: "Fronleichnam", Date: monthDay(calcDate(de.Fronleichnam, year)), States: []GermanState{BadenWuerttemberg, Bayern, Hessen, NordrheinWestfalen, RheinlandPfalz, Saarland}},
		{ID: "buss-und-bettag", Name: "Buß- und Bettag", Date: monthDay(calcDate(de.BussUndBettag, year)), States: []GermanState{Sachsen}},
	}
}

func calcDate(h *cal.Holiday, year int) time.Time {
	actual, _ := h.Calc(year)
	return actual
}

func monthDay(t time.Time) string {
	return t.Format("01-02")
}
