package holiday

import "time"

// DayKind is the four-way classification the exporters color cells by.
type DayKind string

const (
	KindHoliday  DayKind = "holiday"
	KindSunday   DayKind = "sunday"
	KindSaturday DayKind = "saturday"
	KindWeekday  DayKind = "weekday"
)

// Classify returns the kind of the given day for a state. Holiday wins
// over the weekend kinds: a holiday falling on a Saturday or Sunday is
// still reported as holiday so its coloring stays visible.
func Classify(date time.Time, state GermanState, table []Holiday) DayKind {
	if Resolve(date, state, table) != nil {
		return KindHoliday
	}
	switch date.Weekday() {
	case time.Sunday:
		return KindSunday
	case time.Saturday:
		return KindSaturday
	}
	return KindWeekday
}
