package holiday

import "time"

// Holiday is one row of the public-holiday table. Date is "MM-DD"; for
// movable feast days it is the literal date computed for one specific
// year, so movable rows must be refreshed yearly (see MovableForYear).
type Holiday struct {
	ID     string
	Name   string
	Date   string // "MM-DD"
	States []GermanState
}

// ObservedIn reports whether the holiday applies in the given state.
func (h Holiday) ObservedIn(state GermanState) bool {
	for _, s := range h.States {
		if s == state {
			return true
		}
	}
	return false
}

// Resolve returns the first table entry observed in state on the given
// calendar date, or nil. A zero date or an unrecognized state resolves
// to nil rather than an error: a bad record must never abort an export,
// the day just falls back to ordinary weekday treatment.
func Resolve(date time.Time, state GermanState, table []Holiday) *Holiday {
	if date.IsZero() || !IsValidState(state) {
		return nil
	}
	key := date.Format("01-02")
	for i := range table {
		if table[i].Date == key && table[i].ObservedIn(state) {
			return &table[i]
		}
	}
	return nil
}
