package holiday

import (
	"testing"
	"time"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestResolve(t *testing.T) {
	table := Table2024()

	cases := []struct {
		name  string
		date  time.Time
		state GermanState
		want  string // holiday ID, "" for nil
	}{
		{"nationwide holiday", date(2024, 1, 1), Hessen, "neujahr"},
		{"state-specific match", date(2024, 1, 6), Bayern, "heilige-drei-koenige"},
		{"state-specific miss", date(2024, 1, 6), Hessen, ""},
		{"movable row", date(2024, 3, 29), NordrheinWestfalen, "karfreitag"},
		{"ordinary day", date(2024, 7, 17), Bayern, ""},
		{"zero date", time.Time{}, Bayern, ""},
		{"unknown state", date(2024, 1, 1), GermanState("Atlantis"), ""},
	}

	for _, c := range cases {
		got := Resolve(c.date, c.state, table)
		if c.want == "" {
			if got != nil {
				t.Errorf("%s: Resolve = %q, want nil", c.name, got.ID)
			}
			continue
		}
		if got == nil {
			t.Errorf("%s: Resolve = nil, want %q", c.name, c.want)
			continue
		}
		if got.ID != c.want {
			t.Errorf("%s: Resolve = %q, want %q", c.name, got.ID, c.want)
		}
	}
}

func TestResolveMatchesByCalendarDayOnly(t *testing.T) {
	table := Table2024()
	noon := time.Date(2024, 5, 1, 13, 37, 21, 0, time.UTC)
	if got := Resolve(noon, Berlin, table); got == nil || got.ID != "tag-der-arbeit" {
		t.Fatalf("Resolve at 13:37 = %v, want tag-der-arbeit", got)
	}
}

func TestClassify(t *testing.T) {
	table := Table2024()

	cases := []struct {
		name  string
		date  time.Time
		state GermanState
		want  DayKind
	}{
		// 2024-05-01 is a Wednesday but Tag der Arbeit everywhere.
		{"holiday on weekday", date(2024, 5, 1), Hessen, KindHoliday},
		// 2024-03-30 is the Saturday between Karfreitag and Ostersonntag.
		{"plain saturday", date(2024, 3, 30), Hessen, KindSaturday},
		// 2024-03-31 is Ostersonntag, a holiday only in Brandenburg.
		{"holiday beats sunday", date(2024, 3, 31), Brandenburg, KindHoliday},
		{"same sunday elsewhere", date(2024, 3, 31), Hessen, KindSunday},
		{"plain weekday", date(2024, 7, 17), Bayern, KindWeekday},
		{"unknown state falls back to weekday rules", date(2024, 1, 1), GermanState("Atlantis"), KindWeekday},
	}

	for _, c := range cases {
		if got := Classify(c.date, c.state, table); got != c.want {
			t.Errorf("%s: Classify = %q, want %q", c.name, got, c.want)
		}
	}
}

// The shipped table pins movable rows to their 2024 dates; recomputing
// them for 2024 must reproduce the same rows.
func TestMovableForYearMatchesShippedTable(t *testing.T) {
	shipped := map[string]string{}
	for _, h := range Table2024() {
		shipped[h.ID] = h.Date
	}

	for _, h := range MovableForYear(2024) {
		want, ok := shipped[h.ID]
		if !ok {
			t.Errorf("movable row %q missing from shipped table", h.ID)
			continue
		}
		if h.Date != want {
			t.Errorf("movable row %q = %s, want %s", h.ID, h.Date, want)
		}
	}
}

func TestMovableForYear2025(t *testing.T) {
	want := map[string]string{
		"karfreitag":          "04-18",
		"ostersonntag":        "04-20",
		"ostermontag":         "04-21",
		"christi-himmelfahrt": "05-29",
		"pfingstsonntag":      "06-08",
		"pfingstmontag":       "06-09",
		"fronleichnam":        "06-19",
		"buss-und-bettag":     "11-19",
	}
	for _, h := range MovableForYear(2025) {
		if h.Date != want[h.ID] {
			t.Errorf("2025 %q = %s, want %s", h.ID, h.Date, want[h.ID])
		}
	}
}

func TestTableStoreSetYear(t *testing.T) {
	s := NewTableStore(2024)
	if s.Year() != 2024 {
		t.Fatalf("Year = %d, want 2024", s.Year())
	}
	if s.SetYear(2024) {
		t.Error("SetYear(2024) on a 2024 store should be a no-op")
	}
	if !s.SetYear(2025) {
		t.Error("SetYear(2025) should report a refresh")
	}
	if got := Resolve(date(2025, 4, 18), Hessen, s.Table()); got == nil || got.ID != "karfreitag" {
		t.Errorf("after SetYear(2025): Resolve(2025-04-18) = %v, want karfreitag", got)
	}
}

func TestIsValidState(t *testing.T) {
	if !IsValidState(BadenWuerttemberg) {
		t.Error("IsValidState(Baden-Württemberg) = false, want true")
	}
	if IsValidState(GermanState("Bavaria")) {
		t.Error("IsValidState(Bavaria) = true, want false")
	}
	if len(AllStates()) != 16 {
		t.Errorf("AllStates() has %d entries, want 16", len(AllStates()))
	}
}
