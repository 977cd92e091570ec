package holiday

import "sync"

// TableStore holds the active holiday table. The table itself stays a
// plain list of literal "MM-DD" rows; the store only controls which
// year's movable rows are swapped in. Refresh is explicit, the resolver
// never recomputes dates behind the caller's back.
type TableStore struct {
	mu    sync.RWMutex
	year  int
	table []Holiday
}

func NewTableStore(year int) *TableStore {
	return &TableStore{
		year:  year,
		table: TableForYear(year),
	}
}

// Table returns the active table.
func (s *TableStore) Table() []Holiday {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table
}

// Year returns the year whose movable rows are active.
func (s *TableStore) Year() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.year
}

// SetYear recomputes the movable rows for the given year. No-op when
// the year is already active.
func (s *TableStore) SetYear(year int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if year == s.year {
		return false
	}
	s.year = year
	s.table = TableForYear(year)
	return true
}
