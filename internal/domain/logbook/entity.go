package logbook

import "time"

// Entry is one dated logbook note of a store.
type Entry struct {
	ID        string
	StoreID   string
	Date      time.Time
	Author    string
	Text      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
