package employee

import "time"

type Employee struct {
	ID        string
	StoreID   string
	FirstName string
	LastName  string
	SortOrder int
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// FullName is the display name used in plan grids and exports.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
