package shift

import "time"

// ShiftDefinition describes one kind of shift a store plans with, e.g.
// "Frühschicht" or "Urlaub". Definitions with ExcludeFromCalculations
// set still show up in the plan grid but never count toward the monthly
// hour total.
type ShiftDefinition struct {
	ID                      string
	StoreID                 string
	Title                   string
	StartTime               *string // "HH:MM"
	EndTime                 *string // "HH:MM"
	WorkHours               *float64
	ExcludeFromCalculations bool
	SortOrder               int
	CreatedAt               time.Time
	UpdatedAt               time.Time
	DeletedAt               *time.Time
}

// ShiftAssignment puts one employee on one shift on one calendar day.
// Several assignments per employee and day are legal.
type ShiftAssignment struct {
	ID         string
	StoreID    string
	EmployeeID string
	ShiftID    string
	Date       time.Time // calendar day, time-of-day is ignored
	WorkHours  float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
