package logbook

import "errors"

var (
	ErrEntryNotFound = errors.New("logbook entry not found")
)
