package shift

import "errors"

var (
	ErrShiftDefinitionNotFound = errors.New("shift definition not found")
	ErrShiftTitleExists        = errors.New("shift definition with this title already exists")
	ErrAssignmentNotFound      = errors.New("shift assignment not found")
)
