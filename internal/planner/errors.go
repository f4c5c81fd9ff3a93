package planner

import "errors"

// All planner errors are recoverable, user-correctable conditions. They are
// surfaced to the presentation layer and never fatal to the process. Callers
// match them with errors.Is.
var (
	// ErrInsufficientTasks is returned when a plan lock is attempted with
	// fewer items than the configured minimum.
	ErrInsufficientTasks = errors.New("not enough tasks planned")

	// ErrMissingStatus is returned when a check-in is submitted while an
	// item has no status yet.
	ErrMissingStatus = errors.New("item has no status")

	// ErrMissingJustification is returned when a not_yet or skipped item
	// carries neither a reason nor a note.
	ErrMissingJustification = errors.New("item needs a reason or a note")

	// ErrTaskNotFound is returned for operations referencing an unknown
	// task id.
	ErrTaskNotFound = errors.New("task not found")

	// ErrItemNotFound is returned for operations referencing an unknown
	// plan item id.
	ErrItemNotFound = errors.New("plan item not found")

	// ErrInvalidStatus is returned when an unknown status value is assigned.
	ErrInvalidStatus = errors.New("invalid item status")
)
