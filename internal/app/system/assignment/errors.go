// internal/app/system/assignment/errors.go
package assignment

import (
	"errors"
	"fmt"
)

var (
	// ErrInternNotFound is returned when the intern id is unknown.
	ErrInternNotFound = errors.New("intern not found")

	// ErrProjectNotFound is returned when the project id is unknown.
	ErrProjectNotFound = errors.New("project not found")

	// ErrAlreadyAssigned is returned by Assign when the pair is already
	// associated.
	ErrAlreadyAssigned = errors.New("intern is already assigned to this project")

	// ErrNotAssigned is returned by Unassign when the pair is not
	// currently associated.
	ErrNotAssigned = errors.New("intern is not assigned to this project")
)

// PartialError reports a two-step mutation that half-completed: the first
// side's list was updated but the second side's update failed. The two
// reference lists now disagree until the caller re-issues the operation.
//
// This must never be collapsed into a generic failure (let alone reported
// as success); handlers surface it distinctly so the caller knows a
// retry is both safe and needed.
type PartialError struct {
	Op     string // "assign", "unassign", "delete-intern", "delete-project"
	Done   string // step that succeeded
	Failed string // step that failed
	Err    error
}

func (e *PartialError) Error() string {
	return fmt.Sprintf("%s half-completed: %s list updated but %s update failed: %v",
		e.Op, e.Done, e.Failed, e.Err)
}

func (e *PartialError) Unwrap() error { return e.Err }
