package backlog

import (
	"errors"
	"fmt"
)

// Domain errors for the export pipeline.
var (
	// ErrNotFound indicates a referenced id is absent from its collection.
	ErrNotFound = errors.New("not found")

	// ErrEmptyCollection indicates a valid bulk-export root has zero
	// exportable descendant tasks.
	ErrEmptyCollection = errors.New("no exportable tasks")

	// ErrInvalidTransition indicates a task status transition is not allowed.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// NotFoundError reports which id was missing from which collection.
type NotFoundError struct {
	Kind TargetType
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// Is allows errors.Is to work with NotFoundError.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// EmptyCollectionError reports a bulk-export root with no descendant tasks.
// Distinct from NotFoundError so callers can show "nothing to export"
// rather than "target missing".
type EmptyCollectionError struct {
	Kind TargetType
	ID   string
}

func (e *EmptyCollectionError) Error() string {
	if e.ID == "" {
		return "no tasks found in the backlog"
	}
	return fmt.Sprintf("no tasks found for %s %q", e.Kind, e.ID)
}

// Is allows errors.Is to work with EmptyCollectionError.
func (e *EmptyCollectionError) Is(target error) bool {
	return target == ErrEmptyCollection
}

// TransitionError provides details about an invalid task transition.
type TransitionError struct {
	TaskID     string
	FromStatus TaskStatus
	Event      string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot apply %q to task %s in status %q", e.Event, e.TaskID, e.FromStatus)
}

// Is allows errors.Is to work with TransitionError.
func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}
