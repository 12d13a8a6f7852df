package tui

import (
	"errors"
	"fmt"
)

var (
	// ErrNotSibling is returned by a layout pass when a child's expression
	// refers to a view that is not another child of the same parent.
	ErrNotSibling = errors.New("tui: view dependencies must be siblings")

	// ErrOutOfBounds is returned when the drawing cursor is moved outside a context.
	ErrOutOfBounds = errors.New("tui: position out of bounds")

	// ErrClipOutside is returned when a clip region does not overlap the context bounds.
	ErrClipOutside = errors.New("tui: clip region does not fall within bounds")

	// ErrNoApplication is returned when an operation needs the view to be
	// attached to an Application.
	ErrNoApplication = errors.New("tui: view is not part of an application")

	// ErrAlreadyAttached is returned when a view is shown by a second Application.
	ErrAlreadyAttached = errors.New("tui: view is already part of a different application")

	// ErrNotRunning is returned when starting an Application that was stopped.
	ErrNotRunning = errors.New("tui: application is not running")

	// ErrNotTopModal is returned when dismissing a modal that is covered by another.
	ErrNotTopModal = errors.New("tui: modal is not the topmost modal")
)

// ParseError reports a Position or Dimension literal that could not be parsed.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("tui: unable to parse value %q", e.Input)
}

// RangeError reports a percentage outside 0..100.
type RangeError struct {
	Value float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("tui: percentage must be between 0 and 100, got %g", e.Value)
}
