// layout.go re-exports geometry types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package tui

import "github.com/grindlemire/go-tui-retained/internal/layout"

// Rect represents a rectangle with position and dimensions in character cells.
// Right and Bottom are exclusive.
type Rect = layout.Rect

// Point represents an (X, Y) cell coordinate.
type Point = layout.Point

// CycleError is returned when sibling layout dependencies form a cycle.
type CycleError = layout.CycleError

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}
