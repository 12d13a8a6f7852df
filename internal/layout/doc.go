// Package layout holds the geometry primitives shared by the view tree:
// integer character-cell rectangles, points, and the dependency graph used
// to order the per-container layout pass.
// Types are re-exported through the root tui package for public consumption.
package layout
