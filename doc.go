// Package tui is a retained-mode toolkit for character-grid user interfaces.
//
// Views form a tree. Each view has a frame in its parent's coordinate space,
// either set directly or computed from Position and Dimension expressions
// that may refer to sibling views. Mutations invalidate regions that bubble to
// the root, where an Application coalesces them and repaints once per tick
// through a clipped drawing Context. Input is hit-tested into the tree and
// bubbled up the ancestor chain until a handler marks it handled.
//
// All tree access must happen on the Application's loop goroutine; use
// Application.QueueUpdate from other goroutines.
package tui
