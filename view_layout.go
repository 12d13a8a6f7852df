package tui

import (
	"fmt"

	"github.com/grindlemire/go-tui-retained/internal/layout"
)

// Frame returns the view's rectangle in its parent's coordinate space.
func (v *View) Frame() Rect {
	return v.frame
}

// Bounds returns the view's local rectangle, always at origin (0, 0).
func (v *View) Bounds() Rect {
	return v.bounds
}

// ScreenRect returns the frame translated into the root's coordinate space.
func (v *View) ScreenRect() Rect {
	r := v.frame
	for p := v.parent; p != nil; p = p.parent {
		r = r.Translate(p.frame.X, p.frame.Y)
	}
	return r
}

// X returns the x expression.
func (v *View) X() Position { return v.x }

// Y returns the y expression.
func (v *View) Y() Position { return v.y }

// Width returns the width expression.
func (v *View) Width() Dimension { return v.width }

// Height returns the height expression.
func (v *View) Height() Dimension { return v.height }

// SetX sets the x expression and switches the view to computed layout.
func (v *View) SetX(x Position) error {
	if v.x.Equal(x) && v.layoutMode == LayoutComputed {
		return nil
	}
	v.x = x
	return v.expressionsChanged()
}

// SetY sets the y expression and switches the view to computed layout.
func (v *View) SetY(y Position) error {
	if v.y.Equal(y) && v.layoutMode == LayoutComputed {
		return nil
	}
	v.y = y
	return v.expressionsChanged()
}

// SetWidth sets the width expression and switches the view to computed layout.
func (v *View) SetWidth(width Dimension) error {
	if v.width.Equal(width) && v.layoutMode == LayoutComputed {
		return nil
	}
	v.width = width
	return v.expressionsChanged()
}

// SetHeight sets the height expression and switches the view to computed layout.
func (v *View) SetHeight(height Dimension) error {
	if v.height.Equal(height) && v.layoutMode == LayoutComputed {
		return nil
	}
	v.height = height
	return v.expressionsChanged()
}

// SetLayout sets all four expressions with a single layout pass.
func (v *View) SetLayout(x, y Position, width, height Dimension) error {
	if v.layoutMode == LayoutComputed && v.x.Equal(x) && v.y.Equal(y) &&
		v.width.Equal(width) && v.height.Equal(height) {
		return nil
	}
	v.x, v.y, v.width, v.height = x, y, width, height
	return v.expressionsChanged()
}

func (v *View) expressionsChanged() error {
	v.layoutMode = LayoutComputed
	if v.parent == nil {
		return nil
	}
	return v.parent.LayoutChildren()
}

// LayoutMode returns how the view's frame is determined.
func (v *View) LayoutMode() LayoutMode {
	return v.layoutMode
}

// SetLayoutMode switches between absolute and computed layout. Switching to
// computed re-lays out the parent's children.
func (v *View) SetLayoutMode(mode LayoutMode) error {
	if v.layoutMode == mode {
		return nil
	}
	v.layoutMode = mode
	if mode == LayoutComputed && v.parent != nil {
		return v.parent.LayoutChildren()
	}
	return nil
}

// SetFrame sets the frame directly and switches the view to absolute layout.
// Siblings whose expressions depend on this view are re-laid out.
func (v *View) SetFrame(frame Rect) error {
	v.layoutMode = LayoutAbsolute
	if v.frame.Equal(frame) {
		return nil
	}
	if err := v.setFrame(frame); err != nil {
		return err
	}
	if v.parent != nil {
		return v.parent.LayoutChildren()
	}
	return nil
}

// setFrame stores frame, invalidating the old and new regions and laying out
// the children when the size changed.
func (v *View) setFrame(frame Rect) error {
	if v.frame.Equal(frame) {
		return nil
	}
	previous := v.frame
	v.frame = frame
	if v.parent != nil {
		v.parent.InvalidateRegion(previous)
	}
	v.bounds = NewRect(0, 0, frame.Width, frame.Height)

	var err error
	if !previous.SizeEqual(frame) {
		err = v.LayoutChildren()
	}
	v.Invalidate()
	return err
}

// RecalculateFrame resolves the view's expressions against host, the
// parent's bounds, and applies the result. Absolute views are left alone.
func (v *View) RecalculateFrame(host Rect) error {
	if v.layoutMode != LayoutComputed {
		return nil
	}
	x, width := resolveAxis(v.x, v.width, host.Width)
	y, height := resolveAxis(v.y, v.height, host.Height)
	return v.setFrame(NewRect(host.X+x, host.Y+y, width, height))
}

// resolveAxis evaluates one axis. When each expression needs the other, the
// position is taken against the full extent and the size measured from zero.
func resolveAxis(pos Position, size Dimension, extent int) (int, int) {
	var p, s int
	switch {
	case pos.NeedsSize() && size.NeedsPosition():
		p = pos.AbsoluteValue(extent, extent)
		s = size.AbsoluteValue(extent, 0)
	case pos.NeedsSize():
		s = extent
		if size.IsSet() {
			s = size.AbsoluteValue(extent, 0)
		}
		p = pos.AbsoluteValue(extent, max(s, 0))
	default:
		if pos.IsSet() {
			p = pos.AbsoluteValue(extent, 0)
		}
		s = extent
		if size.IsSet() {
			s = size.AbsoluteValue(extent, p)
		}
	}
	return p, max(s, 0)
}

// dependencies returns every view referenced by the four expressions.
func (v *View) dependencies() []*View {
	var deps []*View
	deps = append(deps, v.x.Dependencies()...)
	deps = append(deps, v.y.Dependencies()...)
	deps = append(deps, v.width.Dependencies()...)
	deps = append(deps, v.height.Dependencies()...)
	return deps
}

// LayoutChildren recomputes the frames of all computed children, ordering
// them so a child is resolved after every sibling its expressions read.
//
// It returns an error wrapping ErrNotSibling when an expression refers to a
// view that is not another child of v, or a *CycleError when the siblings
// depend on each other in a loop. In both cases no frame is changed.
func (v *View) LayoutChildren() error {
	if v.frame.IsEmpty() || len(v.children) == 0 {
		return nil
	}

	g := layout.NewGraph[*View]()
	for _, child := range v.children {
		g.AddNode(child)
	}
	for _, child := range v.children {
		for _, dep := range child.dependencies() {
			if dep == nil || dep.parent != v {
				return fmt.Errorf("%w: %s depends on %s", ErrNotSibling, child, viewLabel(dep))
			}
			g.AddEdge(dep, child)
		}
	}

	order, err := g.TopologicalSort()
	if err != nil {
		return fmt.Errorf("tui: laying out children of %s: %w", v, err)
	}

	for _, child := range order {
		if child.layoutMode != LayoutComputed {
			continue
		}
		if err := child.RecalculateFrame(v.bounds); err != nil {
			return err
		}
	}
	return nil
}
