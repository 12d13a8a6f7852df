package tui

import (
	"errors"
	"slices"
)

// AddChild appends child to this view, lays out the children, and
// invalidates the new subtree. A child that already has a parent is moved.
// If child contains the focused view, it takes the focus of this tree.
//
// The child ends up attached to v even when a layout pass fails. Errors
// from re-laying out the former parent are joined with v's own.
func (v *View) AddChild(child *View) error {
	if child == nil {
		panic("tui: AddChild called with nil view")
	}
	if child == v {
		panic("tui: view cannot be its own child")
	}
	for p := v; p != nil; p = p.parent {
		if p == child {
			panic("tui: AddChild would create a cycle in the view tree")
		}
	}
	var detachErr error
	if child.parent != nil {
		detachErr = child.parent.RemoveChild(child)
	}

	child.parent = v
	v.children = append(v.children, child)
	child.setAppRecursive(v.app)

	if focused := child.FocusedView(); focused != nil {
		if existing := v.Root().FocusedView(); existing != nil && existing != focused {
			existing.SetFocus(false)
		}
		for p := v; p != nil; p = p.parent {
			p.focusedChild = focused
		}
	}

	err := v.LayoutChildren()
	child.Invalidate()
	return errors.Join(detachErr, err)
}

// RemoveChild detaches child from this view, removes any focus it holds,
// re-lays out the remaining children, and invalidates the vacated region.
// It does nothing if child is not a child of this view.
func (v *View) RemoveChild(child *View) error {
	i := slices.Index(v.children, child)
	if i < 0 {
		return nil
	}

	if focused := child.FocusedView(); focused != nil {
		focused.SetFocus(false)
	}

	vacated := child.frame
	v.children = slices.Delete(v.children, i, i+1)
	child.parent = nil
	child.setAppRecursive(nil)

	err := v.LayoutChildren()
	v.InvalidateRegion(vacated)
	return err
}

// Children returns the child views in paint order. The slice must not be modified.
func (v *View) Children() []*View {
	return v.children
}

// Parent returns the parent view, or nil for a root.
func (v *View) Parent() *View {
	return v.parent
}

// Root returns the topmost ancestor, which is v itself when it has no parent.
func (v *View) Root() *View {
	root := v
	for root.parent != nil {
		root = root.parent
	}
	return root
}

func (v *View) setAppRecursive(app *Application) {
	if v.app != app {
		v.app = app
		v.id = 0
		if app != nil {
			v.id = app.nextViewID()
		}
	}
	for _, child := range v.children {
		child.setAppRecursive(app)
	}
}
