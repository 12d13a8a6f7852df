package tui

import "slices"

// HasFocus reports whether this view is the focused view of its tree.
func (v *View) HasFocus() bool {
	return v.hasFocus
}

// FocusedView returns the focused view within this subtree: v itself, a
// descendant, or nil.
func (v *View) FocusedView() *View {
	return v.focusedChild
}

// SetFocus focuses or blurs the view and reports whether the view ended up
// in the requested state. Focusing removes focus from whichever view in the
// same tree held it and points every ancestor's focused child at v. Views
// that cannot take focus or are disabled refuse it.
func (v *View) SetFocus(focus bool) bool {
	if focus == v.hasFocus {
		return true
	}
	if !focus {
		v.blur()
		return true
	}
	if !v.canTakeFocus() {
		return false
	}

	for p := v; p != nil; p = p.parent {
		if p.focusedChild != nil {
			p.focusedChild.blur()
			break
		}
	}

	v.hasFocus = true
	for p := v; p != nil; p = p.parent {
		p.focusedChild = v
	}
	if v.onFocus != nil {
		v.onFocus()
	}
	v.Invalidate()
	return true
}

func (v *View) blur() {
	v.hasFocus = false
	for p := v; p != nil; p = p.parent {
		if p.focusedChild == v {
			p.focusedChild = nil
		}
	}
	if v.onBlur != nil {
		v.onBlur()
	}
	v.Invalidate()
}

func (v *View) canTakeFocus() bool {
	return v.canFocus && v.IsEnabled()
}

// FocusFirst focuses the first focusable view in v's subtree, depth first,
// starting with v itself.
func (v *View) FocusFirst() bool {
	if !v.IsEnabled() {
		return false
	}
	if v.canFocus {
		return v.SetFocus(true)
	}
	return v.focusFirstChild()
}

func (v *View) focusFirstChild() bool {
	for _, child := range v.children {
		if child.FocusFirst() {
			return true
		}
	}
	return false
}

// FocusLast focuses the last focusable view in v's subtree, depth first,
// ending with v itself.
func (v *View) FocusLast() bool {
	if !v.IsEnabled() {
		return false
	}
	for i := len(v.children) - 1; i >= 0; i-- {
		if v.children[i].FocusLast() {
			return true
		}
	}
	if v.canFocus {
		return v.SetFocus(true)
	}
	return false
}

// FocusNext focuses the next focusable view after v in depth-first order:
// v's own descendants, then its following siblings, then those of each
// ancestor in turn. It returns false without wrapping when none is left.
func (v *View) FocusNext() bool {
	if v.IsEnabled() && v.focusFirstChild() {
		return true
	}
	for cur := v; cur.parent != nil; cur = cur.parent {
		siblings := cur.parent.children
		i := slices.Index(siblings, cur)
		for _, sibling := range siblings[i+1:] {
			if sibling.FocusFirst() {
				return true
			}
		}
	}
	return false
}

// FocusPrevious focuses the focusable view before v in depth-first order:
// the preceding siblings' subtrees, then the parent, continuing up the tree.
// It returns false without wrapping when none is left.
func (v *View) FocusPrevious() bool {
	for cur := v; cur.parent != nil; cur = cur.parent {
		parent := cur.parent
		i := slices.Index(parent.children, cur)
		for j := i - 1; j >= 0; j-- {
			if parent.children[j].FocusLast() {
				return true
			}
		}
		if parent.canTakeFocus() {
			return parent.SetFocus(true)
		}
	}
	return false
}

// SetOnFocus sets a function called after the view gains focus.
func (v *View) SetOnFocus(fn func()) {
	v.onFocus = fn
}

// SetOnBlur sets a function called after the view loses focus.
func (v *View) SetOnBlur(fn func()) {
	v.onBlur = fn
}
