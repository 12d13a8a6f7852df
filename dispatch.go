package tui

import "time"

const (
	defaultDoubleClickTime     = 500 * time.Millisecond
	defaultDoubleClickDistance = 1
)

// FindTarget returns the deepest view under (x, y), given in root's parent
// coordinates, along with the point in that view's local coordinates. Later
// children are tested first, so the topmost view wins where siblings
// overlap. It returns nil when the point is outside root.
func FindTarget(root *View, x, y int) (*View, int, int) {
	if root == nil || !root.frame.Contains(x, y) {
		return nil, 0, 0
	}
	lx, ly := x-root.frame.X, y-root.frame.Y
	for i := len(root.children) - 1; i >= 0; i-- {
		if target, tx, ty := FindTarget(root.children[i], lx, ly); target != nil {
			return target, tx, ty
		}
	}
	return root, lx, ly
}

// Dispatcher routes normalized input into a view tree. It remembers which
// view is hovered and which received the last button press, so it must be
// used for a single stream of input.
type Dispatcher struct {
	hovered *View
	pressed *View

	lastClick     *View
	lastClickTime time.Time
	lastClickX    int
	lastClickY    int

	doubleClickTime     time.Duration
	doubleClickDistance int
	now                 func() time.Time
}

// NewDispatcher creates a Dispatcher with the default double click timing.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		doubleClickTime:     defaultDoubleClickTime,
		doubleClickDistance: defaultDoubleClickDistance,
		now:                 time.Now,
	}
}

// Hovered returns the view currently under the pointer.
func (d *Dispatcher) Hovered() *View {
	return d.hovered
}

// Reset forgets hover and press state, firing leave on the hovered view.
// It is used when the tree receiving input changes.
func (d *Dispatcher) Reset() {
	if d.hovered != nil {
		d.fireDirect(d.hovered, MouseInput{Type: MouseEventLeave})
	}
	d.hovered = nil
	d.pressed = nil
	d.lastClick = nil
}

// DispatchMouse hit-tests in against root and delivers it. Moves update the
// hover state first. A release over the view that received the press also
// produces a click, and a second click soon after on the same view produces
// a double click. It reports whether any handler marked the event handled.
func (d *Dispatcher) DispatchMouse(root *View, in MouseInput) bool {
	target, _, _ := FindTarget(root, in.X, in.Y)

	switch in.Type {
	case MouseEventMove:
		d.updateHover(target, in)
		return bubbleMouse(target, in)

	case MouseEventDown:
		d.updateHover(target, in)
		d.pressed = target
		return bubbleMouse(target, in)

	case MouseEventUp:
		handled := bubbleMouse(target, in)
		pressed := d.pressed
		d.pressed = nil
		if target == nil || target != pressed {
			return handled
		}

		click := in
		click.Type = MouseEventClick
		if bubbleMouse(target, click) {
			handled = true
		}
		if d.isDoubleClick(target, in) {
			d.lastClick = nil
			click.Type = MouseEventDoubleClick
			if bubbleMouse(target, click) {
				handled = true
			}
			return handled
		}
		d.lastClick = target
		d.lastClickTime = d.now()
		d.lastClickX, d.lastClickY = in.X, in.Y
		return handled

	default:
		return bubbleMouse(target, in)
	}
}

func (d *Dispatcher) isDoubleClick(target *View, in MouseInput) bool {
	if d.lastClick != target {
		return false
	}
	if d.now().Sub(d.lastClickTime) > d.doubleClickTime {
		return false
	}
	return abs(in.X-d.lastClickX) <= d.doubleClickDistance &&
		abs(in.Y-d.lastClickY) <= d.doubleClickDistance
}

func (d *Dispatcher) updateHover(target *View, in MouseInput) {
	if target == d.hovered {
		return
	}
	previous := d.hovered
	d.hovered = target
	if previous != nil {
		leave := in
		leave.Type = MouseEventLeave
		d.fireDirect(previous, leave)
	}
	if target != nil {
		enter := in
		enter.Type = MouseEventEnter
		d.fireDirect(target, enter)
	}
}

// fireDirect delivers in to v only, without bubbling.
func (d *Dispatcher) fireDirect(v *View, in MouseInput) {
	h := v.mouseHandler(in.Type)
	if h == nil || !v.IsEnabled() {
		return
	}
	origin := v.ScreenRect()
	h(&MouseEvent{
		MouseInput: in,
		Source:     v,
		Current:    v,
		LocalX:     in.X - origin.X,
		LocalY:     in.Y - origin.Y,
	})
}

// bubbleMouse walks from target to the root, calling each enabled view's
// handler for in.Type until one marks the event handled.
func bubbleMouse(target *View, in MouseInput) bool {
	ev := &MouseEvent{MouseInput: in, Source: target}
	for v := target; v != nil; v = v.parent {
		h := v.mouseHandler(in.Type)
		if h == nil || !v.IsEnabled() {
			continue
		}
		origin := v.ScreenRect()
		ev.Current = v
		ev.LocalX, ev.LocalY = in.X-origin.X, in.Y-origin.Y
		h(ev)
		if ev.Handled {
			return true
		}
	}
	return false
}

// DispatchKey delivers in to the focused view of root, or root itself when
// nothing is focused, and bubbles it up. Alt key presses are first offered
// as hot keys to every view in the tree. It reports whether any handler
// marked the event handled.
func (d *Dispatcher) DispatchKey(root *View, in KeyInput) bool {
	if root == nil {
		return false
	}
	target := root.FocusedView()
	if target == nil {
		target = root
	}
	if in.Type == KeyEventDown && in.Mod.Has(ModAlt) {
		hot := in
		hot.Type = KeyEventHotKey
		if dispatchHotKey(root, &KeyEvent{KeyInput: hot, Source: target}) {
			return true
		}
	}
	return bubbleKey(target, in)
}

// dispatchHotKey offers ev to every enabled view with a hot-key handler,
// depth first, until one handles it.
func dispatchHotKey(v *View, ev *KeyEvent) bool {
	if !v.IsEnabled() {
		return false
	}
	if v.onHotKeyDown != nil {
		ev.Current = v
		v.onHotKeyDown(ev)
		if ev.Handled {
			return true
		}
	}
	for _, child := range v.children {
		if dispatchHotKey(child, ev) {
			return true
		}
	}
	return false
}

func bubbleKey(target *View, in KeyInput) bool {
	ev := &KeyEvent{KeyInput: in, Source: target}
	for v := target; v != nil; v = v.parent {
		h := v.keyHandler(in.Type)
		if h == nil || !v.IsEnabled() {
			continue
		}
		ev.Current = v
		h(ev)
		if ev.Handled {
			return true
		}
	}
	return false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
