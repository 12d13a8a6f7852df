package tui

import "fmt"

// LayoutMode selects how a view's frame is determined.
type LayoutMode int

const (
	// LayoutComputed derives the frame from the view's Position and
	// Dimension expressions each time the parent lays out its children.
	LayoutComputed LayoutMode = iota
	// LayoutAbsolute makes the frame authoritative; it only changes via SetFrame.
	LayoutAbsolute
)

func (m LayoutMode) String() string {
	switch m {
	case LayoutComputed:
		return "computed"
	case LayoutAbsolute:
		return "absolute"
	}
	return fmt.Sprintf("LayoutMode(%d)", int(m))
}

// RegionInvalidatedEvent is emitted by a root view when part of it needs repainting.
type RegionInvalidatedEvent struct {
	Source *View
	Region Rect
}

// View is a node in the view tree. It owns its children, has a frame in its
// parent's coordinate space, and a bounds rect for its own local space.
//
// Behaviour is customised with hook functions (SetOnDraw, SetOnKeyDown, ...).
// A view without a given hook does not handle that event and lets it bubble.
//
// Views are not safe for concurrent use. All access must happen on the
// goroutine that runs the Application's loop.
type View struct {
	// Tree structure
	id           int
	app          *Application
	parent       *View
	children     []*View
	focusedChild *View

	// State
	canFocus bool
	hasFocus bool
	enabled  *bool // nil = inherit
	theme    *Theme

	// Geometry
	layoutMode LayoutMode
	frame      Rect
	bounds     Rect
	x, y       Position
	width      Dimension
	height     Dimension

	invalidated Emitter[RegionInvalidatedEvent]

	// Hooks
	onDraw           func(ctx Context, region Rect)
	onPositionCursor func(ctx Context)
	onFocus          func()
	onBlur           func()

	onKeyDown    func(*KeyEvent)
	onKeyUp      func(*KeyEvent)
	onKeyPress   func(*KeyEvent)
	onHotKeyDown func(*KeyEvent)

	onMouseEnter  func(*MouseEvent)
	onMouseLeave  func(*MouseEvent)
	onMouseMove   func(*MouseEvent)
	onMouseDown   func(*MouseEvent)
	onMouseUp     func(*MouseEvent)
	onClick       func(*MouseEvent)
	onDoubleClick func(*MouseEvent)
}

// NewView creates a detached view with computed layout. With no expressions
// set it fills its parent.
func NewView() *View {
	return &View{layoutMode: LayoutComputed}
}

// NewViewWithFrame creates a detached view with absolute layout and the given frame.
func NewViewWithFrame(frame Rect) *View {
	return &View{
		layoutMode: LayoutAbsolute,
		frame:      frame,
		bounds:     NewRect(0, 0, frame.Width, frame.Height),
	}
}

// ID returns the view's identifier within its Application, or 0 when the
// view is not attached to one.
func (v *View) ID() int {
	return v.id
}

// Application returns the Application the view is attached to, or nil.
func (v *View) Application() *Application {
	return v.app
}

func (v *View) String() string {
	if v.id == 0 {
		return fmt.Sprintf("view(%p)", v)
	}
	return fmt.Sprintf("view#%d", v.id)
}

// Invalidated returns the emitter fired when this view is a root and part of
// it is invalidated.
func (v *View) Invalidated() *Emitter[RegionInvalidatedEvent] {
	return &v.invalidated
}

// --- State ---

// CanFocus reports whether the view accepts focus.
func (v *View) CanFocus() bool {
	return v.canFocus
}

// SetCanFocus sets whether the view accepts focus. Clearing it on a focused
// view removes focus.
func (v *View) SetCanFocus(canFocus bool) {
	v.canFocus = canFocus
	if !canFocus && v.hasFocus {
		v.SetFocus(false)
	}
}

// IsEnabled reports whether the view and all of its ancestors are enabled.
func (v *View) IsEnabled() bool {
	for cur := v; cur != nil; cur = cur.parent {
		if cur.enabled != nil && !*cur.enabled {
			return false
		}
	}
	return true
}

// SetEnabled overrides the inherited enabled state. Disabling a view that
// holds or contains the focus removes it.
func (v *View) SetEnabled(enabled bool) {
	if v.enabled != nil && *v.enabled == enabled {
		return
	}
	v.enabled = &enabled
	if !enabled {
		if focused := v.FocusedView(); focused != nil {
			focused.SetFocus(false)
		}
	}
	v.Invalidate()
}

// ClearEnabled removes the override so the view inherits from its parent.
func (v *View) ClearEnabled() {
	if v.enabled == nil {
		return
	}
	v.enabled = nil
	v.Invalidate()
}

// Theme returns the view's theme, inherited from the nearest ancestor that
// has one. Trees without any theme use DosTheme.
func (v *View) Theme() *Theme {
	for cur := v; cur != nil; cur = cur.parent {
		if cur.theme != nil {
			return cur.theme
		}
	}
	if v.app != nil && v.app.theme != nil {
		return v.app.theme
	}
	return defaultTheme
}

// SetTheme overrides the theme for this view and its descendants. nil
// restores inheritance.
func (v *View) SetTheme(theme *Theme) {
	if v.theme == theme {
		return
	}
	v.theme = theme
	v.Invalidate()
}

// State returns the widget state used to pick colors from a ColorScheme.
func (v *View) State(hovered bool) State {
	switch {
	case !v.IsEnabled():
		return StateDisabled
	case v.hasFocus:
		return StateFocused
	case hovered:
		return StateHover
	}
	return StateNormal
}
