package tui

// SetOnKeyDown sets the handler for key presses reaching this view.
func (v *View) SetOnKeyDown(fn func(*KeyEvent)) {
	v.onKeyDown = fn
}

// SetOnKeyUp sets the handler for key releases reaching this view.
func (v *View) SetOnKeyUp(fn func(*KeyEvent)) {
	v.onKeyUp = fn
}

// SetOnKeyPress sets the handler for character input reaching this view.
func (v *View) SetOnKeyPress(fn func(*KeyEvent)) {
	v.onKeyPress = fn
}

// SetOnHotKeyDown sets the handler for Alt chords. Hot keys are offered to
// every view in the tree, not only the focused chain.
func (v *View) SetOnHotKeyDown(fn func(*KeyEvent)) {
	v.onHotKeyDown = fn
}

// SetOnMouseEnter sets the handler called when the pointer starts hovering
// this view. It does not bubble.
func (v *View) SetOnMouseEnter(fn func(*MouseEvent)) {
	v.onMouseEnter = fn
}

// SetOnMouseLeave sets the handler called when the pointer stops hovering
// this view. It does not bubble.
func (v *View) SetOnMouseLeave(fn func(*MouseEvent)) {
	v.onMouseLeave = fn
}

// SetOnMouseMove sets the handler for pointer movement.
func (v *View) SetOnMouseMove(fn func(*MouseEvent)) {
	v.onMouseMove = fn
}

// SetOnMouseDown sets the handler for button presses.
func (v *View) SetOnMouseDown(fn func(*MouseEvent)) {
	v.onMouseDown = fn
}

// SetOnMouseUp sets the handler for button releases.
func (v *View) SetOnMouseUp(fn func(*MouseEvent)) {
	v.onMouseUp = fn
}

// SetOnClick sets the handler for clicks.
func (v *View) SetOnClick(fn func(*MouseEvent)) {
	v.onClick = fn
}

// SetOnDoubleClick sets the handler for double clicks.
func (v *View) SetOnDoubleClick(fn func(*MouseEvent)) {
	v.onDoubleClick = fn
}

func (v *View) keyHandler(t KeyEventType) func(*KeyEvent) {
	switch t {
	case KeyEventDown:
		return v.onKeyDown
	case KeyEventUp:
		return v.onKeyUp
	case KeyEventPress:
		return v.onKeyPress
	case KeyEventHotKey:
		return v.onHotKeyDown
	}
	return nil
}

func (v *View) mouseHandler(t MouseEventType) func(*MouseEvent) {
	switch t {
	case MouseEventMove:
		return v.onMouseMove
	case MouseEventDown:
		return v.onMouseDown
	case MouseEventUp:
		return v.onMouseUp
	case MouseEventClick:
		return v.onClick
	case MouseEventDoubleClick:
		return v.onDoubleClick
	case MouseEventEnter:
		return v.onMouseEnter
	case MouseEventLeave:
		return v.onMouseLeave
	}
	return nil
}
