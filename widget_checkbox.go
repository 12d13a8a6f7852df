package tui

// CheckBox is a focusable toggle drawn as "[x] text". Clicking it or
// pressing Space toggles it and emits on Changed.
type CheckBox struct {
	*View
	text    string
	checked bool
	hovered bool
	changed Emitter[ValueChangedEvent[bool]]
}

// NewCheckBox creates a check box sized to its text.
func NewCheckBox(text string, checked bool) *CheckBox {
	c := &CheckBox{View: NewView(), text: text, checked: checked}
	c.canFocus = true
	c.width = Sized(checkBoxWidth(text))
	c.height = Sized(1)

	c.SetOnDraw(c.draw)
	c.SetOnPositionCursor(func(ctx Context) { _ = ctx.MoveCursor(1, 0) })
	c.SetOnMouseEnter(func(*MouseEvent) { c.setHovered(true) })
	c.SetOnMouseLeave(func(*MouseEvent) { c.setHovered(false) })
	c.SetOnMouseDown(func(*MouseEvent) { c.SetFocus(true) })
	c.SetOnClick(func(ev *MouseEvent) {
		c.Toggle()
		ev.Handled = true
	})
	c.SetOnKeyPress(func(ev *KeyEvent) {
		if ev.Key != KeyRune || ev.Rune != ' ' {
			return
		}
		c.Toggle()
		ev.Handled = true
	})
	return c
}

// Changed returns the emitter fired when the checked state is toggled by the user.
func (c *CheckBox) Changed() *Emitter[ValueChangedEvent[bool]] {
	return &c.changed
}

// Checked reports whether the box is checked.
func (c *CheckBox) Checked() bool {
	return c.checked
}

// SetChecked sets the checked state without emitting Changed.
func (c *CheckBox) SetChecked(checked bool) {
	if c.checked == checked {
		return
	}
	c.checked = checked
	c.InvalidateRegion(NewRect(1, 0, 1, 1))
}

// Toggle flips the checked state and emits Changed.
func (c *CheckBox) Toggle() {
	c.SetChecked(!c.checked)
	c.changed.Emit(ValueChangedEvent[bool]{
		Source:        c.View,
		PreviousValue: !c.checked,
		NewValue:      c.checked,
	})
}

// Text returns the label next to the box.
func (c *CheckBox) Text() string {
	return c.text
}

// SetText changes the label and resizes the check box to fit.
func (c *CheckBox) SetText(text string) error {
	if c.text == text {
		return nil
	}
	c.text = text
	c.Invalidate()
	return c.SetWidth(Sized(checkBoxWidth(text)))
}

func (c *CheckBox) setHovered(hovered bool) {
	c.hovered = hovered
	c.Invalidate()
}

func (c *CheckBox) draw(ctx Context, _ Rect) {
	ctx.SetColors(c.Theme().CheckBox.For(c.State(c.hovered)))
	if ctx.MoveCursor(0, 0) != nil {
		return
	}
	mark := " "
	if c.checked {
		mark = "x"
	}
	ctx.Print("[" + mark + "] " + c.text)
}

func checkBoxWidth(text string) int {
	return StringWidth(text) + 4
}
