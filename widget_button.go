package tui

// Button is a focusable push button drawn as "[ text ]". It emits on
// Clicked when clicked or when Enter is pressed while it has focus.
type Button struct {
	*View
	text    string
	hovered bool
	clicked Emitter[ViewEvent]
}

// NewButton creates a button sized to its text.
func NewButton(text string) *Button {
	b := &Button{View: NewView(), text: text}
	b.canFocus = true
	b.width = Sized(buttonWidth(text))
	b.height = Sized(1)

	b.SetOnDraw(b.draw)
	b.SetOnPositionCursor(func(ctx Context) { _ = ctx.MoveCursor(2, 0) })
	b.SetOnMouseEnter(func(*MouseEvent) { b.setHovered(true) })
	b.SetOnMouseLeave(func(*MouseEvent) { b.setHovered(false) })
	b.SetOnMouseDown(func(*MouseEvent) { b.SetFocus(true) })
	b.SetOnClick(func(ev *MouseEvent) {
		b.clicked.Emit(ViewEvent{Source: b.View})
		ev.Handled = true
	})
	b.SetOnKeyPress(func(ev *KeyEvent) {
		if ev.Key != KeyEnter {
			return
		}
		b.clicked.Emit(ViewEvent{Source: b.View})
		ev.Handled = true
	})
	return b
}

// Clicked returns the emitter fired when the button is activated.
func (b *Button) Clicked() *Emitter[ViewEvent] {
	return &b.clicked
}

// Text returns the button caption.
func (b *Button) Text() string {
	return b.text
}

// SetText changes the caption and resizes the button to fit.
func (b *Button) SetText(text string) error {
	if b.text == text {
		return nil
	}
	b.text = text
	b.Invalidate()
	return b.SetWidth(Sized(buttonWidth(text)))
}

func (b *Button) setHovered(hovered bool) {
	b.hovered = hovered
	b.Invalidate()
}

func (b *Button) draw(ctx Context, _ Rect) {
	ctx.SetColors(b.Theme().Button.For(b.State(b.hovered)))
	if ctx.MoveCursor(0, 0) != nil {
		return
	}
	ctx.Print("[ " + b.text + " ]")
}

func buttonWidth(text string) int {
	return StringWidth(text) + 4
}
