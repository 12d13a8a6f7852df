package tui

// Label shows a single line of text.
type Label struct {
	*View
	text  string
	align TextAlign
}

// NewLabel creates a label sized to text.
func NewLabel(text string) *Label {
	l := &Label{View: NewView(), text: text}
	l.width = Sized(StringWidth(text))
	l.height = Sized(1)
	l.SetOnDraw(l.draw)
	return l
}

// Text returns the label text.
func (l *Label) Text() string {
	return l.text
}

// SetText changes the text without resizing the label.
func (l *Label) SetText(text string) {
	if l.text == text {
		return
	}
	l.text = text
	l.Invalidate()
}

// Align returns the text alignment.
func (l *Label) Align() TextAlign {
	return l.align
}

// SetAlign sets the text alignment.
func (l *Label) SetAlign(align TextAlign) {
	if l.align == align {
		return
	}
	l.align = align
	l.Invalidate()
}

func (l *Label) draw(ctx Context, _ Rect) {
	scheme := l.Theme().Default
	if l.IsEnabled() {
		ctx.SetColors(scheme.Normal)
	} else {
		ctx.SetColors(scheme.Disabled)
	}
	if ctx.MoveCursor(0, 0) != nil {
		return
	}
	ctx.Print(AlignString(l.text, l.bounds.Width, l.align))
}
