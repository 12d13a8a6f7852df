package tui

// Window draws a border with a header and hosts its children in a content
// view inset by one cell on every side.
type Window struct {
	*View
	content     *View
	header      string
	headerAlign TextAlign
	style       FrameStyle
}

// NewWindow creates a window with computed layout.
func NewWindow(header string) *Window {
	return newWindow(NewView(), header)
}

// NewWindowWithFrame creates a window with absolute layout at rect.
func NewWindowWithFrame(header string, rect Rect) *Window {
	return newWindow(NewViewWithFrame(rect), header)
}

func newWindow(v *View, header string) *Window {
	w := &Window{View: v, header: header, content: NewView()}
	w.content.x = At(1)
	w.content.y = At(1)
	w.content.width = Fill().Minus(1)
	w.content.height = Fill().Minus(1)
	if err := w.View.AddChild(w.content); err != nil {
		// The content view only refers to constants.
		panic(err)
	}
	w.SetOnDraw(w.draw)
	return w
}

// Content returns the view holding the window's children.
func (w *Window) Content() *View {
	return w.content
}

// AddChild adds child to the content view.
func (w *Window) AddChild(child *View) error {
	return w.content.AddChild(child)
}

// RemoveChild removes child from the content view.
func (w *Window) RemoveChild(child *View) error {
	return w.content.RemoveChild(child)
}

// Header returns the header text.
func (w *Window) Header() string {
	return w.header
}

// SetHeader changes the header text.
func (w *Window) SetHeader(header string) {
	if w.header == header {
		return
	}
	w.header = header
	w.invalidateHeader()
}

// SetHeaderAlign positions the header on the top edge. Justify is treated as left.
func (w *Window) SetHeaderAlign(align TextAlign) {
	if w.headerAlign == align {
		return
	}
	w.headerAlign = align
	w.invalidateHeader()
}

// SetStyle switches between single and double borders.
func (w *Window) SetStyle(style FrameStyle) {
	if w.style == style {
		return
	}
	w.style = style
	w.Invalidate()
}

func (w *Window) invalidateHeader() {
	w.InvalidateRegion(NewRect(1, 0, w.bounds.Width-2, 1))
}

func (w *Window) draw(ctx Context, region Rect) {
	scheme := w.Theme().Default
	if w.IsEnabled() {
		ctx.SetColors(scheme.Normal)
	} else {
		ctx.SetColors(scheme.Disabled)
	}
	ctx.Fill(region, ' ')
	ctx.DrawFrame(w.bounds, w.style)

	available := w.bounds.Width - 4
	if w.header == "" || available <= 0 {
		return
	}
	header := w.header
	if StringWidth(header) > available {
		header = AlignString(header, available, w.headerAlign)
	}
	x := 1
	switch w.headerAlign {
	case TextAlignCenter:
		x += roundCell(float64(available-StringWidth(header)) / 2)
	case TextAlignRight:
		x = w.bounds.Width - 3 - StringWidth(header)
	}
	if ctx.MoveCursor(x, 0) != nil {
		return
	}
	ctx.Print(" " + header + " ")
}
