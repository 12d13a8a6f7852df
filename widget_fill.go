package tui

// FillView paints every cell of its region with one character.
type FillView struct {
	*View
	char   rune
	colors *Colors // nil = theme default
}

// NewFillView creates a FillView painting char in the theme's default colors.
func NewFillView(char rune) *FillView {
	f := &FillView{View: NewView(), char: char}
	f.SetOnDraw(f.draw)
	return f
}

// SetChar sets the fill character.
func (f *FillView) SetChar(char rune) {
	if f.char == char {
		return
	}
	f.char = char
	f.Invalidate()
}

// SetColors overrides the theme colors.
func (f *FillView) SetColors(colors Colors) {
	f.colors = &colors
	f.Invalidate()
}

func (f *FillView) draw(ctx Context, region Rect) {
	colors := f.Theme().Default.Normal
	if f.colors != nil {
		colors = *f.colors
	}
	ctx.SetColors(colors)
	ctx.Fill(region, f.char)
}

// newRootView creates the view that fills the surface: a black background
// that cycles focus on Tab and Shift+Tab.
func newRootView(frame Rect, theme *Theme) *View {
	fill := NewFillView(' ')
	fill.colors = &Colors{Foreground: Grey, Background: Black}
	root := fill.View
	root.layoutMode = LayoutAbsolute
	root.frame = frame
	root.bounds = NewRect(0, 0, frame.Width, frame.Height)
	root.theme = theme
	root.SetOnKeyDown(func(ev *KeyEvent) { handleTabKey(root, ev) })
	return root
}
