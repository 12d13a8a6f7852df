package tui

import "github.com/gdamore/tcell/v2"

// TcellSurface is a Surface backed by a tcell screen.
type TcellSurface struct {
	screen tcell.Screen
}

var _ Surface = (*TcellSurface)(nil)

// NewTcellSurface wraps an initialized tcell screen.
func NewTcellSurface(screen tcell.Screen) *TcellSurface {
	return &TcellSurface{screen: screen}
}

// Screen returns the underlying tcell screen.
func (s *TcellSurface) Screen() tcell.Screen {
	return s.screen
}

func (s *TcellSurface) Size() (width, height int) {
	return s.screen.Size()
}

func (s *TcellSurface) SetCell(x, y int, r rune, colors Colors) {
	s.screen.SetContent(x, y, r, nil, tcellStyle(colors))
}

func (s *TcellSurface) ShowCursor(x, y int) {
	s.screen.ShowCursor(x, y)
}

func (s *TcellSurface) HideCursor() {
	s.screen.HideCursor()
}

func (s *TcellSurface) Show() {
	s.screen.Show()
}

func tcellStyle(colors Colors) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcellColor(colors.Foreground)).
		Background(tcellColor(colors.Background))
}

func tcellColor(c Color) tcell.Color {
	switch c.Type() {
	case ColorANSI:
		return tcell.PaletteColor(int(c.ANSI()))
	case ColorRGB:
		r, g, b := c.RGB()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	return tcell.ColorDefault
}
