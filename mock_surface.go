package tui

import "strings"

// MockSurface is an in-memory Surface for testing.
// It keeps every written cell and the cursor state for verification.
type MockSurface struct {
	width, height int
	cells         []Cell
	cursorX       int
	cursorY       int
	cursorHidden  bool
	shows         int
}

var _ Surface = (*MockSurface)(nil)

// NewMockSurface creates a new mock surface with the given dimensions.
func NewMockSurface(width, height int) *MockSurface {
	m := &MockSurface{cursorHidden: true}
	m.Resize(width, height)
	return m
}

// Size returns the surface dimensions.
func (m *MockSurface) Size() (width, height int) {
	return m.width, m.height
}

// SetCell writes a rune. A wide rune also marks the following cell as its
// continuation.
func (m *MockSurface) SetCell(x, y int, r rune, colors Colors) {
	if !m.inside(x, y) {
		return
	}
	cell := NewCell(r, colors)
	m.cells[y*m.width+x] = cell
	for i := 1; i < int(cell.Width) && m.inside(x+i, y); i++ {
		m.cells[y*m.width+x+i] = Cell{Colors: colors}
	}
}

// ShowCursor moves the cursor to the specified position and shows it.
func (m *MockSurface) ShowCursor(x, y int) {
	m.cursorX = x
	m.cursorY = y
	m.cursorHidden = false
}

// HideCursor makes the cursor invisible.
func (m *MockSurface) HideCursor() {
	m.cursorHidden = true
}

// Show counts presented frames.
func (m *MockSurface) Show() {
	m.shows++
}

func (m *MockSurface) inside(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// CellAt returns the cell at the given position.
// Returns an empty Cell if out of bounds.
func (m *MockSurface) CellAt(x, y int) Cell {
	if !m.inside(x, y) {
		return Cell{}
	}
	return m.cells[y*m.width+x]
}

// String is a snapshot of the grid, one line per row. Blank cells print as
// spaces and wide runes occupy a single rune in the output.
func (m *MockSurface) String() string { return m.snapshot(false) }

// StringTrimmed is String without trailing spaces on each row.
func (m *MockSurface) StringTrimmed() string { return m.snapshot(true) }

func (m *MockSurface) snapshot(trim bool) string {
	rows := make([]string, m.height)
	for y := range rows {
		runes := make([]rune, 0, m.width)
		for _, cell := range m.cells[y*m.width : (y+1)*m.width] {
			switch {
			case cell.IsContinuation():
			case cell.Rune == 0:
				runes = append(runes, ' ')
			default:
				runes = append(runes, cell.Rune)
			}
		}
		rows[y] = string(runes)
		if trim {
			rows[y] = strings.TrimRight(rows[y], " ")
		}
	}
	return strings.Join(rows, "\n")
}

// Cursor returns the current cursor position.
func (m *MockSurface) Cursor() (x, y int) {
	return m.cursorX, m.cursorY
}

// IsCursorHidden returns whether the cursor is hidden.
func (m *MockSurface) IsCursorHidden() bool {
	return m.cursorHidden
}

// ShowCount returns how many times Show was called.
func (m *MockSurface) ShowCount() int {
	return m.shows
}

// Clear blanks every cell.
func (m *MockSurface) Clear() {
	for i := range m.cells {
		m.cells[i] = NewCell(' ', Colors{})
	}
}

// Resize changes the grid size. Cells in the overlap of the old and new
// sizes keep their content.
func (m *MockSurface) Resize(width, height int) {
	old, oldWidth := m.cells, m.width
	oldHeight := m.height
	m.width, m.height = width, height
	m.cells = make([]Cell, width*height)
	m.Clear()
	for y := range min(height, oldHeight) {
		copy(m.cells[y*width:y*width+min(width, oldWidth)], old[y*oldWidth:])
	}
}
