package tui

import "github.com/mattn/go-runewidth"

// Cell represents a single character cell of a Surface.
// Wide characters (CJK, emoji) occupy multiple cells; the first cell holds
// the rune, subsequent cells are marked as continuations.
type Cell struct {
	Rune   rune   // The character (0 for continuation cells)
	Colors Colors // Foreground and background
	Width  uint8  // Display width (1 or 2; 0 for continuation)
}

// NewCell creates a new Cell with automatic width detection.
func NewCell(r rune, colors Colors) Cell {
	return Cell{
		Rune:   r,
		Colors: colors,
		Width:  uint8(RuneWidth(r)),
	}
}

// IsContinuation returns true if this cell is a continuation of a wide character.
func (c Cell) IsContinuation() bool {
	return c.Width == 0
}

// RuneWidth returns the display width of a rune in terminal cells.
// Returns 1 for most characters, 2 for wide characters (CJK, most emoji),
// and at least 1 for anything that occupies a cell on its own.
func RuneWidth(r rune) int {
	return max(runewidth.RuneWidth(r), 1)
}
