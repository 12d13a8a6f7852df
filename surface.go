package tui

// Surface is the character grid an Application paints into.
type Surface interface {
	// Size returns the grid dimensions in cells.
	Size() (width, height int)

	// SetCell writes r with colors at (x, y). Writes outside the grid are ignored.
	SetCell(x, y int, r rune, colors Colors)

	// ShowCursor places the visible text cursor at (x, y).
	ShowCursor(x, y int)

	// HideCursor hides the text cursor.
	HideCursor()

	// Show makes everything written since the previous Show visible.
	Show()
}
