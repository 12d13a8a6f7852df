package tui

import "fmt"

// FrameStyle selects the box-drawing characters used by DrawFrame.
type FrameStyle int

const (
	// FrameSingle draws with single-line box characters.
	FrameSingle FrameStyle = iota
	// FrameDouble draws with double-line box characters.
	FrameDouble
)

type frameRunes struct {
	topLeft, topRight, bottomLeft, bottomRight rune
	horizontal, vertical                       rune
}

var frameRuneSets = map[FrameStyle]frameRunes{
	FrameSingle: {'┌', '┐', '└', '┘', '─', '│'},
	FrameDouble: {'╔', '╗', '╚', '╝', '═', '║'},
}

// Context is the drawing interface handed to views. Coordinates are local
// to the context's bounds; writes outside the clip region are dropped.
type Context interface {
	// Bounds returns the drawable area, always at origin (0, 0).
	Bounds() Rect

	// Clip returns the region writes are restricted to.
	Clip() Rect
	// SetClip restricts writes to region intersected with the bounds.
	// It returns ErrClipOutside when they do not overlap.
	SetClip(region Rect) error
	// ClearClip resets the clip region to the bounds.
	ClearClip()

	// MoveCursor moves the drawing cursor. It returns ErrOutOfBounds when
	// (x, y) is outside the bounds.
	MoveCursor(x, y int) error
	// Cursor returns the drawing cursor and whether it has been placed.
	Cursor() (Point, bool)

	// SetCharacter writes r at the cursor without moving it.
	SetCharacter(r rune)
	// Print writes text at the cursor, advancing it by each rune's width.
	Print(text string)
	// HorizontalRepeat writes r count times, advancing right.
	HorizontalRepeat(r rune, count int)
	// VerticalRepeat writes r count times, advancing down.
	VerticalRepeat(r rune, count int)
	// Fill writes r over every cell of region.
	Fill(region Rect, r rune)
	// DrawFrame draws a box along the edges of region.
	DrawFrame(region Rect, style FrameStyle)

	// CreateForSubregion returns a context covering region, given in this
	// context's coordinates. The new context inherits the colors and the
	// part of the clip region that falls inside it.
	CreateForSubregion(region Rect) Context

	Colors() Colors
	SetColors(colors Colors)
	Foreground() Color
	SetForeground(c Color)
	Background() Color
	SetBackground(c Color)
}

// ScreenContext is a Context that writes to a Surface.
type ScreenContext struct {
	surface Surface
	origin  Point
	bounds  Rect
	clip    Rect

	cursor      Point
	cursorValid bool
	colors      Colors
}

var _ Context = (*ScreenContext)(nil)

// NewScreenContext creates a context covering area of surface, in surface
// coordinates.
func NewScreenContext(surface Surface, area Rect) *ScreenContext {
	bounds := NewRect(0, 0, area.Width, area.Height)
	return &ScreenContext{
		surface: surface,
		origin:  area.Origin(),
		bounds:  bounds,
		clip:    bounds,
	}
}

// Bounds returns the drawable area.
func (c *ScreenContext) Bounds() Rect {
	return c.bounds
}

// Clip returns the current clip region.
func (c *ScreenContext) Clip() Rect {
	return c.clip
}

// SetClip restricts writes to region.
func (c *ScreenContext) SetClip(region Rect) error {
	clip, ok := region.Intersection(c.bounds)
	if !ok {
		return fmt.Errorf("%w: %s outside %s", ErrClipOutside, region, c.bounds)
	}
	c.clip = clip
	return nil
}

// ClearClip resets the clip region to the bounds.
func (c *ScreenContext) ClearClip() {
	c.clip = c.bounds
}

// MoveCursor moves the drawing cursor.
func (c *ScreenContext) MoveCursor(x, y int) error {
	if !c.bounds.Contains(x, y) {
		return fmt.Errorf("%w: (%d, %d) outside %s", ErrOutOfBounds, x, y, c.bounds)
	}
	c.cursor = Point{X: x, Y: y}
	c.cursorValid = true
	return nil
}

// Cursor returns the drawing cursor.
func (c *ScreenContext) Cursor() (Point, bool) {
	return c.cursor, c.cursorValid
}

// SurfaceCursor returns the cursor in surface coordinates, and false when
// the cursor was never placed or has moved past the bounds.
func (c *ScreenContext) SurfaceCursor() (Point, bool) {
	if !c.cursorValid || !c.cursor.In(c.bounds) {
		return Point{}, false
	}
	return c.cursor.Add(c.origin), true
}

// SetCharacter writes r at the cursor without moving it.
func (c *ScreenContext) SetCharacter(r rune) {
	if !c.cursorValid {
		return
	}
	c.put(c.cursor.X, c.cursor.Y, r)
}

// Print writes text at the cursor. Runes that do not fit inside the clip
// region are dropped, but the cursor still advances past them.
func (c *ScreenContext) Print(text string) {
	if !c.cursorValid {
		return
	}
	for _, r := range text {
		w := RuneWidth(r)
		if c.clip.Contains(c.cursor.X+w-1, c.cursor.Y) {
			c.put(c.cursor.X, c.cursor.Y, r)
		}
		c.cursor.X += w
	}
}

// HorizontalRepeat writes r count times, advancing right.
func (c *ScreenContext) HorizontalRepeat(r rune, count int) {
	if !c.cursorValid {
		return
	}
	for i := 0; i < count; i++ {
		c.put(c.cursor.X, c.cursor.Y, r)
		c.cursor.X++
	}
}

// VerticalRepeat writes r count times, advancing down.
func (c *ScreenContext) VerticalRepeat(r rune, count int) {
	if !c.cursorValid {
		return
	}
	for i := 0; i < count; i++ {
		c.put(c.cursor.X, c.cursor.Y, r)
		c.cursor.Y++
	}
}

// Fill writes r over every cell of region that is inside the clip region.
func (c *ScreenContext) Fill(region Rect, r rune) {
	area, ok := region.Intersection(c.clip)
	if !ok {
		return
	}
	for y := area.Top(); y < area.Bottom(); y++ {
		for x := area.Left(); x < area.Right(); x++ {
			c.put(x, y, r)
		}
	}
}

// DrawFrame draws a box along the edges of region. Regions smaller than
// 2x2 are left untouched.
func (c *ScreenContext) DrawFrame(region Rect, style FrameStyle) {
	if region.Width < 2 || region.Height < 2 {
		return
	}
	runes, ok := frameRuneSets[style]
	if !ok {
		runes = frameRuneSets[FrameSingle]
	}
	left, top := region.Left(), region.Top()
	right, bottom := region.Right()-1, region.Bottom()-1

	c.put(left, top, runes.topLeft)
	c.put(right, top, runes.topRight)
	c.put(left, bottom, runes.bottomLeft)
	c.put(right, bottom, runes.bottomRight)
	for x := left + 1; x < right; x++ {
		c.put(x, top, runes.horizontal)
		c.put(x, bottom, runes.horizontal)
	}
	for y := top + 1; y < bottom; y++ {
		c.put(left, y, runes.vertical)
		c.put(right, y, runes.vertical)
	}
}

// CreateForSubregion returns a context covering region.
func (c *ScreenContext) CreateForSubregion(region Rect) Context {
	sub := &ScreenContext{
		surface: c.surface,
		origin:  c.origin.Add(region.Origin()),
		bounds:  NewRect(0, 0, region.Width, region.Height),
		colors:  c.colors,
	}
	if clip, ok := c.clip.Intersection(region); ok {
		sub.clip = clip.Translate(-region.X, -region.Y)
	}
	return sub
}

func (c *ScreenContext) Colors() Colors          { return c.colors }
func (c *ScreenContext) SetColors(colors Colors) { c.colors = colors }
func (c *ScreenContext) Foreground() Color       { return c.colors.Foreground }
func (c *ScreenContext) SetForeground(fg Color)  { c.colors.Foreground = fg }
func (c *ScreenContext) Background() Color       { return c.colors.Background }
func (c *ScreenContext) SetBackground(bg Color)  { c.colors.Background = bg }

// put writes r at local (x, y) if it is inside the clip region.
func (c *ScreenContext) put(x, y int, r rune) {
	if !c.clip.Contains(x, y) {
		return
	}
	c.surface.SetCell(c.origin.X+x, c.origin.Y+y, r, c.colors)
}
