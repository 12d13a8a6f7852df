package layout

import "fmt"

// Rect is a region of cells. A view's frame is stored relative to its
// parent's origin. Right and Bottom are one past the last column and row.
type Rect struct {
	X, Y          int
	Width, Height int
}

func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

func (r Rect) Left() int   { return r.X }
func (r Rect) Top() int    { return r.Y }
func (r Rect) Right() int  { return r.X + r.Width }
func (r Rect) Bottom() int { return r.Y + r.Height }

// Origin is the top-left cell.
func (r Rect) Origin() Point { return Point{r.X, r.Y} }

// IsEmpty reports whether r covers no cells. Negative sizes count as empty.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return r.X <= x && x < r.Right() && r.Y <= y && y < r.Bottom()
}

// ContainsRect reports whether every cell of inner lies inside r. An empty
// inner is contained by anything.
func (r Rect) ContainsRect(inner Rect) bool {
	switch {
	case inner.IsEmpty():
		return true
	case r.IsEmpty():
		return false
	}
	return r.X <= inner.X && r.Y <= inner.Y &&
		inner.Right() <= r.Right() && inner.Bottom() <= r.Bottom()
}

// Translate shifts r by (dx, dy), for example to move a frame from parent
// coordinates into screen coordinates.
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Intersection clips r to other. ok is false when the two share no cell.
func (r Rect) Intersection(other Rect) (clipped Rect, ok bool) {
	left, top := max(r.X, other.X), max(r.Y, other.Y)
	right, bottom := min(r.Right(), other.Right()), min(r.Bottom(), other.Bottom())
	if right <= left || bottom <= top {
		return Rect{}, false
	}
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}, true
}

// Union is the bounding box of r and other. Empty rects are ignored.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	left, top := min(r.X, other.X), min(r.Y, other.Y)
	right, bottom := max(r.Right(), other.Right()), max(r.Bottom(), other.Bottom())
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}

func (r Rect) Equal(other Rect) bool { return r == other }

// SizeEqual compares only the dimensions.
func (r Rect) SizeEqual(other Rect) bool {
	return r.Width == other.Width && r.Height == other.Height
}

func (r Rect) String() string {
	return fmt.Sprintf("{%d,%d %dx%d}", r.X, r.Y, r.Width, r.Height)
}
