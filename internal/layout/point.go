package layout

// Point is a cell coordinate. Screen contexts also use it for sizes.
type Point struct {
	X, Y int
}

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// In reports whether p is one of r's cells.
func (p Point) In(r Rect) bool { return r.Contains(p.X, p.Y) }
