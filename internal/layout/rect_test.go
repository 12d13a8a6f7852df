package layout

import "testing"

func TestNewRect(t *testing.T) {
	want := Rect{X: 5, Y: 10, Width: 20, Height: 15}
	if got := NewRect(5, 10, 20, 15); got != want {
		t.Errorf("NewRect() = %v, want %v", got, want)
	}
}

func TestRect_Edges(t *testing.T) {
	type tc struct {
		rect                     Rect
		left, top, right, bottom int
	}

	tests := map[string]tc{
		"standard rect": {
			rect: NewRect(5, 10, 20, 15),
			left: 5, top: 10, right: 25, bottom: 25,
		},
		"negative position": {
			rect: NewRect(-5, -5, 10, 10),
			left: -5, top: -5, right: 5, bottom: 5,
		},
		"zero size": {
			rect: NewRect(5, 5, 0, 0),
			left: 5, top: 5, right: 5, bottom: 5,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.Left(); got != tt.left {
				t.Errorf("Left() = %d, want %d", got, tt.left)
			}
			if got := tt.rect.Top(); got != tt.top {
				t.Errorf("Top() = %d, want %d", got, tt.top)
			}
			if got := tt.rect.Right(); got != tt.right {
				t.Errorf("Right() = %d, want %d", got, tt.right)
			}
			if got := tt.rect.Bottom(); got != tt.bottom {
				t.Errorf("Bottom() = %d, want %d", got, tt.bottom)
			}
		})
	}
}

func TestRect_IsEmpty(t *testing.T) {
	type tc struct {
		rect    Rect
		isEmpty bool
	}

	tests := map[string]tc{
		"standard rect": {rect: NewRect(0, 0, 10, 5), isEmpty: false},
		"zero width":    {rect: NewRect(0, 0, 0, 10), isEmpty: true},
		"zero height":   {rect: NewRect(0, 0, 10, 0), isEmpty: true},
		"single cell":   {rect: NewRect(3, 3, 1, 1), isEmpty: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.IsEmpty(); got != tt.isEmpty {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.isEmpty)
			}
		})
	}
}

func TestRect_Contains(t *testing.T) {
	type tc struct {
		x, y     int
		expected bool
	}

	r := NewRect(10, 10, 20, 20)
	tests := map[string]tc{
		"point inside":          {x: 15, y: 15, expected: true},
		"top-left corner":       {x: 10, y: 10, expected: true},
		"last cell":             {x: 29, y: 29, expected: true},
		"right edge exclusive":  {x: 30, y: 15, expected: false},
		"bottom edge exclusive": {x: 15, y: 30, expected: false},
		"point left of rect":    {x: 9, y: 15, expected: false},
		"point above rect":      {x: 15, y: 9, expected: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.expected {
				t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.expected)
			}
		})
	}
}

func TestRect_ContainsRect(t *testing.T) {
	type tc struct {
		outer, inner Rect
		expected     bool
	}

	tests := map[string]tc{
		"fully inside": {outer: NewRect(0, 0, 10, 10), inner: NewRect(2, 2, 3, 3), expected: true},
		"same rect":    {outer: NewRect(0, 0, 10, 10), inner: NewRect(0, 0, 10, 10), expected: true},
		"overhanging":  {outer: NewRect(0, 0, 10, 10), inner: NewRect(8, 8, 3, 3), expected: false},
		"empty inner":  {outer: NewRect(0, 0, 10, 10), inner: NewRect(50, 50, 0, 0), expected: true},
		"empty outer":  {outer: NewRect(0, 0, 0, 0), inner: NewRect(0, 0, 1, 1), expected: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.outer.ContainsRect(tt.inner); got != tt.expected {
				t.Errorf("ContainsRect(%v) = %v, want %v", tt.inner, got, tt.expected)
			}
		})
	}
}

func TestRect_Intersection(t *testing.T) {
	type tc struct {
		a, b     Rect
		expected Rect
		ok       bool
	}

	tests := map[string]tc{
		"overlapping rects": {
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(10, 10, 20, 20),
			expected: NewRect(10, 10, 10, 10),
			ok:       true,
		},
		"same rect": {
			a:        NewRect(10, 10, 20, 20),
			b:        NewRect(10, 10, 20, 20),
			expected: NewRect(10, 10, 20, 20),
			ok:       true,
		},
		"one inside other": {
			a:        NewRect(0, 0, 100, 100),
			b:        NewRect(10, 10, 5, 5),
			expected: NewRect(10, 10, 5, 5),
			ok:       true,
		},
		"disjoint": {
			a: NewRect(0, 0, 10, 10),
			b: NewRect(20, 20, 10, 10),
		},
		"touching edges": {
			a: NewRect(0, 0, 10, 10),
			b: NewRect(10, 0, 10, 10),
		},
		"empty operand": {
			a: NewRect(0, 0, 10, 10),
			b: NewRect(5, 5, 0, 3),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := tt.a.Intersection(tt.b)
			if ok != tt.ok {
				t.Fatalf("Intersection() ok = %v, want %v", ok, tt.ok)
			}
			if got != tt.expected {
				t.Errorf("Intersection() = %v, want %v", got, tt.expected)
			}

			// Intersection is commutative.
			rev, revOK := tt.b.Intersection(tt.a)
			if rev != got || revOK != ok {
				t.Errorf("reverse Intersection() = %v, %v; want %v, %v", rev, revOK, got, ok)
			}
		})
	}
}

func TestRect_Union(t *testing.T) {
	type tc struct {
		a, b     Rect
		expected Rect
	}

	tests := map[string]tc{
		"overlapping": {
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: NewRect(0, 0, 15, 15),
		},
		"disjoint": {
			a:        NewRect(0, 0, 2, 2),
			b:        NewRect(10, 20, 5, 1),
			expected: NewRect(0, 0, 15, 21),
		},
		"empty first": {
			a:        NewRect(0, 0, 0, 0),
			b:        NewRect(3, 4, 5, 6),
			expected: NewRect(3, 4, 5, 6),
		},
		"empty second": {
			a:        NewRect(3, 4, 5, 6),
			b:        NewRect(100, 100, 0, 1),
			expected: NewRect(3, 4, 5, 6),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := tt.a.Union(tt.b)
			if got != tt.expected {
				t.Errorf("Union() = %v, want %v", got, tt.expected)
			}
			if !got.ContainsRect(tt.a) || !got.ContainsRect(tt.b) {
				t.Errorf("Union() = %v does not contain both operands", got)
			}
		})
	}
}

func TestRect_Translate(t *testing.T) {
	r := NewRect(10, 20, 30, 40)
	if got, want := r.Translate(5, -15), NewRect(15, 5, 30, 40); got != want {
		t.Errorf("Translate() = %v, want %v", got, want)
	}
	if r != NewRect(10, 20, 30, 40) {
		t.Error("Translate mutated the receiver")
	}
}

func TestRect_SizeEqual(t *testing.T) {
	a := NewRect(0, 0, 4, 2)
	if !a.SizeEqual(NewRect(9, 9, 4, 2)) {
		t.Error("SizeEqual() = false for same size at different origin")
	}
	if a.SizeEqual(NewRect(0, 0, 4, 3)) {
		t.Error("SizeEqual() = true for different heights")
	}
	if !a.Equal(NewRect(0, 0, 4, 2)) {
		t.Error("Equal() = false for identical rects")
	}
}

func TestPoint(t *testing.T) {
	p := Point{X: 3, Y: 4}
	if got := p.Add(Point{X: 1, Y: 1}); got != (Point{X: 4, Y: 5}) {
		t.Errorf("Add() = %+v", got)
	}
	if got := p.Sub(Point{X: 3, Y: 4}); got != (Point{}) {
		t.Errorf("Sub() = %+v", got)
	}
	if !p.In(NewRect(0, 0, 5, 5)) {
		t.Error("In() = false, want true")
	}
	if p.In(NewRect(0, 0, 3, 3)) {
		t.Error("In() = true, want false")
	}
}
