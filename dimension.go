package tui

import "fmt"

type dimensionKind uint8

const (
	dimensionUnset dimensionKind = iota
	dimensionAbsolute
	dimensionPercent
	dimensionFill
	dimensionWidthOf
	dimensionHeightOf
	dimensionAdd
	dimensionSub
)

// Dimension is an immutable expression for a view's width or height. The
// zero value is unset: the layout pass treats it as the remaining extent.
type Dimension struct {
	kind     dimensionKind
	value    float64
	view     *View
	operands *[2]Dimension
}

// Sized returns an absolute dimension of cells.
func Sized(cells int) Dimension {
	return Dimension{kind: dimensionAbsolute, value: float64(cells)}
}

// Percent returns percent (0..100) of the parent extent.
// It panics with a *RangeError outside that range.
func Percent(percent float64) Dimension {
	if err := checkPercent(percent); err != nil {
		panic(err)
	}
	return Dimension{kind: dimensionPercent, value: percent}
}

// Fill returns a dimension consuming all space between the resolved position
// and the parent's far edge.
func Fill() Dimension {
	return Dimension{kind: dimensionFill, value: 100}
}

// FillPercent returns percent (0..100) of the space remaining after the
// resolved position. It panics with a *RangeError outside that range.
func FillPercent(percent float64) Dimension {
	if err := checkPercent(percent); err != nil {
		panic(err)
	}
	return Dimension{kind: dimensionFill, value: percent}
}

// WidthOf returns the width of v's current frame.
func WidthOf(v *View) Dimension {
	return Dimension{kind: dimensionWidthOf, view: v}
}

// HeightOf returns the height of v's current frame.
func HeightOf(v *View) Dimension {
	return Dimension{kind: dimensionHeightOf, view: v}
}

// ParseDimension parses "12", "12.5", or "25%".
func ParseDimension(s string) (Dimension, error) {
	value, percent, err := parseLiteral(s)
	if err != nil {
		return Dimension{}, err
	}
	if !percent {
		return Dimension{kind: dimensionAbsolute, value: value}, nil
	}
	if err := checkPercent(value); err != nil {
		return Dimension{}, err
	}
	return Dimension{kind: dimensionPercent, value: value}, nil
}

// MustParseDimension is like ParseDimension but panics on error.
func MustParseDimension(s string) Dimension {
	d, err := ParseDimension(s)
	if err != nil {
		panic(err)
	}
	return d
}

// DimensionFrom converts an int, float64, string literal, or Dimension into a
// Dimension. Dimensions pass through unchanged.
func DimensionFrom(value any) (Dimension, error) {
	switch v := value.(type) {
	case Dimension:
		return v, nil
	case int:
		return Sized(v), nil
	case float64:
		return Dimension{kind: dimensionAbsolute, value: v}, nil
	case string:
		return ParseDimension(v)
	default:
		return Dimension{}, &ParseError{Input: fmt.Sprint(value)}
	}
}

// Add returns the expression d + other.
func (d Dimension) Add(other Dimension) Dimension {
	return Dimension{kind: dimensionAdd, operands: &[2]Dimension{d, other}}
}

// Sub returns the expression d - other.
func (d Dimension) Sub(other Dimension) Dimension {
	return Dimension{kind: dimensionSub, operands: &[2]Dimension{d, other}}
}

// Plus returns d + n cells.
func (d Dimension) Plus(n int) Dimension {
	return d.Add(Sized(n))
}

// Minus returns d - n cells.
func (d Dimension) Minus(n int) Dimension {
	return d.Sub(Sized(n))
}

// IsSet reports whether d holds an expression.
func (d Dimension) IsSet() bool {
	return d.kind != dimensionUnset
}

// NeedsPosition reports whether evaluating d requires the view's resolved position.
func (d Dimension) NeedsPosition() bool {
	switch d.kind {
	case dimensionFill:
		return true
	case dimensionAdd, dimensionSub:
		return d.operands[0].NeedsPosition() || d.operands[1].NeedsPosition()
	}
	return false
}

// Dependencies returns the views whose frames d reads.
func (d Dimension) Dependencies() []*View {
	switch d.kind {
	case dimensionWidthOf, dimensionHeightOf:
		return []*View{d.view}
	case dimensionAdd, dimensionSub:
		left := d.operands[0].Dependencies()
		right := d.operands[1].Dependencies()
		if len(right) == 0 {
			return left
		}
		return append(append([]*View(nil), left...), right...)
	}
	return nil
}

// AbsoluteValue evaluates d for a parent extent of max cells. position is the
// view's resolved position along the same axis and is only read when
// NeedsPosition.
func (d Dimension) AbsoluteValue(max, position int) int {
	switch d.kind {
	case dimensionAbsolute:
		return roundCell(d.value)
	case dimensionPercent:
		return roundCell(d.value / 100 * float64(max))
	case dimensionFill:
		return roundCell(d.value / 100 * float64(max-position))
	case dimensionWidthOf:
		return d.view.Frame().Width
	case dimensionHeightOf:
		return d.view.Frame().Height
	case dimensionAdd:
		return d.operands[0].AbsoluteValue(max, position) + d.operands[1].AbsoluteValue(max, position)
	case dimensionSub:
		return d.operands[0].AbsoluteValue(max, position) - d.operands[1].AbsoluteValue(max, position)
	}
	return 0
}

// Equal reports structural equality. Addition is compared commutatively.
func (d Dimension) Equal(other Dimension) bool {
	if d.kind != other.kind {
		return false
	}
	switch d.kind {
	case dimensionAbsolute, dimensionPercent, dimensionFill:
		return d.value == other.value
	case dimensionWidthOf, dimensionHeightOf:
		return d.view == other.view
	case dimensionAdd:
		a, b := d.operands, other.operands
		return (a[0].Equal(b[0]) && a[1].Equal(b[1])) ||
			(a[0].Equal(b[1]) && a[1].Equal(b[0]))
	case dimensionSub:
		a, b := d.operands, other.operands
		return a[0].Equal(b[0]) && a[1].Equal(b[1])
	}
	return true
}

func (d Dimension) String() string {
	switch d.kind {
	case dimensionUnset:
		return "unset"
	case dimensionAbsolute:
		return formatNumber(d.value)
	case dimensionPercent:
		return formatNumber(d.value) + "%"
	case dimensionFill:
		if d.value == 100 {
			return "fill"
		}
		return "fill(" + formatNumber(d.value) + "%)"
	case dimensionWidthOf:
		return "widthOf(" + viewLabel(d.view) + ")"
	case dimensionHeightOf:
		return "heightOf(" + viewLabel(d.view) + ")"
	case dimensionAdd:
		return "(" + d.operands[0].String() + " + " + d.operands[1].String() + ")"
	case dimensionSub:
		return "(" + d.operands[0].String() + " - " + d.operands[1].String() + ")"
	}
	return "?"
}
