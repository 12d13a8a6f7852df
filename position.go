package tui

import "fmt"

type positionKind uint8

const (
	positionUnset positionKind = iota
	positionAbsolute
	positionPercent
	positionCenter
	positionEnd
	positionLeftOf
	positionTopOf
	positionRightOf
	positionBottomOf
	positionAdd
	positionSub
)

// Position is an immutable expression for a view's x or y coordinate in its
// parent's space. The zero value is unset: the layout pass treats it as 0.
type Position struct {
	kind     positionKind
	value    float64
	view     *View
	operands *[2]Position
}

// At returns an absolute position.
func At(cells int) Position {
	return Position{kind: positionAbsolute, value: float64(cells)}
}

// AtPercent returns a position at percent (0..100) of the parent extent.
// It panics with a *RangeError outside that range.
func AtPercent(percent float64) Position {
	if err := checkPercent(percent); err != nil {
		panic(err)
	}
	return Position{kind: positionPercent, value: percent}
}

// Center returns a position that centers the view in its parent extent.
// It needs the view's resolved size.
func Center() Position {
	return Position{kind: positionCenter}
}

// FromEnd returns a position that places the view's far edge offset cells
// before the parent's far edge. It needs the view's resolved size.
func FromEnd(offset int) Position {
	return Position{kind: positionEnd, value: float64(offset)}
}

// LeftOf returns the x coordinate of v's current frame.
func LeftOf(v *View) Position {
	return Position{kind: positionLeftOf, view: v}
}

// TopOf returns the y coordinate of v's current frame.
func TopOf(v *View) Position {
	return Position{kind: positionTopOf, view: v}
}

// RightOf returns the exclusive right edge of v's current frame.
func RightOf(v *View) Position {
	return Position{kind: positionRightOf, view: v}
}

// BottomOf returns the exclusive bottom edge of v's current frame.
func BottomOf(v *View) Position {
	return Position{kind: positionBottomOf, view: v}
}

// ParsePosition parses "12", "12.5", or "25%".
func ParsePosition(s string) (Position, error) {
	value, percent, err := parseLiteral(s)
	if err != nil {
		return Position{}, err
	}
	if !percent {
		return Position{kind: positionAbsolute, value: value}, nil
	}
	if err := checkPercent(value); err != nil {
		return Position{}, err
	}
	return Position{kind: positionPercent, value: value}, nil
}

// MustParsePosition is like ParsePosition but panics on error.
func MustParsePosition(s string) Position {
	p, err := ParsePosition(s)
	if err != nil {
		panic(err)
	}
	return p
}

// PositionFrom converts an int, float64, string literal, or Position into a Position.
// Positions pass through unchanged.
func PositionFrom(value any) (Position, error) {
	switch v := value.(type) {
	case Position:
		return v, nil
	case int:
		return At(v), nil
	case float64:
		return Position{kind: positionAbsolute, value: v}, nil
	case string:
		return ParsePosition(v)
	default:
		return Position{}, &ParseError{Input: fmt.Sprint(value)}
	}
}

// Add returns the expression p + other.
func (p Position) Add(other Position) Position {
	return Position{kind: positionAdd, operands: &[2]Position{p, other}}
}

// Sub returns the expression p - other.
func (p Position) Sub(other Position) Position {
	return Position{kind: positionSub, operands: &[2]Position{p, other}}
}

// Plus returns p + n cells.
func (p Position) Plus(n int) Position {
	return p.Add(At(n))
}

// Minus returns p - n cells.
func (p Position) Minus(n int) Position {
	return p.Sub(At(n))
}

// IsSet reports whether p holds an expression.
func (p Position) IsSet() bool {
	return p.kind != positionUnset
}

// NeedsSize reports whether evaluating p requires the view's resolved size.
func (p Position) NeedsSize() bool {
	switch p.kind {
	case positionCenter, positionEnd:
		return true
	case positionAdd, positionSub:
		return p.operands[0].NeedsSize() || p.operands[1].NeedsSize()
	}
	return false
}

// Dependencies returns the views whose frames p reads.
func (p Position) Dependencies() []*View {
	switch p.kind {
	case positionLeftOf, positionTopOf, positionRightOf, positionBottomOf:
		return []*View{p.view}
	case positionAdd, positionSub:
		left := p.operands[0].Dependencies()
		right := p.operands[1].Dependencies()
		if len(right) == 0 {
			return left
		}
		return append(append([]*View(nil), left...), right...)
	}
	return nil
}

// AbsoluteValue evaluates p for a parent extent of max cells. size is the
// view's resolved size along the same axis and is only read when NeedsSize.
func (p Position) AbsoluteValue(max, size int) int {
	switch p.kind {
	case positionAbsolute:
		return roundCell(p.value)
	case positionPercent:
		return roundCell(p.value / 100 * float64(max))
	case positionCenter:
		return roundCell(float64(max-size) / 2)
	case positionEnd:
		return max - size - roundCell(p.value)
	case positionLeftOf:
		return p.view.Frame().Left()
	case positionTopOf:
		return p.view.Frame().Top()
	case positionRightOf:
		return p.view.Frame().Right()
	case positionBottomOf:
		return p.view.Frame().Bottom()
	case positionAdd:
		return p.operands[0].AbsoluteValue(max, size) + p.operands[1].AbsoluteValue(max, size)
	case positionSub:
		return p.operands[0].AbsoluteValue(max, size) - p.operands[1].AbsoluteValue(max, size)
	}
	return 0
}

// Equal reports structural equality. Addition is compared commutatively.
func (p Position) Equal(other Position) bool {
	if p.kind != other.kind {
		return false
	}
	switch p.kind {
	case positionAbsolute, positionPercent, positionEnd:
		return p.value == other.value
	case positionLeftOf, positionTopOf, positionRightOf, positionBottomOf:
		return p.view == other.view
	case positionAdd:
		a, b := p.operands, other.operands
		return (a[0].Equal(b[0]) && a[1].Equal(b[1])) ||
			(a[0].Equal(b[1]) && a[1].Equal(b[0]))
	case positionSub:
		a, b := p.operands, other.operands
		return a[0].Equal(b[0]) && a[1].Equal(b[1])
	}
	return true
}

func (p Position) String() string {
	switch p.kind {
	case positionUnset:
		return "unset"
	case positionAbsolute:
		return formatNumber(p.value)
	case positionPercent:
		return formatNumber(p.value) + "%"
	case positionCenter:
		return "center"
	case positionEnd:
		return "end-" + formatNumber(p.value)
	case positionLeftOf:
		return "leftOf(" + viewLabel(p.view) + ")"
	case positionTopOf:
		return "topOf(" + viewLabel(p.view) + ")"
	case positionRightOf:
		return "rightOf(" + viewLabel(p.view) + ")"
	case positionBottomOf:
		return "bottomOf(" + viewLabel(p.view) + ")"
	case positionAdd:
		return "(" + p.operands[0].String() + " + " + p.operands[1].String() + ")"
	case positionSub:
		return "(" + p.operands[0].String() + " - " + p.operands[1].String() + ")"
	}
	return "?"
}
