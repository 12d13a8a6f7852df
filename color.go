package tui

import (
	"fmt"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColorType says which of a Color's fields are meaningful.
type ColorType uint8

const (
	// ColorDefault leaves the terminal's own foreground or background in place.
	ColorDefault ColorType = iota
	// ColorANSI selects an entry from the 256-color palette.
	ColorANSI
	// ColorRGB is a 24-bit color.
	ColorRGB
)

// Color is a terminal color. The zero value is the terminal default.
type Color struct {
	typ ColorType
	// r is the palette index for ColorANSI.
	r, g, b uint8
}

// DefaultColor returns the terminal default color.
func DefaultColor() Color { return Color{} }

// ANSIColor returns palette entry index.
func ANSIColor(index uint8) Color {
	return Color{typ: ColorANSI, r: index}
}

// RGBColor returns a 24-bit color.
func RGBColor(r, g, b uint8) Color {
	return Color{typ: ColorRGB, r: r, g: g, b: b}
}

// HexColor parses "#RRGGBB" or "#RGB". The leading '#' is optional.
func HexColor(hex string) (Color, error) {
	digits := strings.TrimPrefix(hex, "#")
	if (len(digits) != 3 && len(digits) != 6) || strings.IndexFunc(digits, notHexDigit) >= 0 {
		return Color{}, fmt.Errorf("invalid hex color %q: expected #RGB or #RRGGBB", hex)
	}
	parsed, err := colorful.Hex("#" + strings.ToLower(digits))
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return RGBColor(parsed.RGB255()), nil
}

func notHexDigit(r rune) bool {
	switch {
	case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		return false
	}
	return true
}

// Type reports the color's representation.
func (c Color) Type() ColorType { return c.typ }

// IsDefault reports whether c is the terminal default.
func (c Color) IsDefault() bool { return c.typ == ColorDefault }

// ANSI returns the palette index. It panics unless c is a ColorANSI.
func (c Color) ANSI() uint8 {
	if c.typ != ColorANSI {
		panic(fmt.Sprintf("tui: ANSI() on %s color", c))
	}
	return c.r
}

// RGB returns the components of a ColorRGB. It panics for other types.
func (c Color) RGB() (r, g, b uint8) {
	if c.typ != ColorRGB {
		panic(fmt.Sprintf("tui: RGB() on %s color", c))
	}
	return c.r, c.g, c.b
}

// Equal compares colors by type and the fields that type uses.
func (c Color) Equal(other Color) bool {
	if c.typ != other.typ {
		return false
	}
	switch c.typ {
	case ColorANSI:
		return c.r == other.r
	case ColorRGB:
		return c == other
	}
	return true
}

// The sixteen colors of the DOS text-mode palette, mapped onto the ANSI
// palette entries terminals use for them.
var (
	Black         = ANSIColor(0)
	Blue          = ANSIColor(4)
	Green         = ANSIColor(2)
	Cyan          = ANSIColor(6)
	Red           = ANSIColor(1)
	Magenta       = ANSIColor(5)
	Brown         = ANSIColor(3)
	Grey          = ANSIColor(7)
	DarkGrey      = ANSIColor(8)
	BrightBlue    = ANSIColor(12)
	BrightGreen   = ANSIColor(10)
	BrightCyan    = ANSIColor(14)
	BrightRed     = ANSIColor(9)
	BrightMagenta = ANSIColor(13)
	BrightYellow  = ANSIColor(11)
	BrightWhite   = ANSIColor(15)
)

var colorNames = []struct {
	name  string
	color Color
}{
	{"black", Black},
	{"blue", Blue},
	{"green", Green},
	{"cyan", Cyan},
	{"red", Red},
	{"magenta", Magenta},
	{"brown", Brown},
	{"grey", Grey},
	{"darkGrey", DarkGrey},
	{"brightBlue", BrightBlue},
	{"brightGreen", BrightGreen},
	{"brightCyan", BrightCyan},
	{"brightRed", BrightRed},
	{"brightMagenta", BrightMagenta},
	{"brightYellow", BrightYellow},
	{"brightWhite", BrightWhite},
}

// ParseColor parses a palette name such as "brightWhite", "default", an
// ANSI palette index such as "208", or a hex color such as "#1e1e2e".
func ParseColor(s string) (Color, error) {
	if s == "" || s == "default" {
		return DefaultColor(), nil
	}
	if strings.HasPrefix(s, "#") {
		return HexColor(s)
	}
	for _, entry := range colorNames {
		if strings.EqualFold(entry.name, s) {
			return entry.color, nil
		}
	}
	index, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return Color{}, fmt.Errorf("unknown color %q", s)
	}
	return ANSIColor(uint8(index)), nil
}

// String returns the palette name, ANSI index, or hex form of the color.
func (c Color) String() string {
	switch c.typ {
	case ColorDefault:
		return "default"
	case ColorANSI:
		for _, entry := range colorNames {
			if entry.color.Equal(c) {
				return entry.name
			}
		}
		return strconv.Itoa(int(c.r))
	case ColorRGB:
		return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
	}
	return "?"
}

// MarshalText encodes the color in the form accepted by ParseColor.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a color written by MarshalText.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
