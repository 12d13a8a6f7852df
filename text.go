package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// TextAlign specifies how text is aligned within its width.
type TextAlign int

const (
	// TextAlignLeft aligns text to the left edge (default).
	TextAlignLeft TextAlign = iota
	// TextAlignCenter centers text horizontally.
	TextAlignCenter
	// TextAlignRight aligns text to the right edge.
	TextAlignRight
	// TextAlignJustify spreads words across the full width.
	TextAlignJustify
)

// StringWidth returns the number of cells s occupies.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// AlignString pads or cuts s to exactly width cells according to align.
func AlignString(s string, width int, align TextAlign) string {
	switch align {
	case TextAlignCenter:
		return CenterString(s, width)
	case TextAlignRight:
		return RightAlignString(s, width)
	case TextAlignJustify:
		return JustifyString(s, width)
	}
	return LeftAlignString(s, width)
}

// LeftAlignString keeps the start of s and pads it on the right to width cells.
func LeftAlignString(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.FillRight(runewidth.Truncate(s, width, ""), width)
}

// RightAlignString keeps the end of s and pads it on the left to width cells.
func RightAlignString(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if sw := StringWidth(s); sw > width {
		s = skipCells(s, sw-width)
	}
	return runewidth.FillLeft(s, width)
}

// CenterString centers s in width cells. When s is wider, its middle is kept.
func CenterString(s string, width int) string {
	if width <= 0 {
		return ""
	}
	sw := StringWidth(s)
	if sw > width {
		return LeftAlignString(skipCells(s, (sw-width)/2), width)
	}
	left := (width - sw) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-sw-left)
}

// JustifyString spreads the words of s over width cells. The gap after the
// middle word takes the remainder. Text that does not fit, or has a single
// word, is left aligned.
func JustifyString(s string, width int) string {
	words := strings.Fields(s)
	if len(words) < 2 || StringWidth(s) >= width {
		return LeftAlignString(s, width)
	}

	chars := 0
	for _, w := range words {
		chars += StringWidth(w)
	}
	remaining := width - chars
	gaps := len(words) - 1
	pad := remaining / gaps
	midWord := (len(words)+1)/2 - 1
	midPad := pad + remaining - pad*gaps

	var sb strings.Builder
	for i, w := range words {
		sb.WriteString(w)
		switch {
		case i == len(words)-1:
		case i == midWord:
			sb.WriteString(strings.Repeat(" ", midPad))
		default:
			sb.WriteString(strings.Repeat(" ", pad))
		}
	}
	return sb.String()
}

// skipCells drops leading runes of s until at least n cells are removed.
func skipCells(s string, n int) string {
	skipped := 0
	for i, r := range s {
		if skipped >= n {
			return s[i:]
		}
		skipped += runewidth.RuneWidth(r)
	}
	return ""
}
