package tui

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Colors is a foreground and background pair.
type Colors struct {
	Foreground Color `toml:"foreground"`
	Background Color `toml:"background"`
}

// State selects an entry of a ColorScheme.
type State int

const (
	StateNormal State = iota
	StateHover
	StateFocused
	StateDisabled
)

func (s State) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateHover:
		return "hover"
	case StateFocused:
		return "focused"
	case StateDisabled:
		return "disabled"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// ColorScheme holds the colors of a simple widget in each state.
type ColorScheme struct {
	Normal   Colors `toml:"normal"`
	Hover    Colors `toml:"hover"`
	Focused  Colors `toml:"focused"`
	Disabled Colors `toml:"disabled"`
}

// For returns the colors for state.
func (s ColorScheme) For(state State) Colors {
	switch state {
	case StateHover:
		return s.Hover
	case StateFocused:
		return s.Focused
	case StateDisabled:
		return s.Disabled
	}
	return s.Normal
}

// MenuBarColorScheme holds the colors of a menu bar, with separate entries
// for hot-key letters.
type MenuBarColorScheme struct {
	Normal        Colors `toml:"normal"`
	HotKey        Colors `toml:"hot_key"`
	Focused       Colors `toml:"focused"`
	FocusedHotKey Colors `toml:"focused_hot_key"`
	Disabled      Colors `toml:"disabled"`
}

// MenuColorScheme holds the colors of a drop-down menu.
type MenuColorScheme struct {
	Frame         Colors `toml:"frame"`
	Normal        Colors `toml:"normal"`
	HotKey        Colors `toml:"hot_key"`
	Focused       Colors `toml:"focused"`
	FocusedHotKey Colors `toml:"focused_hot_key"`
	Disabled      Colors `toml:"disabled"`
}

// Theme is the color lookup table shared by a view subtree.
type Theme struct {
	Default    ColorScheme        `toml:"default"`
	MenuBar    MenuBarColorScheme `toml:"menu_bar"`
	Menu       MenuColorScheme    `toml:"menu"`
	Button     ColorScheme        `toml:"button"`
	CheckBox   ColorScheme        `toml:"check_box"`
	RadioGroup ColorScheme        `toml:"radio_group"`
	TextBox    ColorScheme        `toml:"text_box"`
}

// LoadTheme decodes a TOML theme. Keys absent from r keep their DosTheme
// values; unknown keys are an error.
func LoadTheme(r io.Reader) (*Theme, error) {
	theme := DosTheme()
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(theme); err != nil {
		return nil, fmt.Errorf("failed to decode theme: %w", err)
	}
	return theme, nil
}

// LoadThemeFile reads a TOML theme from path.
func LoadThemeFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme: %w", err)
	}
	return LoadTheme(bytes.NewReader(data))
}

// MarshalTOML encodes the theme in the format read by LoadTheme.
func (t *Theme) MarshalTOML() ([]byte, error) {
	data, err := toml.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("failed to encode theme: %w", err)
	}
	return data, nil
}
