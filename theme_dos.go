package tui

// defaultTheme is used by view trees that never set a theme.
var defaultTheme = DosTheme()

// DosTheme returns a new copy of the classic blue DOS text-mode theme.
func DosTheme() *Theme {
	base := ColorScheme{
		Normal:   Colors{Foreground: BrightWhite, Background: Blue},
		Hover:    Colors{Foreground: BrightYellow, Background: DarkGrey},
		Focused:  Colors{Foreground: BrightWhite, Background: Cyan},
		Disabled: Colors{Foreground: Grey, Background: Blue},
	}
	menuBar := MenuBarColorScheme{
		Normal:        Colors{Foreground: Black, Background: Grey},
		HotKey:        Colors{Foreground: Red, Background: Grey},
		Focused:       Colors{Foreground: BrightWhite, Background: Blue},
		FocusedHotKey: Colors{Foreground: BrightRed, Background: Blue},
		Disabled:      Colors{Foreground: Grey, Background: Grey},
	}
	return &Theme{
		Default: base,
		MenuBar: menuBar,
		Menu: MenuColorScheme{
			Frame:         menuBar.Normal,
			Normal:        menuBar.Normal,
			HotKey:        menuBar.HotKey,
			Focused:       menuBar.Focused,
			FocusedHotKey: menuBar.FocusedHotKey,
			Disabled:      menuBar.Disabled,
		},
		Button:     base,
		CheckBox:   base,
		RadioGroup: base,
		TextBox:    base,
	}
}
