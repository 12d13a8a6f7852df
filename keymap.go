package tui

// KeyMap is a list of application-wide key bindings, matched in order
// against every key down before it is dispatched to the view tree.
type KeyMap []KeyBinding

// KeyBinding associates a key pattern with a handler.
type KeyBinding struct {
	Pattern KeyPattern
	Handler func(KeyInput)
	Stop    bool // If true, later bindings and the view tree do not see the key
}

// KeyPattern identifies which key inputs match a binding.
type KeyPattern struct {
	Key           Key      // Specific key (KeyEscape, KeyF1, etc.), or 0
	Rune          rune     // Specific rune, or 0
	AnyRune       bool     // Match any printable character
	Mod           Modifier // Required modifiers (when non-zero, input must have exactly these mods)
	RequireNoMods bool     // When true, input must have no modifiers (Mod field is ignored)
}

// Matches reports whether in satisfies the pattern.
func (p KeyPattern) Matches(in KeyInput) bool {
	switch {
	case p.AnyRune:
		if in.Key != KeyRune {
			return false
		}
	case p.Rune != 0:
		if in.Key != KeyRune || in.Rune != p.Rune {
			return false
		}
	case p.Key != KeyNone:
		if in.Key != p.Key {
			return false
		}
	default:
		return false
	}

	if p.RequireNoMods {
		return in.Mod == ModNone
	}
	if p.Mod != ModNone {
		return in.Mod == p.Mod
	}
	return true
}

// OnKey creates a broadcast binding for a specific key.
// Later bindings and the view tree also see the key.
func OnKey(key Key, handler func(KeyInput)) KeyBinding {
	return KeyBinding{
		Pattern: KeyPattern{Key: key},
		Handler: handler,
		Stop:    false,
	}
}

// OnKeyStop creates a stop-propagation binding for a specific key.
func OnKeyStop(key Key, handler func(KeyInput)) KeyBinding {
	return KeyBinding{
		Pattern: KeyPattern{Key: key},
		Handler: handler,
		Stop:    true,
	}
}

// OnRune creates a broadcast binding for a specific printable character.
func OnRune(r rune, handler func(KeyInput)) KeyBinding {
	return KeyBinding{
		Pattern: KeyPattern{Rune: r},
		Handler: handler,
		Stop:    false,
	}
}

// OnRuneStop creates a stop-propagation binding for a specific printable character.
func OnRuneStop(r rune, handler func(KeyInput)) KeyBinding {
	return KeyBinding{
		Pattern: KeyPattern{Rune: r},
		Handler: handler,
		Stop:    true,
	}
}

// OnCtrlStop creates a stop-propagation binding for Ctrl and a letter,
// such as Ctrl+Q to quit.
func OnCtrlStop(r rune, handler func(KeyInput)) KeyBinding {
	return KeyBinding{
		Pattern: KeyPattern{Rune: r, Mod: ModCtrl},
		Handler: handler,
		Stop:    true,
	}
}

// OnRunes creates a broadcast binding for all printable characters.
func OnRunes(handler func(KeyInput)) KeyBinding {
	return KeyBinding{
		Pattern: KeyPattern{AnyRune: true},
		Handler: handler,
		Stop:    false,
	}
}

// handle runs every binding matching in and reports whether a stop
// binding consumed it. Only key downs are matched.
func (m KeyMap) handle(in KeyInput) bool {
	if in.Type != KeyEventDown {
		return false
	}
	for _, b := range m {
		if b.Handler == nil || !b.Pattern.Matches(in) {
			continue
		}
		b.Handler(in)
		if b.Stop {
			return true
		}
	}
	return false
}
