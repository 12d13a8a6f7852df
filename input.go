package tui

import (
	"fmt"
	"time"
)

// Input is a normalized event produced by an InputSource: KeyInput,
// MouseInput, or ResizeInput.
type Input interface {
	isInput()
}

// InputSource produces normalized input for an Application.
// It is designed for polling-based event loops.
type InputSource interface {
	// PollInput reads the next input with a timeout.
	// Returns (input, true) if one was read, or (nil, false) on timeout.
	// A negative timeout blocks until input arrives or the source is closed.
	PollInput(timeout time.Duration) (Input, bool)

	// Close releases resources and wakes any blocked PollInput.
	Close() error
}

// KeyEventType distinguishes the phases of a key stroke.
type KeyEventType int

const (
	// KeyEventDown is sent when a key is pressed.
	KeyEventDown KeyEventType = iota
	// KeyEventUp is sent when a key is released.
	KeyEventUp
	// KeyEventPress is sent for a key that produces input, after KeyEventDown.
	KeyEventPress
	// KeyEventHotKey is sent for Alt chords before KeyEventDown, to every view
	// with a hot-key handler.
	KeyEventHotKey
)

func (t KeyEventType) String() string {
	switch t {
	case KeyEventDown:
		return "keydown"
	case KeyEventUp:
		return "keyup"
	case KeyEventPress:
		return "keypress"
	case KeyEventHotKey:
		return "hotkey"
	}
	return fmt.Sprintf("KeyEventType(%d)", int(t))
}

// KeyInput is a normalized keyboard event.
type KeyInput struct {
	Type KeyEventType
	Key  Key
	// Rune is the character for KeyRune.
	Rune rune
	// Code is the host's name for the physical key, for example "Ctrl+A" or "F1".
	Code string
	Mod  Modifier
}

func (KeyInput) isInput() {}

// IsRune returns true if this is a printable character key.
func (k KeyInput) IsRune() bool {
	return k.Key == KeyRune
}

// Is reports whether the input is key with exactly the given modifiers.
func (k KeyInput) Is(key Key, mods ...Modifier) bool {
	if k.Key != key {
		return false
	}
	var want Modifier
	for _, m := range mods {
		want |= m
	}
	return k.Mod == want
}

func (k KeyInput) String() string {
	name := k.Key.String()
	if k.Key == KeyRune {
		name = string(k.Rune)
	}
	if k.Mod != ModNone {
		name = k.Mod.String() + "+" + name
	}
	return k.Type.String() + " " + name
}

// MouseEventType distinguishes mouse actions.
type MouseEventType int

const (
	// MouseEventMove is sent when the pointer moves.
	MouseEventMove MouseEventType = iota
	// MouseEventDown is sent when a button is pressed.
	MouseEventDown
	// MouseEventUp is sent when a button is released.
	MouseEventUp
	// MouseEventClick is synthesized when a button is released over the
	// view that received the press.
	MouseEventClick
	// MouseEventDoubleClick is sent for a second click in quick succession.
	MouseEventDoubleClick
	// MouseEventEnter is synthesized when the pointer starts hovering a view.
	MouseEventEnter
	// MouseEventLeave is synthesized when the pointer stops hovering a view.
	MouseEventLeave
)

func (t MouseEventType) String() string {
	switch t {
	case MouseEventMove:
		return "mousemove"
	case MouseEventDown:
		return "mousedown"
	case MouseEventUp:
		return "mouseup"
	case MouseEventClick:
		return "click"
	case MouseEventDoubleClick:
		return "dblclick"
	case MouseEventEnter:
		return "mouseenter"
	case MouseEventLeave:
		return "mouseleave"
	}
	return fmt.Sprintf("MouseEventType(%d)", int(t))
}

// MouseButton is a bit set of pressed mouse buttons.
type MouseButton uint8

const (
	// ButtonPrimary is the left button.
	ButtonPrimary MouseButton = 1 << iota
	// ButtonSecondary is the right button.
	ButtonSecondary
	// ButtonMiddle is the middle button.
	ButtonMiddle
)

// MouseInput is a normalized mouse event in screen cells.
type MouseInput struct {
	Type    MouseEventType
	X, Y    int
	Buttons MouseButton
	Mod     Modifier
}

func (MouseInput) isInput() {}

// ResizeInput reports a new surface size.
type ResizeInput struct {
	Width, Height int
}

func (ResizeInput) isInput() {}

// KeyEvent is a keyboard event as delivered to view handlers.
type KeyEvent struct {
	KeyInput

	// Source is the view the event was dispatched to: the focused view.
	Source *View
	// Current is the view whose handler is running.
	Current *View
	// Handled stops bubbling once a handler sets it.
	Handled bool
}

// MouseEvent is a mouse event as delivered to view handlers.
type MouseEvent struct {
	MouseInput

	// Source is the deepest view under the pointer.
	Source *View
	// Current is the view whose handler is running.
	Current *View
	// LocalX and LocalY are the pointer position in Current's coordinates.
	LocalX, LocalY int
	// Handled stops bubbling once a handler sets it.
	Handled bool
}
