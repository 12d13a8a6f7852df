package tui

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/grindlemire/go-tui-retained/internal/debug"
)

var tcellKeys = map[tcell.Key]Key{
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyTab:        KeyTab,
	tcell.KeyEscape:     KeyEscape,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyDelete:     KeyDelete,
	tcell.KeyInsert:     KeyInsert,
	tcell.KeyUp:         KeyUp,
	tcell.KeyDown:       KeyDown,
	tcell.KeyLeft:       KeyLeft,
	tcell.KeyRight:      KeyRight,
	tcell.KeyHome:       KeyHome,
	tcell.KeyEnd:        KeyEnd,
	tcell.KeyPgUp:       KeyPageUp,
	tcell.KeyPgDn:       KeyPageDown,
	tcell.KeyF1:         KeyF1,
	tcell.KeyF2:         KeyF2,
	tcell.KeyF3:         KeyF3,
	tcell.KeyF4:         KeyF4,
	tcell.KeyF5:         KeyF5,
	tcell.KeyF6:         KeyF6,
	tcell.KeyF7:         KeyF7,
	tcell.KeyF8:         KeyF8,
	tcell.KeyF9:         KeyF9,
	tcell.KeyF10:        KeyF10,
	tcell.KeyF11:        KeyF11,
	tcell.KeyF12:        KeyF12,
}

const tcellButtons = tcell.Button1 | tcell.Button2 | tcell.Button3

// TcellInput is an InputSource reading events from a tcell screen. Mouse
// button masks are turned into down, up, and move inputs.
type TcellInput struct {
	events    chan tcell.Event
	quit      chan struct{}
	closeOnce sync.Once

	// Only touched by the goroutine calling PollInput.
	buttons tcell.ButtonMask
}

var _ InputSource = (*TcellInput)(nil)

// NewTcellInput starts forwarding events from screen. Enable mouse
// reporting on the screen to receive mouse input.
func NewTcellInput(screen tcell.Screen) *TcellInput {
	in := &TcellInput{
		events: make(chan tcell.Event, 64),
		quit:   make(chan struct{}),
	}
	go screen.ChannelEvents(in.events, in.quit)
	return in
}

// PollInput returns the next translated input. Events with no equivalent,
// such as paste markers, are reported as a timeout.
func (in *TcellInput) PollInput(timeout time.Duration) (Input, bool) {
	var (
		ev tcell.Event
		ok bool
	)
	if timeout < 0 {
		ev, ok = <-in.events
	} else {
		select {
		case ev, ok = <-in.events:
		case <-time.After(timeout):
			return nil, false
		}
	}
	if !ok {
		return nil, false
	}
	return in.translate(ev)
}

// Close stops forwarding events.
func (in *TcellInput) Close() error {
	in.closeOnce.Do(func() { close(in.quit) })
	return nil
}

func (in *TcellInput) translate(ev tcell.Event) (Input, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return translateTcellKey(ev), true
	case *tcell.EventMouse:
		return in.translateMouse(ev), true
	case *tcell.EventResize:
		width, height := ev.Size()
		return ResizeInput{Width: width, Height: height}, true
	}
	debug.Log("TcellInput.translate: ignoring %T", ev)
	return nil, false
}

func translateTcellKey(ev *tcell.EventKey) KeyInput {
	in := KeyInput{
		Type: KeyEventDown,
		Code: ev.Name(),
		Mod:  translateTcellMod(ev.Modifiers()),
	}
	k := ev.Key()
	switch {
	case k == tcell.KeyRune:
		in.Key = KeyRune
		in.Rune = ev.Rune()
	case k == tcell.KeyBacktab:
		in.Key = KeyTab
		in.Mod |= ModShift
	case tcellKeys[k] != KeyNone:
		in.Key = tcellKeys[k]
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		in.Key = KeyRune
		in.Rune = 'a' + rune(k-tcell.KeyCtrlA)
		in.Mod |= ModCtrl
	}
	return in
}

func (in *TcellInput) translateMouse(ev *tcell.EventMouse) MouseInput {
	x, y := ev.Position()
	buttons := ev.Buttons() & tcellButtons
	out := MouseInput{
		Type:    MouseEventMove,
		X:       x,
		Y:       y,
		Buttons: translateTcellButtons(buttons),
		Mod:     translateTcellMod(ev.Modifiers()),
	}
	switch {
	case in.buttons == tcell.ButtonNone && buttons != tcell.ButtonNone:
		out.Type = MouseEventDown
	case in.buttons != tcell.ButtonNone && buttons == tcell.ButtonNone:
		out.Type = MouseEventUp
		out.Buttons = translateTcellButtons(in.buttons)
	}
	in.buttons = buttons
	return out
}

func translateTcellButtons(mask tcell.ButtonMask) MouseButton {
	var b MouseButton
	if mask&tcell.Button1 != 0 {
		b |= ButtonPrimary
	}
	if mask&tcell.Button2 != 0 {
		b |= ButtonSecondary
	}
	if mask&tcell.Button3 != 0 {
		b |= ButtonMiddle
	}
	return b
}

func translateTcellMod(mod tcell.ModMask) Modifier {
	var m Modifier
	if mod&tcell.ModShift != 0 {
		m |= ModShift
	}
	if mod&tcell.ModCtrl != 0 {
		m |= ModCtrl
	}
	if mod&tcell.ModAlt != 0 {
		m |= ModAlt
	}
	if mod&tcell.ModMeta != 0 {
		m |= ModMeta
	}
	return m
}
