package tui

import (
	"os"
	"testing"

	"github.com/grindlemire/go-tui-retained/internal/debug"
)

func TestMain(m *testing.M) {
	// Tests must not append to a log named by the developer's TUI_DEBUG.
	if err := debug.Init(""); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// newTestApp creates an Application over a MockSurface whose paints run
// only when the returned scheduler is drained.
func newTestApp(t *testing.T, width, height int, opts ...AppOption) (*Application, *MockSurface, *ManualScheduler) {
	t.Helper()
	surface := NewMockSurface(width, height)
	sched := &ManualScheduler{}
	app, err := NewApplication(surface, nil, append([]AppOption{WithScheduler(sched)}, opts...)...)
	if err != nil {
		t.Fatalf("NewApplication() error = %v", err)
	}
	return app, surface, sched
}

// startTestApp starts app and runs the first paint.
func startTestApp(t *testing.T, app *Application, sched *ManualScheduler) {
	t.Helper()
	if err := app.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	sched.RunPending()
}

func keyDown(key Key, mods ...Modifier) KeyInput {
	in := KeyInput{Type: KeyEventDown, Key: key}
	for _, m := range mods {
		in.Mod |= m
	}
	return in
}

func runeDown(r rune) KeyInput {
	return KeyInput{Type: KeyEventDown, Key: KeyRune, Rune: r}
}

// click sends a press and release at (x, y).
func click(app *Application, x, y int) bool {
	app.HandleInput(MouseInput{Type: MouseEventDown, X: x, Y: y, Buttons: ButtonPrimary})
	return app.HandleInput(MouseInput{Type: MouseEventUp, X: x, Y: y, Buttons: ButtonPrimary})
}
