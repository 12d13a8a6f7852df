package tui

import (
	"sync"
	"time"

	"github.com/grindlemire/go-tui-retained/internal/debug"
)

// InputLatencyBlocking is a special value for WithInputLatency that makes
// the input source block indefinitely until input is available.
const InputLatencyBlocking = -1 * time.Millisecond

// pendingRunner is implemented by schedulers the loop can drain each frame.
type pendingRunner interface {
	RunPending() int
}

// Application owns a root view sized to the surface, any modal views shown
// above it, and the loop that feeds input into the tree and paints
// invalidated regions.
type Application struct {
	surface Surface
	input   InputSource
	root    *View
	modals  []*View
	focus   focusStack

	dispatcher *Dispatcher
	redraw     *RedrawTracker
	scheduler  Scheduler
	theme      *Theme
	nextID     int

	invalidationHandlers map[*View]*Handler[RegionInvalidatedEvent]

	// Event loop fields
	eventQueue       chan func()
	stopCh           chan struct{}
	started          bool
	stopOnce         sync.Once
	globalKeyHandler func(KeyInput) bool // Returns true if input consumed
	keyMap           KeyMap
	watchers         []Watcher

	// Configuration (set via options)
	inputLatency   time.Duration // Polling timeout for the input source (default 50ms, -1 for blocking)
	frameDuration  time.Duration // Duration per frame (default 16ms = 60fps)
	eventQueueSize int           // Capacity of event queue (default 256, used during construction)
}

// NewApplication creates an application painting to surface and reading
// from input. input may be nil when input is fed through HandleInput.
func NewApplication(surface Surface, input InputSource, opts ...AppOption) (*Application, error) {
	if surface == nil {
		panic("tui: NewApplication requires a surface")
	}
	a := &Application{
		surface:              surface,
		input:                input,
		theme:                DosTheme(),
		inputLatency:         50 * time.Millisecond,
		frameDuration:        time.Second / 60,
		eventQueueSize:       256,
		invalidationHandlers: make(map[*View]*Handler[RegionInvalidatedEvent]),
		stopCh:               make(chan struct{}),
	}
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}
	if a.scheduler == nil {
		a.scheduler = &ManualScheduler{}
	}

	a.eventQueue = make(chan func(), a.eventQueueSize)
	a.dispatcher = NewDispatcher()
	a.redraw = NewRedrawTracker(a.scheduler, a.paint)

	width, height := surface.Size()
	a.root = newRootView(NewRect(0, 0, width, height), a.theme)
	a.attach(a.root)
	return a, nil
}

// Root returns the view that fills the surface. Add the application's
// views to it.
func (a *Application) Root() *View {
	return a.root
}

// Surface returns the surface the application paints to.
func (a *Application) Surface() Surface {
	return a.surface
}

// Size returns the surface dimensions.
func (a *Application) Size() (width, height int) {
	return a.root.frame.Width, a.root.frame.Height
}

// Theme returns the root view's theme.
func (a *Application) Theme() *Theme {
	return a.root.Theme()
}

// Redraw returns the tracker that collects invalidated screen regions.
func (a *Application) Redraw() *RedrawTracker {
	return a.redraw
}

// ActiveRoot returns the view tree currently receiving input: the topmost
// modal, or the root view.
func (a *Application) ActiveRoot() *View {
	if n := len(a.modals); n > 0 {
		return a.modals[n-1]
	}
	return a.root
}

// FocusedView returns the focused view of the active tree, or nil.
func (a *Application) FocusedView() *View {
	return a.ActiveRoot().FocusedView()
}

// Resize resizes the root view and re-centers any modals. The whole surface
// is repainted on the next tick.
func (a *Application) Resize(width, height int) error {
	debug.Log("Application.Resize: %dx%d", width, height)
	screen := NewRect(0, 0, width, height)
	if err := a.root.SetFrame(screen); err != nil {
		return err
	}
	for _, modal := range a.modals {
		if err := modal.setFrame(centerIn(screen, modal.frame)); err != nil {
			return err
		}
	}
	a.redraw.Add(screen)
	return nil
}

// HandleInput routes one input into the active tree and reports whether it
// was handled. It must run on the loop goroutine; Run calls it for input
// read from the InputSource.
func (a *Application) HandleInput(in Input) bool {
	switch in := in.(type) {
	case ResizeInput:
		if err := a.Resize(in.Width, in.Height); err != nil {
			debug.Log("Application.HandleInput: resize failed: %v", err)
		}
		return true
	case KeyInput:
		if a.globalKeyHandler != nil && a.globalKeyHandler(in) {
			return true
		}
		if a.keyMap.handle(in) {
			return true
		}
		root := a.ActiveRoot()
		if a.dispatcher.DispatchKey(root, in) {
			return true
		}
		if in.Type == KeyEventDown && producesInput(in) {
			press := in
			press.Type = KeyEventPress
			return a.dispatcher.DispatchKey(root, press)
		}
		return false
	case MouseInput:
		return a.dispatcher.DispatchMouse(a.ActiveRoot(), in)
	}
	return false
}

// producesInput reports whether an unhandled key down is followed by a key press.
func producesInput(in KeyInput) bool {
	return in.Key == KeyRune || in.Key == KeyEnter
}

// nextViewID allocates an identifier for a view attached to a.
func (a *Application) nextViewID() int {
	a.nextID++
	return a.nextID
}

// attach binds a top-level view to the application and forwards its
// invalidations, translated to surface coordinates, to the redraw tracker.
func (a *Application) attach(top *View) {
	top.setAppRecursive(a)
	a.invalidationHandlers[top] = top.invalidated.On(func(ev RegionInvalidatedEvent) {
		a.redraw.Add(ev.Region.Translate(ev.Source.frame.X, ev.Source.frame.Y))
	})
}

func (a *Application) detach(top *View) {
	if h, ok := a.invalidationHandlers[top]; ok {
		top.invalidated.Unsubscribe(h)
		delete(a.invalidationHandlers, top)
	}
	top.setAppRecursive(nil)
}
