package tui

import (
	"fmt"
	"time"

	"github.com/grindlemire/go-tui-retained/internal/debug"
)

// AppOption is a functional option for configuring an Application.
type AppOption func(*Application) error

// WithInputLatency sets the polling timeout for the input source.
// Default is 50ms. Use InputLatencyBlocking (-1) for blocking mode.
// A value of 0 is not allowed and will return an error.
func WithInputLatency(d time.Duration) AppOption {
	return func(a *Application) error {
		if d == 0 {
			return fmt.Errorf("input latency of 0 (busy polling) is not allowed; use a positive duration or InputLatencyBlocking")
		}
		a.inputLatency = d
		return nil
	}
}

// WithFrameRate sets the target frame rate of the paint loop.
// Default is 60 fps (16ms frame duration). Valid range is 1-240 fps.
func WithFrameRate(fps int) AppOption {
	return func(a *Application) error {
		if fps < 1 {
			return fmt.Errorf("frame rate must be at least 1 fps")
		}
		if fps > 240 {
			return fmt.Errorf("frame rate cannot exceed 240 fps")
		}
		a.frameDuration = time.Second / time.Duration(fps)
		return nil
	}
}

// WithEventQueueSize sets the capacity of the event queue buffer.
// Default is 256. Must be at least 1.
func WithEventQueueSize(size int) AppOption {
	return func(a *Application) error {
		if size < 1 {
			return fmt.Errorf("event queue size must be at least 1")
		}
		a.eventQueueSize = size
		return nil
	}
}

// WithGlobalKeyHandler sets a handler that runs before key input is
// dispatched to the view tree. If the handler returns true, the input is
// consumed. Use this for app-level key bindings like quit.
func WithGlobalKeyHandler(fn func(KeyInput) bool) AppOption {
	return func(a *Application) error {
		a.globalKeyHandler = fn
		return nil
	}
}

// WithKeyMap adds application-wide key bindings. They are matched after the
// global key handler and before the view tree.
func WithKeyMap(km KeyMap) AppOption {
	return func(a *Application) error {
		a.keyMap = append(a.keyMap, km...)
		return nil
	}
}

// WithWatchers adds watchers started when Run begins.
func WithWatchers(watchers ...Watcher) AppOption {
	return func(a *Application) error {
		for _, w := range watchers {
			if w == nil {
				return fmt.Errorf("watcher cannot be nil")
			}
		}
		a.watchers = append(a.watchers, watchers...)
		return nil
	}
}

// WithTheme sets the theme of the root view. Default is DosTheme.
func WithTheme(theme *Theme) AppOption {
	return func(a *Application) error {
		if theme == nil {
			return fmt.Errorf("theme cannot be nil")
		}
		a.theme = theme
		return nil
	}
}

// WithThemeFile loads the root view's theme from a TOML file.
func WithThemeFile(path string) AppOption {
	return func(a *Application) error {
		theme, err := LoadThemeFile(path)
		if err != nil {
			return err
		}
		a.theme = theme
		return nil
	}
}

// WithDebugLog writes debug logging to path, overriding the TUI_DEBUG
// environment variable.
func WithDebugLog(path string) AppOption {
	return func(a *Application) error {
		return debug.Init(path)
	}
}

// WithScheduler replaces the scheduler used for deferred paints. The
// default runs scheduled tasks once per frame of Run. A ManualScheduler
// lets tests paint on demand.
func WithScheduler(s Scheduler) AppOption {
	return func(a *Application) error {
		if s == nil {
			return fmt.Errorf("scheduler cannot be nil")
		}
		a.scheduler = s
		return nil
	}
}
