package tui

import (
	"time"

	"github.com/grindlemire/go-tui-retained/internal/debug"
)

// Watcher feeds values from outside the view tree into a running
// Application. Run starts every watcher passed to WithWatchers once the
// input reader is up; handlers are sent to the loop goroutine as queued
// updates, so they may mutate views directly.
type Watcher interface {
	// Start launches the watcher. It must not block, and its goroutine must
	// exit once stopCh is closed.
	Start(eventQueue chan<- func(), stopCh <-chan struct{})
}

// ChannelWatcher delivers each value received on a channel to a handler.
type ChannelWatcher[T any] struct {
	ch      <-chan T
	handler func(T)
}

// NewChannelWatcher returns a watcher that calls fn on the loop goroutine
// for every value read from ch, until ch is closed or the application stops.
//
//	progress := make(chan int)
//	w := tui.NewChannelWatcher(progress, func(pct int) {
//	    status.SetText(fmt.Sprintf("%d%%", pct))
//	})
func NewChannelWatcher[T any](ch <-chan T, fn func(T)) *ChannelWatcher[T] {
	return &ChannelWatcher[T]{ch: ch, handler: fn}
}

// Watch is NewChannelWatcher returning the Watcher interface, for use in
// WithWatchers argument lists.
func Watch[T any](ch <-chan T, fn func(T)) Watcher {
	return NewChannelWatcher(ch, fn)
}

func (w *ChannelWatcher[T]) Start(eventQueue chan<- func(), stopCh <-chan struct{}) {
	go forward(w.ch, w.handler, eventQueue, stopCh)
}

type timerWatcher struct {
	interval time.Duration
	handler  func(time.Time)
}

// OnTimer returns a watcher that calls fn with the tick time every interval.
// Ticks that arrive while the loop is busy are dropped by the ticker rather
// than queued. It panics if interval is not positive.
func OnTimer(interval time.Duration, fn func(time.Time)) Watcher {
	if interval <= 0 {
		panic("tui: OnTimer requires a positive interval")
	}
	return &timerWatcher{interval: interval, handler: fn}
}

func (w *timerWatcher) Start(eventQueue chan<- func(), stopCh <-chan struct{}) {
	ticker := time.NewTicker(w.interval)
	debug.Log("timer watcher: every %s", w.interval)
	go func() {
		defer ticker.Stop()
		forward(ticker.C, w.handler, eventQueue, stopCh)
	}()
}

// forward queues fn(v) for each v read from src. It returns when src is
// closed or stopCh is closed, including while blocked on a full queue.
func forward[T any](src <-chan T, fn func(T), eventQueue chan<- func(), stopCh <-chan struct{}) {
	for {
		var v T
		var ok bool
		select {
		case <-stopCh:
			return
		case v, ok = <-src:
			if !ok {
				return
			}
		}
		select {
		case eventQueue <- func() { fn(v) }:
		case <-stopCh:
			return
		}
	}
}
