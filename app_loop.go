package tui

import (
	"context"
	"time"

	"github.com/grindlemire/go-tui-retained/internal/debug"
)

// Start lays out the root view and schedules the first full paint. Run
// calls it; tests driving a ManualScheduler call it directly.
func (a *Application) Start() error {
	select {
	case <-a.stopCh:
		return ErrNotRunning
	default:
	}
	if a.started {
		return nil
	}
	a.started = true
	width, height := a.surface.Size()
	if err := a.root.SetFrame(NewRect(0, 0, width, height)); err != nil {
		return err
	}
	if err := a.root.LayoutChildren(); err != nil {
		return err
	}
	if a.FocusedView() == nil {
		a.ActiveRoot().FocusFirst()
	}
	a.redraw.Add(a.root.frame)
	return nil
}

// Run starts the application and runs the loop until Stop is called or ctx
// is done. Input is read on a separate goroutine; every view callback and
// paint runs on the goroutine calling Run.
func (a *Application) Run(ctx context.Context) error {
	if err := a.Start(); err != nil {
		return err
	}
	if a.input != nil {
		go a.readInput()
	}
	for _, w := range a.watchers {
		w.Start(a.eventQueue, a.stopCh)
	}

	runner, _ := a.scheduler.(pendingRunner)
	for {
		frameStart := time.Now()

		// Process queued work for up to half the frame budget
		eventDeadline := frameStart.Add(a.frameDuration / 2)
	events:
		for time.Now().Before(eventDeadline) {
			select {
			case fn := <-a.eventQueue:
				fn()
			case <-a.stopCh:
				return nil
			case <-ctx.Done():
				a.Stop()
				return ctx.Err()
			default:
				break events
			}
		}

		if runner != nil {
			runner.RunPending()
		}

		elapsed := time.Since(frameStart)
		if elapsed < a.frameDuration {
			select {
			case <-time.After(a.frameDuration - elapsed):
			case <-a.stopCh:
				return nil
			case <-ctx.Done():
				a.Stop()
				return ctx.Err()
			}
		}
	}
}

// Stop signals Run to return and closes the input source.
// Stop is idempotent - multiple calls are safe.
func (a *Application) Stop() {
	a.stopOnce.Do(func() {
		close(a.stopCh)
		if a.input != nil {
			if err := a.input.Close(); err != nil {
				debug.Log("Application.Stop: closing input: %v", err)
			}
		}
	})
}

// QueueUpdate enqueues a function to run on the loop goroutine.
// Safe to call from any goroutine. Use this to touch views from background work.
func (a *Application) QueueUpdate(fn func()) {
	select {
	case a.eventQueue <- fn:
	case <-a.stopCh:
		// Application is stopping, ignore update
	default:
		debug.Log("Application.QueueUpdate: queue full, dropping update")
	}
}

// readInput polls the input source and queues each input for the loop.
func (a *Application) readInput() {
	for {
		select {
		case <-a.stopCh:
			return
		default:
		}

		in, ok := a.input.PollInput(a.inputLatency)
		if !ok {
			continue
		}

		select {
		case a.eventQueue <- func() { a.HandleInput(in) }:
		case <-a.stopCh:
			return
		}
	}
}
