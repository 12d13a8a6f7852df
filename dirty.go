package tui

import "github.com/grindlemire/go-tui-retained/internal/debug"

// RedrawTracker coalesces invalidated regions into a single pending region
// and asks its Scheduler for one paint per tick.
type RedrawTracker struct {
	scheduler Scheduler
	paint     func(region Rect)

	pending   Rect
	dirty     bool
	scheduled bool
}

// NewRedrawTracker creates a tracker that calls paint with the union of all
// regions added since the previous paint.
func NewRedrawTracker(scheduler Scheduler, paint func(region Rect)) *RedrawTracker {
	if scheduler == nil {
		panic("tui: NewRedrawTracker requires a scheduler")
	}
	return &RedrawTracker{scheduler: scheduler, paint: paint}
}

// Add unions region into the pending region and schedules a paint if none
// is scheduled yet. Empty regions are ignored.
func (t *RedrawTracker) Add(region Rect) {
	if region.IsEmpty() {
		return
	}
	if t.dirty {
		t.pending = t.pending.Union(region)
	} else {
		t.pending = region
		t.dirty = true
	}
	if !t.scheduled {
		t.scheduled = true
		t.scheduler.Schedule(t.flush)
	}
}

// Pending returns the region waiting to be painted, and false when there is none.
func (t *RedrawTracker) Pending() (Rect, bool) {
	return t.pending, t.dirty
}

// Scheduled reports whether a paint is queued.
func (t *RedrawTracker) Scheduled() bool {
	return t.scheduled
}

func (t *RedrawTracker) flush() {
	region, dirty := t.pending, t.dirty
	t.pending = Rect{}
	t.dirty = false
	t.scheduled = false

	// Regions added while painting schedule the next flush.
	if dirty && t.paint != nil {
		debug.Log("RedrawTracker.flush: painting %s", region)
		t.paint(region)
	}
}
