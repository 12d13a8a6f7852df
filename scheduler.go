package tui

import "sync"

// Scheduler defers tasks to a later tick of the event loop.
type Scheduler interface {
	// Schedule queues task to run once, after the current synchronous turn.
	Schedule(task func())
}

// ManualScheduler queues tasks until RunPending is called.
// It lets tests decide when a deferred paint happens.
type ManualScheduler struct {
	mu      sync.Mutex
	pending []func()
}

var _ Scheduler = (*ManualScheduler)(nil)

// Schedule queues task.
func (s *ManualScheduler) Schedule(task func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, task)
}

// Pending returns the number of queued tasks.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// RunPending runs the tasks queued so far and returns how many ran. Tasks
// scheduled while running wait for the next call.
func (s *ManualScheduler) RunPending() int {
	s.mu.Lock()
	tasks := s.pending
	s.pending = nil
	s.mu.Unlock()

	for _, task := range tasks {
		task()
	}
	return len(tasks)
}
