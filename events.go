package tui

import (
	"fmt"
	"sync"

	"github.com/grindlemire/go-tui-retained/internal/debug"
)

// Handler is a subscriber to an Emitter. A Handler's identity is its address:
// subscribing the same *Handler twice has no effect.
type Handler[T any] struct {
	fn func(T)
}

// NewHandler wraps fn so it can be subscribed and later unsubscribed.
func NewHandler[T any](fn func(T)) *Handler[T] {
	return &Handler[T]{fn: fn}
}

// Emitter is an ordered set of handlers for one event type.
//
// Emit calls every handler in subscription order. A handler that panics is
// recovered and logged; the remaining handlers still run and the panic never
// reaches the caller of Emit.
type Emitter[T any] struct {
	mu       sync.Mutex
	handlers []*Handler[T]
	failures int
}

// Subscribe adds h. It returns false if h is nil or already subscribed.
func (e *Emitter[T]) Subscribe(h *Handler[T]) bool {
	if h == nil {
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, existing := range e.handlers {
		if existing == h {
			return false
		}
	}
	e.handlers = append(e.handlers, h)
	return true
}

// On subscribes fn and returns its Handler for later removal.
func (e *Emitter[T]) On(fn func(T)) *Handler[T] {
	h := NewHandler(fn)
	e.Subscribe(h)
	return h
}

// Unsubscribe removes h. It returns false if h was not subscribed.
func (e *Emitter[T]) Unsubscribe(h *Handler[T]) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, existing := range e.handlers {
		if existing == h {
			e.handlers = append(e.handlers[:i:i], e.handlers[i+1:]...)
			return true
		}
	}
	return false
}

// HasSubscribers reports whether any handler is subscribed.
func (e *Emitter[T]) HasSubscribers() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.handlers) > 0
}

// Failures returns how many handler invocations have panicked so far.
func (e *Emitter[T]) Failures() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.failures
}

// Emit sends event to every subscribed handler.
func (e *Emitter[T]) Emit(event T) {
	e.mu.Lock()
	handlers := e.handlers
	e.mu.Unlock()

	for _, h := range handlers {
		if err := invokeHandler(h, event); err != nil {
			debug.Log("Emitter.Emit: handler failed: %v", err)
			e.mu.Lock()
			e.failures++
			e.mu.Unlock()
		}
	}
}

func invokeHandler[T any](h *Handler[T], event T) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	h.fn(event)
	return nil
}
