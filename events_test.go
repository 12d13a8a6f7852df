package tui

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEmitter_CallsHandlersInOrder(t *testing.T) {
	var e Emitter[int]
	var got []string
	e.On(func(n int) { got = append(got, "first") })
	e.On(func(n int) { got = append(got, "second") })

	e.Emit(1)
	if diff := cmp.Diff([]string{"first", "second"}, got); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
}

func TestEmitter_PanickingHandlerIsIsolated(t *testing.T) {
	var e Emitter[string]
	var got []string
	e.On(func(s string) { got = append(got, "before "+s) })
	e.On(func(string) { panic("boom") })
	e.On(func(s string) { got = append(got, "after "+s) })

	e.Emit("x")
	e.Emit("y")

	want := []string{"before x", "after x", "before y", "after y"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
	if e.Failures() != 2 {
		t.Errorf("Failures() = %d, want 2", e.Failures())
	}
}

func TestEmitter_SubscribeAndUnsubscribe(t *testing.T) {
	var e Emitter[int]
	var total int
	h := NewHandler(func(n int) { total += n })

	type step struct {
		name string
		do   func() bool
		want bool
	}
	steps := []step{
		{name: "subscribe", do: func() bool { return e.Subscribe(h) }, want: true},
		{name: "subscribe again", do: func() bool { return e.Subscribe(h) }, want: false},
		{name: "subscribe nil", do: func() bool { return e.Subscribe(nil) }, want: false},
	}
	for _, s := range steps {
		if got := s.do(); got != s.want {
			t.Errorf("%s = %v, want %v", s.name, got, s.want)
		}
	}

	e.Emit(3)
	if total != 3 {
		t.Errorf("total = %d after one emit, want 3", total)
	}
	if !e.Unsubscribe(h) {
		t.Error("Unsubscribe() = false for a subscribed handler")
	}
	if e.Unsubscribe(h) {
		t.Error("Unsubscribe() = true for a removed handler")
	}
	if e.HasSubscribers() {
		t.Error("HasSubscribers() = true after removing the only handler")
	}
	e.Emit(3)
	if total != 3 {
		t.Errorf("total = %d, want 3: an unsubscribed handler ran", total)
	}
}

func TestEmitter_UnsubscribeDuringEmit(t *testing.T) {
	var e Emitter[int]
	var calls int
	var second *Handler[int]
	e.On(func(int) { e.Unsubscribe(second) })
	second = e.On(func(int) { calls++ })

	// The handler list is captured when Emit starts.
	e.Emit(0)
	e.Emit(0)
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}
