package tui

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAddChild_Panics(t *testing.T) {
	parent := NewView()
	child := NewView()
	mustAdd(t, parent, child)

	tests := map[string]func(){
		"nil child":      func() { _ = parent.AddChild(nil) },
		"self":           func() { _ = parent.AddChild(parent) },
		"ancestor cycle": func() { _ = child.AddChild(parent) },
	}

	for name, fn := range tests {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			fn()
		})
	}
}

func TestAddChild_MovesBetweenParents(t *testing.T) {
	first := newHost(10, 10)
	second := newHost(10, 10)
	child := NewView()
	mustAdd(t, first, child)
	mustAdd(t, second, child)

	if len(first.Children()) != 0 {
		t.Errorf("first.Children() = %v, want none", first.Children())
	}
	if got := second.Children(); len(got) != 1 || got[0] != child {
		t.Errorf("second.Children() = %v, want [%v]", got, child)
	}
	if child.Parent() != second {
		t.Errorf("Parent() = %v, want %v", child.Parent(), second)
	}
}

func TestAddChild_MoveAttachesWhenFormerSiblingsFail(t *testing.T) {
	first := newHost(10, 10)
	second := newHost(10, 10)
	child := NewView()
	dependent := NewView()
	mustAdd(t, first, child)
	mustAdd(t, first, dependent)
	if err := dependent.SetX(RightOf(child)); err != nil {
		t.Fatal(err)
	}

	err := second.AddChild(child)
	if !errors.Is(err, ErrNotSibling) {
		t.Errorf("AddChild() error = %v, want ErrNotSibling", err)
	}
	if child.Parent() != second {
		t.Errorf("Parent() = %v, want %v", child.Parent(), second)
	}
	if got := second.Children(); len(got) != 1 || got[0] != child {
		t.Errorf("second.Children() = %v, want [%v]", got, child)
	}
	if got := first.Children(); len(got) != 1 || got[0] != dependent {
		t.Errorf("first.Children() = %v, want [%v]", got, dependent)
	}
}

func TestRemoveChild(t *testing.T) {
	host := newHost(20, 5)
	child := NewView()
	_ = child.SetLayout(At(2), At(1), Sized(5), Sized(2))
	mustAdd(t, host, child)

	var regions []Rect
	host.Invalidated().On(func(ev RegionInvalidatedEvent) { regions = append(regions, ev.Region) })

	if err := host.RemoveChild(child); err != nil {
		t.Fatalf("RemoveChild() error = %v", err)
	}
	if child.Parent() != nil {
		t.Errorf("Parent() = %v after removal, want nil", child.Parent())
	}
	if diff := cmp.Diff([]Rect{NewRect(2, 1, 5, 2)}, regions); diff != "" {
		t.Errorf("invalidated regions mismatch (-want +got):\n%s", diff)
	}

	// Removing a view that is not a child is a no-op.
	if err := host.RemoveChild(NewView()); err != nil {
		t.Errorf("RemoveChild(stranger) error = %v", err)
	}
}

func TestRoot(t *testing.T) {
	root := NewView()
	mid := NewView()
	leaf := NewView()
	mustAdd(t, root, mid)
	mustAdd(t, mid, leaf)

	if leaf.Root() != root {
		t.Errorf("leaf.Root() = %v, want %v", leaf.Root(), root)
	}
	if root.Root() != root {
		t.Errorf("root.Root() = %v, want itself", root.Root())
	}
}

func TestIsEnabled_Inherits(t *testing.T) {
	root := NewView()
	child := NewView()
	mustAdd(t, root, child)

	root.SetEnabled(false)
	if child.IsEnabled() {
		t.Error("child.IsEnabled() = true under a disabled parent")
	}
	child.SetEnabled(true)
	if child.IsEnabled() {
		t.Error("an enabled override must not win over a disabled ancestor")
	}
	root.ClearEnabled()
	if !child.IsEnabled() {
		t.Error("child.IsEnabled() = false after clearing the parent override")
	}
}

func TestTheme_Inherits(t *testing.T) {
	root := NewView()
	child := NewView()
	mustAdd(t, root, child)

	if child.Theme() != defaultTheme {
		t.Error("a tree without a theme should use the default theme")
	}
	custom := DosTheme()
	custom.Button.Normal.Foreground = Red
	root.SetTheme(custom)
	if child.Theme() != custom {
		t.Error("child.Theme() did not inherit from its parent")
	}
}

func TestState(t *testing.T) {
	v := NewView()
	v.SetCanFocus(true)

	if got := v.State(false); got != StateNormal {
		t.Errorf("State(false) = %v, want %v", got, StateNormal)
	}
	if got := v.State(true); got != StateHover {
		t.Errorf("State(true) = %v, want %v", got, StateHover)
	}
	v.SetFocus(true)
	if got := v.State(true); got != StateFocused {
		t.Errorf("focused State(true) = %v, want %v", got, StateFocused)
	}
	v.SetEnabled(false)
	if got := v.State(true); got != StateDisabled {
		t.Errorf("disabled State(true) = %v, want %v", got, StateDisabled)
	}
}

func TestInvalidateRegion_TranslatesToRoot(t *testing.T) {
	root := newHost(80, 24)
	panel := NewView()
	child := NewView()
	_ = panel.SetLayout(At(10), At(5), Sized(30), Sized(10))
	_ = child.SetLayout(At(2), At(1), Sized(20), Sized(3))
	mustAdd(t, root, panel)
	mustAdd(t, panel, child)

	type tc struct {
		region Rect
		want   []Rect
	}

	tests := map[string]tc{
		"inside": {
			region: NewRect(1, 1, 2, 1),
			want:   []Rect{NewRect(13, 7, 2, 1)},
		},
		"clipped to bounds": {
			region: NewRect(18, 0, 10, 10),
			want:   []Rect{NewRect(30, 6, 2, 3)},
		},
		"outside": {
			region: NewRect(25, 0, 5, 1),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var got []Rect
			h := root.Invalidated().On(func(ev RegionInvalidatedEvent) {
				if ev.Source != root {
					t.Errorf("Source = %v, want the root", ev.Source)
				}
				got = append(got, ev.Region)
			})
			defer root.Invalidated().Unsubscribe(h)

			child.InvalidateRegion(tt.region)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("invalidated regions mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDraw_ClipsChildren(t *testing.T) {
	surface := NewMockSurface(10, 3)
	root := newHost(10, 3)
	left := NewView()
	right := NewView()
	_ = left.SetLayout(At(0), At(1), Sized(4), Sized(1))
	_ = right.SetLayout(RightOf(left), At(1), Fill(), Sized(1))
	mustAdd(t, root, left)
	mustAdd(t, root, right)

	var regions []Rect
	left.SetOnDraw(func(ctx Context, region Rect) {
		regions = append(regions, region)
		_ = ctx.MoveCursor(0, 0)
		ctx.Print("leftover")
	})
	right.SetOnDraw(func(ctx Context, region Rect) {
		regions = append(regions, region)
		ctx.Fill(ctx.Bounds(), '#')
	})

	region := NewRect(2, 0, 4, 3)
	ctx := NewScreenContext(surface, root.Frame())
	if err := ctx.SetClip(region); err != nil {
		t.Fatal(err)
	}
	root.Draw(ctx, region)

	want := "\n  ft##\n"
	if got := surface.StringTrimmed(); got != want {
		t.Errorf("surface =\n%q\nwant\n%q", got, want)
	}
	if diff := cmp.Diff([]Rect{NewRect(2, 0, 2, 1), NewRect(0, 0, 2, 1)}, regions); diff != "" {
		t.Errorf("draw regions mismatch (-want +got):\n%s", diff)
	}
}
