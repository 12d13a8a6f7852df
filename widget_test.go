package tui

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// drawView paints v, placed at the origin of a surface of its size.
func drawView(t *testing.T, v *View) *MockSurface {
	t.Helper()
	frame := v.Frame()
	surface := NewMockSurface(frame.Width, frame.Height)
	ctx := NewScreenContext(surface, NewRect(0, 0, frame.Width, frame.Height))
	if err := ctx.SetClip(v.Bounds()); err != nil {
		t.Fatalf("SetClip() error = %v", err)
	}
	v.Draw(ctx, v.Bounds())
	return surface
}

func TestWindow_HeaderAlign(t *testing.T) {
	type tc struct {
		align TextAlign
		want  string
	}

	tests := map[string]tc{
		"left":    {align: TextAlignLeft, want: "┌ Title ───┐"},
		"center":  {align: TextAlignCenter, want: "┌── Title ─┐"},
		"right":   {align: TextAlignRight, want: "┌─── Title ┐"},
		"justify": {align: TextAlignJustify, want: "┌ Title ───┐"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			window := NewWindowWithFrame("Title", NewRect(0, 0, 12, 4))
			window.SetHeaderAlign(tt.align)
			surface := drawView(t, window.View)

			want := tt.want + "\n│          │\n│          │\n└──────────┘"
			if got := surface.String(); got != want {
				t.Errorf("window =\n%s\nwant\n%s", got, want)
			}
		})
	}
}

func TestWindow_HostsChildrenInContent(t *testing.T) {
	window := NewWindowWithFrame("", NewRect(0, 0, 10, 5))
	label := NewLabel("hi")
	if err := window.AddChild(label.View); err != nil {
		t.Fatal(err)
	}
	if label.Parent() != window.Content() {
		t.Fatal("label was not added to the content view")
	}
	if err := window.LayoutChildren(); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(NewRect(1, 1, 8, 3), window.Content().Frame()); diff != "" {
		t.Errorf("content frame mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(NewRect(1, 1, 2, 1), label.ScreenRect()); diff != "" {
		t.Errorf("label.ScreenRect() mismatch (-want +got):\n%s", diff)
	}

	window.SetStyle(FrameDouble)
	got := drawView(t, window.View).StringTrimmed()
	want := "╔════════╗\n║hi      ║\n║        ║\n║        ║\n╚════════╝"
	if got != want {
		t.Errorf("window =\n%s\nwant\n%s", got, want)
	}

	if err := window.RemoveChild(label.View); err != nil {
		t.Fatal(err)
	}
	if label.Parent() != nil {
		t.Error("label still has a parent after RemoveChild")
	}
}

func TestWindow_LongHeaderIsTruncated(t *testing.T) {
	window := NewWindowWithFrame("A long title", NewRect(0, 0, 10, 3))
	got := drawView(t, window.View).StringTrimmed()
	if want := "┌ A long ┐\n│        │\n└────────┘"; got != want {
		t.Errorf("window =\n%s\nwant\n%s", got, want)
	}
}

func TestLabel(t *testing.T) {
	label := NewLabel("abc")
	if diff := cmp.Diff(Sized(3), label.Width()); diff != "" {
		t.Errorf("Width() mismatch (-want +got):\n%s", diff)
	}
	if err := label.SetFrame(NewRect(0, 0, 7, 1)); err != nil {
		t.Fatal(err)
	}
	label.SetAlign(TextAlignRight)
	if got, want := drawView(t, label.View).String(), "    abc"; got != want {
		t.Errorf("label = %q, want %q", got, want)
	}

	label.SetText("abcdefghij")
	if got, want := drawView(t, label.View).String(), "defghij"; got != want {
		t.Errorf("label = %q, want %q", got, want)
	}

	label.SetEnabled(false)
	cell := drawView(t, label.View).CellAt(0, 0)
	if diff := cmp.Diff(label.Theme().Default.Disabled, cell.Colors); diff != "" {
		t.Errorf("disabled colors mismatch (-want +got):\n%s", diff)
	}
}

func TestFillView(t *testing.T) {
	fill := NewFillView('.')
	if err := fill.SetFrame(NewRect(0, 0, 3, 2)); err != nil {
		t.Fatal(err)
	}
	colors := Colors{Foreground: Red, Background: Blue}
	fill.SetColors(colors)
	fill.SetChar('#')

	surface := drawView(t, fill.View)
	if got, want := surface.String(), "###\n###"; got != want {
		t.Errorf("fill = %q, want %q", got, want)
	}
	if diff := cmp.Diff(colors, surface.CellAt(2, 1).Colors); diff != "" {
		t.Errorf("colors mismatch (-want +got):\n%s", diff)
	}
}

func TestButton(t *testing.T) {
	button := NewButton("OK")
	if !button.CanFocus() {
		t.Fatal("button cannot take focus")
	}
	if err := button.SetFrame(NewRect(0, 0, 6, 1)); err != nil {
		t.Fatal(err)
	}
	surface := drawView(t, button.View)
	if got, want := surface.String(), "[ OK ]"; got != want {
		t.Errorf("button = %q, want %q", got, want)
	}
	if diff := cmp.Diff(button.Theme().Button.Normal, surface.CellAt(0, 0).Colors); diff != "" {
		t.Errorf("colors mismatch (-want +got):\n%s", diff)
	}

	button.SetFocus(true)
	surface = drawView(t, button.View)
	if diff := cmp.Diff(button.Theme().Button.Focused, surface.CellAt(0, 0).Colors); diff != "" {
		t.Errorf("focused colors mismatch (-want +got):\n%s", diff)
	}

	if err := button.SetText("Cancel"); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Sized(10), button.Width()); diff != "" {
		t.Errorf("Width() after SetText mismatch (-want +got):\n%s", diff)
	}
}

func TestCheckBox(t *testing.T) {
	app, surface, sched := newTestApp(t, 20, 2)
	box := NewCheckBox("Wrap", false)
	mustAdd(t, app.Root(), box.View)
	startTestApp(t, app, sched)

	var changes []ValueChangedEvent[bool]
	box.Changed().On(func(ev ValueChangedEvent[bool]) { changes = append(changes, ev) })

	if got, want := surface.StringTrimmed(), "[ ] Wrap\n"; got != want {
		t.Errorf("surface = %q, want %q", got, want)
	}

	app.HandleInput(runeDown(' '))
	sched.RunPending()
	if !box.Checked() {
		t.Error("Space did not check the box")
	}
	if got, want := surface.StringTrimmed(), "[x] Wrap\n"; got != want {
		t.Errorf("surface = %q, want %q", got, want)
	}

	click(app, 5, 0)
	if box.Checked() {
		t.Error("click did not uncheck the box")
	}

	box.SetChecked(true)
	want := []ValueChangedEvent[bool]{
		{Source: box.View, PreviousValue: false, NewValue: true},
		{Source: box.View, PreviousValue: true, NewValue: false},
	}
	if len(changes) != len(want) {
		t.Fatalf("got %d changes, want %d", len(changes), len(want))
	}
	for i := range want {
		if changes[i].Source != want[i].Source ||
			changes[i].PreviousValue != want[i].PreviousValue ||
			changes[i].NewValue != want[i].NewValue {
			t.Errorf("change %d = %+v, want %+v", i, changes[i], want[i])
		}
	}
}

func TestModalView(t *testing.T) {
	app, surface, sched := newTestApp(t, 40, 10)
	background := NewButton("Menu")
	mustAdd(t, app.Root(), background.View)
	startTestApp(t, app, sched)

	modal := NewModalView("Confirm", 20, 5)
	ok := NewButton("OK")
	if err := modal.AddChild(ok.View); err != nil {
		t.Fatal(err)
	}
	var clicks int
	ok.Clicked().On(func(ViewEvent) { clicks++ })

	if err := modal.Show(app); err != nil {
		t.Fatalf("Show() error = %v", err)
	}
	sched.RunPending()

	if diff := cmp.Diff(NewRect(10, 3, 20, 5), modal.Frame()); diff != "" {
		t.Errorf("modal frame mismatch (-want +got):\n%s", diff)
	}
	if app.FocusedView() != ok.View {
		t.Errorf("FocusedView() = %v, want the modal's button", app.FocusedView())
	}
	if background.HasFocus() {
		t.Error("background button kept focus")
	}
	if r := surface.CellAt(10, 3).Rune; r != '╔' {
		t.Errorf("modal corner = %q, want '╔'", r)
	}

	// Input goes to the modal only.
	click(app, 1, 0)
	if background.HasFocus() {
		t.Error("click reached the view behind the modal")
	}
	click(app, 11, 4)
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}

	app.HandleInput(keyDown(KeyEscape))
	sched.RunPending()
	if len(app.Modals()) != 0 {
		t.Fatal("Escape did not dismiss the modal")
	}
	if !background.HasFocus() {
		t.Error("focus was not restored after dismissing")
	}
	if modal.Application() != nil {
		t.Error("dismissed modal is still attached")
	}
	if r := surface.CellAt(10, 3).Rune; r != ' ' {
		t.Errorf("cell under dismissed modal = %q, want ' '", r)
	}
}

func TestModalView_Errors(t *testing.T) {
	app, _, sched := newTestApp(t, 40, 10)
	startTestApp(t, app, sched)

	lower := NewModalView("Lower", 10, 4)
	upper := NewModalView("Upper", 10, 4)
	if err := lower.Dismiss(); !errors.Is(err, ErrNoApplication) {
		t.Errorf("Dismiss() before Show error = %v, want ErrNoApplication", err)
	}
	if got := app.DismissModal(); got != nil {
		t.Errorf("DismissModal() with no modal = %v, want nil", got)
	}

	if err := lower.Show(app); err != nil {
		t.Fatal(err)
	}
	if err := upper.Show(app); err != nil {
		t.Fatal(err)
	}
	if err := lower.Dismiss(); !errors.Is(err, ErrNotTopModal) {
		t.Errorf("Dismiss() of covered modal error = %v, want ErrNotTopModal", err)
	}

	other, _, _ := newTestApp(t, 40, 10)
	if err := other.ShowModal(upper.View); !errors.Is(err, ErrAlreadyAttached) {
		t.Errorf("ShowModal() in a second app error = %v, want ErrAlreadyAttached", err)
	}

	upper.SetDismissOnEscape(false)
	app.HandleInput(keyDown(KeyEscape))
	if n := len(app.Modals()); n != 2 {
		t.Errorf("len(Modals()) = %d after Escape, want 2", n)
	}
	if err := upper.Dismiss(); err != nil {
		t.Errorf("Dismiss() error = %v", err)
	}
	if err := lower.Dismiss(); err != nil {
		t.Errorf("Dismiss() error = %v", err)
	}
}

func TestModalView_RecenteredOnResize(t *testing.T) {
	app, surface, sched := newTestApp(t, 40, 10)
	startTestApp(t, app, sched)
	modal := NewModalView("", 20, 4)
	if err := modal.Show(app); err != nil {
		t.Fatal(err)
	}

	surface.Resize(60, 20)
	app.HandleInput(ResizeInput{Width: 60, Height: 20})
	if diff := cmp.Diff(NewRect(20, 8, 20, 4), modal.Frame()); diff != "" {
		t.Errorf("modal frame mismatch (-want +got):\n%s", diff)
	}
}
