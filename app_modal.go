package tui

import (
	"slices"

	"github.com/grindlemire/go-tui-retained/internal/debug"
)

// ShowModal shows modal centered above the root view. It keeps its current
// size. Input goes to the modal until it is dismissed, and the previously
// focused view is restored afterwards.
func (a *Application) ShowModal(modal *View) error {
	if modal == nil {
		panic("tui: ShowModal called with nil view")
	}
	if modal.app != nil && modal.app != a {
		return ErrAlreadyAttached
	}
	if slices.Contains(a.modals, modal) {
		return nil
	}
	if modal.parent != nil {
		if err := modal.parent.RemoveChild(modal); err != nil {
			return err
		}
	}

	previous := a.FocusedView()
	a.focus.push(previous)
	if previous != nil {
		previous.SetFocus(false)
	}

	a.attach(modal)
	a.modals = append(a.modals, modal)
	a.dispatcher.Reset()

	modal.layoutMode = LayoutAbsolute
	err := modal.setFrame(centerIn(a.root.frame, modal.frame))
	if err == nil {
		err = modal.LayoutChildren()
	}
	if modal.FocusedView() == nil {
		modal.FocusFirst()
	}
	modal.Invalidate()
	debug.Log("Application.ShowModal: %s at %s (depth=%d)", modal, modal.frame, len(a.modals))
	return err
}

// DismissModal removes the topmost modal and restores the focus it took.
// It returns the dismissed view, or nil when no modal is shown.
func (a *Application) DismissModal() *View {
	n := len(a.modals)
	if n == 0 {
		return nil
	}
	modal := a.modals[n-1]
	a.modals = a.modals[:n-1]
	area := modal.frame

	a.detach(modal)
	a.dispatcher.Reset()
	a.redraw.Add(area)

	if previous := a.focus.pop(); previous != nil && previous.app == a {
		previous.SetFocus(true)
	}
	debug.Log("Application.DismissModal: %s (depth=%d)", modal, len(a.modals))
	return modal
}

// Modals returns the modal views from bottom to top. The slice must not be modified.
func (a *Application) Modals() []*View {
	return a.modals
}

// centerIn returns a rect of r's size centered in area.
func centerIn(area, r Rect) Rect {
	x := area.X + roundCell(float64(area.Width-r.Width)/2)
	y := area.Y + roundCell(float64(area.Height-r.Height)/2)
	return NewRect(x, y, r.Width, r.Height)
}
