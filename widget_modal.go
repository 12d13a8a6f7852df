package tui

// ModalView is a bordered dialog shown above the root view with
// Application.ShowModal. Tab and Shift+Tab cycle focus inside it, and
// Escape dismisses it unless disabled with SetDismissOnEscape.
type ModalView struct {
	*Window
	dismissOnEscape bool
}

// NewModalView creates a dialog of the given size with a double border.
func NewModalView(title string, width, height int) *ModalView {
	m := &ModalView{
		Window:          NewWindowWithFrame(title, NewRect(0, 0, width, height)),
		dismissOnEscape: true,
	}
	m.style = FrameDouble
	m.SetOnKeyDown(func(ev *KeyEvent) {
		switch {
		case ev.Key == KeyTab:
			handleTabKey(m.View, ev)
		case ev.Key == KeyEscape && m.dismissOnEscape:
			if m.Dismiss() == nil {
				ev.Handled = true
			}
		}
	})
	return m
}

// SetDismissOnEscape sets whether Escape dismisses the dialog.
func (m *ModalView) SetDismissOnEscape(dismiss bool) {
	m.dismissOnEscape = dismiss
}

// Show shows the dialog in app.
func (m *ModalView) Show(app *Application) error {
	return app.ShowModal(m.View)
}

// Dismiss removes the dialog from its application. It returns
// ErrNoApplication when the dialog is not shown, and ErrNotTopModal when
// another modal is above it.
func (m *ModalView) Dismiss() error {
	app := m.Application()
	if app == nil {
		return ErrNoApplication
	}
	modals := app.Modals()
	if len(modals) == 0 || modals[len(modals)-1] != m.View {
		return ErrNotTopModal
	}
	app.DismissModal()
	return nil
}
