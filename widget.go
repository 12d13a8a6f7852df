package tui

// ViewEvent is emitted by widgets for actions without a value, such as a
// button being clicked.
type ViewEvent struct {
	Source *View
}

// ValueChangedEvent is emitted by widgets when their value changes.
type ValueChangedEvent[T any] struct {
	Source        *View
	PreviousValue T
	NewValue      T
}
