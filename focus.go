package tui

import "github.com/grindlemire/go-tui-retained/internal/debug"

// focusStack remembers which view had focus before each modal was shown.
type focusStack struct {
	saved []*View // nil entries mean nothing was focused
}

func (f *focusStack) push(v *View) {
	debug.Log("focusStack.push: saving %v (depth=%d)", v, len(f.saved)+1)
	f.saved = append(f.saved, v)
}

// pop returns the most recently saved view, or nil when the stack is empty.
func (f *focusStack) pop() *View {
	if len(f.saved) == 0 {
		return nil
	}
	v := f.saved[len(f.saved)-1]
	f.saved = f.saved[:len(f.saved)-1]
	debug.Log("focusStack.pop: restoring %v (depth=%d)", v, len(f.saved))
	return v
}

// cycleFocus moves focus within the tree under root, wrapping around at
// either end. It reports whether any view has focus afterwards.
func cycleFocus(root *View, forward bool) bool {
	focused := root.FocusedView()
	if forward {
		if focused != nil && focused.FocusNext() {
			return true
		}
		return root.FocusFirst()
	}
	if focused != nil && focused.FocusPrevious() {
		return true
	}
	return root.FocusLast()
}

// handleTabKey moves focus on Tab and Shift+Tab.
func handleTabKey(root *View, ev *KeyEvent) {
	if ev.Key != KeyTab {
		return
	}
	cycleFocus(root, !ev.Mod.Has(ModShift))
	ev.Handled = true
}
