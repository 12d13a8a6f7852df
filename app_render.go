package tui

// topLevel returns the root view followed by the modals, in paint order.
func (a *Application) topLevel() []*View {
	views := make([]*View, 0, 1+len(a.modals))
	views = append(views, a.root)
	return append(views, a.modals...)
}

// paint redraws region, in surface coordinates, then places the cursor and
// presents the surface. It runs as a scheduled task of the RedrawTracker.
func (a *Application) paint(region Rect) {
	for _, top := range a.topLevel() {
		overlap, ok := region.Intersection(top.frame)
		if !ok {
			continue
		}
		local := overlap.Translate(-top.frame.X, -top.frame.Y)
		ctx := NewScreenContext(a.surface, top.frame)
		if err := ctx.SetClip(local); err != nil {
			continue
		}
		top.Draw(ctx, local)
	}
	a.positionCursor()
	a.surface.Show()
}

// positionCursor shows the cursor where the focused view places it, or
// hides it when nothing is focused or the view does not place it.
func (a *Application) positionCursor() {
	focused := a.FocusedView()
	if focused == nil {
		a.surface.HideCursor()
		return
	}
	ctx := NewScreenContext(a.surface, focused.ScreenRect())
	focused.PositionCursor(ctx)
	if p, ok := ctx.SurfaceCursor(); ok {
		a.surface.ShowCursor(p.X, p.Y)
		return
	}
	a.surface.HideCursor()
}

// Repaint paints the whole surface immediately, bypassing the scheduler.
func (a *Application) Repaint() {
	a.paint(a.root.frame)
}
