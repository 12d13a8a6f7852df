package tui

// Invalidate marks the whole view as needing repaint.
func (v *View) Invalidate() {
	v.InvalidateRegion(v.bounds)
}

// InvalidateRegion marks region, in local coordinates, as needing repaint.
// The part outside the bounds is dropped. The region is translated into each
// ancestor's space until it reaches the root, which emits it on Invalidated.
func (v *View) InvalidateRegion(region Rect) {
	visible, ok := region.Intersection(v.bounds)
	if !ok {
		return
	}
	if v.parent == nil {
		v.invalidated.Emit(RegionInvalidatedEvent{Source: v, Region: visible})
		return
	}
	v.parent.InvalidateRegion(visible.Translate(v.frame.X, v.frame.Y))
}

// Draw paints region, in local coordinates, into ctx. The view's own draw
// hook runs first, then each child overlapping region is drawn into a
// context scoped and clipped to that child.
func (v *View) Draw(ctx Context, region Rect) {
	if v.onDraw != nil {
		v.onDraw(ctx, region)
	}
	v.DrawChildren(ctx, region)
}

// DrawChildren draws every child whose frame overlaps region.
func (v *View) DrawChildren(ctx Context, region Rect) {
	for _, child := range v.children {
		overlap, ok := region.Intersection(child.frame)
		if !ok {
			continue
		}
		sub := ctx.CreateForSubregion(child.frame)
		child.Draw(sub, overlap.Translate(-child.frame.X, -child.frame.Y))
	}
}

// PositionCursor lets a focused view place the text cursor in ctx, which
// covers the view's own bounds. Views without a hook leave the cursor hidden.
func (v *View) PositionCursor(ctx Context) {
	if v.onPositionCursor != nil {
		v.onPositionCursor(ctx)
	}
}

// SetOnDraw sets the function that paints the view's own content.
func (v *View) SetOnDraw(fn func(ctx Context, region Rect)) {
	v.onDraw = fn
}

// SetOnPositionCursor sets the function that places the cursor while the view is focused.
func (v *View) SetOnPositionCursor(fn func(ctx Context)) {
	v.onPositionCursor = fn
}
