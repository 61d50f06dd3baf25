package core

// rectTool rasterizes a dragged bounding box. The live preview only ever
// touches the store's draft buffer; pointer-up commits, cancel discards.
type rectTool struct {
	gesture
}

func newRectTool() Tool {
	return &rectTool{}
}

func (t *rectTool) Name() ToolName {
	return ToolRect
}

func (t *rectTool) PointerDown(store Store, ev PointerEvent) {
	base := store.ActiveBuffer()
	if base == nil {
		return
	}
	t.begin(ev.At)
	store.SetDraft(DrawRect(base, ev.At, ev.At, store.State().Style))
}

func (t *rectTool) PointerMove(store Store, ev PointerEvent) {
	base := store.ActiveBuffer()
	if !t.active || base == nil {
		return
	}
	store.SetDraft(DrawRect(base, t.start, ev.At, store.State().Style))
}

func (t *rectTool) PointerUp(store Store, ev PointerEvent) {
	base := store.ActiveBuffer()
	if !t.active || base == nil {
		return
	}
	start := t.start
	t.reset()
	if start == ev.At {
		// zero-length gesture, nothing to commit
		store.ClearDraft()
		return
	}
	store.SetDraft(DrawRect(base, start, ev.At, store.State().Style))
	store.CommitDraft("rect")
}

func (t *rectTool) HandleKey(store Store, key KeyEvent) {}

func (t *rectTool) Cancel(store Store) {
	t.reset()
	store.ClearDraft()
}

func (t *rectTool) Enter(store Store) {}

func (t *rectTool) Exit(store Store) {}

// lineTool rasterizes an L-shaped connector, optionally arrowheaded.
type lineTool struct {
	gesture
	arrow bool
}

func newLineTool(arrow bool) Tool {
	return &lineTool{arrow: arrow}
}

func (t *lineTool) Name() ToolName {
	if t.arrow {
		return ToolArrow
	}
	return ToolLine
}

func (t *lineTool) PointerDown(store Store, ev PointerEvent) {
	base := store.ActiveBuffer()
	if base == nil {
		return
	}
	t.begin(ev.At)
	store.SetDraft(DrawOrthogonal(base, ev.At, ev.At, store.State().Style, t.arrow))
}

func (t *lineTool) PointerMove(store Store, ev PointerEvent) {
	base := store.ActiveBuffer()
	if !t.active || base == nil {
		return
	}
	store.SetDraft(DrawOrthogonal(base, t.start, ev.At, store.State().Style, t.arrow))
}

func (t *lineTool) PointerUp(store Store, ev PointerEvent) {
	base := store.ActiveBuffer()
	if !t.active || base == nil {
		return
	}
	start := t.start
	t.reset()
	if start == ev.At {
		store.ClearDraft()
		return
	}
	store.SetDraft(DrawOrthogonal(base, start, ev.At, store.State().Style, t.arrow))
	op := "line"
	if t.arrow {
		op = "arrow"
	}
	store.CommitDraft(op)
}

func (t *lineTool) HandleKey(store Store, key KeyEvent) {}

func (t *lineTool) Cancel(store Store) {
	t.reset()
	store.ClearDraft()
}

func (t *lineTool) Enter(store Store) {}

func (t *lineTool) Exit(store Store) {}

// freeTool stamps the brush character along the pointer path. Consecutive
// samples are joined with Bresenham segments so fast drags leave no gaps.
// With erase set it stamps opaque spaces instead of the brush.
type freeTool struct {
	gesture
	erase bool
	last  Position
	draft *Buffer
}

func newFreeTool(erase bool) Tool {
	return &freeTool{erase: erase}
}

func (t *freeTool) Name() ToolName {
	if t.erase {
		return ToolErase
	}
	return ToolFree
}

func (t *freeTool) brush(store Store) string {
	if t.erase {
		return OpaqueSpace
	}
	return store.State().DrawChar
}

func (t *freeTool) PointerDown(store Store, ev PointerEvent) {
	base := store.ActiveBuffer()
	if base == nil {
		return
	}
	t.begin(ev.At)
	t.last = ev.At
	t.draft = base.Clone()
	t.draft.SetCell(ev.At.Row, ev.At.Col, t.brush(store))
	store.SetDraft(t.draft)
}

func (t *freeTool) PointerMove(store Store, ev PointerEvent) {
	if !t.active || t.draft == nil {
		return
	}
	for _, p := range BresenhamPoints(t.last, ev.At) {
		t.draft.SetCell(p.Row, p.Col, t.brush(store))
	}
	t.last = ev.At
	store.SetDraft(t.draft)
}

func (t *freeTool) PointerUp(store Store, ev PointerEvent) {
	if !t.active {
		return
	}
	t.PointerMove(store, PointerEvent{Kind: PointerMove, At: ev.At})
	t.reset()
	t.draft = nil
	op := "free"
	if t.erase {
		op = "erase"
	}
	store.CommitDraft(op)
}

func (t *freeTool) HandleKey(store Store, key KeyEvent) {}

func (t *freeTool) Cancel(store Store) {
	t.reset()
	t.draft = nil
	store.ClearDraft()
}

func (t *freeTool) Enter(store Store) {}

func (t *freeTool) Exit(store Store) {}
