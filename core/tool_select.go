package core

// selectTool drives the rectangular block selection: grown while the
// pointer drags, frozen on release, cleared on Escape or tool switch.
type selectTool struct {
	gesture
}

func newSelectTool() Tool {
	return &selectTool{}
}

func (t *selectTool) Name() ToolName {
	return ToolSelect
}

func (t *selectTool) PointerDown(store Store, ev PointerEvent) {
	t.begin(ev.At)
	store.SetSelection(NewRect(ev.At, ev.At))
	store.SetCursor(ev.At)
}

func (t *selectTool) PointerMove(store Store, ev PointerEvent) {
	if !t.active {
		return
	}
	store.SetSelection(NewRect(t.start, ev.At))
}

func (t *selectTool) PointerUp(store Store, ev PointerEvent) {
	if !t.active {
		return
	}
	store.SetSelection(NewRect(t.start, ev.At))
	store.SetCursor(ev.At)
	t.reset()
}

func (t *selectTool) HandleKey(store Store, key KeyEvent) {}

func (t *selectTool) Cancel(store Store) {
	t.reset()
	store.ClearSelection()
}

func (t *selectTool) Enter(store Store) {}

func (t *selectTool) Exit(store Store) {}
