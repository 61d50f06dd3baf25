package core

// textTool types into the grid at a caret placed by pointer-down. Every
// keystroke is one committed overwrite with box-aware wrapping; arrows
// move the caret without editing.
type textTool struct{}

func newTextTool() Tool {
	return &textTool{}
}

func (t *textTool) Name() ToolName {
	return ToolText
}

func (t *textTool) PointerDown(store Store, ev PointerEvent) {
	store.SetCursor(ev.At)
}

func (t *textTool) PointerMove(store Store, ev PointerEvent) {}

func (t *textTool) PointerUp(store Store, ev PointerEvent) {
	store.SetCursor(ev.At)
}

func (t *textTool) HandleKey(store Store, key KeyEvent) {
	if key.Rune != 0 {
		store.TypeText(string(key.Rune))
		return
	}
	cursor := store.State().Cursor
	switch key.Key {
	case KeyEnter:
		store.TypeText("\n")
	case KeyBackspace:
		if cursor.Col > 0 {
			store.SetCursor(Position{Row: cursor.Row, Col: cursor.Col - 1})
			store.TypeText(" ")
			store.SetCursor(Position{Row: cursor.Row, Col: cursor.Col - 1})
		}
	case KeyUp:
		store.SetCursor(Position{Row: cursor.Row - 1, Col: cursor.Col})
	case KeyDown:
		store.SetCursor(Position{Row: cursor.Row + 1, Col: cursor.Col})
	case KeyLeft:
		store.SetCursor(Position{Row: cursor.Row, Col: cursor.Col - 1})
	case KeyRight:
		store.SetCursor(Position{Row: cursor.Row, Col: cursor.Col + 1})
	}
}

func (t *textTool) Cancel(store Store) {}

func (t *textTool) Enter(store Store) {}

func (t *textTool) Exit(store Store) {}
