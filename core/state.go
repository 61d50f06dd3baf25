package core

// State carries everything a UI adapter binds to. It is plain data; the
// store updates it and the adapter reads it after every signal.
type State struct {
	Tool       ToolName // Currently selected tool
	Style      Style    // Glyph set used by the drawing tools
	DrawChar   string   // Brush character for the freeform tool
	Cursor     Position // Text tool caret / last pointer cell
	StatusLine string   // Content of the status line
	Quit       bool     // Flag indicating the application should exit

	// Selection is active only between a select gesture and the next
	// commit, Escape or tool switch.
	Selection    Rect
	HasSelection bool
}

// InitialState creates the default state: select tool, ASCII glyphs, a
// solid brush.
func InitialState() State {
	return State{
		Tool:       ToolSelect,
		Style:      StyleASCII,
		DrawChar:   "*",
		StatusLine: "-- SELECT --",
	}
}
