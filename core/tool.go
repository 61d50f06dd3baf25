package core

// ToolName identifies one of the canvas tools.
type ToolName string

const (
	ToolSelect ToolName = "select"
	ToolRect   ToolName = "rect"
	ToolLine   ToolName = "line"
	ToolArrow  ToolName = "arrow"
	ToolFree   ToolName = "free"
	ToolErase  ToolName = "erase"
	ToolText   ToolName = "text"
)

// Tool handles the pointer gesture lifecycle for one canvas tool. A live
// gesture only ever touches the store's draft buffer; PointerUp commits the
// result through the store (which snapshots history), and Cancel discards
// the draft without consuming a history entry.
type Tool interface {
	Name() ToolName
	PointerDown(store Store, ev PointerEvent)
	PointerMove(store Store, ev PointerEvent)
	PointerUp(store Store, ev PointerEvent)
	HandleKey(store Store, key KeyEvent)
	Cancel(store Store)
	Enter(store Store) // Called when the tool is selected
	Exit(store Store)  // Called when switching away
}

// gesture is the state shared by the drag-driven tools: the anchor point
// and whether a drag is live. It is discarded wholesale on cancel.
type gesture struct {
	active bool
	start  Position
}

func (g *gesture) begin(at Position) {
	g.active = true
	g.start = at
}

func (g *gesture) reset() {
	g.active = false
}
