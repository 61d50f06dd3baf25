package core

// Signals are how a UI adapter observes the store without the store knowing
// anything about the UI. DispatchSignal never blocks; a full channel drops
// the signal.
type Signal any

// CommitSignal is sent after every committed edit.
type CommitSignal struct {
	op string
}

func (c CommitSignal) Value() string {
	return c.op
}

type UndoSignal struct{}

func (u UndoSignal) Value() {}

type RedoSignal struct{}

func (r RedoSignal) Value() {}

// LayerSignal is sent when the layer list or the active layer changes.
type LayerSignal struct {
	activeID string
	count    int
}

func (l LayerSignal) Value() (activeID string, count int) {
	activeID = l.activeID
	count = l.count

	return activeID, count
}

// CopySignal reports a block capture.
type CopySignal struct {
	width  int
	height int
}

func (c CopySignal) Value() (width, height int) {
	width = c.width
	height = c.height

	return width, height
}

// PasteSignal reports a block placement.
type PasteSignal struct {
	width  int
	height int
}

func (p PasteSignal) Value() (width, height int) {
	width = p.width
	height = p.height

	return width, height
}

type MessageSignal struct {
	id    string
	value string
}

func (m MessageSignal) Value() (id, message string) {
	id = m.id
	message = m.value

	return id, message
}

type QuitSignal struct{}

type ErrorSignal Error

func (e ErrorSignal) Value() (id ErrorId, err error) {
	id = e.id
	err = e.err

	return id, err
}

func (s *session) DispatchSignal(signal Signal) {
	select {
	case s.updateSignal <- signal:
	default: // Ignore if the channel is full
	}
}
