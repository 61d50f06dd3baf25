package core

import (
	"fmt"
	"strings"
)

// SystemClipboard is the host system clipboard boundary. The adapter
// supplies an implementation; a nil clipboard disables system placement
// without affecting block copy/paste inside the session.
type SystemClipboard interface {
	Write(text string) error
	Read() (string, error)
}

// Store is the explicit state container the UI adapter drives. It owns the
// layer list, history, clipboard and tool state; every mutating operation
// commits atomically (snapshot, mutate, signal) or not at all. All methods
// are synchronous and must be called from a single goroutine, matching the
// one-input-event-at-a-time model of the application.
type Store interface {
	// Layers
	Layers() []*Layer
	ActiveLayer() *Layer
	SetActiveLayer(id string) error
	AddLayer(name string) *Layer
	RemoveLayer(id string) error
	DuplicateLayer(id string) (*Layer, error)
	MoveLayer(id string, up bool) error
	MergeLayerDown(id string) error
	SetLayerVisible(id string, visible bool) error
	SetLayerLocked(id string, locked bool) error
	RenameLayer(id, name string) error

	// Geometry and rendering
	Size() (width, height int)
	Resize(width, height int)
	Composite() *Buffer
	Preview() *Buffer

	// Tools and input
	SetTool(name ToolName) error
	CurrentTool() Tool
	HandlePointer(ev PointerEvent)
	HandleKey(key KeyEvent)
	SetStyle(style Style)
	SetDrawChar(g string)

	// Draft lifecycle, driven by the tools. A draft is a replacement
	// buffer for the active layer that exists only while a gesture is
	// live; it never reaches history.
	ActiveBuffer() *Buffer
	SetDraft(b *Buffer)
	ClearDraft()
	CommitDraft(op string)
	CommitBuffer(op string, b *Buffer)

	// Selection and clipboard
	SetSelection(r Rect)
	ClearSelection()
	Selection() (Rect, bool)
	CopySelection(origin Position)
	CutSelection(origin Position)
	DeleteSelection()
	Paste(at Position)
	ClipboardEntries() []*BlockClipboard

	// Text tool
	SetCursor(at Position)
	TypeText(text string)

	// History
	Undo() error
	Redo() error

	// Find and replace
	Matches(query string) []Position
	FindNext(query string, from Position) (Position, bool)
	FindPrev(query string, from Position) (Position, bool)
	ReplaceNext(query, replacement string, from Position) (Position, bool)
	ReplacePrev(query, replacement string, from Position) (Position, bool)
	ReplaceAll(query, replacement string) int

	// Figure insertion
	InsertFigure(at Position, fig FigureSize)
	InsertClipboardFigure(at Position)

	// Document
	LoadExternalText(text string)
	ExportText(padRight bool) string

	// State and signals
	State() State
	UpdateStatus(status string)
	GetUpdateSignalChan() <-chan Signal
	DispatchSignal(signal Signal)
	DispatchError(id ErrorId, err error)
	DispatchMessage(args ...string)
	Quit()
}

// Concrete implementation of Store
type session struct {
	width  int
	height int
	layers []*Layer
	active string

	past   []Snapshot
	future []Snapshot

	clipboard ClipboardHistory
	system    SystemClipboard

	tools       map[ToolName]Tool
	currentTool Tool
	draft       *Buffer

	state        State
	updateSignal chan Signal
	layerSeq     int
}

// NewStore creates a session with a single blank layer of the given
// dimensions. system may be nil.
func NewStore(width, height int, system SystemClipboard) Store {
	s := &session{
		width:        clampSize(width),
		height:       clampSize(height),
		system:       system,
		state:        InitialState(),
		updateSignal: make(chan Signal, 100),
	}
	s.layerSeq = 1
	first := NewLayer("layer-1", layerName(1), s.width, s.height)
	s.layers = []*Layer{first}
	s.active = first.ID

	s.tools = map[ToolName]Tool{
		ToolSelect: newSelectTool(),
		ToolRect:   newRectTool(),
		ToolLine:   newLineTool(false),
		ToolArrow:  newLineTool(true),
		ToolFree:   newFreeTool(false),
		ToolErase:  newFreeTool(true),
		ToolText:   newTextTool(),
	}
	s.currentTool = s.tools[s.state.Tool]
	s.currentTool.Enter(s)

	return s
}

// --- Layers ---

func (s *session) Layers() []*Layer {
	return s.layers
}

func (s *session) layerByID(id string) (int, *Layer) {
	for i, l := range s.layers {
		if l.ID == id {
			return i, l
		}
	}
	return -1, nil
}

func (s *session) ActiveLayer() *Layer {
	_, l := s.layerByID(s.active)
	return l
}

func (s *session) SetActiveLayer(id string) error {
	if _, l := s.layerByID(id); l == nil {
		return ErrLayerNotFound
	}
	s.active = id
	s.DispatchSignal(LayerSignal{s.active, len(s.layers)})
	return nil
}

func (s *session) newLayerID() string {
	s.layerSeq++
	return fmt.Sprintf("layer-%d", s.layerSeq)
}

func (s *session) AddLayer(name string) *Layer {
	s.snapshot()
	if name == "" {
		name = layerName(s.layerSeq + 1)
	}
	l := NewLayer(s.newLayerID(), name, s.width, s.height)
	s.layers = append(s.layers, l)
	s.active = l.ID
	s.DispatchSignal(LayerSignal{s.active, len(s.layers)})
	s.DispatchMessage(LayerAddedMessage)
	return l
}

func (s *session) RemoveLayer(id string) error {
	if len(s.layers) <= 1 {
		s.DispatchError(ErrLastLayerId, ErrLastLayer)
		return ErrLastLayer
	}
	i, l := s.layerByID(id)
	if l == nil {
		return ErrLayerNotFound
	}
	s.snapshot()
	s.layers = append(s.layers[:i], s.layers[i+1:]...)
	if s.active == id {
		if i >= len(s.layers) {
			i = len(s.layers) - 1
		}
		s.active = s.layers[i].ID
	}
	s.DispatchSignal(LayerSignal{s.active, len(s.layers)})
	s.DispatchMessage(LayerRemovedMessage)
	return nil
}

func (s *session) DuplicateLayer(id string) (*Layer, error) {
	i, l := s.layerByID(id)
	if l == nil {
		return nil, ErrLayerNotFound
	}
	s.snapshot()
	dup := l.Clone()
	dup.ID = s.newLayerID()
	dup.Name = l.Name + " copy"
	dup.Locked = false
	s.layers = append(s.layers[:i+1], append([]*Layer{dup}, s.layers[i+1:]...)...)
	s.active = dup.ID
	s.DispatchSignal(LayerSignal{s.active, len(s.layers)})
	return dup, nil
}

func (s *session) MoveLayer(id string, up bool) error {
	i, l := s.layerByID(id)
	if l == nil {
		return ErrLayerNotFound
	}
	j := i + 1
	if !up {
		j = i - 1
	}
	if j < 0 || j >= len(s.layers) {
		return nil // already at the end of the stack
	}
	s.snapshot()
	s.layers[i], s.layers[j] = s.layers[j], s.layers[i]
	s.DispatchSignal(LayerSignal{s.active, len(s.layers)})
	return nil
}

// MergeLayerDown composites the given layer onto the one below it and
// removes it. The bottom layer cannot be merged.
func (s *session) MergeLayerDown(id string) error {
	i, l := s.layerByID(id)
	if l == nil {
		return ErrLayerNotFound
	}
	if i == 0 {
		return ErrLayerNotFound
	}
	lower := s.layers[i-1]
	if lower.Locked {
		s.DispatchError(ErrLayerLockedId, ErrLayerLocked)
		return ErrLayerLocked
	}
	s.snapshot()
	s.layers[i-1] = MergeDown(lower, l, s.width, s.height)
	s.layers = append(s.layers[:i], s.layers[i+1:]...)
	if s.active == id {
		s.active = s.layers[i-1].ID
	}
	s.DispatchSignal(LayerSignal{s.active, len(s.layers)})
	s.DispatchMessage(LayerMergedMessage)
	return nil
}

func (s *session) SetLayerVisible(id string, visible bool) error {
	_, l := s.layerByID(id)
	if l == nil {
		return ErrLayerNotFound
	}
	l.Visible = visible
	s.DispatchSignal(LayerSignal{s.active, len(s.layers)})
	return nil
}

func (s *session) SetLayerLocked(id string, locked bool) error {
	_, l := s.layerByID(id)
	if l == nil {
		return ErrLayerNotFound
	}
	l.Locked = locked
	s.DispatchSignal(LayerSignal{s.active, len(s.layers)})
	return nil
}

func (s *session) RenameLayer(id, name string) error {
	_, l := s.layerByID(id)
	if l == nil {
		return ErrLayerNotFound
	}
	l.Name = name
	s.DispatchSignal(LayerSignal{s.active, len(s.layers)})
	return nil
}

// --- Geometry and rendering ---

func (s *session) Size() (width, height int) {
	return s.width, s.height
}

// Resize changes the canvas dimensions for every layer. Undoable; not
// gated by the active layer's lock since it is a session-level operation.
func (s *session) Resize(width, height int) {
	width = clampSize(width)
	height = clampSize(height)
	if width == s.width && height == s.height {
		return
	}
	s.snapshot()
	s.width = width
	s.height = height
	for _, l := range s.layers {
		l.Buffer.Resize(width, height)
	}
	s.DispatchSignal(CommitSignal{"resize"})
}

func (s *session) Composite() *Buffer {
	return Composite(s.layers, s.width, s.height)
}

// Preview composites with the live draft standing in for the active
// layer's buffer, so a drag shows its result without committing anything.
func (s *session) Preview() *Buffer {
	if s.draft == nil {
		return s.Composite()
	}
	layers := make([]*Layer, len(s.layers))
	copy(layers, s.layers)
	for i, l := range layers {
		if l.ID == s.active {
			stand := *l
			stand.Buffer = s.draft
			layers[i] = &stand
		}
	}
	return Composite(layers, s.width, s.height)
}

// --- Tools and input ---

func (s *session) SetTool(name ToolName) error {
	tool, ok := s.tools[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrInvalidTool, name)
	}
	if s.currentTool != nil {
		s.currentTool.Cancel(s)
		s.currentTool.Exit(s)
	}
	s.ClearSelection()
	s.currentTool = tool
	s.state.Tool = name
	s.UpdateStatus(fmt.Sprintf("-- %s --", strings.ToUpper(string(name))))
	s.currentTool.Enter(s)
	return nil
}

func (s *session) CurrentTool() Tool {
	return s.currentTool
}

func (s *session) HandlePointer(ev PointerEvent) {
	if s.currentTool == nil {
		return
	}
	switch ev.Kind {
	case PointerDown:
		s.currentTool.PointerDown(s, ev)
	case PointerMove:
		s.currentTool.PointerMove(s, ev)
	case PointerUp:
		s.currentTool.PointerUp(s, ev)
	case PointerCancel:
		s.currentTool.Cancel(s)
	}
}

func (s *session) HandleKey(key KeyEvent) {
	if key.Key == KeyEscape {
		if s.currentTool != nil {
			s.currentTool.Cancel(s)
		}
		s.ClearSelection()
		return
	}
	if s.currentTool != nil {
		s.currentTool.HandleKey(s, key)
	}
}

func (s *session) SetStyle(style Style) {
	s.state.Style = style
}

func (s *session) SetDrawChar(g string) {
	gs := SegmentGraphemes(g)
	if len(gs) == 0 {
		return
	}
	s.state.DrawChar = gs[0]
}

// --- Draft lifecycle ---

func (s *session) ActiveBuffer() *Buffer {
	if l := s.ActiveLayer(); l != nil {
		return l.Buffer
	}
	return nil
}

func (s *session) SetDraft(b *Buffer) {
	s.draft = b
}

func (s *session) ClearDraft() {
	s.draft = nil
}

func (s *session) CommitDraft(op string) {
	if s.draft == nil {
		return
	}
	draft := s.draft
	s.draft = nil
	s.CommitBuffer(op, draft)
}

// CommitBuffer atomically replaces the active layer's buffer: the lock is
// checked first, the pre-edit state is snapshotted, the redo stack is
// cleared, and a commit signal is sent. A locked layer makes the whole
// operation a silent no-op with no history entry.
func (s *session) CommitBuffer(op string, b *Buffer) {
	layer := s.ActiveLayer()
	if layer == nil || b == nil {
		return
	}
	if layer.Locked {
		s.DispatchMessage(LayerIsLockedMessage)
		return
	}
	s.snapshot()
	layer.Buffer = b
	s.DispatchSignal(CommitSignal{op})
}

// snapshot pushes the current state onto the past stack and clears the
// redo branch.
func (s *session) snapshot() {
	limit := HistoryLimitForSize(s.width, s.height)
	s.past = appendPast(s.past, NewSnapshot(s.layers, s.active, s.width, s.height), limit)
	s.future = nil
}

// --- Selection and clipboard ---

func (s *session) SetSelection(r Rect) {
	s.state.Selection = r
	s.state.HasSelection = true
}

func (s *session) ClearSelection() {
	s.state.Selection = Rect{}
	s.state.HasSelection = false
}

func (s *session) Selection() (Rect, bool) {
	return s.state.Selection, s.state.HasSelection
}

// CopySelection captures the selection into the block clipboard. origin is
// the cell under the pointer at capture time; it re-anchors later pastes.
// The external rendering of the block is also placed on the system
// clipboard when one is wired.
func (s *session) CopySelection(origin Position) {
	rect, ok := s.Selection()
	if !ok || rect.Empty() {
		s.DispatchError(ErrNoSelectionId, ErrNoSelection)
		return
	}
	buf := s.ActiveBuffer()
	if buf == nil {
		return
	}
	clip := CopyRectFromBuffer(buf, rect, origin)
	if clip == nil {
		s.DispatchError(ErrDegenerateRectId, ErrDegenerateRect)
		return
	}
	s.clipboard.Push(clip)
	s.writeSystemClipboard(clip)
	s.DispatchSignal(CopySignal{clip.Width, clip.Height})
	s.DispatchMessage(BlockCopiedMessage)
}

func (s *session) writeSystemClipboard(clip *BlockClipboard) {
	if s.system == nil {
		return
	}
	lines := make([]string, clip.Height)
	for i := 0; i < clip.Height && i < len(clip.Lines); i++ {
		lines[i] = DecodeCells(clip.Lines[i])
	}
	if err := s.system.Write(strings.Join(lines, "\n")); err != nil {
		s.DispatchError(ErrClipboardWriteId, fmt.Errorf("%w: %v", ErrClipboardWrite, err))
	}
}

// CutSelection captures the selection, then clears it to spaces as one
// committed edit.
func (s *session) CutSelection(origin Position) {
	rect, ok := s.Selection()
	if !ok || rect.Empty() {
		s.DispatchError(ErrNoSelectionId, ErrNoSelection)
		return
	}
	s.CopySelection(origin)
	buf := s.ActiveBuffer()
	if buf == nil {
		return
	}
	s.CommitBuffer("cut", ApplyRectFill(buf, rect, " "))
	s.ClearSelection()
}

// DeleteSelection clears the selection to spaces without touching the
// clipboard.
func (s *session) DeleteSelection() {
	rect, ok := s.Selection()
	if !ok || rect.Empty() {
		s.DispatchError(ErrNoSelectionId, ErrNoSelection)
		return
	}
	buf := s.ActiveBuffer()
	if buf == nil {
		return
	}
	s.CommitBuffer("delete", ApplyRectFill(buf, rect, " "))
	s.ClearSelection()
	s.DispatchMessage(SelectionFillMessage)
}

// Paste places the current clipboard block so its capture-time anchor cell
// lands under `at`. Out-of-bounds cells are clipped.
func (s *session) Paste(at Position) {
	clip := s.clipboard.Current()
	if clip == nil {
		s.DispatchError(ErrEmptyClipboardId, ErrEmptyClipboard)
		return
	}
	buf := s.ActiveBuffer()
	if buf == nil {
		return
	}
	topLeft := Position{Row: at.Row - clip.Origin.Row, Col: at.Col - clip.Origin.Col}
	s.CommitBuffer("paste", PasteRectIntoBuffer(buf, topLeft, clip))
	s.ClearSelection()
	s.DispatchSignal(PasteSignal{clip.Width, clip.Height})
	s.DispatchMessage(BlockPastedMessage)
}

func (s *session) ClipboardEntries() []*BlockClipboard {
	return s.clipboard.Entries()
}

// --- Text tool ---

func (s *session) SetCursor(at Position) {
	if buf := s.ActiveBuffer(); buf != nil {
		at = clampPosition(buf, at)
	}
	s.state.Cursor = at
}

// TypeText overwrites text at the cursor with box-aware wrapping and moves
// the cursor past what was written. One call is one committed edit.
func (s *session) TypeText(text string) {
	if text == "" {
		return
	}
	buf := s.ActiveBuffer()
	if buf == nil {
		return
	}
	next, cursor := OverwriteTextIntoBuffer(buf, s.state.Cursor, text)
	s.CommitBuffer("type", next)
	s.state.Cursor = cursor
}

// --- History ---

func (s *session) restore(entry Snapshot) {
	s.layers = CloneLayers(entry.Layers)
	s.active = entry.ActiveLayerID
	s.width = entry.Width
	s.height = entry.Height
	s.draft = nil
}

func (s *session) Undo() error {
	if len(s.past) == 0 {
		s.DispatchMessage(NothingToUndoMessage)
		return ErrNothingToUndo
	}
	entry := s.past[len(s.past)-1]
	s.past = s.past[:len(s.past)-1]
	s.future = append(s.future, NewSnapshot(s.layers, s.active, s.width, s.height))
	s.restore(entry)
	s.DispatchSignal(UndoSignal{})
	return nil
}

func (s *session) Redo() error {
	if len(s.future) == 0 {
		s.DispatchMessage(NothingToRedoMessage)
		return ErrNothingToRedo
	}
	entry := s.future[len(s.future)-1]
	s.future = s.future[:len(s.future)-1]
	limit := HistoryLimitForSize(s.width, s.height)
	s.past = appendPast(s.past, NewSnapshot(s.layers, s.active, s.width, s.height), limit)
	s.restore(entry)
	s.DispatchSignal(RedoSignal{})
	return nil
}

// --- Find and replace ---

func (s *session) Matches(query string) []Position {
	return ComputeMatches(s.Composite(), query)
}

func (s *session) FindNext(query string, from Position) (Position, bool) {
	return FindNext(s.Matches(query), from)
}

func (s *session) FindPrev(query string, from Position) (Position, bool) {
	return FindPrev(s.Matches(query), from)
}

// ReplaceNext replaces the first match after `from` on the active layer
// and returns its position.
func (s *session) ReplaceNext(query, replacement string, from Position) (Position, bool) {
	buf := s.ActiveBuffer()
	if buf == nil {
		return Position{}, false
	}
	m, ok := FindNext(ComputeMatches(buf, query), from)
	if !ok {
		return Position{}, false
	}
	s.CommitBuffer("replace", ReplaceAt(buf, m, query, replacement))
	s.DispatchMessage(ReplacedMessage)
	return m, true
}

// ReplacePrev replaces the first match before `from` on the active layer.
func (s *session) ReplacePrev(query, replacement string, from Position) (Position, bool) {
	buf := s.ActiveBuffer()
	if buf == nil {
		return Position{}, false
	}
	m, ok := FindPrev(ComputeMatches(buf, query), from)
	if !ok {
		return Position{}, false
	}
	s.CommitBuffer("replace", ReplaceAt(buf, m, query, replacement))
	s.DispatchMessage(ReplacedMessage)
	return m, true
}

func (s *session) ReplaceAll(query, replacement string) int {
	buf := s.ActiveBuffer()
	if buf == nil {
		return 0
	}
	next, n := ReplaceAll(buf, query, replacement)
	if n == 0 {
		return 0
	}
	s.CommitBuffer("replace-all", next)
	s.DispatchMessage(ReplacedMessage, fmt.Sprintf("replaced %d occurrences", n))
	return n
}

// --- Figure insertion ---

func (s *session) InsertFigure(at Position, fig FigureSize) {
	buf := s.ActiveBuffer()
	if buf == nil {
		return
	}
	layer := s.ActiveLayer()
	if layer.Locked {
		s.DispatchMessage(LayerIsLockedMessage)
		return
	}
	next, cursor := InsertBlankFigure(buf, at, fig)
	s.snapshot()
	layer.Buffer = next
	s.adoptDimensions(next)
	s.state.Cursor = cursor
	s.DispatchSignal(CommitSignal{"insert-figure"})
	s.DispatchMessage(FigureInsertedMessage)
}

func (s *session) InsertClipboardFigure(at Position) {
	clip := s.clipboard.Current()
	if clip == nil {
		s.DispatchError(ErrEmptyClipboardId, ErrEmptyClipboard)
		return
	}
	buf := s.ActiveBuffer()
	if buf == nil {
		return
	}
	layer := s.ActiveLayer()
	if layer.Locked {
		s.DispatchMessage(LayerIsLockedMessage)
		return
	}
	next, cursor := InsertFigureFromClipboard(buf, at, clip)
	s.snapshot()
	layer.Buffer = next
	s.adoptDimensions(next)
	s.state.Cursor = cursor
	s.DispatchSignal(CommitSignal{"insert-figure"})
	s.DispatchMessage(FigureInsertedMessage)
}

// adoptDimensions propagates growth from a figure insertion to the session
// and the other layers, so every layer keeps the shared nominal size.
func (s *session) adoptDimensions(b *Buffer) {
	if b.Width == s.width && b.Height == s.height {
		return
	}
	s.width = b.Width
	s.height = b.Height
	for _, l := range s.layers {
		if l.Buffer.Width != s.width || l.Buffer.Height != s.height {
			l.Buffer.Resize(s.width, s.height)
		}
	}
}

// --- Document ---

// LoadExternalText replaces the whole session with a single layer sized to
// fit the text. History is reset; loading a file is not undoable.
func (s *session) LoadExternalText(text string) {
	buf := AutoSizeFromExternalText(text)
	s.width = buf.Width
	s.height = buf.Height
	s.layerSeq = 1
	layer := NewLayer("layer-1", layerName(1), buf.Width, buf.Height)
	layer.Buffer = buf
	s.layers = []*Layer{layer}
	s.active = layer.ID
	s.past = nil
	s.future = nil
	s.draft = nil
	s.ClearSelection()
	s.DispatchSignal(LayerSignal{s.active, len(s.layers)})
}

func (s *session) ExportText(padRight bool) string {
	return s.Composite().ExternalText(padRight)
}

// --- State and signals ---

func (s *session) State() State {
	return s.state
}

func (s *session) UpdateStatus(status string) {
	s.state.StatusLine = status
}

func (s *session) GetUpdateSignalChan() <-chan Signal {
	return s.updateSignal
}

func (s *session) Quit() {
	s.state.Quit = true
	s.DispatchSignal(QuitSignal{})
}
