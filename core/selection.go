package core

// Position is a cell coordinate in buffer space.
type Position struct {
	Row int // Zero-indexed row
	Col int // Zero-indexed display column
}

// Rect is a rectangular cell region, normalized so Top <= Bottom and
// Left <= Right.
type Rect struct {
	Top    int
	Left   int
	Bottom int
	Right  int
}

// NewRect builds a normalized rectangle from two corner positions.
func NewRect(a, b Position) Rect {
	r := Rect{Top: a.Row, Left: a.Col, Bottom: b.Row, Right: b.Col}
	if r.Top > r.Bottom {
		r.Top, r.Bottom = r.Bottom, r.Top
	}
	if r.Left > r.Right {
		r.Left, r.Right = r.Right, r.Left
	}
	return r
}

// Width returns the rectangle's column count.
func (r Rect) Width() int {
	return r.Right - r.Left + 1
}

// Height returns the rectangle's row count.
func (r Rect) Height() int {
	return r.Bottom - r.Top + 1
}

// Empty reports a degenerate (non-positive) rectangle.
func (r Rect) Empty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// Contains reports whether p lies within the rectangle.
func (r Rect) Contains(p Position) bool {
	return p.Row >= r.Top && p.Row <= r.Bottom && p.Col >= r.Left && p.Col <= r.Right
}

// BlockClipboard is a captured rectangular cell region. Origin is the
// cell-relative anchor that was under the pointer at capture time; pasting
// re-anchors the block so the same cell lands under the new cursor.
type BlockClipboard struct {
	Width  int
	Height int
	Lines  []Row
	Origin Position
}

// Clone deep-copies the block.
func (c *BlockClipboard) Clone() *BlockClipboard {
	return &BlockClipboard{
		Width:  c.Width,
		Height: c.Height,
		Lines:  CloneRows(c.Lines, c.Height),
		Origin: c.Origin,
	}
}

// CopyRectFromBuffer captures the raw cells of rect, continuation sentinels
// included so wide glyphs round-trip. Returns nil for a degenerate
// rectangle. origin is the absolute cell under the pointer at capture time;
// it is recorded relative to the rectangle's top-left, clamped into the
// block. Wide pairs split by the rectangle's edges are normalized to spaces.
func CopyRectFromBuffer(b *Buffer, rect Rect, origin Position) *BlockClipboard {
	if rect.Empty() {
		return nil
	}
	clip := &BlockClipboard{
		Width:  rect.Width(),
		Height: rect.Height(),
		Lines:  make([]Row, rect.Height()),
	}
	for y := 0; y < clip.Height; y++ {
		row := make(Row, clip.Width)
		for x := 0; x < clip.Width; x++ {
			row[x] = b.Cell(rect.Top+y, rect.Left+x)
		}
		clip.Lines[y] = normalizeRowEdges(row, clip.Width)
	}
	rel := Position{Row: origin.Row - rect.Top, Col: origin.Col - rect.Left}
	if rel.Row < 0 {
		rel.Row = 0
	} else if rel.Row >= clip.Height {
		rel.Row = clip.Height - 1
	}
	if rel.Col < 0 {
		rel.Col = 0
	} else if rel.Col >= clip.Width {
		rel.Col = clip.Width - 1
	}
	clip.Origin = rel
	return clip
}

// ApplyRectFill writes fill into every cell of rect on a copy of the
// buffer. Deleting a selection is a space fill.
func ApplyRectFill(b *Buffer, rect Rect, fill string) *Buffer {
	out := b.Clone()
	for y := rect.Top; y <= rect.Bottom; y++ {
		for x := rect.Left; x <= rect.Right; x++ {
			out.SetCell(y, x, fill)
		}
	}
	return out
}

// PasteRectIntoBuffer writes the clipboard block with its top-left at `at`
// on a copy of the buffer. Cells falling outside the buffer are silently
// dropped, never wrapped; the buffer's dimensions do not change. A nil
// clipboard is a no-op.
func PasteRectIntoBuffer(b *Buffer, at Position, clip *BlockClipboard) *Buffer {
	out := b.Clone()
	if clip == nil {
		return out
	}
	for y := 0; y < clip.Height && y < len(clip.Lines); y++ {
		row := clip.Lines[y]
		for x := 0; x < len(row); x++ {
			cell := row[x]
			if cell == Continuation {
				continue // written by its wide head
			}
			out.SetCell(at.Row+y, at.Col+x, cell)
		}
	}
	return out
}

// maxClipboardHistory bounds the retained prior captures; only the current
// entry participates in paste by default.
const maxClipboardHistory = 20

// ClipboardHistory keeps the current block plus up to 19 prior captures,
// most-recent-first.
type ClipboardHistory struct {
	entries []*BlockClipboard
}

// Push makes clip the current entry, demoting the previous current to
// history and dropping the oldest past the cap. A nil clip is ignored.
func (h *ClipboardHistory) Push(clip *BlockClipboard) {
	if clip == nil {
		return
	}
	h.entries = append([]*BlockClipboard{clip}, h.entries...)
	if len(h.entries) > maxClipboardHistory {
		h.entries = h.entries[:maxClipboardHistory]
	}
}

// Current returns the most recent capture, or nil when nothing was copied.
func (h *ClipboardHistory) Current() *BlockClipboard {
	if len(h.entries) == 0 {
		return nil
	}
	return h.entries[0]
}

// Entries returns all retained captures, most-recent-first.
func (h *ClipboardHistory) Entries() []*BlockClipboard {
	return h.entries
}

// Len returns the number of retained captures.
func (h *ClipboardHistory) Len() int {
	return len(h.entries)
}
