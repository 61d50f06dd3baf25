package core

// Figure insertion makes room in the grid instead of painting over it:
// rows at or below the insertion point shift down and the buffer grows to
// fit the figure's footprint.

// FigureSize is the cell footprint a blank figure reserves.
type FigureSize struct {
	Width  int
	Height int
}

func clampInsertionPoint(b *Buffer, at Position) Position {
	if at.Row < 0 {
		at.Row = 0
	} else if at.Row > b.Height {
		at.Row = b.Height
	}
	if at.Col < 0 {
		at.Col = 0
	} else if at.Col >= MaxBufferSize {
		at.Col = MaxBufferSize - 1
	}
	return at
}

// blankRow builds a row of n spaces, reserving a figure's left padding.
func blankRow(n int) Row {
	row := make(Row, n)
	for i := range row {
		row[i] = " "
	}
	return row
}

// insertRows splices rows into a copy of base at the given row index,
// growing the buffer's height and, if needed, its width (both capped).
func insertRows(base *Buffer, atRow int, rows []Row, minWidth int) *Buffer {
	out := base.Clone()
	width := out.Width
	if minWidth > width {
		width = clampSize(minWidth)
	}
	height := clampSize(out.Height + len(rows))

	lines := make([]Row, 0, height)
	lines = append(lines, out.Lines[:atRow]...)
	lines = append(lines, rows...)
	lines = append(lines, out.Lines[atRow:]...)
	if len(lines) > height {
		lines = lines[:height]
	}

	out.Width = width
	out.Height = height
	out.Lines = lines
	return out
}

// InsertBlankFigure shifts rows down to open a blank region of figSize at
// `at`, growing the width so the figure's footprint fits. The inserted
// rows carry only the left padding up to the insertion column; stamping
// the actual shape is the drawing tools' job, applied afterward at the
// returned cursor.
func InsertBlankFigure(base *Buffer, at Position, fig FigureSize) (*Buffer, Position) {
	at = clampInsertionPoint(base, at)
	if fig.Width < 1 {
		fig.Width = 1
	}
	if fig.Height < 1 {
		fig.Height = 1
	}

	rows := make([]Row, fig.Height)
	for i := range rows {
		rows[i] = blankRow(at.Col)
	}
	out := insertRows(base, at.Row, rows, at.Col+fig.Width)
	return out, at
}

// InsertFigureFromClipboard shifts rows down and fills the opened region
// with the clipboard block's content, left-padded to the insertion column.
// Content past the column ceiling is truncated with wide-glyph integrity
// preserved: the boundary cell is downgraded to a space rather than leaving
// an orphaned continuation or a dangling wide head. A nil clipboard is a
// no-op.
func InsertFigureFromClipboard(base *Buffer, at Position, clip *BlockClipboard) (*Buffer, Position) {
	if clip == nil {
		return base.Clone(), clampPosition(base, at)
	}
	at = clampInsertionPoint(base, at)

	rows := make([]Row, clip.Height)
	for i := range rows {
		row := blankRow(at.Col)
		if i < len(clip.Lines) {
			row = append(row, clip.Lines[i]...)
		}
		if len(row) > MaxBufferSize {
			row = normalizeRowEdges(row, MaxBufferSize)
		}
		rows[i] = row
	}
	minWidth := at.Col + clip.Width
	if minWidth > MaxBufferSize {
		minWidth = MaxBufferSize
	}
	out := insertRows(base, at.Row, rows, minWidth)
	return out, at
}
