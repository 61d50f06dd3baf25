package core

import "strings"

// Buffer dimension bounds. Creation and resize clamp into this range.
const (
	MinBufferSize = 1
	MaxBufferSize = 2000
)

// Buffer is the fixed-size grid of rows backing one layer. Lines always
// holds exactly Height rows; a row's internal length never exceeds Width
// (writes truncate). Rows shorter than Width render as blank on the right.
type Buffer struct {
	Width  int
	Height int
	Lines  []Row
}

func clampSize(n int) int {
	if n < MinBufferSize {
		return MinBufferSize
	}
	if n > MaxBufferSize {
		return MaxBufferSize
	}
	return n
}

// NewBuffer creates an all-blank buffer. Width and height are clamped to
// [MinBufferSize, MaxBufferSize].
func NewBuffer(width, height int) *Buffer {
	width = clampSize(width)
	height = clampSize(height)
	return &Buffer{
		Width:  width,
		Height: height,
		Lines:  make([]Row, height),
	}
}

// CloneRows deep-copies exactly height rows, synthesizing empty rows if the
// source is shorter. Used before any destructive mutation so history
// snapshots are never aliased to the live buffer.
func CloneRows(rows []Row, height int) []Row {
	out := make([]Row, height)
	for i := range out {
		if i < len(rows) && rows[i] != nil {
			out[i] = make(Row, len(rows[i]))
			copy(out[i], rows[i])
		} else {
			out[i] = Row{}
		}
	}
	return out
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	return &Buffer{
		Width:  b.Width,
		Height: b.Height,
		Lines:  CloneRows(b.Lines, b.Height),
	}
}

// FromExternalText builds a buffer of the given dimensions from external
// text. \r\n and \r are accepted as line separators; rows are truncated to
// width columns with wide-glyph integrity preserved, and the row count is
// padded or truncated to height.
func FromExternalText(text string, width, height int) *Buffer {
	b := NewBuffer(width, height)
	lines := splitExternalLines(text)
	for i := 0; i < b.Height && i < len(lines); i++ {
		b.Lines[i] = EncodeCells(SliceToCells(lines[i], b.Width))
	}
	return b
}

// AutoSizeFromExternalText builds a buffer that exactly fits its content:
// the width is the longest line's cell length and the height the line
// count, both clamped. Used when opening a file so the grid matches the
// file instead of the previous template size.
func AutoSizeFromExternalText(text string) *Buffer {
	lines := splitExternalLines(text)
	width := 0
	for _, line := range lines {
		if n := CellLength(line); n > width {
			width = n
		}
	}
	return FromExternalText(text, width, len(lines))
}

// ExternalText renders the buffer as plain text, one line per row, with
// every sentinel mapped to a space. With padRight, each row is right-padded
// with spaces to the buffer width first; file save and the monospace screen
// render need the uniform column count for alignment.
func (b *Buffer) ExternalText(padRight bool) string {
	out := make([]string, b.Height)
	for i := 0; i < b.Height; i++ {
		var line string
		cols := 0
		if i < len(b.Lines) {
			line = DecodeCells(b.Lines[i])
			cols = len(b.Lines[i])
		}
		if padRight && cols < b.Width {
			line += strings.Repeat(" ", b.Width-cols)
		}
		out[i] = line
	}
	return strings.Join(out, "\n")
}

// Cell returns the cell at the given position, or a space when the position
// is out of range.
func (b *Buffer) Cell(row, col int) string {
	if row < 0 || row >= b.Height || row >= len(b.Lines) {
		return " "
	}
	if col >= b.Width {
		return " "
	}
	return CellAt(b.Lines[row], col)
}

// SetCell writes one grapheme at a position, keeping wide pairs intact.
// Out-of-range positions are a no-op.
func (b *Buffer) SetCell(row, col int, g string) {
	if row < 0 || row >= b.Height {
		return
	}
	for len(b.Lines) < b.Height {
		b.Lines = append(b.Lines, Row{})
	}
	b.Lines[row] = SetCellInRow(b.Lines[row], col, g, b.Width)
}

// Resize grows or shrinks the buffer in place. Rows cut at the new width
// are normalized so no wide pair is split at the edge.
func (b *Buffer) Resize(width, height int) {
	width = clampSize(width)
	height = clampSize(height)
	lines := CloneRows(b.Lines, height)
	for i, row := range lines {
		if len(row) > width {
			lines[i] = normalizeRowEdges(row, width)
		}
	}
	b.Width = width
	b.Height = height
	b.Lines = lines
}
