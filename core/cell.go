package core

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// The grid is addressed in display columns, not runes or bytes. Every
// user-perceived character (grapheme cluster) occupies one or two columns;
// a 2-wide cluster is always followed by a Continuation sentinel so an
// internal row's element index equals its display column.
//
// Sentinels are private-use runes, so they can never collide with user text.
// They never leak into rendered or exported output (ToExternal maps them to
// spaces).
const (
	// Continuation occupies the second display column of a 2-wide grapheme.
	Continuation = ""

	// Transparent marks a column a layer does not paint. The compositor
	// lets lower layers show through it.
	Transparent = ""

	// OpaqueSpace is a space that a drawing operation wants painted over
	// lower layers (the eraser stamps it), as opposed to a plain space,
	// which compositing treats as see-through.
	OpaqueSpace = ""
)

// Row is one internal line of a buffer: a flat sequence of cells where each
// element is a grapheme cluster, a sentinel, or a single space. Its length
// may be shorter than the buffer width; missing trailing columns are
// implicitly blank.
type Row []string

// SegmentGraphemes splits text into grapheme clusters at locale-independent
// boundaries. Callers that already hold single clusters (cell contents) never
// need this; it exists for arbitrary typed or pasted text.
func SegmentGraphemes(text string) []string {
	if text == "" {
		return nil
	}
	clusters := make([]string, 0, len(text))
	state := -1
	var cluster string
	for len(text) > 0 {
		cluster, text, _, state = uniseg.StepString(text, state)
		clusters = append(clusters, cluster)
	}
	return clusters
}

// isWideRune reports whether a single code point forces its grapheme to
// occupy two columns: East-Asian wide/fullwidth forms, the zero-width
// joiner, the emoji presentation selector, or a pictographic/emoji-range
// code point. The emoji ranges are approximate on purpose; exact width
// varies by terminal and a stable classification matters more here than a
// perfect one.
func isWideRune(r rune) bool {
	switch {
	case r == 0x200D: // zero-width joiner
		return true
	case r == 0xFE0F: // variation selector-16 (emoji presentation)
		return true
	case r >= 0x1F000 && r <= 0x1FAFF: // emoji, symbols, regional indicators
		return true
	case r >= 0x2600 && r <= 0x27BF: // misc symbols, dingbats
		return true
	}
	return runewidth.RuneWidth(r) == 2
}

// DisplayWidth returns the number of display columns (1 or 2) a single
// grapheme cluster occupies. Every code point of the cluster is inspected,
// not just the first, so ZWJ sequences and modifier-carrying emoji report 2.
// Sentinel cells occupy one column each.
func DisplayWidth(g string) int {
	switch g {
	case Continuation, Transparent, OpaqueSpace:
		return 1
	}
	for _, r := range g {
		if isWideRune(r) {
			return 2
		}
	}
	return 1
}

// CellLength returns the total display columns of text. An explicit
// Continuation sentinel contributes 1, so a pre-encoded internal row's
// length equals its occupied columns.
func CellLength(text string) int {
	gs := SegmentGraphemes(text)
	n := 0
	for i, g := range gs {
		switch g {
		case Continuation, Transparent, OpaqueSpace:
			n++
		default:
			w := DisplayWidth(g)
			if w == 2 && i+1 < len(gs) && gs[i+1] == Continuation {
				// the explicit sentinel carries the second column
				w = 1
			}
			n += w
		}
	}
	return n
}

// EncodeCells converts one line of external text into its internal row:
// each wide grapheme is followed by a Continuation sentinel. Carriage
// returns are dropped.
func EncodeCells(line string) Row {
	row := make(Row, 0, len(line))
	for _, g := range SegmentGraphemes(line) {
		if g == "\r" {
			continue
		}
		row = append(row, g)
		if DisplayWidth(g) == 2 {
			row = append(row, Continuation)
		}
	}
	return row
}

// DecodeCells renders an internal row as external text, so continuation
// cells never leak into output. A continuation paired with its wide head
// contributes nothing (the head already spans both columns); an orphaned
// one, which no public mutation should produce, decodes to a space. The
// transparency sentinels decode to spaces.
func DecodeCells(row Row) string {
	var sb strings.Builder
	for i, cell := range row {
		switch cell {
		case Continuation:
			if i > 0 && DisplayWidth(row[i-1]) == 2 {
				continue
			}
			sb.WriteString(" ")
		case Transparent, OpaqueSpace:
			sb.WriteString(" ")
		default:
			sb.WriteString(cell)
		}
	}
	return sb.String()
}

// ToInternal converts arbitrary external text (possibly multi-line) into
// internal encoding. Newlines stay as single \n, carriage returns are
// dropped.
func ToInternal(text string) string {
	lines := splitExternalLines(text)
	encoded := make([]string, len(lines))
	for i, line := range lines {
		encoded[i] = strings.Join(EncodeCells(line), "")
	}
	return strings.Join(encoded, "\n")
}

// ToExternal is the inverse of ToInternal for rendering/export. Paired
// continuations vanish into their wide head; stray sentinels become spaces.
func ToExternal(internal string) string {
	var sb strings.Builder
	for _, line := range strings.Split(internal, "\n") {
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(DecodeCells(Row(SegmentGraphemes(line))))
	}
	return sb.String()
}

// SliceToCells truncates a text run so its display width does not exceed
// maxColumns. A wide grapheme that would only partially fit is dropped
// entirely; the result never ends with a dangling wide head and never
// contains a stray continuation.
func SliceToCells(text string, maxColumns int) string {
	if maxColumns <= 0 {
		return ""
	}
	gs := SegmentGraphemes(text)
	var sb strings.Builder
	used := 0
	for i := 0; i < len(gs); i++ {
		g := gs[i]
		switch g {
		case Continuation, Transparent, OpaqueSpace:
			if used+1 > maxColumns {
				return sb.String()
			}
			sb.WriteString(g)
			used++
			continue
		}
		w := DisplayWidth(g)
		if used+w > maxColumns {
			return sb.String()
		}
		sb.WriteString(g)
		used += w
		if w == 2 && i+1 < len(gs) && gs[i+1] == Continuation {
			// keep pre-encoded pairs together; the pair still totals 2
			sb.WriteString(Continuation)
			i++
		}
	}
	return sb.String()
}

// CellAt returns the cell at the given display column of a row: the grapheme
// or sentinel stored there, or a space for columns past the row's internal
// length. Negative columns read as a space.
func CellAt(row Row, col int) string {
	if col < 0 || col >= len(row) {
		return " "
	}
	return row[col]
}

// clearCell blanks the cell at col, normalizing any wide pair it belonged
// to so no orphaned continuation or dangling wide head survives. The row is
// not grown.
func clearCell(row Row, col int) Row {
	if col < 0 || col >= len(row) {
		return row
	}
	switch row[col] {
	case Continuation:
		// The owning wide cell sits immediately to the left in the flat
		// encoding.
		if col > 0 {
			row[col-1] = " "
		}
		row[col] = " "
	default:
		if DisplayWidth(row[col]) == 2 && col+1 < len(row) && row[col+1] == Continuation {
			row[col+1] = " "
		}
		row[col] = " "
	}
	return row
}

// padRow grows a row with spaces until it has at least n cells.
func padRow(row Row, n int) Row {
	for len(row) < n {
		row = append(row, " ")
	}
	return row
}

// SetCellInRow writes one grapheme (or sentinel) at a display column,
// keeping every wide pair intact. width is the buffer width; writes at or
// past it are no-ops. A wide grapheme whose continuation would not fit
// within width is downgraded to a blank instead of being written truncated.
func SetCellInRow(row Row, col int, g string, width int) Row {
	if col < 0 || col >= width {
		return row
	}
	w := DisplayWidth(g)
	if w == 2 && col+1 >= width {
		g, w = " ", 1
	}
	row = padRow(row, col+w)
	row = clearCell(row, col)
	row[col] = g
	if w == 2 {
		row = clearCell(row, col+1)
		row[col+1] = Continuation
	}
	return row
}

// normalizeRowEdges repairs the endpoints of a row slice cut out of a wider
// row: a continuation with no head at the left edge, or a wide head with no
// room for its continuation at the right edge, becomes a space.
func normalizeRowEdges(row Row, width int) Row {
	if len(row) == 0 {
		return row
	}
	if row[0] == Continuation {
		row[0] = " "
	}
	last := len(row) - 1
	if width > 0 && len(row) > width {
		row = row[:width]
		last = width - 1
	}
	if last >= 0 && row[last] != Continuation && DisplayWidth(row[last]) == 2 {
		row[last] = " "
	}
	return row
}

// splitExternalLines splits external text into lines, accepting \r\n, \r
// and \n as separators.
func splitExternalLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}
