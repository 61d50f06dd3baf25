package core

import "strings"

// ComputeMatches scans the grid row by row for literal, case-sensitive
// occurrences of query, non-overlapping left to right. Each match is
// reported as its starting cell, with the string index mapped to a display
// column through cumulative grapheme widths so matches line up even after
// preceding wide glyphs. An empty query has no matches.
func ComputeMatches(b *Buffer, query string) []Position {
	if query == "" {
		return nil
	}
	var matches []Position
	for y := 0; y < b.Height && y < len(b.Lines); y++ {
		line := DecodeCells(b.Lines[y])
		cols := byteToCellColumns(line)
		from := 0
		for from < len(line) {
			idx := strings.Index(line[from:], query)
			if idx < 0 {
				break
			}
			at := from + idx
			matches = append(matches, Position{Row: y, Col: cols[at]})
			// advance past the match; max(1, len) guards a pathological
			// zero-length query even though those short-circuit above
			step := len(query)
			if step < 1 {
				step = 1
			}
			from = at + step
		}
	}
	return matches
}

// byteToCellColumns maps every byte offset of an external line to the
// display column of the grapheme containing it.
func byteToCellColumns(line string) []int {
	cols := make([]int, len(line)+1)
	col := 0
	offset := 0
	for _, g := range SegmentGraphemes(line) {
		for i := 0; i < len(g); i++ {
			cols[offset+i] = col
		}
		offset += len(g)
		col += DisplayWidth(g)
	}
	cols[len(line)] = col
	return cols
}

// positionBefore orders positions row-major.
func positionBefore(a, b Position) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Col < b.Col
}

// FindNext returns the first match strictly after `from` in row-major
// order, wrapping to the first match when none follows. ok is false when
// there are no matches at all.
func FindNext(matches []Position, from Position) (Position, bool) {
	if len(matches) == 0 {
		return Position{}, false
	}
	for _, m := range matches {
		if positionBefore(from, m) {
			return m, true
		}
	}
	return matches[0], true
}

// FindPrev returns the last match strictly before `from`, wrapping to the
// last match when none precedes it.
func FindPrev(matches []Position, from Position) (Position, bool) {
	if len(matches) == 0 {
		return Position{}, false
	}
	for i := len(matches) - 1; i >= 0; i-- {
		if positionBefore(matches[i], from) {
			return matches[i], true
		}
	}
	return matches[len(matches)-1], true
}

// padReplacement right-pads replacement with spaces to at least the
// query's cell length so a shorter replacement leaves no trailing fragment
// of the old match behind.
func padReplacement(query, replacement string) string {
	want := CellLength(query)
	have := CellLength(replacement)
	if have < want {
		replacement += strings.Repeat(" ", want-have)
	}
	return replacement
}

// ReplaceAt writes the padded replacement over one match position.
func ReplaceAt(b *Buffer, at Position, query, replacement string) *Buffer {
	out, _ := OverwriteTextIntoBuffer(b, at, padReplacement(query, replacement))
	return out
}

// ReplaceAll replaces every match, walking from the last match back to the
// first so earlier replacements cannot shift the coordinates of matches
// not yet processed. Returns the new buffer and the number of
// replacements.
func ReplaceAll(b *Buffer, query, replacement string) (*Buffer, int) {
	matches := ComputeMatches(b, query)
	if len(matches) == 0 {
		return b.Clone(), 0
	}
	out := b.Clone()
	padded := padReplacement(query, replacement)
	for i := len(matches) - 1; i >= 0; i-- {
		out, _ = OverwriteTextIntoBuffer(out, matches[i], padded)
	}
	return out, len(matches)
}
