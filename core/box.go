package core

import "strings"

// Wall glyph classes for box detection, covering both drawing styles.
var (
	verticalWalls   = "|│"
	horizontalWalls = "-─"
	cornerWalls     = "+┌┐└┘"
)

func isVerticalWall(cell string) bool {
	return cell != "" && (strings.Contains(verticalWalls, cell) || strings.Contains(cornerWalls, cell))
}

func isHorizontalWall(cell string) bool {
	return cell != "" && (strings.Contains(horizontalWalls, cell) || strings.Contains(cornerWalls, cell))
}

func isCorner(cell string) bool {
	return cell != "" && strings.Contains(cornerWalls, cell)
}

// borderRow reports whether row y forms a horizontal border between the two
// wall columns: corner-compatible endpoints with nothing but horizontal
// wall glyphs between them.
func borderRow(b *Buffer, y, left, right int) bool {
	if !isCorner(b.Cell(y, left)) || !isCorner(b.Cell(y, right)) {
		return false
	}
	for x := left + 1; x < right; x++ {
		if !isHorizontalWall(b.Cell(y, x)) {
			return false
		}
	}
	return true
}

// findEnclosingBox locates a drawn box around `at` by scanning outward on
// the same row for left/right wall glyphs, then up and down for matching
// border rows. It returns the inner (content) rectangle.
//
// This is a heuristic, not a geometric parser: overlapping boxes sharing
// wall glyphs can make it pick surprising bounds. Text wrap only needs a
// plausible enclosure.
func findEnclosingBox(b *Buffer, at Position) (Rect, bool) {
	left := -1
	for x := at.Col - 1; x >= 0; x-- {
		if isVerticalWall(b.Cell(at.Row, x)) {
			left = x
			break
		}
	}
	if left < 0 {
		return Rect{}, false
	}
	right := -1
	for x := at.Col + 1; x < b.Width; x++ {
		if isVerticalWall(b.Cell(at.Row, x)) {
			right = x
			break
		}
	}
	if right < 0 || right-left < 2 {
		return Rect{}, false
	}

	top := -1
	for y := at.Row - 1; y >= 0; y-- {
		if borderRow(b, y, left, right) {
			top = y
			break
		}
		if !isVerticalWall(b.Cell(y, left)) || !isVerticalWall(b.Cell(y, right)) {
			return Rect{}, false
		}
	}
	if top < 0 {
		return Rect{}, false
	}
	bottom := -1
	for y := at.Row + 1; y < b.Height; y++ {
		if borderRow(b, y, left, right) {
			bottom = y
			break
		}
		if !isVerticalWall(b.Cell(y, left)) || !isVerticalWall(b.Cell(y, right)) {
			return Rect{}, false
		}
	}
	if bottom < 0 {
		return Rect{}, false
	}

	return Rect{Top: top + 1, Left: left + 1, Bottom: bottom - 1, Right: right - 1}, true
}

// OverwriteTextIntoBuffer types text into the grid at `at` on a copy of
// base, overwrite-style. If the insertion point lies inside a drawn box,
// text wraps at the box's inner right edge back to the inner left edge on
// the next inner row and stops once it would pass the inner bottom edge;
// otherwise it wraps at the buffer's right edge and stops at the buffer's
// bottom. A wide grapheme that would straddle the wrap boundary is deferred
// to the next line, never split. Returns the buffer and the cursor cell
// after the last written grapheme, clamped to the governing region.
func OverwriteTextIntoBuffer(base *Buffer, at Position, text string) (*Buffer, Position) {
	out := base.Clone()
	at = clampPosition(out, at)

	region := Rect{Top: 0, Left: 0, Bottom: out.Height - 1, Right: out.Width - 1}
	if box, ok := findEnclosingBox(out, at); ok && !box.Empty() {
		region = box
	}

	row, col := at.Row, at.Col
	for _, g := range SegmentGraphemes(text) {
		if g == "\r" {
			continue
		}
		if g == "\n" {
			row++
			col = region.Left
			if row > region.Bottom {
				row = region.Bottom
				break
			}
			continue
		}
		w := DisplayWidth(g)
		if col+w-1 > region.Right {
			if row+1 > region.Bottom {
				// keep col so the cursor stays after the last write
				break
			}
			row++
			col = region.Left
			if col+w-1 > region.Right {
				// region narrower than the grapheme
				continue
			}
		}
		out.SetCell(row, col, g)
		col += w
	}

	cursor := Position{Row: row, Col: col}
	if cursor.Col > region.Right {
		cursor.Col = region.Right
	}
	if cursor.Row > region.Bottom {
		cursor.Row = region.Bottom
	}
	return out, cursor
}
