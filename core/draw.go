package core

// Style selects the glyph set used by the drawing tools.
type Style string

const (
	StyleASCII   Style = "ascii"
	StyleUnicode Style = "unicode"
)

type glyphSet struct {
	Horizontal string
	Vertical   string
	CornerTL   string
	CornerTR   string
	CornerBL   string
	CornerBR   string
	ArrowLeft  string
	ArrowRight string
	ArrowUp    string
	ArrowDown  string
}

var glyphSets = map[Style]glyphSet{
	StyleASCII: {
		Horizontal: "-",
		Vertical:   "|",
		CornerTL:   "+",
		CornerTR:   "+",
		CornerBL:   "+",
		CornerBR:   "+",
		ArrowLeft:  "<",
		ArrowRight: ">",
		ArrowUp:    "^",
		ArrowDown:  "v",
	},
	StyleUnicode: {
		Horizontal: "─",
		Vertical:   "│",
		CornerTL:   "┌",
		CornerTR:   "┐",
		CornerBL:   "└",
		CornerBR:   "┘",
		ArrowLeft:  "←",
		ArrowRight: "→",
		ArrowUp:    "↑",
		ArrowDown:  "↓",
	},
}

func (s Style) glyphs() glyphSet {
	if g, ok := glyphSets[s]; ok {
		return g
	}
	return glyphSets[StyleASCII]
}

// clampPosition clamps a position into the buffer's bounds.
func clampPosition(b *Buffer, p Position) Position {
	if p.Row < 0 {
		p.Row = 0
	} else if p.Row >= b.Height {
		p.Row = b.Height - 1
	}
	if p.Col < 0 {
		p.Col = 0
	} else if p.Col >= b.Width {
		p.Col = b.Width - 1
	}
	return p
}

// DrawRect rasterizes the bounding box of a and b onto a copy of base.
// Degenerate boxes collapse gracefully: a single point draws one corner
// glyph, a one-row box a horizontal run, a one-column box a vertical run.
// Corners are stamped after the edges so they always win at overlaps.
func DrawRect(base *Buffer, a, b Position, style Style) *Buffer {
	g := style.glyphs()
	out := base.Clone()
	a = clampPosition(out, a)
	b = clampPosition(out, b)
	r := NewRect(a, b)

	switch {
	case r.Top == r.Bottom && r.Left == r.Right:
		out.SetCell(r.Top, r.Left, g.CornerTL)
	case r.Top == r.Bottom:
		for col := r.Left + 1; col < r.Right; col++ {
			out.SetCell(r.Top, col, g.Horizontal)
		}
		out.SetCell(r.Top, r.Left, g.CornerTL)
		out.SetCell(r.Top, r.Right, g.CornerTR)
	case r.Left == r.Right:
		for row := r.Top + 1; row < r.Bottom; row++ {
			out.SetCell(row, r.Left, g.Vertical)
		}
		out.SetCell(r.Top, r.Left, g.CornerTL)
		out.SetCell(r.Bottom, r.Left, g.CornerBL)
	default:
		for col := r.Left + 1; col < r.Right; col++ {
			out.SetCell(r.Top, col, g.Horizontal)
			out.SetCell(r.Bottom, col, g.Horizontal)
		}
		for row := r.Top + 1; row < r.Bottom; row++ {
			out.SetCell(row, r.Left, g.Vertical)
			out.SetCell(row, r.Right, g.Vertical)
		}
		out.SetCell(r.Top, r.Left, g.CornerTL)
		out.SetCell(r.Top, r.Right, g.CornerTR)
		out.SetCell(r.Bottom, r.Left, g.CornerBL)
		out.SetCell(r.Bottom, r.Right, g.CornerBR)
	}
	return out
}

// elbowGlyph picks the corner shape for an L path that travels horizontally
// from a to (a.Row, b.Col) and then vertically to b.
func elbowGlyph(g glyphSet, a, b Position) string {
	goingRight := b.Col > a.Col
	goingDown := b.Row > a.Row
	switch {
	case goingRight && goingDown:
		return g.CornerTR
	case goingRight && !goingDown:
		return g.CornerBR
	case !goingRight && goingDown:
		return g.CornerTL
	default:
		return g.CornerBL
	}
}

// DrawOrthogonal rasterizes an L-shaped connector from a to b onto a copy
// of base: a horizontal run on a's row to b's column, then a vertical run
// down/up to b. When both segments exist the elbow cell gets a
// direction-dependent corner glyph. With arrow set, the endpoint b is
// stamped with a directional arrowhead; a degenerate zero-length line
// defaults to a right arrow.
func DrawOrthogonal(base *Buffer, a, b Position, style Style, arrow bool) *Buffer {
	g := style.glyphs()
	out := base.Clone()
	a = clampPosition(out, a)
	b = clampPosition(out, b)

	horizontal := a.Col != b.Col
	vertical := a.Row != b.Row

	if horizontal {
		step := 1
		if b.Col < a.Col {
			step = -1
		}
		for col := a.Col; col != b.Col; col += step {
			out.SetCell(a.Row, col, g.Horizontal)
		}
	}
	if vertical {
		step := 1
		if b.Row < a.Row {
			step = -1
		}
		for row := a.Row; row != b.Row; row += step {
			out.SetCell(row, b.Col, g.Vertical)
		}
		out.SetCell(b.Row, b.Col, g.Vertical)
	} else if horizontal {
		out.SetCell(a.Row, b.Col, g.Horizontal)
	}

	if horizontal && vertical {
		out.SetCell(a.Row, b.Col, elbowGlyph(g, a, b))
	}

	if arrow {
		head := g.ArrowRight
		switch {
		case vertical && b.Row > a.Row:
			head = g.ArrowDown
		case vertical:
			head = g.ArrowUp
		case horizontal && b.Col < a.Col:
			head = g.ArrowLeft
		}
		out.SetCell(b.Row, b.Col, head)
	}
	return out
}

// DrawFree stamps drawChar at every point of a stroke onto a copy of base.
// Point sequences coming from pointer drags should already be gap-filled via
// BresenhamPoints.
func DrawFree(base *Buffer, points []Position, drawChar string) *Buffer {
	out := base.Clone()
	for _, p := range points {
		out.SetCell(p.Row, p.Col, drawChar)
	}
	return out
}

// BresenhamPoints returns every grid point of the line segment from a to b,
// endpoints included. Consecutive raw pointer samples are joined through it
// so a fast drag leaves no gaps.
func BresenhamPoints(a, b Position) []Position {
	dx := b.Col - a.Col
	if dx < 0 {
		dx = -dx
	}
	dy := b.Row - a.Row
	if dy < 0 {
		dy = -dy
	}
	sx := 1
	if a.Col > b.Col {
		sx = -1
	}
	sy := 1
	if a.Row > b.Row {
		sy = -1
	}

	points := make([]Position, 0, dx+dy+1)
	x, y := a.Col, a.Row
	err := dx - dy
	for {
		points = append(points, Position{Row: y, Col: x})
		if x == b.Col && y == b.Row {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
	return points
}
