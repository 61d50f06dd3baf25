package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bufferRows(b *Buffer) []string {
	return strings.Split(b.ExternalText(true), "\n")
}

func TestDrawRectASCII(t *testing.T) {
	base := NewBuffer(80, 24)
	out := DrawRect(base, Position{Row: 0, Col: 0}, Position{Row: 2, Col: 4}, StyleASCII)

	rows := bufferRows(out)
	assert.Equal(t, "+---+", rows[0][:5])
	assert.Equal(t, "|   |", rows[1][:5])
	assert.Equal(t, "+---+", rows[2][:5])
	assert.Equal(t, strings.Repeat(" ", 80), rows[3])

	// base is untouched
	assert.Equal(t, strings.Repeat(" ", 80), bufferRows(base)[0])
}

func TestDrawRectUnicode(t *testing.T) {
	base := NewBuffer(5, 3)
	out := DrawRect(base, Position{0, 0}, Position{2, 4}, StyleUnicode)

	assert.Equal(t, "┌───┐\n│   │\n└───┘", out.ExternalText(true))
}

func TestDrawRectCornersFromAnyDragDirection(t *testing.T) {
	base := NewBuffer(5, 3)
	// dragging from bottom-right to top-left yields the same rectangle
	out := DrawRect(base, Position{2, 4}, Position{0, 0}, StyleASCII)
	assert.Equal(t, "+---+\n|   |\n+---+", out.ExternalText(true))
}

func TestDrawRectDegenerate(t *testing.T) {
	t.Run("single point", func(t *testing.T) {
		out := DrawRect(NewBuffer(3, 3), Position{1, 1}, Position{1, 1}, StyleASCII)
		assert.Equal(t, "+", out.Cell(1, 1))
		assert.Equal(t, " ", out.Cell(1, 0))
		assert.Equal(t, " ", out.Cell(1, 2))
	})

	t.Run("one row", func(t *testing.T) {
		out := DrawRect(NewBuffer(5, 1), Position{0, 0}, Position{0, 4}, StyleASCII)
		assert.Equal(t, "+---+", out.ExternalText(true))
	})

	t.Run("one column", func(t *testing.T) {
		out := DrawRect(NewBuffer(1, 4), Position{0, 0}, Position{3, 0}, StyleASCII)
		assert.Equal(t, "+\n|\n|\n+", out.ExternalText(true))
	})

	t.Run("out of range endpoints clamp", func(t *testing.T) {
		out := DrawRect(NewBuffer(3, 3), Position{-5, -5}, Position{9, 9}, StyleASCII)
		assert.Equal(t, "+-+\n| |\n+-+", out.ExternalText(true))
	})
}

func TestDrawOrthogonal(t *testing.T) {
	t.Run("right then down", func(t *testing.T) {
		out := DrawOrthogonal(NewBuffer(4, 3), Position{0, 0}, Position{2, 3}, StyleASCII, false)
		assert.Equal(t, "---+\n   |\n   |", out.ExternalText(true))
	})

	t.Run("right then up unicode", func(t *testing.T) {
		out := DrawOrthogonal(NewBuffer(4, 3), Position{2, 0}, Position{0, 3}, StyleUnicode, false)
		assert.Equal(t, "   │\n   │\n───┘", out.ExternalText(true))
	})

	t.Run("horizontal only", func(t *testing.T) {
		out := DrawOrthogonal(NewBuffer(4, 1), Position{0, 0}, Position{0, 3}, StyleASCII, false)
		assert.Equal(t, "----", out.ExternalText(true))
	})

	t.Run("vertical only", func(t *testing.T) {
		out := DrawOrthogonal(NewBuffer(1, 3), Position{0, 0}, Position{2, 0}, StyleASCII, false)
		assert.Equal(t, "|\n|\n|", out.ExternalText(true))
	})
}

func TestDrawOrthogonalArrowheads(t *testing.T) {
	tests := []struct {
		name string
		a, b Position
		head string
	}{
		{"down", Position{0, 0}, Position{2, 3}, "v"},
		{"up", Position{2, 0}, Position{0, 3}, "^"},
		{"right", Position{0, 0}, Position{0, 3}, ">"},
		{"left", Position{0, 3}, Position{0, 0}, "<"},
		{"zero length defaults right", Position{1, 1}, Position{1, 1}, ">"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := DrawOrthogonal(NewBuffer(4, 3), tt.a, tt.b, StyleASCII, true)
			assert.Equal(t, tt.head, out.Cell(tt.b.Row, tt.b.Col))
		})
	}
}

func TestDrawFree(t *testing.T) {
	out := DrawFree(NewBuffer(3, 3), []Position{{0, 0}, {1, 1}, {2, 2}}, "*")
	assert.Equal(t, "*  \n * \n  *", out.ExternalText(true))
}

func TestBresenhamPoints(t *testing.T) {
	t.Run("endpoints included", func(t *testing.T) {
		pts := BresenhamPoints(Position{0, 0}, Position{0, 0})
		assert.Equal(t, []Position{{0, 0}}, pts)
	})

	t.Run("horizontal", func(t *testing.T) {
		pts := BresenhamPoints(Position{1, 0}, Position{1, 3})
		assert.Equal(t, []Position{{1, 0}, {1, 1}, {1, 2}, {1, 3}}, pts)
	})

	t.Run("diagonal", func(t *testing.T) {
		pts := BresenhamPoints(Position{0, 0}, Position{3, 3})
		assert.Equal(t, []Position{{0, 0}, {1, 1}, {2, 2}, {3, 3}}, pts)
	})

	t.Run("no gaps on a steep segment", func(t *testing.T) {
		pts := BresenhamPoints(Position{0, 0}, Position{5, 2})
		require.Equal(t, Position{0, 0}, pts[0])
		require.Equal(t, Position{5, 2}, pts[len(pts)-1])
		for i := 1; i < len(pts); i++ {
			dr := pts[i].Row - pts[i-1].Row
			dc := pts[i].Col - pts[i-1].Col
			assert.LessOrEqual(t, abs(dr), 1)
			assert.LessOrEqual(t, abs(dc), 1)
			assert.False(t, dr == 0 && dc == 0, "duplicate point at %d", i)
		}
	})

	t.Run("reversed segment still connects", func(t *testing.T) {
		pts := BresenhamPoints(Position{4, 7}, Position{0, 1})
		assert.Equal(t, Position{4, 7}, pts[0])
		assert.Equal(t, Position{0, 1}, pts[len(pts)-1])
	})
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
