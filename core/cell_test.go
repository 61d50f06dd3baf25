package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayWidth(t *testing.T) {
	tests := []struct {
		name     string
		grapheme string
		want     int
	}{
		{"ascii letter", "a", 1},
		{"ascii symbol", "+", 1},
		{"space", " ", 1},
		{"combining accent", "é", 1},
		{"hangul syllable", "가", 2},
		{"cjk ideograph", "漢", 2},
		{"fullwidth latin", "Ａ", 2},
		{"simple emoji", "😀", 2},
		{"zwj family", "👨‍👩‍👧‍👦", 2},
		{"skin tone emoji", "👋🏽", 2},
		{"emoji presentation selector", "☁️", 2},
		{"box drawing", "─", 1},
		{"arrow", "→", 1},
		{"continuation sentinel", Continuation, 1},
		{"transparent sentinel", Transparent, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayWidth(tt.grapheme))
		})
	}
}

func TestSegmentGraphemes(t *testing.T) {
	assert.Nil(t, SegmentGraphemes(""))
	assert.Equal(t, []string{"a", "b", "c"}, SegmentGraphemes("abc"))
	assert.Equal(t, []string{"é", "x"}, SegmentGraphemes("éx"))
	assert.Equal(t, []string{"👨‍👩‍👧‍👦"}, SegmentGraphemes("👨‍👩‍👧‍👦"))
}

func TestCellLength(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"ascii", "hello", 5},
		{"wide", "가나", 4},
		{"mixed", "a가b", 4},
		{"pre-encoded pair counts its columns", "가" + Continuation, 2},
		{"stray continuation", Continuation, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CellLength(tt.text))
		})
	}
}

func TestEncodeDecodeCells(t *testing.T) {
	row := EncodeCells("a가b")
	require.Equal(t, Row{"a", "가", Continuation, "b"}, row)
	assert.Equal(t, "a가b", DecodeCells(row))

	// an orphaned continuation decodes as a space
	assert.Equal(t, " x", DecodeCells(Row{Continuation, "x"}))

	// transparency sentinels decode as spaces
	assert.Equal(t, "a b", DecodeCells(Row{"a", Transparent, "b"}))
	assert.Equal(t, "a b", DecodeCells(Row{"a", OpaqueSpace, "b"}))
}

func TestInternalExternalRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"hello",
		"가나다",
		"mixed 가 and ascii",
		"multi\nline\ntext",
		"emoji 😀 in line",
		"crlf\r\nline",
	}

	for _, s := range inputs {
		normalized := strings.ReplaceAll(s, "\r\n", "\n")
		normalized = strings.ReplaceAll(normalized, "\r", "\n")
		assert.Equal(t, normalized, ToExternal(ToInternal(s)), "round-trip of %q", s)
	}
}

func TestSliceToCells(t *testing.T) {
	tests := []struct {
		name string
		text string
		max  int
		want string
	}{
		{"fits", "abc", 5, "abc"},
		{"exact", "abc", 3, "abc"},
		{"truncated", "abcdef", 3, "abc"},
		{"zero columns", "abc", 0, ""},
		{"wide fits", "가나", 4, "가나"},
		{"wide straddles boundary", "a가", 2, "a"},
		{"wide dropped entirely", "가", 1, ""},
		{"pre-encoded pair kept together", "가" + Continuation + "b", 3, "가" + Continuation + "b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SliceToCells(tt.text, tt.max))
		})
	}
}

func TestSetCellInRow(t *testing.T) {
	t.Run("narrow write", func(t *testing.T) {
		row := SetCellInRow(Row{}, 2, "x", 10)
		assert.Equal(t, Row{" ", " ", "x"}, row)
	})

	t.Run("wide write installs continuation", func(t *testing.T) {
		row := SetCellInRow(Row{}, 0, "가", 10)
		assert.Equal(t, Row{"가", Continuation}, row)
	})

	t.Run("overwriting wide head clears continuation", func(t *testing.T) {
		row := EncodeCells("가 ")
		row = SetCellInRow(row, 0, "a", 10)
		assert.Equal(t, Row{"a", " ", " "}, row)
	})

	t.Run("overwriting continuation clears its owner", func(t *testing.T) {
		row := EncodeCells("가b")
		row = SetCellInRow(row, 1, "x", 10)
		assert.Equal(t, Row{" ", "x", "b"}, row)
	})

	t.Run("wide write over wide neighbour", func(t *testing.T) {
		// writing a wide glyph at col 1 when cols 2-3 hold another wide
		// pair must clear the neighbour entirely
		row := EncodeCells("a나다")
		row = SetCellInRow(row, 2, "가", 10)
		assert.Equal(t, Row{"a", " ", "가", Continuation, " "}, row)
	})

	t.Run("wide at last column downgrades to blank", func(t *testing.T) {
		row := SetCellInRow(Row{}, 4, "가", 5)
		assert.Equal(t, Row{" ", " ", " ", " ", " "}, row)
	})

	t.Run("out of range is a no-op", func(t *testing.T) {
		row := Row{"a"}
		assert.Equal(t, Row{"a"}, SetCellInRow(row, -1, "x", 5))
		assert.Equal(t, Row{"a"}, SetCellInRow(row, 5, "x", 5))
	})
}

func TestPairingInvariantAfterWrites(t *testing.T) {
	// hammer a row with mixed writes and check the invariant afterwards
	row := Row{}
	writes := []struct {
		col int
		g   string
	}{
		{0, "가"}, {1, "x"}, {3, "나"}, {4, "y"}, {2, "다"}, {0, "라"}, {1, "z"},
	}
	for _, w := range writes {
		row = SetCellInRow(row, w.col, w.g, 8)
	}
	assertRowPairing(t, row, 8)
}

// assertRowPairing checks the wide-glyph pairing invariant on a row: every
// continuation is owned by the wide cell immediately to its left, and every
// in-bounds wide cell is followed by its continuation.
func assertRowPairing(t *testing.T, row Row, width int) {
	t.Helper()
	for i, cell := range row {
		if cell == Continuation {
			require.Greater(t, i, 0, "continuation at column 0")
			require.Equal(t, 2, DisplayWidth(row[i-1]), "continuation at %d not owned by a wide cell", i)
			require.NotEqual(t, Continuation, row[i-1])
		} else if cell != Transparent && cell != OpaqueSpace && DisplayWidth(cell) == 2 {
			require.Less(t, i+1, width, "wide cell at last column %d", i)
			require.Less(t, i+1, len(row), "wide cell at %d missing continuation", i)
			require.Equal(t, Continuation, row[i+1], "wide cell at %d missing continuation", i)
		}
	}
}

func TestCellAt(t *testing.T) {
	row := EncodeCells("가b")
	assert.Equal(t, "가", CellAt(row, 0))
	assert.Equal(t, Continuation, CellAt(row, 1))
	assert.Equal(t, "b", CellAt(row, 2))
	assert.Equal(t, " ", CellAt(row, 3))
	assert.Equal(t, " ", CellAt(row, -1))
}
