package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBufferClampsDimensions(t *testing.T) {
	tests := []struct {
		name       string
		w, h       int
		wantW, wantH int
	}{
		{"normal", 80, 24, 80, 24},
		{"zero", 0, 0, MinBufferSize, MinBufferSize},
		{"negative", -5, -5, MinBufferSize, MinBufferSize},
		{"oversize", 3000, 5000, MaxBufferSize, MaxBufferSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer(tt.w, tt.h)
			assert.Equal(t, tt.wantW, b.Width)
			assert.Equal(t, tt.wantH, b.Height)
			assert.Len(t, b.Lines, tt.wantH)
		})
	}
}

func TestFromExternalText(t *testing.T) {
	b := FromExternalText("ab\ncd", 4, 3)
	assert.Equal(t, "ab\ncd\n", b.ExternalText(false))
	assert.Equal(t, "ab  \ncd  \n    ", b.ExternalText(true))

	t.Run("rows truncated to width", func(t *testing.T) {
		b := FromExternalText("abcdef", 3, 1)
		assert.Equal(t, "abc", b.ExternalText(false))
	})

	t.Run("extra lines dropped", func(t *testing.T) {
		b := FromExternalText("a\nb\nc", 2, 2)
		assert.Equal(t, "a\nb", b.ExternalText(false))
	})

	t.Run("wide glyph split at width is dropped", func(t *testing.T) {
		b := FromExternalText("a가", 2, 1)
		assert.Equal(t, "a", b.ExternalText(false))
	})

	t.Run("crlf input", func(t *testing.T) {
		b := FromExternalText("ab\r\ncd", 2, 2)
		assert.Equal(t, "ab\ncd", b.ExternalText(false))
	})
}

func TestAutoSizeFromExternalText(t *testing.T) {
	b := AutoSizeFromExternalText("ab\nc")
	assert.Equal(t, 2, b.Width)
	assert.Equal(t, 2, b.Height)
	assert.Equal(t, "ab\nc", b.ExternalText(false))

	t.Run("wide content counts columns", func(t *testing.T) {
		b := AutoSizeFromExternalText("가나\nx")
		assert.Equal(t, 4, b.Width)
		assert.Equal(t, 2, b.Height)
	})

	t.Run("empty text yields minimum grid", func(t *testing.T) {
		b := AutoSizeFromExternalText("")
		assert.Equal(t, MinBufferSize, b.Width)
		assert.Equal(t, MinBufferSize, b.Height)
	})
}

func TestBufferCellAccess(t *testing.T) {
	b := FromExternalText("가b", 4, 2)
	assert.Equal(t, "가", b.Cell(0, 0))
	assert.Equal(t, Continuation, b.Cell(0, 1))
	assert.Equal(t, "b", b.Cell(0, 2))
	assert.Equal(t, " ", b.Cell(0, 3))
	assert.Equal(t, " ", b.Cell(1, 0))
	assert.Equal(t, " ", b.Cell(-1, 0))
	assert.Equal(t, " ", b.Cell(5, 0))
	assert.Equal(t, " ", b.Cell(0, 99))
}

func TestBufferSetCell(t *testing.T) {
	b := NewBuffer(4, 2)
	b.SetCell(1, 2, "x")
	assert.Equal(t, "x", b.Cell(1, 2))
	assert.Equal(t, "    \n  x ", b.ExternalText(true))

	b.SetCell(0, 0, "가")
	assert.Equal(t, "가", b.Cell(0, 0))
	assert.Equal(t, Continuation, b.Cell(0, 1))

	// out of range writes change nothing
	before := b.ExternalText(true)
	b.SetCell(-1, 0, "x")
	b.SetCell(5, 0, "x")
	b.SetCell(0, 99, "x")
	assert.Equal(t, before, b.ExternalText(true))
}

func TestBufferClone(t *testing.T) {
	b := FromExternalText("ab\ncd", 2, 2)
	c := b.Clone()
	c.SetCell(0, 0, "z")
	assert.Equal(t, "ab\ncd", b.ExternalText(false))
	assert.Equal(t, "zb\ncd", c.ExternalText(false))
}

func TestBufferResize(t *testing.T) {
	t.Run("grow keeps content", func(t *testing.T) {
		b := FromExternalText("ab\ncd", 2, 2)
		b.Resize(4, 3)
		assert.Equal(t, 4, b.Width)
		assert.Equal(t, 3, b.Height)
		assert.Equal(t, "ab\ncd\n", b.ExternalText(false))
	})

	t.Run("shrink truncates", func(t *testing.T) {
		b := FromExternalText("abcd\nefgh\nijkl", 4, 3)
		b.Resize(2, 2)
		assert.Equal(t, "ab\nef", b.ExternalText(false))
	})

	t.Run("shrink never splits a wide pair", func(t *testing.T) {
		b := FromExternalText("a가", 3, 1)
		b.Resize(2, 1)
		require.Len(t, b.Lines[0], 2)
		assert.Equal(t, "a ", b.ExternalText(false))
	})
}
