package core

import "fmt"

// Layer is one independently visible, lockable buffer in the session's
// stack. Layers are composited bottom to top; a locked layer silently
// rejects every mutating operation.
type Layer struct {
	ID      string
	Name    string
	Visible bool
	Locked  bool
	Buffer  *Buffer
}

// NewLayer creates a visible, unlocked layer with a blank buffer.
func NewLayer(id, name string, width, height int) *Layer {
	return &Layer{
		ID:      id,
		Name:    name,
		Visible: true,
		Buffer:  NewBuffer(width, height),
	}
}

// Clone deep-copies the layer, buffer included.
func (l *Layer) Clone() *Layer {
	return &Layer{
		ID:      l.ID,
		Name:    l.Name,
		Visible: l.Visible,
		Locked:  l.Locked,
		Buffer:  l.Buffer.Clone(),
	}
}

// CloneLayers deep-copies a layer list.
func CloneLayers(layers []*Layer) []*Layer {
	out := make([]*Layer, len(layers))
	for i, l := range layers {
		out[i] = l.Clone()
	}
	return out
}

// transparent reports whether a cell lets lower layers show through:
// implicit blanks, plain spaces and the Transparent sentinel do; an
// OpaqueSpace painted by a drawing operation does not.
func transparent(cell string) bool {
	return cell == "" || cell == " " || cell == Transparent
}

// Composite flattens the layer stack into a single buffer of the given
// dimensions. Layers are walked bottom to top; invisible layers are
// skipped; see-through cells never overwrite what a lower layer painted;
// every opaque cell of a higher layer wins at its coordinate. Wide cells
// consume two output columns, their source continuation cell is consumed
// without being processed on its own.
//
// The whole view is recomputed on every call. Buffers are capped at
// 2000x2000 and typical working sizes recompute in negligible time, so no
// incremental diffing is done.
func Composite(layers []*Layer, width, height int) *Buffer {
	out := NewBuffer(width, height)
	for _, layer := range layers {
		if !layer.Visible {
			continue
		}
		src := layer.Buffer
		rows := src.Height
		if rows > out.Height {
			rows = out.Height
		}
		for y := 0; y < rows && y < len(src.Lines); y++ {
			row := src.Lines[y]
			for col := 0; col < len(row) && col < out.Width; col++ {
				cell := row[col]
				if cell == Continuation {
					continue // consumed by its wide head
				}
				if transparent(cell) {
					continue
				}
				if cell == OpaqueSpace {
					cell = " "
				}
				out.SetCell(y, col, cell)
			}
		}
	}
	return out
}

// MergeDown composites exactly two layers (lower first) into a fresh layer
// that keeps the lower layer's identity. Visibility flags are ignored here;
// merging an explicitly hidden layer still bakes its content in, matching
// what the layer panel's merge action promises.
func MergeDown(lower, upper *Layer, width, height int) *Layer {
	a := lower.Clone()
	b := upper.Clone()
	a.Visible = true
	b.Visible = true
	merged := Composite([]*Layer{a, b}, width, height)
	return &Layer{
		ID:      lower.ID,
		Name:    lower.Name,
		Visible: lower.Visible,
		Locked:  false,
		Buffer:  merged,
	}
}

// layerName returns a default name for the nth created layer.
func layerName(n int) string {
	return fmt.Sprintf("Layer %d", n)
}
