package host

import (
	"testing"

	"github.com/ionut-t/gridcanvas/core"
	"github.com/stretchr/testify/assert"
)

func TestValidateSavePath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"plain name", "diagram.txt", false},
		{"nested path", "docs/output/diagram.txt", false},
		{"no extension", "diagram", false},
		{"dot in middle", "diagram.v2.txt", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"colon", "dia:gram.txt", true},
		{"question mark", "what?.txt", true},
		{"pipe", "a|b.txt", true},
		{"angle brackets", "<diagram>.txt", true},
		{"double quote", `say".txt`, true},
		{"control character", "dia\tgram.txt", true},
		{"trailing dot", "diagram.", true},
		{"trailing space", "diagram ", true},
		{"reserved CON", "CON", true},
		{"reserved con lowercase", "con.txt", true},
		{"reserved com port", "COM3.log", true},
		{"reserved LPT", "lpt9", true},
		{"reserved stem only applies before first dot", "connected.txt", false},
		{"directory components may contain reserved names", "CON/diagram.txt", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSavePath(tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, core.ErrInvalidPath)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
