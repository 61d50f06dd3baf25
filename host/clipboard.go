package host

import "github.com/ionut-t/gridcanvas/core"

// ClipboardText prepares a buffer for system clipboard placement:
// sentinel-free external text with target-platform newlines, unpadded so
// pasting into another editor carries no trailing space walls.
func ClipboardText(b *core.Buffer, newline Newline) string {
	return ExportText(b, newline, false)
}

// NewlineClipboard wraps a core.SystemClipboard so everything written
// through it is normalized to the given separator.
type NewlineClipboard struct {
	Inner   core.SystemClipboard
	Newline Newline
}

func (c NewlineClipboard) Write(text string) error {
	if c.Newline == NewlineCRLF {
		text = crlf(text)
	}
	return c.Inner.Write(text)
}

func (c NewlineClipboard) Read() (string, error) {
	return c.Inner.Read()
}

func crlf(text string) string {
	out := make([]byte, 0, len(text)+len(text)/16)
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' && (i == 0 || text[i-1] != '\r') {
			out = append(out, '\r')
		}
		out = append(out, text[i])
	}
	return string(out)
}
