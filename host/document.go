// Package host implements the boundary between the engine and the
// surrounding platform: file reading and writing, save-path validation,
// persisted settings and system-clipboard text preparation. It is the only
// place real I/O happens; a failure here never corrupts the in-memory
// session.
package host

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/ionut-t/gridcanvas/core"
)

// Newline is a document's line separator style.
type Newline string

const (
	NewlineLF   Newline = "\n"
	NewlineCRLF Newline = "\r\n"
)

// PlatformNewline is the default separator when no setting says otherwise.
func PlatformNewline() Newline {
	if runtime.GOOS == "windows" {
		return NewlineCRLF
	}
	return NewlineLF
}

// DetectNewline classifies text as CRLF if any \r\n occurs, LF otherwise.
func DetectNewline(text string) Newline {
	if strings.Contains(text, "\r\n") {
		return NewlineCRLF
	}
	return NewlineLF
}

// Document is one opened file: its buffer plus the newline style it
// arrived with, so saving preserves what the user had.
type Document struct {
	Path    string
	Buffer  *core.Buffer
	Newline Newline
}

// ReadDocument loads a UTF-8 text file into an auto-sized buffer. A
// leading BOM is stripped and the newline style detected before the buffer
// is built.
func ReadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrReadFile, err)
	}
	text := strings.TrimPrefix(string(data), "\uFEFF")
	return &Document{
		Path:    path,
		Buffer:  core.AutoSizeFromExternalText(text),
		Newline: DetectNewline(text),
	}, nil
}

// ExportText renders a buffer for the filesystem or the system clipboard:
// sentinel-free external text, NUL bytes stripped, rows optionally
// right-padded to the buffer width (required for lossless round-trip of
// cell-aligned diagrams), lines joined with the requested separator.
func ExportText(b *core.Buffer, newline Newline, padRight bool) string {
	text := b.ExternalText(padRight)
	text = strings.ReplaceAll(text, "\x00", "")
	if newline == NewlineCRLF {
		text = strings.ReplaceAll(text, "\n", "\r\n")
	}
	return text
}

// WriteDocument validates the path, then writes the buffer. An invalid
// path is reported without touching the filesystem, distinctly from a
// write failure, so the user can correct the filename instead of retrying.
func WriteDocument(path string, b *core.Buffer, newline Newline, padRight bool) error {
	if err := ValidateSavePath(path); err != nil {
		return err
	}
	contents := ExportText(b, newline, padRight)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		return fmt.Errorf("%w: %v", core.ErrWriteFile, err)
	}
	return nil
}
