package core

import (
	"fmt"
	"strings"
)

// PointerKind distinguishes the phases of a pointer gesture.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
	PointerCancel
)

// PointerEvent is one pointer sample in buffer-cell coordinates. The
// adapter translates whatever its input layer produces (mouse messages,
// touch events) into these.
type PointerEvent struct {
	Kind PointerKind
	At   Position
}

// KeyCode represents the non-character keys the text tool cares about.
type KeyCode int

const (
	KeyUnknown KeyCode = iota
	KeyEnter
	KeyBackspace
	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// KeyEvent represents a keyboard input event routed to the active tool.
type KeyEvent struct {
	Rune rune
	Key  KeyCode
}

// String returns a string representation of a key event.
func (k KeyEvent) String() string {
	var parts []string
	if k.Rune != 0 {
		parts = append(parts, string(k.Rune))
	} else {
		switch k.Key {
		case KeyEnter:
			parts = append(parts, "Enter")
		case KeyBackspace:
			parts = append(parts, "Backspace")
		case KeyEscape:
			parts = append(parts, "Escape")
		case KeyUp:
			parts = append(parts, "Up")
		case KeyDown:
			parts = append(parts, "Down")
		case KeyLeft:
			parts = append(parts, "Left")
		case KeyRight:
			parts = append(parts, "Right")
		case KeyUnknown:
			parts = append(parts, "Unknown")
		default:
			parts = append(parts, fmt.Sprintf("SpecialKey(%d)", k.Key))
		}
	}
	return strings.Join(parts, "+")
}
