package host

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ionut-t/gridcanvas/core"
)

// Filename rules are validated against the strictest common target
// (Windows-like) regardless of the current platform, so a diagram saved on
// one machine stays portable to the others.

var reservedDeviceNames = map[string]struct{}{
	"CON": {}, "PRN": {}, "AUX": {}, "NUL": {},
	"COM1": {}, "COM2": {}, "COM3": {}, "COM4": {}, "COM5": {},
	"COM6": {}, "COM7": {}, "COM8": {}, "COM9": {},
	"LPT1": {}, "LPT2": {}, "LPT3": {}, "LPT4": {}, "LPT5": {},
	"LPT6": {}, "LPT7": {}, "LPT8": {}, "LPT9": {},
}

const disallowedNameChars = `<>:"|?*`

// ValidateSavePath checks a chosen save path against platform filename
// rules before any write is attempted. Violations are reported as
// core.ErrInvalidPath so callers can distinguish a correctable filename
// from a genuine I/O failure.
func ValidateSavePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("%w: empty path", core.ErrInvalidPath)
	}
	name := filepath.Base(path)
	if name == "." || name == string(filepath.Separator) {
		return fmt.Errorf("%w: %q is not a file name", core.ErrInvalidPath, path)
	}
	if strings.ContainsAny(name, disallowedNameChars) {
		return fmt.Errorf("%w: %q contains a disallowed character", core.ErrInvalidPath, name)
	}
	for _, r := range name {
		if r < 0x20 {
			return fmt.Errorf("%w: %q contains a control character", core.ErrInvalidPath, name)
		}
	}
	if strings.HasSuffix(name, ".") || strings.HasSuffix(name, " ") {
		return fmt.Errorf("%w: %q ends with a dot or space", core.ErrInvalidPath, name)
	}
	stem := name
	if i := strings.Index(name, "."); i >= 0 {
		stem = name[:i]
	}
	if _, ok := reservedDeviceNames[strings.ToUpper(stem)]; ok {
		return fmt.Errorf("%w: %q is a reserved device name", core.ErrInvalidPath, name)
	}
	return nil
}
