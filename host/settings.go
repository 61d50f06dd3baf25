package host

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const maxRecentFiles = 10

// Settings is everything the application persists between runs. Absent or
// malformed values fall back to the defaults; a settings file is never
// required.
type Settings struct {
	Language     string   `toml:"language"`
	Theme        string   `toml:"theme"`
	LastFilePath string   `toml:"last_file_path"`
	Newline      string   `toml:"newline"` // "lf" or "crlf"
	PadOnSave    bool     `toml:"pad_on_save"`
	RecentFiles  []string `toml:"recent_files"`
	PinnedFiles  []string `toml:"pinned_files"`
}

// DefaultSettings returns the documented defaults. The newline default is
// platform-detected.
func DefaultSettings() Settings {
	newline := "lf"
	if PlatformNewline() == NewlineCRLF {
		newline = "crlf"
	}
	return Settings{
		Language:  "en",
		Theme:     "dark",
		Newline:   newline,
		PadOnSave: true,
	}
}

// SavedNewline maps the persisted newline preference to a separator.
func (s Settings) SavedNewline() Newline {
	switch s.Newline {
	case "crlf":
		return NewlineCRLF
	case "lf":
		return NewlineLF
	default:
		return PlatformNewline()
	}
}

// sanitize repairs out-of-range values after a load.
func (s *Settings) sanitize() {
	defaults := DefaultSettings()
	if s.Language == "" {
		s.Language = defaults.Language
	}
	if s.Theme == "" {
		s.Theme = defaults.Theme
	}
	if s.Newline != "lf" && s.Newline != "crlf" {
		s.Newline = defaults.Newline
	}
	if len(s.RecentFiles) > maxRecentFiles {
		s.RecentFiles = s.RecentFiles[:maxRecentFiles]
	}
}

// TouchRecent moves path to the front of the recent list, deduplicating
// and capping it. Pinned entries live in their own list and are never
// evicted from it here.
func (s *Settings) TouchRecent(path string) {
	recent := make([]string, 0, maxRecentFiles)
	recent = append(recent, path)
	for _, p := range s.RecentFiles {
		if p == path {
			continue
		}
		recent = append(recent, p)
		if len(recent) == maxRecentFiles {
			break
		}
	}
	s.RecentFiles = recent
	s.LastFilePath = path
}

// LoadSettings reads settings from path. A missing or malformed file
// yields the defaults; loading never fails.
func LoadSettings(path string) Settings {
	s := DefaultSettings()
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return DefaultSettings()
	}
	s.sanitize()
	return s
}

// SaveSettings writes settings to path, creating parent directories as
// needed.
func SaveSettings(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(s)
}
