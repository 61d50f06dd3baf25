package host

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, "en", s.Language)
	assert.Equal(t, "dark", s.Theme)
	assert.True(t, s.PadOnSave)
	assert.Contains(t, []string{"lf", "crlf"}, s.Newline)
}

func TestSavedNewline(t *testing.T) {
	assert.Equal(t, NewlineLF, Settings{Newline: "lf"}.SavedNewline())
	assert.Equal(t, NewlineCRLF, Settings{Newline: "crlf"}.SavedNewline())
	assert.Equal(t, PlatformNewline(), Settings{Newline: "bogus"}.SavedNewline())
}

func TestLoadSettingsMissingFile(t *testing.T) {
	s := LoadSettings(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Equal(t, DefaultSettings(), s)
}

func TestLoadSettingsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte("{{{not toml"), 0o644))

	s := LoadSettings(path)
	assert.Equal(t, DefaultSettings(), s)
}

func TestLoadSettingsSanitizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte("newline = \"mixed\"\ntheme = \"\"\n"), 0o644))

	s := LoadSettings(path)
	assert.Equal(t, DefaultSettings().Newline, s.Newline)
	assert.Equal(t, "dark", s.Theme)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "settings.toml")

	want := DefaultSettings()
	want.Theme = "light"
	want.LastFilePath = "/tmp/x.txt"
	want.RecentFiles = []string{"/tmp/x.txt", "/tmp/y.txt"}
	want.PinnedFiles = []string{"/tmp/pin.txt"}

	require.NoError(t, SaveSettings(path, want))
	got := LoadSettings(path)
	assert.Equal(t, want, got)
}

func TestTouchRecent(t *testing.T) {
	s := DefaultSettings()
	s.RecentFiles = []string{"b", "c"}

	s.TouchRecent("a")
	assert.Equal(t, []string{"a", "b", "c"}, s.RecentFiles)
	assert.Equal(t, "a", s.LastFilePath)

	// touching an existing entry moves it to the front without duplicating
	s.TouchRecent("c")
	assert.Equal(t, []string{"c", "a", "b"}, s.RecentFiles)
}

func TestTouchRecentCap(t *testing.T) {
	s := DefaultSettings()
	for i := 0; i < maxRecentFiles+3; i++ {
		s.TouchRecent(fmt.Sprintf("file-%d", i))
	}
	assert.Len(t, s.RecentFiles, maxRecentFiles)
	assert.Equal(t, fmt.Sprintf("file-%d", maxRecentFiles+2), s.RecentFiles[0])
}
