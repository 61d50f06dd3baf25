package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	adapter "github.com/ionut-t/gridcanvas/adapter-bubbletea"
	"github.com/ionut-t/gridcanvas/host"
)

type app struct {
	canvas adapter.Model
}

func (a app) Init() tea.Cmd {
	return a.canvas.Init()
}

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.canvas, cmd = a.canvas.Update(msg)
	return a, cmd
}

func (a app) View() string {
	return a.canvas.View()
}

func settingsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "gridcanvas.toml"
	}
	return filepath.Join(dir, "gridcanvas", "settings.toml")
}

func main() {
	settings := host.LoadSettings(settingsPath())

	m := adapter.New(80, 24)

	path := ""
	if len(os.Args) > 1 {
		path = os.Args[1]
	} else if settings.LastFilePath != "" {
		path = settings.LastFilePath
	}
	newline := settings.SavedNewline()
	if path != "" {
		if doc, err := host.ReadDocument(path); err == nil {
			m.Store().LoadExternalText(doc.Buffer.ExternalText(false))
			settings.TouchRecent(path)
			newline = doc.Newline
		}
	}

	if path != "" {
		target := path
		m.OnSave = func() error {
			return host.WriteDocument(target, m.Store().Composite(), newline, settings.PadOnSave)
		}
	}

	p := tea.NewProgram(app{canvas: m}, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	_ = host.SaveSettings(settingsPath(), settings)
}
