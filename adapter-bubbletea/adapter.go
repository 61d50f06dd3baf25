// Package adapter_bubbletea binds a core.Store to a bubbletea program: it
// translates terminal mouse and key messages into pointer events and tool
// commands, and renders the composited canvas with a status line. The core
// knows nothing about bubbletea; everything here goes through the Store
// interface and its signal channel.
package adapter_bubbletea

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	canvas "github.com/ionut-t/gridcanvas/core"
)

type Theme struct {
	StatusLineStyle lipgloss.Style
	ToolStyle       lipgloss.Style
	MessageStyle    lipgloss.Style
	ErrorStyle      lipgloss.Style
	SelectionStyle  lipgloss.Style
	CursorStyle     lipgloss.Style
}

var DefaultTheme = Theme{
	StatusLineStyle: lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("255")),
	ToolStyle:       lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("255")),
	MessageStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	ErrorStyle:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	SelectionStyle:  lipgloss.NewStyle().Background(lipgloss.Color("237")),
	CursorStyle:     lipgloss.NewStyle().Reverse(true),
}

type signalMsg struct {
	signal canvas.Signal
}

type atottoClipboard struct{}

func (c *atottoClipboard) Write(text string) error {
	return clipboard.WriteAll(text)
}

func (c *atottoClipboard) Read() (string, error) {
	return clipboard.ReadAll()
}

// Model is the bubbletea component wrapping a canvas store.
type Model struct {
	store    canvas.Store
	viewport viewport.Model
	theme    Theme
	width    int
	height   int
	message  string
	isError  bool
	pointer  canvas.Position
	dragging bool

	// OnSave persists the current canvas; the embedding program wires it
	// to the host package. A nil OnSave disables ctrl+s.
	OnSave func() error
}

// New creates a model with a fresh store of the given canvas size.
func New(canvasWidth, canvasHeight int) Model {
	store := canvas.NewStore(canvasWidth, canvasHeight, &atottoClipboard{})
	vp := viewport.New(80, 24)
	return Model{
		store:    store,
		viewport: vp,
		theme:    DefaultTheme,
	}
}

// Store exposes the underlying store so the embedding program can load
// documents or adjust layers.
func (m *Model) Store() canvas.Store {
	return m.store
}

// WithTheme allows setting a custom theme for the canvas view.
func (m *Model) WithTheme(theme Theme) {
	m.theme = theme
}

func (m Model) Init() tea.Cmd {
	return m.waitForSignal()
}

// waitForSignal forwards the store's next signal into the bubbletea loop.
func (m Model) waitForSignal() tea.Cmd {
	ch := m.store.GetUpdateSignalChan()
	return func() tea.Msg {
		return signalMsg{<-ch}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 1
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case signalMsg:
		m.absorbSignal(msg.signal)
		return m, m.waitForSignal()
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) absorbSignal(signal canvas.Signal) {
	switch sig := signal.(type) {
	case canvas.MessageSignal:
		_, m.message = sig.Value()
		m.isError = false
	case canvas.ErrorSignal:
		_, err := sig.Value()
		m.message = err.Error()
		m.isError = true
	}
}

// cellAt maps a terminal coordinate to a buffer cell, accounting for the
// viewport scroll offset.
func (m Model) cellAt(x, y int) canvas.Position {
	return canvas.Position{Row: y + m.viewport.YOffset, Col: x}
}

func (m Model) handleMouse(msg tea.MouseMsg) Model {
	at := m.cellAt(msg.X, msg.Y)
	m.pointer = at
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.dragging = true
			m.store.HandlePointer(canvas.PointerEvent{Kind: canvas.PointerDown, At: at})
		}
	case tea.MouseActionMotion:
		if m.dragging {
			m.store.HandlePointer(canvas.PointerEvent{Kind: canvas.PointerMove, At: at})
		}
	case tea.MouseActionRelease:
		if m.dragging {
			m.dragging = false
			m.store.HandlePointer(canvas.PointerEvent{Kind: canvas.PointerUp, At: at})
		}
	}
	return m
}

var toolKeys = map[string]canvas.ToolName{
	"s": canvas.ToolSelect,
	"r": canvas.ToolRect,
	"l": canvas.ToolLine,
	"a": canvas.ToolArrow,
	"f": canvas.ToolFree,
	"e": canvas.ToolErase,
	"t": canvas.ToolText,
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	// the text tool consumes plain runes before any shortcut
	if m.store.State().Tool == canvas.ToolText {
		if key, ok := textKey(msg); ok {
			m.store.HandleKey(key)
			return m, nil
		}
	}

	switch msg.String() {
	case "ctrl+c", "q":
		m.store.Quit()
		return m, tea.Quit
	case "esc":
		m.store.HandleKey(canvas.KeyEvent{Key: canvas.KeyEscape})
		return m, nil
	case "u":
		m.store.Undo()
		return m, nil
	case "ctrl+r":
		m.store.Redo()
		return m, nil
	case "y":
		m.store.CopySelection(m.pointer)
		return m, nil
	case "x":
		m.store.CutSelection(m.pointer)
		return m, nil
	case "d":
		m.store.DeleteSelection()
		return m, nil
	case "p":
		m.store.Paste(m.pointer)
		return m, nil
	case "U":
		if m.store.State().Style == canvas.StyleASCII {
			m.store.SetStyle(canvas.StyleUnicode)
		} else {
			m.store.SetStyle(canvas.StyleASCII)
		}
		return m, nil
	case "ctrl+s":
		if m.OnSave != nil {
			if err := m.OnSave(); err != nil {
				m.message = err.Error()
				m.isError = true
			} else {
				m.message = canvas.FileSavedMessage
				m.isError = false
			}
		}
		return m, nil
	}

	if tool, ok := toolKeys[msg.String()]; ok {
		m.store.SetTool(tool)
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// textKey translates a bubbletea key message for the text tool.
func textKey(msg tea.KeyMsg) (canvas.KeyEvent, bool) {
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) == 1 && !msg.Alt {
			return canvas.KeyEvent{Rune: msg.Runes[0]}, true
		}
	case tea.KeySpace:
		return canvas.KeyEvent{Rune: ' '}, true
	case tea.KeyEnter:
		return canvas.KeyEvent{Key: canvas.KeyEnter}, true
	case tea.KeyBackspace:
		return canvas.KeyEvent{Key: canvas.KeyBackspace}, true
	case tea.KeyUp:
		return canvas.KeyEvent{Key: canvas.KeyUp}, true
	case tea.KeyDown:
		return canvas.KeyEvent{Key: canvas.KeyDown}, true
	case tea.KeyLeft:
		return canvas.KeyEvent{Key: canvas.KeyLeft}, true
	case tea.KeyRight:
		return canvas.KeyEvent{Key: canvas.KeyRight}, true
	}
	return canvas.KeyEvent{}, false
}

func (m Model) statusLine() string {
	state := m.store.State()
	w, h := m.store.Size()
	tool := m.theme.ToolStyle.Render(fmt.Sprintf(" %s ", strings.ToUpper(string(state.Tool))))
	info := fmt.Sprintf(" %dx%d  %s ", w, h, state.Style)
	msg := m.message
	if msg != "" {
		style := m.theme.MessageStyle
		if m.isError {
			style = m.theme.ErrorStyle
		}
		msg = style.Render(msg)
	}
	line := tool + m.theme.StatusLineStyle.Render(info) + " " + msg
	return m.theme.StatusLineStyle.Width(max(m.width, lipgloss.Width(line))).Render(line)
}

func (m Model) View() string {
	preview := m.store.Preview()
	lines := strings.Split(preview.ExternalText(true), "\n")

	state := m.store.State()
	if state.HasSelection {
		for i := state.Selection.Top; i <= state.Selection.Bottom && i < len(lines); i++ {
			if i >= 0 {
				lines[i] = m.theme.SelectionStyle.Render(lines[i])
			}
		}
	}

	m.viewport.SetContent(strings.Join(lines, "\n"))
	return m.viewport.View() + "\n" + m.statusLine()
}
