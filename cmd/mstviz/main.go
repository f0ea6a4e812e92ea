package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dd0wney/mstviz/pkg/config"
	"github.com/dd0wney/mstviz/pkg/logging"
	"github.com/dd0wney/mstviz/pkg/metrics"
	"github.com/dd0wney/mstviz/pkg/presets"
	"github.com/dd0wney/mstviz/pkg/session"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF00FF")).
			MarginLeft(2).
			MarginTop(1)

	boxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FFFF")).
			Padding(1, 2).
			MarginRight(2)

	stepBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("#FFFF00")).
			Padding(1, 2)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FF00")).
			Bold(true)

	highlightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#FF00FF")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginTop(1).
			MarginLeft(2)
)

type view int

const (
	editView view = iota
	traceView
)

type keyMap struct {
	Run       key.Binding
	Undo      key.Binding
	Redo      key.Binding
	Next      key.Binding
	Prev      key.Binding
	Reset     key.Binding
	PlayPause key.Binding
	Slow      key.Binding
	Normal    key.Binding
	Fast      key.Binding
	Back      key.Binding
	Quit      key.Binding
}

var keys = keyMap{
	Run: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "run algorithm"),
	),
	Undo: key.NewBinding(
		key.WithKeys("ctrl+z"),
		key.WithHelp("ctrl+z", "undo"),
	),
	Redo: key.NewBinding(
		key.WithKeys("ctrl+y"),
		key.WithHelp("ctrl+y", "redo"),
	),
	Next: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next step"),
	),
	Prev: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "prev step"),
	),
	Reset: key.NewBinding(
		key.WithKeys("home", "r"),
		key.WithHelp("r", "first step"),
	),
	PlayPause: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "play/pause"),
	),
	Slow: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "slow"),
	),
	Normal: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "normal"),
	),
	Fast: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "fast"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back to editing"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Run, k.Undo, k.Redo, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Run, k.Undo, k.Redo},
		{k.Next, k.Prev, k.Reset, k.PlayPause},
		{k.Slow, k.Normal, k.Fast, k.Back, k.Quit},
	}
}

type model struct {
	sess         *session.Session
	cfg          *config.Config
	currentView  view
	commandInput textinput.Model
	help         help.Model
	keys         keyMap
	tier         string
	width        int
	height       int
	message      string
	messageErr   bool
}

// tickMsg drives screen refresh while the auto-advance player runs.
type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func initialModel(sess *session.Session, cfg *config.Config) model {
	ti := textinput.New()
	ti.Placeholder = "vertex | edge A B 3 | preset triangle | run"
	ti.CharLimit = 120
	ti.Width = 60
	ti.Focus()

	return model{
		sess:         sess,
		cfg:          cfg,
		currentView:  editView,
		commandInput: ti,
		help:         help.New(),
		keys:         keys,
		tier:         "normal",
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tickMsg:
		if !m.sess.ViewingTrace() {
			m.currentView = editView
			return m, nil
		}
		if m.sess.Playing() {
			return m, tickCmd()
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.sess.Pause()
			return m, tea.Quit

		case key.Matches(msg, m.keys.Run):
			if _, ok := m.sess.Run(); ok {
				m.currentView = traceView
				m.message = ""
			} else {
				m.message = "cannot run: fix the validation errors first"
				m.messageErr = true
			}
			return m, nil

		case key.Matches(msg, m.keys.Undo):
			if m.sess.Undo() {
				m.message = "undone"
				m.messageErr = false
			}
			return m, nil

		case key.Matches(msg, m.keys.Redo):
			if m.sess.Redo() {
				m.message = "redone"
				m.messageErr = false
			}
			return m, nil
		}

		if m.currentView == traceView {
			return m.updateTraceKeys(msg)
		}

		if msg.Type == tea.KeyEnter {
			m.executeCommand(m.commandInput.Value())
			m.commandInput.SetValue("")
			if m.sess.ViewingTrace() {
				m.currentView = traceView
			}
			return m, nil
		}
	}

	if m.currentView == editView {
		m.commandInput, cmd = m.commandInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m model) updateTraceKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Next):
		m.sess.Pause()
		m.sess.Next()

	case key.Matches(msg, m.keys.Prev):
		m.sess.Pause()
		m.sess.Previous()

	case key.Matches(msg, m.keys.Reset):
		m.sess.Reset()

	case key.Matches(msg, m.keys.PlayPause):
		if m.sess.Playing() {
			m.sess.Pause()
			return m, nil
		}
		m.sess.Play(m.tier)
		return m, tickCmd()

	case key.Matches(msg, m.keys.Slow):
		m.tier = "slow"
	case key.Matches(msg, m.keys.Normal):
		m.tier = "normal"
	case key.Matches(msg, m.keys.Fast):
		m.tier = "fast"

	case key.Matches(msg, m.keys.Back):
		m.sess.Pause()
		m.currentView = editView
	}
	return m, nil
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	presetName := flag.String("preset", "", "start from a named example graph")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}

	logger := logging.NewJSONLogger(os.Stderr, logging.ParseLevel(cfg.LogLevel))
	sess := session.New(cfg, logger, metrics.DefaultRegistry())

	if *presetName != "" {
		p, err := presets.Load(*presetName)
		if err != nil {
			log.Fatalf("Failed to load preset: %v (available: %v)", err, presets.Names())
		}
		applyPreset(sess, cfg, p)
	}

	p := tea.NewProgram(initialModel(sess, cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("TUI error: %v", err)
	}
}
