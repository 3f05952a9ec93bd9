// Package ui implements the interactive board viewer.
package ui

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/drake/insectboard/board"
	"github.com/drake/insectboard/render"
	"github.com/drake/insectboard/ui/style"
)

// Source produces the board to display. It is called on start, on reload and on every tick.
type Source func() (board.Snapshot, board.Size, error)

// Config holds the viewer's collaborators.
type Config struct {
	Title    string
	Source   Source
	Interval time.Duration // Auto-reload period; zero disables it
	Logger   zerolog.Logger

	// Copy writes text to the clipboard. Defaults to atotto/clipboard.
	Copy func(string) error
}

// Model is the Bubble Tea model for the viewer.
type Model struct {
	cfg    Config
	styles style.Styles
	keys   keyMap

	colored *render.Cache
	plain   *render.Renderer

	viewport viewport.Model
	status   StatusBar

	snap board.Snapshot
	size board.Size

	width  int
	height int
	ready  bool
}

// NewModel creates a viewer for cfg.
func NewModel(cfg Config) Model {
	if cfg.Copy == nil {
		cfg.Copy = clipboard.WriteAll
	}
	styles := style.DefaultStyles()
	keys := defaultKeyMap()

	return Model{
		cfg:      cfg,
		styles:   styles,
		keys:     keys,
		colored:  render.NewCache(render.New(render.Options{}), render.DefaultCacheSize),
		plain:    render.New(render.Options{Plain: true}),
		viewport: viewport.New(0, 0),
		status:   NewStatusBar(styles, keys),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.load(), m.tick())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.status.SetWidth(msg.Width)
		m.viewport.Width = msg.Width
		m.viewport.Height = max(1, msg.Height-m.chromeHeight())
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Reload):
			m.status.SetNotice("")
			return m, m.load()
		case key.Matches(msg, m.keys.Copy):
			return m, m.copyBoard()
		}

	case loadedMsg:
		if msg.err != nil {
			m.cfg.Logger.Debug().Err(msg.err).Msg("reload failed")
			m.status.SetError(msg.err)
			return m, nil
		}
		frame, err := m.colored.String(msg.snap, msg.size)
		if err != nil {
			m.status.SetError(err)
			return m, nil
		}
		m.snap, m.size = msg.snap, msg.size
		m.viewport.SetContent(frame)
		m.status.SetBoard(msg.snap, msg.size)
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.status.SetNotice("copy failed: " + msg.err.Error())
		} else {
			m.status.SetNotice("copied")
		}
		return m, nil

	case tickMsg:
		return m, tea.Batch(m.load(), m.tick())
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return ""
	}
	title := m.styles.Title.Render(m.cfg.Title)
	return title + "\n" + m.styles.Board.Render(m.viewport.View()) + "\n" + m.status.View()
}

// chromeHeight is the number of rows used by the title and status bar.
func (m Model) chromeHeight() int {
	return 1 + m.status.Height()
}

func (m Model) load() tea.Cmd {
	src := m.cfg.Source
	return func() tea.Msg {
		snap, size, err := src()
		return loadedMsg{snap: snap, size: size, err: err}
	}
}

func (m Model) tick() tea.Cmd {
	if m.cfg.Interval <= 0 {
		return nil
	}
	return tea.Tick(m.cfg.Interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// copyBoard puts the escape-free board on the clipboard.
func (m Model) copyBoard() tea.Cmd {
	if !m.size.Valid() {
		return nil
	}
	frame, err := m.plain.String(m.snap, m.size)
	copyFn := m.cfg.Copy
	return func() tea.Msg {
		if err != nil {
			return copiedMsg{err: err}
		}
		return copiedMsg{err: copyFn(frame)}
	}
}

// Run starts the viewer in the alternate screen and blocks until it exits.
func Run(cfg Config) error {
	program := tea.NewProgram(
		NewModel(cfg),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := program.Run()
	return err
}
