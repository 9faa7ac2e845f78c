package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/five82/chuckle/internal/joke"
	"github.com/five82/chuckle/internal/prefs"
	"github.com/five82/chuckle/internal/state"
)

// Controller is the presentation surface of the state controller.
type Controller interface {
	State() state.UIState
	Favorites() joke.Favorites
	Subscribe() (<-chan state.UIState, func())
	RequestNewJoke()
	SaveFavorite()
}

// Options configures the UI.
type Options struct {
	Controller Controller
	ThemeName  string
	PrefsPath  string

	// PrefsChanges delivers preferences written by another process.
	PrefsChanges <-chan prefs.Prefs

	Logger zerolog.Logger
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	controller   Controller
	prefsPath    string
	prefsChanges <-chan prefs.Prefs
	logger       zerolog.Logger

	// UI state
	theme         Theme
	width         int
	height        int
	ready         bool
	showFavorites bool
	showHelp      bool

	// Data state
	current   state.UIState
	favorites joke.Favorites
	stateCh   <-chan state.UIState
	unsub     func()

	// Components
	spinner  spinner.Model
	viewport viewport.Model
	keys     keyMap
	help     help.Model
}

// New creates a new Bubble Tea model and subscribes it to the controller.
func New(opts Options) Model {
	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.Default().Theme
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	theme := GetTheme(themeName)
	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Category))

	m := Model{
		controller:   opts.Controller,
		prefsPath:    prefsPath,
		prefsChanges: opts.PrefsChanges,
		logger:       opts.Logger.With().Str("component", "ui").Logger(),
		theme:        theme,
		current:      state.Loading{},
		spinner:      sp,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		unsub:        func() {},
	}
	if m.controller != nil {
		m.current = m.controller.State()
		m.favorites = m.controller.Favorites()
		m.stateCh, m.unsub = m.controller.Subscribe()
	}
	m.syncKeys()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		waitForState(m.stateCh),
		waitForPrefs(m.prefsChanges),
		m.spinner.Tick,
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(m.contentWidth(), m.contentHeight())
			m.syncKeys()
		}
		m.ready = true
		m.help.Width = msg.Width
		m.updateViewport()
		return m, nil

	case stateMsg:
		m.current = msg.state
		if s, ok := msg.state.(state.Success); ok {
			m.favorites = s.Favorites
		}
		m.syncKeys()
		m.updateViewport()
		m.logger.Debug().Str("state", state.Name(msg.state)).Msg("state received")
		return m, waitForState(m.stateCh)

	case stateClosedMsg:
		// The controller was disposed underneath us.
		return m, tea.Quit

	case prefsMsg:
		if msg.prefs.Theme != "" && msg.prefs.Theme != m.theme.Name {
			m.setTheme(GetTheme(msg.prefs.Theme))
			m.logger.Info().Str("theme", m.theme.Name).Msg("theme reloaded")
		}
		return m, waitForPrefs(m.prefsChanges)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	// Show help overlay if active
	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes help
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.unsub()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.setTheme(GetTheme(NextTheme(m.theme.Name)))
		if m.prefsPath != "" {
			if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
				m.logger.Warn().Err(err).Str("path", m.prefsPath).Msg("save prefs failed")
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Favorites):
		m.showFavorites = true
		m.syncKeys()
		m.updateViewport()
		m.viewport.GotoTop()
		return m, nil

	case key.Matches(msg, m.keys.Back):
		m.showFavorites = false
		m.syncKeys()
		return m, nil
	}

	if m.showFavorites {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.NewJoke):
		if m.controller != nil {
			m.controller.RequestNewJoke()
		}
	case key.Matches(msg, m.keys.Save):
		if m.controller != nil {
			m.controller.SaveFavorite()
		}
	}
	return m, nil
}

// syncKeys enables only the bindings that make sense for the current view.
func (m *Model) syncKeys() {
	success, isSuccess := m.current.(state.Success)

	m.keys.NewJoke.SetEnabled(!m.showFavorites)
	m.keys.Save.SetEnabled(!m.showFavorites && isSuccess && !success.IsFavorite())
	m.keys.Favorites.SetEnabled(!m.showFavorites)
	m.keys.Back.SetEnabled(m.showFavorites)
	for _, b := range []*key.Binding{&m.keys.Up, &m.keys.Down, &m.keys.PageUp, &m.keys.PageDown} {
		b.SetEnabled(m.showFavorites)
	}
	m.viewport.KeyMap.Up = m.keys.Up
	m.viewport.KeyMap.Down = m.keys.Down
	m.viewport.KeyMap.PageUp = m.keys.PageUp
	m.viewport.KeyMap.PageDown = m.keys.PageDown
}

func (m *Model) setTheme(t Theme) {
	m.theme = t
	m.spinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Category))
	m.updateViewport()
}

func (m Model) contentWidth() int {
	return max(m.width, 1)
}

func (m Model) contentHeight() int {
	return max(m.height-chromeHeight, 1)
}

// updateViewport refreshes the favorites list content and size.
func (m *Model) updateViewport() {
	if !m.ready {
		return
	}
	m.viewport.Width = m.contentWidth()
	m.viewport.Height = m.contentHeight()
	m.viewport.SetContent(m.renderFavoritesList())
}

// Messages

type stateMsg struct{ state state.UIState }

type stateClosedMsg struct{}

type prefsMsg struct{ prefs prefs.Prefs }

// Commands

// waitForState blocks on the subscription and is re-issued after every
// delivery.
func waitForState(ch <-chan state.UIState) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		s, ok := <-ch
		if !ok {
			return stateClosedMsg{}
		}
		return stateMsg{state: s}
	}
}

func waitForPrefs(ch <-chan prefs.Prefs) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		p, ok := <-ch
		if !ok {
			return nil
		}
		return prefsMsg{prefs: p}
	}
}

// Run starts the Bubble Tea program and blocks until the user quits.
func Run(opts Options) error {
	m := New(opts)
	defer m.unsub()
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
