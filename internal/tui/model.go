package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/analysis-viz/internal/routes"
	"github.com/Veraticus/analysis-viz/internal/tui/components"
	"github.com/Veraticus/analysis-viz/internal/tui/themes"
)

// State represents the current state of the TUI.
type State int

const (
	// StateIndex shows the list of diagrams.
	StateIndex State = iota
	// StateWidget shows one diagram.
	StateWidget
)

// routeItem adapts a route to the list component.
type routeItem struct {
	route routes.Route
}

func (i routeItem) Title() string       { return i.route.Title }
func (i routeItem) Description() string { return i.route.Description }
func (i routeItem) FilterValue() string { return i.route.Title + " " + i.route.ID }

// Model holds the main TUI state.
type Model struct {
	theme     themes.Theme
	lastError error
	widget    components.Widget
	config    Config
	keymap    KeyMap
	index     list.Model
	help      help.Model
	current   string
	phase     int
	width     int
	height    int
	state     State
	direct    bool
	quitting  bool
}

// newModel creates a model showing the index, or the route when id is set.
func newModel(cfg Config, id string) (Model, error) {
	items := make([]list.Item, 0, len(routes.All()))
	for _, r := range routes.All() {
		items = append(items, routeItem{route: r})
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(cfg.Theme.Primary).
		BorderForeground(cfg.Theme.Primary)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(cfg.Theme.Secondary).
		BorderForeground(cfg.Theme.Primary)

	index := list.New(items, delegate, cfg.Width, max(cfg.Height-2, 1))
	index.Title = "Real Analysis Visualizations"
	index.Styles.Title = cfg.Theme.Selected.Padding(0, 1)
	index.SetShowStatusBar(false)

	m := Model{
		theme:  cfg.Theme,
		config: cfg,
		keymap: DefaultKeyMap(),
		index:  index,
		help:   help.New(),
		width:  cfg.Width,
		height: cfg.Height,
		state:  StateIndex,
	}
	m.help.ShowAll = cfg.ShowHelp

	if id == "" {
		return m, nil
	}
	if err := m.open(id); err != nil {
		return Model{}, err
	}
	m.direct = true
	return m, nil
}

// open replaces the current widget with the one for id.
func (m *Model) open(id string) error {
	w, err := NewWidget(id, m.config.env(m.width, m.height))
	if err != nil {
		return err
	}
	m.widget = w
	m.current = id
	m.state = StateWidget
	m.lastError = nil
	slog.Debug("Opened diagram", "route", id)
	return nil
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnterAltScreen, m.tick()}
	if m.widget != nil {
		cmds = append(cmds, m.widget.Init())
	}
	return tea.Batch(cmds...)
}

// tick schedules the next animation frame. Nothing ticks when animations
// are off.
func (m Model) tick() tea.Cmd {
	if !m.config.EnableAnimations || m.config.FPS <= 0 {
		return nil
	}
	return tea.Tick(time.Second/time.Duration(m.config.FPS), func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if handled, cmd := m.handleGlobalKeys(msg); handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.handleResize()
		return m, nil

	case tickMsg:
		m.phase++
		var cmd tea.Cmd
		if m.widget != nil {
			m.widget, cmd = m.updateWidget(components.TickMsg{Phase: m.phase})
		}
		return m, tea.Batch(cmd, m.tick())

	case openRouteMsg:
		if err := m.open(msg.id); err != nil {
			return m, func() tea.Msg { return errorMsg{err: err} }
		}
		return m, m.widget.Init()

	case errorMsg:
		m.lastError = msg.err
		slog.Debug("TUI error", "error", msg.err)
		return m, nil
	}

	switch m.state {
	case StateIndex:
		if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, m.keymap.Open) && m.index.FilterState() != list.Filtering {
			if item, ok := m.index.SelectedItem().(routeItem); ok {
				id := item.route.ID
				return m, func() tea.Msg { return openRouteMsg{id: id} }
			}
		}
		var cmd tea.Cmd
		m.index, cmd = m.index.Update(msg)
		return m, cmd

	default:
		var cmd tea.Cmd
		m.widget, cmd = m.updateWidget(msg)
		return m, cmd
	}
}

func (m Model) updateWidget(msg tea.Msg) (components.Widget, tea.Cmd) {
	next, cmd := m.widget.Update(msg)
	if w, ok := next.(components.Widget); ok {
		return w, cmd
	}
	return m.widget, cmd
}

// handleGlobalKeys handles keys that work in any state. It reports whether
// the key was consumed.
func (m *Model) handleGlobalKeys(msg tea.KeyMsg) (bool, tea.Cmd) {
	filtering := m.state == StateIndex && m.index.FilterState() == list.Filtering
	switch {
	case key.Matches(msg, m.keymap.ForceQuit):
		m.quitting = true
		return true, tea.Quit
	case filtering:
		return false, nil
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return true, tea.Quit
	case key.Matches(msg, m.keymap.Help) && m.state == StateWidget:
		m.help.ShowAll = !m.help.ShowAll
		return true, nil
	case key.Matches(msg, m.keymap.ClearScreen):
		return true, tea.ClearScreen
	case key.Matches(msg, m.keymap.Back) && m.state == StateWidget:
		if m.direct {
			m.quitting = true
			return true, tea.Quit
		}
		m.state = StateIndex
		m.widget = nil
		m.current = ""
		return true, nil
	}
	return false, nil
}

// handleResize adjusts component sizes when the terminal resizes.
func (m *Model) handleResize() {
	m.index.SetSize(m.width, max(m.height-2, 1))
	m.help.Width = m.width
	if m.widget != nil {
		m.widget, _ = m.updateWidget(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	}
}

// State returns the current state.
func (m Model) State() State {
	return m.state
}

// Current returns the id of the open diagram, empty on the index.
func (m Model) Current() string {
	return m.current
}
