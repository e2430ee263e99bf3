package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/AvengeMedia/themekit/internal/registry"
)

type themesReloadedMsg struct{}

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Enter  key.Binding
	Back   key.Binding
	Reload key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "inspect")),
		Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.Back, k.Reload, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type Model struct {
	registry *registry.Manager
	reloads  <-chan struct{}

	state  ApplicationState
	themes []*registry.Theme
	cursor int
	width  int
	err    error

	styles Styles
	keys   keyMap
	help   help.Model
}

// NewModel builds the preview browser. reloads may be nil; when set,
// each receive (driven by registry.Watch) refreshes the theme list.
func NewModel(reg *registry.Manager, reloads <-chan struct{}) Model {
	return Model{
		registry: reg,
		reloads:  reloads,
		state:    StateBrowse,
		themes:   reg.List(),
		styles:   defaultStyles(),
		keys:     defaultKeyMap(),
		help:     help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return m.listenForReloads()
}

func (m Model) listenForReloads() tea.Cmd {
	if m.reloads == nil {
		return nil
	}
	ch := m.reloads
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return themesReloadedMsg{}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case themesReloadedMsg:
		m.themes = m.registry.List()
		if m.cursor >= len(m.themes) {
			m.cursor = len(m.themes) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, m.listenForReloads()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.themes)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, m.keys.Enter):
			if m.state == StateBrowse && len(m.themes) > 0 {
				m.state = StateDetail
			}
			return m, nil

		case key.Matches(msg, m.keys.Back):
			if m.state == StateDetail {
				m.state = StateBrowse
			}
			return m, nil

		case key.Matches(msg, m.keys.Reload):
			m.themes = m.registry.List()
			return m, nil
		}
	}

	return m, nil
}

func (m Model) View() string {
	switch m.state {
	case StateDetail:
		return m.viewDetail()
	case StateError:
		return m.styles.Error.Render("error: "+m.err.Error()) + "\n"
	default:
		return m.viewBrowse()
	}
}

func (m Model) selected() *registry.Theme {
	if len(m.themes) == 0 || m.cursor >= len(m.themes) {
		return nil
	}
	return m.themes[m.cursor]
}
