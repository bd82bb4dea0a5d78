package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/querybox/focus"
)

const defaultWidth = 60

// Model is the top-level Bubble Tea model.
type Model struct {
	coord  *focus.Coordinator
	styles Styles
	help   help.Model

	width  int
	height int
}

// New returns a Model driving coord.
func New(coord *focus.Coordinator, styles Styles) Model {
	h := help.New()
	h.Styles.ShortKey = styles.Help
	h.Styles.ShortDesc = styles.Help
	h.Styles.ShortSeparator = styles.Help
	return Model{
		coord:  coord,
		styles: styles,
		help:   h,
	}
}

func (m Model) Coordinator() *focus.Coordinator { return m.coord }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = max(msg.Width, 0)
		m.height = max(msg.Height, 0)
		m.help.Width = m.width
		return m, nil
	case tea.KeyMsg:
		m.coord.HandleKey(msg)
		if m.coord.Done() {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) panelWidth() int {
	if m.width <= 0 {
		return defaultWidth
	}
	return m.width
}
