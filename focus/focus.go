// Package focus decides whether key presses reach the query editor.
package focus

import (
	"log/slog"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/querybox/editor"
)

// State is the editor's focus.
type State uint8

const (
	StandBy State = iota
	Editing
	// Done is terminal: nothing is routed once it is reached.
	Done
)

func (s State) String() string {
	switch s {
	case StandBy:
		return "StandBy"
	case Editing:
		return "Editing"
	case Done:
		return "Done"
	default:
		return "unknown"
	}
}

// KeyMap holds the bindings handled outside the editor.
type KeyMap struct {
	// Confirm enters Editing from StandBy.
	Confirm key.Binding
	// Leave finishes from StandBy.
	Leave key.Binding
	// Quit finishes from any state.
	Quit key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit query")),
		Leave:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "quit")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// Coordinator routes key presses to an editor State according to focus.
type Coordinator struct {
	state  State
	editor *editor.State

	keys       KeyMap
	editorKeys editor.KeyMap
	log        *slog.Logger
}

// Option configures a Coordinator.
type Option func(*Coordinator)

func WithKeyMap(km KeyMap) Option { return func(c *Coordinator) { c.keys = km } }

func WithEditorKeyMap(km editor.KeyMap) Option {
	return func(c *Coordinator) { c.editorKeys = km }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Coordinator) {
		if l != nil {
			c.log = l
		}
	}
}

// WithInitialState sets the starting focus. Done is not a valid start and
// is ignored.
func WithInitialState(s State) Option {
	return func(c *Coordinator) {
		if s == StandBy || s == Editing {
			c.state = s
		}
	}
}

// New returns a Coordinator over ed, starting in StandBy.
func New(ed *editor.State, opts ...Option) *Coordinator {
	c := &Coordinator{
		state:      StandBy,
		editor:     ed,
		keys:       DefaultKeyMap(),
		editorKeys: editor.DefaultKeyMap(),
		log:        slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Coordinator) State() State { return c.state }

func (c *Coordinator) Editor() *editor.State { return c.editor }

func (c *Coordinator) Keys() KeyMap { return c.keys }

func (c *Coordinator) EditorKeys() editor.KeyMap { return c.editorKeys }

// Route translates msg for the current focus. Focus transitions owned by the
// coordinator (StandBy Enter/Escape, Quit) happen here and emit no command.
func (c *Coordinator) Route(msg tea.KeyMsg) (editor.Command, bool) {
	if c.state == Done {
		return editor.Command{}, false
	}
	if key.Matches(msg, c.keys.Quit) {
		c.transition(Done)
		return editor.Command{}, false
	}

	switch c.state {
	case StandBy:
		switch {
		case key.Matches(msg, c.keys.Confirm):
			c.transition(Editing)
		case key.Matches(msg, c.keys.Leave):
			c.transition(Done)
		}
		return editor.Command{}, false
	case Editing:
		return editor.HandleKey(c.editorKeys, msg)
	}
	return editor.Command{}, false
}

// Apply runs cmd against the editor and honours its follow-up intent.
func (c *Coordinator) Apply(cmd editor.Command) {
	if c.state != Editing || c.editor == nil {
		return
	}
	intent := editor.Update(c.editor, cmd)
	c.log.Debug("command applied",
		"command", cmd.String(),
		"cursor", c.editor.Cursor(),
		"validation", c.editor.Validation().String(),
	)
	if intent == editor.IntentLeave {
		c.transition(StandBy)
	}
}

// HandleKey routes msg and applies the resulting commands. Pasted text is
// replayed one key press per rune: line breaks act as Enter, tabs as Tab,
// and other control characters are dropped.
func (c *Coordinator) HandleKey(msg tea.KeyMsg) {
	if c.state == Editing && msg.Type == tea.KeyRunes && !msg.Alt && (msg.Paste || len(msg.Runes) > 1) {
		for _, r := range msg.Runes {
			if k, ok := pastedKey(r); ok {
				c.HandleKey(k)
			}
		}
		return
	}

	cmd, ok := c.Route(msg)
	if !ok {
		return
	}
	c.Apply(cmd)
}

func pastedKey(r rune) (tea.KeyMsg, bool) {
	switch r {
	case '\r', '\n':
		return tea.KeyMsg{Type: tea.KeyEnter}, true
	case '\t':
		return tea.KeyMsg{Type: tea.KeyTab}, true
	}
	if unicode.IsControl(r) {
		return tea.KeyMsg{}, false
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}, true
}

func (c *Coordinator) Done() bool { return c.state == Done }

func (c *Coordinator) transition(next State) {
	if c.state == next || c.state == Done {
		return
	}
	c.log.Debug("focus changed", "from", c.state.String(), "to", next.String())
	c.state = next
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Confirm, km.Leave, km.Quit}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{km.ShortHelp()}
}
