package focus

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/querybox/editor"
	"github.com/iw2rmb/querybox/vocab"
)

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
	tabKey   = tea.KeyMsg{Type: tea.KeyTab}
	ctrlC    = tea.KeyMsg{Type: tea.KeyCtrlC}
)

func runeKey(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func newCoordinator(opts ...Option) *Coordinator {
	return New(editor.New(editor.Config{Vocabulary: vocab.Default()}), opts...)
}

func TestRoute_StandByTransitions(t *testing.T) {
	c := newCoordinator()
	if got := c.State(); got != StandBy {
		t.Fatalf("initial state: got %v, want %v", got, StandBy)
	}

	if _, ok := c.Route(runeKey("x")); ok {
		t.Fatalf("StandBy must not emit commands")
	}
	if got := c.State(); got != StandBy {
		t.Fatalf("state after rune: got %v, want %v", got, StandBy)
	}

	if _, ok := c.Route(enterKey); ok {
		t.Fatalf("confirm must not emit a command")
	}
	if got := c.State(); got != Editing {
		t.Fatalf("state after enter: got %v, want %v", got, Editing)
	}
}

func TestRoute_StandByEscapeFinishes(t *testing.T) {
	c := newCoordinator()
	if _, ok := c.Route(escKey); ok {
		t.Fatalf("escape must not emit a command")
	}
	if got := c.State(); got != Done {
		t.Fatalf("state after escape: got %v, want %v", got, Done)
	}

	if _, ok := c.Route(enterKey); ok {
		t.Fatalf("Done must not route")
	}
	if got := c.State(); got != Done {
		t.Fatalf("Done must be terminal, got %v", got)
	}
}

func TestRoute_EditingDelegatesToEditor(t *testing.T) {
	c := newCoordinator(WithInitialState(Editing))
	cases := []struct {
		msg  tea.KeyMsg
		want editor.Command
	}{
		{msg: runeKey("S"), want: editor.InsertChar('S')},
		{msg: tabKey, want: editor.AutoComplete},
		{msg: enterKey, want: editor.Validate},
		{msg: tea.KeyMsg{Type: tea.KeyBackspace}, want: editor.DeleteChar},
		{msg: escKey, want: editor.Exit},
	}
	for _, tc := range cases {
		got, ok := c.Route(tc.msg)
		if !ok || got != tc.want {
			t.Fatalf("Route(%v): got (%v,%v), want (%v,true)", tc.msg, got, ok, tc.want)
		}
		if c.State() != Editing {
			t.Fatalf("Route(%v) changed focus to %v", tc.msg, c.State())
		}
	}
}

func TestHandleKey_ExitReturnsToStandBy(t *testing.T) {
	c := newCoordinator()
	c.HandleKey(enterKey)
	c.HandleKey(runeKey("S"))
	c.HandleKey(escKey)

	if got := c.State(); got != StandBy {
		t.Fatalf("state after exit: got %v, want %v", got, StandBy)
	}
	if got, want := c.Editor().Text(), "S"; got != want {
		t.Fatalf("text kept across exit: got %q, want %q", got, want)
	}

	c.HandleKey(runeKey("X"))
	if got, want := c.Editor().Text(), "S"; got != want {
		t.Fatalf("StandBy keys must not edit: got %q, want %q", got, want)
	}
}

func TestHandleKey_FullSession(t *testing.T) {
	c := newCoordinator(WithInitialState(Editing))
	for _, r := range "SELEC" {
		c.HandleKey(runeKey(string(r)))
	}
	c.HandleKey(tabKey)
	c.HandleKey(runeKey(" * FROM users;"))
	c.HandleKey(enterKey)

	ed := c.Editor()
	if got, want := ed.Text(), "SELECT * FROM users;"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got := ed.Validation(); got != editor.Valid {
		t.Fatalf("validation: got %v, want %v", got, editor.Valid)
	}
}

func TestHandleKey_PasteOutsideEditingIgnored(t *testing.T) {
	c := newCoordinator()
	c.HandleKey(runeKey("SELECT"))
	if got := c.Editor().Text(); got != "" {
		t.Fatalf("paste in StandBy edited text: %q", got)
	}
}

func TestHandleKey_PastedLineBreaksActAsEnter(t *testing.T) {
	c := newCoordinator(WithInitialState(Editing))
	c.HandleKey(runeKey("SELECT * FROM t\n"))
	c.HandleKey(enterKey)

	ed := c.Editor()
	if got, want := ed.Text(), "SELECT * FROM t"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got := ed.Validation(); got != editor.Valid {
		t.Fatalf("validation: got %v, want %v", got, editor.Valid)
	}
	if got := c.State(); got != Editing {
		t.Fatalf("state: got %v, want %v", got, Editing)
	}
}

func TestHandleKey_PastedControlCharacters(t *testing.T) {
	c := newCoordinator(WithInitialState(Editing))
	c.HandleKey(runeKey("SELECT * FR\tx\r\a\x1b"))

	ed := c.Editor()
	if got, want := ed.Text(), "SELECT * FROMx"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got := ed.Validation(); got != editor.Invalid {
		t.Fatalf("validation after pasted CR: got %v, want %v", got, editor.Invalid)
	}
	if got := c.State(); got != Editing {
		t.Fatalf("pasted escape must not leave editing: got %v", got)
	}
}

func TestHandleKey_SingleRunePasteFlag(t *testing.T) {
	c := newCoordinator(WithInitialState(Editing))
	c.HandleKey(runeKey("FROM"))
	c.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("\n"), Paste: true})

	ed := c.Editor()
	if got, want := ed.Text(), "FROM"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got := ed.Validation(); got != editor.Invalid {
		t.Fatalf("validation: got %v, want %v", got, editor.Invalid)
	}
}

func TestQuit_FromAnyState(t *testing.T) {
	c := newCoordinator(WithInitialState(Editing))
	c.HandleKey(ctrlC)
	if !c.Done() {
		t.Fatalf("ctrl+c in Editing: got %v, want %v", c.State(), Done)
	}

	c = newCoordinator()
	c.HandleKey(ctrlC)
	if !c.Done() {
		t.Fatalf("ctrl+c in StandBy: got %v, want %v", c.State(), Done)
	}
}

func TestWithInitialState_IgnoresDone(t *testing.T) {
	c := newCoordinator(WithInitialState(Done))
	if got := c.State(); got != StandBy {
		t.Fatalf("initial state: got %v, want %v", got, StandBy)
	}
}

func TestApply_IgnoredOutsideEditing(t *testing.T) {
	c := newCoordinator()
	c.Apply(editor.InsertChar('a'))
	if got := c.Editor().Text(); got != "" {
		t.Fatalf("Apply in StandBy edited text: %q", got)
	}
}
