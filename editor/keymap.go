package editor

import (
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines the editing key bindings. Printable characters are not
// bound; they always map to InsertChar.
type KeyMap struct {
	AutoComplete key.Binding
	Validate     key.Binding
	DeleteChar   key.Binding
	Exit         key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		AutoComplete: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "complete word")),
		Validate:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "validate")),
		DeleteChar:   key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Exit:         key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "stand by")),
	}
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.AutoComplete, km.Validate, km.DeleteChar, km.Exit}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{km.ShortHelp()}
}

// HandleKey maps a key press to a Command. It has no side effects.
//
// Only single printable-character rune messages become InsertChar; callers
// split pasted text into one message per rune. Control characters never
// reach the buffer.
func HandleKey(km KeyMap, msg tea.KeyMsg) (Command, bool) {
	switch {
	case key.Matches(msg, km.Exit):
		return Exit, true
	case key.Matches(msg, km.AutoComplete):
		return AutoComplete, true
	case key.Matches(msg, km.Validate):
		return Validate, true
	case key.Matches(msg, km.DeleteChar):
		return DeleteChar, true
	}

	switch msg.Type {
	case tea.KeySpace:
		return InsertChar(' '), true
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) != 1 || unicode.IsControl(msg.Runes[0]) {
			return Command{}, false
		}
		return InsertChar(msg.Runes[0]), true
	}
	return Command{}, false
}
